// Package pascal defines the Pascal editor scene-graph document model: the
// typed node tree, its kind-specific attribute payloads, and the JSON wire
// codec. The wire shape is fixed across versions:
//
//	{ "id": "...", "type": "...", "transform": {...},
//	  "attributes": {...}, "children": [...] }
package pascal
