// Package classify maps a generic host node to its Pascal semantic role
// using a priority-ordered rule set. Classification is a pure function of
// the node's attributes: same input, same answer, no side effects.
package classify

import (
	"strings"

	"github.com/pascal3d/scenebridge/pkg/pascal"
	"github.com/pascal3d/scenebridge/pkg/scene"
)

// Name keywords, matched as case-insensitive substrings.
var (
	levelKeywords  = []string{"level", "floor", "story"}
	columnKeywords = []string{"column", "pillar"}
	groupKeywords  = []string{"group", "assembly"}
)

// Classify determines the Pascal role for a host node. It never fails: a
// node the rules cannot type returns pascal.KindNone, which the exporter
// treats as a pure organizational container.
//
// Rule order, first match wins:
//
//  1. Explicit pascal_type metadata override.
//  2. Level keyword in the name (level, floor, story).
//  3. Cube geometry with a wall/door/window keyword. When a name carries
//     several of these, the most specific wins: window beats door beats
//     wall, so "wall-window-frame" is a window.
//  4. Cylinder geometry with a column/pillar keyword.
//  5. Plane geometry: ceiling and roof keywords take precedence, anything
//     else is a slab.
//  6. Empty node with a group keyword in the name.
//  7. Any remaining renderable geometry is an item.
//  8. Anything else is untyped (KindNone).
func Classify(n *scene.Node) pascal.Kind {
	if k, ok := Override(n); ok {
		return k
	}

	name := strings.ToLower(n.Name)

	if containsAny(name, levelKeywords) {
		return pascal.KindLevel
	}

	if n.Geometry == scene.GeomCube {
		if strings.Contains(name, "window") {
			return pascal.KindWindow
		}
		if strings.Contains(name, "door") {
			return pascal.KindDoor
		}
		if strings.Contains(name, "wall") {
			return pascal.KindWall
		}
	}

	if n.Geometry == scene.GeomCylinder && containsAny(name, columnKeywords) {
		return pascal.KindColumn
	}

	if n.Geometry == scene.GeomPlane {
		if strings.Contains(name, "ceiling") {
			return pascal.KindCeiling
		}
		if strings.Contains(name, "roof") {
			return pascal.KindRoof
		}
		return pascal.KindSlab
	}

	if n.Geometry == scene.GeomNone && containsAny(name, groupKeywords) {
		return pascal.KindGroup
	}

	if n.Geometry != scene.GeomNone {
		return pascal.KindItem
	}

	return pascal.KindNone
}

// Override reads the explicit pascal_type metadata key, the highest-priority
// classification rule. It is exported so alternate classifier front ends
// (such as user rules scripts) keep it ranked above everything they add.
// An unrecognized value does not win over the heuristics; it is treated as
// absent.
func Override(n *scene.Node) (pascal.Kind, bool) {
	raw := n.Meta(scene.MetaType)
	if raw == "" {
		return pascal.KindNone, false
	}
	k, err := pascal.ParseKind(strings.ToLower(raw))
	if err != nil {
		return pascal.KindNone, false
	}
	return k, true
}

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
