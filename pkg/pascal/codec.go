package pascal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pascal3d/scenebridge/pkg/scene"
)

// Path locates a node within a document as the chain of node ids from the
// root. A child whose id is missing contributes its sibling index instead.
type Path []string

func (p Path) String() string {
	if len(p) == 0 {
		return "root"
	}
	return strings.Join(p, "/")
}

// Child returns a new path extended by one segment. The receiver is never
// mutated, so sibling branches can share a prefix safely.
func (p Path) Child(id string, index int) Path {
	seg := id
	if seg == "" {
		seg = fmt.Sprintf("[%d]", index)
	}
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, seg)
}

// DocumentError reports a malformed document. Path identifies the offending
// node so the host can point the user at it.
type DocumentError struct {
	Path    Path
	Message string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("malformed document at %s: %s", e.Path, e.Message)
}

// ---------------------------------------------------------------------------
// Wire representation
// ---------------------------------------------------------------------------

type wireTransform struct {
	Position []float64 `json:"position"`
	Rotation []float64 `json:"rotation"`
	Scale    []float64 `json:"scale"`
}

type wireNode struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Name       string          `json:"name,omitempty"`
	Transform  *wireTransform  `json:"transform"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
	Children   []*wireNode     `json:"children"`
}

// Encode serializes a document root to indented JSON.
func Encode(root *Node) ([]byte, error) {
	w, err := toWire(root)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(w, "", "  ")
}

func toWire(n *Node) (*wireNode, error) {
	attrs, err := json.Marshal(n.Attrs)
	if err != nil {
		return nil, fmt.Errorf("encoding attributes of %s: %w", n.ID, err)
	}

	w := &wireNode{
		ID:   n.ID,
		Type: n.Kind.String(),
		Name: n.Name,
		Transform: &wireTransform{
			Position: []float64{n.Transform.Position.X, n.Transform.Position.Y, n.Transform.Position.Z},
			Rotation: []float64{n.Transform.Rotation.X, n.Transform.Rotation.Y, n.Transform.Rotation.Z},
			Scale:    []float64{n.Transform.Scale.X, n.Transform.Scale.Y, n.Transform.Scale.Z},
		},
		Attributes: attrs,
		Children:   []*wireNode{},
	}
	for _, c := range n.Children {
		cw, err := toWire(c)
		if err != nil {
			return nil, err
		}
		w.Children = append(w.Children, cw)
	}
	return w, nil
}

// Decode parses a serialized document. It fails fast with a *DocumentError
// on the first structural problem; no partial tree is ever returned.
func Decode(data []byte) (*Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &DocumentError{Path: nil, Message: err.Error()}
	}
	return fromWire(&w, nil, 0)
}

func fromWire(w *wireNode, parent Path, index int) (*Node, error) {
	at := parent.Child(w.ID, index)

	if w.ID == "" {
		return nil, &DocumentError{Path: at, Message: "missing required field \"id\""}
	}
	if w.Type == "" {
		return nil, &DocumentError{Path: at, Message: "missing required field \"type\""}
	}
	kind, err := ParseKind(w.Type)
	if err != nil {
		return nil, &DocumentError{Path: at, Message: err.Error()}
	}
	tf, err := decodeTransform(w.Transform)
	if err != nil {
		return nil, &DocumentError{Path: at, Message: err.Error()}
	}

	attrs := newAttrs(kind)
	if len(w.Attributes) > 0 {
		if attrs, err = decodeAttrs(kind, w.Attributes); err != nil {
			return nil, &DocumentError{Path: at, Message: err.Error()}
		}
	}

	n := &Node{
		ID:        w.ID,
		Kind:      kind,
		Name:      w.Name,
		Transform: tf,
		Attrs:     attrs,
	}
	for i, cw := range w.Children {
		if cw == nil {
			return nil, &DocumentError{Path: at.Child("", i), Message: "null child node"}
		}
		c, err := fromWire(cw, at, i)
		if err != nil {
			return nil, err
		}
		n.AddChild(c)
	}
	return n, nil
}

func decodeTransform(w *wireTransform) (scene.Transform, error) {
	if w == nil {
		return scene.Transform{}, fmt.Errorf("missing required field \"transform\"")
	}
	pos, err := vec3(w.Position, "transform.position")
	if err != nil {
		return scene.Transform{}, err
	}
	rot, err := vec3(w.Rotation, "transform.rotation")
	if err != nil {
		return scene.Transform{}, err
	}
	scl, err := vec3(w.Scale, "transform.scale")
	if err != nil {
		return scene.Transform{}, err
	}
	return scene.Transform{Position: pos, Rotation: rot, Scale: scl}, nil
}

func vec3(v []float64, field string) (scene.Vec3, error) {
	if len(v) != 3 {
		return scene.Vec3{}, fmt.Errorf("%s must have exactly 3 components, got %d", field, len(v))
	}
	return scene.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// decodeAttrs unmarshals the attributes object into the kind's fixed schema.
// Unrecognized keys are ignored; the attribute set per kind is closed.
func decodeAttrs(k Kind, raw json.RawMessage) (Attrs, error) {
	switch k {
	case KindLevel:
		var a LevelAttrs
		err := unmarshalAttrs(raw, &a)
		return a, err
	case KindWall:
		var a WallAttrs
		err := unmarshalAttrs(raw, &a)
		return a, err
	case KindDoor, KindWindow:
		var a OpeningAttrs
		err := unmarshalAttrs(raw, &a)
		return a, err
	case KindColumn:
		var a ColumnAttrs
		err := unmarshalAttrs(raw, &a)
		return a, err
	case KindSlab, KindCeiling, KindRoof:
		var a SurfaceAttrs
		err := unmarshalAttrs(raw, &a)
		return a, err
	case KindItem:
		var a ItemAttrs
		err := unmarshalAttrs(raw, &a)
		return a, err
	default:
		var a GroupAttrs
		err := unmarshalAttrs(raw, &a)
		return a, err
	}
}

func unmarshalAttrs(raw json.RawMessage, into any) error {
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("invalid attributes: %v", err)
	}
	return nil
}
