package scene

import (
	"encoding/json"
	"testing"
)

func TestMetaHelpers(t *testing.T) {
	n := &Node{Name: "Wall_01"}

	if got := n.Meta(MetaID); got != "" {
		t.Errorf("Meta on nil map: got %q, want empty", got)
	}

	n.SetMeta(MetaID, "wall_ab12cd34")
	if got := n.Meta(MetaID); got != "wall_ab12cd34" {
		t.Errorf("Meta after SetMeta: got %q", got)
	}
}

func TestCount(t *testing.T) {
	root := NewNode("root", GeomNone)
	level := NewNode("Level 1", GeomNone)
	level.AddChild(NewNode("Wall_01", GeomCube))
	level.AddChild(NewNode("Wall_02", GeomCube))
	root.AddChild(level)

	if got := root.Count(); got != 4 {
		t.Errorf("Count: got %d, want 4", got)
	}
}

func TestGeometryKindJSON(t *testing.T) {
	for _, k := range []GeometryKind{GeomNone, GeomCube, GeomCylinder, GeomPlane, GeomMesh} {
		data, err := json.Marshal(k)
		if err != nil {
			t.Fatalf("marshal %v: %v", k, err)
		}
		var back GeometryKind
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != k {
			t.Errorf("round trip of %v: got %v", k, back)
		}
	}

	var k GeometryKind
	if err := json.Unmarshal([]byte(`"teapot"`), &k); err == nil {
		t.Error("expected error for unrecognized geometry kind")
	}
}
