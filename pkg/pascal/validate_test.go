package pascal

import (
	"strings"
	"testing"

	"github.com/pascal3d/scenebridge/pkg/scene"
)

func typedNode(id string, k Kind, attrs Attrs) *Node {
	return &Node{ID: id, Kind: k, Transform: scene.IdentityTransform(), Attrs: attrs}
}

func findingWith(findings []Finding, substr string) *Finding {
	for i := range findings {
		if strings.Contains(findings[i].Message, substr) {
			return &findings[i]
		}
	}
	return nil
}

func TestValidate_CleanDocument(t *testing.T) {
	if got := Validate(buildLevelDoc()); len(got) != 0 {
		t.Errorf("expected no findings, got %v", got)
	}
}

func TestValidate_NilRoot(t *testing.T) {
	if got := Validate(nil); got != nil {
		t.Errorf("expected nil findings, got %v", got)
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	root := typedNode("level_1", KindLevel, LevelAttrs{})
	root.AddChild(typedNode("wall_1", KindWall, WallAttrs{}))
	root.AddChild(typedNode("wall_1", KindWall, WallAttrs{}))

	f := findingWith(Validate(root), "duplicate id")
	if f == nil {
		t.Fatal("expected duplicate id finding")
	}
	if f.Severity != SeverityError {
		t.Errorf("severity: got %v, want error", f.Severity)
	}
	if f.Path.String() != "level_1/wall_1" {
		t.Errorf("path: got %q", f.Path)
	}
	if !strings.Contains(f.Message, "first seen at level_1/wall_1") {
		t.Errorf("message should name the first occurrence, got %q", f.Message)
	}
}

func TestValidate_EmptyID(t *testing.T) {
	root := typedNode("level_1", KindLevel, LevelAttrs{})
	root.AddChild(typedNode("", KindWall, WallAttrs{}))

	f := findingWith(Validate(root), "empty id")
	if f == nil {
		t.Fatal("expected empty id finding")
	}
	if f.Path.String() != "level_1/[0]" {
		t.Errorf("path: got %q", f.Path)
	}
}

func TestValidate_NegativeWallDimensions(t *testing.T) {
	root := typedNode("wall_1", KindWall, WallAttrs{Height: -2.8, Thickness: -0.1})
	findings := Validate(root)
	if findingWith(findings, "wall height") == nil {
		t.Error("expected negative height finding")
	}
	if findingWith(findings, "wall thickness") == nil {
		t.Error("expected negative thickness finding")
	}
	for _, f := range findings {
		if f.Severity != SeverityError {
			t.Errorf("finding %v should be an error", f)
		}
	}
}

func TestValidate_UnknownMaterialWarns(t *testing.T) {
	root := typedNode("wall_1", KindWall, WallAttrs{MaterialFront: "unobtainium"})
	f := findingWith(Validate(root), "unobtainium")
	if f == nil {
		t.Fatal("expected unknown material finding")
	}
	if f.Severity != SeverityWarning {
		t.Errorf("severity: got %v, want warning", f.Severity)
	}
}

func TestValidate_ItemChecks(t *testing.T) {
	root := typedNode("group_1", KindGroup, GroupAttrs{})
	root.AddChild(typedNode("item_1", KindItem, ItemAttrs{AttachTo: "floorboard"}))
	root.AddChild(typedNode("item_2", KindItem, ItemAttrs{ModelURL: "https://example.com/chair.glb", AttachTo: AttachWall}))

	findings := Validate(root)
	if f := findingWith(findings, "attachTo"); f == nil || f.Severity != SeverityError {
		t.Errorf("expected attachTo error, got %v", findings)
	}
	if f := findingWith(findings, "modelUrl"); f == nil || f.Severity != SeverityWarning {
		t.Errorf("expected modelUrl warning, got %v", findings)
	}
	// item_2 is fully specified and should contribute nothing.
	if len(findings) != 2 {
		t.Errorf("expected exactly 2 findings, got %v", findings)
	}
}

func TestValidate_OpeningOutsideWallWarns(t *testing.T) {
	root := typedNode("level_1", KindLevel, LevelAttrs{})
	root.AddChild(typedNode("door_1", KindDoor, OpeningAttrs{Width: 0.9, Height: 2.1}))

	f := findingWith(Validate(root), "openings inside walls")
	if f == nil {
		t.Fatal("expected placement warning")
	}
	if f.Severity != SeverityWarning {
		t.Errorf("severity: got %v, want warning", f.Severity)
	}
}

func TestValidate_LevelNestedUnderWallWarns(t *testing.T) {
	root := typedNode("wall_1", KindWall, WallAttrs{})
	root.AddChild(typedNode("level_1", KindLevel, LevelAttrs{}))

	if findingWith(Validate(root), "levels belong at the top") == nil {
		t.Error("expected level placement warning")
	}

	// Levels under groups are fine; that is how multi-building sites nest.
	site := typedNode("group_1", KindGroup, GroupAttrs{})
	site.AddChild(typedNode("level_1", KindLevel, LevelAttrs{}))
	if got := Validate(site); len(got) != 0 {
		t.Errorf("expected no findings for level under group, got %v", got)
	}
}
