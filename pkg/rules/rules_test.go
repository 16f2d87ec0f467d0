package rules

import (
	"strings"
	"testing"

	"github.com/pascal3d/scenebridge/pkg/classify"
	"github.com/pascal3d/scenebridge/pkg/pascal"
	"github.com/pascal3d/scenebridge/pkg/scene"
)

func cubeNode(name string) *scene.Node {
	return scene.NewNode(name, scene.GeomCube)
}

func TestClassify_ScriptClaimsNode(t *testing.T) {
	engine := New(`(if (and (== (geometry) "cube")
	                        (hasSuffix (name) "-partition"))
	                   :wall
	                   false)`)

	kind, ok, err := engine.Classify(cubeNode("office-partition"))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !ok {
		t.Fatal("script should have claimed the node")
	}
	if kind != pascal.KindWall {
		t.Errorf("kind: got %v, want wall", kind)
	}
}

func TestClassify_ScriptDefers(t *testing.T) {
	engine := New(`(if (hasSuffix (name) "-partition") :wall false)`)

	kind, ok, err := engine.Classify(cubeNode("Cabinet"))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if ok {
		t.Errorf("script should have deferred, claimed %v", kind)
	}
}

func TestClassify_StringResult(t *testing.T) {
	engine := New(`"column"`)

	kind, ok, err := engine.Classify(cubeNode("anything"))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !ok || kind != pascal.KindColumn {
		t.Errorf("got (%v, %v), want (column, true)", kind, ok)
	}
}

func TestClassify_UnknownKindName(t *testing.T) {
	engine := New(`:spaceship`)

	_, _, err := engine.Classify(cubeNode("x"))
	if err == nil {
		t.Fatal("expected error for unknown kind name")
	}
	scriptErr, ok := err.(*ScriptError)
	if !ok {
		t.Fatalf("error type: got %T", err)
	}
	if !strings.Contains(scriptErr.Message, "spaceship") {
		t.Errorf("message %q should name the bad kind", scriptErr.Message)
	}
}

func TestClassify_BadScript(t *testing.T) {
	engine := New(`(no-such-function 1 2)`)

	_, _, err := engine.Classify(cubeNode("x"))
	if err == nil {
		t.Fatal("expected error")
	}
	scriptErr, ok := err.(*ScriptError)
	if !ok {
		t.Fatalf("error type: got %T", err)
	}
	if scriptErr.Message == "" {
		t.Error("empty error message")
	}
}

func TestClassify_EmptyScriptDefers(t *testing.T) {
	engine := New("  \n\t ")

	_, ok, err := engine.Classify(cubeNode("x"))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if ok {
		t.Error("empty script should defer")
	}
}

func TestClassify_MetaBuiltin(t *testing.T) {
	engine := New(`(if (== (meta "room") "kitchen") :item false)`)

	n := cubeNode("Counter")
	n.SetMeta("room", "kitchen")

	kind, ok, err := engine.Classify(n)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !ok || kind != pascal.KindItem {
		t.Errorf("got (%v, %v), want (item, true)", kind, ok)
	}
}

func TestClassifier_ExplicitOverrideBeatsScript(t *testing.T) {
	engine := New(`:wall`)
	cls := engine.Classifier(classify.Classify, nil)

	n := cubeNode("Crate")
	n.SetMeta(scene.MetaType, "item")

	if got := cls(n); got != pascal.KindItem {
		t.Errorf("explicit override lost to script: got %v, want item", got)
	}

	// Without the override the same script claims the node.
	if got := cls(cubeNode("Crate")); got != pascal.KindWall {
		t.Errorf("script result: got %v, want wall", got)
	}
}

func TestClassifier_FallbackOnDefer(t *testing.T) {
	engine := New(`false`)
	cls := engine.Classifier(classify.Classify, nil)

	if got := cls(cubeNode("Wall_01")); got != pascal.KindWall {
		t.Errorf("fallback result: got %v, want wall", got)
	}
}

func TestClassifier_FallbackOnError(t *testing.T) {
	engine := New(`:spaceship`)

	var reported error
	cls := engine.Classifier(classify.Classify, func(err error) { reported = err })

	if got := cls(cubeNode("Wall_01")); got != pascal.KindWall {
		t.Errorf("fallback result: got %v, want wall", got)
	}
	if reported == nil {
		t.Error("onError was not called")
	}
}

func TestPreprocessSource(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "keyword literal",
			in:   `:wall`,
			want: `"__kw_wall"`,
		},
		{
			name: "keyword with dash",
			in:   `(== x :wall-side)`,
			want: `(== x "__kw_wall-side")`,
		},
		{
			name: "semicolon comment",
			in:   ";; claim cubes\n:wall",
			want: "// claim cubes\n\"__kw_wall\"",
		},
		{
			name: "keyword inside string untouched",
			in:   `(== (name) ":wall")`,
			want: `(== (name) ":wall")`,
		},
		{
			name: "semicolon inside string untouched",
			in:   `(contains (name) "a;b")`,
			want: `(contains (name) "a;b")`,
		},
		{
			name: "escaped quote in string",
			in:   `(== x "say \" this") :door`,
			want: `(== x "say \" this") "__kw_door"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := preprocessSource(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
