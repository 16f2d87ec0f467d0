// Package rules lets users extend the classifier with a small Lisp script.
// The script is evaluated in a sandboxed zygomys environment once per node,
// with builtins exposing the node's name, geometry kind, and metadata. The
// script's final value names a Pascal kind (as a string or :keyword) to
// claim the node, or anything else to defer to the built-in heuristics.
//
// Example script:
//
//	; tag every cube whose name ends in "-partition" as a wall
//	(cond (and (== (geometry) "cube")
//	           (hasSuffix (name) "-partition")) :wall
//	      true false)
package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/pascal3d/scenebridge/pkg/classify"
	"github.com/pascal3d/scenebridge/pkg/convert"
	"github.com/pascal3d/scenebridge/pkg/pascal"
	"github.com/pascal3d/scenebridge/pkg/scene"
)

// EvalTimeout is the hard limit for evaluating the script against one node.
const EvalTimeout = 2 * time.Second

// ScriptError represents a parse or runtime error in the user script.
type ScriptError struct {
	Line    int
	Message string
}

func (e *ScriptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("rules script line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("rules script: %s", e.Message)
}

// Engine evaluates a classification script. It is safe for concurrent use;
// each Classify call runs in a fresh sandbox for determinism.
type Engine struct {
	source string
}

// New creates an engine for the given script source. The source is
// preprocessed once; evaluation happens per node.
func New(source string) *Engine {
	return &Engine{source: preprocessSource(source)}
}

// Classify runs the script against a node. The second return value is false
// when the script defers to the built-in heuristics.
func (e *Engine) Classify(n *scene.Node) (pascal.Kind, bool, error) {
	if strings.TrimSpace(e.source) == "" {
		return pascal.KindNone, false, nil
	}

	type outcome struct {
		kind pascal.Kind
		ok   bool
		err  error
	}
	ch := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: &ScriptError{Message: fmt.Sprintf("panic during evaluation: %v", r)}}
			}
		}()
		k, ok, err := e.evaluate(n)
		ch <- outcome{kind: k, ok: ok, err: err}
	}()

	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.kind, res.ok, res.err
	case <-timer.C:
		return pascal.KindNone, false, &ScriptError{Message: fmt.Sprintf("evaluation timed out after %s", EvalTimeout)}
	}
}

// Classifier adapts the engine into a convert.Classifier. An explicit
// pascal_type override still outranks the script; the script sits between
// the override and the name/geometry heuristics. When the script defers or
// fails, fallback decides; script failures are reported through onError
// (which may be nil) so classification itself never fails.
func (e *Engine) Classifier(fallback convert.Classifier, onError func(error)) convert.Classifier {
	return func(n *scene.Node) pascal.Kind {
		if kind, ok := classify.Override(n); ok {
			return kind
		}
		kind, ok, err := e.Classify(n)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return fallback(n)
		}
		if !ok {
			return fallback(n)
		}
		return kind
	}
}

// evaluate runs the script in a fresh sandboxed environment. Sandbox mode
// keeps user code away from the filesystem and syscalls.
func (e *Engine) evaluate(n *scene.Node) (pascal.Kind, bool, error) {
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, n)

	if err := env.LoadString(e.source); err != nil {
		return pascal.KindNone, false, scriptError(err)
	}
	result, err := env.Run()
	if err != nil {
		return pascal.KindNone, false, scriptError(err)
	}

	name, ok := resultString(result)
	if !ok {
		return pascal.KindNone, false, nil
	}
	kind, perr := pascal.ParseKind(strings.ToLower(name))
	if perr != nil {
		return pascal.KindNone, false, &ScriptError{Message: perr.Error()}
	}
	return kind, true, nil
}

// resultString extracts a kind name from the script's final value. Keywords
// arrive as prefixed strings from preprocessing.
func resultString(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	if str.S == "" {
		return "", false
	}
	return str.S, true
}

// linePattern matches zygomys errors that carry "on line N: ..." context.
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// scriptError converts a zygomys error into a *ScriptError, pulling out the
// line number when the message carries one.
func scriptError(err error) error {
	msg := err.Error()
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &ScriptError{Line: line, Message: strings.TrimSpace(m[2])}
	}
	return &ScriptError{Message: strings.TrimSpace(msg)}
}
