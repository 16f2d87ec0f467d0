package rules

import (
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/pascal3d/scenebridge/pkg/scene"
)

// kwPrefix marks :keyword literals rewritten by preprocessSource.
const kwPrefix = "__kw_"

// registerBuiltins installs the node-inspection builtins into a zygomys
// environment. Every builtin closes over the node under classification.
func registerBuiltins(env *zygo.Zlisp, n *scene.Node) {
	env.AddFunction("name", func(env *zygo.Zlisp, fname string, args []zygo.Sexp) (zygo.Sexp, error) {
		return &zygo.SexpStr{S: n.Name}, nil
	})

	env.AddFunction("geometry", func(env *zygo.Zlisp, fname string, args []zygo.Sexp) (zygo.Sexp, error) {
		return &zygo.SexpStr{S: n.Geometry.String()}, nil
	})

	env.AddFunction("meta", func(env *zygo.Zlisp, fname string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, zygo.WrongNargs
		}
		key, ok := args[0].(*zygo.SexpStr)
		if !ok {
			return zygo.SexpNull, nil
		}
		return &zygo.SexpStr{S: n.Meta(strings.TrimPrefix(key.S, kwPrefix))}, nil
	})

	env.AddFunction("hasPrefix", func(env *zygo.Zlisp, fname string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, prefix, ok := twoStrings(args)
		if !ok {
			return zygo.SexpNull, zygo.WrongNargs
		}
		return &zygo.SexpBool{Val: strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))}, nil
	})

	env.AddFunction("hasSuffix", func(env *zygo.Zlisp, fname string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, suffix, ok := twoStrings(args)
		if !ok {
			return zygo.SexpNull, zygo.WrongNargs
		}
		return &zygo.SexpBool{Val: strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix))}, nil
	})

	env.AddFunction("contains", func(env *zygo.Zlisp, fname string, args []zygo.Sexp) (zygo.Sexp, error) {
		s, substr, ok := twoStrings(args)
		if !ok {
			return zygo.SexpNull, zygo.WrongNargs
		}
		return &zygo.SexpBool{Val: strings.Contains(strings.ToLower(s), strings.ToLower(substr))}, nil
	})
}

func twoStrings(args []zygo.Sexp) (string, string, bool) {
	if len(args) != 2 {
		return "", "", false
	}
	a, okA := args[0].(*zygo.SexpStr)
	b, okB := args[1].(*zygo.SexpStr)
	if !okA || !okB {
		return "", "", false
	}
	return a.S, b.S, true
}

// preprocessSource rewrites the script before handing it to zygomys:
//
//  1. :keyword literals become prefixed string literals, so scripts can
//     name kinds as :wall without registering keyword symbols.
//  2. Traditional Lisp ; comments become zygomys // comments.
//
// Both rewrites respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/8)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Copy double-quoted string literals untouched.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Rewrite ; line comments to //.
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Rewrite :keyword to a prefixed string literal. := stays intact.
		if b[i] == ':' && i+1 < len(b) && isLetter(b[i+1]) {
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			result = append(result, '"')
			result = append(result, kwPrefix...)
			result = append(result, b[i+1:j]...)
			result = append(result, '"')
			i = j
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}
