package pascal

import "fmt"

// Severity indicates whether a validation finding blocks use of the document
// or is merely advisory.
type Severity int

const (
	SeverityError   Severity = iota // structural problem
	SeverityWarning                 // advisory; document is still usable
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Finding describes a single validation result.
type Finding struct {
	Path     Path
	Message  string
	Severity Severity
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Path, f.Message)
}

// Validate runs structural checks over a decoded document and returns all
// findings. It is read-only and never mutates the tree. An untyped nil root
// yields no findings.
func Validate(root *Node) []Finding {
	if root == nil {
		return nil
	}
	v := &validator{seen: make(map[string]Path)}
	v.walk(root, nil, 0, nil)
	return v.findings
}

type validator struct {
	findings []Finding
	seen     map[string]Path // id -> first path it appeared at
}

func (v *validator) errorf(p Path, format string, args ...any) {
	v.findings = append(v.findings, Finding{Path: p, Message: fmt.Sprintf(format, args...), Severity: SeverityError})
}

func (v *validator) warnf(p Path, format string, args ...any) {
	v.findings = append(v.findings, Finding{Path: p, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning})
}

func (v *validator) walk(n *Node, parentPath Path, index int, parent *Node) {
	at := parentPath.Child(n.ID, index)

	if n.ID == "" {
		v.errorf(at, "node has empty id")
	} else if first, dup := v.seen[n.ID]; dup {
		v.errorf(at, "duplicate id %q (first seen at %s)", n.ID, first)
	} else {
		v.seen[n.ID] = at
	}

	v.checkAttrs(n, at)
	v.checkPlacement(n, at, parent)

	for i, c := range n.Children {
		v.walk(c, at, i, n)
	}
}

func (v *validator) checkAttrs(n *Node, at Path) {
	switch a := n.Attrs.(type) {
	case WallAttrs:
		if a.Height < 0 {
			v.errorf(at, "wall height must be non-negative, got %g", a.Height)
		}
		if a.Thickness < 0 {
			v.errorf(at, "wall thickness must be non-negative, got %g", a.Thickness)
		}
		if a.MaterialFront != "" && !IsMaterial(a.MaterialFront) {
			v.warnf(at, "unknown material preset %q", a.MaterialFront)
		}
		if a.MaterialBack != "" && !IsMaterial(a.MaterialBack) {
			v.warnf(at, "unknown material preset %q", a.MaterialBack)
		}
	case OpeningAttrs:
		if a.Width < 0 || a.Height < 0 {
			v.errorf(at, "opening size must be non-negative, got %gx%g", a.Width, a.Height)
		}
	case ColumnAttrs:
		if a.Diameter < 0 {
			v.errorf(at, "column diameter must be non-negative, got %g", a.Diameter)
		}
	case ItemAttrs:
		switch a.AttachTo {
		case "", AttachWall, AttachWallSide, AttachCeiling:
		default:
			v.errorf(at, "invalid attachTo %q", a.AttachTo)
		}
		if a.ModelURL == "" {
			v.warnf(at, "item has no modelUrl; the editor will show a placeholder")
		}
	}
}

// checkPlacement flags nodes parented somewhere the editor does not expect
// them. These are advisory: the editor tolerates them but renders oddly.
func (v *validator) checkPlacement(n *Node, at Path, parent *Node) {
	switch n.Kind {
	case KindDoor, KindWindow:
		if parent != nil && parent.Kind != KindWall {
			v.warnf(at, "%s nested under %s; the editor expects openings inside walls", n.Kind, parent.Kind)
		}
	case KindLevel:
		if parent != nil && parent.Kind != KindGroup {
			v.warnf(at, "level nested under %s; levels belong at the top of the tree", parent.Kind)
		}
	}
}
