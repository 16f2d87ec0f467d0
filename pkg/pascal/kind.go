package pascal

import "fmt"

// Kind enumerates the semantic node roles in a Pascal scene graph.
type Kind int

const (
	KindNone    Kind = iota // no typed role; never serialized
	KindLevel               // floor/storey container
	KindWall                // wall segment
	KindDoor                // door opening in a wall
	KindWindow              // window opening in a wall
	KindColumn              // structural column
	KindSlab                // floor slab
	KindCeiling             // ceiling surface
	KindRoof                // roof surface
	KindGroup               // organizational grouping
	KindItem                // furniture / generic placed model
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindLevel:
		return "level"
	case KindWall:
		return "wall"
	case KindDoor:
		return "door"
	case KindWindow:
		return "window"
	case KindColumn:
		return "column"
	case KindSlab:
		return "slab"
	case KindCeiling:
		return "ceiling"
	case KindRoof:
		return "roof"
	case KindGroup:
		return "group"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// ParseKind converts a wire type string to a Kind. The empty string and any
// unrecognized value return an error; KindNone has no wire form.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "level":
		return KindLevel, nil
	case "wall":
		return KindWall, nil
	case "door":
		return KindDoor, nil
	case "window":
		return KindWindow, nil
	case "column":
		return KindColumn, nil
	case "slab":
		return KindSlab, nil
	case "ceiling":
		return KindCeiling, nil
	case "roof":
		return KindRoof, nil
	case "group":
		return KindGroup, nil
	case "item":
		return KindItem, nil
	}
	return KindNone, fmt.Errorf("unrecognized node type %q", s)
}
