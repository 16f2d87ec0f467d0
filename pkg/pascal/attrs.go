package pascal

// Attrs is the interface for kind-specific attribute payloads. Each Kind has
// exactly one Attrs implementation with a fixed, statically-checkable schema.
type Attrs interface {
	attrs() // marker method restricting implementations to this package
}

// ---------------------------------------------------------------------------
// Containers
// ---------------------------------------------------------------------------

// LevelAttrs describes a floor/storey container.
type LevelAttrs struct {
	Height         float64 `json:"height"`         // elevation above ground, meters
	WallHeight     float64 `json:"wallHeight"`     // default wall height on this level
	FloorThickness float64 `json:"floorThickness"` // slab thickness
}

func (LevelAttrs) attrs() {}

// GroupAttrs is the empty payload for organizational groups.
type GroupAttrs struct{}

func (GroupAttrs) attrs() {}

// ---------------------------------------------------------------------------
// Structural elements
// ---------------------------------------------------------------------------

// WallAttrs describes a wall segment.
type WallAttrs struct {
	Height        float64 `json:"height"`
	Thickness     float64 `json:"thickness"`
	MaterialFront string  `json:"materialFront,omitempty"` // preset name, see Materials
	MaterialBack  string  `json:"materialBack,omitempty"`
}

func (WallAttrs) attrs() {}

// OpeningAttrs describes a door or window opening in a wall.
type OpeningAttrs struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (OpeningAttrs) attrs() {}

// ColumnAttrs describes a structural column.
type ColumnAttrs struct {
	Diameter float64 `json:"diameter"`
	Height   float64 `json:"height"`
}

func (ColumnAttrs) attrs() {}

// SurfaceAttrs describes a slab, ceiling, or roof surface.
type SurfaceAttrs struct {
	Width     float64 `json:"width"`
	Depth     float64 `json:"depth"`
	Thickness float64 `json:"thickness,omitempty"`
}

func (SurfaceAttrs) attrs() {}

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

// Attachment surfaces for items. The empty string means floor-standing.
const (
	AttachWall     = "wall"
	AttachWallSide = "wall-side"
	AttachCeiling  = "ceiling"
)

// ItemAttrs describes a furniture/model item. ModelURL is an opaque
// reference resolved by the consuming editor, never by the converter.
type ItemAttrs struct {
	Width    float64 `json:"width"`
	Depth    float64 `json:"depth"`
	ModelURL string  `json:"modelUrl,omitempty"`
	AttachTo string  `json:"attachTo,omitempty"`
}

func (ItemAttrs) attrs() {}

// newAttrs returns the zero Attrs value for a kind.
func newAttrs(k Kind) Attrs {
	switch k {
	case KindLevel:
		return LevelAttrs{}
	case KindWall:
		return WallAttrs{}
	case KindDoor, KindWindow:
		return OpeningAttrs{}
	case KindColumn:
		return ColumnAttrs{}
	case KindSlab, KindCeiling, KindRoof:
		return SurfaceAttrs{}
	case KindItem:
		return ItemAttrs{}
	default:
		return GroupAttrs{}
	}
}
