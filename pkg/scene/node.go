package scene

import (
	"encoding/json"
	"fmt"
)

// GeometryKind classifies the renderable geometry a node carries.
type GeometryKind int

const (
	GeomNone     GeometryKind = iota // empty / organizational node
	GeomCube                         // box-like mesh (walls, doors, windows)
	GeomCylinder                     // cylinder-like mesh (columns)
	GeomPlane                        // flat mesh (slabs, ceilings, roofs)
	GeomMesh                         // any other renderable mesh
)

func (k GeometryKind) String() string {
	switch k {
	case GeomNone:
		return "none"
	case GeomCube:
		return "cube"
	case GeomCylinder:
		return "cylinder"
	case GeomPlane:
		return "plane"
	case GeomMesh:
		return "mesh"
	default:
		return "unknown"
	}
}

// ParseGeometryKind converts the string form back to a GeometryKind.
func ParseGeometryKind(s string) (GeometryKind, error) {
	switch s {
	case "none", "":
		return GeomNone, nil
	case "cube":
		return GeomCube, nil
	case "cylinder":
		return GeomCylinder, nil
	case "plane":
		return GeomPlane, nil
	case "mesh":
		return GeomMesh, nil
	}
	return GeomNone, fmt.Errorf("unrecognized geometry kind %q", s)
}

// MarshalJSON serializes the kind as its string form so host snapshots stay
// human-readable.
func (k GeometryKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses the string form.
func (k *GeometryKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseGeometryKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Metadata passthrough keys. The converter reads and writes these; the host
// treats them as opaque strings attached to its objects.
const (
	MetaType          = "pascal_type"           // explicit kind override
	MetaID            = "pascal_id"             // stable Pascal identity
	MetaAttach        = "pascal_attach"         // item attach surface
	MetaMaterialFront = "pascal_material_front" // wall front material preset
	MetaMaterialBack  = "pascal_material_back"  // wall back material preset
	MetaModelURL      = "pascal_model_url"      // item model reference
)

// Numeric attribute passthrough keys. Values are float64s formatted with
// strconv.FormatFloat(v, 'g', -1, 64) so they round-trip exactly.
const (
	MetaHeight         = "pascal_height"
	MetaThickness      = "pascal_thickness"
	MetaWidth          = "pascal_width"
	MetaDepth          = "pascal_depth"
	MetaDiameter       = "pascal_diameter"
	MetaWallHeight     = "pascal_wall_height"     // level default wall height
	MetaFloorThickness = "pascal_floor_thickness" // level slab thickness
)

// Node is a single object in the host scene tree. Children are exclusively
// owned by their parent; sibling order is insertion order and is significant.
type Node struct {
	Name      string            `json:"name"`
	Geometry  GeometryKind      `json:"geometry"`
	Transform Transform         `json:"transform"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Children  []*Node           `json:"children,omitempty"`
}

// NewNode creates a node with an identity transform and empty metadata.
func NewNode(name string, geom GeometryKind) *Node {
	return &Node{
		Name:      name,
		Geometry:  geom,
		Transform: IdentityTransform(),
		Metadata:  make(map[string]string),
	}
}

// Meta returns the metadata value for key, or "" when absent.
func (n *Node) Meta(key string) string {
	if n.Metadata == nil {
		return ""
	}
	return n.Metadata[key]
}

// SetMeta sets a metadata key, allocating the map on first use.
func (n *Node) SetMeta(key, value string) {
	if n.Metadata == nil {
		n.Metadata = make(map[string]string)
	}
	n.Metadata[key] = value
}

// AddChild appends a child, preserving insertion order.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
