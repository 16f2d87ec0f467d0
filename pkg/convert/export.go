package convert

import (
	"fmt"

	"github.com/pascal3d/scenebridge/pkg/classify"
	"github.com/pascal3d/scenebridge/pkg/pascal"
	"github.com/pascal3d/scenebridge/pkg/scene"
)

// Classifier maps a host node to its Pascal role. It must be pure.
type Classifier func(*scene.Node) pascal.Kind

// Exporter converts a host scene tree to a Pascal document.
type Exporter struct {
	Config   Config
	Classify Classifier // nil means classify.Classify
}

// Export converts a host tree with the default classifier.
func Export(root *scene.Node, cfg Config) (*pascal.Node, error) {
	e := &Exporter{Config: cfg}
	return e.Export(root)
}

// Export performs the host-to-Pascal conversion. The returned tree contains
// every typed-eligible source node exactly once, in source sibling order.
// The only structural divergence from the source is the elision of untyped
// containers, whose transforms are composed into their children.
//
// Export writes generated ids and applied defaults back into the host
// nodes' metadata, so exporting again without structural changes yields an
// identical document.
func (e *Exporter) Export(root *scene.Node) (*pascal.Node, error) {
	if root == nil {
		return nil, fmt.Errorf("export: nil scene root")
	}

	cfg := e.Config.withDefaults()
	cls := e.Classify
	if cls == nil {
		cls = classify.Classify
	}

	kind := cls(root)
	if kind == pascal.KindNone {
		// An untyped root cannot be elided; promote it to a level, the way
		// the editor wraps loose geometry in a default level.
		kind = pascal.KindLevel
	}

	out := e.exportNode(root, kind, root.Transform, cfg)
	e.exportChildren(root, out, cls, cfg)
	return out, nil
}

// exportChildren converts the children of src and appends the results to
// the typed parent. Untyped containers are skipped: their children are
// promoted to the current parent with the container's local transform
// composed in (parent-then-child order), so visual placement survives the
// flattening.
func (e *Exporter) exportChildren(src *scene.Node, parent *pascal.Node, cls Classifier, cfg Config) {
	e.exportChildrenInto(src, parent, cls, cfg, nil)
}

// carry is the composed transform of the elided ancestors between src and
// the typed parent, or nil when there are none. Transforms pass through
// untouched on the nil path so unflattened trees round-trip bit-exactly.
func (e *Exporter) exportChildrenInto(src *scene.Node, parent *pascal.Node, cls Classifier, cfg Config, carry *scene.Transform) {
	for _, child := range src.Children {
		local := child.Transform
		if carry != nil {
			local = scene.Compose(*carry, child.Transform)
		}
		kind := cls(child)
		if kind == pascal.KindNone {
			e.exportChildrenInto(child, parent, cls, cfg, &local)
			continue
		}
		out := e.exportNode(child, kind, local, cfg)
		parent.AddChild(out)
		e.exportChildren(child, out, cls, cfg)
	}
}

// exportNode builds a single typed node from a host node. localTransform is
// the node's transform in host space with any elided-ancestor transforms
// already composed in.
func (e *Exporter) exportNode(n *scene.Node, kind pascal.Kind, localTransform scene.Transform, cfg Config) *pascal.Node {
	id := n.Meta(scene.MetaID)
	if id == "" {
		id = pascal.NewID(kind)
		n.SetMeta(scene.MetaID, id)
	}
	n.SetMeta(scene.MetaType, kind.String())

	return &pascal.Node{
		ID:        id,
		Kind:      kind,
		Name:      n.Name,
		Transform: localTransform.ToPascal(),
		Attrs:     e.exportAttrs(n, kind, cfg),
	}
}

// exportAttrs reads kind-specific attributes from the node's metadata,
// falling back to configured or built-in defaults. Applied defaults are
// written back into the metadata.
func (e *Exporter) exportAttrs(n *scene.Node, kind pascal.Kind, cfg Config) pascal.Attrs {
	switch kind {
	case pascal.KindLevel:
		return pascal.LevelAttrs{
			Height:         metaFloat(n, scene.MetaHeight, 0),
			WallHeight:     metaFloat(n, scene.MetaWallHeight, cfg.DefaultWallHeight),
			FloorThickness: metaFloat(n, scene.MetaFloorThickness, defaultFloorThickness),
		}
	case pascal.KindWall:
		return pascal.WallAttrs{
			Height:        metaFloat(n, scene.MetaHeight, cfg.DefaultWallHeight),
			Thickness:     metaFloat(n, scene.MetaThickness, cfg.DefaultWallThickness),
			MaterialFront: n.Meta(scene.MetaMaterialFront),
			MaterialBack:  n.Meta(scene.MetaMaterialBack),
		}
	case pascal.KindDoor:
		return pascal.OpeningAttrs{
			Width:  metaFloat(n, scene.MetaWidth, defaultDoorWidth),
			Height: metaFloat(n, scene.MetaHeight, defaultDoorHeight),
		}
	case pascal.KindWindow:
		return pascal.OpeningAttrs{
			Width:  metaFloat(n, scene.MetaWidth, defaultWindowWidth),
			Height: metaFloat(n, scene.MetaHeight, defaultWindowHeight),
		}
	case pascal.KindColumn:
		return pascal.ColumnAttrs{
			Diameter: metaFloat(n, scene.MetaDiameter, defaultColumnDiameter),
			Height:   metaFloat(n, scene.MetaHeight, cfg.DefaultWallHeight),
		}
	case pascal.KindSlab, pascal.KindCeiling, pascal.KindRoof:
		return pascal.SurfaceAttrs{
			Width:     metaFloat(n, scene.MetaWidth, defaultSurfaceSize),
			Depth:     metaFloat(n, scene.MetaDepth, defaultSurfaceSize),
			Thickness: metaFloat(n, scene.MetaThickness, 0),
		}
	case pascal.KindItem:
		return pascal.ItemAttrs{
			Width:    metaFloat(n, scene.MetaWidth, defaultItemSize),
			Depth:    metaFloat(n, scene.MetaDepth, defaultItemSize),
			ModelURL: n.Meta(scene.MetaModelURL),
			AttachTo: n.Meta(scene.MetaAttach),
		}
	default:
		return pascal.GroupAttrs{}
	}
}
