package convert

import (
	"github.com/pascal3d/scenebridge/pkg/pascal"
	"github.com/pascal3d/scenebridge/pkg/scene"
)

// Import converts a Pascal document tree into a host scene tree. Every
// typed node produces exactly one host node; structure and sibling order
// are preserved 1:1 (only export flattens, so there is nothing to unflatten).
//
// The original kind and every kind-specific attribute are written into the
// host node's metadata, so a subsequent export reconstructs the document
// without loss.
func Import(doc *pascal.Node) (*scene.Node, error) {
	if doc == nil {
		return nil, &pascal.DocumentError{Path: nil, Message: "nil document root"}
	}
	return importNode(doc, nil, 0)
}

func importNode(t *pascal.Node, parent pascal.Path, index int) (*scene.Node, error) {
	at := parent.Child(t.ID, index)
	if t.Kind == pascal.KindNone {
		return nil, &pascal.DocumentError{Path: at, Message: "node has no typed role"}
	}

	// The name is carried verbatim, even when empty, so a re-export emits
	// an identical document.
	n := scene.NewNode(t.Name, geometryFor(t.Kind))
	n.Transform = t.Transform.FromPascal()
	n.SetMeta(scene.MetaID, t.ID)
	n.SetMeta(scene.MetaType, t.Kind.String())
	importAttrs(n, t.Attrs)

	for i, c := range t.Children {
		child, err := importNode(c, at, i)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

// geometryFor maps a Pascal kind to the primitive geometry conventionally
// used to represent it on the host side. Items get a mesh tag and are
// replaced later by the model-loading collaborator via pascal_model_url.
func geometryFor(k pascal.Kind) scene.GeometryKind {
	switch k {
	case pascal.KindWall, pascal.KindDoor, pascal.KindWindow:
		return scene.GeomCube
	case pascal.KindColumn:
		return scene.GeomCylinder
	case pascal.KindSlab, pascal.KindCeiling, pascal.KindRoof:
		return scene.GeomPlane
	case pascal.KindItem:
		return scene.GeomMesh
	default: // level, group
		return scene.GeomNone
	}
}

// importAttrs copies every kind-specific attribute into host metadata.
func importAttrs(n *scene.Node, attrs pascal.Attrs) {
	switch a := attrs.(type) {
	case pascal.LevelAttrs:
		setMetaFloat(n, scene.MetaHeight, a.Height)
		setMetaFloat(n, scene.MetaWallHeight, a.WallHeight)
		setMetaFloat(n, scene.MetaFloorThickness, a.FloorThickness)
	case pascal.WallAttrs:
		setMetaFloat(n, scene.MetaHeight, a.Height)
		setMetaFloat(n, scene.MetaThickness, a.Thickness)
		if a.MaterialFront != "" {
			n.SetMeta(scene.MetaMaterialFront, a.MaterialFront)
		}
		if a.MaterialBack != "" {
			n.SetMeta(scene.MetaMaterialBack, a.MaterialBack)
		}
	case pascal.OpeningAttrs:
		setMetaFloat(n, scene.MetaWidth, a.Width)
		setMetaFloat(n, scene.MetaHeight, a.Height)
	case pascal.ColumnAttrs:
		setMetaFloat(n, scene.MetaDiameter, a.Diameter)
		setMetaFloat(n, scene.MetaHeight, a.Height)
	case pascal.SurfaceAttrs:
		setMetaFloat(n, scene.MetaWidth, a.Width)
		setMetaFloat(n, scene.MetaDepth, a.Depth)
		setMetaFloat(n, scene.MetaThickness, a.Thickness)
	case pascal.ItemAttrs:
		setMetaFloat(n, scene.MetaWidth, a.Width)
		setMetaFloat(n, scene.MetaDepth, a.Depth)
		if a.ModelURL != "" {
			n.SetMeta(scene.MetaModelURL, a.ModelURL)
		}
		if a.AttachTo != "" {
			n.SetMeta(scene.MetaAttach, a.AttachTo)
		}
	}
}
