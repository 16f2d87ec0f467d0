// Package placeholder walks an imported host scene tree and synthesizes one
// placeholder triangle mesh per geometry-carrying node using a geometry
// kernel. The meshes stand in until the host's model loader replaces items
// with their real geometry (via pascal_model_url).
package placeholder

import (
	"fmt"
	"strconv"

	"github.com/pascal3d/scenebridge/pkg/kernel"
	"github.com/pascal3d/scenebridge/pkg/scene"
)

// openingClearance over-sizes the subtracted opening along the wall
// thickness axis so the cut always pierces both faces cleanly.
const openingClearance = 1.2

// Meshes walks the scene tree and produces placeholder meshes in pre-order.
// Nodes without geometry (levels, groups) contribute no mesh but their
// transforms still apply to descendants. The walker is read-only.
func Meshes(root *scene.Node, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if root == nil {
		return nil, nil
	}
	var meshes []*kernel.Mesh
	if err := walk(root, root.Transform, k, &meshes); err != nil {
		return nil, err
	}
	return meshes, nil
}

func walk(n *scene.Node, world scene.Transform, k kernel.Kernel, out *[]*kernel.Mesh) error {
	solid := solidFor(n, world, k)
	if solid != nil {
		mesh, err := k.ToMesh(solid)
		if err != nil {
			return fmt.Errorf("placeholder: meshing %q: %w", n.Name, err)
		}
		mesh.NodeID = n.Meta(scene.MetaID)
		mesh.NodeKind = n.Meta(scene.MetaType)
		*out = append(*out, mesh)
	}

	for _, c := range n.Children {
		if err := walk(c, scene.Compose(world, c.Transform), k, out); err != nil {
			return err
		}
	}
	return nil
}

// solidFor builds the placeholder solid for one node in world space, or nil
// when the node contributes no geometry. Openings (doors, windows) return
// nil themselves; they are subtracted from their parent wall instead.
func solidFor(n *scene.Node, world scene.Transform, k kernel.Kernel) kernel.Solid {
	kind := n.Meta(scene.MetaType)
	switch kind {
	case "door", "window":
		return nil
	case "wall":
		return wallSolid(n, world, k)
	}

	switch n.Geometry {
	case scene.GeomCube, scene.GeomMesh:
		w := metaDim(n, scene.MetaWidth, 1) * world.Scale.X
		d := metaDim(n, scene.MetaDepth, 1) * world.Scale.Y
		h := metaDim(n, scene.MetaHeight, 1) * world.Scale.Z
		return place(k, k.Box(w, d, h), world, h/2)
	case scene.GeomCylinder:
		dia := metaDim(n, scene.MetaDiameter, 0.3)
		h := metaDim(n, scene.MetaHeight, 2.8) * world.Scale.Z
		r := dia / 2 * maxf(world.Scale.X, world.Scale.Y)
		return place(k, k.Cylinder(h, r), world, h/2)
	case scene.GeomPlane:
		w := metaDim(n, scene.MetaWidth, 4) * world.Scale.X
		d := metaDim(n, scene.MetaDepth, 4) * world.Scale.Y
		t := metaDim(n, scene.MetaThickness, 0.02)
		return place(k, k.Box(w, d, t), world, 0)
	default:
		return nil
	}
}

// wallSolid builds a unit-length wall segment box, scaled along its run by
// the node's X scale, with door and window openings subtracted at their
// local positions.
func wallSolid(n *scene.Node, world scene.Transform, k kernel.Kernel) kernel.Solid {
	length := world.Scale.X
	if length == 0 {
		length = 1
	}
	thickness := metaDim(n, scene.MetaThickness, 0.15)
	height := metaDim(n, scene.MetaHeight, 2.8)

	solid := k.Box(length, thickness, height)

	for _, c := range n.Children {
		switch c.Meta(scene.MetaType) {
		case "door", "window":
			w := metaDim(c, scene.MetaWidth, 0.9)
			h := metaDim(c, scene.MetaHeight, 2.1)
			cut := k.Box(w, thickness*openingClearance, h)
			// Opening positions are wall-local, measured from the wall
			// center at mid-height.
			cut = k.Translate(cut, c.Transform.Position.X, 0, c.Transform.Position.Z)
			solid = k.Subtract(solid, cut)
		}
	}

	return place(k, solid, world, height/2)
}

// place lifts a center-origin solid so it sits on its floor plane, applies
// the node's world rotation, and moves it to its world position.
func place(k kernel.Kernel, s kernel.Solid, world scene.Transform, lift float64) kernel.Solid {
	if lift != 0 {
		s = k.Translate(s, 0, 0, lift)
	}
	r := world.Rotation
	if r.X != 0 || r.Y != 0 || r.Z != 0 {
		s = k.Rotate(s, r.X, r.Y, r.Z)
	}
	p := world.Position
	return k.Translate(s, p.X, p.Y, p.Z)
}

// metaDim reads a numeric metadata key with a fallback, never mutating the
// node (unlike the converter, the placeholder walker is strictly read-only).
func metaDim(n *scene.Node, key string, fallback float64) float64 {
	if raw := n.Meta(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
