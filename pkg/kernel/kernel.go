// Package kernel defines the abstract geometry kernel used to synthesize
// placeholder meshes for imported scene nodes. An implementation (sdfx)
// provides the primitive solids and boolean subtraction behind this
// interface so the placeholder generator stays backend-agnostic.
package kernel

// Solid is an opaque handle to a kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel builds and meshes placeholder solids. All dimensions are meters;
// rotations are Euler XYZ in radians, matching the scene tree convention.
type Kernel interface {
	// Primitives, centered on the origin.
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid

	// Subtract returns a minus b. Used to cut door and window openings
	// out of wall placeholders.
	Subtract(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
