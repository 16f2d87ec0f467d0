package sdfx

import (
	"math"
	"testing"
)

func TestBox(t *testing.T) {
	k := New()
	box := k.Box(4, 0.15, 2.8)
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() == 0 {
		t.Fatal("expected non-zero vertex count")
	}
	if mesh.TriangleCount() == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	// Verify vertex and index array sizes are consistent.
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}
}

func TestCylinder(t *testing.T) {
	k := New()
	cyl := k.Cylinder(2.8, 0.15)
	mesh, err := k.ToMesh(cyl)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.TriangleCount() == 0 {
		t.Fatal("expected non-zero triangle count")
	}
}

func TestSubtract(t *testing.T) {
	k := New()

	// A wall segment with a door-sized cut through it, the shape the
	// placeholder generator asks for.
	wall := k.Box(4, 0.15, 2.8)
	wallMesh, err := k.ToMesh(wall)
	if err != nil {
		t.Fatalf("ToMesh(wall) failed: %v", err)
	}

	cut := k.Box(0.9, 0.3, 2.1)
	cut = k.Translate(cut, 0, 0, -0.35)
	opened := k.Subtract(wall, cut)
	openedMesh, err := k.ToMesh(opened)
	if err != nil {
		t.Fatalf("ToMesh(opened) failed: %v", err)
	}
	if openedMesh.IsEmpty() {
		t.Fatal("subtracted mesh is empty")
	}
	// A wall with an opening has more surface than a plain wall.
	if openedMesh.TriangleCount() <= wallMesh.TriangleCount() {
		t.Fatalf("opened wall (%d triangles) should have more triangles than plain wall (%d triangles)",
			openedMesh.TriangleCount(), wallMesh.TriangleCount())
	}
}

func TestTranslate(t *testing.T) {
	k := New()
	box := k.Box(1, 1, 1)
	translated := k.Translate(box, 10, 20, 30)

	min, max := translated.BoundingBox()

	// The unit box is center-origin, so after translation the bounds
	// should be approximately (9.5,19.5,29.5) to (10.5,20.5,30.5).
	const tol = 0.1
	expectMin := [3]float64{9.5, 19.5, 29.5}
	expectMax := [3]float64{10.5, 20.5, 30.5}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}

func TestBoundingBox(t *testing.T) {
	k := New()
	box := k.Box(4, 2, 1)
	min, max := box.BoundingBox()

	const tol = 0.01
	expectMin := [3]float64{-2, -1, -0.5}
	expectMax := [3]float64{2, 1, 0.5}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], expectMax[i])
		}
	}
}

func TestRotate(t *testing.T) {
	k := New()
	box := k.Box(4, 0.5, 0.5)

	// A long box along X rotated a quarter turn around Z should extend
	// along Y instead. Angles are radians.
	rotated := k.Rotate(box, 0, 0, math.Pi/2)
	min, max := rotated.BoundingBox()

	xExtent := max[0] - min[0]
	yExtent := max[1] - min[1]

	const tol = 0.2
	if math.Abs(xExtent-0.5) > tol {
		t.Errorf("rotated X extent = %f, expected ~0.5", xExtent)
	}
	if math.Abs(yExtent-4) > tol {
		t.Errorf("rotated Y extent = %f, expected ~4", yExtent)
	}
}
