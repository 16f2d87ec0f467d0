package scene

import "math"

// Vec3 is a 3-component vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Mul returns the component-wise product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Transform is a local spatial transform. Rotation is Euler XYZ in radians;
// the equivalent rotation matrix is Rz * Ry * Rx.
type Transform struct {
	Position Vec3 `json:"position"`
	Rotation Vec3 `json:"rotation"`
	Scale    Vec3 `json:"scale"`
}

// IdentityTransform returns the no-op transform.
func IdentityTransform() Transform {
	return Transform{Scale: Vec3{1, 1, 1}}
}

// mat3 is a row-major 3x3 rotation matrix.
type mat3 [3][3]float64

// mul returns m * o.
func (m mat3) mul(o mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// apply returns m * v.
func (m mat3) apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// rotationMatrix builds the rotation matrix Rz(e.Z) * Ry(e.Y) * Rx(e.X)
// from Euler XYZ angles in radians.
func rotationMatrix(e Vec3) mat3 {
	sx, cx := math.Sincos(e.X)
	sy, cy := math.Sincos(e.Y)
	sz, cz := math.Sincos(e.Z)

	rx := mat3{{1, 0, 0}, {0, cx, -sx}, {0, sx, cx}}
	ry := mat3{{cy, 0, sy}, {0, 1, 0}, {-sy, 0, cy}}
	rz := mat3{{cz, -sz, 0}, {sz, cz, 0}, {0, 0, 1}}

	return rz.mul(ry).mul(rx)
}

// eulerFromMatrix recovers Euler XYZ angles from a rotation matrix built by
// rotationMatrix. Near the gimbal-lock singularity (|m[2][0]| ~ 1) the X
// angle is folded into Z.
func eulerFromMatrix(m mat3) Vec3 {
	if m[2][0] <= -0.999999999 {
		return Vec3{X: 0, Y: math.Pi / 2, Z: math.Atan2(m[0][1], m[0][2])}
	}
	if m[2][0] >= 0.999999999 {
		return Vec3{X: 0, Y: -math.Pi / 2, Z: math.Atan2(-m[0][1], -m[0][2])}
	}
	return Vec3{
		X: math.Atan2(m[2][1], m[2][2]),
		Y: math.Asin(-m[2][0]),
		Z: math.Atan2(m[1][0], m[0][0]),
	}
}

// Compose returns the transform equivalent to applying child in parent's
// local space, in standard parent-then-child matrix order. Scale composes
// component-wise; shear introduced by rotated non-uniform scale is not
// representable and is dropped.
func Compose(parent, child Transform) Transform {
	pr := rotationMatrix(parent.Rotation)
	cr := rotationMatrix(child.Rotation)

	return Transform{
		Position: parent.Position.Add(pr.apply(parent.Scale.Mul(child.Position))),
		Rotation: eulerFromMatrix(pr.mul(cr)),
		Scale:    parent.Scale.Mul(child.Scale),
	}
}

// ---------------------------------------------------------------------------
// Axis convention conversion
//
// Host (Blender): right-handed, Z-up. Pascal (three.js): right-handed, Y-up.
// Pascal X = host X, Pascal Y = host Z, Pascal Z = -host Y.
// ---------------------------------------------------------------------------

// ToPascal converts a host-space transform to Pascal axes.
func (t Transform) ToPascal() Transform {
	return Transform{
		Position: Vec3{X: t.Position.X, Y: t.Position.Z, Z: -t.Position.Y},
		Rotation: Vec3{X: t.Rotation.X, Y: t.Rotation.Z, Z: -t.Rotation.Y},
		Scale:    Vec3{X: t.Scale.X, Y: t.Scale.Z, Z: t.Scale.Y},
	}
}

// FromPascal converts a Pascal-space transform back to host axes. It is the
// exact inverse of ToPascal.
func (t Transform) FromPascal() Transform {
	return Transform{
		Position: Vec3{X: t.Position.X, Y: -t.Position.Z, Z: t.Position.Y},
		Rotation: Vec3{X: t.Rotation.X, Y: -t.Rotation.Z, Z: t.Rotation.Y},
		Scale:    Vec3{X: t.Scale.X, Y: t.Scale.Z, Z: t.Scale.Y},
	}
}
