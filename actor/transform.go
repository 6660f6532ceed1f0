package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents the placement of an object in 3D space.
// RotationAxis holds Euler angles in degrees around X, Y and Z.
type Transform struct {
	Position     mgl64.Vec3
	RotationAxis mgl64.Vec3
	Scale        mgl64.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position:     mgl64.Vec3{0, 0, 0},
		RotationAxis: mgl64.Vec3{0, 0, 0},
		Scale:        mgl64.Vec3{1, 1, 1},
	}
}

// RotationMatrix builds Rz * Ry * Rx from the Euler angles, the same order the
// model matrix is composed with when rendering.
func (t Transform) RotationMatrix() mgl64.Mat3 {
	rx := mgl64.Rotate3DX(mgl64.DegToRad(t.RotationAxis.X()))
	ry := mgl64.Rotate3DY(mgl64.DegToRad(t.RotationAxis.Y()))
	rz := mgl64.Rotate3DZ(mgl64.DegToRad(t.RotationAxis.Z()))

	return rz.Mul3(ry).Mul3(rx)
}
