// Package collision implements the pairwise overlap tests between colliders.
package collision

import (
	"math"

	"github.com/akmonengine/scenekit/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// SAT_EPSILON is added to the diagonal of |R| so that near-parallel axes do
// not lose the test to rounding errors.
const SAT_EPSILON = 1e-6

// Test reports whether a and b overlap. It is symmetric and depends only on
// the current geometric state of both colliders.
func Test(a, b *actor.Collider) bool {
	if a == nil || b == nil {
		return false
	}

	switch {
	case a.Kind == actor.ColliderSphere && b.Kind == actor.ColliderSphere:
		return SphereSphere(a, b)
	case a.Kind == actor.ColliderBox && b.Kind == actor.ColliderBox:
		return BoxBox(a, b)
	case a.Kind == actor.ColliderBox && b.Kind == actor.ColliderSphere:
		return BoxSphere(a, b)
	case a.Kind == actor.ColliderSphere && b.Kind == actor.ColliderBox:
		return BoxSphere(b, a)
	}

	return false
}

// SphereSphere overlaps iff the squared distance between centers is strictly
// lower than the squared sum of radii.
func SphereSphere(a, b *actor.Collider) bool {
	t := b.Center().Sub(a.Center())
	r := a.Radius() + b.Radius()

	return t.Dot(t) < r*r
}

// BoxBox runs the separating axis test on the face normals of both boxes.
// Only 6 of the 15 axes of a complete 3D SAT are tested: edge-edge axes are
// skipped, so some separated configurations report an overlap.
func BoxBox(a, b *actor.Collider) bool {
	rotAT := a.Rotation.Transpose()
	// translation expressed in A's frame
	t := rotAT.Mul3x1(b.Center().Sub(a.Center()))
	R := rotAT.Mul3(b.Rotation)

	var absR mgl64.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			absR.Set(i, j, math.Abs(R.At(i, j)))
		}
		absR.Set(i, i, absR.At(i, i)+SAT_EPSILON)
	}

	ha := a.HalfExtents()
	hb := b.HalfExtents()

	// A's face normals
	for i := 0; i < 3; i++ {
		ra := ha[i]
		rb := hb[0]*absR.At(i, 0) + hb[1]*absR.At(i, 1) + hb[2]*absR.At(i, 2)
		if math.Abs(t[i]) >= ra+rb {
			return false
		}
	}

	// B's face normals
	for j := 0; j < 3; j++ {
		ra := ha[0]*absR.At(0, j) + ha[1]*absR.At(1, j) + ha[2]*absR.At(2, j)
		rb := hb[j]
		d := t[0]*R.At(0, j) + t[1]*R.At(1, j) + t[2]*R.At(2, j)
		if math.Abs(d) >= ra+rb {
			return false
		}
	}

	return true
}

// BoxSphere clamps the sphere center, expressed in the box local axes, into
// the box half extents and compares the residual with the radius.
func BoxSphere(box, sphere *actor.Collider) bool {
	local := box.Rotation.Transpose().Mul3x1(sphere.Center().Sub(box.Center()))
	half := box.HalfExtents()

	closest := mgl64.Vec3{
		mgl64.Clamp(local.X(), -half.X(), half.X()),
		mgl64.Clamp(local.Y(), -half.Y(), half.Y()),
		mgl64.Clamp(local.Z(), -half.Z(), half.Z()),
	}
	q := local.Sub(closest)
	r := sphere.Radius()

	return q.Dot(q) < r*r
}
