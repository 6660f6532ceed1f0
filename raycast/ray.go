// Package raycast builds picking rays from screen coordinates and intersects
// them with boxes and lines.
package raycast

import (
	"math"

	"github.com/akmonengine/scenekit/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is the view the rays are cast from.
type Camera interface {
	Position() mgl64.Vec3
	ViewMatrix() mgl64.Mat4
	ProjectionMatrix() mgl64.Mat4
	ViewportSize() (width, height float64)
}

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3 // Normalized direction
}

// NewRay normalizes direction. A zero direction produces a degenerate ray.
func NewRay(origin, direction mgl64.Vec3) Ray {
	if l := direction.Len(); l > 0 {
		direction = direction.Mul(1.0 / l)
	}

	return Ray{Origin: origin, Direction: direction}
}

// Degenerate reports a ray whose direction cannot be used
func (r Ray) Degenerate() bool {
	l := r.Direction.Len()
	return l == 0 || math.IsNaN(l) || math.IsInf(l, 0)
}

// At returns Origin + t * Direction
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToWorldRay converts pixel coordinates (origin top-left) into a world
// space ray starting at the camera position.
func ScreenToWorldRay(screenX, screenY float64, camera Camera) Ray {
	width, height := camera.ViewportSize()
	if width <= 0 || height <= 0 {
		return Ray{Origin: camera.Position()}
	}

	// normalized device coords, Y flipped
	ndcX := 2.0*screenX/width - 1.0
	ndcY := 1.0 - 2.0*screenY/height

	rayClip := mgl64.Vec4{ndcX, ndcY, -1.0, 1.0}
	rayEye := camera.ProjectionMatrix().Inv().Mul4x1(rayClip)
	// keep a direction, not a point
	rayEye = mgl64.Vec4{rayEye.X(), rayEye.Y(), -1.0, 0.0}

	rayWorld := camera.ViewMatrix().Inv().Mul4x1(rayEye).Vec3()

	return NewRay(camera.Position(), rayWorld)
}

// IntersectAABB tests the ray against the box with the slab method. The box
// is hit when the parametric intervals of the three slabs share a point and
// that interval is not entirely behind the origin.
func IntersectAABB(r Ray, box actor.AABB) bool {
	if r.Degenerate() {
		return false
	}

	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] == 0 {
			// parallel to the slab: only inside it can the ray hit
			if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
				return false
			}
			continue
		}

		t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
		t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if tmin > t2 || t1 > tmax {
			return false
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	return tmax >= 0
}
