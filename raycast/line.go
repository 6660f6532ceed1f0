package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PARALLEL_EPSILON is the squared cross product length under which a ray and
// a line are treated as parallel.
const PARALLEL_EPSILON = 1e-12

// DistanceToLine returns the minimum distance between the ray, taken as an
// infinite line, and the line through start with direction dir.
// ok is false when either direction is degenerate.
func DistanceToLine(r Ray, start, dir mgl64.Vec3) (distance float64, ok bool) {
	if r.Degenerate() || dir.Len() == 0 {
		return 0, false
	}

	w := start.Sub(r.Origin)
	n := r.Direction.Cross(dir)
	if n.LenSqr() < PARALLEL_EPSILON {
		// parallel lines: distance from start to the ray line
		return w.Cross(r.Direction).Len(), true
	}

	return math.Abs(w.Dot(n)) / n.Len(), true
}

// CrossRatio returns |cross(ray direction, dir)| / |dir|, the sine of the
// angle between the ray and dir. The line position does not enter it.
// ok is false when either direction is degenerate.
func CrossRatio(r Ray, dir mgl64.Vec3) (ratio float64, ok bool) {
	if r.Degenerate() || dir.Len() == 0 {
		return 0, false
	}

	return r.Direction.Cross(dir).Len() / dir.Len(), true
}

// ProjectOntoRay returns the point of the ray line closest to point
func ProjectOntoRay(r Ray, point mgl64.Vec3) mgl64.Vec3 {
	t := point.Sub(r.Origin).Dot(r.Direction)
	return r.At(t)
}

// ClosestPointOnLineToRay returns the point of the line (start, dir) nearest
// to the ray line. ok is false for parallel or degenerate inputs.
func ClosestPointOnLineToRay(r Ray, start, dir mgl64.Vec3) (point mgl64.Vec3, ok bool) {
	if r.Degenerate() || dir.Len() == 0 {
		return start, false
	}

	w0 := start.Sub(r.Origin)
	a := dir.Dot(dir)
	b := dir.Dot(r.Direction)
	c := r.Direction.Dot(r.Direction)
	d := dir.Dot(w0)
	e := r.Direction.Dot(w0)

	denom := a*c - b*b
	if denom < PARALLEL_EPSILON {
		return start, false
	}

	s := (b*e - c*d) / denom
	return start.Add(dir.Mul(s)), true
}

