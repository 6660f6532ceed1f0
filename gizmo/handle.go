// Package gizmo implements the translation handles drawn on a selected object.
package gizmo

import (
	"github.com/akmonengine/scenekit/raycast"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DEFAULT_HOVER_THRESHOLD = 1.0
	DEFAULT_HANDLE_LENGTH   = 2.0
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// DragMode selects how a pointer position is turned into a new anchor point
type DragMode int

const (
	// DragProjectOnRay projects the handle start onto the picking ray. The
	// result is not constrained to the handle axis.
	DragProjectOnRay DragMode = iota
	// DragAlongAxis keeps the result on the handle line.
	DragAlongAxis
)

// HoverMode selects the measure compared against the hover threshold
type HoverMode int

const (
	// HoverCrossRatio uses |cross(rayDir, dir)| / |dir|, which depends on the
	// angle between the picking ray and the handle, not on where the handle is.
	HoverCrossRatio HoverMode = iota
	// HoverLineDistance uses the distance between the ray line and the
	// handle line.
	HoverLineDistance
)

// AxisHandle is one translation handle. Start mirrors the owner position,
// Dir is the axis scaled to the visible handle length.
type AxisHandle struct {
	Axis  Axis
	Color mgl64.Vec4
	Start mgl64.Vec3
	Dir   mgl64.Vec3
}

// NewAxisHandles creates the X, Y and Z handles anchored at position
func NewAxisHandles(position mgl64.Vec3, length float64) [3]AxisHandle {
	if length <= 0 {
		length = DEFAULT_HANDLE_LENGTH
	}

	return [3]AxisHandle{
		{Axis: AxisX, Color: mgl64.Vec4{1, 0, 0, 1}, Start: position, Dir: mgl64.Vec3{length, 0, 0}},
		{Axis: AxisY, Color: mgl64.Vec4{0, 1, 0, 1}, Start: position, Dir: mgl64.Vec3{0, length, 0}},
		{Axis: AxisZ, Color: mgl64.Vec4{0, 0, 1, 1}, Start: position, Dir: mgl64.Vec3{0, 0, length}},
	}
}

// End returns the tip of the handle
func (h AxisHandle) End() mgl64.Vec3 {
	return h.Start.Add(h.Dir)
}

// IsHovered casts a picking ray through mouse and reports whether the mode's
// measure is below threshold.
func (h AxisHandle) IsHovered(mouse mgl64.Vec2, camera raycast.Camera, threshold float64, mode HoverMode) bool {
	ray := raycast.ScreenToWorldRay(mouse.X(), mouse.Y(), camera)

	var distance float64
	var ok bool
	if mode == HoverLineDistance {
		distance, ok = raycast.DistanceToLine(ray, h.Start, h.Dir)
	} else {
		distance, ok = raycast.CrossRatio(ray, h.Dir)
	}
	if !ok {
		return false
	}

	return distance < threshold
}

// Drag returns the new anchor point for the pointer position. ok is false
// when no usable ray can be built.
func (h AxisHandle) Drag(mouse mgl64.Vec2, camera raycast.Camera, mode DragMode) (mgl64.Vec3, bool) {
	ray := raycast.ScreenToWorldRay(mouse.X(), mouse.Y(), camera)
	if ray.Degenerate() {
		return h.Start, false
	}

	if mode == DragAlongAxis {
		return raycast.ClosestPointOnLineToRay(ray, h.Start, h.Dir)
	}

	return raycast.ProjectOntoRay(ray, h.Start), true
}
