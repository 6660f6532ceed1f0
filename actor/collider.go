package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ColliderKind tags the geometric proxy held by a Collider
type ColliderKind int

const (
	ColliderSphere ColliderKind = iota
	ColliderBox
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderSphere:
		return "sphere"
	case ColliderBox:
		return "box"
	default:
		return "unknown"
	}
}

var (
	collidingColor = mgl64.Vec4{1, 0, 0, 1}
	restingColor   = mgl64.Vec4{0, 1, 0, 1}
)

// Collider is the geometric proxy attached to an object.
// Size and Rotation are only meaningful for boxes.
type Collider struct {
	Kind ColliderKind

	// Position follows the owning object, RelativePosition is an offset the
	// user edits independently of the mesh.
	Position         mgl64.Vec3
	RelativePosition mgl64.Vec3
	Scale            float64

	Size     mgl64.Vec3
	Rotation mgl64.Mat3

	// Collision is true iff the collider overlaps at least one other collider
	// during the current frame.
	Collision bool
}

// NewSphereCollider creates a sphere of the given radius anchored at position
func NewSphereCollider(position mgl64.Vec3, radius float64) *Collider {
	c := &Collider{
		Kind:     ColliderSphere,
		Position: position,
		Rotation: mgl64.Ident3(),
	}
	c.SetScale(radius)

	return c
}

// NewBoxCollider creates an oriented box anchored at position
func NewBoxCollider(position, size mgl64.Vec3, rotation mgl64.Mat3) *Collider {
	c := &Collider{
		Kind:     ColliderBox,
		Position: position,
		Scale:    1.0,
		Rotation: rotation,
	}
	c.SetSize(size)

	return c
}

// Center returns the world-space center used by the collision tests
func (c *Collider) Center() mgl64.Vec3 {
	return c.Position.Add(c.RelativePosition)
}

// Radius returns the sphere radius (the uniform scale)
func (c *Collider) Radius() float64 {
	return c.Scale
}

// HalfExtents returns size*scale/2. A sphere reports its radius on every axis.
func (c *Collider) HalfExtents() mgl64.Vec3 {
	if c.Kind == ColliderSphere {
		return mgl64.Vec3{c.Scale, c.Scale, c.Scale}
	}

	return c.Size.Mul(c.Scale * 0.5)
}

// SetScale clamps negative values to zero
func (c *Collider) SetScale(scale float64) {
	c.Scale = math.Max(0, scale)
}

// SetSize clamps every negative component to zero
func (c *Collider) SetSize(size mgl64.Vec3) {
	c.Size = mgl64.Vec3{
		math.Max(0, size.X()),
		math.Max(0, size.Y()),
		math.Max(0, size.Z()),
	}
}

func (c *Collider) SetPosition(position mgl64.Vec3) {
	c.Position = position
}

func (c *Collider) SetRelativePosition(offset mgl64.Vec3) {
	c.RelativePosition = offset
}

func (c *Collider) SetRotation(rotation mgl64.Mat3) {
	c.Rotation = rotation
}

// DebugColor is the wireframe color: red while colliding, green otherwise
func (c *Collider) DebugColor() mgl64.Vec4 {
	if c.Collision {
		return collidingColor
	}

	return restingColor
}

// ComputeAABB returns the world bounds of the collider
func (c *Collider) ComputeAABB() AABB {
	center := c.Center()
	if c.Kind == ColliderSphere {
		return NewAABB(center, c.HalfExtents())
	}

	half := c.HalfExtents()
	// |R| * half gives the extent of the rotated box along each world axis
	var extent mgl64.Vec3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			extent[i] += math.Abs(c.Rotation.At(i, j)) * half[j]
		}
	}

	return NewAABB(center, extent)
}
