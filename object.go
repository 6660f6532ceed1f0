package scenekit

import (
	"github.com/akmonengine/scenekit/actor"
	"github.com/akmonengine/scenekit/gizmo"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	DefaultColor  = mgl64.Vec3{1, 1, 1}
	SelectedColor = mgl64.Vec3{1, 0, 0}
)

// Object is a scene entry. It exclusively owns at most one collider, one
// rigid body, and either zero or three axis handles.
type Object struct {
	ID        uint64
	Name      string
	Transform actor.Transform
	Color     mgl64.Vec3

	Collider *actor.Collider
	Body     *actor.RigidBody
	Handles  []gizmo.AxisHandle
}

// NewObject creates an object without collider, body or handles
func NewObject(name string, transform actor.Transform) *Object {
	return &Object{
		Name:      name,
		Transform: transform,
		Color:     DefaultColor,
	}
}

func (o *Object) Position() mgl64.Vec3 {
	return o.Transform.Position
}

// SetPosition moves the object along with its collider anchor and handles
func (o *Object) SetPosition(position mgl64.Vec3) {
	o.Transform.Position = position
	if o.Collider != nil {
		o.Collider.SetPosition(position)
	}
	for i := range o.Handles {
		o.Handles[i].Start = position
	}
}

// SetRotationAxis updates the Euler angles, a box collider follows the new
// orientation.
func (o *Object) SetRotationAxis(rotation mgl64.Vec3) {
	o.Transform.RotationAxis = rotation
	if o.Collider != nil && o.Collider.Kind == actor.ColliderBox {
		o.Collider.SetRotation(o.Transform.RotationMatrix())
	}
}

// SetScale changes the visual scale only. The collider keeps its own scale.
func (o *Object) SetScale(scale mgl64.Vec3) {
	o.Transform.Scale = scale
}

// AddCollider replaces the collider with a new one built from the transform.
// Spheres get a unit radius, boxes take the transform scale as size.
func (o *Object) AddCollider(kind actor.ColliderKind) *actor.Collider {
	switch kind {
	case actor.ColliderBox:
		o.Collider = actor.NewBoxCollider(o.Transform.Position, o.Transform.Scale, o.Transform.RotationMatrix())
	default:
		o.Collider = actor.NewSphereCollider(o.Transform.Position, 1.0)
	}

	return o.Collider
}

func (o *Object) AddBody(mass float64) *actor.RigidBody {
	o.Body = actor.NewRigidBody(mass)
	return o.Body
}

// AddHandles creates the three translation handles at the current position
func (o *Object) AddHandles(length float64) {
	handles := gizmo.NewAxisHandles(o.Transform.Position, length)
	o.Handles = handles[:]
}

func (o *Object) HasHandles() bool {
	return len(o.Handles) == 3
}

// Colliding reports the collision flag computed during the last sweep
func (o *Object) Colliding() bool {
	return o.Collider != nil && o.Collider.Collision
}

// Bounds is the picking proxy: a box centered on the position with the
// transform scale as size. It covers the drawn mesh, not [pos, pos+scale].
func (o *Object) Bounds() actor.AABB {
	return actor.NewAABB(o.Transform.Position, o.Transform.Scale.Mul(0.5))
}
