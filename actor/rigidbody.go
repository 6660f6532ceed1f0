package actor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// MinMass is the lower bound applied when a non-positive mass is assigned
const MinMass = 1e-3

// RigidBody holds the linear state integrated once per frame.
// There is no angular motion, restitution or friction.
type RigidBody struct {
	Mass float64

	// Force is an external force that keeps acting every frame until it is
	// changed or a collision zeroes it.
	Force    mgl64.Vec3
	Velocity mgl64.Vec3 // Linear velocity (units/s)
}

// NewRigidBody creates a body at rest with the given mass
func NewRigidBody(mass float64) *RigidBody {
	rb := &RigidBody{}
	rb.SetMass(mass)

	return rb
}

// SetMass assigns the mass, clamping it to MinMass.
// It reports whether the value had to be clamped.
func (rb *RigidBody) SetMass(mass float64) bool {
	if !(mass >= MinMass) {
		rb.Mass = MinMass
		return true
	}
	rb.Mass = mass

	return false
}

func (rb *RigidBody) AddForce(force mgl64.Vec3) {
	rb.Force = rb.Force.Add(force)
}

func (rb *RigidBody) SetForce(force mgl64.Vec3) {
	rb.Force = force
}

func (rb *RigidBody) SetVelocity(velocity mgl64.Vec3) {
	rb.Velocity = velocity
}

// Stop clears both the force and the velocity
func (rb *RigidBody) Stop() {
	rb.Force = mgl64.Vec3{0, 0, 0}
	rb.Velocity = mgl64.Vec3{0, 0, 0}
}

// Integrate advances the body by dt with semi-implicit Euler and returns the
// displacement to apply to the owner. A colliding body stops dead: force and
// velocity are zeroed before integrating, so the displacement is zero.
func (rb *RigidBody) Integrate(dt float64, colliding bool, gravity mgl64.Vec3) mgl64.Vec3 {
	if colliding {
		rb.Stop()
		return mgl64.Vec3{0, 0, 0}
	}

	// a body written directly, bypassing SetMass
	if !(rb.Mass >= MinMass) {
		rb.Mass = MinMass
	}

	acceleration := rb.Force.Mul(1.0 / rb.Mass).Add(gravity)
	rb.Velocity = rb.Velocity.Add(acceleration.Mul(dt))

	return rb.Velocity.Mul(dt)
}
