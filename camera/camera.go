// Package camera provides the editor fly camera.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera looks from Eye along Front. FovY is in degrees.
type Camera struct {
	Eye   mgl64.Vec3
	Front mgl64.Vec3
	Up    mgl64.Vec3

	FovY float64
	Near float64
	Far  float64

	Speed         float64
	RotationSpeed float64

	ViewportWidth  int
	ViewportHeight int
}

// New creates a camera with the editor defaults
func New() *Camera {
	return &Camera{
		Eye:            mgl64.Vec3{30, 30, 30},
		Front:          mgl64.Vec3{-1, -1, -1},
		Up:             mgl64.Vec3{0, 1, 0},
		FovY:           15.0,
		Near:           0.1,
		Far:            10000.0,
		Speed:          1.0,
		RotationSpeed:  0.2,
		ViewportWidth:  800,
		ViewportHeight: 600,
	}
}

func (c *Camera) Position() mgl64.Vec3 {
	return c.Eye
}

// Forward returns the normalized viewing direction
func (c *Camera) Forward() mgl64.Vec3 {
	return c.Front.Normalize()
}

func (c *Camera) Right() mgl64.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

func (c *Camera) ViewportSize() (width, height float64) {
	return float64(c.ViewportWidth), float64(c.ViewportHeight)
}

// Resize updates the viewport, ignoring non-positive sizes
func (c *Camera) Resize(width, height int) {
	if width > 0 {
		c.ViewportWidth = width
	}
	if height > 0 {
		c.ViewportHeight = height
	}
}

func (c *Camera) Aspect() float64 {
	if c.ViewportHeight == 0 {
		return 1
	}
	return float64(c.ViewportWidth) / float64(c.ViewportHeight)
}

func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect(), c.Near, c.Far)
}

func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Eye.Add(c.Front), c.Up)
}

func (c *Camera) MoveForward(delta float64) {
	c.Eye = c.Eye.Add(c.Front.Mul(c.Speed * delta))
}

func (c *Camera) MoveBackward(delta float64) {
	c.Eye = c.Eye.Sub(c.Front.Mul(c.Speed * delta))
}

func (c *Camera) MoveLeft(delta float64) {
	c.Eye = c.Eye.Sub(c.Right().Mul(c.Speed * delta))
}

func (c *Camera) MoveRight(delta float64) {
	c.Eye = c.Eye.Add(c.Right().Mul(c.Speed * delta))
}

func (c *Camera) MoveUp(delta float64) {
	c.Eye = c.Eye.Add(c.Up.Mul(c.Speed * delta))
}

func (c *Camera) MoveDown(delta float64) {
	c.Eye = c.Eye.Sub(c.Up.Mul(c.Speed * delta))
}

// Rotate turns Front by yaw degrees around the world Y axis and pitch degrees
// around the camera right axis, both scaled by RotationSpeed.
func (c *Camera) Rotate(yaw, pitch float64) {
	yaw *= c.RotationSpeed
	pitch *= c.RotationSpeed

	yawRotation := mgl64.HomogRotate3D(mgl64.DegToRad(yaw), c.Up.Normalize())
	pitchRotation := mgl64.HomogRotate3D(mgl64.DegToRad(pitch), c.Right())

	c.Front = yawRotation.Mul4(pitchRotation).Mul4x1(c.Front.Vec4(0)).Vec3()
}
