package main

import (
	"github.com/akmonengine/scenekit"
	"github.com/akmonengine/scenekit/actor"
	"github.com/akmonengine/scenekit/camera"
	"github.com/akmonengine/scenekit/gizmo"
	"github.com/akmonengine/scenekit/internal/config"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// LogDrawer is a DebugDrawer printing what a renderer would draw
type LogDrawer struct {
	Log *zap.Logger
}

func (d *LogDrawer) DrawCollider(object *scenekit.Object, bounds actor.AABB, color mgl64.Vec4) {
	d.Log.Debug("draw collider",
		zap.String("object", object.Name),
		zap.Stringer("kind", object.Collider.Kind),
		zap.Float64s("min", bounds.Min[:]),
		zap.Float64s("max", bounds.Max[:]),
		zap.Bool("colliding", object.Collider.Collision),
		zap.Float64s("color", color[:]))
}

func (d *LogDrawer) DrawHandle(object *scenekit.Object, handle gizmo.AxisHandle) {
	end := handle.End()
	d.Log.Debug("draw handle",
		zap.String("object", object.Name),
		zap.Stringer("axis", handle.Axis),
		zap.Float64s("start", handle.Start[:]),
		zap.Float64s("end", end[:]))
}

// NewCamera builds the fly camera from the camera and window sections
func NewCamera(cfg config.CameraConfig, window config.WindowConfig) *camera.Camera {
	cam := camera.New()
	cam.Eye = cfg.Eye
	cam.Front = cfg.Front
	cam.Up = cfg.Up
	cam.FovY = cfg.FovY
	cam.Near = cfg.Near
	cam.Far = cfg.Far
	cam.Speed = cfg.Speed
	cam.Resize(window.Width, window.Height)

	return cam
}

// SetupScene creates the world and its startup objects
func SetupScene(cfg *config.Config, log *zap.Logger) *scenekit.World {
	world := scenekit.NewWorld(NewCamera(cfg.Camera, cfg.Window))
	world.Logger = log.Named("world")
	world.Timestep = cfg.Simulation.Timestep
	world.Gravity = cfg.Simulation.Gravity
	world.HoverThreshold = cfg.Simulation.HoverThreshold
	world.HandleLength = cfg.Simulation.HandleLength
	world.View = scenekit.ViewFlags{Collider: cfg.View.Collider, Axis: cfg.View.Axis}
	world.Debug = &LogDrawer{Log: log.Named("draw")}

	if cfg.Simulation.DragMode == config.DragModeAxis {
		world.DragMode = gizmo.DragAlongAxis
	}
	if cfg.Simulation.HoverMode == config.HoverModeDistance {
		world.HoverMode = gizmo.HoverLineDistance
	}

	for _, oc := range cfg.Scene.Objects {
		world.AddObject(NewObject(oc, world.HandleLength, log))
	}

	return world
}

// NewObject creates an object from its config entry. Values that have to be
// clamped are logged as warnings.
func NewObject(oc config.ObjectConfig, handleLength float64, log *zap.Logger) *scenekit.Object {
	transform := actor.NewTransform()
	transform.Position = oc.Position
	transform.RotationAxis = oc.Rotation
	if oc.Scale != ([3]float64{}) {
		transform.Scale = oc.Scale
	}

	object := scenekit.NewObject(oc.Name, transform)

	switch oc.Collider {
	case "box":
		object.AddCollider(actor.ColliderBox)
	case "sphere":
		object.AddCollider(actor.ColliderSphere)
	}
	if object.Collider != nil && oc.ColliderScale != 0 {
		if oc.ColliderScale < 0 {
			log.Warn("negative collider scale clamped to 0",
				zap.String("object", oc.Name),
				zap.Float64("scale", oc.ColliderScale))
		}
		object.Collider.SetScale(oc.ColliderScale)
	}

	if oc.Body {
		body := object.AddBody(actor.MinMass)
		if body.SetMass(oc.Mass) {
			log.Warn("mass clamped",
				zap.String("object", oc.Name),
				zap.Float64("mass", oc.Mass),
				zap.Float64("clamped", body.Mass))
		}
		body.SetForce(oc.Force)
		body.SetVelocity(oc.Velocity)
	}

	if oc.Handles {
		object.AddHandles(handleLength)
	}

	return object
}

// PointerScript maps frame numbers to pointer states
type PointerScript map[uint64]scenekit.Pointer

func NewPointerScript(events []config.PointerEvent) PointerScript {
	script := make(PointerScript, len(events))
	for _, e := range events {
		if e.Frame < 1 {
			continue
		}
		script[uint64(e.Frame)] = scenekit.Pointer{
			Position: mgl64.Vec2{e.X, e.Y},
			Pressed:  e.Pressed,
			Down:     e.Down,
		}
	}

	return script
}

// At returns the pointer for a frame; frames without an entry are released
func (s PointerScript) At(frame uint64) scenekit.Pointer {
	return s[frame]
}
