package scenekit

import (
	"errors"
	"slices"

	"github.com/akmonengine/scenekit/actor"
	"github.com/akmonengine/scenekit/gizmo"
	"github.com/akmonengine/scenekit/raycast"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

const DEFAULT_TIMESTEP = 1.0 / 60.0

var ErrObjectNotFound = errors.New("object not found")

// ViewFlags toggles the debug visualization phase
type ViewFlags struct {
	Collider bool
	Axis     bool
}

// DebugDrawer receives the collision and gizmo visualization of a frame
type DebugDrawer interface {
	DrawCollider(object *Object, bounds actor.AABB, color mgl64.Vec4)
	DrawHandle(object *Object, handle gizmo.AxisHandle)
}

// World is the simulation context threaded through every frame: the object
// list, the camera and the timestep. It is not safe for concurrent use; a
// frame is a single critical section over the whole object list.
type World struct {
	// List of all objects, in insertion order (picking order)
	Objects []*Object
	Camera  raycast.Camera

	// Timestep is the notional dt applied once per frame
	Timestep float64
	// Gravity acceleration, zero by default
	Gravity mgl64.Vec3

	HoverThreshold float64
	HoverMode      gizmo.HoverMode
	HandleLength   float64
	DragMode       gizmo.DragMode

	View  ViewFlags
	Debug DebugDrawer

	Logger *zap.Logger
	Events Events

	selected *Object
	drag     dragState

	nextID         uint64
	frame          uint64
	pendingSpawn   []*Object
	pendingDespawn []uint64
}

// NewWorld creates a world viewed through camera, with default settings
func NewWorld(camera raycast.Camera) *World {
	return &World{
		Camera:         camera,
		Timestep:       DEFAULT_TIMESTEP,
		HoverThreshold: gizmo.DEFAULT_HOVER_THRESHOLD,
		HoverMode:      gizmo.HoverCrossRatio,
		HandleLength:   gizmo.DEFAULT_HANDLE_LENGTH,
		DragMode:       gizmo.DragProjectOnRay,
		View:           ViewFlags{Collider: true, Axis: true},
		Logger:         zap.NewNop(),
		Events:         NewEvents(),
	}
}

func (w *World) logger() *zap.Logger {
	if w.Logger == nil {
		w.Logger = zap.NewNop()
	}
	return w.Logger
}

// Frame returns the number of steps run so far
func (w *World) Frame() uint64 {
	return w.frame
}

// AddObject inserts an object immediately and assigns its ID.
// Use Spawn from inside a frame (GUI actions).
func (w *World) AddObject(object *Object) *Object {
	w.assignID(object)
	object.SetPosition(object.Transform.Position)
	w.Objects = append(w.Objects, object)

	w.logger().Debug("object added",
		zap.Uint64("id", object.ID),
		zap.String("name", object.Name))

	return object
}

// RemoveObject removes an object immediately
func (w *World) RemoveObject(id uint64) error {
	k := slices.IndexFunc(w.Objects, func(o *Object) bool { return o.ID == id })
	if k == -1 {
		return ErrObjectNotFound
	}

	object := w.Objects[k]
	w.Objects = slices.Delete(w.Objects, k, k+1)
	w.Events.forget(id)

	if w.drag.active && w.drag.object == object {
		w.drag = dragState{}
	}
	if w.selected == object {
		w.selected = nil
		w.Events.emit(DeselectEvent{Object: object})
	}

	w.logger().Debug("object removed",
		zap.Uint64("id", id),
		zap.String("name", object.Name))

	return nil
}

// Spawn queues an object to be added at the next frame boundary. The ID is
// assigned right away so the caller can refer to it.
func (w *World) Spawn(object *Object) *Object {
	w.assignID(object)
	w.pendingSpawn = append(w.pendingSpawn, object)

	return object
}

// Despawn queues a removal for the next frame boundary. An object spawned
// in the same frame is dropped before it is ever added.
func (w *World) Despawn(id uint64) {
	for i, object := range w.pendingSpawn {
		if object.ID == id {
			w.pendingSpawn = slices.Delete(w.pendingSpawn, i, i+1)
			return
		}
	}
	w.pendingDespawn = append(w.pendingDespawn, id)
}

// Object returns the object with the given id
func (w *World) Object(id uint64) (*Object, error) {
	for _, object := range w.Objects {
		if object.ID == id {
			return object, nil
		}
	}

	return nil, ErrObjectNotFound
}

// Duplicate deep copies an object, collider, body and handles included, and
// spawns the copy.
func (w *World) Duplicate(id uint64) (*Object, error) {
	source, err := w.Object(id)
	if err != nil {
		return nil, err
	}

	clone := &Object{}
	if err := copier.CopyWithOption(clone, source, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	clone.ID = 0
	clone.Name = source.Name + " (copy)"
	clone.Color = DefaultColor

	return w.Spawn(clone), nil
}

func (w *World) assignID(object *Object) {
	if object.ID == 0 {
		w.nextID++
		object.ID = w.nextID
	} else if object.ID > w.nextID {
		w.nextID = object.ID
	}
}

func (w *World) applyPending() {
	for _, id := range w.pendingDespawn {
		if err := w.RemoveObject(id); err != nil {
			w.logger().Warn("despawn skipped", zap.Uint64("id", id), zap.Error(err))
		}
	}
	w.pendingDespawn = w.pendingDespawn[:0]

	for _, object := range w.pendingSpawn {
		w.AddObject(object)
	}
	w.pendingSpawn = w.pendingSpawn[:0]
}

// Step runs one frame: pending spawns, collision sweep, visualization,
// physics integration, then pointer driven selection and dragging.
func (w *World) Step(input Pointer) {
	if w.Timestep <= 0 {
		w.Timestep = DEFAULT_TIMESTEP
	}
	w.frame++

	w.applyPending()

	pairs := DetectCollisions(w.Objects)
	w.Events.recordCollisions(pairs)
	w.Events.processCollisionEvents()

	w.visualize()
	w.integrate(w.Timestep)
	w.handlePointer(input)

	w.Events.flush()
}

func (w *World) integrate(dt float64) {
	for _, object := range w.Objects {
		if object.Body == nil {
			continue
		}

		delta := object.Body.Integrate(dt, object.Colliding(), w.Gravity)
		if delta != (mgl64.Vec3{}) {
			object.SetPosition(object.Transform.Position.Add(delta))
		}
	}
}

func (w *World) visualize() {
	if w.Debug == nil {
		return
	}

	if w.View.Collider {
		for _, object := range w.Objects {
			if object.Collider != nil {
				w.Debug.DrawCollider(object, object.Collider.ComputeAABB(), object.Collider.DebugColor())
			}
		}
	}

	if w.View.Axis && w.selected != nil {
		for _, handle := range w.selected.Handles {
			w.Debug.DrawHandle(w.selected, handle)
		}
	}
}
