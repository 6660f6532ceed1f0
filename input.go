package scenekit

import (
	"github.com/akmonengine/scenekit/raycast"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Pointer is the state of the primary mouse button for a frame, in pixels
// from the top-left corner of the viewport. Pressed marks the frame the
// button went down; Pressed without Down is a single click.
type Pointer struct {
	Position mgl64.Vec2
	Pressed  bool
	Down     bool
}

// Click returns a single-frame press at x, y
func Click(x, y float64) Pointer {
	return Pointer{Position: mgl64.Vec2{x, y}, Pressed: true}
}

type dragState struct {
	active bool
	object *Object
	axis   int
}

// Selected returns the selected object, or nil
func (w *World) Selected() *Object {
	return w.selected
}

// Dragging reports whether a handle is being dragged, and which axis
func (w *World) Dragging() (object *Object, axis int, ok bool) {
	if !w.drag.active {
		return nil, 0, false
	}
	return w.drag.object, w.drag.axis, true
}

// Select makes the object with the given id the selection
func (w *World) Select(id uint64) error {
	object, err := w.Object(id)
	if err != nil {
		return err
	}
	w.selectObject(object)

	return nil
}

// ToggleSelect selects the object, or clears the selection if it is already
// selected. This is the object list behaviour.
func (w *World) ToggleSelect(id uint64) error {
	object, err := w.Object(id)
	if err != nil {
		return err
	}

	if w.selected == object {
		w.ClearSelection()
		return nil
	}
	w.selectObject(object)

	return nil
}

func (w *World) ClearSelection() {
	if w.selected == nil {
		return
	}

	w.endDrag()
	previous := w.selected
	previous.Color = DefaultColor
	w.selected = nil
	w.Events.emit(DeselectEvent{Object: previous})
}

func (w *World) selectObject(object *Object) {
	if w.selected == object {
		return
	}
	w.ClearSelection()

	w.selected = object
	object.Color = SelectedColor
	w.Events.emit(SelectEvent{Object: object})

	w.logger().Debug("object selected",
		zap.Uint64("id", object.ID),
		zap.String("name", object.Name))
}

// Pick returns the first object, in insertion order, whose bounds the ray
// through the screen point hits. Overlapping bounds resolve to list order,
// not to the nearest hit.
func (w *World) Pick(screen mgl64.Vec2) *Object {
	if w.Camera == nil {
		return nil
	}

	ray := raycast.ScreenToWorldRay(screen.X(), screen.Y(), w.Camera)
	if ray.Degenerate() {
		return nil
	}

	for _, object := range w.Objects {
		if raycast.IntersectAABB(ray, object.Bounds()) {
			return object
		}
	}

	return nil
}

func (w *World) handlePointer(input Pointer) {
	if input.Pressed {
		// a miss keeps the current selection
		if object := w.Pick(input.Position); object != nil {
			w.selectObject(object)
		}
		w.beginDrag(input.Position)
	} else if input.Down && w.drag.active {
		w.updateDrag(input.Position)
	}

	if !input.Down {
		w.endDrag()
	}
}

// beginDrag tests the handles of the selection in X, Y, Z order and starts
// dragging the first hovered one.
func (w *World) beginDrag(mouse mgl64.Vec2) {
	object := w.selected
	if object == nil || !object.HasHandles() || w.Camera == nil {
		return
	}

	for i, handle := range object.Handles {
		if !handle.IsHovered(mouse, w.Camera, w.HoverThreshold, w.HoverMode) {
			continue
		}

		w.drag = dragState{active: true, object: object, axis: i}
		w.Events.emit(DragStartEvent{Object: object, Axis: i})
		w.updateDrag(mouse)

		return
	}
}

func (w *World) updateDrag(mouse mgl64.Vec2) {
	object := w.drag.object
	if w.drag.axis >= len(object.Handles) {
		// handles were removed mid drag
		w.endDrag()
		return
	}
	handle := object.Handles[w.drag.axis]

	position, ok := handle.Drag(mouse, w.Camera, w.DragMode)
	if !ok {
		return
	}
	object.SetPosition(position)

	w.logger().Debug("object dragged",
		zap.Uint64("id", object.ID),
		zap.Stringer("axis", handle.Axis),
		zap.Float64s("position", position[:]))
}

func (w *World) endDrag() {
	if !w.drag.active {
		return
	}

	w.Events.emit(DragEndEvent{Object: w.drag.object, Axis: w.drag.axis})
	w.drag = dragState{}
}
