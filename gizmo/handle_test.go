package gizmo

import (
	"math"
	"testing"

	"github.com/akmonengine/scenekit/raycast"
	"github.com/go-gl/mathgl/mgl64"
)

func vec3Equal(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

// testCamera sits at (0, 0, 10) looking down -Z with a 90 degree frustum on
// a 100x100 viewport: a point (x, y, 0) projects to pixel (50+5x, 50-5y).
type testCamera struct {
	width, height float64
}

func (c testCamera) Position() mgl64.Vec3 { return mgl64.Vec3{0, 0, 10} }

func (c testCamera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position(), mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
}

func (c testCamera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(math.Pi/2, 1, 0.1, 100)
}

func (c testCamera) ViewportSize() (float64, float64) { return c.width, c.height }

var cam = testCamera{width: 100, height: 100}

func TestNewAxisHandles(t *testing.T) {
	position := mgl64.Vec3{1, 2, 3}
	handles := NewAxisHandles(position, 2)

	tests := []struct {
		axis  Axis
		color mgl64.Vec4
		dir   mgl64.Vec3
	}{
		{AxisX, mgl64.Vec4{1, 0, 0, 1}, mgl64.Vec3{2, 0, 0}},
		{AxisY, mgl64.Vec4{0, 1, 0, 1}, mgl64.Vec3{0, 2, 0}},
		{AxisZ, mgl64.Vec4{0, 0, 1, 1}, mgl64.Vec3{0, 0, 2}},
	}

	for i, tt := range tests {
		h := handles[i]
		if h.Axis != tt.axis || h.Color != tt.color || h.Dir != tt.dir {
			t.Errorf("handle %d = %+v, want axis %v color %v dir %v", i, h, tt.axis, tt.color, tt.dir)
		}
		if h.Start != position {
			t.Errorf("handle %d start = %v, want %v", i, h.Start, position)
		}
		if h.End() != position.Add(tt.dir) {
			t.Errorf("handle %d end = %v", i, h.End())
		}
	}

	defaults := NewAxisHandles(mgl64.Vec3{}, 0)
	if defaults[0].Dir.Len() != DEFAULT_HANDLE_LENGTH {
		t.Errorf("non-positive length should use the default, got %v", defaults[0].Dir.Len())
	}
}

func TestAxisHandle_IsHoveredCrossRatio(t *testing.T) {
	handles := NewAxisHandles(mgl64.Vec3{2, -2, 0}, 2)

	// the measure is the sine of the angle between the ray and the axis
	tests := []struct {
		name      string
		mouse     mgl64.Vec2
		threshold float64
		want      [3]bool
	}{
		{"on the anchor", mgl64.Vec2{60, 60}, DEFAULT_HOVER_THRESHOLD, [3]bool{true, true, true}},
		{"far from every handle", mgl64.Vec2{10, 90}, DEFAULT_HOVER_THRESHOLD, [3]bool{true, true, true}},
		{"on the anchor, tight threshold", mgl64.Vec2{60, 60}, 0.9, [3]bool{false, false, true}},
		{"far away, tight threshold", mgl64.Vec2{10, 90}, 0.9, [3]bool{true, true, true}},
		{"far away, tighter threshold", mgl64.Vec2{10, 90}, 0.8, [3]bool{false, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, h := range handles {
				if got := h.IsHovered(tt.mouse, cam, tt.threshold, HoverCrossRatio); got != tt.want[i] {
					t.Errorf("%v handle hovered = %v, want %v", h.Axis, got, tt.want[i])
				}
			}
		})
	}
}

func TestAxisHandle_CrossRatioValue(t *testing.T) {
	h := NewAxisHandles(mgl64.Vec3{2, -2, 0}, 2)[AxisX]

	// ray through (-8, -8, 0): |cross(dir, x)| = sqrt(64+100) / sqrt(228)
	ray := raycast.ScreenToWorldRay(10, 90, cam)
	got, ok := raycast.CrossRatio(ray, h.Dir)
	want := math.Sqrt(164) / math.Sqrt(228)
	if !ok || math.Abs(got-want) > 1e-9 {
		t.Fatalf("CrossRatio() = %v, %v; want %v", got, ok, want)
	}

	// the line distance for the same pointer is well above the threshold
	if h.IsHovered(mgl64.Vec2{10, 90}, cam, DEFAULT_HOVER_THRESHOLD, HoverLineDistance) {
		t.Error("line distance mode should not hover")
	}
	if !h.IsHovered(mgl64.Vec2{10, 90}, cam, DEFAULT_HOVER_THRESHOLD, HoverCrossRatio) {
		t.Error("cross ratio mode should hover")
	}
}

func TestAxisHandle_IsHoveredLineDistance(t *testing.T) {
	handles := NewAxisHandles(mgl64.Vec3{2, -2, 0}, 2)

	tests := []struct {
		name  string
		mouse mgl64.Vec2
		want  [3]bool
	}{
		{"on the anchor", mgl64.Vec2{60, 60}, [3]bool{true, true, true}},
		{"on the Y handle", mgl64.Vec2{60, 50}, [3]bool{false, true, false}},
		{"far away", mgl64.Vec2{10, 90}, [3]bool{false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, h := range handles {
				if got := h.IsHovered(tt.mouse, cam, DEFAULT_HOVER_THRESHOLD, HoverLineDistance); got != tt.want[i] {
					t.Errorf("%v handle hovered = %v, want %v", h.Axis, got, tt.want[i])
				}
			}
		})
	}
}

func TestAxisHandle_IsHoveredLineDistanceThreshold(t *testing.T) {
	h := NewAxisHandles(mgl64.Vec3{2, -2, 0}, 2)[AxisX]

	// the ray through (60, 50) passes 2 units away from the X handle line
	mouse := mgl64.Vec2{60, 50}
	if h.IsHovered(mouse, cam, 1.9, HoverLineDistance) {
		t.Error("should not be hovered below the distance")
	}
	if !h.IsHovered(mouse, cam, 2.1, HoverLineDistance) {
		t.Error("should be hovered above the distance")
	}
}

func TestAxisHandle_DegenerateCamera(t *testing.T) {
	h := NewAxisHandles(mgl64.Vec3{}, 2)[AxisX]
	broken := testCamera{}

	for _, mode := range []HoverMode{HoverCrossRatio, HoverLineDistance} {
		if h.IsHovered(mgl64.Vec2{50, 50}, broken, DEFAULT_HOVER_THRESHOLD, mode) {
			t.Errorf("mode %d: no ray, no hover", mode)
		}
	}

	got, ok := h.Drag(mgl64.Vec2{50, 50}, broken, DragProjectOnRay)
	if ok || got != h.Start {
		t.Errorf("Drag() = %v, %v; want start and false", got, ok)
	}
}

func TestAxisHandle_DragProjectOnRay(t *testing.T) {
	h := NewAxisHandles(mgl64.Vec3{2, -2, 0}, 2)[AxisX]
	mouse := mgl64.Vec2{65, 60}

	got, ok := h.Drag(mouse, cam, DragProjectOnRay)
	if !ok {
		t.Fatal("drag should succeed")
	}

	ray := raycast.ScreenToWorldRay(mouse.X(), mouse.Y(), cam)
	want := ray.Origin.Add(ray.Direction.Mul(h.Start.Sub(ray.Origin).Dot(ray.Direction)))
	if !vec3Equal(got, want, 1e-9) {
		t.Errorf("Drag() = %v, want %v", got, want)
	}

	// the result lies on the picking ray, not on the handle axis
	if d := got.Sub(ray.Origin).Cross(ray.Direction).Len(); d > 1e-9 {
		t.Errorf("result is %v away from the ray", d)
	}
	if math.Abs(got.Y()-h.Start.Y()) < 1e-3 {
		t.Errorf("projection should leave the axis line, got %v", got)
	}
}

func TestAxisHandle_DragAlongAxis(t *testing.T) {
	handles := NewAxisHandles(mgl64.Vec3{2, -2, 0}, 2)

	tests := []struct {
		name   string
		handle AxisHandle
		mouse  mgl64.Vec2
		want   mgl64.Vec3
		wantOk bool
	}{
		{"X handle", handles[AxisX], mgl64.Vec2{65, 60}, mgl64.Vec3{3, -2, 0}, true},
		{"Y handle", handles[AxisY], mgl64.Vec2{60, 45}, mgl64.Vec3{2, 1, 0}, true},
		{"X handle, pointer off axis", handles[AxisX], mgl64.Vec2{55, 50}, mgl64.Vec3{1, -2, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.handle.Drag(tt.mouse, cam, DragAlongAxis)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if !vec3Equal(got, tt.want, 1e-9) {
				t.Errorf("Drag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAxis_String(t *testing.T) {
	if AxisX.String() != "x" || AxisY.String() != "y" || AxisZ.String() != "z" {
		t.Errorf("unexpected names %v %v %v", AxisX, AxisY, AxisZ)
	}
}
