package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewAABB(t *testing.T) {
	tests := []struct {
		name    string
		center  mgl64.Vec3
		half    mgl64.Vec3
		wantMin mgl64.Vec3
		wantMax mgl64.Vec3
	}{
		{"unit at origin", mgl64.Vec3{}, mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{-0.5, -0.5, -0.5}, mgl64.Vec3{0.5, 0.5, 0.5}},
		{"offset", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 1, 2}, mgl64.Vec3{2, 3, 4}},
		{"negative half extents are mirrored", mgl64.Vec3{}, mgl64.Vec3{-1, 2, -3}, mgl64.Vec3{-1, -2, -3}, mgl64.Vec3{1, 2, 3}},
		{"flat", mgl64.Vec3{}, mgl64.Vec3{1, 0, 1}, mgl64.Vec3{-1, 0, -1}, mgl64.Vec3{1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewAABB(tt.center, tt.half)
			if box.Min != tt.wantMin || box.Max != tt.wantMax {
				t.Errorf("NewAABB() = %v..%v, want %v..%v", box.Min, box.Max, tt.wantMin, tt.wantMax)
			}
			if !vec3Equal(box.Center(), tt.center, 1e-12) {
				t.Errorf("Center() = %v, want %v", box.Center(), tt.center)
			}
		})
	}
}

func TestAABB_ContainsPoint(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{10, 10, 10}}

	tests := []struct {
		name  string
		point mgl64.Vec3
		want  bool
	}{
		{"inside", mgl64.Vec3{5, 5, 5}, true},
		{"on min corner", mgl64.Vec3{0, 0, 0}, true},
		{"on max face", mgl64.Vec3{10, 5, 5}, true},
		{"outside X", mgl64.Vec3{11, 5, 5}, false},
		{"outside Y", mgl64.Vec3{5, -1, 5}, false},
		{"outside Z", mgl64.Vec3{5, 5, 10.001}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.ContainsPoint(tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestAABB_Overlaps(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}

	tests := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"overlapping", AABB{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{3, 3, 3}}, true},
		{"contained", AABB{Min: mgl64.Vec3{0.5, 0.5, 0.5}, Max: mgl64.Vec3{1, 1, 1}}, true},
		{"touching face", AABB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{4, 2, 2}}, true},
		{"separated on X", AABB{Min: mgl64.Vec3{3, 0, 0}, Max: mgl64.Vec3{4, 2, 2}}, false},
		{"separated on Y", AABB{Min: mgl64.Vec3{0, -3, 0}, Max: mgl64.Vec3{2, -1, 2}}, false},
		{"separated on Z", AABB{Min: mgl64.Vec3{0, 0, 5}, Max: mgl64.Vec3{2, 2, 6}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// symmetric
			if got := tt.other.Overlaps(a); got != tt.want {
				t.Errorf("reverse Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}
