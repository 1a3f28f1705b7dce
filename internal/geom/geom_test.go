package geom

import (
	"math"
	"testing"
)

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 4, H: 6}
	c := r.Center()
	if c.X != 12 || c.Y != 23 {
		t.Errorf("expected center (12, 23), got (%v, %v)", c.X, c.Y)
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}

	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"fully inside", Rect{X: 10, Y: 10, W: 20, H: 20}, true},
		{"identical", Rect{X: 0, Y: 0, W: 100, H: 100}, true},
		{"overhangs right", Rect{X: 90, Y: 10, W: 20, H: 20}, false},
		{"overhangs top", Rect{X: 10, Y: -5, W: 20, H: 20}, false},
		{"outside", Rect{X: 200, Y: 200, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.want {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	if !a.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Error("edge-adjacent rects should not intersect")
	}
	if a.Intersects(Rect{X: 20, Y: 20, W: 5, H: 5}) {
		t.Error("disjoint rects should not intersect")
	}
}

func TestOverlapFraction(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		axis  Axis
		want  float64
	}{
		{"full horizontal", Rect{X: 0, Y: 50, W: 10, H: 10}, AxisHorizontal, 1.0},
		{"half horizontal", Rect{X: 5, Y: 50, W: 10, H: 10}, AxisHorizontal, 0.5},
		{"no horizontal", Rect{X: 20, Y: 50, W: 10, H: 10}, AxisHorizontal, 0.0},
		{"full vertical", Rect{X: 50, Y: 0, W: 10, H: 10}, AxisVertical, 1.0},
		{"quarter vertical", Rect{X: 50, Y: 7.5, W: 10, H: 10}, AxisVertical, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.OverlapFraction(tt.other, tt.axis)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("OverlapFraction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("expected distance 5, got %v", d)
	}
}
