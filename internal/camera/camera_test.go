package camera

import (
	"math"
	"testing"

	"github.com/geofpwhite/starcube/internal/geom"
)

func testCamera() *Camera {
	return New(Options{
		Position: geom.V3(0, 0, -300),
		FOV:      math.Pi / 2,
		Width:    200,
		Height:   100,
		ZoomStep: 10,
		MinZoom:  -200,
		MaxZoom:  500,
	})
}

func TestProjectionDistance(t *testing.T) {
	c := testCamera()
	// tan(45°) = 1, so the distance is half the width
	if d := c.Distance(); math.Abs(d-100) > 1e-9 {
		t.Errorf("Distance() = %v, want 100", d)
	}
	c.SetViewport(400, 200)
	if d := c.Distance(); math.Abs(d-200) > 1e-9 {
		t.Errorf("Distance() after resize = %v, want 200", d)
	}
}

func TestProjectGuard(t *testing.T) {
	c := testCamera()
	tests := []struct {
		name string
		z    float64
		zoom float64
		ok   bool
	}{
		{"in front", 10, 0, true},
		{"just past epsilon", Epsilon * 2, 0, true},
		{"at epsilon", Epsilon, 0, false},
		{"on plane", 0, 0, false},
		{"behind", -50, 0, false},
		{"zoom pushes in front", -50, 100, true},
		{"zoom pulls behind", 50, -60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.SetZoom(tt.zoom)
			p, depth, ok := c.ProjectView(geom.V3(30, -40, tt.z))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (depth %v)", ok, tt.ok, depth)
			}
			if ok && (math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0)) {
				t.Errorf("non-finite projection %v", p)
			}
			if !ok && p != (geom.Point{}) {
				t.Errorf("unrenderable point returned %v", p)
			}
		})
	}
}

func TestProjectSymmetricCorners(t *testing.T) {
	c := testCamera()
	a, _, okA := c.Project(geom.V3(50, 50, 50))
	b, _, okB := c.Project(geom.V3(-50, -50, -50))
	if !okA || !okB {
		t.Fatalf("corners not renderable: %v %v", okA, okB)
	}
	if a == b {
		t.Fatalf("corners projected to the same point %v", a)
	}
	if a.X <= 0 || a.Y <= 0 || b.X >= 0 || b.Y >= 0 {
		t.Errorf("corners not on opposite sides of the origin: %v %v", a, b)
	}
	// the nearer corner is magnified more
	if math.Abs(b.X) <= math.Abs(a.X) {
		t.Errorf("near corner |%v| should exceed far corner |%v|", b.X, a.X)
	}
	wantA := 50 * 100 / 350.0
	if math.Abs(a.X-wantA) > 1e-9 || math.Abs(a.Y-wantA) > 1e-9 {
		t.Errorf("Project(50,50,50) = %v, want (%v, %v)", a, wantA, wantA)
	}
}

func TestZoomClamp(t *testing.T) {
	c := testCamera()
	for range 1000 {
		c.ZoomIn()
	}
	if z := c.Zoom(); z != -200 {
		t.Errorf("Zoom() after many ZoomIn = %v, want -200", z)
	}
	for range 1000 {
		c.ZoomOut()
	}
	if z := c.Zoom(); z != 500 {
		t.Errorf("Zoom() after many ZoomOut = %v, want 500", z)
	}
}

func TestZoomInMagnifies(t *testing.T) {
	c := testCamera()
	p0, _, _ := c.Project(geom.V3(10, 0, 0))
	c.ZoomIn()
	p1, _, _ := c.Project(geom.V3(10, 0, 0))
	if p1.X <= p0.X {
		t.Errorf("ZoomIn did not magnify: %v -> %v", p0.X, p1.X)
	}
}

func TestMove(t *testing.T) {
	c := testCamera()
	c.Move(geom.V3(0, 0, 100))
	if got := c.ToView(geom.V3(0, 0, 0)); got != geom.V3(0, 0, 200) {
		t.Errorf("ToView after Move = %v, want (0,0,200)", got)
	}
}
