// Package camera projects view-space points onto the 2D drawing surface.
package camera

import (
	"math"

	"github.com/geofpwhite/starcube/internal/geom"
)

// Epsilon is the smallest depth (view z plus zoom offset) that still projects.
// Anything at or below it is at or behind the camera plane.
const Epsilon = 1e-3

// Options configures a Camera.
type Options struct {
	Position geom.Vector3
	FOV      float64 // radians, horizontal
	Width    int
	Height   int
	ZoomStep float64
	MinZoom  float64
	MaxZoom  float64
}

// Camera looks along +Z from Position. View space has the camera at the origin,
// X to the right, Y up and Z (depth) growing away from the camera.
type Camera struct {
	Position geom.Vector3

	fov      float64
	width    int
	height   int
	distance float64

	zoom     float64
	zoomStep float64
	minZoom  float64
	maxZoom  float64
}

// New creates a camera with zero zoom offset.
func New(o Options) *Camera {
	c := &Camera{
		Position: o.Position,
		fov:      o.FOV,
		zoomStep: o.ZoomStep,
		minZoom:  o.MinZoom,
		maxZoom:  o.MaxZoom,
	}
	if c.minZoom > c.maxZoom {
		c.minZoom, c.maxZoom = c.maxZoom, c.minZoom
	}
	c.zoom = clamp(0, c.minZoom, c.maxZoom)
	c.SetViewport(o.Width, o.Height)
	return c
}

// SetViewport updates the surface size and the projection distance derived from it.
func (c *Camera) SetViewport(width, height int) {
	c.width, c.height = width, height
	c.distance = float64(width) / 2 / math.Tan(c.fov/2)
}

// Viewport returns the surface size.
func (c *Camera) Viewport() (width, height int) { return c.width, c.height }

// Distance is the projection distance derived from the field of view.
func (c *Camera) Distance() float64 { return c.distance }

// FOV returns the horizontal field of view in radians.
func (c *Camera) FOV() float64 { return c.fov }

// Zoom returns the current zoom offset added to every depth.
func (c *Camera) Zoom() float64 { return c.zoom }

// ZoomIn moves the image plane closer, making everything larger.
func (c *Camera) ZoomIn() { c.SetZoom(c.zoom - c.zoomStep) }

// ZoomOut moves the image plane away.
func (c *Camera) ZoomOut() { c.SetZoom(c.zoom + c.zoomStep) }

// SetZoom sets the zoom offset, clamped to the configured range.
func (c *Camera) SetZoom(z float64) { c.zoom = clamp(z, c.minZoom, c.maxZoom) }

// Move shifts the camera position.
func (c *Camera) Move(delta geom.Vector3) { c.Position = c.Position.Add(delta) }

// ToView converts a world-space point into view space.
func (c *Camera) ToView(world geom.Vector3) geom.Vector3 { return world.Sub(c.Position) }

// Project projects a world-space point. See ProjectView.
func (c *Camera) Project(world geom.Vector3) (geom.Point, float64, bool) {
	return c.ProjectView(c.ToView(world))
}

// ProjectView projects a view-space point. It returns the screen position, the
// effective depth and whether the point is renderable. Points whose depth is at
// or below Epsilon are not renderable and the returned point is zero.
func (c *Camera) ProjectView(v geom.Vector3) (geom.Point, float64, bool) {
	depth := v.Z + c.zoom
	if depth <= Epsilon {
		return geom.Point{}, depth, false
	}
	return geom.Point{
		X: v.X * c.distance / depth,
		Y: v.Y * c.distance / depth,
	}, depth, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
