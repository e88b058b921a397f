// Package shape holds renderable 3D objects: local geometry plus the rotation
// and placement that turn it into world space every frame.
package shape

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/geofpwhite/starcube/internal/geom"
)

var (
	// ErrBadIndex is returned when an edge or face references a vertex that does not exist.
	ErrBadIndex = errors.New("vertex index out of range")
	// ErrShortFace is returned for a face with fewer than three vertices.
	ErrShortFace = errors.New("face needs at least three vertices")
)

// Geometry is a shape in its own local space. Faces list vertex indices wound
// counter-clockwise when seen from outside, so (v1-v0)x(v2-v0) points outward.
type Geometry struct {
	Vertices []geom.Vector3
	Edges    [][2]int
	Faces    [][]int
}

// Validate checks that every edge and face index names an existing vertex.
func (g Geometry) Validate() error {
	n := len(g.Vertices)
	for i, e := range g.Edges {
		for _, vi := range e {
			if vi < 0 || vi >= n {
				return fmt.Errorf("edge %d references vertex %d of %d: %w", i, vi, n, ErrBadIndex)
			}
		}
	}
	for i, f := range g.Faces {
		if len(f) < 3 {
			return fmt.Errorf("face %d has %d vertices: %w", i, len(f), ErrShortFace)
		}
		for _, vi := range f {
			if vi < 0 || vi >= n {
				return fmt.Errorf("face %d references vertex %d of %d: %w", i, vi, n, ErrBadIndex)
			}
		}
	}
	return nil
}

// Shape supplies geometry and a base colour per face.
type Shape interface {
	Geometry() Geometry
	FaceColor(face int) color.NRGBA
}

// Object3D is a Shape placed in the world with a rotation that advances over time.
type Object3D struct {
	Position geom.Vector3
	Rotation geom.Euler
	// Rate is the rotation speed per axis in radians per second at speed 1.
	Rate geom.Euler
	// HueShift is a phase in [0, 1) used by the hue palette.
	HueShift float64
	// HueSpeed is added to HueShift per 1/60 s at speed 1.
	HueSpeed float64

	shape Shape
	geo   Geometry
}

// New validates the shape's geometry and wraps it. The vertex count is fixed from here on.
func New(s Shape) (*Object3D, error) {
	g := s.Geometry()
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}
	return &Object3D{shape: s, geo: g}, nil
}

// MustNew is New for geometry known at compile time. It panics on invalid geometry.
func MustNew(s Shape) *Object3D {
	o, err := New(s)
	if err != nil {
		panic(err)
	}
	return o
}

// Advance moves the rotation and hue phase forward by dt seconds.
func (o *Object3D) Advance(dt, speed float64) {
	o.Rotation = o.Rotation.Advance(o.Rate, speed, dt)
	o.HueShift = math.Mod(o.HueShift+o.HueSpeed*dt*60, 1)
}

// Transform returns the vertices rotated (X, Y, then Z) and translated to Position.
func (o *Object3D) Transform() []geom.Vector3 {
	m := o.Rotation.Matrix()
	out := make([]geom.Vector3, len(o.geo.Vertices))
	for i, v := range o.geo.Vertices {
		out[i] = v.MulMat(m).Add(o.Position)
	}
	return out
}

// Vertices returns the local-space vertices.
func (o *Object3D) Vertices() []geom.Vector3 { return o.geo.Vertices }

// Edges returns the edge list.
func (o *Object3D) Edges() [][2]int { return o.geo.Edges }

// Faces returns the face list.
func (o *Object3D) Faces() [][]int { return o.geo.Faces }

// FaceColor returns the shape's base colour for face i.
func (o *Object3D) FaceColor(i int) color.NRGBA { return o.shape.FaceColor(i) }

// FaceNormal computes the unnormalized outward normal of face f from the given
// transformed vertices.
func FaceNormal(verts []geom.Vector3, f []int) geom.Vector3 {
	v0 := verts[f[0]]
	e1 := verts[f[1]].Sub(v0)
	e2 := verts[f[2]].Sub(v0)
	return e1.Cross(e2)
}

// FaceCentroid returns the mean of the face's vertices.
func FaceCentroid(verts []geom.Vector3, f []int) geom.Vector3 {
	pts := make([]geom.Vector3, len(f))
	for i, vi := range f {
		pts[i] = verts[vi]
	}
	return geom.Centroid(pts...)
}
