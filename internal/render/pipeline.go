package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/geofpwhite/starcube/internal/camera"
	"github.com/geofpwhite/starcube/internal/geom"
	"github.com/geofpwhite/starcube/internal/shape"
	"github.com/geofpwhite/starcube/internal/stars"
)

// Mode selects how the object is drawn.
type Mode int

const (
	Wireframe Mode = iota
	Solid
)

func (m Mode) String() string {
	if m == Solid {
		return "Solid"
	}
	return "Wireframe"
}

// Palette selects how colours are derived.
type Palette int

const (
	// PaletteDepth colours edges by depth and shades the fixed face colours by a light.
	PaletteDepth Palette = iota
	// PaletteHue cycles colours over time using the object's hue phase.
	PaletteHue
)

func (p Palette) String() string {
	if p == PaletteHue {
		return "hue"
	}
	return "depth"
}

// ParseMode accepts "wireframe" or "solid" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "wireframe":
		return Wireframe, nil
	case "solid":
		return Solid, nil
	}
	return Wireframe, fmt.Errorf("unknown mode %q", s)
}

// ParsePalette accepts "depth" or "hue".
func ParsePalette(s string) (Palette, error) {
	switch strings.ToLower(s) {
	case "depth":
		return PaletteDepth, nil
	case "hue":
		return PaletteHue, nil
	}
	return PaletteDepth, fmt.Errorf("unknown palette %q", s)
}

// Options controls one frame. The zero value is the plain variant: wireframe,
// depth colours, no culling, no trails, white stars.
type Options struct {
	Mode    Mode
	Palette Palette
	// Culling drops faces that point away from the camera in solid mode.
	Culling bool
	// Trails draws the recent positions of particles that have a trail.
	Trails bool
	// StarHue colours stars by their hue phase instead of by depth alone.
	StarHue bool
}

const (
	edgeHueStep = 0.02
	faceHueStep = 0.05
	ambient     = 0.35
	// starMargin keeps stars just outside the viewport from popping in.
	starMargin = 50
)

// LightDir points from the scene toward the light, in view space.
var LightDir = geom.V3(1, 0, -1).Normalize()

var starTint = [3]float64{1, 0.8, 0.9}

type faceInfo struct {
	idx   int
	depth float64
}

// Renderer builds the command list for a frame. It keeps scratch buffers
// between frames and is not safe for concurrent use.
type Renderer struct {
	cmds  []Command
	view  []geom.Vector3
	proj  []geom.Point
	ok    []bool
	faces []faceInfo
}

// NewRenderer returns an empty renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Frame draws the star field first and the object on top of it. The returned
// slice is only valid until the next call.
func (r *Renderer) Frame(obj *shape.Object3D, field *stars.Field, cam *camera.Camera, opt Options) []Command {
	r.cmds = r.cmds[:0]
	if field != nil {
		r.stars(field, cam, opt)
	}
	if obj != nil {
		r.project(obj, cam)
		switch opt.Mode {
		case Solid:
			r.solid(obj, cam, opt)
		default:
			r.wireframe(obj, opt)
		}
	}
	return r.cmds
}

// project fills the view-space and screen-space vertex buffers.
func (r *Renderer) project(obj *shape.Object3D, cam *camera.Camera) {
	world := obj.Transform()
	n := len(world)
	r.view = resize(r.view, n)
	r.proj = resize(r.proj, n)
	r.ok = resize(r.ok, n)
	for i, w := range world {
		r.view[i] = cam.ToView(w)
		r.proj[i], _, r.ok[i] = cam.ProjectView(r.view[i])
	}
}

func (r *Renderer) wireframe(obj *shape.Object3D, opt Options) {
	centre := geom.Centroid(r.view...).Z
	radius := boundingRadius(obj.Vertices())
	for i, e := range obj.Edges() {
		a, b := e[0], e[1]
		if !r.ok[a] || !r.ok[b] {
			continue
		}
		var c color.NRGBA
		if opt.Palette == PaletteHue {
			c = HueColor(math.Mod(obj.HueShift+float64(i)*edgeHueStep, 1))
		} else {
			c = depthColor((r.view[a].Z+r.view[b].Z)/2-centre, radius)
		}
		r.cmds = append(r.cmds, Command{
			Kind:   KindLine,
			Points: []geom.Point{r.proj[a], r.proj[b]},
			Color:  c,
			Source: SourceEdge,
			Index:  i,
		})
	}
}

// depthColor maps a depth relative to the object centre onto a brightness in
// [0.3, 1]; nearer is brighter.
func depthColor(rel, radius float64) color.NRGBA {
	b := 1.0
	if radius > 0 {
		b = 1 - 0.7*((rel+radius)/(2*radius))
	}
	b = math.Max(0.3, math.Min(1, b))
	return RGB(b, b, 1)
}

func (r *Renderer) solid(obj *shape.Object3D, cam *camera.Camera, opt Options) {
	faces := obj.Faces()
	// the projection divides by z+zoom, so the eye sits at (0, 0, -zoom)
	eye := geom.V3(0, 0, -cam.Zoom())
	r.faces = r.faces[:0]
	for i, f := range faces {
		centre := shape.FaceCentroid(r.view, f)
		if opt.Culling && !Facing(shape.FaceNormal(r.view, f), centre.Sub(eye)) {
			continue
		}
		r.faces = append(r.faces, faceInfo{idx: i, depth: centre.Z})
	}
	// farthest first; equal depths keep face order
	sort.SliceStable(r.faces, func(i, j int) bool { return r.faces[i].depth > r.faces[j].depth })

	for _, fi := range r.faces {
		f := faces[fi.idx]
		poly := make([]geom.Point, 0, len(f))
		for _, vi := range f {
			if !r.ok[vi] {
				poly = nil
				break
			}
			poly = append(poly, r.proj[vi])
		}
		if poly == nil {
			continue
		}
		c := r.faceColor(obj, fi.idx, opt)
		r.cmds = append(r.cmds, Command{Kind: KindPolygon, Points: poly, Color: c, Source: SourceFace, Index: fi.idx})
		outline := Shade(c, 0.6)
		for k := range poly {
			r.cmds = append(r.cmds, Command{
				Kind:   KindLine,
				Points: []geom.Point{poly[k], poly[(k+1)%len(poly)]},
				Color:  outline,
				Source: SourceOutline,
				Index:  fi.idx,
			})
		}
	}
}

func (r *Renderer) faceColor(obj *shape.Object3D, idx int, opt Options) color.NRGBA {
	if opt.Palette == PaletteHue {
		return HueColor(math.Mod(obj.HueShift+float64(idx)*faceHueStep, 1))
	}
	n := shape.FaceNormal(r.view, obj.Faces()[idx]).Normalize()
	lit := ambient + (1-ambient)*math.Max(0, n.Dot(LightDir))
	return Shade(obj.FaceColor(idx), lit)
}

// Facing reports whether a face with the given normal is turned toward an eye
// looking along toward, the vector from the eye to the face centroid.
func Facing(normal, toward geom.Vector3) bool {
	return normal.Dot(toward) < 0
}

func (r *Renderer) stars(field *stars.Field, cam *camera.Camera, opt Options) {
	w, h := cam.Viewport()
	maxX := float64(w)/2 + starMargin
	maxY := float64(h)/2 + starMargin
	inView := func(p geom.Point) bool { return math.Abs(p.X) <= maxX && math.Abs(p.Y) <= maxY }

	ps := field.Particles()
	for i := range ps {
		p := &ps[i]
		size := field.Size(p)
		bright := field.Brightness(p)
		if opt.Trails {
			tr := p.Trail()
			n := float64(len(tr) + 1)
			// oldest first so the newest trail point lands on top
			for j := len(tr) - 1; j >= 0; j-- {
				pt, _, ok := cam.ProjectView(tr[j])
				if !ok || !inView(pt) {
					continue
				}
				fade := 1 - float64(j+1)/n
				r.dot(pt, size*fade, r.starColor(p, bright*fade, opt), SourceTrail, i)
			}
		}
		pt, _, ok := cam.ProjectView(p.Position)
		if !ok || !inView(pt) {
			continue
		}
		r.dot(pt, size, r.starColor(p, bright, opt), SourceStar, i)
	}
}

func (r *Renderer) starColor(p *stars.Particle, bright float64, opt Options) color.NRGBA {
	if opt.StarHue {
		return Shade(HueColor(p.Hue), bright)
	}
	return RGB(starTint[0]*bright, starTint[1]*bright, starTint[2])
}

// dot emits a square of the given size centred on p, or a single-pixel line
// when it is smaller than a pixel.
func (r *Renderer) dot(p geom.Point, size float64, c color.NRGBA, src Source, idx int) {
	if size < 1 {
		r.cmds = append(r.cmds, Command{Kind: KindLine, Points: []geom.Point{p, p}, Color: c, Source: src, Index: idx})
		return
	}
	h := size / 2
	r.cmds = append(r.cmds, Command{
		Kind: KindPolygon,
		Points: []geom.Point{
			{X: p.X - h, Y: p.Y - h},
			{X: p.X + h, Y: p.Y - h},
			{X: p.X + h, Y: p.Y + h},
			{X: p.X - h, Y: p.Y + h},
		},
		Color:  c,
		Source: src,
		Index:  idx,
	})
}

func boundingRadius(verts []geom.Vector3) float64 {
	var r float64
	for _, v := range verts {
		r = math.Max(r, v.Length())
	}
	return r
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}
