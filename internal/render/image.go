package render

import (
	"image"
	"image/color"
	"image/draw"

	"fortio.org/terminal/ansipixels"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/geofpwhite/starcube/internal/geom"
)

// clipPad is how far outside the image the polygon clip rectangle reaches, in pixels.
const clipPad = 1

// ImageSurface draws onto an NRGBA image. Screen points are centred: pixel
// (w/2, h/2) is the origin and Y is flipped so that up is up.
type ImageSurface struct {
	Img        *image.NRGBA
	Background color.NRGBA
	rast       *vector.Rasterizer
}

// NewImageSurface allocates a w x h surface with a black background.
func NewImageSurface(w, h int) *ImageSurface {
	s := &ImageSurface{Background: color.NRGBA{0, 0, 0, 255}}
	s.Resize(w, h)
	return s
}

// Resize reallocates the image.
func (s *ImageSurface) Resize(w, h int) {
	s.Img = image.NewNRGBA(image.Rect(0, 0, w, h))
	s.rast = vector.NewRasterizer(w, h)
}

// Size returns the image dimensions.
func (s *ImageSurface) Size() (w, h int) {
	b := s.Img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the image with the background colour.
func (s *ImageSurface) Clear() {
	draw.Draw(s.Img, s.Img.Bounds(), &image.Uniform{s.Background}, image.Point{}, draw.Src)
}

// ToPixel converts a screen point to image coordinates.
func (s *ImageSurface) ToPixel(p geom.Point) (float64, float64) {
	w, h := s.Size()
	return float64(w)/2 + p.X, float64(h)/2 - p.Y
}

// DrawLine implements Surface. The segment is clipped to the image first so a
// point projected far off screen costs nothing.
func (s *ImageSurface) DrawLine(a, b geom.Point, c color.NRGBA) {
	x0, y0 := s.ToPixel(a)
	x1, y1 := s.ToPixel(b)
	w, h := s.Size()
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, 0, 0, float64(w-1), float64(h-1))
	if !ok {
		return
	}
	ansipixels.DrawLine(s.Img, x0, y0, x1, y1, c)
}

// FillPolygon implements Surface. The polygon is clipped to the image first,
// so edges keep their slope however far off screen a vertex projects.
func (s *ImageSurface) FillPolygon(pts []geom.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	w, h := s.Size()
	px := make([][2]float64, len(pts))
	for i, p := range pts {
		px[i][0], px[i][1] = s.ToPixel(p)
	}
	px = clipPolygon(px, -clipPad, -clipPad, float64(w+clipPad), float64(h+clipPad))
	if len(px) < 3 {
		return
	}
	s.rast.Reset(w, h)
	s.rast.MoveTo(float32(px[0][0]), float32(px[0][1]))
	for _, p := range px[1:] {
		s.rast.LineTo(float32(p[0]), float32(p[1]))
	}
	s.rast.ClosePath()
	s.rast.Draw(s.Img, s.Img.Bounds(), image.NewUniform(c), image.Point{})
}

// Text writes str with its baseline at pixel (x, y).
func (s *ImageSurface) Text(x, y int, str string, c color.NRGBA) {
	d := font.Drawer{
		Dst:  s.Img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(str)
}

// clipPolygon is Sutherland-Hodgman clipping of a simple polygon against an
// axis-aligned box.
func clipPolygon(poly [][2]float64, minX, minY, maxX, maxY float64) [][2]float64 {
	planes := []struct {
		axis  int
		limit float64
		keep  func(v, lim float64) bool
	}{
		{0, minX, func(v, lim float64) bool { return v >= lim }},
		{0, maxX, func(v, lim float64) bool { return v <= lim }},
		{1, minY, func(v, lim float64) bool { return v >= lim }},
		{1, maxY, func(v, lim float64) bool { return v <= lim }},
	}
	for _, pl := range planes {
		if len(poly) == 0 {
			return nil
		}
		out := make([][2]float64, 0, len(poly)+2)
		prev := poly[len(poly)-1]
		prevIn := pl.keep(prev[pl.axis], pl.limit)
		for _, cur := range poly {
			curIn := pl.keep(cur[pl.axis], pl.limit)
			if curIn != prevIn {
				t := (pl.limit - prev[pl.axis]) / (cur[pl.axis] - prev[pl.axis])
				p := [2]float64{
					prev[0] + t*(cur[0]-prev[0]),
					prev[1] + t*(cur[1]-prev[1]),
				}
				p[pl.axis] = pl.limit
				out = append(out, p)
			}
			if curIn {
				out = append(out, cur)
			}
			prev, prevIn = cur, curIn
		}
		poly = out
	}
	return poly
}

// clipLine is Liang-Barsky clipping of a segment against an axis-aligned box.
func clipLine(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
