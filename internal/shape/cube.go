package shape

import (
	"image/color"

	"github.com/geofpwhite/starcube/internal/geom"
)

var cubeEdges = [][2]int{
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 0},
	{4, 5},
	{5, 6},
	{6, 7},
	{7, 4},
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
}

var cubeFaces = [][]int{
	{0, 1, 2, 3}, // back   (z = -h)
	{4, 7, 6, 5}, // front  (z = +h)
	{0, 4, 5, 1}, // left   (x = -h)
	{3, 2, 6, 7}, // right  (x = +h)
	{1, 5, 6, 2}, // top    (y = +h)
	{0, 3, 7, 4}, // bottom (y = -h)
}

var cubeFaceColors = [6]color.NRGBA{
	{200, 50, 50, 255},  // back - red
	{50, 200, 50, 255},  // front - green
	{50, 50, 200, 255},  // left - blue
	{200, 200, 50, 255}, // right - yellow
	{200, 50, 200, 255}, // top - magenta
	{50, 200, 200, 255}, // bottom - cyan
}

// Cube is an axis-aligned cube centred on the origin. Size is the edge length.
type Cube struct {
	Size float64
}

// Geometry implements Shape.
func (c Cube) Geometry() Geometry {
	h := c.Size / 2
	return Geometry{
		Vertices: []geom.Vector3{
			{X: -h, Y: -h, Z: -h},
			{X: -h, Y: h, Z: -h},
			{X: h, Y: h, Z: -h},
			{X: h, Y: -h, Z: -h},
			{X: -h, Y: -h, Z: h},
			{X: -h, Y: h, Z: h},
			{X: h, Y: h, Z: h},
			{X: h, Y: -h, Z: h},
		},
		Edges: cubeEdges,
		Faces: cubeFaces,
	}
}

// FaceColor implements Shape.
func (Cube) FaceColor(face int) color.NRGBA {
	return cubeFaceColors[face%len(cubeFaceColors)]
}

// NewCube returns a cube object with the given edge length, unrotated, at the origin.
func NewCube(size float64) *Object3D {
	return MustNew(Cube{Size: size})
}
