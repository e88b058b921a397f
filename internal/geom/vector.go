// Package geom holds the small amount of 3D math the renderer needs.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is an immutable 3D vector. All methods return new values.
type Vector3 struct {
	X, Y, Z float64
}

// V3 is shorthand for Vector3{x, y, z}.
func V3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product.
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the magnitude.
func (v Vector3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns a unit vector, or the zero vector for a zero-length input.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Scale(1 / l)
}

// Rotate applies the Euler rotation e (X first, then Y, then Z).
func (v Vector3) Rotate(e Euler) Vector3 {
	return v.MulMat(e.Matrix())
}

// MulMat returns m * v.
func (v Vector3) MulMat(m mgl64.Mat3) Vector3 {
	return FromVec(m.Mul3x1(v.Vec()))
}

// ApproxEqual reports whether every component of v and o differs by at most eps.
func (v Vector3) ApproxEqual(o Vector3, eps float64) bool {
	return mgl64.FloatEqualThreshold(v.X, o.X, eps) &&
		mgl64.FloatEqualThreshold(v.Y, o.Y, eps) &&
		mgl64.FloatEqualThreshold(v.Z, o.Z, eps)
}

// Vec converts to the mathgl representation.
func (v Vector3) Vec() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

// FromVec converts from the mathgl representation.
func FromVec(m mgl64.Vec3) Vector3 { return Vector3{m[0], m[1], m[2]} }

// Point is a position on the 2D drawing surface. The origin is the centre of the
// viewport, X grows to the right and Y grows upward.
type Point struct {
	X, Y float64
}

// Centroid returns the arithmetic mean of pts, or the zero vector when pts is empty.
func Centroid(pts ...Vector3) Vector3 {
	if len(pts) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}
