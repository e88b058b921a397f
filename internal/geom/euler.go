package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FullTurn is one revolution in radians.
const FullTurn = 2 * math.Pi

// Euler is a rotation expressed as three angles in radians. The rotation about X
// is applied first, then Y, then Z.
type Euler struct {
	X, Y, Z float64
}

// Matrix returns the composite rotation Rz * Ry * Rx.
func (e Euler) Matrix() mgl64.Mat3 {
	return mgl64.Rotate3DZ(e.Z).Mul3(mgl64.Rotate3DY(e.Y)).Mul3(mgl64.Rotate3DX(e.X))
}

// Advance returns e moved by rate*speed*dt on every axis, wrapped to [0, 2π).
func (e Euler) Advance(rate Euler, speed, dt float64) Euler {
	return Euler{
		X: wrap(e.X + rate.X*speed*dt),
		Y: wrap(e.Y + rate.Y*speed*dt),
		Z: wrap(e.Z + rate.Z*speed*dt),
	}
}

func wrap(a float64) float64 {
	a = math.Mod(a, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	return a
}
