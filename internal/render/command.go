// Package render turns the scene into 2D draw commands: projected line segments
// and filled polygons, ordered so that later commands paint over earlier ones.
package render

import (
	"image/color"

	"github.com/geofpwhite/starcube/internal/geom"
)

// Kind is the primitive a Command draws.
type Kind int

const (
	KindLine Kind = iota
	KindPolygon
)

// Source records which part of the scene produced a Command.
type Source int

const (
	SourceStar Source = iota
	SourceTrail
	SourceEdge
	SourceFace
	SourceOutline
)

// Command is one primitive in screen space. Lines have exactly two points and
// polygons at least three. Commands are rebuilt every frame.
type Command struct {
	Kind   Kind
	Points []geom.Point
	Color  color.NRGBA
	Source Source
	// Index is the edge, face or particle index that produced the command.
	Index int
}

// Surface is a 2D drawing target. Points use the projection's convention:
// origin at the centre, X right, Y up.
type Surface interface {
	DrawLine(a, b geom.Point, c color.NRGBA)
	FillPolygon(pts []geom.Point, c color.NRGBA)
}

// Draw replays cmds on s in order.
func Draw(s Surface, cmds []Command) {
	for _, c := range cmds {
		switch c.Kind {
		case KindLine:
			s.DrawLine(c.Points[0], c.Points[1], c.Color)
		case KindPolygon:
			s.FillPolygon(c.Points, c.Color)
		}
	}
}
