package stars

import "github.com/geofpwhite/starcube/internal/geom"

// Particle is one star. Position is in view space; Z is the depth from the camera
// and stays above the near clip while the particle is alive.
type Particle struct {
	Position geom.Vector3
	Speed    float64
	BaseSize float64
	Hue      float64
	HueSpeed float64
	Flicker  bool
	// Glow is this frame's flicker factor in (0, 1].
	Glow float64

	trail    []geom.Vector3
	trailLen int
}

// Trail returns up to TrailLen previous positions, newest first.
func (p *Particle) Trail() []geom.Vector3 { return p.trail }

// TrailLen is the maximum trail length for this particle; zero means no trail.
func (p *Particle) TrailLen() int { return p.trailLen }

func (p *Particle) pushTrail() {
	if p.trailLen == 0 {
		return
	}
	if len(p.trail) < p.trailLen {
		p.trail = append(p.trail, geom.Vector3{})
	}
	copy(p.trail[1:], p.trail)
	p.trail[0] = p.Position
}
