// Package stars simulates a starfield: a fixed pool of particles drifting toward
// the camera and recycled once they pass the near clip.
package stars

import (
	"math"
	"math/rand/v2"

	"github.com/geofpwhite/starcube/internal/geom"
)

// Config describes the field. Depths are view-space Z values.
type Config struct {
	Count int
	// Speed is the depth travelled per second by a particle with speed factor 1.
	Speed     float64
	NearClip  float64
	Far       float64
	FarJitter float64
	SpreadX   float64
	SpreadY   float64

	SpeedMin    float64
	SpeedMax    float64
	BaseSizeMin float64
	BaseSizeMax float64
	MinSize     float64

	HueSpeedMin float64
	HueSpeedMax float64

	TrailChance float64
	MaxTrail    int

	FlickerChance float64
	FlickerAmount float64
}

// DefaultConfig matches a 1280x720 scene.
func DefaultConfig() Config {
	return Config{
		Count:         300,
		Speed:         420,
		NearClip:      1,
		Far:           1280,
		FarJitter:     128,
		SpreadX:       640,
		SpreadY:       360,
		SpeedMin:      0.5,
		SpeedMax:      2.0,
		BaseSizeMin:   1,
		BaseSizeMax:   3,
		MinSize:       0.1,
		HueSpeedMin:   0.002,
		HueSpeedMax:   0.005,
		TrailChance:   0.3,
		MaxTrail:      5,
		FlickerChance: 0.1,
		FlickerAmount: 0.5,
	}
}

// Field owns a fixed-capacity pool of particles.
type Field struct {
	cfg       Config
	rng       *rand.Rand
	particles []Particle
	respawns  int
}

// New seeds cfg.Count particles spread over the whole depth range so the field
// looks populated from the first frame.
func New(cfg Config, rng *rand.Rand) *Field {
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	f := &Field{
		cfg:       cfg,
		rng:       rng,
		particles: make([]Particle, cfg.Count),
	}
	for i := range f.particles {
		p := &f.particles[i]
		f.spawn(p)
		p.Position.Z = cfg.NearClip + (cfg.Far-cfg.NearClip)*(1-rng.Float64())
		p.Hue = rng.Float64()
	}
	return f
}

// Advance moves every particle toward the camera by cfg.Speed*speed*dt scaled by
// its own speed factor. A particle reaching the near clip is respawned in place.
func (f *Field) Advance(dt, speed float64) {
	for i := range f.particles {
		p := &f.particles[i]
		p.pushTrail()
		p.Position.Z -= f.cfg.Speed * p.Speed * speed * dt
		p.Hue = math.Mod(p.Hue+p.HueSpeed*dt*60, 1)
		p.Glow = 1
		if p.Flicker {
			p.Glow = 1 - f.cfg.FlickerAmount*f.rng.Float64()
		}
		if p.Position.Z <= f.cfg.NearClip {
			f.spawn(p)
			f.respawns++
		}
	}
}

// Particles exposes the pool. Callers must not keep or modify it.
func (f *Field) Particles() []Particle { return f.particles }

// Len is the number of live particles. It never changes after New.
func (f *Field) Len() int { return len(f.particles) }

// Respawns counts recycled particles since New.
func (f *Field) Respawns() int { return f.respawns }

// Config returns the field configuration.
func (f *Field) Config() Config { return f.cfg }

// Closeness maps a depth to [0, 1]: 1 at the near clip, 0 at or beyond the far bound.
func (f *Field) Closeness(z float64) float64 {
	span := f.cfg.Far - f.cfg.NearClip
	if span <= 0 {
		return 1
	}
	return clamp01((f.cfg.Far - z) / span)
}

// Size is the drawn size of p, largest at the near clip.
func (f *Field) Size(p *Particle) float64 {
	return math.Max(f.cfg.MinSize, p.BaseSize*f.Closeness(p.Position.Z))
}

// Brightness of p in [0, 1], brightest at the near clip and scaled by flicker.
func (f *Field) Brightness(p *Particle) float64 {
	return f.Closeness(p.Position.Z) * p.Glow
}

func (f *Field) spawn(p *Particle) {
	c := f.cfg
	p.Position = geom.Vector3{
		X: f.uniform(-c.SpreadX, c.SpreadX),
		Y: f.uniform(-c.SpreadY, c.SpreadY),
		Z: c.Far + c.FarJitter*f.rng.Float64(),
	}
	p.Speed = f.uniform(c.SpeedMin, c.SpeedMax)
	p.BaseSize = f.uniform(c.BaseSizeMin, c.BaseSizeMax)
	p.HueSpeed = f.uniform(c.HueSpeedMin, c.HueSpeedMax)
	p.Flicker = f.rng.Float64() < c.FlickerChance
	p.Glow = 1
	p.trail = p.trail[:0]
	p.trailLen = 0
	if c.MaxTrail > 0 && f.rng.Float64() < c.TrailChance {
		p.trailLen = 1 + f.rng.IntN(c.MaxTrail)
	}
}

func (f *Field) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*f.rng.Float64()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
