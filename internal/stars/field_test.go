package stars

import (
	"math/rand/v2"
	"testing"
)

func testField(count int) *Field {
	cfg := DefaultConfig()
	cfg.Count = count
	return New(cfg, rand.New(rand.NewPCG(1, 2)))
}

func TestNewPopulatesDepthRange(t *testing.T) {
	f := testField(500)
	cfg := f.Config()
	if f.Len() != 500 {
		t.Fatalf("Len() = %d, want 500", f.Len())
	}
	for i, p := range f.Particles() {
		if p.Position.Z <= cfg.NearClip || p.Position.Z > cfg.Far {
			t.Errorf("particle %d seeded at depth %v, want (%v, %v]", i, p.Position.Z, cfg.NearClip, cfg.Far)
		}
	}
}

func TestAdvanceRecyclesWithConstantCount(t *testing.T) {
	f := testField(200)
	cfg := f.Config()
	prev := make([]float64, f.Len())
	for i, p := range f.Particles() {
		prev[i] = p.Position.Z
	}

	respawned := 0
	for frame := range 2000 {
		before := f.Respawns()
		f.Advance(1.0/60, 1)
		if f.Len() != 200 {
			t.Fatalf("frame %d: Len() = %d, want 200", frame, f.Len())
		}
		for i, p := range f.Particles() {
			z := p.Position.Z
			if z <= cfg.NearClip {
				t.Fatalf("frame %d: particle %d alive at depth %v", frame, i, z)
			}
			if z > prev[i] {
				// only a respawn may move a particle away from the camera
				if z < cfg.Far || z > cfg.Far+cfg.FarJitter {
					t.Fatalf("frame %d: particle %d respawned at depth %v, want [%v, %v]",
						frame, i, z, cfg.Far, cfg.Far+cfg.FarJitter)
				}
				if p.Position.X < -cfg.SpreadX || p.Position.X > cfg.SpreadX ||
					p.Position.Y < -cfg.SpreadY || p.Position.Y > cfg.SpreadY {
					t.Fatalf("frame %d: particle %d respawned outside lateral bounds: %v", frame, i, p.Position)
				}
				if len(p.Trail()) != 0 {
					t.Fatalf("frame %d: particle %d kept its trail across respawn", frame, i)
				}
				respawned++
			}
			prev[i] = z
		}
		if got := f.Respawns() - before; got < 0 {
			t.Fatalf("respawn counter went backwards")
		}
	}
	if respawned == 0 {
		t.Error("no particle was recycled in 2000 frames")
	}
	if respawned != f.Respawns() {
		t.Errorf("observed %d respawns, counter says %d", respawned, f.Respawns())
	}
}

func TestPausedFieldDoesNotMove(t *testing.T) {
	f := testField(50)
	before := append([]Particle(nil), f.Particles()...)
	f.Advance(0, 1)
	for i, p := range f.Particles() {
		if p.Position != before[i].Position {
			t.Errorf("particle %d moved with dt=0: %v -> %v", i, before[i].Position, p.Position)
		}
	}
}

func TestVisualAttributesByDepth(t *testing.T) {
	f := testField(1)
	cfg := f.Config()
	p := &f.Particles()[0]
	p.Glow = 1
	p.BaseSize = 2

	p.Position.Z = cfg.NearClip
	if got := f.Brightness(p); got != 1 {
		t.Errorf("Brightness at near clip = %v, want 1", got)
	}
	if got := f.Size(p); got != 2 {
		t.Errorf("Size at near clip = %v, want 2", got)
	}

	p.Position.Z = cfg.Far / 2
	mid := f.Brightness(p)
	midSize := f.Size(p)

	p.Position.Z = cfg.Far
	if got := f.Brightness(p); got != 0 {
		t.Errorf("Brightness at far bound = %v, want 0", got)
	}
	if got := f.Size(p); got != cfg.MinSize {
		t.Errorf("Size at far bound = %v, want %v", got, cfg.MinSize)
	}
	if mid <= 0 || mid >= 1 || midSize <= cfg.MinSize || midSize >= 2 {
		t.Errorf("midway brightness %v size %v not strictly between the bounds", mid, midSize)
	}

	p.Position.Z = cfg.NearClip - 10
	if got := f.Brightness(p); got != 1 {
		t.Errorf("Brightness nearer than the clip = %v, want clamped 1", got)
	}
}

func TestTrailBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 20
	cfg.TrailChance = 1
	cfg.Speed = 0.01 // slow enough that nobody respawns
	f := New(cfg, rand.New(rand.NewPCG(3, 4)))
	for range 20 {
		f.Advance(1.0/60, 1)
	}
	for i, p := range f.Particles() {
		if p.TrailLen() < 1 || p.TrailLen() > cfg.MaxTrail {
			t.Errorf("particle %d trail length %d outside [1, %d]", i, p.TrailLen(), cfg.MaxTrail)
		}
		tr := p.Trail()
		if len(tr) != p.TrailLen() {
			t.Errorf("particle %d has %d trail points, want %d", i, len(tr), p.TrailLen())
			continue
		}
		// newest first: depth grows toward the tail
		if tr[0].Z <= p.Position.Z {
			t.Errorf("particle %d newest trail point %v not behind position %v", i, tr[0], p.Position)
		}
		for j := 1; j < len(tr); j++ {
			if tr[j].Z < tr[j-1].Z {
				t.Errorf("particle %d trail not ordered newest first: %v", i, tr)
			}
		}
	}
}

func TestFlickerDimsOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 50
	cfg.FlickerChance = 1
	f := New(cfg, rand.New(rand.NewPCG(5, 6)))
	for range 30 {
		f.Advance(1.0/60, 1)
		for i, p := range f.Particles() {
			if p.Glow < 1-cfg.FlickerAmount || p.Glow > 1 {
				t.Fatalf("particle %d glow %v outside [%v, 1]", i, p.Glow, 1-cfg.FlickerAmount)
			}
		}
	}
}
