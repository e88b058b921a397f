// Package scene owns the session: the camera, the cube, the star field and the
// mutable controls (mode, speed, pause) that input events change between frames.
package scene

import (
	"math"

	"go.uber.org/zap"

	"github.com/geofpwhite/starcube/internal/camera"
	"github.com/geofpwhite/starcube/internal/logger"
	"github.com/geofpwhite/starcube/internal/render"
	"github.com/geofpwhite/starcube/internal/shape"
	"github.com/geofpwhite/starcube/internal/stars"
)

// Controls are the user-adjustable settings and their bounds.
type Controls struct {
	Speed     float64
	SpeedStep float64
	MinSpeed  float64
	MaxSpeed  float64
	Render    render.Options
}

// Status is the read-only state shown by the overlay.
type Status struct {
	Mode   render.Mode
	Speed  float64
	Paused bool
	FPS    float64
}

// Scene is the whole session state. It is driven from a single goroutine.
type Scene struct {
	Camera *camera.Camera
	Object *shape.Object3D
	Stars  *stars.Field

	opts      render.Options
	speed     float64
	speedStep float64
	minSpeed  float64
	maxSpeed  float64
	paused    bool
	done      bool

	fps      fpsMeter
	renderer *render.Renderer
}

// New assembles a scene. field may be nil for a cube-only scene.
func New(cam *camera.Camera, obj *shape.Object3D, field *stars.Field, c Controls) *Scene {
	s := &Scene{
		Camera:    cam,
		Object:    obj,
		Stars:     field,
		opts:      c.Render,
		speedStep: c.SpeedStep,
		minSpeed:  c.MinSpeed,
		maxSpeed:  c.MaxSpeed,
		renderer:  render.NewRenderer(),
	}
	s.setSpeed(c.Speed)
	return s
}

// Advance moves the simulation forward by dt seconds. While paused only the
// FPS meter runs.
func (s *Scene) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	if s.fps.tick(dt) {
		logger.Debug("fps", zap.Float64("fps", s.fps.value), zap.Float64("speed", s.speed))
	}
	if s.paused {
		return
	}
	s.Object.Advance(dt, s.speed)
	if s.Stars != nil {
		s.Stars.Advance(dt, s.speed)
	}
}

// Render builds this frame's draw commands. The slice is reused by the next call.
func (s *Scene) Render() []render.Command {
	return s.renderer.Frame(s.Object, s.Stars, s.Camera, s.opts)
}

// Apply performs the state change bound to ev.
func (s *Scene) Apply(ev Event) {
	h, ok := dispatch[ev]
	if !ok {
		logger.Warn("unhandled event", zap.Stringer("event", ev))
		return
	}
	h(s)
	logger.Debug("event",
		zap.Stringer("event", ev),
		zap.Stringer("mode", s.opts.Mode),
		zap.Float64("speed", s.speed),
		zap.Bool("paused", s.paused),
		zap.Float64("zoom", s.Camera.Zoom()))
}

// Status reports the state for the overlay.
func (s *Scene) Status() Status {
	return Status{Mode: s.opts.Mode, Speed: s.speed, Paused: s.paused, FPS: s.fps.value}
}

// Options returns the current render options.
func (s *Scene) Options() render.Options { return s.opts }

// Done reports whether an exit event was received.
func (s *Scene) Done() bool { return s.done }

func (s *Scene) setSpeed(v float64) {
	s.speed = math.Max(s.minSpeed, math.Min(s.maxSpeed, v))
}

var dispatch = map[Event]func(*Scene){
	EventPause:       func(s *Scene) { s.paused = true },
	EventResume:      func(s *Scene) { s.paused = false },
	EventTogglePause: func(s *Scene) { s.paused = !s.paused },
	EventSpeedUp:     func(s *Scene) { s.setSpeed(s.speed + s.speedStep) },
	EventSpeedDown:   func(s *Scene) { s.setSpeed(s.speed - s.speedStep) },
	EventToggleMode: func(s *Scene) {
		if s.opts.Mode == render.Solid {
			s.opts.Mode = render.Wireframe
		} else {
			s.opts.Mode = render.Solid
		}
	},
	EventZoomIn:  func(s *Scene) { s.Camera.ZoomIn() },
	EventZoomOut: func(s *Scene) { s.Camera.ZoomOut() },
	EventExit:    func(s *Scene) { s.done = true },
}

// fpsMeter averages frames over windows of at least one second.
type fpsMeter struct {
	elapsed float64
	frames  int
	value   float64
}

// tick records a frame and reports whether a new value was published.
func (m *fpsMeter) tick(dt float64) bool {
	m.frames++
	m.elapsed += dt
	if m.elapsed < 1 {
		return false
	}
	m.value = float64(m.frames) / m.elapsed
	m.frames = 0
	m.elapsed = 0
	return true
}
