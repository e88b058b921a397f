package scene

import (
	"context"
	"errors"

	"github.com/geofpwhite/starcube/internal/render"
)

// ErrClockStopped is returned by a Clock that has no more frames to give.
var ErrClockStopped = errors.New("clock stopped")

// Clock paces the loop. Tick blocks until the next frame is due and returns the
// seconds elapsed since the previous one.
type Clock interface {
	Tick(ctx context.Context) (float64, error)
}

// Input supplies the events that arrived since the last frame.
type Input interface {
	Poll() []Event
}

// Presenter puts a finished frame on the drawing surface.
type Presenter interface {
	Present(cmds []render.Command, st Status) error
}

// FixedClock returns the same dt for a fixed number of frames without sleeping.
type FixedClock struct {
	DT     float64
	Frames int
	ticks  int
}

// Tick implements Clock.
func (c *FixedClock) Tick(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if c.ticks >= c.Frames {
		return 0, ErrClockStopped
	}
	c.ticks++
	return c.DT, nil
}

// Loop drives a Scene one frame at a time: input, then advance, then render.
type Loop struct {
	Scene *Scene
}

// Step applies events, advances by dt and renders. It returns false, and no
// commands, once an exit event has been applied.
func (l *Loop) Step(dt float64, events []Event) ([]render.Command, bool) {
	for _, ev := range events {
		l.Scene.Apply(ev)
	}
	if l.Scene.Done() {
		return nil, false
	}
	l.Scene.Advance(dt)
	return l.Scene.Render(), true
}

// Run steps until the scene exits, the clock stops or ctx is cancelled.
func (l *Loop) Run(ctx context.Context, clock Clock, in Input, out Presenter) error {
	for {
		dt, err := clock.Tick(ctx)
		if errors.Is(err, ErrClockStopped) || errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}
		cmds, ok := l.Step(dt, in.Poll())
		if !ok {
			return nil
		}
		if err := out.Present(cmds, l.Scene.Status()); err != nil {
			return err
		}
	}
}
