package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"fortio.org/safecast"
	"go.uber.org/zap"

	"github.com/geofpwhite/starcube/internal/config"
	"github.com/geofpwhite/starcube/internal/logger"
	"github.com/geofpwhite/starcube/internal/render"
	"github.com/geofpwhite/starcube/internal/scene"
	"github.com/geofpwhite/starcube/internal/shape"
)

var overlayColor = color.NRGBA{230, 230, 230, 255}

var errNoFrames = errors.New("no frames recorded")

// gifRecorder keeps every presented frame as a paletted image.
type gifRecorder struct {
	surf    *render.ImageSurface
	palette color.Palette
	delay   int // centiseconds
	frames  []*image.Paletted
}

func newGIFRecorder(w, h int, dt float64) *gifRecorder {
	return &gifRecorder{
		surf:    render.NewImageSurface(w, h),
		palette: gifPalette(),
		delay:   max(1, safecast.MustRound[int](dt*100)),
	}
}

// gifPalette holds black, the cube face colours with a darker and a lighter
// shade each, the depth palette's blues, samples of the hue palette and a grey ramp.
func gifPalette() color.Palette {
	palette := color.Palette{color.Black}

	for i := range 6 {
		c := shape.Cube{}.FaceColor(i)
		palette = append(palette, c, render.Shade(c, 0.5), render.Shade(c, 1.5))
	}
	for i := range 16 {
		b := 0.3 + 0.7*float64(i)/15
		palette = append(palette, render.RGB(b, b, 1))
	}
	for i := range 64 {
		palette = append(palette, render.HueColor(float64(i)/64))
	}
	for i := range 32 {
		gray := uint8(i * 8)
		palette = append(palette, color.NRGBA{gray, gray, gray, 255})
	}
	return palette
}

// Present implements scene.Presenter.
func (r *gifRecorder) Present(cmds []render.Command, st scene.Status) error {
	r.surf.Clear()
	render.Draw(r.surf, cmds)
	r.surf.Text(4, 14, statusLine(st), overlayColor)

	bounds := r.surf.Img.Bounds()
	p := image.NewPaletted(bounds, r.palette)
	draw.Draw(p, bounds, r.surf.Img, bounds.Min, draw.Src)
	r.frames = append(r.frames, p)
	return nil
}

// Encode writes the frames as a looping animated GIF.
func (r *gifRecorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return errNoFrames
	}
	out := &gif.GIF{LoopCount: 0}
	for _, f := range r.frames {
		out.Image = append(out.Image, f)
		out.Delay = append(out.Delay, r.delay)
	}
	return gif.EncodeAll(w, out)
}

// runRecord renders cfg.Record.Frames frames headless at a fixed dt and writes
// them to cfg.Record.Path.
func runRecord(ctx context.Context, cfg *config.Config) error {
	script, err := scene.ParseScript(cfg.Record.Events)
	if err != nil {
		return err
	}
	w, h := cfg.Display.Width, cfg.Display.Height
	rec := newGIFRecorder(w, h, cfg.Record.DT)
	loop := &scene.Loop{Scene: newScene(cfg, w, h, newRand())}
	clock := &scene.FixedClock{DT: cfg.Record.DT, Frames: cfg.Record.Frames}
	if err := loop.Run(ctx, clock, script, rec); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := rec.Encode(&buf); err != nil {
		return fmt.Errorf("encoding %s: %w", cfg.Record.Path, err)
	}
	if err := os.WriteFile(cfg.Record.Path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	logger.Info("recorded",
		zap.String("path", cfg.Record.Path),
		zap.Int("frames", len(rec.frames)),
		zap.Int("delay_cs", rec.delay))
	return nil
}
