package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"fortio.org/terminal/ansipixels"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/geofpwhite/starcube/internal/camera"
	"github.com/geofpwhite/starcube/internal/config"
	"github.com/geofpwhite/starcube/internal/logger"
	"github.com/geofpwhite/starcube/internal/render"
	"github.com/geofpwhite/starcube/internal/scene"
	"github.com/geofpwhite/starcube/internal/shape"
	"github.com/geofpwhite/starcube/internal/stars"
)

// defaultRecordPath is used when stdout is not a terminal and no -record path was given.
const defaultRecordPath = "starcube.gif"

const helpLine = "Space: pause | Up/Down: speed | W: mode | A/Z: zoom | Q: quit"

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "starcube:", err)
		return 1
	}
	if path := config.DumpPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintln(os.Stderr, "starcube: writing config:", err)
			return 1
		}
		return 0
	}

	recording := cfg.Record.Path != ""
	if !recording && !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Record.Path = defaultRecordPath
		recording = true
	}
	// the terminal is the drawing surface, so interactive runs only log to a file
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, recording); err != nil {
		fmt.Fprintln(os.Stderr, "starcube: logger:", err)
		return 1
	}
	defer logger.Sync()
	logger.Info("starting",
		zap.Bool("record", recording),
		zap.String("mode", cfg.Render.Mode),
		zap.String("palette", cfg.Render.Palette),
		zap.Int("stars", cfg.Stars.Count),
		zap.Float64("fps", cfg.Display.FPS))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if recording {
		err = runRecord(ctx, cfg)
	} else {
		err = runTerminal(ctx, cfg)
	}
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "starcube:", err)
		return 1
	}
	return 0
}

// newScene builds the cube, the star field and a camera for a w x h pixel surface.
func newScene(cfg *config.Config, w, h int, rng *rand.Rand) *scene.Scene {
	cam := camera.New(cfg.CameraOptions(w, h))
	cube := shape.NewCube(cfg.Cube.Size)
	cube.Rate = cfg.RotationRate()
	cube.HueSpeed = cfg.Cube.HueSpeed
	field := stars.New(cfg.StarField(), rng)
	return scene.New(cam, cube, field, cfg.Controls())
}

func statusLine(st scene.Status) string {
	state := "Running"
	if st.Paused {
		state = "Paused"
	}
	return fmt.Sprintf("Mode: %s | Speed: %.1f | FPS: %.1f | Status: %s", st.Mode, st.Speed, st.FPS, state)
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), uint64(time.Now().UnixNano())))
}

// termPresenter shows frames on the terminal using half-block pixels, two per cell.
type termPresenter struct {
	ap   *ansipixels.AnsiPixels
	surf *render.ImageSurface
}

// Present implements scene.Presenter.
func (t *termPresenter) Present(cmds []render.Command, st scene.Status) error {
	t.surf.Clear()
	render.Draw(t.surf, cmds)
	img := &image.RGBA{Pix: t.surf.Img.Pix, Stride: t.surf.Img.Stride, Rect: t.surf.Img.Rect}
	t.ap.StartSyncMode()
	defer t.ap.EndSyncMode()
	var err error
	if t.ap.ColorOutput.TrueColor {
		err = t.ap.DrawTrueColorImage(0, 0, img)
	} else {
		err = t.ap.Draw216ColorImage(0, 0, img)
	}
	if err != nil {
		return err
	}
	t.ap.WriteAt(0, 0, "%s", statusLine(st))
	t.ap.WriteAt(0, t.ap.H-1, "%s", helpLine)
	return nil
}

func runTerminal(ctx context.Context, cfg *config.Config) error {
	ap := ansipixels.NewAnsiPixels(cfg.Display.FPS)
	if err := ap.Open(); err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	ap.HideCursor()
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.ClearScreen()
		ap.Restore()
	}()
	ap.MouseTrackingOn()
	ap.ClearScreen()
	ap.SyncBackgroundColor()

	out := &termPresenter{ap: ap, surf: render.NewImageSurface(ap.W, ap.H*2)}
	out.surf.Background = color.NRGBA{ap.Background.R, ap.Background.G, ap.Background.B, 255}
	sc := newScene(cfg, ap.W, ap.H*2, newRand())
	loop := &scene.Loop{Scene: sc}
	ap.OnResize = func() error {
		out.surf.Resize(ap.W, ap.H*2)
		sc.Camera.SetViewport(ap.W, ap.H*2)
		logger.Debug("resize", zap.Int("w", ap.W), zap.Int("h", ap.H))
		return nil
	}

	var presentErr error
	last := time.Now()
	err := ap.FPSTicks(ctx, func(context.Context) bool {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		events := parseKeys(ap.Data)
		if ap.MouseWheelUp() {
			events = append(events, scene.EventZoomIn)
		}
		if ap.MouseWheelDown() {
			events = append(events, scene.EventZoomOut)
		}
		cmds, ok := loop.Step(dt, events)
		if !ok {
			return false
		}
		if presentErr = out.Present(cmds, sc.Status()); presentErr != nil {
			return false
		}
		return true
	})
	if presentErr != nil {
		return presentErr
	}
	if ctx.Err() != nil {
		return nil
	}
	return err
}
