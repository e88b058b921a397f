package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDumpConfig = flag.String("dump-config", "", "Write the effective config to this path and exit")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile    = flag.String("log", "", "Log file path")
	flagFPS        = flag.Float64("fps", 0, "Frames per second for the animation")
	flagSolid      = flag.Bool("solid", false, "Start in solid mode")
	flagPalette    = flag.String("palette", "", "Colour palette: depth or hue")
	flagSpeed      = flag.Float64("speed", 0, "Initial speed multiplier")
	flagStars      = flag.Int("stars", 0, "Number of stars")
	flagRecord     = flag.String("record", "", "Render headless and write an animated GIF to this path")
	flagFrames     = flag.Int("frames", 0, "Number of frames to record")
	flagEvents     = flag.String("events", "", "Scripted events for record mode, e.g. 30:mode,90:pause")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// DumpPath returns the --dump-config destination, if any.
func DumpPath() string {
	return *flagDumpConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagFPS > 0 {
		cfg.Display.FPS = *flagFPS
	}
	if *flagSolid {
		cfg.Render.Mode = "solid"
	}
	if *flagPalette != "" {
		cfg.Render.Palette = *flagPalette
	}
	if *flagSpeed > 0 {
		cfg.Control.Speed = *flagSpeed
	}
	if *flagStars > 0 {
		cfg.Stars.Count = *flagStars
	}
	if *flagRecord != "" {
		cfg.Record.Path = *flagRecord
	}
	if *flagFrames > 0 {
		cfg.Record.Frames = *flagFrames
	}
	if *flagEvents != "" {
		cfg.Record.Events = *flagEvents
	}
}
