package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile   = flag.String("log", "", "Write logs to this file")
	flagWidth     = flag.Int("width", 0, "Viewport width")
	flagHeight    = flag.Int("height", 0, "Viewport height")
	flagFrames    = flag.Int("frames", -1, "Number of frames to simulate")
	flagDragMode  = flag.String("drag", "", "Gizmo drag mode (project or axis)")
	flagHoverMode = flag.String("hover", "", "Gizmo hover mode (cross or distance)")
	flagNoDebug   = flag.Bool("no-debug-draw", false, "Disable collider and axis visualization")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagFrames >= 0 {
		cfg.Run.Frames = *flagFrames
	}
	if *flagDragMode != "" {
		cfg.Simulation.DragMode = *flagDragMode
	}
	if *flagHoverMode != "" {
		cfg.Simulation.HoverMode = *flagHoverMode
	}
	if *flagNoDebug {
		cfg.View.Collider = false
		cfg.View.Axis = false
	}
}
