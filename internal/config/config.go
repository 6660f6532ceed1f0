// Package config handles scene editor configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all editor settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Simulation SimulationConfig `yaml:"simulation"`
	View       ViewConfig       `yaml:"view"`
	Logging    LoggingConfig    `yaml:"logging"`
	Scene      SceneConfig      `yaml:"scene"`
	Run        RunConfig        `yaml:"run"`
}

// WindowConfig holds the viewport size in pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CameraConfig holds the fly camera settings. Angles are in degrees.
type CameraConfig struct {
	Eye   [3]float64 `yaml:"eye"`
	Front [3]float64 `yaml:"front"`
	Up    [3]float64 `yaml:"up"`
	FovY  float64    `yaml:"fovy"`
	Near  float64    `yaml:"near"`
	Far   float64    `yaml:"far"`
	Speed float64    `yaml:"speed"`
}

// Drag modes accepted by SimulationConfig.DragMode.
const (
	DragModeProject = "project"
	DragModeAxis    = "axis"
)

// Hover modes accepted by SimulationConfig.HoverMode.
const (
	HoverModeCross    = "cross"
	HoverModeDistance = "distance"
)

// SimulationConfig holds the per-frame simulation settings.
type SimulationConfig struct {
	Timestep       float64    `yaml:"timestep"`
	Gravity        [3]float64 `yaml:"gravity"`
	HoverThreshold float64    `yaml:"hover_threshold"`
	HoverMode      string     `yaml:"hover_mode"`
	HandleLength   float64    `yaml:"handle_length"`
	DragMode       string     `yaml:"drag_mode"`
}

// ViewConfig toggles the debug visualization.
type ViewConfig struct {
	Collider bool `yaml:"collider"`
	Axis     bool `yaml:"axis"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// SceneConfig lists the objects created at startup.
type SceneConfig struct {
	Objects []ObjectConfig `yaml:"objects"`
}

// ObjectConfig describes one startup object. A zero Scale means unit scale.
// Collider is "", "sphere" or "box".
type ObjectConfig struct {
	Name          string     `yaml:"name"`
	Position      [3]float64 `yaml:"position"`
	Rotation      [3]float64 `yaml:"rotation"`
	Scale         [3]float64 `yaml:"scale"`
	Collider      string     `yaml:"collider"`
	ColliderScale float64    `yaml:"collider_scale"`
	Body          bool       `yaml:"body"`
	Mass          float64    `yaml:"mass"`
	Force         [3]float64 `yaml:"force"`
	Velocity      [3]float64 `yaml:"velocity"`
	Handles       bool       `yaml:"handles"`
}

// RunConfig drives the headless runner: the number of frames to step and a
// scripted pointer.
type RunConfig struct {
	Frames  int            `yaml:"frames"`
	Pointer []PointerEvent `yaml:"pointer"`
}

// PointerEvent is the pointer state applied at a given frame. Frames without
// an event get a released pointer.
type PointerEvent struct {
	Frame   int     `yaml:"frame"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Pressed bool    `yaml:"pressed"`
	Down    bool    `yaml:"down"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
		Camera: CameraConfig{
			Eye:   [3]float64{30, 30, 30},
			Front: [3]float64{-1, -1, -1},
			Up:    [3]float64{0, 1, 0},
			FovY:  15,
			Near:  0.1,
			Far:   10000,
			Speed: 1,
		},
		Simulation: SimulationConfig{
			Timestep:       1.0 / 60.0,
			HoverThreshold: 1.0,
			HoverMode:      HoverModeCross,
			HandleLength:   2.0,
			DragMode:       DragModeProject,
		},
		View: ViewConfig{
			Collider: true,
			Axis:     true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Scene: SceneConfig{
			Objects: []ObjectConfig{
				{
					Name:     "left cube",
					Position: [3]float64{-4, 0, 0},
					Scale:    [3]float64{1, 1, 1},
					Collider: "box",
					Body:     true,
					Mass:     1,
					Velocity: [3]float64{3, 0, 0},
					Handles:  true,
				},
				{
					Name:     "right cube",
					Position: [3]float64{4, 0, 0},
					Rotation: [3]float64{0, 45, 0},
					Scale:    [3]float64{1, 1, 1},
					Collider: "box",
					Body:     true,
					Mass:     1,
					Velocity: [3]float64{-3, 0, 0},
					Handles:  true,
				},
				{
					Name:     "sphere",
					Position: [3]float64{0, 3, 0},
					Scale:    [3]float64{1, 1, 1},
					Collider: "sphere",
					Handles:  true,
				},
			},
		},
		Run: RunConfig{
			Frames: 120,
			Pointer: []PointerEvent{
				// press on the sphere, then drag it along its X handle
				{Frame: 1, X: 400, Y: 189, Pressed: true, Down: true},
				{Frame: 2, X: 410, Y: 189, Down: true},
				{Frame: 3, X: 420, Y: 189, Down: true},
			},
		},
	}
}

// Validate reports settings that cannot be clamped into something usable.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("camera fovy %g out of (0, 180)", c.Camera.FovY))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes near=%g far=%g", c.Camera.Near, c.Camera.Far))
	}
	if c.Simulation.Timestep <= 0 {
		errs = append(errs, fmt.Errorf("simulation timestep %g must be positive", c.Simulation.Timestep))
	}
	switch c.Simulation.DragMode {
	case DragModeProject, DragModeAxis:
	default:
		errs = append(errs, fmt.Errorf("unknown drag mode %q", c.Simulation.DragMode))
	}
	switch c.Simulation.HoverMode {
	case HoverModeCross, HoverModeDistance:
	default:
		errs = append(errs, fmt.Errorf("unknown hover mode %q", c.Simulation.HoverMode))
	}
	if c.Run.Frames < 0 {
		errs = append(errs, fmt.Errorf("run frames %d must not be negative", c.Run.Frames))
	}

	for i, object := range c.Scene.Objects {
		switch object.Collider {
		case "", "sphere", "box":
		default:
			errs = append(errs, fmt.Errorf("scene object %d (%s): unknown collider %q", i, object.Name, object.Collider))
		}
	}

	return errors.Join(errs...)
}
