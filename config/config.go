// Package config layers a TOML file over the built-in defaults
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/led-swarm/audio"
	"github.com/lixenwraith/led-swarm/engine"
	"github.com/lixenwraith/led-swarm/mask"
	"github.com/lixenwraith/led-swarm/parameter"
	"github.com/lixenwraith/led-swarm/system"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Mask sources
const (
	MaskThemePark = "themepark"
	MaskImage     = "image"
)

// Display modes
const (
	DisplayTerminal = "terminal"
	DisplayHeadless = "headless"
)

type Matrix struct {
	Width       int  `toml:"width"`
	Height      int  `toml:"height"`
	BitDepth    int  `toml:"bit_depth"`
	Quantize565 bool `toml:"quantize_565"`
}

type Timing struct {
	TickMs      int `toml:"tick_ms"`
	DoneDelayMs int `toml:"done_delay_ms"`
	// MaxSeconds bounds a headless run that never completes
	MaxSeconds int `toml:"max_seconds"`
}

type Spawn struct {
	IntervalSec float64 `toml:"interval_sec"`
	WaveSize    int     `toml:"wave_size"`
	MaxUnits    int     `toml:"max_units"`
	Margin      float64 `toml:"margin"`
	Entry       string  `toml:"entry"`
}

type Flock struct {
	Homing bool `toml:"homing"`
}

type Mask struct {
	Source    string  `toml:"source"`
	Image     string  `toml:"image"`
	Threshold float64 `toml:"threshold"`
	Invert    bool    `toml:"invert"`
	OffsetX   int     `toml:"offset_x"`
	OffsetY   int     `toml:"offset_y"`
}

type Display struct {
	Mode    string `toml:"mode"`
	FrameMs int    `toml:"frame_ms"`
}

type Output struct {
	GIF      string `toml:"gif"`
	GIFScale int    `toml:"gif_scale"`
	GIFEvery int    `toml:"gif_every"`
	Record   string `toml:"record"`
}

type Sound struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
}

// Config is the full run configuration
type Config struct {
	Matrix  Matrix  `toml:"matrix"`
	Timing  Timing  `toml:"timing"`
	Spawn   Spawn   `toml:"spawn"`
	Flock   Flock   `toml:"flock"`
	Mask    Mask    `toml:"mask"`
	Display Display `toml:"display"`
	Output  Output  `toml:"output"`
	Sound   Sound   `toml:"sound"`

	// Seed 0 asks the driver to pick one from the clock
	Seed uint64 `toml:"seed"`
}

// Default returns the built-in configuration
func Default() *Config {
	ac := audio.DefaultConfig()
	return &Config{
		Matrix: Matrix{
			Width:    parameter.MatrixWidth,
			Height:   parameter.MatrixHeight,
			BitDepth: parameter.MatrixBitDepth,
		},
		Timing: Timing{
			TickMs:      int(parameter.TickInterval / time.Millisecond),
			DoneDelayMs: int(parameter.DoneDelay / time.Millisecond),
			MaxSeconds:  int(parameter.HeadlessMaxDuration / time.Second),
		},
		Spawn: Spawn{
			IntervalSec: parameter.SpawnInterval,
			WaveSize:    parameter.WaveSize,
			MaxUnits:    parameter.MaxUnits,
			Margin:      parameter.DespawnMargin,
			Entry:       system.EntryTargeted,
		},
		Mask: Mask{
			Source:    MaskThemePark,
			Threshold: 0.5,
		},
		Display: Display{
			Mode:    DisplayTerminal,
			FrameMs: int(parameter.FrameInterval / time.Millisecond),
		},
		Output: Output{
			GIFScale: parameter.GIFScale,
			GIFEvery: parameter.GIFEvery,
		},
		Sound: Sound{
			Enabled:    ac.Enabled,
			Volume:     ac.MasterVolume,
			SampleRate: ac.SampleRate,
		},
	}
}

// Load decodes path over the defaults and validates the result
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Matrix.Width > 0 && c.Matrix.Height > 0, "matrix size %dx%d", c.Matrix.Width, c.Matrix.Height)
	check(c.Matrix.BitDepth >= 1 && c.Matrix.BitDepth <= 8, "matrix.bit_depth %d not in [1,8]", c.Matrix.BitDepth)
	check(c.Timing.TickMs > 0, "timing.tick_ms must be positive")
	check(c.Timing.DoneDelayMs >= 0, "timing.done_delay_ms must not be negative")
	check(c.Timing.MaxSeconds > 0, "timing.max_seconds must be positive")
	check(c.Spawn.IntervalSec >= 0, "spawn.interval_sec must not be negative")
	check(c.Spawn.WaveSize > 0, "spawn.wave_size must be positive")
	check(c.Spawn.MaxUnits > 0, "spawn.max_units must be positive")
	check(c.Spawn.Margin >= 0, "spawn.margin must not be negative")
	if _, err := system.EntryPolicyByName(c.Spawn.Entry); err != nil {
		errs = append(errs, err)
	}
	switch c.Mask.Source {
	case MaskThemePark:
	case MaskImage:
		check(c.Mask.Image != "", "mask.image required when source is %q", MaskImage)
	default:
		errs = append(errs, fmt.Errorf("mask.source %q", c.Mask.Source))
	}
	check(c.Mask.Threshold >= 0 && c.Mask.Threshold <= 1, "mask.threshold %v not in [0,1]", c.Mask.Threshold)
	check(c.Display.Mode == DisplayTerminal || c.Display.Mode == DisplayHeadless, "display.mode %q", c.Display.Mode)
	check(c.Display.FrameMs > 0, "display.frame_ms must be positive")
	check(c.Output.GIFScale > 0 && c.Output.GIFEvery > 0, "output gif scale and stride must be positive")
	check(c.Sound.Volume >= 0 && c.Sound.Volume <= 1, "sound.volume %v not in [0,1]", c.Sound.Volume)
	check(c.Sound.SampleRate > 0, "sound.sample_rate must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// EngineSettings maps the matrix and timing sections onto the loop
func (c *Config) EngineSettings() engine.Settings {
	return engine.Settings{
		Width:        c.Matrix.Width,
		Height:       c.Matrix.Height,
		TickInterval: time.Duration(c.Timing.TickMs) * time.Millisecond,
		DoneDelay:    time.Duration(c.Timing.DoneDelayMs) * time.Millisecond,
		Seed:         c.Seed,
	}
}

// SystemOptions builds the pipeline variant
func (c *Config) SystemOptions() (system.Options, error) {
	policy, err := system.EntryPolicyByName(c.Spawn.Entry)
	if err != nil {
		return system.Options{}, err
	}
	return system.Options{
		Spawn: system.SpawnConfig{
			Interval: c.Spawn.IntervalSec,
			WaveSize: c.Spawn.WaveSize,
			MaxUnits: c.Spawn.MaxUnits,
		},
		Entry:  policy,
		Homing: c.Flock.Homing,
		Margin: c.Spawn.Margin,
	}, nil
}

// AudioConfig maps the sound section
func (c *Config) AudioConfig() *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Sound.Enabled
	ac.MasterVolume = c.Sound.Volume
	ac.SampleRate = c.Sound.SampleRate
	return ac
}

// MaskProvider resolves the target text source, offset and clipped to the matrix
func (c *Config) MaskProvider() (mask.Provider, error) {
	var src mask.Provider
	switch c.Mask.Source {
	case MaskImage:
		img, err := mask.LoadImage(c.Mask.Image)
		if err != nil {
			return nil, err
		}
		src = mask.NewImageProvider(img, mask.ImageConfig{
			Width:     c.Matrix.Width,
			Height:    c.Matrix.Height,
			Threshold: c.Mask.Threshold,
			Invert:    c.Mask.Invert,
		})
	default:
		src = mask.ThemeParkWaits()
	}
	return mask.Transform(src).
		Translate(c.Mask.OffsetX, c.Mask.OffsetY).
		Clip(c.Matrix.Width, c.Matrix.Height), nil
}

// TickInterval is the configured simulation step
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMs) * time.Millisecond
}

// FrameInterval is the configured render cadence
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Display.FrameMs) * time.Millisecond
}

// MaxDuration bounds a headless run
func (c *Config) MaxDuration() time.Duration {
	return time.Duration(c.Timing.MaxSeconds) * time.Second
}
