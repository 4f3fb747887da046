package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/led-swarm/engine"
	"github.com/lixenwraith/led-swarm/system"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swarm.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}

	got := cfg.EngineSettings()
	want := engine.DefaultSettings()
	want.Seed = 0
	if got != want {
		t.Errorf("EngineSettings = %+v, want %+v", got, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
seed = 99

[spawn]
wave_size = 20
entry = "fixed"

[flock]
homing = true

[timing]
tick_ms = 25
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 99 || cfg.Spawn.WaveSize != 20 || !cfg.Flock.Homing {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.Spawn.MaxUnits != 200 || cfg.Matrix.Width != 64 {
		t.Error("Unset keys should keep defaults")
	}
	if cfg.TickInterval() != 25*time.Millisecond {
		t.Errorf("TickInterval = %v", cfg.TickInterval())
	}

	opts, err := cfg.SystemOptions()
	if err != nil {
		t.Fatalf("SystemOptions: %v", err)
	}
	if _, ok := opts.Entry.(system.FixedEntry); !ok {
		t.Errorf("Entry = %T, want FixedEntry", opts.Entry)
	}
	if !opts.Homing || opts.Spawn.WaveSize != 20 {
		t.Errorf("Options = %+v", opts)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "[spawn]\nwaves = 3\n"},
		{"bad entry", "[spawn]\nentry = \"sideways\"\n"},
		{"zero tick", "[timing]\ntick_ms = 0\n"},
		{"image without path", "[mask]\nsource = \"image\"\n"},
		{"bad mode", "[display]\nmode = \"opengl\"\n"},
		{"volume", "[sound]\nvolume = 2.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load(writeConfig(t, "[spawn\n"))
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Expected decode error, got %v", err)
	}
}

func TestMaskProviderOffset(t *testing.T) {
	cfg := Default()
	base, err := cfg.MaskProvider()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Mask.OffsetX = 100
	shifted, err := cfg.MaskProvider()
	if err != nil {
		t.Fatal(err)
	}
	if base.TargetPixels().Len() != 507 {
		t.Errorf("Base mask has %d pixels", base.TargetPixels().Len())
	}
	if shifted.TargetPixels().Len() != 0 {
		t.Error("Mask shifted off the matrix should be empty after clipping")
	}
}

func TestAudioConfig(t *testing.T) {
	cfg := Default()
	cfg.Sound.Enabled = true
	cfg.Sound.Volume = 0.25
	ac := cfg.AudioConfig()
	if !ac.Enabled || ac.MasterVolume != 0.25 || ac.SampleRate != 48000 {
		t.Errorf("AudioConfig = %+v", ac)
	}
}
