package audio

import "time"

// Config holds playback settings
type Config struct {
	Enabled      bool
	SampleRate   int
	BufferSize   time.Duration
	MasterVolume float64
}

// DefaultConfig returns audio disabled at 48kHz
func DefaultConfig() *Config {
	return &Config{
		Enabled:      false,
		SampleRate:   48000,
		BufferSize:   100 * time.Millisecond,
		MasterVolume: 0.5,
	}
}
