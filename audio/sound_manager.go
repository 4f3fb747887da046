package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager owns the speaker and a mixer that one-shot effects are added to
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; nil cfg uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(sm.cfg.BufferSize)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still in the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Active reports whether sounds will be heard
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) play(build func(*Config) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := build(sm.cfg)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayCapture plays a blip whose pitch rises with progress
func (sm *SoundManager) PlayCapture(progress float64) {
	sm.play(func(cfg *Config) beep.Streamer { return CreateCaptureSound(cfg, progress) })
}

// PlaySpawn plays the wave arrival whoosh
func (sm *SoundManager) PlaySpawn() {
	sm.play(CreateSpawnSound)
}

// PlayComplete plays the completion chime
func (sm *SoundManager) PlayComplete() {
	sm.play(CreateCompleteSound)
}
