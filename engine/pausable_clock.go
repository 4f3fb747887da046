package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock wraps a real clock and subtracts time spent paused
// While paused Now is frozen, so the simulation gate sees no elapsed time
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider

	isPaused        atomic.Bool
	pauseStart      time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a pausable clock over source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{source: source}
}

// Now returns simulation time: real time minus cumulative pause
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStart.Add(-pc.totalPausedTime)
	}
	return pc.source.Now().Add(-pc.totalPausedTime)
}

// RealTime returns the underlying clock, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops time advancement, no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.Load() {
		return
	}
	pc.pauseStart = pc.source.Now()
	pc.isPaused.Store(true)
}

// Resume continues time advancement, no-op if running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.isPaused.Load() {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
	pc.isPaused.Store(false)
}

// Toggle flips pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
