package parameter

import "time"

// Simulation Loop Timing
const (
	// TickInterval is the minimum wall-clock gap between simulation updates
	TickInterval = 50 * time.Millisecond

	// DoneDelay is how long the completed text is held before the display blanks
	DoneDelay = 1000 * time.Millisecond

	// FrameInterval is the terminal redraw cadence, faster than ticks so input stays responsive
	FrameInterval = 16 * time.Millisecond

	// HeadlessMaxDuration bounds a headless run that never completes
	HeadlessMaxDuration = 10 * time.Minute
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
