package event

import (
	"time"

	"github.com/lixenwraith/led-swarm/core"
)

// Event is a single diagnostic record produced during a tick
type Event struct {
	Type    EventType
	Payload any
	Frame   int64
	Elapsed time.Duration
}

// SpawnPayload describes a wave
type SpawnPayload struct {
	Wave      int
	Size      int
	Direction string
	Origin    core.Point
	Remaining int
	Active    int
}

// CapturePayload describes a newly lit pixel
type CapturePayload struct {
	Point    core.Point
	UnitID   uint64
	Captured int
	Target   int
}

// CompletePayload is emitted once when the mask is fully lit
type CompletePayload struct {
	Pixels int
	Waves  int
}
