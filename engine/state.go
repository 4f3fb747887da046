package engine

import (
	"time"

	"github.com/lixenwraith/led-swarm/component"
	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/event"
	"github.com/lixenwraith/led-swarm/vmath"
)

// Phase is the simulation lifecycle stage
type Phase uint8

const (
	// PhaseRunning spawns, flocks and captures until every target is lit
	PhaseRunning Phase = iota
	// PhaseJustCompleted holds the finished text on screen; no systems run
	PhaseJustCompleted
	// PhaseDone is terminal; the display has been blanked
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseJustCompleted:
		return "completed"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// State is the complete mutable simulation state
// Owned by Simulation; systems receive it by pointer during their Update
type State struct {
	Width, Height int

	Units []component.Unit

	// Target is immutable after construction
	Target core.PointSet
	// Captured only grows and is always a subset of Target
	Captured core.PointSet

	Start       time.Time
	Now         time.Time
	LastUpdate  time.Time
	CompletedAt time.Time // Zero until the last target is captured
	Elapsed     time.Duration

	// LastSpawn is the elapsed seconds at the most recent wave
	LastSpawn      float64
	DirectionIndex int
	Waves          int

	Frame int64
	Phase Phase

	Rand   *vmath.FastRand
	Events *event.Queue

	nextID uint64
}

// Seconds returns elapsed simulation time in seconds
func (s *State) Seconds() float64 {
	return s.Elapsed.Seconds()
}

// Remaining returns the number of target pixels not yet captured
func (s *State) Remaining() int {
	return s.Target.Len() - s.Captured.Len()
}

// Completed reports whether every target pixel has been captured
func (s *State) Completed() bool {
	return s.Captured.Len() >= s.Target.Len()
}

// NextID allocates a unit serial
func (s *State) NextID() uint64 {
	s.nextID++
	return s.nextID
}

// Spawned returns how many units have been created so far
func (s *State) Spawned() uint64 {
	return s.nextID
}

// Emit queues a diagnostic event stamped with the current frame
func (s *State) Emit(t event.EventType, payload any) {
	s.Events.Push(event.Event{
		Type:    t,
		Payload: payload,
		Frame:   s.Frame,
		Elapsed: s.Elapsed,
	})
}
