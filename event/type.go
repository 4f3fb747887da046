package event

import "fmt"

// EventType represents the type of simulation event
type EventType int

const (
	// EventSpawn reports a new wave entering the matrix
	// Trigger: SpawnSystem | Payload: *SpawnPayload
	EventSpawn EventType = iota

	// EventCapture reports a target pixel lit for the first time
	// Trigger: CaptureSystem | Payload: *CapturePayload
	EventCapture

	// EventComplete reports the last target pixel captured
	// Trigger: Simulation completion check | Payload: *CompletePayload
	EventComplete

	// EventDone reports the hold period elapsed and the display should blank
	// Trigger: Simulation done check | Payload: nil
	EventDone
)

var eventTypeNames = map[EventType]string{
	EventSpawn:    "spawn",
	EventCapture:  "capture",
	EventComplete: "complete",
	EventDone:     "done",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(t))
}
