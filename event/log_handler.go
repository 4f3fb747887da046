package event

import (
	"log"
	"time"
)

// LogHandler writes one line per event to the standard logger
// Output goes wherever log.SetOutput points; io.Discard makes it a no-op
type LogHandler struct{}

func NewLogHandler() *LogHandler {
	return &LogHandler{}
}

func (h *LogHandler) EventTypes() []EventType {
	return []EventType{EventSpawn, EventCapture, EventComplete, EventDone}
}

func (h *LogHandler) HandleEvent(ev Event) {
	switch p := ev.Payload.(type) {
	case *SpawnPayload:
		log.Printf("spawn: wave=%d size=%d from=%s at=(%d,%d) remaining=%d active=%d",
			p.Wave, p.Size, p.Direction, p.Origin.X, p.Origin.Y, p.Remaining, p.Active)
	case *CapturePayload:
		log.Printf("capture: (%d,%d) unit=%d %d/%d", p.Point.X, p.Point.Y, p.UnitID, p.Captured, p.Target)
	case *CompletePayload:
		log.Printf("complete: %d pixels in %.1fs after %d waves",
			p.Pixels, ev.Elapsed.Round(100*time.Millisecond).Seconds(), p.Waves)
	default:
		log.Printf("%s: frame=%d elapsed=%s", ev.Type, ev.Frame, ev.Elapsed)
	}
}
