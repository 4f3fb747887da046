package audio

import (
	"time"

	"github.com/lixenwraith/led-swarm/event"
)

// Player is the subset of SoundManager the handler drives
type Player interface {
	PlayCapture(progress float64)
	PlaySpawn()
	PlayComplete()
}

// Handler turns simulation events into sounds
// Capture blips are throttled so a dense frame does not stack dozens of voices
type Handler struct {
	player      Player
	minGap      time.Duration
	lastCapture time.Duration
	played      bool
}

// NewHandler creates an event handler playing through p
func NewHandler(p Player, minGap time.Duration) *Handler {
	return &Handler{player: p, minGap: minGap}
}

func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{event.EventSpawn, event.EventCapture, event.EventComplete}
}

func (h *Handler) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventSpawn:
		h.player.PlaySpawn()
	case event.EventCapture:
		p, ok := ev.Payload.(*event.CapturePayload)
		if !ok || p.Target == 0 {
			return
		}
		if h.played && ev.Elapsed-h.lastCapture < h.minGap {
			return
		}
		h.played = true
		h.lastCapture = ev.Elapsed
		h.player.PlayCapture(float64(p.Captured) / float64(p.Target))
	case event.EventComplete:
		h.player.PlayComplete()
	}
}
