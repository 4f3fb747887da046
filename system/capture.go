package system

import (
	"github.com/lixenwraith/led-swarm/engine"
	"github.com/lixenwraith/led-swarm/event"
	"github.com/lixenwraith/led-swarm/parameter"
)

// CaptureSystem lights target pixels that on-screen units fly over
// Units are not consumed; one unit may capture many pixels along its path
type CaptureSystem struct{}

func NewCaptureSystem() *CaptureSystem {
	return &CaptureSystem{}
}

func (s *CaptureSystem) Priority() int {
	return parameter.PriorityCapture
}

func (s *CaptureSystem) Update(st *engine.State) {
	for i := range st.Units {
		u := &st.Units[i]
		if !u.OnScreen(st.Width, st.Height) {
			continue
		}
		p := u.PixelPos()
		if !st.Target.Has(p) || !st.Captured.Add(p) {
			continue
		}
		st.Emit(event.EventCapture, &event.CapturePayload{
			Point:    p,
			UnitID:   u.ID,
			Captured: st.Captured.Len(),
			Target:   st.Target.Len(),
		})
	}
}
