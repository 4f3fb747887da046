package render

import (
	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/engine"
)

// Adapter draws simulation state onto a Display
type Adapter struct {
	display Display
	// Quantize565 routes every color through 5-6-5 packing like a HUB75 driver
	Quantize565 bool
}

func NewAdapter(d Display) *Adapter {
	return &Adapter{display: d}
}

// Draw renders one frame: captured text first, then units on top
// Units are colored by their slice index so hues shift as the flock is culled
func (a *Adapter) Draw(st *engine.State) error {
	elapsed := st.Seconds()
	a.display.Clear()

	for _, p := range st.Captured.Sorted() {
		a.set(p, TextColor(elapsed, p, st.Width, st.Height))
	}
	for i := range st.Units {
		u := &st.Units[i]
		if !u.OnScreen(st.Width, st.Height) {
			continue
		}
		a.set(u.PixelPos(), FlockColor(elapsed, i))
	}

	return a.display.Present()
}

// Blank clears and presents an empty frame
func (a *Adapter) Blank() error {
	a.display.Clear()
	return a.display.Present()
}

// Render draws or blanks according to the tick result
// Non-updating ticks are skipped
func (a *Adapter) Render(res engine.TickResult, st *engine.State) error {
	if !res.Updated {
		return nil
	}
	if res.Phase == engine.PhaseDone {
		return a.Blank()
	}
	return a.Draw(st)
}

func (a *Adapter) set(p core.Point, c core.RGB) {
	if a.Quantize565 {
		c = c.Quantize565()
	}
	a.display.SetPixel(p.X, p.Y, c)
}
