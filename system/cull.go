package system

import (
	"github.com/lixenwraith/led-swarm/engine"
	"github.com/lixenwraith/led-swarm/parameter"
)

// CullSystem removes units that have flown past the despawn margin
// It runs last so capture sees every unit that was on screen this tick
type CullSystem struct {
	margin float64
}

func NewCullSystem(margin float64) *CullSystem {
	return &CullSystem{margin: margin}
}

func (s *CullSystem) Priority() int {
	return parameter.PriorityCull
}

// Update compacts the unit slice in place, preserving order
func (s *CullSystem) Update(st *engine.State) {
	kept := st.Units[:0]
	for _, u := range st.Units {
		if !u.OutOfBounds(st.Width, st.Height, s.margin) {
			kept = append(kept, u)
		}
	}
	clear(st.Units[len(kept):])
	st.Units = kept
}
