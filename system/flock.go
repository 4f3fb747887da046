package system

import (
	"github.com/lixenwraith/led-swarm/engine"
	"github.com/lixenwraith/led-swarm/parameter"
	"github.com/lixenwraith/led-swarm/physics"
)

// FlockSystem applies the flocking rules to every unit
// With homing enabled, units are also drawn toward the largest missing clump
type FlockSystem struct {
	homing bool
}

func NewFlockSystem(homing bool) *FlockSystem {
	return &FlockSystem{homing: homing}
}

func (s *FlockSystem) Priority() int {
	return parameter.PriorityFlock
}

func (s *FlockSystem) Update(st *engine.State) {
	attraction := physics.None()
	if s.homing {
		attraction = physics.LargestMissingClump(st.Target, st.Captured)
	}
	physics.StepAll(st.Units, attraction, st.Seconds())
}
