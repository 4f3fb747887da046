package system

import (
	"github.com/lixenwraith/led-swarm/engine"
	"github.com/lixenwraith/led-swarm/parameter"
)

// Options selects the pipeline variant
type Options struct {
	Spawn  SpawnConfig
	Entry  EntryPolicy
	Homing bool
	Margin float64
}

// DefaultOptions returns the stock pipeline: targeted entry, no homing
func DefaultOptions() Options {
	return Options{
		Spawn:  DefaultSpawnConfig(),
		Entry:  TargetedEntry{},
		Margin: parameter.DespawnMargin,
	}
}

// Register adds spawn, flock, capture and cull to sim
func Register(sim *engine.Simulation, opts Options) {
	sim.AddSystem(NewSpawnSystem(opts.Spawn, opts.Entry))
	sim.AddSystem(NewFlockSystem(opts.Homing))
	sim.AddSystem(NewCaptureSystem())
	sim.AddSystem(NewCullSystem(opts.Margin))
}
