package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys published by the simulation
const (
	KeyActive   = "swarm.active"
	KeySpawned  = "swarm.spawned"
	KeyCaptured = "capture.count"
	KeyTarget   = "capture.target"
	KeyWaves    = "spawn.waves"
	KeyFrame    = "sim.frame"
	KeyElapsed  = "sim.elapsed"
	KeyPhase    = "sim.phase"
	KeyPaused   = "sim.paused"
)

// Registry is the central metrics facade
// The simulation writes once per tick; renderers read without locking
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Progress returns captured/target as a fraction, 0 when nothing is targeted
func (r *Registry) Progress() float64 {
	target := r.Ints.Get(KeyTarget).Load()
	if target == 0 {
		return 0
	}
	return float64(r.Ints.Get(KeyCaptured).Load()) / float64(target)
}

// Lines renders every metric as "key=value" in sorted key order per type
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	return lines
}
