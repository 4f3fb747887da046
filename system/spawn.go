package system

import (
	"github.com/lixenwraith/led-swarm/component"
	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/engine"
	"github.com/lixenwraith/led-swarm/event"
	"github.com/lixenwraith/led-swarm/parameter"
	"github.com/lixenwraith/led-swarm/vmath"
)

// SpawnConfig controls wave cadence and size
type SpawnConfig struct {
	// Interval is the simulated seconds that must be exceeded between waves
	Interval float64
	WaveSize int
	MaxUnits int
}

// DefaultSpawnConfig returns the stock cadence
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		Interval: parameter.SpawnInterval,
		WaveSize: parameter.WaveSize,
		MaxUnits: parameter.MaxUnits,
	}
}

// SpawnSystem launches waves of units from rotating directions
type SpawnSystem struct {
	cfg    SpawnConfig
	policy EntryPolicy
}

// NewSpawnSystem creates a spawn system; nil policy selects targeted entry
func NewSpawnSystem(cfg SpawnConfig, policy EntryPolicy) *SpawnSystem {
	if policy == nil {
		policy = TargetedEntry{}
	}
	return &SpawnSystem{cfg: cfg, policy: policy}
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update spawns one wave when the interval has elapsed, targets remain and the cap has room
func (s *SpawnSystem) Update(st *engine.State) {
	remaining := st.Remaining()
	if remaining <= 0 || len(st.Units) >= s.cfg.MaxUnits {
		return
	}
	if st.Seconds()-st.LastSpawn <= s.cfg.Interval {
		return
	}

	size := min(s.cfg.WaveSize, remaining, s.cfg.MaxUnits-len(st.Units))
	s.SpawnWave(st, size)
}

// SpawnWave adds n units from the current direction and advances the rotation
// Random draws per wave: heading, then per unit: offset x, offset y, phase,
// speed multiplier, separation radius, velocity x scale, velocity y scale
func (s *SpawnSystem) SpawnWave(st *engine.State, n int) {
	dir := Directions[st.DirectionIndex]
	origin, heading := s.policy.Entry(dir, st)
	rng := st.Rand

	for i := 0; i < n; i++ {
		row, col := i/parameter.FormationColumns, i%parameter.FormationColumns
		offset := vmath.V2(
			float64(col-parameter.FormationColumns/2)*parameter.FormationColumnSpacing+rng.Range(-parameter.FormationJitter, parameter.FormationJitter),
			float64(row)*parameter.FormationRowSpacing+rng.Range(-parameter.FormationJitter, parameter.FormationJitter),
		)
		u := component.Unit{
			ID:               st.NextID(),
			Position:         origin.Add(offset),
			Phase:            rng.Angle(),
			SpeedMultiplier:  rng.Range(parameter.SpeedMultiplierMin, parameter.SpeedMultiplierMax),
			SeparationRadius: rng.Range(parameter.SeparationRadiusMin, parameter.SeparationRadiusMax),
		}
		u.Velocity = vmath.V2(
			heading.X*rng.Range(parameter.VelocityJitterMin, parameter.VelocityJitterMax),
			heading.Y*rng.Range(parameter.VelocityJitterMin, parameter.VelocityJitterMax),
		)
		st.Units = append(st.Units, u)
	}

	st.DirectionIndex = (st.DirectionIndex + 1) % len(Directions)
	st.LastSpawn = st.Seconds()
	st.Waves++

	st.Emit(event.EventSpawn, &event.SpawnPayload{
		Wave:      st.Waves,
		Size:      n,
		Direction: dir.String(),
		Origin:    core.Point{X: int(origin.X), Y: int(origin.Y)},
		Remaining: st.Remaining(),
		Active:    len(st.Units),
	})
}
