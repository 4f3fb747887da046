package engine

import (
	"log"
	"sort"
	"time"

	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/event"
	"github.com/lixenwraith/led-swarm/parameter"
	"github.com/lixenwraith/led-swarm/status"
	"github.com/lixenwraith/led-swarm/vmath"
)

// Settings holds loop geometry and timing
type Settings struct {
	Width, Height int
	TickInterval  time.Duration
	DoneDelay     time.Duration
	Seed          uint64
}

// DefaultSettings returns the panel defaults
func DefaultSettings() Settings {
	return Settings{
		Width:        parameter.MatrixWidth,
		Height:       parameter.MatrixHeight,
		TickInterval: parameter.TickInterval,
		DoneDelay:    parameter.DoneDelay,
		Seed:         1,
	}
}

// TickResult tells the driver whether to render and in which phase
type TickResult struct {
	Updated bool
	Phase   Phase
}

// Simulation drives the per-tick pipeline over a single State
type Simulation struct {
	settings Settings
	state    *State
	systems  []System
	router   *event.Router
	status   *status.Registry
}

// NewSimulation creates a simulation clocked from start
// Target points outside the matrix are dropped since no unit could capture them
func NewSimulation(settings Settings, target core.PointSet, start time.Time) *Simulation {
	clipped := core.NewPointSet()
	for p := range target {
		if p.In(settings.Width, settings.Height) {
			clipped.Add(p)
		}
	}
	if dropped := target.Len() - clipped.Len(); dropped > 0 {
		log.Printf("engine: dropped %d target pixels outside %dx%d", dropped, settings.Width, settings.Height)
	}

	queue := event.NewQueue()
	s := &Simulation{
		settings: settings,
		state: &State{
			Width:      settings.Width,
			Height:     settings.Height,
			Target:     clipped,
			Captured:   core.NewPointSet(),
			Start:      start,
			Now:        start,
			LastUpdate: start,
			Rand:       vmath.NewFastRand(settings.Seed),
			Events:     queue,
		},
		router: event.NewRouter(queue),
		status: status.NewRegistry(),
	}
	s.publish()
	return s
}

// AddSystem registers a system, keeping the pipeline sorted by priority
func (s *Simulation) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
}

// State exposes the live state for rendering and tests
func (s *Simulation) State() *State { return s.state }

// Router exposes the event router for handler registration
func (s *Simulation) Router() *event.Router { return s.router }

// Status exposes the metric registry
func (s *Simulation) Status() *status.Registry { return s.status }

// Settings returns the configured geometry and timing
func (s *Simulation) Settings() Settings { return s.settings }

// Tick advances the simulation if at least one tick interval has passed
// Order: gate, completion check, done check, systems, completion check, dispatch
func (s *Simulation) Tick(now time.Time) TickResult {
	st := s.state
	if st.Phase == PhaseDone {
		return TickResult{Phase: PhaseDone}
	}
	if now.Sub(st.LastUpdate) < s.settings.TickInterval {
		return TickResult{Phase: st.Phase}
	}

	st.LastUpdate = now
	st.Now = now
	st.Elapsed = now.Sub(st.Start)
	st.Frame++

	s.checkCompletion(now)

	if st.Phase == PhaseJustCompleted && now.Sub(st.CompletedAt) >= s.settings.DoneDelay {
		st.Phase = PhaseDone
		st.Emit(event.EventDone, nil)
		s.finish()
		return TickResult{Updated: true, Phase: PhaseDone}
	}

	if st.Phase == PhaseRunning {
		for _, sys := range s.systems {
			sys.Update(st)
		}
		s.checkCompletion(now)
	}

	s.finish()
	return TickResult{Updated: true, Phase: st.Phase}
}

// checkCompletion records the completion instant exactly once
func (s *Simulation) checkCompletion(now time.Time) {
	st := s.state
	if st.Phase != PhaseRunning || !st.Completed() {
		return
	}
	st.CompletedAt = now
	st.Phase = PhaseJustCompleted
	st.Emit(event.EventComplete, &event.CompletePayload{
		Pixels: st.Captured.Len(),
		Waves:  st.Waves,
	})
}

func (s *Simulation) finish() {
	s.publish()
	s.router.DispatchAll()
}

// publish mirrors state into the status registry
func (s *Simulation) publish() {
	st := s.state
	s.status.Ints.Get(status.KeyActive).Store(int64(len(st.Units)))
	s.status.Ints.Get(status.KeySpawned).Store(int64(st.Spawned()))
	s.status.Ints.Get(status.KeyCaptured).Store(int64(st.Captured.Len()))
	s.status.Ints.Get(status.KeyTarget).Store(int64(st.Target.Len()))
	s.status.Ints.Get(status.KeyWaves).Store(int64(st.Waves))
	s.status.Ints.Get(status.KeyFrame).Store(st.Frame)
	s.status.Floats.Get(status.KeyElapsed).Set(st.Seconds())
	s.status.Strings.Get(status.KeyPhase).Store(st.Phase.String())
}
