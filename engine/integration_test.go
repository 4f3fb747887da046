package engine_test

import (
	"testing"
	"time"

	"github.com/lixenwraith/led-swarm/component"
	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/engine"
	"github.com/lixenwraith/led-swarm/mask"
	"github.com/lixenwraith/led-swarm/parameter"
	"github.com/lixenwraith/led-swarm/system"
	"github.com/lixenwraith/led-swarm/vmath"
)

var start = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newPipeline(target core.PointSet, seed uint64) *engine.Simulation {
	settings := engine.DefaultSettings()
	settings.Seed = seed
	sim := engine.NewSimulation(settings, target, start)
	system.Register(sim, system.DefaultOptions())
	return sim
}

func hoverAtOrigin(sim *engine.Simulation) {
	st := sim.State()
	st.Units = append(st.Units, component.Unit{
		ID:               st.NextID(),
		Position:         vmath.V2(0.3, 0.3),
		SpeedMultiplier:  1,
		SeparationRadius: 3,
	})
}

func TestSinglePixelCompletesInCapturingTick(t *testing.T) {
	sim := newPipeline(core.NewPointSet(core.Point{0, 0}), 1)
	hoverAtOrigin(sim)

	res := sim.Tick(start.Add(50 * time.Millisecond))
	if !res.Updated || res.Phase != engine.PhaseJustCompleted {
		t.Fatalf("Tick = %+v, want updated JustCompleted", res)
	}
	if got := sim.State().CompletedAt; !got.Equal(start.Add(50 * time.Millisecond)) {
		t.Errorf("CompletedAt = %v", got)
	}
}

func TestDoneAfterDelay(t *testing.T) {
	early := newPipeline(core.NewPointSet(core.Point{0, 0}), 1)
	hoverAtOrigin(early)
	early.Tick(start.Add(50 * time.Millisecond))
	if res := early.Tick(start.Add(1049 * time.Millisecond)); res.Phase != engine.PhaseJustCompleted {
		t.Errorf("Done after 999ms hold: %v", res.Phase)
	}

	onTime := newPipeline(core.NewPointSet(core.Point{0, 0}), 1)
	hoverAtOrigin(onTime)
	onTime.Tick(start.Add(50 * time.Millisecond))
	res := onTime.Tick(start.Add(1050 * time.Millisecond))
	if !res.Updated || res.Phase != engine.PhaseDone {
		t.Errorf("Tick after 1000ms hold = %+v, want updated Done", res)
	}
	if res := onTime.Tick(start.Add(2 * time.Second)); res.Updated {
		t.Error("Done is terminal; later ticks must not update")
	}
}

func TestCompletedSimulationIsFrozen(t *testing.T) {
	sim := newPipeline(core.NewPointSet(core.Point{0, 0}), 1)
	hoverAtOrigin(sim)
	sim.Tick(start.Add(50 * time.Millisecond))

	before := append([]component.Unit(nil), sim.State().Units...)
	res := sim.Tick(start.Add(500 * time.Millisecond))
	if !res.Updated {
		t.Error("Hold ticks still report Updated for rendering")
	}
	after := sim.State().Units
	if len(after) != len(before) {
		t.Fatalf("Unit count changed while frozen: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Unit %d moved while frozen: %v -> %v", i, before[i].Position, after[i].Position)
		}
	}
}

func runTicks(sim *engine.Simulation, n int, each func(i int)) {
	now := start
	for i := 0; i < n; i++ {
		now = now.Add(parameter.TickInterval)
		sim.Tick(now)
		if each != nil {
			each(i)
		}
	}
}

func TestThemeParkRunInvariants(t *testing.T) {
	target := mask.ThemeParkWaits().TargetPixels()
	sim := newPipeline(target, 42)
	st := sim.State()

	prev := core.NewPointSet()
	runTicks(sim, 2000, func(i int) {
		if !st.Captured.SubsetOf(st.Target) {
			t.Fatalf("Tick %d: captured pixel outside target", i)
		}
		if !prev.SubsetOf(st.Captured) {
			t.Fatalf("Tick %d: captured set shrank", i)
		}
		prev = st.Captured.Clone()

		if len(st.Units) > parameter.MaxUnits {
			t.Fatalf("Tick %d: %d units exceeds cap", i, len(st.Units))
		}
		if st.Phase == engine.PhaseRunning {
			for _, u := range st.Units {
				if u.OutOfBounds(st.Width, st.Height, parameter.DespawnMargin) {
					t.Fatalf("Tick %d: unit %d survived cull at %v", i, u.ID, u.Position)
				}
			}
		}
	})

	if st.Waves == 0 {
		t.Fatal("No waves spawned in 100 seconds")
	}
	if st.Captured.Len() == 0 {
		t.Error("Swarm captured nothing in 100 seconds")
	}
}

func TestSeededRunsAreDeterministic(t *testing.T) {
	target := mask.ThemeParkWaits().TargetPixels()
	a := newPipeline(target, 7)
	b := newPipeline(target, 7)

	runTicks(a, 400, nil)
	runTicks(b, 400, nil)

	sa, sb := a.State(), b.State()
	if sa.Captured.Len() != sb.Captured.Len() || sa.Waves != sb.Waves {
		t.Fatalf("Runs diverged: captured %d/%d waves %d/%d",
			sa.Captured.Len(), sb.Captured.Len(), sa.Waves, sb.Waves)
	}
	if len(sa.Units) != len(sb.Units) {
		t.Fatalf("Unit counts diverged: %d vs %d", len(sa.Units), len(sb.Units))
	}
	for i := range sa.Units {
		if sa.Units[i] != sb.Units[i] {
			t.Fatalf("Unit %d diverged", i)
		}
	}
}
