package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/led-swarm/component"
	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/vmath"
)

const eps = 1e-9

func unitAt(x, y float64) component.Unit {
	return component.Unit{
		Position:         vmath.V2(x, y),
		SpeedMultiplier:  1,
		SeparationRadius: 3,
	}
}

func TestRulesWithoutNeighbors(t *testing.T) {
	flock := []component.Unit{unitAt(10, 10)}
	flock[0].Velocity = vmath.V2(1, 1)

	if got := Separation(flock, 0); !got.IsZero() {
		t.Errorf("Separation alone = %v, want zero", got)
	}
	if got := Alignment(flock, 0); !got.IsZero() {
		t.Errorf("Alignment alone = %v, want zero", got)
	}
	if got := Cohesion(flock, 0); !got.IsZero() {
		t.Errorf("Cohesion alone = %v, want zero", got)
	}
}

func TestSeparationPushesAway(t *testing.T) {
	flock := []component.Unit{unitAt(10, 10), unitAt(12, 10)}

	got := Separation(flock, 0)
	// Direction (-1,0) scaled by 1/2, averaged over one contributor
	if math.Abs(got.X+0.5) > eps || math.Abs(got.Y) > eps {
		t.Errorf("Separation = %v, want (-0.5, 0)", got)
	}

	// Outside radius contributes nothing
	flock[1].Position = vmath.V2(14, 10)
	if got := Separation(flock, 0); !got.IsZero() {
		t.Errorf("Separation beyond radius = %v, want zero", got)
	}
}

func TestSeparationSkipsCoincident(t *testing.T) {
	flock := []component.Unit{unitAt(5, 5), unitAt(5, 5)}
	got := Separation(flock, 0)
	if math.IsNaN(got.X) || math.IsNaN(got.Y) || !got.IsZero() {
		t.Errorf("Separation with coincident neighbor = %v, want zero", got)
	}
}

func TestAlignmentMatchesNeighbors(t *testing.T) {
	flock := []component.Unit{unitAt(0, 0), unitAt(3, 0), unitAt(0, 4)}
	flock[0].Velocity = vmath.V2(1, 0)
	flock[1].Velocity = vmath.V2(0, 2)
	flock[2].Velocity = vmath.V2(2, 0)

	got := Alignment(flock, 0)
	// avg (1,1) minus own (1,0)
	if math.Abs(got.X) > eps || math.Abs(got.Y-1) > eps {
		t.Errorf("Alignment = %v, want (0, 1)", got)
	}
}

func TestCohesionTowardCenter(t *testing.T) {
	flock := []component.Unit{unitAt(0, 0), unitAt(10, 0)}
	got := Cohesion(flock, 0)
	if math.Abs(got.X-0.1) > eps || math.Abs(got.Y) > eps {
		t.Errorf("Cohesion = %v, want (0.1, 0)", got)
	}

	flock[1].Position = vmath.V2(12, 0)
	if got := Cohesion(flock, 0); !got.IsZero() {
		t.Errorf("Cohesion at radius = %v, want zero", got)
	}
}

func TestAttraction(t *testing.T) {
	u := unitAt(0, 0)

	if got := Attraction(&u, None()); !got.IsZero() {
		t.Errorf("Attraction(None) = %v, want zero", got)
	}
	if got := Attraction(&u, Some(vmath.V2(0, 0))); !got.IsZero() {
		t.Errorf("Attraction at center = %v, want zero", got)
	}

	got := Attraction(&u, Some(vmath.V2(0, 10)))
	if math.Abs(got.X) > eps || math.Abs(got.Y-0.5) > eps {
		t.Errorf("Attraction = %v, want (0, 0.5)", got)
	}
}

func TestStepClampsSpeed(t *testing.T) {
	flock := []component.Unit{unitAt(0, 0)}
	flock[0].Velocity = vmath.V2(30, 40)

	next := Step(flock, 0, None(), 0)
	if speed := next.Velocity.Magnitude(); speed > 3.0+eps {
		t.Errorf("Speed after step = %v, want <= 3", speed)
	}
	// Position advanced by velocity * 0.4
	wantX := next.Velocity.X * 0.4
	if math.Abs(next.Position.X-wantX) > eps {
		t.Errorf("Position.X = %v, want %v", next.Position.X, wantX)
	}
}

func TestStepJitter(t *testing.T) {
	flock := []component.Unit{unitAt(0, 0)}
	flock[0].Phase = math.Pi / 2

	next := Step(flock, 0, None(), 0)
	// sin(π/2)=1 → vx=0.05, cos(π/2)=0 → vy=0
	if math.Abs(next.Velocity.X-0.05) > eps || math.Abs(next.Velocity.Y) > eps {
		t.Errorf("Jitter velocity = %v, want (0.05, 0)", next.Velocity)
	}
}

func TestStepAllOrderIndependent(t *testing.T) {
	build := func() []component.Unit {
		return []component.Unit{unitAt(10, 10), unitAt(11, 10), unitAt(13, 12), unitAt(20, 15)}
	}

	forward := build()
	StepAll(forward, None(), 1.5)

	// Reverse input order, step, reverse back
	reversed := build()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	StepAll(reversed, None(), 1.5)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	for i := range forward {
		if forward[i].Position.Distance(reversed[i].Position) > 1e-12 {
			t.Errorf("Unit %d diverged: %v vs %v", i, forward[i].Position, reversed[i].Position)
		}
	}
}

func TestLargestMissingClump(t *testing.T) {
	t.Run("nothing missing", func(t *testing.T) {
		target := core.NewPointSet(core.Point{1, 1})
		if _, ok := LargestMissingClump(target, target.Clone()).Get(); ok {
			t.Error("Expected None when everything is captured")
		}
	})

	t.Run("few missing uses centroid", func(t *testing.T) {
		target := core.NewPointSet(core.Point{0, 0}, core.Point{4, 0}, core.Point{2, 6})
		c, ok := LargestMissingClump(target, core.NewPointSet()).Get()
		if !ok || math.Abs(c.X-2) > eps || math.Abs(c.Y-2) > eps {
			t.Errorf("Centroid = %v (%v), want (2,2)", c, ok)
		}
	})

	t.Run("dense clump wins", func(t *testing.T) {
		target := core.NewPointSet()
		// Dense 5x5 block near (50,20)
		for x := 48; x <= 52; x++ {
			for y := 18; y <= 22; y++ {
				target.Add(core.Point{x, y})
			}
		}
		// Sparse scatter on the far left
		for y := 0; y < 32; y += 8 {
			target.Add(core.Point{0, y})
		}

		c, ok := LargestMissingClump(target, core.NewPointSet()).Get()
		if !ok {
			t.Fatal("Expected a clump center")
		}
		if c.X < 45 || c.X > 55 || c.Y < 15 || c.Y > 25 {
			t.Errorf("Clump center = %v, want near (50,20)", c)
		}
	})
}
