package physics

import (
	"math"

	"github.com/lixenwraith/led-swarm/component"
	"github.com/lixenwraith/led-swarm/parameter"
	"github.com/lixenwraith/led-swarm/vmath"
)

// Separation steers away from neighbors closer than the unit's own radius
// Each contribution is the unit direction away from the neighbor scaled by 1/d,
// averaged over contributors. Coincident neighbors (d == 0) are skipped
func Separation(flock []component.Unit, self int) vmath.Vec2 {
	u := &flock[self]
	var steer vmath.Vec2
	count := 0

	for i := range flock {
		if i == self {
			continue
		}
		diff := u.Position.Sub(flock[i].Position)
		d := diff.Magnitude()
		if d > 0 && d < u.SeparationRadius {
			steer = steer.Add(diff.Normalize().Scale(1 / d))
			count++
		}
	}

	return steer.Div(float64(count))
}

// Alignment returns the average neighbor velocity minus own velocity
func Alignment(flock []component.Unit, self int) vmath.Vec2 {
	u := &flock[self]
	var sum vmath.Vec2
	count := 0

	for i := range flock {
		if i == self {
			continue
		}
		if u.Position.Distance(flock[i].Position) < parameter.AlignmentRadius {
			sum = sum.Add(flock[i].Velocity)
			count++
		}
	}

	if count == 0 {
		return vmath.Vec2{}
	}
	return sum.Div(float64(count)).Sub(u.Velocity)
}

// Cohesion pulls gently toward the local center of mass
func Cohesion(flock []component.Unit, self int) vmath.Vec2 {
	u := &flock[self]
	var center vmath.Vec2
	count := 0

	for i := range flock {
		if i == self {
			continue
		}
		if u.Position.Distance(flock[i].Position) < parameter.CohesionRadius {
			center = center.Add(flock[i].Position)
			count++
		}
	}

	if count == 0 {
		return vmath.Vec2{}
	}
	return center.Div(float64(count)).Sub(u.Position).Scale(parameter.CohesionFactor)
}

// Attraction returns a fixed-strength pull toward center, zero when absent or coincident
func Attraction(u *component.Unit, center Optional) vmath.Vec2 {
	c, ok := center.Get()
	if !ok {
		return vmath.Vec2{}
	}
	diff := c.Sub(u.Position)
	if diff.IsZero() {
		return vmath.Vec2{}
	}
	return diff.Normalize().Scale(parameter.AttractionStrength)
}

// Step computes the next state of flock[self] from the current flock snapshot
// flock is read-only; the caller writes the returned unit back after all units are stepped
// t is elapsed simulation seconds and drives the wing-beat jitter
func Step(flock []component.Unit, self int, attraction Optional, t float64) component.Unit {
	u := flock[self]

	sep := Separation(flock, self)
	ali := Alignment(flock, self)
	coh := Cohesion(flock, self)
	att := Attraction(&u, attraction)

	v := u.Velocity.
		Add(sep.Scale(parameter.SeparationWeight)).
		Add(ali.Scale(parameter.AlignmentWeight)).
		Add(coh.Scale(parameter.CohesionWeight)).
		Add(att.Scale(parameter.AttractionWeight))

	v.X += parameter.JitterAmplitudeX * math.Sin(u.Phase+t*parameter.JitterRateX) * u.SpeedMultiplier
	v.Y += parameter.JitterAmplitudeY * math.Cos(u.Phase+t*parameter.JitterRateY) * u.SpeedMultiplier

	u.Velocity = v.ClampMagnitude(parameter.MaxSpeed)
	u.Position = u.Position.Add(u.Velocity.Scale(parameter.StepScale))
	return u
}

// StepAll advances every unit in place using snapshot semantics
// All units observe the same pre-step neighbor state regardless of slice order
func StepAll(units []component.Unit, attraction Optional, t float64) {
	if len(units) == 0 {
		return
	}
	snapshot := make([]component.Unit, len(units))
	copy(snapshot, units)
	for i := range snapshot {
		units[i] = Step(snapshot, i, attraction, t)
	}
}
