package component

import (
	"math"

	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/vmath"
)

// Unit is a single swarm member
// Phase, SpeedMultiplier and SeparationRadius are fixed at spawn
type Unit struct {
	// ID is the spawn serial, unique per simulation
	ID uint64

	Position vmath.Vec2
	Velocity vmath.Vec2

	// Phase offsets the jitter oscillation, in [0, 2π)
	Phase float64
	// SpeedMultiplier scales jitter amplitude, in [0.7, 1.3)
	SpeedMultiplier float64
	// SeparationRadius is the personal-space radius, in [2, 4)
	SeparationRadius float64
}

// PixelPos returns the LED the unit currently covers, rounding half away from zero
func (u *Unit) PixelPos() core.Point {
	return core.Point{
		X: int(math.Round(u.Position.X)),
		Y: int(math.Round(u.Position.Y)),
	}
}

// OnScreen reports whether the raw position is inside [0,w)×[0,h)
func (u *Unit) OnScreen(w, h int) bool {
	return u.Position.X >= 0 && u.Position.X < float64(w) &&
		u.Position.Y >= 0 && u.Position.Y < float64(h)
}

// OutOfBounds reports whether the unit has left the despawn box
// Box spans [-margin, w+margin] × [-margin, h+margin]
func (u *Unit) OutOfBounds(w, h int, margin float64) bool {
	return u.Position.X < -margin || u.Position.X > float64(w)+margin ||
		u.Position.Y < -margin || u.Position.Y > float64(h)+margin
}
