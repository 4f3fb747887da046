package physics

import "github.com/lixenwraith/led-swarm/vmath"

// Optional is a point that may be absent
// Zero value is None
type Optional struct {
	v  vmath.Vec2
	ok bool
}

// Some wraps a present point
func Some(v vmath.Vec2) Optional {
	return Optional{v: v, ok: true}
}

// None returns an absent point
func None() Optional {
	return Optional{}
}

// Get returns the point and whether it is present
func (o Optional) Get() (vmath.Vec2, bool) {
	return o.v, o.ok
}
