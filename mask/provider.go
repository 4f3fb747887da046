// Package mask supplies the set of LED coordinates the swarm must light
package mask

import "github.com/lixenwraith/led-swarm/core"

// Provider yields target pixels; called once per simulation
type Provider interface {
	TargetPixels() core.PointSet
}

// Static is a fixed set of target pixels
type Static core.PointSet

// TargetPixels returns an independent copy of the set
func (s Static) TargetPixels() core.PointSet {
	return core.PointSet(s).Clone()
}

// Func adapts a plain function to Provider
type Func func() core.PointSet

func (f Func) TargetPixels() core.PointSet {
	return f()
}
