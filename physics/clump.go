package physics

import (
	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/parameter"
	"github.com/lixenwraith/led-swarm/vmath"
)

// LargestMissingClump finds where the densest group of uncaptured pixels sits
// At or below the direct threshold the plain centroid of all missing pixels is returned.
// Otherwise every missing pixel is tried as a clump center; pixels within the clump
// radius are weighted by 1/(d+1) and the heaviest clump's weighted centroid wins.
// Ties keep the first candidate in sorted order
func LargestMissingClump(target, captured core.PointSet) Optional {
	missing := target.Difference(captured).Sorted()
	if len(missing) == 0 {
		return None()
	}

	if len(missing) <= parameter.ClumpDirectThreshold {
		var sum vmath.Vec2
		for _, p := range missing {
			sum = sum.Add(vmath.V2(float64(p.X), float64(p.Y)))
		}
		return Some(sum.Div(float64(len(missing))))
	}

	var best vmath.Vec2
	bestWeight := 0.0
	for _, c := range missing {
		center := vmath.V2(float64(c.X), float64(c.Y))
		var weighted vmath.Vec2
		weight := 0.0
		for _, p := range missing {
			pv := vmath.V2(float64(p.X), float64(p.Y))
			d := pv.Distance(center)
			if d > parameter.ClumpRadius {
				continue
			}
			w := 1 / (d + 1)
			weight += w
			weighted = weighted.Add(pv.Scale(w))
		}
		if weight > bestWeight {
			bestWeight = weight
			best = weighted.Div(weight)
		}
	}
	return Some(best)
}
