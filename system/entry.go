package system

import (
	"fmt"
	"math"

	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/engine"
	"github.com/lixenwraith/led-swarm/parameter"
	"github.com/lixenwraith/led-swarm/vmath"
)

// EntryPolicy picks where a wave starts and its base flight vector
type EntryPolicy interface {
	// Entry returns the formation origin and base heading for a wave from d
	Entry(d Direction, st *engine.State) (origin, heading vmath.Vec2)
	Name() string
}

// Entry policy names accepted by EntryPolicyByName
const (
	EntryFixed    = "fixed"
	EntryTargeted = "targeted"
)

// EntryPolicyByName resolves a configured policy name
func EntryPolicyByName(name string) (EntryPolicy, error) {
	switch name {
	case EntryFixed:
		return FixedEntry{}, nil
	case EntryTargeted, "":
		return TargetedEntry{}, nil
	default:
		return nil, fmt.Errorf("unknown entry policy %q (want %q or %q)", name, EntryFixed, EntryTargeted)
	}
}

func center(w, h int) vmath.Vec2 {
	return vmath.V2(float64(w/2), float64(h/2))
}

// FixedEntry enters edges at their midpoint and aims corner waves at the matrix center
type FixedEntry struct{}

func (FixedEntry) Name() string { return EntryFixed }

func (FixedEntry) Entry(d Direction, st *engine.State) (vmath.Vec2, vmath.Vec2) {
	c := center(st.Width, st.Height)
	if d.IsDiagonal() {
		base := d.origin(st.Width, st.Height, 0)
		return base, aim(base, c)
	}
	along := c.Y
	if geometry[d].axisY != 0 {
		along = c.X
	}
	return d.origin(st.Width, st.Height, along), d.edgeHeading(st.Rand)
}

// TargetedEntry steers each wave toward where uncaptured pixels are densest
// Edge waves sample positions along their edge and score missing pixels by
// 1/(d+1) with d = along-edge offset + 0.3 × depth from that edge, ignoring d >= 20.
// Corner waves aim at the missing-pixel centroid weighted toward their corner
type TargetedEntry struct{}

func (TargetedEntry) Name() string { return EntryTargeted }

func (TargetedEntry) Entry(d Direction, st *engine.State) (vmath.Vec2, vmath.Vec2) {
	missing := st.Target.Difference(st.Captured).Sorted()
	if d.IsDiagonal() {
		base := d.origin(st.Width, st.Height, 0)
		return base, aim(base, cornerCentroid(d, missing, st.Width, st.Height))
	}
	along := bestEdgeEntry(d, missing, st.Width, st.Height)
	return d.origin(st.Width, st.Height, along), d.edgeHeading(st.Rand)
}

// bestEdgeEntry returns the highest-scoring sample along d's edge
// Falls back to the edge midpoint when nothing scores
func bestEdgeEntry(d Direction, missing []core.Point, w, h int) float64 {
	g := geometry[d]
	vertical := g.axisX != 0

	size, step, fallback := w, parameter.EdgeSampleStepHorizontal, w/2
	if vertical {
		size, step, fallback = h, parameter.EdgeSampleStepVertical, h/2
	}

	best, bestScore := fallback, 0.0
	for s := 0; s < size; s += step {
		score := 0.0
		for _, p := range missing {
			var offset, depth int
			if vertical {
				offset = p.Y - s
				depth = p.X
				if g.cornerX > 0 {
					depth = w - 1 - p.X
				}
			} else {
				offset = p.X - s
				depth = p.Y
				if g.cornerY > 0 {
					depth = h - 1 - p.Y
				}
			}
			dist := math.Abs(float64(offset)) + parameter.EdgeDepthWeight*math.Abs(float64(depth))
			if dist < parameter.EdgeScoreRange {
				score += 1 / (dist + 1)
			}
		}
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	return float64(best)
}

// cornerCentroid weights each missing pixel by 1/(manhattan distance to d's corner + 1)
func cornerCentroid(d Direction, missing []core.Point, w, h int) vmath.Vec2 {
	if len(missing) == 0 {
		return center(w, h)
	}
	g := geometry[d]

	var sum vmath.Vec2
	total := 0.0
	for _, p := range missing {
		dx, dy := p.X, p.Y
		if g.cornerX > 0 {
			dx = w - 1 - p.X
		}
		if g.cornerY > 0 {
			dy = h - 1 - p.Y
		}
		weight := 1 / float64(dx+dy+1)
		sum = sum.Add(vmath.V2(float64(p.X), float64(p.Y)).Scale(weight))
		total += weight
	}
	return sum.Scale(1 / total)
}
