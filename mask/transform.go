package mask

import "github.com/lixenwraith/led-swarm/core"

// Transformed applies a transform chain to another provider's output
type Transformed struct {
	src Provider
	ops []func(core.PointSet) core.PointSet
}

// Transform starts a chain over src
func Transform(src Provider) *Transformed {
	return &Transformed{src: src}
}

// Translate shifts every pixel by (dx, dy)
func (t *Transformed) Translate(dx, dy int) *Transformed {
	t.ops = append(t.ops, func(s core.PointSet) core.PointSet {
		out := make(core.PointSet, len(s))
		for p := range s {
			out.Add(core.Point{X: p.X + dx, Y: p.Y + dy})
		}
		return out
	})
	return t
}

// Clip removes pixels outside [0,w)×[0,h)
func (t *Transformed) Clip(w, h int) *Transformed {
	return t.MaskFunc(func(p core.Point) bool { return p.In(w, h) })
}

// MaskFunc removes pixels where keep returns false
func (t *Transformed) MaskFunc(keep func(p core.Point) bool) *Transformed {
	t.ops = append(t.ops, func(s core.PointSet) core.PointSet {
		out := make(core.PointSet, len(s))
		for p := range s {
			if keep(p) {
				out.Add(p)
			}
		}
		return out
	})
	return t
}

// TargetPixels runs the chain
func (t *Transformed) TargetPixels() core.PointSet {
	s := t.src.TargetPixels()
	for _, op := range t.ops {
		s = op(s)
	}
	return s
}
