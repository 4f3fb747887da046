package mask

import "github.com/lixenwraith/led-swarm/core"

// stroke is an inclusive rectangle of lit pixels
type stroke struct {
	x0, y0, x1, y1 int
}

func h(x0, x1, y int) stroke { return stroke{x0, y, x1, y} }
func v(x, y0, y1 int) stroke { return stroke{x, y0, x, y1} }
func dot(x, y int) stroke    { return stroke{x, y, x, y} }

// themeParkWaits lays out "THEME PARK" in 8-row capitals on rows 3-10
// and "WAITS" in 16-row double-stroke capitals on rows 15-30
var themeParkWaits = [][]stroke{
	// T
	{h(4, 8, 3), v(6, 4, 10)},
	// H
	{v(10, 3, 10), v(14, 3, 10), h(11, 13, 6)},
	// E
	{v(16, 3, 10), h(16, 19, 3), h(16, 18, 6), h(16, 19, 10)},
	// M
	{v(22, 3, 10), v(27, 3, 10), dot(23, 4), dot(24, 5), dot(25, 5), dot(26, 4)},
	// E
	{v(29, 3, 10), h(29, 32, 3), h(29, 31, 6), h(29, 32, 10)},
	// P
	{v(36, 3, 10), h(36, 39, 3), h(36, 39, 6), dot(39, 4), dot(39, 5)},
	// A
	{v(42, 4, 10), v(46, 4, 10), h(43, 45, 3), h(42, 46, 6)},
	// R
	{v(48, 3, 10), h(48, 51, 3), h(48, 51, 6), dot(51, 4), dot(51, 5),
		dot(50, 7), dot(51, 8), dot(52, 9), dot(53, 10)},
	// K
	{v(54, 3, 10), dot(57, 3), dot(56, 4), dot(55, 5), dot(55, 6),
		dot(56, 7), dot(57, 8), dot(58, 9), dot(59, 10)},

	// W
	{{5, 15, 6, 30}, {13, 15, 14, 30}, {7, 27, 8, 28}, {11, 27, 12, 28}, {9, 23, 10, 26}},
	// A
	{{16, 17, 17, 30}, {24, 17, 25, 30}, {18, 15, 23, 16}, {16, 22, 25, 23}},
	// I
	{{27, 15, 36, 16}, {27, 29, 36, 30}, {31, 15, 32, 30}},
	// T
	{{38, 15, 47, 16}, {42, 15, 43, 30}},
	// S
	{{49, 15, 58, 16}, {49, 17, 50, 21}, {49, 22, 58, 23}, {57, 24, 58, 28}, {49, 29, 58, 30}},
}

// ThemeParkWaits returns the built-in two-line banner for a 64×32 panel
func ThemeParkWaits() Provider {
	return Func(func() core.PointSet {
		s := core.NewPointSet()
		for _, glyph := range themeParkWaits {
			for _, st := range glyph {
				for x := st.x0; x <= st.x1; x++ {
					for y := st.y0; y <= st.y1; y++ {
						s.Add(core.Point{X: x, Y: y})
					}
				}
			}
		}
		return s
	})
}
