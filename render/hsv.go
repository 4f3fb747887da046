package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/parameter"
)

// HSVToRGB converts hue, saturation, value in [0,1] to 8-bit RGB
// Hue wraps, so any real input (including negatives) is valid.
// Channels are truncated, not rounded, matching integer panel drivers
func HSVToRGB(h, s, v float64) core.RGB {
	h = wrapUnit(h)
	c := colorful.Hsv(h*360, clampUnit(s), clampUnit(v))
	return core.RGB{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
	}
}

// FlockColor is the rainbow color of the unit at index, advancing with elapsed seconds
func FlockColor(elapsed float64, index int) core.RGB {
	h := parameter.FlockHueSpeed*elapsed + parameter.FlockHueStride*float64(index)
	return HSVToRGB(h, parameter.FlockSaturation, parameter.FlockValue)
}

// TextColor is the diagonal color wave across captured pixels on a w×h matrix
func TextColor(elapsed float64, p core.Point, w, h int) core.RGB {
	diag := float64(p.X)/float64(w) + float64(p.Y)/float64(h)
	hue := parameter.TextHueSpeed*elapsed + parameter.TextHueSpread*diag
	return HSVToRGB(hue, parameter.TextSaturation, parameter.TextValue)
}

func wrapUnit(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 {
		x = 0
	}
	return x
}

func clampUnit(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func channel(c float64) uint8 {
	v := c * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
