package system

import (
	"fmt"

	"github.com/lixenwraith/led-swarm/parameter"
	"github.com/lixenwraith/led-swarm/vmath"
)

// Direction is the edge or corner a wave enters from
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirTop
	DirBottom
	DirTopLeft
	DirTopRight
	DirBottomLeft
	DirBottomRight
)

// Directions is the spawn rotation; one step per wave, wrapping
var Directions = [...]Direction{
	DirLeft, DirRight, DirTop, DirBottom,
	DirTopLeft, DirTopRight, DirBottomLeft, DirBottomRight,
}

var directionNames = [...]string{
	DirLeft:        "left",
	DirRight:       "right",
	DirTop:         "top",
	DirBottom:      "bottom",
	DirTopLeft:     "top_left",
	DirTopRight:    "top_right",
	DirBottomLeft:  "bottom_left",
	DirBottomRight: "bottom_right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", d)
}

// IsDiagonal reports whether the wave enters from a corner
func (d Direction) IsDiagonal() bool {
	return d >= DirTopLeft
}

// edgeGeometry describes how a direction relates to the matrix
// axisX/axisY: sign of the dominant flight component on that axis (0 = random cross component)
// cornerX/cornerY: which side of the matrix the entry sits on per axis (-1 before, +1 after, 0 centered)
type edgeGeometry struct {
	axisX, axisY     float64
	cornerX, cornerY int
}

var geometry = [...]edgeGeometry{
	DirLeft:        {axisX: 1, cornerX: -1},
	DirRight:       {axisX: -1, cornerX: 1},
	DirTop:         {axisY: 1, cornerY: -1},
	DirBottom:      {axisY: -1, cornerY: 1},
	DirTopLeft:     {cornerX: -1, cornerY: -1},
	DirTopRight:    {cornerX: 1, cornerY: -1},
	DirBottomLeft:  {cornerX: -1, cornerY: 1},
	DirBottomRight: {cornerX: 1, cornerY: 1},
}

// origin returns the off-screen base point for d, with along replacing the centered
// coordinate of edge entries
func (d Direction) origin(w, h int, along float64) vmath.Vec2 {
	g := geometry[d]
	pick := func(side int, size int, centered float64) float64 {
		switch side {
		case -1:
			return -parameter.EntryOffset
		case 1:
			return float64(size + parameter.EntryOffset)
		default:
			return centered
		}
	}
	return vmath.V2(pick(g.cornerX, w, along), pick(g.cornerY, h, along))
}

// edgeHeading returns the base flight vector for edge entries
// Dominant axis at EntrySpeed, cross axis drawn from ±EntrySpread
func (d Direction) edgeHeading(rng *vmath.FastRand) vmath.Vec2 {
	g := geometry[d]
	cross := rng.Range(-parameter.EntrySpread, parameter.EntrySpread)
	if g.axisX != 0 {
		return vmath.V2(g.axisX*parameter.EntrySpeed, cross)
	}
	return vmath.V2(cross, g.axisY*parameter.EntrySpeed)
}

// aim returns the diagonal flight vector from base toward target
func aim(base, target vmath.Vec2) vmath.Vec2 {
	return target.Sub(base).Scale(1 / parameter.DiagonalAimDivisor)
}
