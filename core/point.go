package core

// Point is an integer pixel coordinate on the LED matrix
// Origin is the top-left LED, X grows right and Y grows down
type Point struct {
	X, Y int
}

// Less orders points by X, then Y
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// In reports whether the point lies inside a w×h matrix
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}
