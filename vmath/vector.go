package vmath

import "math"

// Vec2 is a 2D vector in matrix pixel units
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a+b
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a-b
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns a*k
func (a Vec2) Scale(k float64) Vec2 {
	return Vec2{a.X * k, a.Y * k}
}

// Div returns a/k, zero vector when k is zero
func (a Vec2) Div(k float64) Vec2 {
	if k == 0 {
		return Vec2{}
	}
	return Vec2{a.X / k, a.Y / k}
}

// Magnitude returns the Euclidean length
func (a Vec2) Magnitude() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Distance returns |a-b|
func (a Vec2) Distance(b Vec2) float64 {
	return a.Sub(b).Magnitude()
}

// Normalize returns the unit vector, zero vector when magnitude is zero
func (a Vec2) Normalize() Vec2 {
	mag := a.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{a.X / mag, a.Y / mag}
}

// ClampMagnitude scales the vector down to max length if it exceeds it
// Direction is preserved; shorter vectors are returned unchanged
func (a Vec2) ClampMagnitude(max float64) Vec2 {
	mag := a.Magnitude()
	if mag <= max || mag == 0 {
		return a
	}
	return a.Scale(max / mag)
}

// IsZero reports whether both components are zero
func (a Vec2) IsZero() bool {
	return a.X == 0 && a.Y == 0
}
