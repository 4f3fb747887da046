package core

import "sort"

// PointSet is an unordered set of matrix coordinates
// Zero value is not usable, construct with NewPointSet
type PointSet map[Point]struct{}

// NewPointSet creates a set holding the given points
func NewPointSet(points ...Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p and returns true if it was not already present
func (s PointSet) Add(p Point) bool {
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}
	return true
}

// Has returns true if p is in the set
func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of points
func (s PointSet) Len() int {
	return len(s)
}

// Clone returns an independent copy
func (s PointSet) Clone() PointSet {
	c := make(PointSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// Difference returns the points of s that are not in other
func (s PointSet) Difference(other PointSet) PointSet {
	d := make(PointSet)
	for p := range s {
		if !other.Has(p) {
			d[p] = struct{}{}
		}
	}
	return d
}

// SubsetOf returns true if every point of s is in other
func (s PointSet) SubsetOf(other PointSet) bool {
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// Sorted returns the points in deterministic X-then-Y order
// Map iteration order is random; anything that feeds output or RNG must use this
func (s PointSet) Sorted() []Point {
	out := make([]Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
