// Package domain provides the bounded phase-space region every map
// operates in, and the boundary conditions used to fold or detect exit
// from it.
package domain

import "github.com/alexshd/chaospp/numeric"

// Interval is a single half-open coordinate range [Low, High).
type Interval struct {
	Low, High numeric.Float
}

// Width returns High - Low.
func (iv Interval) Width() numeric.Float {
	return iv.High.Sub(iv.Low)
}

// Contains reports whether x falls in [Low, High).
func (iv Interval) Contains(x numeric.Float) bool {
	return !x.Less(iv.Low) && x.Less(iv.High)
}

// Box is the D-dimensional half-open region [Low_i, High_i) a map's
// state is confined or escapes from. Grounded on Map::boundary in
// map.h, which every concrete map returns as a fixed per-dimension
// [low, high) pair.
type Box struct {
	intervals []Interval
}

// NewBox builds a Box from its per-dimension intervals.
func NewBox(intervals ...Interval) Box {
	return Box{intervals: intervals}
}

// Square builds a D-dimensional box with the same [low, high) interval
// on every axis, the common case (Tent, Logistic, Manneville, Standard
// all use a single square domain).
func Square(d int, low, high float64) Box {
	intervals := make([]Interval, d)
	for i := range intervals {
		intervals[i] = Interval{Low: numeric.New(low), High: numeric.New(high)}
	}
	return Box{intervals: intervals}
}

// D returns the box's dimension.
func (b Box) D() int { return len(b.intervals) }

// At returns the interval of dimension i.
func (b Box) At(i int) Interval { return b.intervals[i] }

// Contains reports whether every component of x lies within its
// corresponding interval.
func (b Box) Contains(x numeric.Vector) bool {
	if len(x) != len(b.intervals) {
		return false
	}
	for i, c := range x {
		if !b.intervals[i].Contains(c) {
			return false
		}
	}
	return true
}

// HasExited is the complement of Contains: the escape-time observable
// stops iterating the instant this is true. Grounded on
// Map::hasExited's default ("outside the boundary box") semantics.
func (b Box) HasExited(x numeric.Vector) bool {
	return !b.Contains(x)
}

// Wrap folds x back into the box under periodic (modular) boundary
// conditions, component by component: any coordinate outside
// [Low, High) is translated by an integer multiple of the interval's
// width until it falls back inside. Grounded on the periodic variant
// of Map::applyBoundaryConditions used by Standard/CoupledStandard
// (angles taken mod 2*pi).
func (b Box) Wrap(x numeric.Vector) numeric.Vector {
	out := x.Clone()
	for i, c := range out {
		iv := b.intervals[i]
		width := iv.Width()
		if width.Sign() == 0 {
			continue
		}
		for c.Less(iv.Low) {
			c = c.Add(width)
		}
		for !c.Less(iv.High) {
			c = c.Sub(width)
		}
		out[i] = c
	}
	return out
}
