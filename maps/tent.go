// Package maps provides the concrete iterated maps used to exercise
// and test the engine/observable/proposal packages: a handful of
// standard low-dimensional chaotic maps from the rare-event-sampling
// literature. None of this package is part of the sampling engine
// itself (mapping.Map is the only contract the rest of chaospp depends
// on) — it exists so the engine has real, documented dynamical systems
// to sample from.
package maps

import (
	"fmt"

	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// Tent is the asymmetric tent map on [0, 1]:
//
//	T(x) = a*x                  if x < 1/a
//	T(x) = a/(a-1) * (1 - x)    otherwise
//
// Grounded on map::Tent in map.h.
type Tent struct {
	a numeric.Float
}

// NewTent builds a Tent map with slope parameter a (a > 1).
func NewTent(a float64) *Tent {
	return &Tent{a: numeric.New(a)}
}

func (m *Tent) D() int { return 1 }

func (m *Tent) Name() string { return fmt.Sprintf("tent%.1f", m.a.Float64()) }

func (m *Tent) Boundary() domain.Box { return domain.Square(1, 0, 1) }

func (m *Tent) T(point numeric.Vector) numeric.Vector {
	x := point[0]
	one := numeric.New(1)
	threshold := one.Quo(m.a)

	var y numeric.Float
	if x.Less(threshold) {
		y = m.a.Mul(x)
	} else {
		y = m.a.Quo(m.a.Sub(one)).Mul(one.Sub(x))
	}
	return numeric.Vector{y}
}

func (m *Tent) Jacobian(point numeric.Vector) numeric.Matrix {
	x := point[0]
	one := numeric.New(1)
	threshold := one.Quo(m.a)

	j := numeric.NewMatrix(1, 1)
	if x.Less(threshold) {
		j.Set(0, 0, m.a)
	} else {
		j.Set(0, 0, m.a.Neg().Quo(m.a.Sub(one)))
	}
	return j
}

// HasExited reports x[0] < 0.4: the trapdoor used by the original
// test suite's escape-time scenarios, distinct from the full [0,1]
// boundary box returned by Boundary.
func (m *Tent) HasExited(point numeric.Vector) bool {
	return point[0].Less(numeric.New(0.4))
}

func (m *Tent) ApplyBoundaryConditions(point numeric.Vector) numeric.Vector {
	return point
}
