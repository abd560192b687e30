package maps

import (
	"fmt"

	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// OpenTent is the "open" tent map of Lai & Tel (Transient chaos:
// complex dynamics in finite time scales):
//
//	T(x) = a*x              if x < b/(a+b)
//	T(x) = b*(1 - x)        otherwise
//
// Unlike Tent, OpenTent's map is defined on all of R and its escape
// criterion is simply leaving (0, 1), so the trapdoor and the
// boundary box coincide. Grounded on map::OpenTent in map.h.
type OpenTent struct {
	a, b numeric.Float
}

// NewOpenTent builds an OpenTent map with parameters a, b.
func NewOpenTent(a, b float64) *OpenTent {
	return &OpenTent{a: numeric.New(a), b: numeric.New(b)}
}

func (m *OpenTent) D() int { return 1 }

func (m *OpenTent) Name() string {
	return fmt.Sprintf("tent%.0f&%.0f", m.a.Float64(), m.b.Float64())
}

func (m *OpenTent) Boundary() domain.Box { return domain.Square(1, 0, 1) }

func (m *OpenTent) threshold() numeric.Float {
	return m.b.Quo(m.a.Add(m.b))
}

func (m *OpenTent) T(point numeric.Vector) numeric.Vector {
	x := point[0]
	var y numeric.Float
	if x.Less(m.threshold()) {
		y = m.a.Mul(x)
	} else {
		y = m.b.Mul(numeric.New(1).Sub(x))
	}
	return numeric.Vector{y}
}

func (m *OpenTent) Jacobian(point numeric.Vector) numeric.Matrix {
	x := point[0]
	j := numeric.NewMatrix(1, 1)
	if x.Less(m.threshold()) {
		j.Set(0, 0, m.a)
	} else {
		j.Set(0, 0, m.b)
	}
	return j
}

// HasExited reports whether x has left the open interval (0, 1).
func (m *OpenTent) HasExited(point numeric.Vector) bool {
	x := point[0]
	zero, one := numeric.Zero(), numeric.New(1)
	return !(zero.Less(x) && x.Less(one))
}

func (m *OpenTent) ApplyBoundaryConditions(point numeric.Vector) numeric.Vector {
	return point
}
