package maps

import (
	"fmt"

	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// Logistic is the logistic map T(x) = r*x*(1-x) on [0, 1]. Grounded on
// map::Logistic in map.h.
type Logistic struct {
	r numeric.Float
}

// NewLogistic builds a Logistic map with growth parameter r.
func NewLogistic(r float64) *Logistic {
	return &Logistic{r: numeric.New(r)}
}

func (m *Logistic) D() int { return 1 }

func (m *Logistic) Name() string { return fmt.Sprintf("logistic%.0f", m.r.Float64()) }

func (m *Logistic) Boundary() domain.Box { return domain.Square(1, 0, 1) }

func (m *Logistic) T(point numeric.Vector) numeric.Vector {
	x := point[0]
	y := m.r.Mul(numeric.New(1).Sub(x)).Mul(x)
	return numeric.Vector{y}
}

func (m *Logistic) Jacobian(point numeric.Vector) numeric.Matrix {
	x := point[0]
	j := numeric.NewMatrix(1, 1)
	j.Set(0, 0, m.r.Mul(numeric.New(1).Sub(numeric.New(2).Mul(x))))
	return j
}

// HasExited reports whether x has left (0, 0.2), the trapdoor used by
// the original test suite for this map.
func (m *Logistic) HasExited(point numeric.Vector) bool {
	x := point[0]
	zero, edge := numeric.Zero(), numeric.New(0.2)
	return !(zero.Less(x) && x.Less(edge))
}

func (m *Logistic) ApplyBoundaryConditions(point numeric.Vector) numeric.Vector {
	return point
}
