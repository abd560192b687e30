package maps

import (
	"fmt"

	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// Manneville is the intermittency map T(x) = x^z + x, folded back into
// [0, 1) under periodic boundary conditions. z = 1 degenerates to the
// Bernoulli shift. Grounded on map::Manneville in map.h.
type Manneville struct {
	z        numeric.Float
	boundary domain.Box
}

// NewManneville builds a Manneville map with exponent z (z >= 1).
func NewManneville(z float64) *Manneville {
	if z < 1 {
		panic("maps: Manneville requires z >= 1")
	}
	return &Manneville{z: numeric.New(z), boundary: domain.Square(1, 0, 1)}
}

func (m *Manneville) D() int { return 1 }

func (m *Manneville) Name() string { return fmt.Sprintf("pm%.0f", m.z.Float64()) }

func (m *Manneville) Boundary() domain.Box { return m.boundary }

func (m *Manneville) T(point numeric.Vector) numeric.Vector {
	x := point[0]
	y := x.Pow(m.z).Add(x)
	return m.boundary.Wrap(numeric.Vector{y})
}

func (m *Manneville) Jacobian(point numeric.Vector) numeric.Matrix {
	x := point[0]
	j := numeric.NewMatrix(1, 1)
	j.Set(0, 0, numeric.New(1).Add(x.Pow(m.z.Sub(numeric.New(1))).Mul(m.z)))
	return j
}

// HasExited reports x[0] > 0.8, the laminar-phase escape threshold
// used by the original test suite.
func (m *Manneville) HasExited(point numeric.Vector) bool {
	return numeric.New(0.8).Less(point[0])
}

func (m *Manneville) ApplyBoundaryConditions(point numeric.Vector) numeric.Vector {
	return m.boundary.Wrap(point)
}
