package maps

import (
	"fmt"

	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// Standard is the Chirikov standard map on the 2-torus [0, 1)^2:
//
//	p' = p + k*sin(2*pi*q)
//	q' = q + p'
//
// with k folded by 2*pi at construction time so the caller-supplied
// parameter matches the conventional "kick strength" K. Grounded on
// map::Standard in map.h.
type Standard struct {
	k        numeric.Float // K/(2*pi)
	boundary domain.Box
}

// NewStandard builds a Standard map with kick strength k.
func NewStandard(k float64) *Standard {
	twoPi := numeric.New(2).Mul(numeric.Pi())
	return &Standard{
		k:        numeric.New(k).Quo(twoPi),
		boundary: domain.Square(2, 0, 1),
	}
}

func (m *Standard) D() int { return 2 }

func (m *Standard) Name() string { return fmt.Sprintf("sm%.0f", m.k.Float64()) }

func (m *Standard) Boundary() domain.Box { return m.boundary }

func (m *Standard) twoPi() numeric.Float {
	return numeric.New(2).Mul(numeric.Pi())
}

func (m *Standard) T(point numeric.Vector) numeric.Vector {
	p, q := point[0], point[1]
	pPrime := p.Add(m.k.Mul(m.twoPi().Mul(q).Sin()))
	qPrime := q.Add(pPrime)
	return m.boundary.Wrap(numeric.Vector{pPrime, qPrime})
}

func (m *Standard) Jacobian(point numeric.Vector) numeric.Matrix {
	q := point[1]
	j := numeric.NewMatrix(2, 2)
	j.Set(0, 0, numeric.New(1))
	j.Set(1, 0, numeric.New(1))
	dPdQ := m.k.Mul(m.twoPi()).Mul(m.twoPi().Mul(q).Cos())
	j.Set(0, 1, dPdQ)
	j.Set(1, 1, numeric.New(1).Add(dPdQ))
	return j
}

// HasExited reports q < 0.1, the original test suite's trapdoor.
func (m *Standard) HasExited(point numeric.Vector) bool {
	return point[1].Less(numeric.New(0.1))
}

func (m *Standard) ApplyBoundaryConditions(point numeric.Vector) numeric.Vector {
	return m.boundary.Wrap(point)
}
