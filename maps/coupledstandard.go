package maps

import (
	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// CoupledStandard is the two coupled standard maps of Eq. (1) in
// arXiv:1311.7632, state (p1, p2, q1, q2) on [-0.5, 0.5)^4:
//
//	q1' = q1 + p1
//	q2' = q2 + p2
//	coupling = xi*sin(2*pi*(q1' + q2'))
//	p1' = p1 + k1*sin(2*pi*q1') + coupling
//	p2' = p2 + k2*sin(2*pi*q2') + coupling
//
// with k1, k2, xi fixed constants folded by 2*pi, matching the paper.
// Grounded on map::CoupledStandard in map.h.
type CoupledStandard struct {
	k1, k2, xi numeric.Float
	boundary   domain.Box
}

// NewCoupledStandard builds the CoupledStandard map with the
// parameters fixed in the original paper (k1=-2.25, k2=-3.0, xi=1.0).
func NewCoupledStandard() *CoupledStandard {
	twoPi := numeric.New(2).Mul(numeric.Pi())
	return &CoupledStandard{
		k1:       numeric.New(-2.25).Quo(twoPi),
		k2:       numeric.New(-3.0).Quo(twoPi),
		xi:       numeric.New(1.0).Quo(twoPi),
		boundary: domain.Square(4, -0.5, 0.5),
	}
}

func (m *CoupledStandard) D() int { return 4 }

func (m *CoupledStandard) Name() string { return "csm" }

func (m *CoupledStandard) Boundary() domain.Box { return m.boundary }

func (m *CoupledStandard) twoPi() numeric.Float {
	return numeric.New(2).Mul(numeric.Pi())
}

func (m *CoupledStandard) T(point numeric.Vector) numeric.Vector {
	p1, p2, q1, q2 := point[0], point[1], point[2], point[3]

	q1n := q1.Add(p1)
	q2n := q2.Add(p2)

	coupling := m.xi.Mul(m.twoPi().Mul(q1n.Add(q2n)).Sin())
	p1n := p1.Add(m.k1.Mul(m.twoPi().Mul(q1n).Sin())).Add(coupling)
	p2n := p2.Add(m.k2.Mul(m.twoPi().Mul(q2n).Sin())).Add(coupling)

	return m.boundary.Wrap(numeric.Vector{p1n, p2n, q1n, q2n})
}

func (m *CoupledStandard) Jacobian(point numeric.Vector) numeric.Matrix {
	p1, p2, q1, q2 := point[0], point[1], point[2], point[3]
	twoPi := m.twoPi()

	coupling := twoPi.Mul(m.xi).Mul(twoPi.Mul(p1.Add(q1).Add(p2).Add(q2)).Cos())
	bla1 := twoPi.Mul(m.k1).Mul(twoPi.Mul(p1.Add(q1)).Cos())
	bla2 := twoPi.Mul(m.k2).Mul(twoPi.Mul(p2.Add(q2)).Cos())

	j := numeric.NewMatrix(4, 4)
	one := numeric.New(1)

	j.Set(0, 0, one.Add(bla1).Add(coupling))
	j.Set(0, 1, coupling)
	j.Set(0, 2, bla1.Add(coupling))
	j.Set(0, 3, coupling)

	j.Set(1, 0, coupling)
	j.Set(1, 1, one.Add(bla2).Add(coupling))
	j.Set(1, 2, coupling)
	j.Set(1, 3, bla2.Add(coupling))

	j.Set(2, 0, one)
	j.Set(2, 2, one)
	j.Set(3, 1, one)
	j.Set(3, 3, one)

	return j
}

// HasExited reports p1 < -0.4 or p2 < -0.4, the original test suite's
// trapdoor.
func (m *CoupledStandard) HasExited(point numeric.Vector) bool {
	edge := numeric.New(-0.4)
	return point[0].Less(edge) || point[1].Less(edge)
}

func (m *CoupledStandard) ApplyBoundaryConditions(point numeric.Vector) numeric.Vector {
	return m.boundary.Wrap(point)
}
