package maps

import (
	"fmt"

	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// NCoupledHenon is a ring of D/2 Henon maps nearest-neighbour coupled
// in their position variable, state (x_0..x_{D/2-1}, y_0..y_{D/2-1}):
//
//	x_i' = a_i - x_i^2 + b*y_i [+ k*(x_i - x_{i+1})  if D > 2]
//	y_i' = x_i
//
// with i+1 taken mod D/2 (a ring), and the parameter a_i interpolated
// linearly from min_a (i=0) to max_a (i=D/2-1). Grounded on
// map::NCoupledHenon in map.h.
type NCoupledHenon struct {
	d        int
	a        []numeric.Float
	b, k     numeric.Float
	boundary domain.Box
}

// NewNCoupledHenon builds a D-dimensional (D even) ring of coupled
// Henon maps with a-parameters interpolated between minA and maxA,
// and fixed coupling constants b, k.
func NewNCoupledHenon(d int, minA, maxA, b, k float64) *NCoupledHenon {
	if d%2 != 0 {
		panic("maps: NCoupledHenon dimension must be even")
	}
	half := d / 2
	a := make([]numeric.Float, half)
	a[0] = numeric.New(minA)
	if half > 1 {
		a[half-1] = numeric.New(maxA)
	}
	for i := 1; i < half-1; i++ {
		frac := float64(i) / float64(half-1)
		a[i] = numeric.New(minA + (maxA-minA)*frac)
	}
	return &NCoupledHenon{
		d:        d,
		a:        a,
		b:        numeric.New(b),
		k:        numeric.New(k),
		boundary: domain.Square(d, -4, 4),
	}
}

func (m *NCoupledHenon) D() int { return m.d }

func (m *NCoupledHenon) Name() string { return fmt.Sprintf("ch%d", m.d) }

func (m *NCoupledHenon) Boundary() domain.Box { return m.boundary }

func (m *NCoupledHenon) half() int { return m.d / 2 }

func (m *NCoupledHenon) T(point numeric.Vector) numeric.Vector {
	half := m.half()
	x0 := point[0]
	out := point.Clone()

	for i := 0; i < half; i++ {
		iplus1 := (i + 1) % half
		x := point[i]
		y := point[i+half]
		u := point[iplus1]
		if iplus1 == 0 {
			u = x0
		}

		xi := m.a[i].Sub(x.Mul(x)).Add(m.b.Mul(y))
		if m.d > 2 {
			xi = xi.Add(m.k.Mul(x.Sub(u)))
		}
		out[i] = xi
		out[i+half] = x
	}
	return out
}

func (m *NCoupledHenon) Jacobian(point numeric.Vector) numeric.Matrix {
	half := m.half()
	j := numeric.NewMatrix(m.d, m.d)

	for i := 0; i < half; i++ {
		iplus1 := (i + 1) % half
		x := point[i]

		j.Set(i, i, numeric.New(-2).Mul(x))
		j.Set(i, i+half, m.b)
		if m.d > 2 {
			j.Set(i, i, j.At(i, i).Add(m.k))
			j.Set(i, iplus1, j.At(i, iplus1).Sub(m.k))
		}
		j.Set(i+half, i, numeric.New(1))
	}
	return j
}

// HasExited reports whether any component has left [-4, 4].
func (m *NCoupledHenon) HasExited(point numeric.Vector) bool {
	edge := numeric.New(4)
	for _, c := range point {
		if edge.Less(c.Abs()) {
			return true
		}
	}
	return false
}

func (m *NCoupledHenon) ApplyBoundaryConditions(point numeric.Vector) numeric.Vector {
	return point
}
