package observable

import (
	"math"

	"github.com/alexshd/chaospp/mapping"
	"github.com/alexshd/chaospp/numeric"
)

// Lyapunov computes the finite-time Lyapunov exponent of a state over
// a fixed observation window Tobs, with no escape criterion: the
// product Jacobian is accumulated for exactly Tobs steps. Grounded on
// observable::Lyapunov in observable.h.
type Lyapunov struct {
	Map  mapping.Map
	Tobs int

	state  numeric.Vector
	matrix computeMatrix
}

// NewLyapunov builds a Lyapunov observable over m, observed for tobs
// steps.
func NewLyapunov(m mapping.Map, tobs int) *Lyapunov {
	return &Lyapunov{Map: m, Tobs: tobs}
}

func (l *Lyapunov) State() numeric.Vector { return l.state }

func (l *Lyapunov) Value() float64 { return l.Lyapunov() }

func (l *Lyapunov) EscapeTime() int {
	panic("observable: Lyapunov does not track an escape time")
}

func (l *Lyapunov) Stretch() numeric.Float { return l.matrix.stretch() }

func (l *Lyapunov) Jacobian() numeric.Matrix { return l.matrix.jacobian }

func (l *Lyapunov) Lyapunov() float64 {
	return math.Log(l.Stretch().Float64()) / float64(l.Tobs)
}

func (l *Lyapunov) Fresh() Result[float64] {
	return NewLyapunov(l.Map, l.Tobs)
}

func (l *Lyapunov) Observe(state numeric.Vector) {
	l.state = state
	l.matrix = newComputeMatrix(l.Map.D())

	point := state
	for t := 0; t < l.Tobs; t++ {
		l.matrix.evolve(l.Map, point)
		point = l.Map.T(point)
	}
	l.matrix.finalise()
}
