package observable

import (
	"math"

	"github.com/alexshd/chaospp/mapping"
	"github.com/alexshd/chaospp/numeric"
)

// EscapeWithMatrix computes the escape time of a state together with
// the product Jacobian of the trajectory; on exit the Jacobian's
// dominant eigenpair gives the stretch factor and finite-time Lyapunov
// exponent. Grounded on observable::EscapeWithMatrix in observable.h.
type EscapeWithMatrix struct {
	Map     mapping.Map
	MaxTime int

	state      numeric.Vector
	escapeTime int
	matrix     computeMatrix
}

// NewEscapeWithMatrix builds an EscapeWithMatrix observable over m.
func NewEscapeWithMatrix(m mapping.Map, maxTime int) *EscapeWithMatrix {
	if maxTime <= 0 {
		maxTime = unboundedMaxTime
	}
	return &EscapeWithMatrix{Map: m, MaxTime: maxTime}
}

func (e *EscapeWithMatrix) State() numeric.Vector { return e.state }

func (e *EscapeWithMatrix) Value() int { return e.escapeTime }

func (e *EscapeWithMatrix) EscapeTime() int { return e.escapeTime }

func (e *EscapeWithMatrix) Stretch() numeric.Float { return e.matrix.stretch() }

func (e *EscapeWithMatrix) Jacobian() numeric.Matrix { return e.matrix.jacobian }

// Eigenvector returns the right eigenvector of the dominant eigenvalue
// of the accumulated product Jacobian, valid after Observe.
func (e *EscapeWithMatrix) Eigenvector() numeric.Vector { return e.matrix.eigenvector }

func (e *EscapeWithMatrix) Lyapunov() float64 {
	return math.Log(e.Stretch().Float64()) / float64(e.escapeTime)
}

func (e *EscapeWithMatrix) Fresh() Result[int] {
	return NewEscapeWithMatrix(e.Map, e.MaxTime)
}

func (e *EscapeWithMatrix) HasExited(point numeric.Vector) bool {
	return e.Map.HasExited(point)
}

func (e *EscapeWithMatrix) Observe(state numeric.Vector) {
	e.state = state
	e.matrix = newComputeMatrix(e.Map.D())

	step := func(point numeric.Vector) numeric.Vector {
		e.matrix.evolve(e.Map, point)
		return e.Map.T(point)
	}

	_, steps := escapeLoop(state, e.MaxTime, step, e.Map.HasExited)
	e.escapeTime = steps
	e.matrix.finalise()
}
