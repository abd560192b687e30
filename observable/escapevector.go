package observable

import (
	"math"

	"github.com/alexshd/chaospp/mapping"
	"github.com/alexshd/chaospp/numeric"
)

// EscapeWithVector computes the escape time of a state together with
// its finite-time Lyapunov exponent, tracked via a tangent vector
// evolved by v <- J(x_t)*v at every step. Grounded on
// observable::EscapeWithVector in observable.h.
//
// Per spec: before iteration, v is set to a fresh unit vector drawn
// uniformly from the sphere S^(D-1), unless an explicit initial
// tangent was supplied at construction, in which case that tangent is
// reused (and NOT overwritten) on every Observe call — the original's
// ComputeMatrix::initialize unconditionally resets to a fresh random
// vector even when one was supplied, which silently discards the
// caller's tangent; this implementation honours the supplied tangent
// instead.
type EscapeWithVector struct {
	Map     mapping.Map
	MaxTime int

	initialTangent numeric.Vector // nil => draw fresh each Observe

	state      numeric.Vector
	tangent    numeric.Vector
	escapeTime int
}

// NewEscapeWithVector builds an EscapeWithVector observable. If
// tangent is nil, a fresh unit vector is drawn on every Observe call;
// otherwise the supplied tangent is reused (cloned) on every call.
func NewEscapeWithVector(m mapping.Map, maxTime int, tangent numeric.Vector) *EscapeWithVector {
	if maxTime <= 0 {
		maxTime = unboundedMaxTime
	}
	return &EscapeWithVector{Map: m, MaxTime: maxTime, initialTangent: tangent}
}

func (e *EscapeWithVector) State() numeric.Vector { return e.state }

func (e *EscapeWithVector) Value() int { return e.escapeTime }

func (e *EscapeWithVector) EscapeTime() int { return e.escapeTime }

// Stretch returns the Euclidean norm of the tangent vector after
// EscapeTime() iterations; it is not renormalised.
func (e *EscapeWithVector) Stretch() numeric.Float {
	return e.tangent.Norm()
}

func (e *EscapeWithVector) Jacobian() numeric.Matrix {
	panic("observable: EscapeWithVector does not track the full Jacobian")
}

func (e *EscapeWithVector) Lyapunov() float64 {
	return math.Log(e.Stretch().Float64()) / float64(e.escapeTime)
}

func (e *EscapeWithVector) Fresh() Result[int] {
	return NewEscapeWithVector(e.Map, e.MaxTime, e.initialTangent)
}

func (e *EscapeWithVector) HasExited(point numeric.Vector) bool {
	return e.Map.HasExited(point)
}

func (e *EscapeWithVector) Observe(state numeric.Vector) {
	e.state = state
	if e.initialTangent != nil {
		e.tangent = e.initialTangent.Clone()
	} else {
		e.tangent = numeric.UnitVector(e.Map.D())
	}

	step := func(point numeric.Vector) numeric.Vector {
		next, tangent := mapping.DT(e.Map, point, e.tangent)
		e.tangent = tangent
		return next
	}

	_, steps := escapeLoop(state, e.MaxTime, step, e.Map.HasExited)
	e.escapeTime = steps
}
