package observable

import (
	"github.com/alexshd/chaospp/mapping"
	"github.com/alexshd/chaospp/numeric"
)

// EscapeTime is the escape time of a state for an open system: the
// number of map iterations until the trajectory leaves the map's
// restraining region, capped at MaxTime. Grounded on
// observable::EscapeTime in observable.h.
type EscapeTime struct {
	Map     mapping.Map
	MaxTime int

	state      numeric.Vector
	escapeTime int
}

// NewEscapeTime builds an EscapeTime observable over m. maxTime <= 0
// means unbounded (the original's numeric_limits<unsigned int>::max()
// default).
func NewEscapeTime(m mapping.Map, maxTime int) *EscapeTime {
	if maxTime <= 0 {
		maxTime = unboundedMaxTime
	}
	return &EscapeTime{Map: m, MaxTime: maxTime}
}

func (e *EscapeTime) State() numeric.Vector { return e.state }

func (e *EscapeTime) Value() int { return e.escapeTime }

func (e *EscapeTime) EscapeTime() int { return e.escapeTime }

func (e *EscapeTime) Stretch() numeric.Float {
	panic("observable: EscapeTime does not track a stretch factor")
}

func (e *EscapeTime) Jacobian() numeric.Matrix {
	panic("observable: EscapeTime does not track a Jacobian")
}

func (e *EscapeTime) Lyapunov() float64 {
	panic("observable: EscapeTime does not track a Lyapunov exponent")
}

func (e *EscapeTime) Fresh() Result[int] {
	return NewEscapeTime(e.Map, e.MaxTime)
}

// HasExited reports whether point has left the map's restraining
// region. Exposed so TstarProposal-style code and tests can probe the
// stopping condition directly.
func (e *EscapeTime) HasExited(point numeric.Vector) bool {
	return e.Map.HasExited(point)
}

func (e *EscapeTime) Observe(state numeric.Vector) {
	e.state = state
	point, steps := escapeLoop(state, e.MaxTime, e.Map.T, e.Map.HasExited)
	_ = point
	e.escapeTime = steps
}
