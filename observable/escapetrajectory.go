package observable

import (
	"math"

	"github.com/alexshd/chaospp/mapping"
	"github.com/alexshd/chaospp/numeric"
)

// EscapeWithTrajectory is EscapeWithMatrix with every visited point
// additionally recorded, so a caller can inspect the path a trajectory
// took rather than only its escape time and Jacobian. Grounded on the
// test-only EscapeWithTrajectory in test_anisotropic_proposal.h, which
// overrides EscapeWithMatrix::evolve to push each iterate onto a
// trajectory vector; Go has no virtual override through embedding, so
// this duplicates EscapeWithMatrix's Observe loop with the extra
// bookkeeping inlined instead of subclassing it.
type EscapeWithTrajectory struct {
	Map     mapping.Map
	MaxTime int

	state      numeric.Vector
	escapeTime int
	matrix     computeMatrix
	trajectory []numeric.Vector
}

// NewEscapeWithTrajectory builds an EscapeWithTrajectory observable over m.
func NewEscapeWithTrajectory(m mapping.Map, maxTime int) *EscapeWithTrajectory {
	if maxTime <= 0 {
		maxTime = unboundedMaxTime
	}
	return &EscapeWithTrajectory{Map: m, MaxTime: maxTime}
}

func (e *EscapeWithTrajectory) State() numeric.Vector { return e.state }

func (e *EscapeWithTrajectory) Value() int { return e.escapeTime }

func (e *EscapeWithTrajectory) EscapeTime() int { return e.escapeTime }

func (e *EscapeWithTrajectory) Stretch() numeric.Float { return e.matrix.stretch() }

func (e *EscapeWithTrajectory) Jacobian() numeric.Matrix { return e.matrix.jacobian }

func (e *EscapeWithTrajectory) Eigenvector() numeric.Vector { return e.matrix.eigenvector }

func (e *EscapeWithTrajectory) Lyapunov() float64 {
	return math.Log(e.Stretch().Float64()) / float64(e.escapeTime)
}

func (e *EscapeWithTrajectory) Fresh() Result[int] {
	return NewEscapeWithTrajectory(e.Map, e.MaxTime)
}

func (e *EscapeWithTrajectory) HasExited(point numeric.Vector) bool {
	return e.Map.HasExited(point)
}

// Trajectory returns every point visited during the most recent
// Observe call, in iteration order: trajectory[i] is the state after
// i+1 map applications, so trajectory[EscapeTime()-1] is the exit
// point and trajectory[EscapeTime()-2] is the penultimate iterate.
func (e *EscapeWithTrajectory) Trajectory() []numeric.Vector { return e.trajectory }

func (e *EscapeWithTrajectory) Observe(state numeric.Vector) {
	e.state = state
	e.matrix = newComputeMatrix(e.Map.D())
	e.trajectory = e.trajectory[:0]

	step := func(point numeric.Vector) numeric.Vector {
		e.matrix.evolve(e.Map, point)
		next := e.Map.T(point)
		e.trajectory = append(e.trajectory, next)
		return next
	}

	_, steps := escapeLoop(state, e.MaxTime, step, e.Map.HasExited)
	e.escapeTime = steps
	e.matrix.finalise()
}
