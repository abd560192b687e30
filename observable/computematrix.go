package observable

import (
	"github.com/alexshd/chaospp/mapping"
	"github.com/alexshd/chaospp/numeric"
)

// computeMatrix accumulates the product Jacobian M <- J(x_t)*M over a
// trajectory and, on finalise, extracts the dominant (largest-modulus)
// eigenpair. Shared by EscapeWithMatrix, EscapeWithTrajectory and
// Lyapunov. Grounded on the free-standing ComputeMatrix class in
// observable.h — a plain value here rather than a base class, since its
// users need identical accumulation but not the same stopping rule.
type computeMatrix struct {
	jacobian numeric.Matrix

	maxModulus float64
	eigenvector numeric.Vector
}

func newComputeMatrix(d int) computeMatrix {
	return computeMatrix{jacobian: numeric.Identity(d)}
}

func (c *computeMatrix) evolve(m mapping.Map, point numeric.Vector) {
	c.jacobian = m.Jacobian(point).Mul(c.jacobian)
}

func (c *computeMatrix) finalise() {
	result, vec := numeric.Eigendecompose(c.jacobian)
	c.maxModulus = result.MaxModulus
	c.eigenvector = vec
}

func (c *computeMatrix) stretch() numeric.Float {
	return numeric.New(c.maxModulus)
}
