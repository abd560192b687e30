// Package proposal provides the perturbation kernels a sampling engine
// draws candidate states from: uniform, power-law isotropic, the
// half-normal Isotropic family (plain, Lyapunov-scaled, adaptive), and
// anisotropic (SVD-shaped) proposals. Grounded on proposal.h.
package proposal

import (
	"math"

	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// Result is the narrow view of an observable a proposal needs: its
// current state, escape time (for Adaptive), stretch factor (for
// LyapunovIsotropic), accumulated Jacobian (for Anisotropic) and
// finite-time Lyapunov exponent (for TstarProposal). Declared locally, mirroring histogram.result, so
// proposal has no import-time dependency on package observable.
type Result interface {
	State() numeric.Vector
	EscapeTime() int
	Stretch() numeric.Float
	Jacobian() numeric.Matrix
	Lyapunov() float64
}

// Proposal is the contract every kernel in this package satisfies.
// Grounded on proposal::Proposal<Observable> in proposal.h.
type Proposal[R Result] interface {
	// ProposeUniform draws a state uniformly from the boundary box,
	// used to seed a chain before any Markov step.
	ProposeUniform() numeric.Vector

	// Propose draws a candidate state from result's current state.
	Propose(result R) numeric.Vector

	// LogAcceptance returns the proposal's contribution log(g'/g) to
	// the Metropolis log-acceptance ratio.
	LogAcceptance(result, resultPrime R) float64

	// Update lets a proposal adapt its internal parameters after
	// observing a (result, result_prime) pair. Most kernels no-op.
	Update(result, resultPrime R)

	// Delta returns the step size of the most recent Propose call.
	Delta() numeric.Float
}

// boundInitialCondition folds point back into boundary under periodic
// wrap, the behaviour every proposal applies to its raw candidate
// before returning it. Grounded on proposal::bound_initial_condition.
func boundInitialCondition(point numeric.Vector, boundary domain.Box) numeric.Vector {
	return boundary.Wrap(point)
}

// proposeUniform draws a state uniformly from boundary. Grounded on
// proposal::proposeUniform.
func proposeUniform(boundary domain.Box) numeric.Vector {
	out := make(numeric.Vector, boundary.D())
	for i := 0; i < boundary.D(); i++ {
		iv := boundary.At(i)
		width := iv.Width()
		out[i] = iv.Low.Add(width.Mul(numeric.Uniform()))
	}
	return out
}

// proposeIsotropic perturbs point by sigma*vector and folds the result
// back into boundary. Grounded on proposal::proposeIsotropic.
func proposeIsotropic(point, vector numeric.Vector, sigma numeric.Float, boundary domain.Box) numeric.Vector {
	out := point.Clone()
	for d := range out {
		out[d] = out[d].Add(sigma.Mul(vector[d]))
	}
	return boundInitialCondition(out, boundary)
}

// logAcceptanceIsotropic is the Metropolis correction for a half-normal
// isotropic step of size delta proposed under sigma, evaluated at the
// reverse step's sigmaPrime. Grounded on proposal::logAcceptanceIsotropic.
func logAcceptanceIsotropic(sigma, sigmaPrime, delta numeric.Float) float64 {
	ratio := delta.Quo(sigma).Float64()
	ratioSigma := sigma.Quo(sigmaPrime).Float64()
	return math.Log(ratioSigma) - 0.5*ratio*ratio*(ratioSigma*ratioSigma-1)
}
