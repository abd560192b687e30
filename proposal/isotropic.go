package proposal

import (
	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// halfNormalConstant is sqrt(pi/2), the ratio between a half-normal
// distribution's mean step size and its scale sigma: propose()
// multiplies by it and LogAcceptance divides by it, so sigma itself is
// an expected-step-size parameter rather than a raw scale. Computed
// once since numeric.Pi() is otherwise resolved against the process's
// current default precision on every call.
var halfNormalConstant = numeric.Pi().Quo(numeric.New(2)).Sqrt()

// Isotropic is the half-normal isotropic proposal family: step size is
// sigma(result)*sqrt(pi/2)*|N(0,1)|, direction is a uniformly random
// unit vector. The scale function sigma and the (optional) Update hook
// are supplied as closures rather than through subclassing — this is
// the Go composition-over-inheritance counterpart of the original's
// abstract sigma()/update() overrides in proposal::Isotropic<Observable>,
// proposal::LyapunovIsotropic and proposal::Adaptive.
type Isotropic[R Result] struct {
	boundary domain.Box
	delta    numeric.Float

	// Sigma computes the scale parameter for a given result.
	Sigma func(result R) numeric.Float
	// UpdateFunc, if set, is invoked by Update after every proposal.
	UpdateFunc func(result, resultPrime R)
}

// NewIsotropic builds a plain Isotropic proposal with the given sigma
// function and no adaptive update.
func NewIsotropic[R Result](boundary domain.Box, sigma func(result R) numeric.Float) *Isotropic[R] {
	return &Isotropic[R]{boundary: boundary, Sigma: sigma}
}

func (p *Isotropic[R]) ProposeUniform() numeric.Vector {
	return proposeUniform(p.boundary)
}

func (p *Isotropic[R]) Propose(result R) numeric.Vector {
	sigma := p.Sigma(result)
	halfNormal := numeric.Normal().Abs()
	p.delta = sigma.Mul(halfNormalConstant).Mul(halfNormal)
	d := p.boundary.D()
	return proposeIsotropic(result.State(), numeric.UnitVector(d), p.delta, p.boundary)
}

func (p *Isotropic[R]) LogAcceptance(result, resultPrime R) float64 {
	return logAcceptanceIsotropic(p.Sigma(result), p.Sigma(resultPrime), p.delta.Quo(halfNormalConstant))
}

func (p *Isotropic[R]) Update(result, resultPrime R) {
	if p.UpdateFunc != nil {
		p.UpdateFunc(result, resultPrime)
	}
}

func (p *Isotropic[R]) Delta() numeric.Float { return p.delta }

// NewLyapunovIsotropic builds the Lyapunov-informed isotropic proposal
// of PRE 90, 052916: sigma(result) = sigma0/result.Stretch(), so the
// step size shrinks where the dynamics are already stretching fast.
// Grounded on proposal::LyapunovIsotropic<Observable>.
func NewLyapunovIsotropic[R Result](boundary domain.Box, sigma0 float64) *Isotropic[R] {
	s0 := numeric.New(sigma0)
	return NewIsotropic[R](boundary, func(result R) numeric.Float {
		return s0.Quo(result.Stretch())
	})
}

// NewAdaptive builds the adaptive proposal of PRL 110, 220601: sigma is
// multiplied by factor whenever a proposal does not shrink the escape
// time, divided by factor otherwise, clamped at a fixed maximum.
// Grounded on proposal::Adaptive<Observable>.
func NewAdaptive[R Result](boundary domain.Box, factor float64) *Isotropic[R] {
	sigma := numeric.New(1)
	factorF := numeric.New(factor)
	maxSigma := numeric.New(10)

	p := NewIsotropic[R](boundary, func(result R) numeric.Float {
		return sigma
	})
	p.UpdateFunc = func(result, resultPrime R) {
		if resultPrime.EscapeTime() >= result.EscapeTime() {
			scaled := sigma.Mul(factorF)
			if maxSigma.Less(scaled) {
				sigma = maxSigma
			} else {
				sigma = scaled
			}
		} else {
			sigma = sigma.Quo(factorF)
		}
	}
	return p
}
