package proposal

import (
	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// PowerLawIsotropic is the "exponential stagger distribution" proposal
// of Davidchack & Lai (PRL 86, 2261): an isotropic step of size
// exp(U(-maxS, -minS)), i.e. step sizes power-law distributed across
// many decades. LogAcceptance is always 0 (the step-size distribution
// is symmetric in log-step-size between forward and reverse moves).
// Grounded on proposal::PowerLawIsotropic<Observable>.
type PowerLawIsotropic[R Result] struct {
	boundary   domain.Box
	minS, maxS numeric.Float
	delta      numeric.Float
}

// NewPowerLawIsotropic builds a PowerLawIsotropic proposal over
// boundary, with step-size exponent drawn from [-minS, -maxS] (minS,
// maxS are the original's convention: the constructor itself negates
// them).
func NewPowerLawIsotropic[R Result](boundary domain.Box, minS, maxS float64) *PowerLawIsotropic[R] {
	return &PowerLawIsotropic[R]{
		boundary: boundary,
		minS:     numeric.New(-minS),
		maxS:     numeric.New(-maxS),
	}
}

func (p *PowerLawIsotropic[R]) ProposeUniform() numeric.Vector {
	return proposeUniform(p.boundary)
}

func (p *PowerLawIsotropic[R]) Propose(result R) numeric.Vector {
	span := p.maxS.Sub(p.minS)
	p.delta = p.minS.Add(span.Mul(numeric.Uniform())).Exp()
	d := p.boundary.D()
	return proposeIsotropic(result.State(), numeric.UnitVector(d), p.delta, p.boundary)
}

func (p *PowerLawIsotropic[R]) LogAcceptance(result, resultPrime R) float64 { return 0 }

func (p *PowerLawIsotropic[R]) Update(result, resultPrime R) {}

func (p *PowerLawIsotropic[R]) Delta() numeric.Float { return p.delta }
