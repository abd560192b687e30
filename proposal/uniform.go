package proposal

import (
	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// Uniform proposes a state drawn uniformly from the boundary region,
// independent of the current state: an independence sampler.
// LogAcceptance is always 0 since the proposal density is the same in
// both directions. Grounded on proposal::Uniform<Observable>.
type Uniform[R Result] struct {
	boundary domain.Box
	delta    numeric.Float
}

// NewUniform builds a Uniform proposal over boundary.
func NewUniform[R Result](boundary domain.Box) *Uniform[R] {
	return &Uniform[R]{boundary: boundary}
}

func (p *Uniform[R]) ProposeUniform() numeric.Vector {
	return proposeUniform(p.boundary)
}

func (p *Uniform[R]) Propose(result R) numeric.Vector {
	newState := p.ProposeUniform()
	p.delta = newState.Sub(result.State()).Norm()
	return newState
}

func (p *Uniform[R]) LogAcceptance(result, resultPrime R) float64 { return 0 }

func (p *Uniform[R]) Update(result, resultPrime R) {}

func (p *Uniform[R]) Delta() numeric.Float { return p.delta }
