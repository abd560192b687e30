package proposal

import (
	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// Anisotropic proposes a step shaped by the inverse of the accumulated
// Jacobian's expanding directions (via its SVD): along each right
// singular direction with singular value s > 1 the step is scaled by
// sigma0/s, and along directions with s <= 1 it is zero. A trajectory
// that stretches strongly along one direction is thus perturbed weakly
// along it, so that once the perturbation is carried through the
// Jacobian it is approximately isotropic at the trajectory's end.
// Grounded on proposal::Anisotropic<Observable> /
// proposal::proposeAnisotropic.
type Anisotropic[R Result] struct {
	boundary domain.Box
	sigma0   numeric.Float
	delta    numeric.Float
}

// NewAnisotropic builds an Anisotropic proposal over boundary, with
// the fixed scale sigma0 = 10 used throughout the original.
func NewAnisotropic[R Result](boundary domain.Box) *Anisotropic[R] {
	return &Anisotropic[R]{boundary: boundary, sigma0: numeric.New(10)}
}

func (p *Anisotropic[R]) ProposeUniform() numeric.Vector {
	return proposeUniform(p.boundary)
}

func (p *Anisotropic[R]) Propose(result R) numeric.Vector {
	svd := numeric.SVD(result.Jacobian())
	d := p.boundary.D()

	delta := numeric.UnitVector(d)
	for i := 0; i < d; i++ {
		sv := svd.Values[i]
		if sv > 1 {
			delta[i] = delta[i].Mul(p.sigma0).Quo(numeric.New(sv))
		} else {
			delta[i] = numeric.Zero()
		}
	}

	// v_matrix * delta: v_matrix is D x D, row-major via At(i, j).
	rotated := numeric.NewVector(d)
	for i := 0; i < d; i++ {
		sum := numeric.Zero()
		for j := 0; j < d; j++ {
			sum = sum.Add(numeric.New(svd.V.At(i, j)).Mul(delta[j]))
		}
		rotated[i] = sum
	}
	p.delta = rotated.Norm()

	point := result.State().Clone()
	for i := range point {
		point[i] = point[i].Add(rotated[i])
	}
	return boundInitialCondition(point, p.boundary)
}

// LogAcceptance is not implemented: the original documents that the
// acceptance-ratio calculation for this proposal was never done
// (`assert(1 == 0)` with a "todo: add formula here" in the source). It
// must not be used inside a Metropolis-Hastings chain as-is; it is
// wired here purely as an independent step generator (the Optimizer
// uses it that way, never through log_acceptance).
func (p *Anisotropic[R]) LogAcceptance(result, resultPrime R) float64 {
	panic("proposal: Anisotropic.LogAcceptance is not implemented upstream; do not use Anisotropic inside Metropolis-Hastings")
}

func (p *Anisotropic[R]) Update(result, resultPrime R) {}

func (p *Anisotropic[R]) Delta() numeric.Float { return p.delta }
