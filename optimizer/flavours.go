package optimizer

import (
	"github.com/alexshd/chaospp/mapping"
	"github.com/alexshd/chaospp/observable"
	"github.com/alexshd/chaospp/proposal"
)

// NewPowerLaw builds an Optimizer searching with a power-law isotropic
// proposal over a plain EscapeTime observable. Grounded on
// optimizer::PowerLaw.
func NewPowerLaw(m mapping.Map, maxTime int, minS, maxS float64) *Optimizer[int] {
	prototype := observable.NewEscapeTime(m, maxTime)
	p := proposal.NewPowerLawIsotropic[observable.Result[int]](m.Boundary(), minS, maxS)
	return NewOptimizer[int](prototype, p, maxTime)
}

// NewAdaptive builds an Optimizer searching with an adaptive isotropic
// proposal over a plain EscapeTime observable. Grounded on
// optimizer::Adaptive.
func NewAdaptive(m mapping.Map, maxTime int) *Optimizer[int] {
	prototype := observable.NewEscapeTime(m, maxTime)
	p := proposal.NewAdaptive[observable.Result[int]](m.Boundary(), 1.1)
	return NewOptimizer[int](prototype, p, maxTime)
}

// NewIsotropic builds an Optimizer searching with a Lyapunov-informed
// isotropic proposal over an EscapeWithVector observable (needed for
// the proposal's Stretch() dependency). Grounded on
// optimizer::Isotropic.
func NewIsotropic(m mapping.Map, maxTime int) *Optimizer[int] {
	prototype := observable.NewEscapeWithVector(m, maxTime, nil)
	p := proposal.NewLyapunovIsotropic[observable.Result[int]](m.Boundary(), 10)
	return NewOptimizer[int](prototype, p, maxTime)
}

// NewAnisotropic builds an Optimizer searching with the SVD-shaped
// anisotropic proposal over an EscapeWithMatrix observable (needed for
// the proposal's Jacobian() dependency). Grounded on
// optimizer::Anisotropic.
func NewAnisotropic(m mapping.Map, maxTime int) *Optimizer[int] {
	prototype := observable.NewEscapeWithMatrix(m, maxTime)
	p := proposal.NewAnisotropic[observable.Result[int]](m.Boundary())
	return NewOptimizer[int](prototype, p, maxTime)
}
