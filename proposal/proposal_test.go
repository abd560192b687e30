package proposal

import (
	"math"
	"testing"

	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

type fakeResult struct {
	state      numeric.Vector
	escapeTime int
	stretch    numeric.Float
	jacobian   numeric.Matrix
	lyapunov   float64
}

func (r fakeResult) State() numeric.Vector    { return r.state }
func (r fakeResult) EscapeTime() int          { return r.escapeTime }
func (r fakeResult) Stretch() numeric.Float   { return r.stretch }
func (r fakeResult) Jacobian() numeric.Matrix { return r.jacobian }
func (r fakeResult) Lyapunov() float64        { return r.lyapunov }

func TestUniformProposalAlwaysAccepts(t *testing.T) {
	boundary := domain.Square(1, 0, 1)
	p := NewUniform[fakeResult](boundary)

	r := fakeResult{state: numeric.VectorOf(0.5)}
	candidate := p.Propose(r)
	if !boundary.Contains(candidate) {
		t.Errorf("Propose() = %v, want inside the boundary box", candidate)
	}
	if got := p.LogAcceptance(r, r); got != 0 {
		t.Errorf("LogAcceptance() = %v, want 0", got)
	}
}

func TestPowerLawIsotropicStepIsWithinDecadeRange(t *testing.T) {
	boundary := domain.Square(1, 0, 100)
	p := NewPowerLawIsotropic[fakeResult](boundary, -1, 2)

	r := fakeResult{state: numeric.VectorOf(50)}
	for i := 0; i < 100; i++ {
		p.Propose(r)
		delta := p.Delta().Float64()
		if delta < math.Pow(10, -2) || delta > math.Pow(10, 1) {
			t.Fatalf("delta = %v, outside [1e-2, 1e1]", delta)
		}
	}
}

func TestIsotropicLyapunovScalesWithStretch(t *testing.T) {
	boundary := domain.Square(1, -10, 10)
	p := NewLyapunovIsotropic[fakeResult](boundary, 10)

	fast := fakeResult{state: numeric.VectorOf(0), stretch: numeric.New(100)}
	slow := fakeResult{state: numeric.VectorOf(0), stretch: numeric.New(1)}

	if got := p.Sigma(fast).Float64(); got != 0.1 {
		t.Errorf("Sigma(fast) = %v, want 0.1", got)
	}
	if got := p.Sigma(slow).Float64(); got != 10 {
		t.Errorf("Sigma(slow) = %v, want 10", got)
	}
}

func TestAdaptiveProposalGrowsOnImprovementAndShrinksOtherwise(t *testing.T) {
	boundary := domain.Square(1, -10, 10)
	p := NewAdaptive[fakeResult](boundary, 1.1)

	improving := fakeResult{state: numeric.VectorOf(0), escapeTime: 5}
	better := fakeResult{state: numeric.VectorOf(0), escapeTime: 10}

	before := p.Sigma(improving).Float64()
	p.Update(improving, better)
	after := p.Sigma(improving).Float64()
	if after <= before {
		t.Errorf("sigma should grow after an improving proposal: %v -> %v", before, after)
	}

	worse := fakeResult{state: numeric.VectorOf(0), escapeTime: 1}
	p.Update(improving, worse)
	shrunk := p.Sigma(improving).Float64()
	if shrunk >= after {
		t.Errorf("sigma should shrink after a non-improving proposal: %v -> %v", after, shrunk)
	}
}

func TestAnisotropicLogAcceptancePanics(t *testing.T) {
	boundary := domain.Square(2, -10, 10)
	p := NewAnisotropic[fakeResult](boundary)

	defer func() {
		if recover() == nil {
			t.Error("LogAcceptance should panic: no formula was ever implemented upstream")
		}
	}()
	p.LogAcceptance(fakeResult{}, fakeResult{})
}

func TestAnisotropicProposeStaysWithinBoundary(t *testing.T) {
	boundary := domain.Square(2, -10, 10)
	p := NewAnisotropic[fakeResult](boundary)

	j := numeric.Identity(2)
	r := fakeResult{state: numeric.VectorOf(0, 0), jacobian: j}

	candidate := p.Propose(r)
	if !boundary.Contains(candidate) {
		t.Errorf("Propose() = %v, want inside the boundary box", candidate)
	}
}
