package proposal

import (
	"testing"

	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/histogram"
)

type tstarResult struct {
	fakeResult
	value int
}

func (r tstarResult) Value() int { return r.value }

func TestTstarProposalSigmaShrinksApproachingTobs(t *testing.T) {
	boundary := domain.Square(1, -10, 10)
	hist := histogram.NewSamplingHistogram[int](0, 20, 20)
	for b := 0; b <= hist.Bins(); b++ {
		hist.LogPi[b] = -float64(b)
	}

	p := NewTstarProposal[int, tstarResult](boundary, 1.0, 20, hist)

	r := tstarResult{fakeResult: fakeResult{lyapunov: 0.5}, value: 10}
	sigma := p.Sigma(r)
	if sigma.Float64() <= 0 {
		t.Errorf("Sigma() = %v, want > 0", sigma.Float64())
	}
	// t* = 20 - 1/|(-1)*(0.5-0)| = 18, so sigma = exp(-0.5*18) < delta0.
	if sigma.Float64() >= 1.0 {
		t.Errorf("Sigma() = %v, want < delta0 = 1", sigma.Float64())
	}
}
