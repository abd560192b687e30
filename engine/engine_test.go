package engine

import (
	"math"
	"testing"

	"github.com/alexshd/chaospp/histogram"
	"github.com/alexshd/chaospp/maps"
	"github.com/alexshd/chaospp/observable"
	"github.com/alexshd/chaospp/proposal"
)

func TestMetropolisHastingsSampleProducesValidEscapeTimes(t *testing.T) {
	m := maps.NewOpenTent(3, 5)
	maxTime := 20

	prototype := observable.NewEscapeTime(m, maxTime)
	p := proposal.NewUniform[observable.Result[int]](m.Boundary())
	h := histogram.NewSamplingHistogram[int](0, maxTime, maxTime)
	mh := NewMetropolisHastings[int](prototype, p, h)

	result := mh.Sample(500, 50)
	if result.EscapeTime() < 0 || result.EscapeTime() > maxTime {
		t.Errorf("EscapeTime() = %d, want in [0, %d]", result.EscapeTime(), maxTime)
	}
	if h.Count() != 500 {
		t.Errorf("histogram recorded %d measured samples, want 500", h.Count())
	}
}

func TestMetropolisHastingsMeanEscapeTimeUniformOpenTent(t *testing.T) {
	m := maps.NewOpenTent(3, 5)
	maxTime := 20

	prototype := observable.NewEscapeTime(m, maxTime)
	p := proposal.NewUniform[observable.Result[int]](m.Boundary())
	h := histogram.NewSamplingHistogram[int](0, maxTime, maxTime)
	mh := NewMetropolisHastings[int](prototype, p, h)

	samples := 20000
	result := mh.Sample(samples, samples/10)
	_ = result

	var sum float64
	for b := 0; b < h.Bins(); b++ {
		sum += float64(b) * float64(h.At(b))
	}
	mean := sum / float64(h.Count())

	// Escape times are geometric: a fraction 1/3 + 1/5 of (0, 1) survives
	// each step, so the mean is 1/(1 - 8/15) = 15/7.
	want := 1 / (1 - (1.0/3 + 1.0/5))
	if math.Abs(mean-want)/want > 0.15 {
		t.Errorf("mean escape time = %v, want within 15%% of %v", mean, want)
	}
}

func TestProposeNeverReturnsInvalidValue(t *testing.T) {
	m := maps.NewOpenTent(3, 5)
	maxTime := 5

	prototype := observable.NewEscapeTime(m, maxTime)
	p := proposal.NewUniform[observable.Result[int]](m.Boundary())
	h := histogram.NewSamplingHistogram[int](0, maxTime, maxTime)
	mh := NewMetropolisHastings[int](prototype, p, h)

	result := prototype.Fresh()
	result.Observe(p.ProposeUniform())

	for i := 0; i < 100; i++ {
		result = mh.Propose(result)
		if h.InvalidValue(result.Value()) {
			t.Fatalf("Propose returned an invalid value %v", result.Value())
		}
	}
}

func TestRoundTripVisitsMaxBinThenReturnsToMinBin(t *testing.T) {
	m := maps.NewOpenTent(3, 5)
	maxTime := 10

	prototype := observable.NewEscapeTime(m, maxTime)
	p := proposal.NewPowerLawIsotropic[observable.Result[int]](m.Boundary(), -1, 20)
	h := histogram.NewSamplingHistogram[int](0, maxTime, 10)
	mh := NewMetropolisHastings[int](prototype, p, h)

	result := prototype.Fresh()
	result.Observe(p.ProposeUniform())

	// RoundTrip must terminate: it is driven entirely by bin visitation,
	// not a fixed step budget, so this also exercises liveness.
	result = mh.RoundTrip(result, 1, 0)
	if result == nil {
		t.Fatal("RoundTrip returned a nil result")
	}
	if got := h.Bin(result.Value()); got != 1 {
		t.Errorf("RoundTrip ended in bin %d, want min bin 1", got)
	}
}

func TestWangLandauLearningRateHalvesEveryStage(t *testing.T) {
	m := maps.NewOpenTent(3, 5)
	maxTime := 10

	prototype := observable.NewEscapeTime(m, maxTime)
	p := proposal.NewPowerLawIsotropic[observable.Result[int]](m.Boundary(), -1, 20)
	h := histogram.NewSamplingHistogram[int](0, maxTime, 10)
	wl := NewWangLandau[int](prototype, p, h)

	if wl.F() != 1 {
		t.Fatalf("initial F() = %v, want 1", wl.F())
	}

	stages := 5
	wl.Sample(stages, 200)

	want := 1.0
	for i := 0; i < stages; i++ {
		want /= 2
	}
	if wl.F() != want {
		t.Errorf("F() after %d stages = %v, want %v", stages, wl.F(), want)
	}
}

func TestWangLandauResetsHistogramCountsNotLogPi(t *testing.T) {
	m := maps.NewOpenTent(3, 5)
	maxTime := 10

	prototype := observable.NewEscapeTime(m, maxTime)
	p := proposal.NewPowerLawIsotropic[observable.Result[int]](m.Boundary(), -1, 20)
	h := histogram.NewSamplingHistogram[int](0, maxTime, 10)
	wl := NewWangLandau[int](prototype, p, h)

	wl.Sample(2, 100)
	if h.Count() != 100 {
		t.Errorf("Count() after last stage = %d, want 100 (stage reset, not cumulative)", h.Count())
	}

	var nonzero bool
	for _, lp := range h.LogPi {
		if lp != 0 {
			nonzero = true
		}
	}
	if !nonzero {
		t.Error("LogPi should have accumulated nonzero weights across stages")
	}
}
