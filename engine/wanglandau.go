package engine

import (
	"github.com/alexshd/chaospp/histogram"
	"github.com/alexshd/chaospp/observable"
	"github.com/alexshd/chaospp/proposal"
)

// WangLandau extends MetropolisHastings with the Wang-Landau staged
// learning-rate scheme: every measured visit to a bin decrements that
// bin's log_pi by the current learning rate f, and f is halved after
// every stage's histogram is reset. Grounded on
// WangLandau<Observable> in sampler.h.
type WangLandau[T histogram.Number] struct {
	*MetropolisHastings[T]
	f float64
}

// NewWangLandau builds a WangLandau engine, f starting at 1.
func NewWangLandau[T histogram.Number](prototype observable.Result[T], p proposal.Proposal[observable.Result[T]], h *histogram.SamplingHistogram[T]) *WangLandau[T] {
	base := NewMetropolisHastings(prototype, p, h)
	e := &WangLandau[T]{MetropolisHastings: base, f: 1}

	base.measure = func(result, resultPrime observable.Result[T], acceptance float64) {
		base.histogram.Measure(result, resultPrime, acceptance)
		bin := base.histogram.Bin(result.Value())
		base.histogram.LogPi[bin] -= e.f
	}
	return e
}

// F returns the engine's current Wang-Landau learning rate.
func (e *WangLandau[T]) F() float64 { return e.f }

// Sample runs `steps` stages of `samplesPerStage` measured Markov steps
// each, resetting the histogram's bin counts (but not log_pi) at the
// start of every stage and halving f at the end of it. Grounded on
// WangLandau::sample.
func (e *WangLandau[T]) Sample(steps, samplesPerStage int) observable.Result[T] {
	result := e.prototype.Fresh()
	result.Observe(e.proposal.ProposeUniform())

	for s := 0; s < steps; s++ {
		e.histogram.Reset()
		for i := 0; i < samplesPerStage; i++ {
			result = e.MarkovStep(result, true)
		}
		e.f /= 2
	}
	return result
}

// ApproximateEntropy runs `steps` stages of `roundTrips` round trips
// each (rather than a fixed sample count per stage), the convergence
// criterion used to approximate the entropy S(E). Grounded on
// WangLandau::approximate_entropy.
func (e *WangLandau[T]) ApproximateEntropy(steps, roundTrips int) observable.Result[T] {
	result := e.prototype.Fresh()
	result.Observe(e.proposal.ProposeUniform())

	for s := 0; s < steps; s++ {
		e.histogram.Reset()
		for t := 0; t < roundTrips; t++ {
			result = e.RoundTrip(result, 1, 0)
		}
		e.f /= 2
	}
	return result
}
