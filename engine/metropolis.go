// Package engine provides the sampling drivers: Metropolis-Hastings
// over a biased sampling histogram, and the Wang-Landau staged
// learning scheme built on top of it. Grounded on sampler.h.
package engine

import (
	"math"

	"github.com/alexshd/chaospp/histogram"
	"github.com/alexshd/chaospp/numeric"
	"github.com/alexshd/chaospp/observable"
	"github.com/alexshd/chaospp/proposal"
)

// MetropolisHastings drives a Markov chain over an observable's value,
// biased by a SamplingHistogram's per-bin log_pi weights and corrected
// by the proposal's own log-acceptance term. Grounded on
// MetropolisHastings<Observable> in sampler.h.
type MetropolisHastings[T histogram.Number] struct {
	prototype observable.Result[T]
	proposal  proposal.Proposal[observable.Result[T]]
	histogram *histogram.SamplingHistogram[T]

	// measure is the per-step measurement hook; WangLandau replaces it
	// after construction to additionally decrement log_pi, since Go has
	// no virtual dispatch through embedding to override it otherwise.
	measure func(result, resultPrime observable.Result[T], acceptance float64)
}

// NewMetropolisHastings builds a MetropolisHastings engine. prototype
// is used only for its configuration (map, max time, initial tangent)
// via Fresh — it is never itself observed.
func NewMetropolisHastings[T histogram.Number](prototype observable.Result[T], p proposal.Proposal[observable.Result[T]], h *histogram.SamplingHistogram[T]) *MetropolisHastings[T] {
	e := &MetropolisHastings[T]{prototype: prototype, proposal: p, histogram: h}
	e.measure = func(result, resultPrime observable.Result[T], acceptance float64) {
		e.histogram.Measure(result, resultPrime, acceptance)
	}
	return e
}

// Histogram returns the engine's sampling histogram, for drivers that
// need to export it after sampling.
func (e *MetropolisHastings[T]) Histogram() *histogram.SamplingHistogram[T] { return e.histogram }

func (e *MetropolisHastings[T]) logAcceptance(result, resultPrime observable.Result[T]) float64 {
	bin := e.histogram.Bin(result.Value())
	binPrime := e.histogram.Bin(resultPrime.Value())
	delta := e.histogram.LogPi[binPrime] - e.histogram.LogPi[bin]
	return delta + e.proposal.LogAcceptance(result, resultPrime)
}

// Propose draws a candidate from result, re-drawing while the
// candidate's value falls outside the histogram's binned range.
//
// Per the spec's open question: proposal.Update is called once, on the
// first candidate, before any redraw — even when that candidate is then
// discarded for landing on an invalid value, so an adaptive proposal
// (Adaptive) can be tuned against a candidate that never enters the
// chain. The redraws themselves do not call Update. This is carried
// over unchanged from the original's `propose()`, not fixed.
func (e *MetropolisHastings[T]) Propose(result observable.Result[T]) observable.Result[T] {
	resultPrime := result.Fresh()
	resultPrime.Observe(e.proposal.Propose(result))
	e.proposal.Update(result, resultPrime)

	for e.histogram.InvalidValue(resultPrime.Value()) {
		resultPrime = result.Fresh()
		resultPrime.Observe(e.proposal.Propose(result))
	}
	return resultPrime
}

// MarkovStep performs one Metropolis step from result, returning the
// new chain state (result or resultPrime). If measure is true, the
// current state result is recorded in the sampling histogram before
// the accept/reject decision, whether or not resultPrime is then
// accepted (matching the original).
func (e *MetropolisHastings[T]) MarkovStep(result observable.Result[T], measure bool) observable.Result[T] {
	resultPrime := e.Propose(result)

	logAcc := e.logAcceptance(result, resultPrime)
	acceptance := math.Min(1, math.Exp(logAcc))

	if measure {
		e.measure(result, resultPrime, acceptance)
	}

	if numeric.Uniform().Float64() < acceptance {
		return resultPrime
	}
	return result
}

// RoundTrip runs the chain until it has visited maxBin and then
// returned to minBin, the convergence criterion Wang-Landau's
// ApproximateEntropy uses. maxBin == 0 defaults to Bins()-1. Grounded
// on MetropolisHastings::round_trip.
func (e *MetropolisHastings[T]) RoundTrip(result observable.Result[T], minBin, maxBin int) observable.Result[T] {
	if maxBin == 0 {
		maxBin = e.histogram.Bins() - 1
	}
	goingUp := false
	for {
		result = e.MarkovStep(result, true)
		bin := e.histogram.Bin(result.Value())
		if !goingUp && bin == maxBin {
			goingUp = true
		}
		if goingUp && bin == minBin {
			break
		}
	}
	return result
}

// Sample seeds the chain from a uniform state, runs convergenceSamples
// unmeasured warm-up steps, then totalSamples measured steps. Grounded
// on MetropolisHastings::sample.
func (e *MetropolisHastings[T]) Sample(totalSamples, convergenceSamples int) observable.Result[T] {
	result := e.prototype.Fresh()
	result.Observe(e.proposal.ProposeUniform())

	for i := 0; i < convergenceSamples; i++ {
		result = e.MarkovStep(result, false)
	}
	for i := 0; i < totalSamples; i++ {
		result = e.MarkovStep(result, true)
	}
	return result
}
