// Package optimizer implements a hill-climbing search for long-lived
// (high escape-time) initial conditions, driven by the same proposal
// kernels the sampling engine uses. Grounded on optimizer.h.
package optimizer

import (
	"github.com/alexshd/chaospp/histogram"
	"github.com/alexshd/chaospp/numeric"
	"github.com/alexshd/chaospp/observable"
	"github.com/alexshd/chaospp/proposal"
)

// Profiler observes every trial an Optimizer performs, independent of
// whether it was accepted; a profiler that records step-size or
// acceptance statistics over the search is wired in via AddProfiler.
// Grounded on optimizer::Profiler.
type Profiler[T histogram.Number] interface {
	Start(result observable.Result[T])
	Measure(result, resultPrime observable.Result[T], delta numeric.Float, acceptance float64)
	ExportAll(directory, fileName string) error
}

// Optimizer performs a greedy hill-climb: starting from a uniformly
// drawn point, it repeatedly proposes a candidate and keeps it
// whenever its escape time is at least as large as the current best,
// resetting its trial budget whenever the candidate strictly improves.
// It stops once the escape time reaches maxTime or, if maxTrials > 0,
// once maxTrials consecutive non-improving trials have elapsed.
// Grounded on optimizer::Optimizer<Observable>.
type Optimizer[T histogram.Number] struct {
	prototype observable.Result[T]
	proposal  proposal.Proposal[observable.Result[T]]
	maxTime   int

	profilers []Profiler[T]
}

// NewOptimizer builds an Optimizer. prototype supplies the
// configuration (map, max time) every trial observable is Fresh()'d
// from.
func NewOptimizer[T histogram.Number](prototype observable.Result[T], p proposal.Proposal[observable.Result[T]], maxTime int) *Optimizer[T] {
	return &Optimizer[T]{prototype: prototype, proposal: p, maxTime: maxTime}
}

// AddProfiler registers a profiler; its Measure is called on every
// trial for the remainder of the search.
func (o *Optimizer[T]) AddProfiler(p Profiler[T]) {
	o.profilers = append(o.profilers, p)
}

func (o *Optimizer[T]) startProfilers(result observable.Result[T]) {
	for _, p := range o.profilers {
		p.Start(result)
	}
}

func (o *Optimizer[T]) measure(result, resultPrime observable.Result[T], delta numeric.Float) {
	for _, p := range o.profilers {
		p.Measure(result, resultPrime, delta, 1)
	}
}

// GetPoint runs the hill-climb and returns the best point found.
// maxTrials == 0 means unbounded (only the maxTime stopping rule
// applies). Grounded on optimizer::Optimizer::get_point.
func (o *Optimizer[T]) GetPoint(maxTrials int) observable.Result[T] {
	result := o.prototype.Fresh()
	result.Observe(o.proposal.ProposeUniform())
	o.startProfilers(result)

	trial := 0
	for result.EscapeTime() < o.maxTime && (maxTrials == 0 || trial < maxTrials) {
		trial++

		resultPrime := o.prototype.Fresh()
		resultPrime.Observe(o.proposal.Propose(result))

		o.measure(result, resultPrime, o.proposal.Delta())
		o.proposal.Update(result, resultPrime)

		if resultPrime.EscapeTime() > result.EscapeTime() {
			trial = 0
		}
		if resultPrime.EscapeTime() >= result.EscapeTime() {
			result = resultPrime
		}
	}
	return result
}
