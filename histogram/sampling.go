package histogram

import "math"

// result is the narrow slice of observable.Result[T] a SamplingHistogram
// needs: just the measured scalar value. Declared locally (instead of
// importing package observable) so histogram has no dependency on the
// observable package, matching the original's one-way dependency
// (sampler.h depends on histogram.h, never the reverse).
type result[T any] interface {
	Value() T
}

// SamplingHistogram is a Histogram that doubles as the sampling
// engine's log-density estimator: alongside the raw bin counts, it
// holds LogPi, the additive per-bin biasing weight that both
// Metropolis-Hastings and Wang-Landau read and (in the Wang-Landau
// case) update on every measurement. Grounded on SamplingHistogram in
// sampler.h.
type SamplingHistogram[T Number] struct {
	*Histogram[T]

	// LogPi is the log of the (unnormalised) sampling distribution,
	// one entry per bin including the overflow bin.
	LogPi []float64

	exactEntropy    []float64
	hasExactEntropy bool
}

// NewSamplingHistogram builds a linear SamplingHistogram over
// [lowerBound, upperBound) with LogPi initialised to all zeros (a flat
// prior).
func NewSamplingHistogram[T Number](lowerBound, upperBound T, bins int) *SamplingHistogram[T] {
	return &SamplingHistogram[T]{
		Histogram: NewHistogram(lowerBound, upperBound, bins),
		LogPi:     make([]float64, bins+1),
	}
}

// NewLog2SamplingHistogram is the log2-binned counterpart of
// NewSamplingHistogram.
func NewLog2SamplingHistogram[T Number](lowerBound, upperBound T, bins int) *SamplingHistogram[T] {
	return &SamplingHistogram[T]{
		Histogram: NewLog2Histogram(lowerBound, upperBound, bins),
		LogPi:     make([]float64, bins+1),
	}
}

// Measure records one Markov-chain step: by default it just adds the
// current state's observable to the histogram. WangLandau additionally
// decrements LogPi for the visited bin; see engine.WangLandau.
func (s *SamplingHistogram[T]) Measure(result, resultPrime result[T], acceptance float64) {
	s.Add(result.Value())
}

// Entropy returns the estimated entropy S(E) = log(H(E)) - log(pi(E))
// of bin b, or the exact value set via SetEntropy if one was supplied.
func (s *SamplingHistogram[T]) Entropy(b int) float64 {
	if s.hasExactEntropy {
		return s.exactEntropy[b]
	}
	return math.Log(float64(s.At(b))) - s.LogPi[b]
}

// SetEntropy installs an externally computed exact entropy (e.g. from
// a reference calculation), overriding the on-line estimate Entropy
// would otherwise return.
func (s *SamplingHistogram[T]) SetEntropy(entropy []float64) {
	if len(entropy) != len(s.LogPi) {
		panic("histogram: SetEntropy length must match bins()+1")
	}
	s.exactEntropy = entropy
	s.hasExactEntropy = true
}

// ExportEntropy returns the best normalised estimator of the entropy:
// for every bin, (value(bin), entropy(bin) - C), where C is chosen by
// log-sum-exp so that sum(exp(entropy(b) - C)) == 1. Grounded on
// SamplingHistogram::export_entropy in sampler.h.
func (s *SamplingHistogram[T]) ExportEntropy() []Row {
	aMax := math.Inf(-1)
	for b := 0; b <= s.Bins(); b++ {
		if a := s.Entropy(b); a > aMax {
			aMax = a
		}
	}

	sum := 0.0
	for b := 0; b <= s.Bins(); b++ {
		sum += math.Exp(s.Entropy(b) - aMax)
	}
	c := aMax + math.Log(sum)

	rows := make([]Row, 0, s.Bins()+1)
	for b := 0; b <= s.Bins(); b++ {
		rows = append(rows, Row{X: float64(s.Value(b)), Y: s.Entropy(b) - c})
	}
	return rows
}
