// Package histogram provides the binned discretisation of an
// observable's value, the optional log-transform used to spread
// heavy-tailed observables over linear bins, and the sampling
// histogram that doubles as the engine's log-density estimator.
package histogram

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types a Histogram can bin: every
// observable value type chaospp produces (escape time as int,
// Lyapunov exponent as float64).
type Number interface {
	constraints.Integer | constraints.Float
}

// Histogram bins values of type T into a fixed number of equal-width
// bins over [lowerBound, upperBound), plus one overflow bin for values
// at or above upperBound (values at or below lowerBound fall in bin
// 0). An optional transform/inverseTransform pair (identity by
// default) is applied to both bounds and every incoming value before
// binning, e.g. to spread escape times over a log scale. Grounded on
// histogram::Histogram<T> in histogram.h.
type Histogram[T Number] struct {
	// lowerBound and upperBound are stored already in transformed
	// space, matching the original's `_lowerBound(v(lowerBound))`.
	lowerBound float64
	upperBound float64
	bins       int
	counts     []int
	count      int

	transform        func(float64) float64
	inverseTransform func(float64) float64
}

// NewHistogram builds a linear Histogram over [lowerBound, upperBound)
// with the given number of bins.
func NewHistogram[T Number](lowerBound, upperBound T, bins int) *Histogram[T] {
	return newHistogram[T](float64(lowerBound), float64(upperBound), bins, identity, identity)
}

// NewLog2Histogram builds a Histogram whose binning operates in log2
// space: values are compared and binned by log2(value), and Value
// inverts back via 2^x. Grounded on histogram::Log2Histogram<T> in
// histogram.h.
func NewLog2Histogram[T Number](lowerBound, upperBound T, bins int) *Histogram[T] {
	return newHistogram[T](math.Log2(float64(lowerBound)), math.Log2(float64(upperBound)), bins, math.Log2, math.Exp2)
}

func newHistogram[T Number](lowerBound, upperBound float64, bins int, transform, inverseTransform func(float64) float64) *Histogram[T] {
	h := &Histogram[T]{
		lowerBound:       lowerBound,
		upperBound:       upperBound,
		bins:             bins,
		transform:        transform,
		inverseTransform: inverseTransform,
	}
	h.Reset()
	return h
}

func identity(x float64) float64 { return x }

// Bins returns the number of regular bins (bin index `Bins()` is the
// overflow bin).
func (h *Histogram[T]) Bins() int { return h.bins }

// Count returns the total number of samples added since the last
// Reset.
func (h *Histogram[T]) Count() int { return h.count }

// At returns the raw count in bin idx (0..Bins() inclusive).
func (h *Histogram[T]) At(idx int) int {
	return h.counts[idx]
}

func (h *Histogram[T]) v(value T) float64 {
	return h.transform(float64(value))
}

func (h *Histogram[T]) iv(value float64) T {
	return T(h.inverseTransform(value))
}

// InvalidValue reports whether value falls outside the histogram's
// binned range entirely (at or below the lower bound, or at or above
// the upper bound): such values should never be fed to a sampling
// engine, since no bin of the sampling distribution biases them.
func (h *Histogram[T]) InvalidValue(value T) bool {
	v := h.v(value)
	return v <= h.lowerBound || v >= h.upperBound
}

// GetInvalidValue returns a sentinel below the histogram's range, used
// by callers that need a placeholder "this observable never
// terminated" value.
func (h *Histogram[T]) GetInvalidValue() T {
	return h.iv(h.lowerBound - 1)
}

// Bin returns the bin index value falls in, clamped to [0, Bins()].
func (h *Histogram[T]) Bin(value T) int {
	v := h.v(value)
	if v <= h.lowerBound {
		return 0
	}
	if v >= h.upperBound {
		return h.bins
	}
	bin := int((v - h.lowerBound) * float64(h.bins) / (h.upperBound - h.lowerBound))
	if bin >= h.bins {
		bin = h.bins - 1
	}
	return bin
}

// H returns the width of a single bin, in transformed space.
func (h *Histogram[T]) H() float64 {
	return (h.upperBound - h.lowerBound) / float64(h.bins)
}

// Value inverts Bin: returns the original-scale value at bin's left
// edge in transformed space.
func (h *Histogram[T]) Value(bin int) T {
	if bin >= h.bins {
		return h.iv(h.upperBound)
	}
	if bin <= 0 {
		return h.iv(h.lowerBound)
	}
	return h.iv(h.lowerBound + (h.upperBound-h.lowerBound)*float64(bin)/float64(h.bins))
}

// Reset clears every bin and the sample count.
func (h *Histogram[T]) Reset() {
	h.counts = make([]int, h.bins+1)
	h.count = 0
}

// Add records one sample of value.
func (h *Histogram[T]) Add(value T) {
	h.counts[h.Bin(value)]++
	h.count++
}

// Row is one (x, density) pair of an exported histogram, where x is
// either the bin's value (ExportPretty) or its raw index
// (ExportHistogram).
type Row struct {
	X, Y float64
}

// ExportPretty returns, for every non-empty bin, (value(bin), count/total).
func (h *Histogram[T]) ExportPretty() []Row {
	var rows []Row
	for b := 0; b <= h.bins; b++ {
		if h.counts[b] > 0 {
			rows = append(rows, Row{X: float64(h.Value(b)), Y: float64(h.counts[b]) / float64(h.count)})
		}
	}
	return rows
}

// ExportHistogram returns, for every non-empty bin, (bin index, count/total).
func (h *Histogram[T]) ExportHistogram() []Row {
	var rows []Row
	for b := 0; b <= h.bins; b++ {
		if h.counts[b] > 0 {
			rows = append(rows, Row{X: float64(b), Y: float64(h.counts[b]) / float64(h.count)})
		}
	}
	return rows
}

// String renders a Histogram's shape for debugging.
func (h *Histogram[T]) String() string {
	return fmt.Sprintf("Histogram{bins=%d count=%d range=[%v,%v)}", h.bins, h.count, h.lowerBound, h.upperBound)
}
