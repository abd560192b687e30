// Package observable provides the forward-iteration drivers that turn a
// map and an initial state into a scalar quantity a sampling engine can
// bias on: escape time, stretch factor / tangent-vector growth, and the
// finite-time Lyapunov exponent.
package observable

import (
	"github.com/alexshd/chaospp/numeric"
)

// Result is the contract every observable satisfies, parameterised by
// the scalar type T its Value() reports (int for escape-time-based
// observables, float64 for Lyapunov). Grounded on the Observable<T>
// template hierarchy in observable.h.
//
// Not every observable tracks every quantity below: one that doesn't
// panics rather than silently returning a meaningless zero value, so a
// misuse (e.g. wiring EscapeTime into the Anisotropic proposal, which
// needs Jacobian) fails loudly instead of producing a wrong answer.
type Result[T any] interface {
	// State returns the initial state passed to the most recent Observe
	// call.
	State() numeric.Vector

	// Value returns the observable's measured quantity: the one a
	// histogram bins on.
	Value() T

	// Observe (re)computes the observable from a fresh initial state.
	Observe(state numeric.Vector)

	// EscapeTime returns the number of iterations until exit, for
	// observables defined over open systems.
	EscapeTime() int

	// Stretch returns the norm of the accumulated tangent vector, or
	// the modulus of the dominant eigenvalue of the accumulated product
	// Jacobian.
	Stretch() numeric.Float

	// Jacobian returns the accumulated product Jacobian.
	Jacobian() numeric.Matrix

	// Lyapunov returns the finite-time Lyapunov exponent,
	// log(Stretch())/t, at whatever t the observable uses (escape time
	// or a fixed observation window).
	Lyapunov() float64

	// Fresh returns a new, unobserved instance sharing this one's
	// configuration (map, max time, initial tangent), mirroring the
	// copy-then-observe pattern every engine step performs.
	Fresh() Result[T]
}

// escapeLoop drives the shared escape-time iteration: step is called
// at least once, then repeatedly until either hasExited(point) or
// maxTime steps have elapsed. Grounded on EscapeTime::observe in
// observable.h, factored out so every escape-based observable (plain,
// with-vector, with-matrix) shares one loop instead of relying on
// virtual dispatch the way the original's subclassing does.
func escapeLoop(state numeric.Vector, maxTime int, step func(point numeric.Vector) numeric.Vector, hasExited func(numeric.Vector) bool) (point numeric.Vector, steps int) {
	point = step(state)
	steps = 1
	for !hasExited(point) && steps < maxTime {
		point = step(point)
		steps++
	}
	return point, steps
}

const unboundedMaxTime = int(^uint(0) >> 1)
