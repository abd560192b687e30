// Package mapping declares the Map contract every concrete iterated map
// (package maps) satisfies, and that observables, proposals and engines
// are written against.
package mapping

import (
	"github.com/alexshd/chaospp/domain"
	"github.com/alexshd/chaospp/numeric"
)

// Map is a discrete dynamical system T: Omega -> Omega, together with
// the bounded region Omega it is defined over. Grounded on the Map
// abstract base class in map.h.
//
// Implementations are expected to be stateless and safe for concurrent
// read-only use; all per-trajectory state lives in the observable or
// caller, never in the Map itself.
type Map interface {
	// D returns the dimension of the map's state space.
	D() int

	// Name identifies the map, used for tabular export file names
	// ("histogram_<name>", "entropy_<name>").
	Name() string

	// Boundary returns the bounded region Omega the map is confined to.
	Boundary() domain.Box

	// T applies one iteration of the map to x, returning the new state.
	// Implementations must not mutate x.
	T(x numeric.Vector) numeric.Vector

	// Jacobian returns d T / d x evaluated at x, used by observables
	// that track tangent vectors or the full product Jacobian
	// (EscapeWithVector, EscapeWithMatrix, Lyapunov).
	Jacobian(x numeric.Vector) numeric.Matrix

	// HasExited reports whether x has left Omega. The default
	// definition (outside Boundary()) is domain.Box.HasExited; some
	// maps override this with a map-specific escape criterion (e.g.
	// Tent's trapdoor x < 0.4).
	HasExited(x numeric.Vector) bool

	// ApplyBoundaryConditions folds x back into Omega by periodic wrap after
	// an iteration that otherwise stays inside the map's admissible
	// region (periodic angles, etc). Maps with no such folding (most of
	// them) return x unchanged.
	ApplyBoundaryConditions(x numeric.Vector) numeric.Vector
}

// DT composes T and Jacobian for tangent-vector propagation:
// returns (T(x), Jacobian(x)*v), the operation EscapeWithVector's
// per-step update performs. Grounded on Map::dT in map.h.
func DT(m Map, x, v numeric.Vector) (numeric.Vector, numeric.Vector) {
	j := m.Jacobian(x)
	return m.T(x), j.MulVector(v)
}
