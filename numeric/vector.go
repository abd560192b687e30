package numeric

// Vector is a dynamically sized dense vector of Float. It is the
// in-state/tangent-vector representation used throughout maps,
// observables and proposals. Grounded on Eigen::Matrix<Float,Dynamic,1>
// ("Vector") in auxiliar.h.
type Vector []Float

// NewVector returns a zero vector of length n.
func NewVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = Zero()
	}
	return v
}

// VectorOf builds a Vector from float64 components, at the current
// default precision. Convenience for tests and drivers.
func VectorOf(xs ...float64) Vector {
	v := make(Vector, len(xs))
	for i, x := range xs {
		v[i] = New(x)
	}
	return v
}

// Clone returns a deep copy of v. Vector is a slice, so plain assignment
// aliases the backing array; every place that needs an independent copy
// (a map's T, a proposal's perturbed state, a reused initial tangent)
// must use this instead.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Sub returns v - w, element-wise.
func (v Vector) Sub(w Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Sub(w[i])
	}
	return out
}

// Add returns v + w, element-wise.
func (v Vector) Add(w Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Add(w[i])
	}
	return out
}

// Scale returns v scaled by s.
func (v Vector) Scale(s Float) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Mul(s)
	}
	return out
}

// Norm returns the Euclidean norm of v, aux::get_norm in auxiliar.h.
func (v Vector) Norm() Float {
	sum := Zero()
	for _, x := range v {
		sum = sum.Add(x.Mul(x))
	}
	return sum.Sqrt()
}

// Normalized returns v scaled to unit norm.
func (v Vector) Normalized() Vector {
	n := v.Norm()
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Quo(n)
	}
	return out
}

// Float64s narrows every component to float64, for interop with
// float64-only libraries (gonum) and for reporting.
func (v Vector) Float64s() []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x.Float64()
	}
	return out
}

// VectorFromFloat64s lifts a []float64 into a Vector at the default
// precision.
func VectorFromFloat64s(xs []float64) Vector {
	out := make(Vector, len(xs))
	for i, x := range xs {
		out[i] = New(x)
	}
	return out
}
