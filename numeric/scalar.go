// Package numeric provides the arbitrary-precision scalar, dense vector
// and matrix types, and the random source the rest of chaospp is built
// on.
package numeric

import (
	"math"
	"math/big"
)

// defaultPrec is the process-wide mantissa precision, in bits, used by
// every Float created with New or Zero unless a caller overrides it
// explicitly (NewPrec). It is set once at startup by SetDefaultPrecision
// and never touched again; see the doc on SetDefaultPrecision.
var defaultPrec uint = 64

// SetDefaultPrecision sets the process-wide default mantissa precision,
// in bits, for every Float subsequently constructed with New or Zero.
// Recognised values in the shipped drivers are 64, 128, 256
// and 512, but any value accepted by math/big.Float is valid.
//
// Call this once, before any sampling call. Changing it mid-run
// invalidates the semantics of previously computed Floats: two Floats
// built under different precisions are not comparable in any meaningful
// sense. This is intentionally not exposed by engine, proposal, or
// observable — it is a driver-level concern.
func SetDefaultPrecision(bits uint) {
	defaultPrec = bits
}

// DefaultPrecision returns the current process-wide default precision.
func DefaultPrecision() uint {
	return defaultPrec
}

// Float is an arbitrary-precision real number. It wraps math/big.Float
// for the core arithmetic (Add, Sub, Mul, Quo, Sqrt, comparisons), since
// no arbitrary-precision binding appears anywhere in the example
// corpus. Transcendental functions round-trip through float64: the
// input is narrowed, math.* computes the result, and the result is
// re-expanded to a Float at the receiver's precision. This loses
// precision relative to a true mpfr-style implementation but keeps the
// bulk of the trajectory arithmetic (additions and multiplications
// inside map iteration, where error actually compounds over escape-time
// scale iterations) at full configured precision.
type Float struct {
	v *big.Float
}

// New returns a Float holding x, at the default precision.
func New(x float64) Float {
	return Float{v: new(big.Float).SetPrec(defaultPrec).SetFloat64(x)}
}

// NewPrec returns a Float holding x at an explicit precision, bypassing
// the process-wide default. Used by code that must compose values
// built under different SetDefaultPrecision regimes (none of chaospp's
// own code does this; it exists for callers embedding the numeric
// package directly).
func NewPrec(x float64, prec uint) Float {
	return Float{v: new(big.Float).SetPrec(prec).SetFloat64(x)}
}

// Zero returns the additive identity at the default precision.
func Zero() Float {
	return New(0)
}

// Float64 narrows f to the nearest float64, for reporting.
func (f Float) Float64() float64 {
	if f.v == nil {
		return 0
	}
	v, _ := f.v.Float64()
	return v
}

// Prec returns f's mantissa precision in bits.
func (f Float) Prec() uint {
	if f.v == nil {
		return defaultPrec
	}
	return f.v.Prec()
}

func (f Float) big() *big.Float {
	if f.v == nil {
		return new(big.Float).SetPrec(defaultPrec)
	}
	return f.v
}

// Add returns f + g.
func (f Float) Add(g Float) Float {
	return Float{v: new(big.Float).SetPrec(f.prec(g)).Add(f.big(), g.big())}
}

// Sub returns f - g.
func (f Float) Sub(g Float) Float {
	return Float{v: new(big.Float).SetPrec(f.prec(g)).Sub(f.big(), g.big())}
}

// Mul returns f * g.
func (f Float) Mul(g Float) Float {
	return Float{v: new(big.Float).SetPrec(f.prec(g)).Mul(f.big(), g.big())}
}

// Quo returns f / g.
func (f Float) Quo(g Float) Float {
	return Float{v: new(big.Float).SetPrec(f.prec(g)).Quo(f.big(), g.big())}
}

// Neg returns -f.
func (f Float) Neg() Float {
	return Float{v: new(big.Float).SetPrec(f.Prec()).Neg(f.big())}
}

// Abs returns |f|.
func (f Float) Abs() Float {
	return Float{v: new(big.Float).SetPrec(f.Prec()).Abs(f.big())}
}

// Sqrt returns sqrt(f).
func (f Float) Sqrt() Float {
	return Float{v: new(big.Float).SetPrec(f.Prec()).Sqrt(f.big())}
}

// Cmp compares f and g, as (*big.Float).Cmp does: -1, 0 or 1.
func (f Float) Cmp(g Float) int {
	return f.big().Cmp(g.big())
}

// Sign returns -1, 0 or 1 according to whether f is negative, zero, or
// positive.
func (f Float) Sign() int {
	return f.big().Sign()
}

// Less reports whether f < g.
func (f Float) Less(g Float) bool { return f.Cmp(g) < 0 }

// prec picks the wider precision of f and g, so mixed-precision
// arithmetic never silently truncates.
func (f Float) prec(g Float) uint {
	p := f.Prec()
	if q := g.Prec(); q > p {
		p = q
	}
	return p
}

func (f Float) transcendental(fn func(float64) float64) Float {
	return NewPrec(fn(f.Float64()), f.Prec())
}

// Exp returns e^f.
func (f Float) Exp() Float { return f.transcendental(math.Exp) }

// Log returns the natural logarithm of f.
func (f Float) Log() Float { return f.transcendental(math.Log) }

// Sin returns sin(f).
func (f Float) Sin() Float { return f.transcendental(math.Sin) }

// Cos returns cos(f).
func (f Float) Cos() Float { return f.transcendental(math.Cos) }

// Pow returns f^y.
func (f Float) Pow(y Float) Float {
	return NewPrec(math.Pow(f.Float64(), y.Float64()), f.prec(y))
}

// Pi returns math.Pi as a Float at the current default precision; only
// its first 53 bits are accurate, since it comes from the float64
// constant. It is rebuilt on every call, so observables and maps that
// call it rather than cache it always get the current
// SetDefaultPrecision regime.
func Pi() Float {
	return NewPrec(math.Pi, defaultPrec)
}
