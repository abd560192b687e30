package observable

import (
	"math"
	"testing"

	"github.com/alexshd/chaospp/maps"
	"github.com/alexshd/chaospp/numeric"
)

func TestEscapeTimeOpenTent(t *testing.T) {
	m := maps.NewOpenTent(3, 5)

	tests := []struct {
		name   string
		x0     float64
		wantET int
	}{
		{"fast escape", 0.334, 1},
		{"slow escape", 1e-10, 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEscapeTime(m, 30)
			e.Observe(numeric.VectorOf(tt.x0))
			if got := e.EscapeTime(); got != tt.wantET {
				t.Errorf("EscapeTime() = %d, want %d", got, tt.wantET)
			}
		})
	}
}

func TestEscapeTimePanicsOnUnsupportedMethods(t *testing.T) {
	e := NewEscapeTime(maps.NewOpenTent(3, 5), 30)
	e.Observe(numeric.VectorOf(0.5))

	for _, call := range []struct {
		name string
		fn   func()
	}{
		{"Stretch", func() { e.Stretch() }},
		{"Jacobian", func() { e.Jacobian() }},
		{"Lyapunov", func() { e.Lyapunov() }},
	} {
		t.Run(call.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s should panic on a plain EscapeTime observable", call.name)
				}
			}()
			call.fn()
		})
	}
}

func TestEscapeWithVectorFTLETent(t *testing.T) {
	m := maps.NewTent(3)
	e := NewEscapeWithVector(m, 10, numeric.VectorOf(1))
	e.Observe(numeric.VectorOf(1e-10))

	want := math.Log(3)
	if got := e.Lyapunov(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Lyapunov() = %v, want log(3) = %v", got, want)
	}
}

func TestEscapeWithVectorHonoursSuppliedTangent(t *testing.T) {
	m := maps.NewTent(3)
	tangent := numeric.VectorOf(1)
	e := NewEscapeWithVector(m, 10, tangent)

	e.Observe(numeric.VectorOf(1e-10))
	first := e.Stretch().Float64()
	e.Observe(numeric.VectorOf(1e-10))
	second := e.Stretch().Float64()

	if first != second {
		t.Errorf("repeated Observe with explicit tangent should be deterministic: %v != %v", first, second)
	}
}

func TestLyapunovFixedWindowNoEscapeCriterion(t *testing.T) {
	m := maps.NewTent(3)
	l := NewLyapunov(m, 10)
	l.Observe(numeric.VectorOf(1e-10))

	want := math.Log(3)
	if got := l.Lyapunov(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Lyapunov() = %v, want %v", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Error("EscapeTime() should panic on a Lyapunov observable")
		}
	}()
	l.EscapeTime()
}

func TestEscapeWithMatrixEigenvector(t *testing.T) {
	m := maps.NewTent(3)
	e := NewEscapeWithMatrix(m, 10)
	e.Observe(numeric.VectorOf(1e-10))

	if e.EscapeTime() == 0 {
		t.Fatal("expected a nonzero escape time")
	}
	v := e.Eigenvector()
	if len(v) != 1 {
		t.Errorf("eigenvector dimension = %d, want 1", len(v))
	}
}

func TestObserveIsDeterministicGivenExplicitState(t *testing.T) {
	m := maps.NewOpenTent(3, 5)
	e1 := NewEscapeTime(m, 30)
	e2 := NewEscapeTime(m, 30)

	e1.Observe(numeric.VectorOf(0.2))
	e2.Observe(numeric.VectorOf(0.2))

	if e1.EscapeTime() != e2.EscapeTime() {
		t.Errorf("observing the same state twice gave different escape times: %d != %d", e1.EscapeTime(), e2.EscapeTime())
	}
}
