package maps

import (
	"math"
	"testing"

	"github.com/alexshd/chaospp/numeric"
)

func approxEqual(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("got %v, want %v (tol %v)", got, want, tol)
	}
}

func TestTentIteration(t *testing.T) {
	m := NewTent(3)
	x := numeric.VectorOf(0.5)

	y := m.T(x)
	approxEqual(t, y[0].Float64(), 0.75, 1e-12)

	j := m.Jacobian(x)
	approxEqual(t, j.At(0, 0).Float64(), -1.5, 1e-12)
}

func TestManevilleIteration(t *testing.T) {
	m := NewManneville(2)
	x := numeric.VectorOf(0.5)

	y := m.T(x)
	approxEqual(t, y[0].Float64(), 0.75, 1e-12)

	j := m.Jacobian(x)
	approxEqual(t, j.At(0, 0).Float64(), 2, 1e-12)
}

func TestOpenTentEscapeTimes(t *testing.T) {
	tests := []struct {
		name   string
		x0     float64
		maxT   int
		wantET int
	}{
		{"fast escape", 0.334, 30, 1},
		{"slow escape", 1e-10, 30, 21},
	}

	m := NewOpenTent(3, 5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := numeric.VectorOf(tt.x0)
			steps := 0
			for !m.HasExited(x) && steps < tt.maxT {
				x = m.T(x)
				steps++
			}
			if steps != tt.wantET {
				t.Errorf("escape time = %d, want %d", steps, tt.wantET)
			}
		})
	}
}

func TestNCoupledHenonIteration(t *testing.T) {
	m := NewNCoupledHenon(6, 3, 5, 0.3, 0.4)
	x := numeric.VectorOf(0.11, 0.11, 0.11, 0.11, 0.11, 0.11)

	y := m.T(x)
	want := []float64{3.0209, 4.0209, 5.0209, 0.11, 0.11, 0.11}
	for i := range want {
		approxEqual(t, y[i].Float64(), want[i], 1e-4)
	}
}

func TestTentBoundaryAndExit(t *testing.T) {
	m := NewTent(3)
	if !m.HasExited(numeric.VectorOf(0.3)) {
		t.Error("x=0.3 should have exited the trapdoor region (< 0.4)")
	}
	if m.HasExited(numeric.VectorOf(0.5)) {
		t.Error("x=0.5 should not have exited")
	}
}

func TestOpenTentHasExitedOutsideUnitInterval(t *testing.T) {
	m := NewOpenTent(3, 5)
	if m.HasExited(numeric.VectorOf(0.5)) {
		t.Error("x=0.5 is inside (0,1), should not have exited")
	}
	if !m.HasExited(numeric.VectorOf(-0.1)) {
		t.Error("x=-0.1 is outside (0,1), should have exited")
	}
	if !m.HasExited(numeric.VectorOf(1.1)) {
		t.Error("x=1.1 is outside (0,1), should have exited")
	}
}

func TestStandardMapWraps(t *testing.T) {
	m := NewStandard(1.0)
	x := numeric.VectorOf(0.99, 0.99)
	y := m.T(x)
	for i, c := range y {
		v := c.Float64()
		if v < 0 || v >= 1 {
			t.Errorf("component %d = %v, want in [0,1)", i, v)
		}
	}
}
