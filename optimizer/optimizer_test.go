package optimizer

import (
	"testing"

	"github.com/alexshd/chaospp/maps"
)

func TestPowerLawOptimizerFindsLongerEscapeTimes(t *testing.T) {
	m := maps.NewOpenTent(3, 5)
	maxTime := 15

	opt := NewPowerLaw(m, maxTime, -1, 20)
	result := opt.GetPoint(200)

	if result.EscapeTime() <= 0 {
		t.Errorf("GetPoint() found escape time %d, want > 0", result.EscapeTime())
	}
	if result.EscapeTime() > maxTime {
		t.Errorf("GetPoint() escape time %d exceeds maxTime %d", result.EscapeTime(), maxTime)
	}
}

func TestAdaptiveOptimizerRespectsMaxTimeStoppingRule(t *testing.T) {
	m := maps.NewOpenTent(3, 5)
	maxTime := 10

	opt := NewAdaptive(m, maxTime)
	result := opt.GetPoint(0) // unbounded trials, relies solely on maxTime

	if result.EscapeTime() > maxTime {
		t.Errorf("escape time %d exceeds maxTime %d", result.EscapeTime(), maxTime)
	}
}

func TestIsotropicOptimizerUsesEscapeWithVector(t *testing.T) {
	m := maps.NewOpenTent(3, 5)
	maxTime := 10

	opt := NewIsotropic(m, maxTime)
	result := opt.GetPoint(100)

	// EscapeWithVector tracks Stretch(); a plain EscapeTime would panic.
	if result.Stretch().Float64() < 0 {
		t.Error("Stretch() should be a non-negative norm")
	}
}

func TestAnisotropicOptimizerUsesEscapeWithMatrix(t *testing.T) {
	m := maps.NewOpenTent(3, 5)
	maxTime := 10

	opt := NewAnisotropic(m, maxTime)
	result := opt.GetPoint(100)

	// EscapeWithMatrix tracks Jacobian(); a plain EscapeTime would panic.
	j := result.Jacobian()
	if j.Rows() != 1 || j.Cols() != 1 {
		t.Errorf("Jacobian() shape = %dx%d, want 1x1", j.Rows(), j.Cols())
	}
}
