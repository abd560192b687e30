package mapping_test

import (
	"testing"

	"github.com/alexshd/chaospp/mapping"
	"github.com/alexshd/chaospp/maps"
	"github.com/alexshd/chaospp/numeric"
)

func TestDTComposesIterationAndTangentPropagation(t *testing.T) {
	m := maps.NewTent(3)
	x := numeric.VectorOf(0.25)
	v := numeric.VectorOf(1)

	next, tangent := mapping.DT(m, x, v)

	wantNext := m.T(x)
	if next[0].Float64() != wantNext[0].Float64() {
		t.Errorf("DT next = %v, want %v", next[0].Float64(), wantNext[0].Float64())
	}

	wantTangent := m.Jacobian(x).MulVector(v)
	if tangent[0].Float64() != wantTangent[0].Float64() {
		t.Errorf("DT tangent = %v, want %v", tangent[0].Float64(), wantTangent[0].Float64())
	}
}
