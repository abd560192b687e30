package domain

import (
	"testing"

	"github.com/alexshd/chaospp/numeric"
)

func TestBoxContains(t *testing.T) {
	b := Square(2, 0, 1)

	tests := []struct {
		name string
		x    numeric.Vector
		want bool
	}{
		{"inside", numeric.VectorOf(0.5, 0.5), true},
		{"on low edge", numeric.VectorOf(0, 0.5), true},
		{"on high edge excluded", numeric.VectorOf(1, 0.5), false},
		{"negative", numeric.VectorOf(-0.1, 0.5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.x); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.x, got, tt.want)
			}
			if got := b.HasExited(tt.x); got == tt.want {
				t.Errorf("HasExited(%v) = %v, want %v", tt.x, got, !tt.want)
			}
		})
	}
}

func TestBoxWrapFoldsIntoRange(t *testing.T) {
	b := Square(1, 0, 1)

	tests := []struct {
		x, want float64
	}{
		{1.3, 0.3},
		{-0.3, 0.7},
		{2.999999999, 0.999999999},
	}
	for _, tt := range tests {
		got := b.Wrap(numeric.VectorOf(tt.x))[0].Float64()
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Wrap(%v) = %v, want %v", tt.x, got, tt.want)
		}
		if !b.Contains(numeric.VectorOf(got)) {
			t.Errorf("Wrap(%v) = %v is not back inside the box", tt.x, got)
		}
	}
}
