package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bakerydir/internal/rating/domain"
)

func TestRoundRating(t *testing.T) {
	tests := []struct {
		name string
		mean float64
		want float64
	}{
		{"exact", 4.0, 4.0},
		{"one decimal", 3.3, 3.3},
		// Halfway means round away from zero, not to even.
		{"half rounds up", 3.25, 3.3},
		{"half rounds up again", 3.35, 3.4},
		{"below half rounds down", 3.24, 3.2},
		{"repeating third", 11.0 / 3.0, 3.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, domain.RoundRating(tt.mean), 1e-9)
		})
	}
}

func TestAverageScore(t *testing.T) {
	assert.InDelta(t, 4.0, domain.AverageScore([]int{5, 3, 4}), 1e-9)
	assert.InDelta(t, 3.3, domain.AverageScore([]int{5, 3, 4, 1}), 1e-9)
	assert.InDelta(t, 5.0, domain.AverageScore([]int{5}), 1e-9)
	assert.Zero(t, domain.AverageScore(nil))
}
