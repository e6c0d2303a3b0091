package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_Boundaries(t *testing.T) {
	tests := []struct {
		score  float64
		want   Tier
		wantOK bool
	}{
		{1.0, TierNow, true},
		{0.85, TierNow, true},
		{0.84999, TierNext, true},
		{0.60, TierNext, true},
		{0.59999, "", false},
		{0, "", false},
	}

	for _, tt := range tests {
		got, ok := Categorize(tt.score)
		assert.Equal(t, tt.wantOK, ok, "score %v", tt.score)
		assert.Equal(t, tt.want, got, "score %v", tt.score)
	}
}

func TestThresholds_Validate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())
	assert.Error(t, Thresholds{Now: 0.5, Next: 0.7}.Validate())
	assert.Error(t, Thresholds{Now: 1.2, Next: 0.7}.Validate())
	assert.Error(t, Thresholds{Now: 0.8, Next: -0.1}.Validate())
}
