package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"trims and lower-cases", []string{"  SQL ", "Excel"}, []string{"sql", "excel"}},
		{"keeps duplicates", []string{"Go", "go"}, []string{"go", "go"}},
		{"keeps empty entries", []string{"", "   "}, []string{"", ""}},
		{"nil input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
