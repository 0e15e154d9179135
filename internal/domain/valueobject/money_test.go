package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsWholeCents(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"100", true},
		{"99.5", true},
		{"0.01", true},
		{"-12.34", true},
		{"0.004", false},
		{"10.001", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWholeCents(decimal.RequireFromString(tt.value)))
		})
	}
}
