package betmath

import (
	"testing"

	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProfit(t *testing.T) {
	tests := []struct {
		name     string
		stake    float64
		odds     float64
		result   domain.BetResult
		expected float64
	}{
		{
			name:     "green pays stake times odds minus one",
			stake:    100,
			odds:     2.0,
			result:   domain.ResultGreen,
			expected: 100,
		},
		{
			name:     "green with fractional odds",
			stake:    50,
			odds:     1.85,
			result:   domain.ResultGreen,
			expected: 42.5,
		},
		{
			name:     "red loses the full stake",
			stake:    50,
			odds:     3.0,
			result:   domain.ResultRed,
			expected: -50,
		},
		{
			name:     "void returns zero regardless of odds",
			stake:    200,
			odds:     10.0,
			result:   domain.ResultVoid,
			expected: 0,
		},
		{
			name:     "meio green pays half of a green",
			stake:    100,
			odds:     2.0,
			result:   domain.ResultHalfGreen,
			expected: 50,
		},
		{
			name:     "meio red loses half the stake",
			stake:    100,
			odds:     2.0,
			result:   domain.ResultHalfRed,
			expected: -50,
		},
		{
			name:     "pendente is provisionally zero",
			stake:    500,
			odds:     1.5,
			result:   domain.ResultPending,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Profit(tt.stake, tt.odds, tt.result), 1e-9)
		})
	}
}

func TestProfitHalfVariants(t *testing.T) {
	stakes := []float64{1, 10, 33.33, 250}
	odds := []float64{1.0, 1.5, 2.07, 9.99}

	for _, stake := range stakes {
		for _, o := range odds {
			full := Profit(stake, o, domain.ResultGreen)
			half := Profit(stake, o, domain.ResultHalfGreen)
			assert.InDelta(t, full/2, half, 1e-9)

			assert.InDelta(t, -stake, Profit(stake, o, domain.ResultRed), 1e-9)
			assert.InDelta(t, -stake/2, Profit(stake, o, domain.ResultHalfRed), 1e-9)
		}
	}
}
