package betmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeDRE(t *testing.T) {
	tests := []struct {
		name      string
		input     DREInput
		netProfit float64
	}{
		{
			name: "profitable month",
			input: DREInput{
				Revenue:       5000,
				VariableCosts: 1200,
				FixedCosts:    800,
				Investments:   10000,
				Withdrawals:   2500,
			},
			netProfit: 3000,
		},
		{
			name: "investments and withdrawals never touch the result",
			input: DREInput{
				Revenue:     100,
				Investments: 99999,
				Withdrawals: 99999,
			},
			netProfit: 100,
		},
		{
			name:      "empty month",
			input:     DREInput{},
			netProfit: 0,
		},
		{
			name: "costs can push the result negative",
			input: DREInput{
				Revenue:       300,
				VariableCosts: 250,
				FixedCosts:    200,
			},
			netProfit: -150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dre := ComposeDRE(tt.input)
			assert.InDelta(t, tt.netProfit, dre.NetProfit, 1e-9)
			assert.Equal(t, tt.input, dre.DREInput)
		})
	}
}

func TestComposeCaixa(t *testing.T) {
	caixa := ComposeCaixa(CaixaInput{
		Investments:     10000,
		Revenue:         3000,
		Withdrawals:     1500,
		OtherOutflows:   700,
		AccountDeposits: 4000,
	})

	assert.InDelta(t, 10800, caixa.Saldo, 1e-9)
	// deposits into betting accounts are informational, never netted
	assert.InDelta(t, 4000, caixa.AccountDeposits, 1e-9)
}
