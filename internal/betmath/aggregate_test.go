package betmath

import (
	"math"
	"testing"

	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/stretchr/testify/assert"
)

func bet(stake, odds float64, result domain.BetResult) domain.Bet {
	return domain.Bet{
		Stake:  stake,
		Odds:   odds,
		Result: result,
		Profit: Profit(stake, odds, result),
	}
}

func TestCompute(t *testing.T) {
	ev := 4.2

	tests := []struct {
		name     string
		bets     []domain.Bet
		expected Stats
	}{
		{
			name:     "empty set is all zeros",
			bets:     nil,
			expected: Stats{},
		},
		{
			name: "one green one red",
			bets: []domain.Bet{
				bet(100, 2.0, domain.ResultGreen),
				bet(50, 3.0, domain.ResultRed),
			},
			expected: Stats{
				TotalVolume: 150,
				TotalProfit: 50,
				TotalBets:   2,
				WinRate:     50,
				ROI:         100.0 / 3.0,
			},
		},
		{
			name: "pendente counts in volume but never as a win",
			bets: []domain.Bet{
				bet(100, 2.0, domain.ResultPending),
				bet(100, 2.0, domain.ResultVoid),
			},
			expected: Stats{
				TotalVolume: 200,
				TotalBets:   2,
			},
		},
		{
			name: "expected value treats nil as zero",
			bets: []domain.Bet{
				{Stake: 10, Result: domain.ResultVoid, ExpectedValue: &ev},
				{Stake: 10, Result: domain.ResultVoid},
			},
			expected: Stats{
				TotalVolume:   20,
				TotalBets:     2,
				ExpectedValue: 4.2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.bets)
			assert.InDelta(t, tt.expected.TotalVolume, got.TotalVolume, 1e-9)
			assert.InDelta(t, tt.expected.TotalProfit, got.TotalProfit, 1e-9)
			assert.Equal(t, tt.expected.TotalBets, got.TotalBets)
			assert.InDelta(t, tt.expected.WinRate, got.WinRate, 1e-9)
			assert.InDelta(t, tt.expected.ExpectedValue, got.ExpectedValue, 1e-9)
			assert.InDelta(t, tt.expected.ROI, got.ROI, 1e-9)

			assert.False(t, math.IsNaN(got.WinRate))
			assert.False(t, math.IsNaN(got.ROI))
			assert.False(t, math.IsInf(got.ROI, 0))
		})
	}
}

func TestComputeWinRateCountsOnlyGreens(t *testing.T) {
	bets := []domain.Bet{
		bet(10, 2, domain.ResultGreen),
		bet(10, 2, domain.ResultHalfGreen),
		bet(10, 2, domain.ResultRed),
		bet(10, 2, domain.ResultHalfRed),
		bet(10, 2, domain.ResultVoid),
		bet(10, 2, domain.ResultPending),
	}

	got := Compute(bets)
	assert.InDelta(t, 2.0/6.0*100, got.WinRate, 1e-9)
}

func TestBySoftware(t *testing.T) {
	bets := []domain.Bet{
		{Stake: 10, Profit: 5, Result: domain.ResultGreen, SoftwareTool: "Trademate"},
		{Stake: 10, Profit: -10, Result: domain.ResultRed, SoftwareTool: "BetBurger"},
		{Stake: 10, Profit: 2, Result: domain.ResultGreen, SoftwareTool: ""},
		{Stake: 10, Profit: 1, Result: domain.ResultGreen, SoftwareTool: ""},
		{Stake: 10, Profit: 3, Result: domain.ResultGreen, SoftwareTool: "BetBurger"},
	}

	groups := BySoftware(bets)

	labels := make([]string, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.Label)
	}
	assert.Equal(t, []string{"BetBurger", "Outros", "Trademate"}, labels)

	assert.Equal(t, 2, groups[0].TotalBets)
	assert.InDelta(t, -7, groups[0].TotalProfit, 1e-9)

	assert.Equal(t, 2, groups[1].TotalBets)
	assert.InDelta(t, 3, groups[1].TotalProfit, 1e-9)
}

func TestByOperator(t *testing.T) {
	bets := []domain.Bet{
		{OperatorID: "op-1", Stake: 100, Profit: 10},
		{OperatorID: "op-2", Stake: 100, Profit: 80},
		{OperatorID: "op-1", Stake: 100, Profit: 30},
		{OperatorID: "op-gone", Stake: 100, Profit: -5},
	}
	names := map[string]string{"op-1": "Ana", "op-2": "Bruno"}

	groups := ByOperator(bets, names)

	assert.Len(t, groups, 3)
	assert.Equal(t, "Bruno", groups[0].Label)
	assert.Equal(t, "Ana", groups[1].Label)
	assert.Equal(t, BucketUnknown, groups[2].Label)
	assert.InDelta(t, 40, groups[1].TotalProfit, 1e-9)
}

func TestByOperatorCollapsesOrphans(t *testing.T) {
	bets := []domain.Bet{
		{OperatorID: "op-1", Stake: 100, Profit: 10},
		{OperatorID: "op-gone", Stake: 100, Profit: -5},
		{OperatorID: "op-also-gone", Stake: 100, Profit: -15},
	}
	names := map[string]string{"op-1": "Ana"}

	groups := ByOperator(bets, names)

	assert.Len(t, groups, 2)
	assert.Equal(t, BucketUnknown, groups[1].Key)
	assert.Equal(t, BucketUnknown, groups[1].Label)
	assert.Equal(t, 2, groups[1].TotalBets)
	assert.InDelta(t, -20, groups[1].TotalProfit, 1e-9)
}

func TestByBookmakerCollapsesOrphans(t *testing.T) {
	bets := []domain.Bet{
		{BookmakerID: "bm-1", Stake: 50, Profit: 25},
		{BookmakerID: "bm-gone", Stake: 50, Profit: 5},
		{BookmakerID: "bm-also-gone", Stake: 50, Profit: 10},
	}
	names := map[string]string{"bm-1": "Bet365"}

	groups := ByBookmaker(bets, names)

	assert.Len(t, groups, 2)
	assert.Equal(t, BucketUnknown, groups[1].Key)
	assert.Equal(t, 2, groups[1].TotalBets)
	assert.InDelta(t, 15, groups[1].TotalProfit, 1e-9)
}

func TestBySportOrdersByProfitDesc(t *testing.T) {
	bets := []domain.Bet{
		{Sport: "Futebol", Stake: 10, Profit: -3},
		{Sport: "Basquete", Stake: 10, Profit: 20},
		{Sport: "Tênis", Stake: 10, Profit: 5},
	}

	groups := BySport(bets)

	assert.Equal(t, "Basquete", groups[0].Label)
	assert.Equal(t, "Tênis", groups[1].Label)
	assert.Equal(t, "Futebol", groups[2].Label)
}

func TestTransactionSums(t *testing.T) {
	txs := []domain.Transaction{
		{Type: domain.TxContribution, Amount: 1000},
		{Type: domain.TxWithdrawal, Amount: -200},
		{Type: domain.TxOperatingCost, Category: "Recorrente", Amount: -150},
		{Type: domain.TxOperatingCost, Category: "Proxy", Amount: -30},
		{Type: domain.TxAccountPurchase, Amount: -120},
		{Type: domain.TxReceived, Amount: 60},
	}

	assert.InDelta(t, 150, FixedCosts(txs), 1e-9)
	assert.InDelta(t, 1000, Investments(txs), 1e-9)
	assert.InDelta(t, 200, Withdrawals(txs), 1e-9)
	assert.InDelta(t, 360, OtherOutflows(txs), 1e-9)
}
