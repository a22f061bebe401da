package betmath

import (
	"math"
	"sort"

	"github.com/brunodmn/betoffice/internal/domain"
)

const (
	// BucketOther collects bets whose software tool was left blank.
	BucketOther = "Outros"
	// BucketUnknown collects bets whose operator no longer has a profile.
	BucketUnknown = "Desconhecido"
)

// Stats is the five-figure summary every report is built from. An empty
// input produces the zero value; the ratio fields guard their denominators
// so no report ever carries a NaN or Inf.
type Stats struct {
	TotalVolume   float64 `json:"total_volume"`
	TotalProfit   float64 `json:"total_profit"`
	TotalBets     int     `json:"total_bets"`
	WinRate       float64 `json:"win_rate"`
	ExpectedValue float64 `json:"expected_value"`
	ROI           float64 `json:"roi"`
}

// Compute reduces a period's bets into Stats. Unsettled bets count toward
// volume and bet totals, contribute their stored zero profit and are never
// wins.
func Compute(bets []domain.Bet) Stats {
	var s Stats
	var wins int
	for _, b := range bets {
		s.TotalVolume += b.Stake
		s.TotalProfit += b.Profit
		if b.ExpectedValue != nil {
			s.ExpectedValue += *b.ExpectedValue
		}
		if b.IsWin() {
			wins++
		}
	}
	s.TotalBets = len(bets)
	if s.TotalBets > 0 {
		s.WinRate = float64(wins) / float64(s.TotalBets) * 100
	}
	if s.TotalVolume > 0 {
		s.ROI = s.TotalProfit / s.TotalVolume * 100
	}
	return s
}

// Group is one bucket of a breakdown report. Key is the grouping value
// (a software tool, a sport, a bookmaker or operator id) and Label the
// display name, which differs from Key only for id-keyed breakdowns.
type Group struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Stats
}

// BySoftware groups bets by software tool, blank tools under BucketOther.
// Ordering is alphabetical by label; the carousel sections on the dashboard
// rely on it.
func BySoftware(bets []domain.Bet) []Group {
	groups := groupBy(bets, func(b domain.Bet) (string, string) {
		if b.SoftwareTool == "" {
			return BucketOther, BucketOther
		}
		return b.SoftwareTool, b.SoftwareTool
	})
	sort.Slice(groups, func(i, j int) bool { return groups[i].Label < groups[j].Label })
	return groups
}

// ByOperator groups bets by operator id, resolving labels through names.
// Operators without a profile all collapse into one BucketUnknown group.
// Ordering is by descending profit.
func ByOperator(bets []domain.Bet, names map[string]string) []Group {
	groups := groupBy(bets, func(b domain.Bet) (string, string) {
		if name, ok := names[b.OperatorID]; ok {
			return b.OperatorID, name
		}
		return BucketUnknown, BucketUnknown
	})
	sortByProfitDesc(groups)
	return groups
}

// BySport groups bets by sport, ordered by descending profit.
func BySport(bets []domain.Bet) []Group {
	groups := groupBy(bets, func(b domain.Bet) (string, string) {
		return b.Sport, b.Sport
	})
	sortByProfitDesc(groups)
	return groups
}

// ByBookmaker groups bets by bookmaker id, resolving labels through names,
// unresolved ids collapsed into one BucketUnknown group, ordered by
// descending profit.
func ByBookmaker(bets []domain.Bet, names map[string]string) []Group {
	groups := groupBy(bets, func(b domain.Bet) (string, string) {
		if name, ok := names[b.BookmakerID]; ok {
			return b.BookmakerID, name
		}
		return BucketUnknown, BucketUnknown
	})
	sortByProfitDesc(groups)
	return groups
}

func groupBy(bets []domain.Bet, keyFn func(domain.Bet) (key, label string)) []Group {
	buckets := make(map[string][]domain.Bet)
	labels := make(map[string]string)
	for _, b := range bets {
		key, label := keyFn(b)
		buckets[key] = append(buckets[key], b)
		labels[key] = label
	}
	groups := make([]Group, 0, len(buckets))
	for key, group := range buckets {
		groups = append(groups, Group{Key: key, Label: labels[key], Stats: Compute(group)})
	}
	return groups
}

func sortByProfitDesc(groups []Group) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].TotalProfit != groups[j].TotalProfit {
			return groups[i].TotalProfit > groups[j].TotalProfit
		}
		return groups[i].Label < groups[j].Label
	})
}

// FixedCosts sums the absolute value of recurring operating costs.
func FixedCosts(txs []domain.Transaction) float64 {
	var sum float64
	for _, t := range txs {
		if t.IsRecurringCost() {
			sum += math.Abs(t.Amount)
		}
	}
	return sum
}

// Investments sums capital contributions for the period.
func Investments(txs []domain.Transaction) float64 {
	var sum float64
	for _, t := range txs {
		if t.Type == domain.TxContribution {
			sum += t.Amount
		}
	}
	return sum
}

// Withdrawals sums the absolute value of capital withdrawals.
func Withdrawals(txs []domain.Transaction) float64 {
	var sum float64
	for _, t := range txs {
		if t.Type == domain.TxWithdrawal {
			sum += math.Abs(t.Amount)
		}
	}
	return sum
}

// OtherOutflows sums the absolute value of everything that is neither a
// contribution nor a withdrawal; the cash-flow view nets these out.
func OtherOutflows(txs []domain.Transaction) float64 {
	var sum float64
	for _, t := range txs {
		if t.Type != domain.TxContribution && t.Type != domain.TxWithdrawal {
			sum += math.Abs(t.Amount)
		}
	}
	return sum
}
