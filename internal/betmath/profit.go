package betmath

import "github.com/brunodmn/betoffice/internal/domain"

// Profit derives the signed profit of a settled stake. Callers validate
// stake > 0 and odds >= 1 before recording a bet; this function assumes the
// contract holds. Unsettled (pendente) bets carry a provisional zero.
func Profit(stake, odds float64, result domain.BetResult) float64 {
	switch result {
	case domain.ResultGreen:
		return stake * (odds - 1)
	case domain.ResultRed:
		return -stake
	case domain.ResultVoid:
		return 0
	case domain.ResultHalfGreen:
		return stake * (odds - 1) / 2
	case domain.ResultHalfRed:
		return -stake / 2
	case domain.ResultPending:
		return 0
	}
	return 0
}
