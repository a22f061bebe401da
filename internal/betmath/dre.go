package betmath

// DREInput carries the pre-aggregated figures for one calendar month.
// Revenue is the summed profit of every bet dated in the month, variable
// costs the purchase price of accounts limited in the month, fixed costs
// the recurring operating costs. Period filtering is the caller's job.
type DREInput struct {
	Revenue       float64 `json:"revenue"`
	VariableCosts float64 `json:"variable_costs"`
	FixedCosts    float64 `json:"fixed_costs"`
	Investments   float64 `json:"investments"`
	Withdrawals   float64 `json:"withdrawals"`
}

// DRE is the simplified income statement. Contributions and withdrawals
// are capital movements, reported alongside but never netted into the
// result.
type DRE struct {
	DREInput
	NetProfit float64 `json:"net_profit"`
}

func ComposeDRE(in DREInput) DRE {
	return DRE{
		DREInput:  in,
		NetProfit: in.Revenue - in.VariableCosts - in.FixedCosts,
	}
}

// CaixaInput carries the month's cash movements. OtherOutflows is the
// absolute sum of transactions that are neither contributions nor
// withdrawals. AccountDeposits is the money moved into betting accounts,
// an internal redistribution reported but not netted.
type CaixaInput struct {
	Investments     float64 `json:"investments"`
	Revenue         float64 `json:"revenue"`
	Withdrawals     float64 `json:"withdrawals"`
	OtherOutflows   float64 `json:"other_outflows"`
	AccountDeposits float64 `json:"account_deposits"`
}

// Caixa is the companion cash-flow view of the DRE.
type Caixa struct {
	CaixaInput
	Saldo float64 `json:"saldo"`
}

func ComposeCaixa(in CaixaInput) Caixa {
	return Caixa{
		CaixaInput: in,
		Saldo:      in.Investments + in.Revenue - in.Withdrawals - in.OtherOutflows,
	}
}
