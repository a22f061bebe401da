package dto

type BetRequestDTO struct {
	Date           string   `json:"date" example:"2026-08-15"`
	AccountID      string   `json:"account_id"`
	Stake          float64  `json:"stake" example:"100"`
	Odds           float64  `json:"odds" example:"1.85"`
	Result         string   `json:"result" example:"green"`
	MarketTime     string   `json:"market_time" example:"jogo_todo"`
	Sport          string   `json:"sport" example:"Futebol"`
	SoftwareTool   string   `json:"software_tool" example:"Trademate"`
	ExpectedValue  *float64 `json:"expected_value,omitempty"`
	Teams          string   `json:"teams,omitempty"`
	BetDescription string   `json:"bet_description,omitempty"`
}

type BetResponseDTO struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	OperatorID     string   `json:"operator_id"`
	AccountID      string   `json:"account_id"`
	BookmakerID    string   `json:"bookmaker_id"`
	Stake          float64  `json:"stake"`
	Odds           float64  `json:"odds"`
	Result         string   `json:"result"`
	Profit         float64  `json:"profit"`
	MarketTime     string   `json:"market_time"`
	Sport          string   `json:"sport"`
	SoftwareTool   string   `json:"software_tool,omitempty"`
	ExpectedValue  *float64 `json:"expected_value,omitempty"`
	Teams          string   `json:"teams,omitempty"`
	BetDescription string   `json:"bet_description,omitempty"`
}
