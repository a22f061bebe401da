package dto

type AccountRequestDTO struct {
	BookmakerID         string  `json:"bookmaker_id"`
	OperatorID          string  `json:"operator_id,omitempty"`
	LoginNick           string  `json:"login_nick"`
	CurrentStatus       string  `json:"current_status" example:"em_uso"`
	PurchasePrice       float64 `json:"purchase_price"`
	AcquisitionDate     string  `json:"acquisition_date" example:"2026-08-01"`
	LimitationDate      string  `json:"limitation_date,omitempty"`
	VendorName          string  `json:"vendor_name,omitempty"`
	CurrentBalance      float64 `json:"current_balance"`
	PendingBalance      float64 `json:"pending_balance"`
	InitialMonthBalance float64 `json:"initial_month_balance"`
	Notes               string  `json:"notes,omitempty"`
}

type AccountResponseDTO struct {
	ID                  string  `json:"id"`
	BookmakerID         string  `json:"bookmaker_id"`
	OperatorID          string  `json:"operator_id"`
	LoginNick           string  `json:"login_nick"`
	CurrentStatus       string  `json:"current_status"`
	PurchasePrice       float64 `json:"purchase_price"`
	AcquisitionDate     string  `json:"acquisition_date"`
	LimitationDate      string  `json:"limitation_date,omitempty"`
	VendorName          string  `json:"vendor_name,omitempty"`
	CurrentBalance      float64 `json:"current_balance"`
	PendingBalance      float64 `json:"pending_balance"`
	TotalDeposited      float64 `json:"total_deposited"`
	InitialMonthBalance float64 `json:"initial_month_balance"`
	TotalVolume         float64 `json:"total_volume"`
	Notes               string  `json:"notes,omitempty"`
}
