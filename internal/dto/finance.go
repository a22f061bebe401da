package dto

type DepositRequestDTO struct {
	Date        string  `json:"date" example:"2026-08-15"`
	AccountID   string  `json:"account_id"`
	Amount      float64 `json:"amount" example:"500"`
	Description string  `json:"description,omitempty"`
}

type DepositResponseDTO struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	AccountID   string  `json:"account_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	CreatedBy   string  `json:"created_by"`
}

type TransactionRequestDTO struct {
	Date              string  `json:"date" example:"2026-08-15"`
	Type              string  `json:"type" example:"aporte"`
	Category          string  `json:"category,omitempty"`
	Amount            float64 `json:"amount" example:"1000"`
	Description       string  `json:"description,omitempty"`
	BankName          string  `json:"bank_name,omitempty"`
	RelatedOperatorID string  `json:"related_operator_id,omitempty"`
	RelatedAccountID  string  `json:"related_account_id,omitempty"`
}

type TransactionResponseDTO struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	Type              string  `json:"type"`
	Category          string  `json:"category,omitempty"`
	Amount            float64 `json:"amount"`
	Description       string  `json:"description,omitempty"`
	BankName          string  `json:"bank_name,omitempty"`
	RelatedOperatorID string  `json:"related_operator_id,omitempty"`
	RelatedAccountID  string  `json:"related_account_id,omitempty"`
}

type BankBalanceRequestDTO struct {
	BankName       string  `json:"bank_name" example:"Inter"`
	CurrentBalance float64 `json:"current_balance" example:"15000"`
}

type BankBalanceResponseDTO struct {
	ID             string  `json:"id"`
	BankName       string  `json:"bank_name"`
	CurrentBalance float64 `json:"current_balance"`
}
