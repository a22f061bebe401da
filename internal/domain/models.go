package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

type AccountStatus string

const (
	// AccountInUse conta ativa e operando;
	AccountInUse AccountStatus = "em_uso"
	// AccountLimited conta limitada pela casa, fora de operação;
	AccountLimited AccountStatus = "limitada"
	// AccountWarming conta em aquecimento antes de operar;
	AccountWarming AccountStatus = "cevando"
	// AccountTransferred conta repassada para outra operação;
	AccountTransferred AccountStatus = "transferida"
)

type BetResult string

const (
	ResultGreen     BetResult = "green"
	ResultRed       BetResult = "red"
	ResultVoid      BetResult = "void"
	ResultHalfGreen BetResult = "meio_green"
	ResultHalfRed   BetResult = "meio_red"
	// ResultPending aposta ainda não liquidada; lucro provisório zero.
	ResultPending BetResult = "pendente"
)

type TransactionType string

const (
	TxContribution    TransactionType = "aporte"
	TxWithdrawal      TransactionType = "retirada"
	TxOperatingCost   TransactionType = "custo_operacional"
	TxAccountPurchase TransactionType = "compra_conta"
	TxCorrection      TransactionType = "correcao"
	TxReceived        TransactionType = "recebido"
)

type MarketTime string

const (
	MarketFullTime   MarketTime = "jogo_todo"
	MarketFirstHalf  MarketTime = "1_tempo"
	MarketSecondHalf MarketTime = "2_tempo"
)

type AuthUser struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Profile struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type UserRole struct {
	ID        string    `db:"id"`
	ProfileID string    `db:"profile_id"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type Bookmaker struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	LogoURL   string    `db:"logo_url"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

type SoftwareTool struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

type Account struct {
	ID                  string        `db:"id"`
	BookmakerID         string        `db:"bookmaker_id"`
	OperatorID          string        `db:"operator_id"`
	LoginNick           string        `db:"login_nick"`
	CurrentStatus       AccountStatus `db:"current_status"`
	PurchasePrice       float64       `db:"purchase_price"`
	AcquisitionDate     time.Time     `db:"acquisition_date"`
	LimitationDate      *time.Time    `db:"limitation_date"`
	VendorName          string        `db:"vendor_name"`
	CurrentBalance      float64       `db:"current_balance"`
	PendingBalance      float64       `db:"pending_balance"`
	TotalDeposited      float64       `db:"total_deposited"`
	InitialMonthBalance float64       `db:"initial_month_balance"`
	TotalVolume         float64       `db:"total_volume"`
	Notes               string        `db:"notes"`
	CreatedAt           time.Time     `db:"created_at"`
	UpdatedAt           time.Time     `db:"updated_at"`
}

type Bet struct {
	ID             string     `db:"id"`
	Date           time.Time  `db:"date"`
	OperatorID     string     `db:"operator_id"`
	AccountID      string     `db:"account_id"`
	BookmakerID    string     `db:"bookmaker_id"`
	Stake          float64    `db:"stake"`
	Odds           float64    `db:"odds"`
	Result         BetResult  `db:"result"`
	Profit         float64    `db:"profit"`
	MarketTime     MarketTime `db:"market_time"`
	Sport          string     `db:"sport"`
	SoftwareTool   string     `db:"software_tool"`
	ExpectedValue  *float64   `db:"expected_value"`
	Teams          string     `db:"teams"`
	BetDescription string     `db:"bet_description"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// IsWin is true only for full and half greens.
func (b Bet) IsWin() bool {
	return b.Result == ResultGreen || b.Result == ResultHalfGreen
}

type Deposit struct {
	ID          string    `db:"id"`
	Date        time.Time `db:"date"`
	AccountID   string    `db:"account_id"`
	Amount      float64   `db:"amount"`
	Description string    `db:"description"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
}

type Transaction struct {
	ID                string          `db:"id"`
	Date              time.Time       `db:"date"`
	Type              TransactionType `db:"type"`
	Category          string          `db:"category"`
	Amount            float64         `db:"amount"`
	Description       string          `db:"description"`
	BankName          string          `db:"bank_name"`
	RelatedOperatorID string          `db:"related_operator_id"`
	RelatedAccountID  string          `db:"related_account_id"`
	CreatedAt         time.Time       `db:"created_at"`
}

// IsRecurringCost marks the fixed monthly costs counted by the DRE. The
// convention inherited from the bookkeeping data is an operating cost whose
// category is the literal "recorrente", case-insensitive.
func (t Transaction) IsRecurringCost() bool {
	return t.Type == TxOperatingCost && strings.EqualFold(t.Category, "recorrente")
}

type BankBalance struct {
	ID             string    `db:"id"`
	BankName       string    `db:"bank_name"`
	CurrentBalance float64   `db:"current_balance"`
	UpdatedAt      time.Time `db:"updated_at"`
}
