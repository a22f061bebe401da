package finance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/dto"
	"github.com/brunodmn/betoffice/internal/service/financeservice"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/brunodmn/betoffice/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	CreateTransaction(ctx context.Context, p access.Principal, t *domain.Transaction) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, p access.Principal, from, to time.Time) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, p access.Principal, id string, t *domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, p access.Principal, id string) error
	ListBanks(ctx context.Context, p access.Principal) ([]domain.BankBalance, error)
	UpsertBank(ctx context.Context, p access.Principal, bankName string, balance float64) (*domain.BankBalance, error)
}

type FinanceHandler struct {
	financeService Service
}

func New(financeService Service) *FinanceHandler {
	return &FinanceHandler{
		financeService: financeService,
	}
}

func toTransaction(req dto.TransactionRequestDTO) (*domain.Transaction, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Transaction{
		Date:              date,
		Type:              domain.TransactionType(req.Type),
		Category:          req.Category,
		Amount:            req.Amount,
		Description:       req.Description,
		BankName:          req.BankName,
		RelatedOperatorID: req.RelatedOperatorID,
		RelatedAccountID:  req.RelatedAccountID,
	}, nil
}

func toTransactionResponse(t *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:                t.ID,
		Date:              t.Date.Format(dateLayout),
		Type:              string(t.Type),
		Category:          t.Category,
		Amount:            t.Amount,
		Description:       t.Description,
		BankName:          t.BankName,
		RelatedOperatorID: t.RelatedOperatorID,
		RelatedAccountID:  t.RelatedAccountID,
	}
}

func toBankResponse(b *domain.BankBalance) dto.BankBalanceResponseDTO {
	return dto.BankBalanceResponseDTO{
		ID:             b.ID,
		BankName:       b.BankName,
		CurrentBalance: b.CurrentBalance,
	}
}

// parseRange reads the from/to query params and falls back to the current
// calendar month.
func parseRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}

// AddTransaction godoc
//
//	@Summary		Record a company transaction
//	@Description	Create an aporte, retirada, custo or correction entry in the company ledger
//	@Tags			Finance
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.TransactionRequestDTO	true	"Transaction to record"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions [post]
func (h *FinanceHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.TransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tx, err := toTransaction(req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	created, err := h.financeService.CreateTransaction(r.Context(), p, tx)
	if err != nil {
		respondFinanceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTransactionResponse(created))
}

// GetTransactions godoc
//
//	@Summary		List company transactions
//	@Description	List ledger entries in a date range
//	@Tags			Finance
//	@Produce		json
//	@Param			from	query	string	false	"Range start (YYYY-MM-DD), defaults to first day of current month"
//	@Param			to		query	string	false	"Range end (YYYY-MM-DD), defaults to last day of current month"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid date format"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions [get]
func (h *FinanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	from, to, err := parseRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	txs, err := h.financeService.ListTransactions(r.Context(), p, from, to)
	if err != nil {
		respondFinanceError(w, err)
		return
	}

	resp := make([]dto.TransactionResponseDTO, 0, len(txs))
	for i := range txs {
		resp = append(resp, toTransactionResponse(&txs[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateTransaction godoc
//
//	@Summary		Update a transaction
//	@Tags			Finance
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Transaction ID"
//	@Param			request	body	dto.TransactionRequestDTO	true	"New transaction fields"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/{id} [put]
func (h *FinanceHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.TransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tx, err := toTransaction(req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	updated, err := h.financeService.UpdateTransaction(r.Context(), p, chi.URLParam(r, "id"), tx)
	if err != nil {
		respondFinanceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionResponse(updated))
}

// DeleteTransaction godoc
//
//	@Summary		Delete a transaction
//	@Tags			Finance
//	@Produce		json
//	@Param			id	path	string	true	"Transaction ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Transaction deleted"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/{id} [delete]
func (h *FinanceHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.financeService.DeleteTransaction(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		respondFinanceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Transaction deleted"})
}

// GetBanks godoc
//
//	@Summary		List bank balances
//	@Tags			Finance
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.BankBalanceResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/banks [get]
func (h *FinanceHandler) GetBanks(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	banks, err := h.financeService.ListBanks(r.Context(), p)
	if err != nil {
		respondFinanceError(w, err)
		return
	}

	resp := make([]dto.BankBalanceResponseDTO, 0, len(banks))
	for i := range banks {
		resp = append(resp, toBankResponse(&banks[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpsertBank godoc
//
//	@Summary		Set a bank balance
//	@Description	Create or overwrite the tracked balance of a bank by name
//	@Tags			Finance
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BankBalanceRequestDTO	true	"Bank balance"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BankBalanceResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/banks [put]
func (h *FinanceHandler) UpsertBank(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.BankBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BankName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Bank name is required")
		return
	}

	bank, err := h.financeService.UpsertBank(r.Context(), p, req.BankName, req.CurrentBalance)
	if err != nil {
		respondFinanceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBankResponse(bank))
}

func respondFinanceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, financeservice.ErrInvalidType):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, financeservice.ErrTransactionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, access.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
