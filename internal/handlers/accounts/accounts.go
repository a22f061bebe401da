package accounts

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
	"github.com/brunodmn/betoffice/internal/service/accountservice"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/brunodmn/betoffice/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, p access.Principal, in accountservice.Input) (*domain.Account, error)
	List(ctx context.Context, p access.Principal) ([]domain.Account, error)
	Update(ctx context.Context, p access.Principal, id string, in accountservice.Input) (*domain.Account, error)
	Delete(ctx context.Context, p access.Principal, id string) error
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

func toInput(req dto.AccountRequestDTO) (accountservice.Input, error) {
	acquired, err := time.Parse(dateLayout, req.AcquisitionDate)
	if err != nil {
		return accountservice.Input{}, err
	}
	var limitation *time.Time
	if req.LimitationDate != "" {
		parsed, err := time.Parse(dateLayout, req.LimitationDate)
		if err != nil {
			return accountservice.Input{}, err
		}
		limitation = &parsed
	}
	return accountservice.Input{
		BookmakerID:         req.BookmakerID,
		OperatorID:          req.OperatorID,
		LoginNick:           req.LoginNick,
		CurrentStatus:       domain.AccountStatus(req.CurrentStatus),
		PurchasePrice:       req.PurchasePrice,
		AcquisitionDate:     acquired,
		LimitationDate:      limitation,
		VendorName:          req.VendorName,
		CurrentBalance:      req.CurrentBalance,
		PendingBalance:      req.PendingBalance,
		InitialMonthBalance: req.InitialMonthBalance,
		Notes:               req.Notes,
	}, nil
}

func toResponse(a *domain.Account) dto.AccountResponseDTO {
	resp := dto.AccountResponseDTO{
		ID:                  a.ID,
		BookmakerID:         a.BookmakerID,
		OperatorID:          a.OperatorID,
		LoginNick:           a.LoginNick,
		CurrentStatus:       string(a.CurrentStatus),
		PurchasePrice:       a.PurchasePrice,
		AcquisitionDate:     a.AcquisitionDate.Format(dateLayout),
		VendorName:          a.VendorName,
		CurrentBalance:      a.CurrentBalance,
		PendingBalance:      a.PendingBalance,
		TotalDeposited:      a.TotalDeposited,
		InitialMonthBalance: a.InitialMonthBalance,
		TotalVolume:         a.TotalVolume,
		Notes:               a.Notes,
	}
	if a.LimitationDate != nil {
		resp.LimitationDate = a.LimitationDate.Format(dateLayout)
	}
	return resp
}

// AddAccount godoc
//
//	@Summary		Register a bookmaker account
//	@Description	Create an account; operators always own their own accounts, admins may assign any operator
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AccountRequestDTO	true	"Account to register"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.AccountResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountHandler) AddAccount(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.AccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in, err := toInput(req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	account, err := h.accountService.Create(r.Context(), p, in)
	if err != nil {
		respondAccountError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(account))
}

// GetAccounts godoc
//
//	@Summary		List accounts
//	@Description	List bookmaker accounts; operators see only their own
//	@Tags			Accounts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [get]
func (h *AccountHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accounts, err := h.accountService.List(r.Context(), p)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.AccountResponseDTO, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, toResponse(&accounts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateAccount godoc
//
//	@Summary		Update an account
//	@Description	Replace an account's fields; moving to limitada stamps the limitation date
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Account ID"
//	@Param			request	body	dto.AccountRequestDTO	true	"New account fields"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Account belongs to another operator"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.AccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in, err := toInput(req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	account, err := h.accountService.Update(r.Context(), p, chi.URLParam(r, "id"), in)
	if err != nil {
		respondAccountError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(account))
}

// DeleteAccount godoc
//
//	@Summary		Delete an account
//	@Tags			Accounts
//	@Produce		json
//	@Param			id	path	string	true	"Account ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Account deleted"
//	@Failure		403	{object}	utils.Response	"Account belongs to another operator"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.accountService.Delete(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		respondAccountError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Account deleted"})
}

func respondAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accountservice.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, accountservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, access.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
