package deposits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/dto"
	"github.com/brunodmn/betoffice/internal/service/depositservice"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/brunodmn/betoffice/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, p access.Principal, in depositservice.Input) (*domain.Deposit, error)
	List(ctx context.Context, p access.Principal) ([]domain.Deposit, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

func toResponse(d *domain.Deposit) dto.DepositResponseDTO {
	return dto.DepositResponseDTO{
		ID:          d.ID,
		Date:        d.Date.Format(dateLayout),
		AccountID:   d.AccountID,
		Amount:      d.Amount,
		Description: d.Description,
		CreatedBy:   d.CreatedBy,
	}
}

// AddDeposit godoc
//
//	@Summary		Record a deposit
//	@Description	Credit an account; the deposit row and the balance update commit together
//	@Tags			Deposits
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.DepositRequestDTO	true	"Deposit to record"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.DepositResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Account belongs to another operator"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits [post]
func (h *DepositHandler) AddDeposit(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	deposit, err := h.depositService.Create(r.Context(), p, depositservice.Input{
		Date:        date,
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, depositservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, depositservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, access.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(deposit))
}

// GetDeposits godoc
//
//	@Summary		List deposits
//	@Description	List deposits; operators see only deposits into their own accounts
//	@Tags			Deposits
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DepositResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits [get]
func (h *DepositHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	deposits, err := h.depositService.List(r.Context(), p)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.DepositResponseDTO, 0, len(deposits))
	for i := range deposits {
		resp = append(resp, toResponse(&deposits[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
