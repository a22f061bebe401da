package bets

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
	"github.com/brunodmn/betoffice/internal/service/betservice"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/brunodmn/betoffice/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, p access.Principal, in betservice.Input) (*domain.Bet, error)
	List(ctx context.Context, p access.Principal, from, to time.Time, operatorID string) ([]domain.Bet, error)
	Update(ctx context.Context, p access.Principal, id string, in betservice.Input) (*domain.Bet, error)
	Delete(ctx context.Context, p access.Principal, id string) error
}

type BetHandler struct {
	betService Service
}

func New(betService Service) *BetHandler {
	return &BetHandler{
		betService: betService,
	}
}

func toInput(req dto.BetRequestDTO) (betservice.Input, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return betservice.Input{}, err
	}
	return betservice.Input{
		Date:           date,
		AccountID:      req.AccountID,
		Stake:          req.Stake,
		Odds:           req.Odds,
		Result:         domain.BetResult(req.Result),
		MarketTime:     domain.MarketTime(req.MarketTime),
		Sport:          req.Sport,
		SoftwareTool:   req.SoftwareTool,
		ExpectedValue:  req.ExpectedValue,
		Teams:          req.Teams,
		BetDescription: req.BetDescription,
	}, nil
}

func toResponse(b *domain.Bet) dto.BetResponseDTO {
	return dto.BetResponseDTO{
		ID:             b.ID,
		Date:           b.Date.Format(dateLayout),
		OperatorID:     b.OperatorID,
		AccountID:      b.AccountID,
		BookmakerID:    b.BookmakerID,
		Stake:          b.Stake,
		Odds:           b.Odds,
		Result:         string(b.Result),
		Profit:         b.Profit,
		MarketTime:     string(b.MarketTime),
		Sport:          b.Sport,
		SoftwareTool:   b.SoftwareTool,
		ExpectedValue:  b.ExpectedValue,
		Teams:          b.Teams,
		BetDescription: b.BetDescription,
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

// AddBet godoc
//
//	@Summary		Record a bet
//	@Description	Create a bet on one of the caller's accounts; profit is derived from stake, odds and result
//	@Tags			Bets
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BetRequestDTO	true	"Bet to record"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.BetResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Account belongs to another operator"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets [post]
func (h *BetHandler) AddBet(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.BetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in, err := toInput(req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	bet, err := h.betService.Create(r.Context(), p, in)
	if err != nil {
		respondBetError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(bet))
}

// GetBets godoc
//
//	@Summary		List bets
//	@Description	List bets in a date range; operators see only their own, unsettled bets come first
//	@Tags			Bets
//	@Produce		json
//	@Param			from	query	string	false	"Range start (YYYY-MM-DD), defaults to first day of current month"
//	@Param			to			query	string	false	"Range end (YYYY-MM-DD), defaults to last day of current month"
//	@Param			operator_id	query	string	false	"Admin only: narrow the listing to one operator"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.BetResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid date format"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets [get]
func (h *BetHandler) GetBets(w http.ResponseWriter, r *http.Request) {
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

	bets, err := h.betService.List(r.Context(), p, from, to, r.URL.Query().Get("operator_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.BetResponseDTO, 0, len(bets))
	for i := range bets {
		resp = append(resp, toResponse(&bets[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateBet godoc
//
//	@Summary		Update a bet
//	@Description	Replace a bet's fields; profit is re-derived from the new stake, odds and result
//	@Tags			Bets
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string				true	"Bet ID"
//	@Param			request	body	dto.BetRequestDTO	true	"New bet fields"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BetResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Bet belongs to another operator"
//	@Failure		404	{object}	utils.Response	"Bet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/{id} [put]
func (h *BetHandler) UpdateBet(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.BetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in, err := toInput(req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	bet, err := h.betService.Update(r.Context(), p, chi.URLParam(r, "id"), in)
	if err != nil {
		respondBetError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(bet))
}

// DeleteBet godoc
//
//	@Summary		Delete a bet
//	@Tags			Bets
//	@Produce		json
//	@Param			id	path	string	true	"Bet ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Bet deleted"
//	@Failure		403	{object}	utils.Response	"Bet belongs to another operator"
//	@Failure		404	{object}	utils.Response	"Bet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/{id} [delete]
func (h *BetHandler) DeleteBet(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.betService.Delete(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		respondBetError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bet deleted"})
}

func respondBetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, betservice.ErrInvalidStake),
		errors.Is(err, betservice.ErrInvalidOdds),
		errors.Is(err, betservice.ErrInvalidResult):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, betservice.ErrBetNotFound),
		errors.Is(err, betservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, access.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
