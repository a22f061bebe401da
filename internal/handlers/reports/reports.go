package reports

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/dto"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/brunodmn/betoffice/pkg/utils"
)

const monthLayout = "2006-01"

type Service interface {
	Dashboard(ctx context.Context, p access.Principal, month time.Time) (*dto.DashboardResponseDTO, error)
	Analytics(ctx context.Context, p access.Principal, month time.Time) (*dto.AnalyticsResponseDTO, error)
	DRE(ctx context.Context, p access.Principal, month time.Time) (*dto.DREResponseDTO, error)
	Caixa(ctx context.Context, p access.Principal, month time.Time) (*dto.CaixaResponseDTO, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// parseMonth reads the month query param (YYYY-MM) and falls back to the
// current month.
func parseMonth(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(monthLayout, raw)
}

// GetDashboard godoc
//
//	@Summary		Monthly dashboard
//	@Description	Month stats and per-software sections; operators see only their own bets
//	@Tags			Reports
//	@Produce		json
//	@Param			month	query	string	false	"Month (YYYY-MM), defaults to current month"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid month format"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/dashboard [get]
func (h *ReportHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(ctx context.Context, p access.Principal, month time.Time) (any, error) {
		return h.reportService.Dashboard(ctx, p, month)
	})
}

// GetAnalytics godoc
//
//	@Summary		Company analytics
//	@Description	Month stats broken down by operator, sport and bookmaker
//	@Tags			Reports
//	@Produce		json
//	@Param			month	query	string	false	"Month (YYYY-MM), defaults to current month"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AnalyticsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid month format"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/analytics [get]
func (h *ReportHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(ctx context.Context, p access.Principal, month time.Time) (any, error) {
		return h.reportService.Analytics(ctx, p, month)
	})
}

// GetDRE godoc
//
//	@Summary		Monthly income statement
//	@Description	Revenue, variable and fixed costs and net profit for the month
//	@Tags			Reports
//	@Produce		json
//	@Param			month	query	string	false	"Month (YYYY-MM), defaults to current month"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DREResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid month format"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/dre [get]
func (h *ReportHandler) GetDRE(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(ctx context.Context, p access.Principal, month time.Time) (any, error) {
		return h.reportService.DRE(ctx, p, month)
	})
}

// GetCaixa godoc
//
//	@Summary		Monthly cash position
//	@Description	Cash inflows, outflows and resulting balance for the month
//	@Tags			Reports
//	@Produce		json
//	@Param			month	query	string	false	"Month (YYYY-MM), defaults to current month"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CaixaResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid month format"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/caixa [get]
func (h *ReportHandler) GetCaixa(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(ctx context.Context, p access.Principal, month time.Time) (any, error) {
		return h.reportService.Caixa(ctx, p, month)
	})
}

func (h *ReportHandler) respond(w http.ResponseWriter, r *http.Request, report func(context.Context, access.Principal, time.Time) (any, error)) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	month, err := parseMonth(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid month format")
		return
	}

	resp, err := report(r.Context(), p, month)
	if err != nil {
		if errors.Is(err, access.ErrForbidden) {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
