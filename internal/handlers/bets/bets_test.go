package bets

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/dto"
	"github.com/brunodmn/betoffice/internal/service/betservice"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/brunodmn/betoffice/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*BetHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

var operator = access.Principal{ProfileID: "op-1", Role: domain.RoleOperator}

func withPrincipal(r *http.Request, p access.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), auth.PrincipalKey, p)
	return r.WithContext(ctx)
}

func TestAddBet(t *testing.T) {
	handler, service := NewMock(t)

	body := `{"date":"2026-08-10","account_id":"acc-1","stake":100,"odds":2.0,"result":"green","market_time":"jogo_todo","sport":"futebol"}`

	tests := []struct {
		name         string
		body         string
		principal    *access.Principal
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Bet recorded",
			body:      body,
			principal: &operator,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), operator, gomock.Any()).DoAndReturn(
					func(ctx context.Context, p access.Principal, in betservice.Input) (*domain.Bet, error) {
						assert.Equal(t, "acc-1", in.AccountID)
						assert.Equal(t, 100.0, in.Stake)
						return &domain.Bet{
							ID:         "bet-1",
							Date:       in.Date,
							OperatorID: p.ProfileID,
							AccountID:  in.AccountID,
							Stake:      in.Stake,
							Odds:       in.Odds,
							Result:     in.Result,
							Profit:     100,
						}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "No principal",
			body:         body,
			principal:    nil,
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			principal:    &operator,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid date format",
			body:         `{"date":"10/08/2026","account_id":"acc-1","stake":100,"odds":2.0,"result":"green"}`,
			principal:    &operator,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Foreign account",
			body:      body,
			principal: &operator,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), operator, gomock.Any()).Return(nil, access.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:      "Unknown account",
			body:      body,
			principal: &operator,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), operator, gomock.Any()).Return(nil, betservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Invalid stake",
			body:      body,
			principal: &operator,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), operator, gomock.Any()).Return(nil, betservice.ErrInvalidStake)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/bets", bytes.NewReader([]byte(tt.body)))
			if tt.principal != nil {
				req = withPrincipal(req, *tt.principal)
			}
			rr := httptest.NewRecorder()

			handler.AddBet(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp dto.BetResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "bet-1", resp.ID)
				assert.Equal(t, "2026-08-10", resp.Date)
				assert.Equal(t, 100.0, resp.Profit)
			}
		})
	}
}

func TestGetBets(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Explicit range is forwarded", func(t *testing.T) {
		from := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)
		service.EXPECT().List(gomock.Any(), operator, from, to, "").Return([]domain.Bet{
			{ID: "bet-1", Date: from, Result: domain.ResultPending},
		}, nil)

		req := withPrincipal(httptest.NewRequest("GET", "/api/bets?from=2026-07-01&to=2026-07-31", nil), operator)
		rr := httptest.NewRecorder()

		handler.GetBets(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.BetResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "pendente", resp[0].Result)
	})

	t.Run("Admin operator filter is forwarded", func(t *testing.T) {
		admin := access.Principal{ProfileID: "admin-1", Role: domain.RoleAdmin}
		from := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)
		service.EXPECT().List(gomock.Any(), admin, from, to, "op-2").Return(nil, nil)

		req := withPrincipal(httptest.NewRequest("GET", "/api/bets?from=2026-07-01&to=2026-07-31&operator_id=op-2", nil), admin)
		rr := httptest.NewRecorder()

		handler.GetBets(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing range defaults to the current month", func(t *testing.T) {
		now := time.Now().UTC()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)
		service.EXPECT().List(gomock.Any(), operator, from, to, "").Return(nil, nil)

		req := withPrincipal(httptest.NewRequest("GET", "/api/bets", nil), operator)
		rr := httptest.NewRecorder()

		handler.GetBets(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Bad range", func(t *testing.T) {
		req := withPrincipal(httptest.NewRequest("GET", "/api/bets?from=notadate", nil), operator)
		rr := httptest.NewRecorder()

		handler.GetBets(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateBet(t *testing.T) {
	handler, service := NewMock(t)

	body := `{"date":"2026-08-10","account_id":"acc-1","stake":100,"odds":2.0,"result":"red"}`

	t.Run("Settle re-derives profit", func(t *testing.T) {
		service.EXPECT().Update(gomock.Any(), operator, "bet-1", gomock.Any()).Return(&domain.Bet{
			ID:     "bet-1",
			Date:   time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
			Result: domain.ResultRed,
			Profit: -100,
		}, nil)

		req := withPrincipal(httptest.NewRequest("PUT", "/api/bets/bet-1", bytes.NewReader([]byte(body))), operator)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "bet-1")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rr := httptest.NewRecorder()

		handler.UpdateBet(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.BetResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, -100.0, resp.Profit)
	})

	t.Run("Unknown bet", func(t *testing.T) {
		service.EXPECT().Update(gomock.Any(), operator, gomock.Any(), gomock.Any()).Return(nil, betservice.ErrBetNotFound)

		req := withPrincipal(httptest.NewRequest("PUT", "/api/bets/bet-x", bytes.NewReader([]byte(body))), operator)
		rr := httptest.NewRecorder()

		handler.UpdateBet(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteBet(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Bet deleted", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), operator, "bet-1").Return(nil)

		req := withPrincipal(httptest.NewRequest("DELETE", "/api/bets/bet-1", nil), operator)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "bet-1")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rr := httptest.NewRecorder()

		handler.DeleteBet(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Bet deleted", resp.Message)
	})

	t.Run("Foreign bet", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), operator, gomock.Any()).Return(access.ErrForbidden)

		req := withPrincipal(httptest.NewRequest("DELETE", "/api/bets/bet-2", nil), operator)
		rr := httptest.NewRecorder()

		handler.DeleteBet(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
