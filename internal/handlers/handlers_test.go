package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/service"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	h := New(&service.Services{}, jwtService)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockBetHandler := NewMockBetHandler(ctrl)
	mockAccountHandler := NewMockAccountHandler(ctrl)
	mockDepositHandler := NewMockDepositHandler(ctrl)
	mockFinanceHandler := NewMockFinanceHandler(ctrl)
	mockCatalogHandler := NewMockCatalogHandler(ctrl)
	mockReportHandler := NewMockReportHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockBetHandler.EXPECT().AddBet(gomock.Any(), gomock.Any()).AnyTimes()
	mockBetHandler.EXPECT().GetBets(gomock.Any(), gomock.Any()).AnyTimes()
	mockBetHandler.EXPECT().UpdateBet(gomock.Any(), gomock.Any()).AnyTimes()
	mockBetHandler.EXPECT().DeleteBet(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().AddAccount(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().GetAccounts(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().AddDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().GetDeposits(gomock.Any(), gomock.Any()).AnyTimes()
	mockFinanceHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockFinanceHandler.EXPECT().GetBanks(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().GetBookmakers(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().GetSoftwareTools(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().GetAnalytics(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().GetDRE(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().GetCaixa(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().CreateUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().GetOperators(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("test-secret")
	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		BetHandler:     mockBetHandler,
		AccountHandler: mockAccountHandler,
		DepositHandler: mockDepositHandler,
		FinanceHandler: mockFinanceHandler,
		CatalogHandler: mockCatalogHandler,
		ReportHandler:  mockReportHandler,
		UserHandler:    mockUserHandler,
		jwtService:     jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	expiry := time.Now().Add(time.Hour)
	operatorToken, err := jwtService.GenerateJWT("op-1", domain.RoleOperator, expiry)
	assert.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT("admin-1", domain.RoleAdmin, expiry)
	assert.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/auth/register", "", http.StatusOK},
		{"POST", "/api/auth/login", "", http.StatusOK},

		{"POST", "/api/bets", "", http.StatusUnauthorized},
		{"GET", "/api/bets", operatorToken, http.StatusOK},
		{"GET", "/api/accounts", operatorToken, http.StatusOK},
		{"POST", "/api/deposits", operatorToken, http.StatusOK},
		{"GET", "/api/bookmakers", operatorToken, http.StatusOK},
		{"GET", "/api/software", operatorToken, http.StatusOK},
		{"GET", "/api/reports/dashboard", operatorToken, http.StatusOK},

		{"GET", "/api/reports/analytics", operatorToken, http.StatusForbidden},
		{"GET", "/api/reports/dre", operatorToken, http.StatusForbidden},
		{"GET", "/api/reports/caixa", operatorToken, http.StatusForbidden},
		{"GET", "/api/transactions", operatorToken, http.StatusForbidden},
		{"GET", "/api/banks", operatorToken, http.StatusForbidden},
		{"POST", "/api/admin/users", operatorToken, http.StatusForbidden},

		{"GET", "/api/reports/analytics", adminToken, http.StatusOK},
		{"GET", "/api/reports/dre", adminToken, http.StatusOK},
		{"GET", "/api/reports/caixa", adminToken, http.StatusOK},
		{"GET", "/api/transactions", adminToken, http.StatusOK},
		{"GET", "/api/banks", adminToken, http.StatusOK},
		{"POST", "/api/admin/users", adminToken, http.StatusOK},
		{"GET", "/api/admin/users", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
