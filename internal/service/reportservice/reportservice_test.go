package reportservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/dto"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	betRepo         *MockBetRepo
	profileRepo     *MockProfileRepo
	bookmakerRepo   *MockBookmakerRepo
	accountRepo     *MockAccountRepo
	transactionRepo *MockTransactionRepo
	depositRepo     *MockDepositRepo
	cache           *MockCache
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		betRepo:         NewMockBetRepo(ctrl),
		profileRepo:     NewMockProfileRepo(ctrl),
		bookmakerRepo:   NewMockBookmakerRepo(ctrl),
		accountRepo:     NewMockAccountRepo(ctrl),
		transactionRepo: NewMockTransactionRepo(ctrl),
		depositRepo:     NewMockDepositRepo(ctrl),
		cache:           NewMockCache(ctrl),
	}
	service := New(m.betRepo, m.profileRepo, m.bookmakerRepo, m.accountRepo, m.transactionRepo, m.depositRepo, m.cache)
	defer ctrl.Finish()
	return service, m
}

var (
	admin    = access.Principal{ProfileID: "admin-1", Role: domain.RoleAdmin}
	operator = access.Principal{ProfileID: "op-1", Role: domain.RoleOperator}

	august = time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
)

func TestMonthRange(t *testing.T) {
	from, to := MonthRange(august)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), to)

	from, to = MonthRange(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, from.Day())
	assert.Equal(t, 28, to.Day())
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	from, to := MonthRange(august)

	t.Run("Operator sees their own bets grouped by software", func(t *testing.T) {
		service, m := NewMock(t)

		m.cache.EXPECT().Get(ctx, "report:dashboard:op-1:2026-08").Return(nil, errors.New("redis: nil"))
		m.betRepo.EXPECT().List(ctx, access.Scope{OperatorID: "op-1"}, from, to).Return([]domain.Bet{
			{Stake: 100, Profit: 100, Result: domain.ResultGreen, SoftwareTool: "BetBurger"},
			{Stake: 50, Profit: -50, Result: domain.ResultRed, SoftwareTool: ""},
		}, nil)
		m.cache.EXPECT().Set(ctx, "report:dashboard:op-1:2026-08", gomock.Any(), cacheTTL).Return(nil)

		resp, err := service.Dashboard(ctx, operator, august)
		assert.NoError(t, err)
		assert.Equal(t, "2026-08", resp.Month)
		assert.Equal(t, 150.0, resp.General.TotalVolume)
		assert.Equal(t, 50.0, resp.General.TotalProfit)
		assert.Equal(t, 50.0, resp.General.WinRate)
		assert.Len(t, resp.Sections, 2)
		assert.Equal(t, "BetBurger", resp.Sections[0].Label)
		assert.Equal(t, "Outros", resp.Sections[1].Label)
	})

	t.Run("Cache hit skips the repository", func(t *testing.T) {
		service, m := NewMock(t)

		warm := dto.DashboardResponseDTO{Month: "2026-08"}
		warm.General.TotalProfit = 42
		payload, _ := json.Marshal(warm)
		m.cache.EXPECT().Get(ctx, "report:dashboard:op-1:2026-08").Return(payload, nil)

		resp, err := service.Dashboard(ctx, operator, august)
		assert.NoError(t, err)
		assert.Equal(t, 42.0, resp.General.TotalProfit)
	})

	t.Run("Corrupt cache payload falls through to a recompute", func(t *testing.T) {
		service, m := NewMock(t)

		m.cache.EXPECT().Get(ctx, "report:dashboard:op-1:2026-08").Return([]byte("{not json"), nil)
		m.betRepo.EXPECT().List(ctx, access.Scope{OperatorID: "op-1"}, from, to).Return(nil, nil)
		m.cache.EXPECT().Set(ctx, "report:dashboard:op-1:2026-08", gomock.Any(), cacheTTL).Return(nil)

		resp, err := service.Dashboard(ctx, operator, august)
		assert.NoError(t, err)
		assert.Equal(t, 0, resp.General.TotalBets)
	})

	t.Run("Repository error", func(t *testing.T) {
		service, m := NewMock(t)

		m.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
		m.betRepo.EXPECT().List(ctx, access.Scope{OperatorID: "op-1"}, from, to).Return(nil, errors.New("db error"))

		resp, err := service.Dashboard(ctx, operator, august)
		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}

func TestAnalytics(t *testing.T) {
	ctx := context.Background()
	from, to := MonthRange(august)

	t.Run("Operator is forbidden", func(t *testing.T) {
		service, _ := NewMock(t)

		resp, err := service.Analytics(ctx, operator, august)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, access.ErrForbidden)
	})

	t.Run("Admin gets company-wide breakdowns", func(t *testing.T) {
		service, m := NewMock(t)

		m.cache.EXPECT().Get(ctx, "report:analytics:2026-08").Return(nil, nil)
		m.betRepo.EXPECT().List(gomock.Any(), access.Scope{}, from, to).Return([]domain.Bet{
			{Stake: 100, Profit: 100, Result: domain.ResultGreen, OperatorID: "op-1", BookmakerID: "bm-1", Sport: "futebol"},
			{Stake: 100, Profit: -100, Result: domain.ResultRed, OperatorID: "op-2", BookmakerID: "bm-1", Sport: "basquete"},
			{Stake: 200, Profit: 200, Result: domain.ResultGreen, OperatorID: "ghost", BookmakerID: "bm-2", Sport: "futebol"},
		}, nil)
		m.profileRepo.EXPECT().List(gomock.Any()).Return([]domain.Profile{
			{ID: "op-1", Name: "Ana"},
			{ID: "op-2", Name: "Bia"},
		}, nil)
		m.bookmakerRepo.EXPECT().List(gomock.Any(), false).Return([]domain.Bookmaker{
			{ID: "bm-1", Name: "Bet365"},
		}, nil)
		m.cache.EXPECT().Set(ctx, "report:analytics:2026-08", gomock.Any(), cacheTTL).Return(nil)

		resp, err := service.Analytics(ctx, admin, august)
		assert.NoError(t, err)
		assert.Equal(t, 400.0, resp.General.TotalVolume)
		assert.Equal(t, 3, resp.OperatorQty)

		// profit desc; the profile-less operator lands in the unknown bucket
		assert.Equal(t, "Desconhecido", resp.Operators[0].Label)
		assert.Equal(t, "Ana", resp.Operators[1].Label)
		assert.Equal(t, "Bia", resp.Operators[2].Label)

		assert.Equal(t, "futebol", resp.Sports[0].Label)
		assert.Equal(t, 300.0, resp.Sports[0].TotalProfit)

		assert.Equal(t, "Desconhecido", resp.Bookmakers[0].Label)
		assert.Equal(t, "Bet365", resp.Bookmakers[1].Label)
	})

	t.Run("Load failure surfaces", func(t *testing.T) {
		service, m := NewMock(t)

		m.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
		m.betRepo.EXPECT().List(gomock.Any(), access.Scope{}, from, to).Return(nil, errors.New("db error"))
		m.profileRepo.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
		m.bookmakerRepo.EXPECT().List(gomock.Any(), false).Return(nil, nil).AnyTimes()

		resp, err := service.Analytics(ctx, admin, august)
		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}

func TestDRE(t *testing.T) {
	ctx := context.Background()
	from, to := MonthRange(august)

	t.Run("Operator is forbidden", func(t *testing.T) {
		service, _ := NewMock(t)

		resp, err := service.DRE(ctx, operator, august)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, access.ErrForbidden)
	})

	t.Run("Net profit nets only costs, never capital movements", func(t *testing.T) {
		service, m := NewMock(t)

		m.betRepo.EXPECT().SumProfit(ctx, from, to).Return(1000.0, nil)
		m.accountRepo.EXPECT().SumLimitedPurchases(ctx, from, to).Return(200.0, nil)
		m.transactionRepo.EXPECT().List(ctx, from, to).Return([]domain.Transaction{
			{Type: domain.TxOperatingCost, Category: "Recorrente", Amount: -150},
			{Type: domain.TxOperatingCost, Category: "pontual", Amount: -99},
			{Type: domain.TxContribution, Amount: 5000},
			{Type: domain.TxWithdrawal, Amount: -300},
		}, nil)

		resp, err := service.DRE(ctx, admin, august)
		assert.NoError(t, err)
		assert.Equal(t, "2026-08", resp.Month)
		assert.Equal(t, 1000.0, resp.DRE.Revenue)
		assert.Equal(t, 200.0, resp.DRE.VariableCosts)
		assert.Equal(t, 150.0, resp.DRE.FixedCosts)
		assert.Equal(t, 5000.0, resp.DRE.Investments)
		assert.Equal(t, 300.0, resp.DRE.Withdrawals)
		assert.Equal(t, 650.0, resp.DRE.NetProfit)
	})

	t.Run("Revenue failure surfaces", func(t *testing.T) {
		service, m := NewMock(t)

		m.betRepo.EXPECT().SumProfit(ctx, from, to).Return(0.0, errors.New("db error"))

		resp, err := service.DRE(ctx, admin, august)
		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}

func TestCaixa(t *testing.T) {
	ctx := context.Background()
	from, to := MonthRange(august)

	t.Run("Operator is forbidden", func(t *testing.T) {
		service, _ := NewMock(t)

		resp, err := service.Caixa(ctx, operator, august)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, access.ErrForbidden)
	})

	t.Run("Saldo nets inflows and outflows, deposits reported aside", func(t *testing.T) {
		service, m := NewMock(t)

		m.betRepo.EXPECT().SumProfit(ctx, from, to).Return(1000.0, nil)
		m.transactionRepo.EXPECT().List(ctx, from, to).Return([]domain.Transaction{
			{Type: domain.TxContribution, Amount: 5000},
			{Type: domain.TxWithdrawal, Amount: -300},
			{Type: domain.TxOperatingCost, Category: "recorrente", Amount: -150},
			{Type: domain.TxAccountPurchase, Amount: -250},
		}, nil)
		m.depositRepo.EXPECT().SumAmount(ctx, from, to).Return(1200.0, nil)

		resp, err := service.Caixa(ctx, admin, august)
		assert.NoError(t, err)
		assert.Equal(t, "2026-08", resp.Month)
		assert.Equal(t, 5000.0, resp.Caixa.Investments)
		assert.Equal(t, 1000.0, resp.Caixa.Revenue)
		assert.Equal(t, 300.0, resp.Caixa.Withdrawals)
		assert.Equal(t, 400.0, resp.Caixa.OtherOutflows)
		assert.Equal(t, 1200.0, resp.Caixa.AccountDeposits)
		assert.Equal(t, 5300.0, resp.Caixa.Saldo)
	})
}
