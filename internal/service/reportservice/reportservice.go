package reportservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/betmath"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/dto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const cacheTTL = 60 * time.Second

type BetRepo interface {
	List(ctx context.Context, scope access.Scope, from, to time.Time) ([]domain.Bet, error)
	SumProfit(ctx context.Context, from, to time.Time) (float64, error)
}

type ProfileRepo interface {
	List(ctx context.Context) ([]domain.Profile, error)
}

type BookmakerRepo interface {
	List(ctx context.Context, onlyActive bool) ([]domain.Bookmaker, error)
}

type AccountRepo interface {
	SumLimitedPurchases(ctx context.Context, from, to time.Time) (float64, error)
}

type TransactionRepo interface {
	List(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
}

type DepositRepo interface {
	SumAmount(ctx context.Context, from, to time.Time) (float64, error)
}

// Cache keeps report payloads warm between dashboard refreshes. A miss is
// any error; reports always recompute on miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type Service struct {
	betRepo         BetRepo
	profileRepo     ProfileRepo
	bookmakerRepo   BookmakerRepo
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	depositRepo     DepositRepo
	cache           Cache
}

func New(betRepo BetRepo, profileRepo ProfileRepo, bookmakerRepo BookmakerRepo, accountRepo AccountRepo, transactionRepo TransactionRepo, depositRepo DepositRepo, cache Cache) *Service {
	return &Service{
		betRepo:         betRepo,
		profileRepo:     profileRepo,
		bookmakerRepo:   bookmakerRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		depositRepo:     depositRepo,
		cache:           cache,
	}
}

// MonthRange expands YYYY-MM into the first and last calendar day.
func MonthRange(month time.Time) (time.Time, time.Time) {
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

func monthKey(month time.Time) string {
	return month.Format("2006-01")
}

func (s *Service) cached(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	payload, err := s.cache.Get(ctx, key)
	if err != nil || payload == nil {
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		zap.L().Warn("bad report cache payload", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Service) store(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, cacheTTL); err != nil {
		zap.L().Warn("can't store report cache", zap.String("key", key), zap.Error(err))
	}
}

// Dashboard is the month's general stats plus one section per software
// tool, scoped to the caller's own bets unless they are an admin.
func (s *Service) Dashboard(ctx context.Context, p access.Principal, month time.Time) (*dto.DashboardResponseDTO, error) {
	key := fmt.Sprintf("report:dashboard:%s:%s", p.ProfileID, monthKey(month))
	var cachedResp dto.DashboardResponseDTO
	if s.cached(ctx, key, &cachedResp) {
		return &cachedResp, nil
	}

	from, to := MonthRange(month)
	bets, err := s.betRepo.List(ctx, p.RowScope(), from, to)
	if err != nil {
		zap.L().Error("failed to load dashboard bets", zap.Error(err))
		return nil, err
	}

	resp := &dto.DashboardResponseDTO{
		Month:    monthKey(month),
		General:  betmath.Compute(bets),
		Sections: betmath.BySoftware(bets),
	}
	s.store(ctx, key, resp)
	return resp, nil
}

// Analytics is the admin-wide month report: global stats plus operator,
// sport and bookmaker breakdowns. Bets, profiles and bookmakers load in
// parallel.
func (s *Service) Analytics(ctx context.Context, p access.Principal, month time.Time) (*dto.AnalyticsResponseDTO, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}

	key := "report:analytics:" + monthKey(month)
	var cachedResp dto.AnalyticsResponseDTO
	if s.cached(ctx, key, &cachedResp) {
		return &cachedResp, nil
	}

	from, to := MonthRange(month)

	var (
		bets       []domain.Bet
		profiles   []domain.Profile
		bookmakers []domain.Bookmaker
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bets, err = s.betRepo.List(gctx, access.Scope{}, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		profiles, err = s.profileRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bookmakers, err = s.bookmakerRepo.List(gctx, false)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load analytics data", zap.Error(err))
		return nil, err
	}

	operatorNames := make(map[string]string, len(profiles))
	for _, profile := range profiles {
		operatorNames[profile.ID] = profile.Name
	}
	bookmakerNames := make(map[string]string, len(bookmakers))
	for _, bookmaker := range bookmakers {
		bookmakerNames[bookmaker.ID] = bookmaker.Name
	}

	operators := betmath.ByOperator(bets, operatorNames)

	resp := &dto.AnalyticsResponseDTO{
		Month:       monthKey(month),
		General:     betmath.Compute(bets),
		Operators:   operators,
		Sports:      betmath.BySport(bets),
		Bookmakers:  betmath.ByBookmaker(bets, bookmakerNames),
		OperatorQty: len(operators),
	}
	s.store(ctx, key, resp)
	return resp, nil
}

// DRE composes the month's income statement from company-wide figures.
func (s *Service) DRE(ctx context.Context, p access.Principal, month time.Time) (*dto.DREResponseDTO, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}

	from, to := MonthRange(month)

	revenue, err := s.betRepo.SumProfit(ctx, from, to)
	if err != nil {
		return nil, err
	}
	variableCosts, err := s.accountRepo.SumLimitedPurchases(ctx, from, to)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactionRepo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &dto.DREResponseDTO{
		Month: monthKey(month),
		DRE: betmath.ComposeDRE(betmath.DREInput{
			Revenue:       revenue,
			VariableCosts: variableCosts,
			FixedCosts:    betmath.FixedCosts(txs),
			Investments:   betmath.Investments(txs),
			Withdrawals:   betmath.Withdrawals(txs),
		}),
	}, nil
}

// Caixa is the cash-flow companion of the DRE.
func (s *Service) Caixa(ctx context.Context, p access.Principal, month time.Time) (*dto.CaixaResponseDTO, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}

	from, to := MonthRange(month)

	revenue, err := s.betRepo.SumProfit(ctx, from, to)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactionRepo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	deposits, err := s.depositRepo.SumAmount(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &dto.CaixaResponseDTO{
		Month: monthKey(month),
		Caixa: betmath.ComposeCaixa(betmath.CaixaInput{
			Investments:     betmath.Investments(txs),
			Revenue:         revenue,
			Withdrawals:     betmath.Withdrawals(txs),
			OtherOutflows:   betmath.OtherOutflows(txs),
			AccountDeposits: deposits,
		}),
	}, nil
}
