package betservice

import (
	"context"
	"errors"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/betmath"
	"github.com/brunodmn/betoffice/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Bet, error)
	List(ctx context.Context, scope access.Scope, from, to time.Time) ([]domain.Bet, error)
	Create(ctx context.Context, b *domain.Bet) (*domain.Bet, error)
	Update(ctx context.Context, b *domain.Bet) error
	Delete(ctx context.Context, id string) error
}

type AccountRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}

type Service struct {
	repo        Repo
	accountRepo AccountRepo
}

func New(repo Repo, accountRepo AccountRepo) *Service {
	return &Service{
		repo:        repo,
		accountRepo: accountRepo,
	}
}

var (
	ErrInvalidStake    = errors.New("stake must be positive")
	ErrInvalidOdds     = errors.New("odds must be at least 1")
	ErrInvalidResult   = errors.New("unknown bet result")
	ErrBetNotFound     = errors.New("bet not found")
	ErrAccountNotFound = errors.New("account not found")
)

type Input struct {
	Date           time.Time
	AccountID      string
	Stake          float64
	Odds           float64
	Result         domain.BetResult
	MarketTime     domain.MarketTime
	Sport          string
	SoftwareTool   string
	ExpectedValue  *float64
	Teams          string
	BetDescription string
}

func validResult(r domain.BetResult) bool {
	switch r {
	case domain.ResultGreen, domain.ResultRed, domain.ResultVoid,
		domain.ResultHalfGreen, domain.ResultHalfRed, domain.ResultPending:
		return true
	}
	return false
}

func (s *Service) validate(in Input) error {
	if in.Stake <= 0 {
		return ErrInvalidStake
	}
	if in.Odds < 1 {
		return ErrInvalidOdds
	}
	if !validResult(in.Result) {
		return ErrInvalidResult
	}
	return nil
}

// Create records a bet. The stored profit is derived here, never taken
// from the caller, and the bookmaker is denormalized from the account.
func (s *Service) Create(ctx context.Context, p access.Principal, in Input) (*domain.Bet, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindByID(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := p.CanMutateRecord(account.OperatorID); err != nil {
		return nil, err
	}

	bet := &domain.Bet{
		Date:           in.Date,
		OperatorID:     account.OperatorID,
		AccountID:      account.ID,
		BookmakerID:    account.BookmakerID,
		Stake:          in.Stake,
		Odds:           in.Odds,
		Result:         in.Result,
		Profit:         betmath.Profit(in.Stake, in.Odds, in.Result),
		MarketTime:     in.MarketTime,
		Sport:          in.Sport,
		SoftwareTool:   in.SoftwareTool,
		ExpectedValue:  in.ExpectedValue,
		Teams:          in.Teams,
		BetDescription: in.BetDescription,
	}

	created, err := s.repo.Create(ctx, bet)
	if err != nil {
		zap.L().Error("can't save bet: ", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// List returns the month's bets under the caller's row scope. Admins may
// narrow the unrestricted scope to a single operator; the filter is ignored
// for operators, whose scope is already fixed to themselves.
func (s *Service) List(ctx context.Context, p access.Principal, from, to time.Time, operatorID string) ([]domain.Bet, error) {
	scope := p.RowScope()
	if !scope.Restricted() && operatorID != "" {
		scope.OperatorID = operatorID
	}
	bets, err := s.repo.List(ctx, scope, from, to)
	if err != nil {
		zap.L().Error("failed to list bets", zap.Error(err))
		return nil, err
	}
	return bets, nil
}

// Update rewrites a bet and re-derives its profit.
func (s *Service) Update(ctx context.Context, p access.Principal, id string, in Input) (*domain.Bet, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	bet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bet == nil {
		return nil, ErrBetNotFound
	}
	if err := p.CanMutateRecord(bet.OperatorID); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindByID(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := p.CanMutateRecord(account.OperatorID); err != nil {
		return nil, err
	}

	bet.Date = in.Date
	bet.AccountID = account.ID
	bet.BookmakerID = account.BookmakerID
	bet.Stake = in.Stake
	bet.Odds = in.Odds
	bet.Result = in.Result
	bet.Profit = betmath.Profit(in.Stake, in.Odds, in.Result)
	bet.MarketTime = in.MarketTime
	bet.Sport = in.Sport
	bet.SoftwareTool = in.SoftwareTool
	bet.ExpectedValue = in.ExpectedValue
	bet.Teams = in.Teams
	bet.BetDescription = in.BetDescription

	if err := s.repo.Update(ctx, bet); err != nil {
		zap.L().Error("can't update bet: ", zap.Error(err))
		return nil, err
	}
	return bet, nil
}

func (s *Service) Delete(ctx context.Context, p access.Principal, id string) error {
	bet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if bet == nil {
		return ErrBetNotFound
	}
	if err := p.CanMutateRecord(bet.OperatorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
