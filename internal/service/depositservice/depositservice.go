package depositservice

import (
	"context"
	"errors"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/pg"
	"go.uber.org/zap"
)

type DepositRepo interface {
	Create(ctx context.Context, d *domain.Deposit) (*domain.Deposit, error)
	List(ctx context.Context, scope access.Scope) ([]domain.Deposit, error)
}

type AccountRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	ApplyDeposit(ctx context.Context, accountID string, amount float64) error
}

type Service struct {
	depositRepo DepositRepo
	accountRepo AccountRepo
	txManager   pg.TXManager
}

func New(depositRepo DepositRepo, accountRepo AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		depositRepo: depositRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
	}
}

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrAccountNotFound = errors.New("account not found")
)

type Input struct {
	Date        time.Time
	AccountID   string
	Amount      float64
	Description string
}

// Create records a deposit and bumps the target account's balances inside
// one transaction, so the deposit row and the balance patch land together
// or not at all.
func (s *Service) Create(ctx context.Context, p access.Principal, in Input) (*domain.Deposit, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
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

	deposit := &domain.Deposit{
		Date:        in.Date,
		AccountID:   in.AccountID,
		Amount:      in.Amount,
		Description: in.Description,
		CreatedBy:   p.ProfileID,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.depositRepo.Create(ctx, deposit); err != nil {
			return err
		}
		return s.accountRepo.ApplyDeposit(ctx, in.AccountID, in.Amount)
	})
	if err != nil {
		zap.L().Error("can't record deposit: ", zap.Error(err))
		return nil, err
	}

	return deposit, nil
}

func (s *Service) List(ctx context.Context, p access.Principal) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.List(ctx, p.RowScope())
	if err != nil {
		zap.L().Error("failed to list deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}
