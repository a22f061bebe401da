package financeservice

import (
	"context"
	"errors"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"go.uber.org/zap"
)

type TransactionRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	Update(ctx context.Context, t *domain.Transaction) error
	Delete(ctx context.Context, id string) error
}

type BankRepo interface {
	List(ctx context.Context) ([]domain.BankBalance, error)
	Upsert(ctx context.Context, bankName string, balance float64) (*domain.BankBalance, error)
}

type Service struct {
	transactionRepo TransactionRepo
	bankRepo        BankRepo
}

func New(transactionRepo TransactionRepo, bankRepo BankRepo) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		bankRepo:        bankRepo,
	}
}

var (
	ErrInvalidType         = errors.New("unknown transaction type")
	ErrTransactionNotFound = errors.New("transaction not found")
)

func validType(t domain.TransactionType) bool {
	switch t {
	case domain.TxContribution, domain.TxWithdrawal, domain.TxOperatingCost,
		domain.TxAccountPurchase, domain.TxCorrection, domain.TxReceived:
		return true
	}
	return false
}

func (s *Service) CreateTransaction(ctx context.Context, p access.Principal, t *domain.Transaction) (*domain.Transaction, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}
	if !validType(t.Type) {
		return nil, ErrInvalidType
	}

	created, err := s.transactionRepo.Create(ctx, t)
	if err != nil {
		zap.L().Error("can't save transaction: ", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) ListTransactions(ctx context.Context, p access.Principal, from, to time.Time) ([]domain.Transaction, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}
	return s.transactionRepo.List(ctx, from, to)
}

func (s *Service) UpdateTransaction(ctx context.Context, p access.Principal, id string, t *domain.Transaction) (*domain.Transaction, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}
	if !validType(t.Type) {
		return nil, ErrInvalidType
	}

	existing, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTransactionNotFound
	}

	t.ID = id
	if err := s.transactionRepo.Update(ctx, t); err != nil {
		zap.L().Error("can't update transaction: ", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, p access.Principal, id string) error {
	if err := p.CanManageCompany(); err != nil {
		return err
	}

	existing, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTransactionNotFound
	}
	return s.transactionRepo.Delete(ctx, id)
}

func (s *Service) ListBanks(ctx context.Context, p access.Principal) ([]domain.BankBalance, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}
	return s.bankRepo.List(ctx)
}

// UpsertBank records a manually reconciled bank balance.
func (s *Service) UpsertBank(ctx context.Context, p access.Principal, bankName string, balance float64) (*domain.BankBalance, error) {
	if err := p.CanManageCompany(); err != nil {
		return nil, err
	}
	return s.bankRepo.Upsert(ctx, bankName, balance)
}
