package accountservice

import (
	"context"
	"errors"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, scope access.Scope) ([]domain.Account, error)
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidStatus   = errors.New("unknown account status")
)

type Input struct {
	BookmakerID         string
	OperatorID          string
	LoginNick           string
	CurrentStatus       domain.AccountStatus
	PurchasePrice       float64
	AcquisitionDate     time.Time
	LimitationDate      *time.Time
	VendorName          string
	CurrentBalance      float64
	PendingBalance      float64
	InitialMonthBalance float64
	Notes               string
}

func validStatus(s domain.AccountStatus) bool {
	switch s {
	case domain.AccountInUse, domain.AccountLimited, domain.AccountWarming, domain.AccountTransferred:
		return true
	}
	return false
}

// normalizeLimitation keeps limitation_date meaningful only for limited
// accounts: stamped when the status turns limitada, cleared otherwise.
func normalizeLimitation(status domain.AccountStatus, date *time.Time) *time.Time {
	if status != domain.AccountLimited {
		return nil
	}
	if date == nil {
		now := time.Now()
		return &now
	}
	return date
}

func (s *Service) Create(ctx context.Context, p access.Principal, in Input) (*domain.Account, error) {
	if !validStatus(in.CurrentStatus) {
		return nil, ErrInvalidStatus
	}

	operatorID := in.OperatorID
	if !p.IsAdmin() || operatorID == "" {
		operatorID = p.ProfileID
	}

	account := &domain.Account{
		BookmakerID:         in.BookmakerID,
		OperatorID:          operatorID,
		LoginNick:           in.LoginNick,
		CurrentStatus:       in.CurrentStatus,
		PurchasePrice:       in.PurchasePrice,
		AcquisitionDate:     in.AcquisitionDate,
		LimitationDate:      normalizeLimitation(in.CurrentStatus, in.LimitationDate),
		VendorName:          in.VendorName,
		CurrentBalance:      in.CurrentBalance,
		PendingBalance:      in.PendingBalance,
		InitialMonthBalance: in.InitialMonthBalance,
		Notes:               in.Notes,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		zap.L().Error("can't save account: ", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) List(ctx context.Context, p access.Principal) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx, p.RowScope())
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (s *Service) Update(ctx context.Context, p access.Principal, id string, in Input) (*domain.Account, error) {
	if !validStatus(in.CurrentStatus) {
		return nil, ErrInvalidStatus
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := p.CanMutateRecord(account.OperatorID); err != nil {
		return nil, err
	}

	account.BookmakerID = in.BookmakerID
	account.LoginNick = in.LoginNick
	account.CurrentStatus = in.CurrentStatus
	account.PurchasePrice = in.PurchasePrice
	account.AcquisitionDate = in.AcquisitionDate
	account.LimitationDate = normalizeLimitation(in.CurrentStatus, in.LimitationDate)
	account.VendorName = in.VendorName
	account.CurrentBalance = in.CurrentBalance
	account.PendingBalance = in.PendingBalance
	account.InitialMonthBalance = in.InitialMonthBalance
	account.Notes = in.Notes

	if err := s.repo.Update(ctx, account); err != nil {
		zap.L().Error("can't update account: ", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) Delete(ctx context.Context, p access.Principal, id string) error {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	if err := p.CanMutateRecord(account.OperatorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
