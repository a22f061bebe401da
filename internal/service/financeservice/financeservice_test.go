package financeservice

import (
	"context"
	"testing"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockTransactionRepo, *MockBankRepo) {
	ctrl := gomock.NewController(t)
	transactionRepo := NewMockTransactionRepo(ctrl)
	bankRepo := NewMockBankRepo(ctrl)
	service := New(transactionRepo, bankRepo)
	defer ctrl.Finish()
	return service, transactionRepo, bankRepo
}

var (
	admin    = access.Principal{ProfileID: "admin-1", Role: domain.RoleAdmin}
	operator = access.Principal{ProfileID: "op-1", Role: domain.RoleOperator}
)

func TestCreateTransaction(t *testing.T) {
	service, transactionRepo, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Admin records a contribution", func(t *testing.T) {
		tx := &domain.Transaction{Type: domain.TxContribution, Amount: 5000, BankName: "Nubank"}
		transactionRepo.EXPECT().Create(ctx, tx).Return(tx, nil)

		created, err := service.CreateTransaction(ctx, admin, tx)
		assert.NoError(t, err)
		assert.Equal(t, 5000.0, created.Amount)
	})

	t.Run("Operator is forbidden", func(t *testing.T) {
		created, err := service.CreateTransaction(ctx, operator, &domain.Transaction{Type: domain.TxContribution})
		assert.Nil(t, created)
		assert.ErrorIs(t, err, access.ErrForbidden)
	})

	t.Run("Unknown type rejected", func(t *testing.T) {
		created, err := service.CreateTransaction(ctx, admin, &domain.Transaction{Type: "emprestimo"})
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrInvalidType)
	})
}

func TestUpdateTransaction(t *testing.T) {
	service, transactionRepo, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Existing transaction keeps its id", func(t *testing.T) {
		transactionRepo.EXPECT().FindByID(ctx, "tx-1").Return(&domain.Transaction{ID: "tx-1"}, nil)
		transactionRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, tx *domain.Transaction) error {
			assert.Equal(t, "tx-1", tx.ID)
			return nil
		})

		updated, err := service.UpdateTransaction(ctx, admin, "tx-1", &domain.Transaction{Type: domain.TxWithdrawal, Amount: -300})
		assert.NoError(t, err)
		assert.Equal(t, "tx-1", updated.ID)
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		transactionRepo.EXPECT().FindByID(ctx, "tx-x").Return(nil, nil)

		updated, err := service.UpdateTransaction(ctx, admin, "tx-x", &domain.Transaction{Type: domain.TxWithdrawal})
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestDeleteTransaction(t *testing.T) {
	service, transactionRepo, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Admin deletes", func(t *testing.T) {
		transactionRepo.EXPECT().FindByID(ctx, "tx-1").Return(&domain.Transaction{ID: "tx-1"}, nil)
		transactionRepo.EXPECT().Delete(ctx, "tx-1").Return(nil)

		assert.NoError(t, service.DeleteTransaction(ctx, admin, "tx-1"))
	})

	t.Run("Operator is forbidden", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteTransaction(ctx, operator, "tx-1"), access.ErrForbidden)
	})
}

func TestListTransactions(t *testing.T) {
	service, transactionRepo, _ := NewMock(t)
	ctx := context.Background()
	from := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Admin lists the period", func(t *testing.T) {
		transactionRepo.EXPECT().List(ctx, from, to).Return([]domain.Transaction{{ID: "tx-1"}}, nil)

		txs, err := service.ListTransactions(ctx, admin, from, to)
		assert.NoError(t, err)
		assert.Len(t, txs, 1)
	})

	t.Run("Operator is forbidden", func(t *testing.T) {
		txs, err := service.ListTransactions(ctx, operator, from, to)
		assert.Nil(t, txs)
		assert.ErrorIs(t, err, access.ErrForbidden)
	})
}

func TestBanks(t *testing.T) {
	service, _, bankRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Upsert reconciles a balance", func(t *testing.T) {
		bankRepo.EXPECT().Upsert(ctx, "Nubank", 12345.67).Return(&domain.BankBalance{BankName: "Nubank", CurrentBalance: 12345.67}, nil)

		bank, err := service.UpsertBank(ctx, admin, "Nubank", 12345.67)
		assert.NoError(t, err)
		assert.Equal(t, 12345.67, bank.CurrentBalance)
	})

	t.Run("Operator cannot see banks", func(t *testing.T) {
		banks, err := service.ListBanks(ctx, operator)
		assert.Nil(t, banks)
		assert.ErrorIs(t, err, access.ErrForbidden)
	})
}
