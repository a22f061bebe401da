package bankrepo

import (
	"context"

	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) List(ctx context.Context) ([]domain.BankBalance, error) {
	rows, err := repo.db.Query(ctx,
		"SELECT id, bank_name, current_balance, updated_at FROM bank_balances ORDER BY bank_name")
	if err != nil {
		zap.L().Error("can't list bank balances", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var balances []domain.BankBalance
	for rows.Next() {
		var b domain.BankBalance
		if err := rows.Scan(&b.ID, &b.BankName, &b.CurrentBalance, &b.UpdatedAt); err != nil {
			zap.L().Error("can't scan bank balance row", zap.Error(err))
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, nil
}

// Upsert records the manually reconciled balance for a bank.
func (repo *Repository) Upsert(ctx context.Context, bankName string, balance float64) (*domain.BankBalance, error) {
	query := `
		INSERT INTO bank_balances (bank_name, current_balance)
		VALUES ($1, $2)
		ON CONFLICT (bank_name)
		DO UPDATE SET current_balance = EXCLUDED.current_balance, updated_at = now()
		RETURNING id, bank_name, current_balance, updated_at
	`
	var b domain.BankBalance
	err := repo.db.QueryRow(ctx, query, bankName, balance).
		Scan(&b.ID, &b.BankName, &b.CurrentBalance, &b.UpdatedAt)
	if err != nil {
		zap.L().Error("can't upsert bank balance", zap.Error(err))
		return nil, err
	}
	return &b, nil
}
