package transactionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const transactionColumns = `id, date, type, COALESCE(category, ''), amount,
	COALESCE(description, ''), COALESCE(bank_name, ''),
	COALESCE(related_operator_id::text, ''), COALESCE(related_account_id::text, '')`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTransaction(row pgx.Row, t *domain.Transaction) error {
	return row.Scan(
		&t.ID, &t.Date, &t.Type, &t.Category, &t.Amount,
		&t.Description, &t.BankName, &t.RelatedOperatorID, &t.RelatedAccountID,
	)
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := scanTransaction(repo.db.QueryRow(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id), &tx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

func (repo *Repository) List(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE date BETWEEN $1 AND $2 ORDER BY date DESC, created_at DESC"
	rows, err := repo.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := scanTransaction(rows, &tx); err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (repo *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (date, type, category, amount, description, bank_name,
			related_operator_id, related_account_id)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NULLIF($6, ''),
			NULLIF($7, '')::uuid, NULLIF($8, '')::uuid)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query,
		t.Date, t.Type, t.Category, t.Amount, t.Description, t.BankName,
		t.RelatedOperatorID, t.RelatedAccountID,
	).Scan(&t.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (repo *Repository) Update(ctx context.Context, t *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET date = $2, type = $3, category = NULLIF($4, ''), amount = $5,
			description = NULLIF($6, ''), bank_name = NULLIF($7, '')
		WHERE id = $1
	`
	_, err := repo.db.Exec(ctx, query, t.ID, t.Date, t.Type, t.Category, t.Amount, t.Description, t.BankName)
	if err != nil {
		zap.L().Error("can't update transaction", zap.Error(err))
	}
	return err
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete transaction", zap.Error(err))
	}
	return err
}
