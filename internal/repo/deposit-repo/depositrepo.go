package depositrepo

import (
	"context"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
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

func (repo *Repository) Create(ctx context.Context, d *domain.Deposit) (*domain.Deposit, error) {
	query := `
		INSERT INTO deposits (date, account_id, amount, description, created_by)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, d.Date, d.AccountID, d.Amount, d.Description, d.CreatedBy).Scan(&d.ID)
	if err != nil {
		zap.L().Error("can't save deposit", zap.Error(err))
		return nil, err
	}
	return d, nil
}

// List returns deposits newest first; for operators only those into their
// own accounts.
func (repo *Repository) List(ctx context.Context, scope access.Scope) ([]domain.Deposit, error) {
	query := `
		SELECT id, date, account_id, amount, COALESCE(description, ''), created_by
		FROM deposits
		ORDER BY date DESC, created_at DESC
	`
	args := []any{}
	if scope.Restricted() {
		query = `
		SELECT d.id, d.date, d.account_id, d.amount, COALESCE(d.description, ''), d.created_by
		FROM deposits d
		JOIN accounts a ON a.id = d.account_id
		WHERE a.operator_id = $1
		ORDER BY d.date DESC, d.created_at DESC
	`
		args = append(args, scope.OperatorID)
	}

	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		var d domain.Deposit
		if err := rows.Scan(&d.ID, &d.Date, &d.AccountID, &d.Amount, &d.Description, &d.CreatedBy); err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, d)
	}
	return deposits, nil
}

// SumAmount totals deposits into betting accounts for the period.
func (repo *Repository) SumAmount(ctx context.Context, from, to time.Time) (float64, error) {
	var sum float64
	err := repo.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE date BETWEEN $1 AND $2", from, to,
	).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum deposits", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
