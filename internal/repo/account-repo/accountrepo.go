package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const accountColumns = `id, bookmaker_id, operator_id, login_nick, current_status,
	purchase_price, acquisition_date, limitation_date, COALESCE(vendor_name, ''),
	current_balance, pending_balance, total_deposited, initial_month_balance,
	total_volume, COALESCE(notes, '')`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row, a *domain.Account) error {
	return row.Scan(
		&a.ID, &a.BookmakerID, &a.OperatorID, &a.LoginNick, &a.CurrentStatus,
		&a.PurchasePrice, &a.AcquisitionDate, &a.LimitationDate, &a.VendorName,
		&a.CurrentBalance, &a.PendingBalance, &a.TotalDeposited, &a.InitialMonthBalance,
		&a.TotalVolume, &a.Notes,
	)
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	err := scanAccount(repo.db.QueryRow(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = $1", id), &account)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (repo *Repository) List(ctx context.Context, scope access.Scope) ([]domain.Account, error) {
	query := "SELECT " + accountColumns + " FROM accounts ORDER BY created_at DESC"
	args := []any{}
	if scope.Restricted() {
		query = "SELECT " + accountColumns + " FROM accounts WHERE operator_id = $1 ORDER BY created_at DESC"
		args = append(args, scope.OperatorID)
	}

	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := scanAccount(rows, &account); err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (repo *Repository) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (bookmaker_id, operator_id, login_nick, current_status,
			purchase_price, acquisition_date, limitation_date, vendor_name,
			current_balance, pending_balance, initial_month_balance, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, NULLIF($12, ''))
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query,
		a.BookmakerID, a.OperatorID, a.LoginNick, a.CurrentStatus,
		a.PurchasePrice, a.AcquisitionDate, a.LimitationDate, a.VendorName,
		a.CurrentBalance, a.PendingBalance, a.InitialMonthBalance, a.Notes,
	).Scan(&a.ID)
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (repo *Repository) Update(ctx context.Context, a *domain.Account) error {
	query := `
		UPDATE accounts
		SET bookmaker_id = $2, login_nick = $3, current_status = $4,
			purchase_price = $5, acquisition_date = $6, limitation_date = $7,
			vendor_name = NULLIF($8, ''), current_balance = $9, pending_balance = $10,
			initial_month_balance = $11, notes = NULLIF($12, ''), updated_at = now()
		WHERE id = $1
	`
	_, err := repo.db.Exec(ctx, query,
		a.ID, a.BookmakerID, a.LoginNick, a.CurrentStatus,
		a.PurchasePrice, a.AcquisitionDate, a.LimitationDate, a.VendorName,
		a.CurrentBalance, a.PendingBalance, a.InitialMonthBalance, a.Notes,
	)
	if err != nil {
		zap.L().Error("can't update account", zap.Error(err))
	}
	return err
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM accounts WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete account", zap.Error(err))
	}
	return err
}

// ApplyDeposit bumps the running balances that mirror recorded deposits.
func (repo *Repository) ApplyDeposit(ctx context.Context, accountID string, amount float64) error {
	query := `
		UPDATE accounts
		SET current_balance = current_balance + $2,
			total_deposited = total_deposited + $2,
			updated_at = now()
		WHERE id = $1
	`
	_, err := repo.db.Exec(ctx, query, accountID, amount)
	if err != nil {
		zap.L().Error("can't apply deposit to account", zap.Error(err))
	}
	return err
}

// SumLimitedPurchases totals the purchase price of accounts limited inside
// the period; the DRE books them as variable costs.
func (repo *Repository) SumLimitedPurchases(ctx context.Context, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(purchase_price), 0)
		FROM accounts
		WHERE current_status = 'limitada' AND limitation_date BETWEEN $1 AND $2
	`
	var sum float64
	if err := repo.db.QueryRow(ctx, query, from, to).Scan(&sum); err != nil {
		zap.L().Error("can't sum limited account purchases", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
