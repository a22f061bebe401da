package betrepo

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

const betColumns = `id, date, operator_id, account_id, bookmaker_id, stake, odds,
	result, profit, market_time, sport, COALESCE(software_tool, ''), expected_value,
	COALESCE(teams, ''), COALESCE(bet_description, '')`

// Unsettled bets surface first, the rest newest first.
const betOrdering = `ORDER BY (result = 'pendente') DESC, date DESC, created_at DESC`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanBet(row pgx.Row, b *domain.Bet) error {
	return row.Scan(
		&b.ID, &b.Date, &b.OperatorID, &b.AccountID, &b.BookmakerID, &b.Stake, &b.Odds,
		&b.Result, &b.Profit, &b.MarketTime, &b.Sport, &b.SoftwareTool, &b.ExpectedValue,
		&b.Teams, &b.BetDescription,
	)
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Bet, error) {
	var bet domain.Bet
	err := scanBet(repo.db.QueryRow(ctx, "SELECT "+betColumns+" FROM bets WHERE id = $1", id), &bet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find bet", zap.Error(err))
		return nil, err
	}
	return &bet, nil
}

func (repo *Repository) List(ctx context.Context, scope access.Scope, from, to time.Time) ([]domain.Bet, error) {
	query := "SELECT " + betColumns + " FROM bets WHERE date BETWEEN $1 AND $2 " + betOrdering
	args := []any{from, to}
	if scope.Restricted() {
		query = "SELECT " + betColumns + " FROM bets WHERE date BETWEEN $1 AND $2 AND operator_id = $3 " + betOrdering
		args = append(args, scope.OperatorID)
	}

	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list bets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		var bet domain.Bet
		if err := scanBet(rows, &bet); err != nil {
			zap.L().Error("can't scan bet row", zap.Error(err))
			return nil, err
		}
		bets = append(bets, bet)
	}
	return bets, nil
}

func (repo *Repository) Create(ctx context.Context, b *domain.Bet) (*domain.Bet, error) {
	query := `
		INSERT INTO bets (date, operator_id, account_id, bookmaker_id, stake, odds,
			result, profit, market_time, sport, software_tool, expected_value, teams, bet_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, NULLIF($13, ''), NULLIF($14, ''))
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query,
		b.Date, b.OperatorID, b.AccountID, b.BookmakerID, b.Stake, b.Odds,
		b.Result, b.Profit, b.MarketTime, b.Sport, b.SoftwareTool, b.ExpectedValue,
		b.Teams, b.BetDescription,
	).Scan(&b.ID)
	if err != nil {
		zap.L().Error("can't save bet", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (repo *Repository) Update(ctx context.Context, b *domain.Bet) error {
	query := `
		UPDATE bets
		SET date = $2, account_id = $3, bookmaker_id = $4, stake = $5, odds = $6,
			result = $7, profit = $8, market_time = $9, sport = $10,
			software_tool = NULLIF($11, ''), expected_value = $12,
			teams = NULLIF($13, ''), bet_description = NULLIF($14, ''), updated_at = now()
		WHERE id = $1
	`
	_, err := repo.db.Exec(ctx, query,
		b.ID, b.Date, b.AccountID, b.BookmakerID, b.Stake, b.Odds,
		b.Result, b.Profit, b.MarketTime, b.Sport, b.SoftwareTool, b.ExpectedValue,
		b.Teams, b.BetDescription,
	)
	if err != nil {
		zap.L().Error("can't update bet", zap.Error(err))
	}
	return err
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM bets WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete bet", zap.Error(err))
	}
	return err
}

// SumProfit totals bet profit across all operators for the period.
func (repo *Repository) SumProfit(ctx context.Context, from, to time.Time) (float64, error) {
	var sum float64
	err := repo.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(profit), 0) FROM bets WHERE date BETWEEN $1 AND $2", from, to,
	).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum bet profit", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// FindRecent returns bets written since the given instant, newest first.
// The settlement sweeper re-derives their profit column.
func (repo *Repository) FindRecent(ctx context.Context, since time.Time, limit uint32) ([]domain.Bet, error) {
	query := "SELECT " + betColumns + " FROM bets WHERE updated_at >= $1 ORDER BY updated_at DESC LIMIT $2"
	rows, err := repo.db.Query(ctx, query, since, limit)
	if err != nil {
		zap.L().Error("can't list recent bets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		var bet domain.Bet
		if err := scanBet(rows, &bet); err != nil {
			zap.L().Error("can't scan bet row", zap.Error(err))
			return nil, err
		}
		bets = append(bets, bet)
	}
	return bets, nil
}
