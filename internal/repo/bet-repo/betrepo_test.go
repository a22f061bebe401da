package betrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var betRows = []string{
	"id", "date", "operator_id", "account_id", "bookmaker_id", "stake", "odds",
	"result", "profit", "market_time", "sport", "software_tool", "expected_value",
	"teams", "bet_description",
}

func sampleRow(rows *pgxmock.Rows, id string, date time.Time, operatorID string, profit float64) *pgxmock.Rows {
	return rows.AddRow(
		id, date, operatorID, "acc-1", "bm-1", 100.0, 2.0,
		domain.ResultGreen, profit, domain.MarketFullTime, "futebol", "", (*float64)(nil),
		"", "",
	)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	date := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Bet found",
			id:   "bet-1",
			mockSetup: func() {
				rows := sampleRow(pgxmock.NewRows(betRows), "bet-1", date, "op-1", 100)
				mock.ExpectQuery("SELECT .+ FROM bets WHERE id = \\$1").
					WithArgs("bet-1").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Bet not found",
			id:   "bet-x",
			mockSetup: func() {
				mock.ExpectQuery("SELECT .+ FROM bets WHERE id = \\$1").
					WithArgs("bet-x").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   "bet-1",
			mockSetup: func() {
				mock.ExpectQuery("SELECT .+ FROM bets WHERE id = \\$1").
					WithArgs("bet-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, "bet-1", result.ID)
				assert.Equal(t, 100.0, result.Profit)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	from := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Unrestricted scope queries the whole period", func(t *testing.T) {
		rows := sampleRow(pgxmock.NewRows(betRows), "bet-1", from, "op-1", 100)
		rows = sampleRow(rows, "bet-2", from, "op-2", -50)
		mock.ExpectQuery(`SELECT .+ FROM bets WHERE date BETWEEN \$1 AND \$2 ORDER BY \(result = 'pendente'\) DESC, date DESC, created_at DESC`).
			WithArgs(from, to).
			WillReturnRows(rows)

		bets, err := repo.List(context.Background(), access.Scope{}, from, to)
		assert.NoError(t, err)
		assert.Len(t, bets, 2)
	})

	t.Run("Restricted scope filters by operator", func(t *testing.T) {
		rows := sampleRow(pgxmock.NewRows(betRows), "bet-1", from, "op-1", 100)
		mock.ExpectQuery(`SELECT .+ FROM bets WHERE date BETWEEN \$1 AND \$2 AND operator_id = \$3 ORDER BY`).
			WithArgs(from, to, "op-1").
			WillReturnRows(rows)

		bets, err := repo.List(context.Background(), access.Scope{OperatorID: "op-1"}, from, to)
		assert.NoError(t, err)
		assert.Len(t, bets, 1)
		assert.Equal(t, "op-1", bets[0].OperatorID)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	date := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)

	bet := &domain.Bet{
		Date:       date,
		OperatorID: "op-1",
		AccountID:  "acc-1",

		BookmakerID: "bm-1",
		Stake:       100,
		Odds:        2.0,
		Result:      domain.ResultGreen,
		Profit:      100,
		MarketTime:  domain.MarketFullTime,
		Sport:       "futebol",
	}

	t.Run("Insert returns the generated id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bets")).
			WithArgs(
				bet.Date, bet.OperatorID, bet.AccountID, bet.BookmakerID, bet.Stake, bet.Odds,
				bet.Result, bet.Profit, bet.MarketTime, bet.Sport, bet.SoftwareTool, bet.ExpectedValue,
				bet.Teams, bet.BetDescription,
			).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("bet-1"))

		created, err := repo.Create(context.Background(), bet)
		assert.NoError(t, err)
		assert.Equal(t, "bet-1", created.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bets")).
			WithArgs(
				bet.Date, bet.OperatorID, bet.AccountID, bet.BookmakerID, bet.Stake, bet.Odds,
				bet.Result, bet.Profit, bet.MarketTime, bet.Sport, bet.SoftwareTool, bet.ExpectedValue,
				bet.Teams, bet.BetDescription,
			).
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), bet)
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_SumProfit(t *testing.T) {
	repo, mock := NewMock(t)
	from := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Sum is returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(profit), 0) FROM bets WHERE date BETWEEN $1 AND $2")).
			WithArgs(from, to).
			WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(1234.5))

		sum, err := repo.SumProfit(context.Background(), from, to)
		assert.NoError(t, err)
		assert.Equal(t, 1234.5, sum)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(profit), 0) FROM bets WHERE date BETWEEN $1 AND $2")).
			WithArgs(from, to).
			WillReturnError(errors.New("database error"))

		sum, err := repo.SumProfit(context.Background(), from, to)
		assert.Error(t, err)
		assert.Zero(t, sum)
	})
}

func TestRepository_FindRecent(t *testing.T) {
	repo, mock := NewMock(t)
	since := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Recent bets returned", func(t *testing.T) {
		rows := sampleRow(pgxmock.NewRows(betRows), "bet-1", since, "op-1", 100)
		mock.ExpectQuery(`SELECT .+ FROM bets WHERE updated_at >= \$1 ORDER BY updated_at DESC LIMIT \$2`).
			WithArgs(since, uint32(1000)).
			WillReturnRows(rows)

		bets, err := repo.FindRecent(context.Background(), since, 1000)
		assert.NoError(t, err)
		assert.Len(t, bets, 1)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Bet deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bets WHERE id = $1")).
			WithArgs("bet-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), "bet-1"))
	})
}
