package settle

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

// inlinePool runs every task on the calling goroutine so sweeps finish
// before assertions run.
type inlinePool struct{}

func (inlinePool) AddTask(ctx context.Context, task Task) error { return task() }
func (inlinePool) Close()                                       {}

func NewMock(t *testing.T) (*Service, *MockBetRepo) {
	ctrl := gomock.NewController(t)
	betRepo := NewMockBetRepo(ctrl)
	service := New(betRepo)
	service.workerPool = inlinePool{}
	defer ctrl.Finish()
	return service, betRepo
}

func TestSettle(t *testing.T) {
	ctx := context.Background()

	t.Run("Drifted profit is corrected", func(t *testing.T) {
		service, betRepo := NewMock(t)

		betRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, b *domain.Bet) error {
			assert.Equal(t, 100.0, b.Profit)
			return nil
		})

		err := service.settle(ctx, domain.Bet{ID: "bet-1", Stake: 100, Odds: 2.0, Result: domain.ResultGreen, Profit: 85})
		assert.NoError(t, err)
	})

	t.Run("Consistent profit is left alone", func(t *testing.T) {
		service, _ := NewMock(t)

		err := service.settle(ctx, domain.Bet{ID: "bet-1", Stake: 100, Odds: 2.0, Result: domain.ResultGreen, Profit: 100})
		assert.NoError(t, err)
	})

	t.Run("Float noise within epsilon is ignored", func(t *testing.T) {
		service, _ := NewMock(t)

		err := service.settle(ctx, domain.Bet{ID: "bet-1", Stake: 100, Odds: 2.0, Result: domain.ResultGreen, Profit: 100 + 1e-12})
		assert.NoError(t, err)
	})

	t.Run("Fractional-cent profit stored at column precision is settled", func(t *testing.T) {
		service, _ := NewMock(t)

		// 33.33 * 0.91 = 30.3303, which NUMERIC(12, 2) stores as 30.33.
		err := service.settle(ctx, domain.Bet{ID: "bet-1", Stake: 33.33, Odds: 1.91, Result: domain.ResultGreen, Profit: 30.33})
		assert.NoError(t, err)
	})

	t.Run("Corrections are written in cents", func(t *testing.T) {
		service, betRepo := NewMock(t)

		betRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, b *domain.Bet) error {
			assert.Equal(t, 30.33, b.Profit)
			return nil
		})

		err := service.settle(ctx, domain.Bet{ID: "bet-1", Stake: 33.33, Odds: 1.91, Result: domain.ResultGreen, Profit: 28})
		assert.NoError(t, err)
	})

	t.Run("Pending bet converges on zero", func(t *testing.T) {
		service, betRepo := NewMock(t)

		betRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, b *domain.Bet) error {
			assert.Equal(t, 0.0, b.Profit)
			return nil
		})

		err := service.settle(ctx, domain.Bet{ID: "bet-1", Stake: 100, Odds: 2.0, Result: domain.ResultPending, Profit: 100})
		assert.NoError(t, err)
	})
}

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("Only drifted bets are written back", func(t *testing.T) {
		service, betRepo := NewMock(t)

		betRepo.EXPECT().FindRecent(ctx, gomock.Any(), uint32(1000)).DoAndReturn(
			func(ctx context.Context, since time.Time, limit uint32) ([]domain.Bet, error) {
				assert.True(t, since.Before(time.Now()))
				return []domain.Bet{
					{ID: "bet-ok", Stake: 100, Odds: 2.0, Result: domain.ResultGreen, Profit: 100},
					{ID: "bet-drift", Stake: 50, Odds: 1.5, Result: domain.ResultRed, Profit: 0},
				}, nil
			})
		betRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, b *domain.Bet) error {
			assert.Equal(t, "bet-drift", b.ID)
			assert.Equal(t, -50.0, b.Profit)
			return nil
		})

		service.sweep(ctx)
	})

	t.Run("Re-sweeping a corrected bet performs no further writes", func(t *testing.T) {
		service, betRepo := NewMock(t)

		bet := domain.Bet{ID: "bet-1", Stake: 33.33, Odds: 1.91, Result: domain.ResultGreen, Profit: 28}

		betRepo.EXPECT().FindRecent(ctx, gomock.Any(), uint32(1000)).DoAndReturn(
			func(ctx context.Context, since time.Time, limit uint32) ([]domain.Bet, error) {
				return []domain.Bet{bet}, nil
			}).Times(3)
		betRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, b *domain.Bet) error {
			// The column rounds to two decimals on write.
			bet.Profit = math.Round(b.Profit*100) / 100
			return nil
		}).Times(1)

		for i := 0; i < 3; i++ {
			service.sweep(ctx)
		}
	})

	t.Run("Fetch failure skips the cycle", func(t *testing.T) {
		service, betRepo := NewMock(t)

		betRepo.EXPECT().FindRecent(ctx, gomock.Any(), uint32(1000)).Return(nil, errors.New("db error"))

		service.sweep(ctx)
	})

	t.Run("A bet already in flight is not re-queued", func(t *testing.T) {
		service, betRepo := NewMock(t)

		processingBets.Store("bet-busy", struct{}{})
		defer processingBets.Delete("bet-busy")

		betRepo.EXPECT().FindRecent(ctx, gomock.Any(), uint32(1000)).Return([]domain.Bet{
			{ID: "bet-busy", Stake: 100, Odds: 2.0, Result: domain.ResultGreen, Profit: 0},
		}, nil)

		service.sweep(ctx)
	})
}
