// Package settle keeps the stored profit column consistent with the stake,
// odds and result recorded on each bet. Profit is written by the API at
// mutation time; the sweep re-derives it periodically so that rows touched
// by migrations or manual edits converge on the same figure.
package settle

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/brunodmn/betoffice/internal/betmath"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/metrics"
)

// The profit column is NUMERIC(12, 2), so the derived value is rounded to
// cents before comparison and anything closer than half a cent is in sync.
const profitEpsilon = 0.005

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

var processingBets sync.Map

type BetRepo interface {
	FindRecent(ctx context.Context, since time.Time, limit uint32) ([]domain.Bet, error)
	Update(ctx context.Context, b *domain.Bet) error
}

type Service struct {
	betRepo       BetRepo
	limit         uint32
	lookback      time.Duration
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(betRepo BetRepo) *Service {
	return &Service{
		betRepo:       betRepo,
		limit:         1000,
		lookback:      45 * 24 * time.Hour,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Minute,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement sweep started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement sweep")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	since := time.Now().Add(-s.lookback)
	bets, err := s.betRepo.FindRecent(ctx, since, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch bets for settlement sweep", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, bet := range bets {
		bet := bet

		if _, loaded := processingBets.LoadOrStore(bet.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingBets.Delete(bet.ID)
				return s.settle(ctx, bet)
			})
			if err != nil {
				processingBets.Delete(bet.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping bets", zap.Error(err))
	}
}

func (s *Service) settle(ctx context.Context, bet domain.Bet) error {
	derived := roundCents(betmath.Profit(bet.Stake, bet.Odds, bet.Result))
	if math.Abs(derived-bet.Profit) < profitEpsilon {
		return nil
	}

	zap.L().Info("Correcting stored bet profit",
		zap.String("betID", bet.ID),
		zap.Float64("stored", bet.Profit),
		zap.Float64("derived", derived),
	)
	bet.Profit = derived
	if err := s.betRepo.Update(ctx, &bet); err != nil {
		return err
	}
	metrics.SettledBets.Inc()
	return nil
}
