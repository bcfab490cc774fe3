package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gordonblake/moviereviews/domain"
)

const (
	batchSize      = 100
	maxConcurrency = 4
)

// likesReconciler periodically rewrites every review's like counter from the
// ledger. The toggle transaction keeps the counters correct by itself; this
// repairs drift introduced outside the API, such as manual database edits.
type likesReconciler struct {
	reviewRepo domain.ReviewDBRepository
	interval   time.Duration
}

func NewLikesReconciler(repo domain.ReviewDBRepository, interval time.Duration) *likesReconciler {
	return &likesReconciler{
		reviewRepo: repo,
		interval:   interval,
	}
}

func (w *likesReconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.reconcileAll(ctx); err != nil {
				logrus.Errorf("likes reconciliation failed: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("shutting down likes reconciler")
			return
		}
	}
}

func (w *likesReconciler) reconcileAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	cursor := int64(0)
	for {
		ids, err := w.reviewRepo.FetchIDs(ctx, cursor, batchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		cursor = ids[len(ids)-1]

		batch := ids
		g.Go(func() error {
			return w.reviewRepo.ReconcileLikes(ctx, batch)
		})

		if len(ids) < batchSize {
			break
		}
	}

	return g.Wait()
}
