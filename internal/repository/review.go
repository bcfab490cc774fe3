package repository

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/gordonblake/moviereviews/domain"
)

// reviewRepository coordinates the database with the read cache. Reads go
// through the cache; every write invalidates the cached copy so a stale like
// count is never served past the cache delete.
type reviewRepository struct {
	db           domain.ReviewDBRepository
	cache        domain.ReviewCache
	rebuildGroup singleflight.Group
}

var _ domain.ReviewRepository = (*reviewRepository)(nil)

func NewReviewRepository(db domain.ReviewDBRepository, cache domain.ReviewCache) *reviewRepository {
	return &reviewRepository{
		db:    db,
		cache: cache,
	}
}

// Fetch always reads the database: the list is the site's landing data and
// its like counts must reflect the projection directly.
func (r *reviewRepository) Fetch(ctx context.Context) ([]domain.Review, error) {
	return r.db.Fetch(ctx)
}

// GetByID serves from the cache when possible; a miss collapses concurrent
// rebuilds for the same review into one database read.
func (r *reviewRepository) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	review, err := r.cache.GetReview(ctx, id)
	if err == nil {
		return review, nil
	}
	if err != domain.ErrCacheMiss {
		logrus.Warnf("review cache get error: %v", err)
	}

	result, err, _ := r.rebuildGroup.Do(strconv.FormatInt(id, 10), func() (interface{}, error) {
		rv, err := r.db.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := r.cache.SetReview(ctx, &rv); err != nil {
			logrus.Warnf("failed to set review cache: %v", err)
		}
		return rv, nil
	})
	if err != nil {
		return domain.Review{}, err
	}
	return result.(domain.Review), nil
}

func (r *reviewRepository) Store(ctx context.Context, review *domain.Review) error {
	return r.db.Store(ctx, review)
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.Review) error {
	err := r.db.Update(ctx, review)
	if err != nil {
		return err
	}

	r.invalidate(review.ID)
	return nil
}

// ToggleLike delegates to the transactional toggle, then drops the cached
// review so the next read sees the new count.
func (r *reviewRepository) ToggleLike(ctx context.Context, reviewID int64, userID string) (bool, int64, error) {
	liked, likes, err := r.db.ToggleLike(ctx, reviewID, userID)
	if err != nil {
		return false, 0, err
	}

	r.invalidate(reviewID)
	return liked, likes, nil
}

func (r *reviewRepository) FetchUserLikedReviews(ctx context.Context, userID string) ([]int64, error) {
	return r.db.FetchUserLikedReviews(ctx, userID)
}

func (r *reviewRepository) invalidate(id int64) {
	go func() {
		if err := r.cache.DeleteReview(context.Background(), id); err != nil {
			logrus.Warnf("failed to invalidate review cache for id %d: %v", id, err)
		}
	}()
}
