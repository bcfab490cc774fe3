package mysql

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gordonblake/moviereviews/domain"
	"github.com/gordonblake/moviereviews/internal/repository/mysql/model"
)

const mysqlErrDuplicateEntry = 1062

// reviewColumns are the fields a full-replace update rewrites. The likes
// column is owned by the toggle transaction and the reconciler, never by
// Update.
var reviewColumns = []string{
	"title", "poster", "text", "director", "release_year",
	"reviewer_name", "publication_date", "bottomline", "rating",
}

type reviewRepository struct {
	DB *gorm.DB
}

var _ domain.ReviewDBRepository = (*reviewRepository)(nil)

// NewReviewDBRepository creates the database access layer for reviews and
// their like ledger.
func NewReviewDBRepository(db *gorm.DB) *reviewRepository {
	return &reviewRepository{db}
}

func (m *reviewRepository) Fetch(ctx context.Context) (res []domain.Review, err error) {
	var reviews []model.Review
	err = m.DB.WithContext(ctx).Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	for _, review := range reviews {
		res = append(res, review.ToDomain())
	}
	return
}

func (m *reviewRepository) GetByID(ctx context.Context, id int64) (res domain.Review, err error) {
	var review model.Review
	err = m.DB.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, domain.ErrNotFound
		}
		return res, err
	}
	res = review.ToDomain()
	return
}

func (m *reviewRepository) Store(ctx context.Context, r *domain.Review) error {
	reviewModel := model.NewReviewFromDomain(r)
	reviewModel.Likes = 0
	result := m.DB.WithContext(ctx).Create(reviewModel)
	if result.Error != nil {
		return result.Error
	}
	r.ID = reviewModel.ID
	r.Likes = 0
	return nil
}

func (m *reviewRepository) Update(ctx context.Context, r *domain.Review) error {
	reviewModel := model.NewReviewFromDomain(r)
	result := m.DB.WithContext(ctx).
		Model(&model.Review{}).
		Where("id = ?", r.ID).
		Select(reviewColumns).
		Updates(reviewModel)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *reviewRepository) HasLike(ctx context.Context, reviewID int64, userID string) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Count(&count).Error
	return count > 0, err
}

// ToggleLike runs the whole toggle as one transaction. The review row is
// locked FOR UPDATE first, which serializes concurrent toggles on the same
// review; the counter is then rewritten from COUNT(*) over the ledger inside
// the same transaction, so it can neither drift nor go negative.
func (m *reviewRepository) ToggleLike(ctx context.Context, reviewID int64, userID string) (liked bool, likes int64, err error) {
	err = m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review model.Review
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&review, "id = ?", reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&model.Like{}).
			Where("review_id = ? AND user_id = ?", reviewID, userID).
			Count(&existing).Error; err != nil {
			return err
		}

		if existing > 0 {
			if err := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).
				Delete(&model.Like{}).Error; err != nil {
				return err
			}
			liked = false
		} else {
			like := model.NewLikeFromDomain(domain.ReviewLike{
				ReviewID: reviewID,
				UserID:   userID,
			})
			if err := tx.Create(&like).Error; err != nil {
				return translateDuplicate(err)
			}
			liked = true
		}

		if err := tx.Model(&model.Like{}).
			Where("review_id = ?", reviewID).
			Count(&likes).Error; err != nil {
			return err
		}

		return tx.Model(&model.Review{}).
			Where("id = ?", reviewID).
			UpdateColumn("likes", likes).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}

func (m *reviewRepository) FetchUserLikedReviews(ctx context.Context, userID string) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ?", userID).
		Pluck("review_id", &ids).
		Error
	return ids, err
}

func (m *reviewRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Review{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}

// ReconcileLikes rewrites the like counters of the given reviews from the
// ledger. The toggle transaction keeps the counters correct on its own; this
// exists to repair drift introduced outside the API.
func (m *reviewRepository) ReconcileLikes(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var realCount int64
			if err := tx.Model(&model.Like{}).
				Where("review_id = ?", id).
				Count(&realCount).Error; err != nil {
				return err
			}

			if err := tx.Model(&model.Review{}).
				Where("id = ? AND likes <> ?", id, realCount).
				UpdateColumn("likes", realCount).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func translateDuplicate(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		return domain.ErrConflict
	}
	return err
}
