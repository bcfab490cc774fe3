package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gordonblake/moviereviews/domain"
)

// ReviewRepository is a mock type for domain.ReviewRepository
type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) Fetch(ctx context.Context) ([]domain.Review, error) {
	ret := m.Called(ctx)
	var r0 []domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Review)
	}
	return r0, ret.Error(1)
}

func (m *ReviewRepository) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Review), ret.Error(1)
}

func (m *ReviewRepository) Store(ctx context.Context, r *domain.Review) error {
	ret := m.Called(ctx, r)
	return ret.Error(0)
}

func (m *ReviewRepository) Update(ctx context.Context, r *domain.Review) error {
	ret := m.Called(ctx, r)
	return ret.Error(0)
}

func (m *ReviewRepository) ToggleLike(ctx context.Context, reviewID int64, userID string) (bool, int64, error) {
	ret := m.Called(ctx, reviewID, userID)
	return ret.Get(0).(bool), ret.Get(1).(int64), ret.Error(2)
}

func (m *ReviewRepository) FetchUserLikedReviews(ctx context.Context, userID string) ([]int64, error) {
	ret := m.Called(ctx, userID)
	var r0 []int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int64)
	}
	return r0, ret.Error(1)
}

// ReviewDBRepository is a mock type for domain.ReviewDBRepository
type ReviewDBRepository struct {
	ReviewRepository
}

func (m *ReviewDBRepository) HasLike(ctx context.Context, reviewID int64, userID string) (bool, error) {
	ret := m.Called(ctx, reviewID, userID)
	return ret.Get(0).(bool), ret.Error(1)
}

func (m *ReviewDBRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	ret := m.Called(ctx, cursor, limit)
	var r0 []int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int64)
	}
	return r0, ret.Error(1)
}

func (m *ReviewDBRepository) ReconcileLikes(ctx context.Context, ids []int64) error {
	ret := m.Called(ctx, ids)
	return ret.Error(0)
}

// ReviewCache is a mock type for domain.ReviewCache
type ReviewCache struct {
	mock.Mock
}

func (m *ReviewCache) GetReview(ctx context.Context, id int64) (domain.Review, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Review), ret.Error(1)
}

func (m *ReviewCache) SetReview(ctx context.Context, r *domain.Review) error {
	ret := m.Called(ctx, r)
	return ret.Error(0)
}

func (m *ReviewCache) DeleteReview(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

// ReviewUsecase is a mock type for domain.ReviewUsecase
type ReviewUsecase struct {
	mock.Mock
}

func (m *ReviewUsecase) Fetch(ctx context.Context) ([]domain.Review, error) {
	ret := m.Called(ctx)
	var r0 []domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Review)
	}
	return r0, ret.Error(1)
}

func (m *ReviewUsecase) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Review), ret.Error(1)
}

func (m *ReviewUsecase) Store(ctx context.Context, r *domain.Review) error {
	ret := m.Called(ctx, r)
	return ret.Error(0)
}

func (m *ReviewUsecase) Update(ctx context.Context, r *domain.Review) error {
	ret := m.Called(ctx, r)
	return ret.Error(0)
}

func (m *ReviewUsecase) ToggleLike(ctx context.Context, reviewID int64, userID string) (domain.LikeResult, error) {
	ret := m.Called(ctx, reviewID, userID)
	return ret.Get(0).(domain.LikeResult), ret.Error(1)
}

func (m *ReviewUsecase) FetchUserLikedReviews(ctx context.Context, userID string) ([]int64, error) {
	ret := m.Called(ctx, userID)
	var r0 []int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int64)
	}
	return r0, ret.Error(1)
}
