package review

import (
	"context"

	"github.com/gordonblake/moviereviews/domain"
)

type Service struct {
	reviewRepo domain.ReviewRepository
}

var _ domain.ReviewUsecase = (*Service)(nil)

// NewService will create a new review service object
func NewService(r domain.ReviewRepository) *Service {
	return &Service{
		reviewRepo: r,
	}
}

func (s *Service) Fetch(ctx context.Context) ([]domain.Review, error) {
	return s.reviewRepo.Fetch(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

func (s *Service) Store(ctx context.Context, r *domain.Review) error {
	// a new review always starts unliked, whatever the caller supplied
	r.Likes = 0
	return s.reviewRepo.Store(ctx, r)
}

func (s *Service) Update(ctx context.Context, r *domain.Review) error {
	return s.reviewRepo.Update(ctx, r)
}

// ToggleLike flips the caller's like state for a review. Calling it twice is
// its own inverse: the second call returns the original state and count.
func (s *Service) ToggleLike(ctx context.Context, reviewID int64, userID string) (domain.LikeResult, error) {
	liked, likes, err := s.reviewRepo.ToggleLike(ctx, reviewID, userID)
	if err != nil {
		return domain.LikeResult{}, err
	}
	return domain.LikeResult{Liked: liked, Likes: likes}, nil
}

func (s *Service) FetchUserLikedReviews(ctx context.Context, userID string) ([]int64, error) {
	return s.reviewRepo.FetchUserLikedReviews(ctx, userID)
}
