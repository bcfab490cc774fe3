package model

import (
	"time"

	"github.com/gordonblake/moviereviews/domain"
)

// Like rows carry a composite unique index so the at-most-one-like-per-pair
// invariant holds even if a writer other than the toggle slips through.
type Like struct {
	ReviewID  int64     `gorm:"column:review_id;not null;uniqueIndex:idx_review_user"`
	UserID    string    `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex:idx_review_user"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Like) TableName() string {
	return "likes"
}

func NewLikeFromDomain(l domain.ReviewLike) Like {
	return Like{
		ReviewID:  l.ReviewID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}
}

func (m *Like) ToDomain() domain.ReviewLike {
	return domain.ReviewLike{
		ReviewID:  m.ReviewID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
