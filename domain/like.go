package domain

import "time"

// ReviewLike is representing a like record. Existence of a record means the
// user currently likes the review; at most one record exists per
// (review, user) pair.
type ReviewLike struct {
	ReviewID  int64
	UserID    string
	CreatedAt time.Time
}

// LikeResult is the outcome of a single toggle.
type LikeResult struct {
	Liked bool  // the new state for this (review, user) pair
	Likes int64 // the review's like count after the toggle
}
