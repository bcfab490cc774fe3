package domain

import "context"

// Review is representing the Review data struct
type Review struct {
	ID              int64  // Unique identifier, assigned by the store on creation
	Title           string // Movie title
	Poster          string // Poster image URI
	Text            string // Review body
	Director        string // Director name
	ReleaseYear     int    // Year the movie was released
	ReviewerName    string // Display name of the reviewer
	PublicationDate string // Publication date, stored as supplied by the editor
	Bottomline      string // One-line verdict
	Rating          int    // Star rating, 1-8
	Likes           int64  // Number of likes, derived from the likes table
}

// ReviewDBRepository defines the database contract for reviews and the like
// ledger. The likes column on a review is a projection of the ledger: it must
// always equal the number of like rows referencing that review.
type ReviewDBRepository interface {
	// Fetch retrieves every review. Ordering is a caller concern.
	Fetch(ctx context.Context) ([]Review, error)

	// GetByID retrieves a single review by its ID.
	// Returns ErrNotFound if the review doesn't exist.
	GetByID(ctx context.Context, id int64) (Review, error)

	// Store creates a new review with zero likes.
	// Backfills the ID in the provided Review upon success.
	Store(ctx context.Context, r *Review) error

	// Update replaces every review field except the like counter.
	// Returns ErrNotFound if the review doesn't exist; never creates a row.
	Update(ctx context.Context, r *Review) error

	// HasLike reports whether the user currently likes the review.
	HasLike(ctx context.Context, reviewID int64, userID string) (bool, error)

	// ToggleLike flips the user's like state for a review and rewrites the
	// review's like counter from the ledger, all in one transaction.
	// Returns the new state and the post-toggle count.
	ToggleLike(ctx context.Context, reviewID int64, userID string) (liked bool, likes int64, err error)

	// FetchUserLikedReviews returns the IDs of the reviews the user likes.
	FetchUserLikedReviews(ctx context.Context, userID string) ([]int64, error)

	// FetchIDs pages over review IDs, used by the reconciliation worker.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)

	// ReconcileLikes rewrites the like counters of the given reviews from
	// the ledger.
	ReconcileLikes(ctx context.Context, ids []int64) error
}

// ReviewRepository is the contract the usecase layer sees: the database
// coordinated with the read cache.
type ReviewRepository interface {
	Fetch(ctx context.Context) ([]Review, error)
	GetByID(ctx context.Context, id int64) (Review, error)
	Store(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	ToggleLike(ctx context.Context, reviewID int64, userID string) (bool, int64, error)
	FetchUserLikedReviews(ctx context.Context, userID string) ([]int64, error)
}

type ReviewCache interface {
	// GetReview returns ErrCacheMiss when the review is not cached.
	GetReview(ctx context.Context, id int64) (Review, error)
	SetReview(ctx context.Context, r *Review) error
	DeleteReview(ctx context.Context, id int64) error
}

type ReviewUsecase interface {
	Fetch(ctx context.Context) ([]Review, error)
	GetByID(ctx context.Context, id int64) (Review, error)
	Store(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	ToggleLike(ctx context.Context, reviewID int64, userID string) (LikeResult, error)
	FetchUserLikedReviews(ctx context.Context, userID string) ([]int64, error)
}
