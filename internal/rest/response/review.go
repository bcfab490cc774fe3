package response

import "github.com/gordonblake/moviereviews/domain"

type Review struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Poster          string `json:"poster"`
	Text            string `json:"text"`
	Director        string `json:"director"`
	ReleaseYear     int    `json:"release_year"`
	ReviewerName    string `json:"reviewer_name"`
	PublicationDate string `json:"publication_date"`
	Bottomline      string `json:"bottomline"`
	Rating          int    `json:"rating"`
	Likes           int64  `json:"likes"`
}

// NewReviewFromDomain: Domain -> Response
func NewReviewFromDomain(r *domain.Review) Review {
	return Review{
		ID:              r.ID,
		Title:           r.Title,
		Poster:          r.Poster,
		Text:            r.Text,
		Director:        r.Director,
		ReleaseYear:     r.ReleaseYear,
		ReviewerName:    r.ReviewerName,
		PublicationDate: r.PublicationDate,
		Bottomline:      r.Bottomline,
		Rating:          r.Rating,
		Likes:           r.Likes,
	}
}

// LikedReview is one element of the caller's liked-review list, used to
// restore the client-side like-button state on load.
type LikedReview struct {
	ReviewID int64 `json:"review_id"`
}
