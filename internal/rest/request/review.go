package request

import "github.com/gordonblake/moviereviews/domain"

// Review carries the full field set for create and update; there is no
// partial-patch form. Field names follow the web client's payload.
type Review struct {
	Title           string `json:"title" binding:"required"`
	Poster          string `json:"poster"`
	Text            string `json:"text" binding:"required"`
	Director        string `json:"director"`
	ReleaseYear     int    `json:"releaseYear"`
	ReviewerName    string `json:"reviewerName"`
	PublicationDate string `json:"publicationDate"`
	Bottomline      string `json:"bottomline"`
	Rating          int    `json:"rating" binding:"required,min=1,max=8"`
}

// ToDomain: Request -> Domain
func (r *Review) ToDomain() domain.Review {
	return domain.Review{
		Title:           r.Title,
		Poster:          r.Poster,
		Text:            r.Text,
		Director:        r.Director,
		ReleaseYear:     r.ReleaseYear,
		ReviewerName:    r.ReviewerName,
		PublicationDate: r.PublicationDate,
		Bottomline:      r.Bottomline,
		Rating:          r.Rating,
	}
}
