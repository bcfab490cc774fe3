package model

import (
	"github.com/gordonblake/moviereviews/domain"
)

type Review struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Title           string `gorm:"type:varchar(255);not null"`
	Poster          string `gorm:"type:varchar(2048)"`
	Text            string `gorm:"type:longtext;not null"`
	Director        string `gorm:"type:varchar(255)"`
	ReleaseYear     int    `gorm:"column:release_year"`
	ReviewerName    string `gorm:"column:reviewer_name;type:varchar(255)"`
	PublicationDate string `gorm:"column:publication_date;type:varchar(32)"`
	Bottomline      string `gorm:"type:varchar(255)"`
	Rating          int    `gorm:"default:1"`
	Likes           int64  `gorm:"default:0"`
}

func (Review) TableName() string {
	return "reviews"
}

func (m *Review) ToDomain() domain.Review {
	return domain.Review{
		ID:              m.ID,
		Title:           m.Title,
		Poster:          m.Poster,
		Text:            m.Text,
		Director:        m.Director,
		ReleaseYear:     m.ReleaseYear,
		ReviewerName:    m.ReviewerName,
		PublicationDate: m.PublicationDate,
		Bottomline:      m.Bottomline,
		Rating:          m.Rating,
		Likes:           m.Likes,
	}
}

func NewReviewFromDomain(r *domain.Review) *Review {
	return &Review{
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
