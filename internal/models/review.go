package models

import (
	"math"
	"time"
)

// Review is a user's rating of a product. A user reviews a product at most once.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_product"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_product"`
	Rating    int       `json:"rating" gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" gorm:"type:text" validate:"max=2000"`
	User      *UserRef  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RatingSummary is the aggregate of a product's reviews.
type RatingSummary struct {
	Average float64
	Count   int
}

// SummarizeTotals turns a rating sum and count into a summary whose average
// is rounded to one decimal place. No reviews yields a zero summary.
func SummarizeTotals(total, count int64) RatingSummary {
	if count <= 0 {
		return RatingSummary{}
	}
	avg := float64(total) / float64(count)
	return RatingSummary{Average: math.Round(avg*10) / 10, Count: int(count)}
}

// Summarize aggregates a loaded slice of reviews.
func Summarize(reviews []Review) RatingSummary {
	var total int64
	for _, r := range reviews {
		total += int64(r.Rating)
	}
	return SummarizeTotals(total, int64(len(reviews)))
}
