package repositories

import (
	"context"

	"vybe/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	// Summaries aggregates the reviews of each given product. Products
	// without reviews are absent from the result.
	Summaries(ctx context.Context, productIDs []string) (map[string]models.RatingSummary, error)
}
