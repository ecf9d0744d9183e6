package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vybe/internal/models"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// Create stores a review. A second review of the same product by the same
// user fails with ErrDuplicate.
func (r *GORMReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", translate(err))
	}
	return nil
}

// Summaries aggregates the reviews of each product in productIDs.
func (r *GORMReviewRepository) Summaries(ctx context.Context, productIDs []string) (map[string]models.RatingSummary, error) {
	out := make(map[string]models.RatingSummary, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ProductID string
		Total     int64
		Count     int64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("product_id, SUM(rating) AS total, COUNT(*) AS count").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	for _, row := range rows {
		out[row.ProductID] = models.SummarizeTotals(row.Total, row.Count)
	}
	return out, nil
}
