package repositories

import (
	"context"
	"time"

	"vybe/internal/models"
)

// OutfitRepository defines the interface for outfit data access.
type OutfitRepository interface {
	Create(ctx context.Context, outfit *models.Outfit) error
	// GetByID loads an outfit with its like count, owner and base product.
	GetByID(ctx context.Context, id string) (*models.Outfit, error)
	// GetOwned is GetByID restricted to outfits owned by userID.
	GetOwned(ctx context.Context, id, userID string) (*models.Outfit, error)
	UpdateOwned(ctx context.Context, id, userID string, changes OutfitChanges) error
	DeleteOwned(ctx context.Context, id, userID string) error
	ListByUser(ctx context.Context, userID string, style models.Style, page Page) ([]models.Outfit, int64, error)
	ListPublic(ctx context.Context, style models.Style, page Page) ([]models.Outfit, int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountCreatedSince(ctx context.Context, userID string, since time.Time) (int64, error)
	// AddLike records a like and reports whether it was new.
	AddLike(ctx context.Context, outfitID, userID string) (bool, error)
	RemoveLike(ctx context.Context, outfitID, userID string) error
	CountLikes(ctx context.Context, outfitID string) (int64, error)
}

// OutfitChanges is the owner-editable part of an outfit.
type OutfitChanges struct {
	Name        string
	Description string
	IsPublic    bool
	UpdatedAt   time.Time
}
