package repositories

import (
	"context"

	"vybe/internal/models"
)

// SavedItemRepository defines the interface for wishlist data access.
// Every method is scoped to a single user.
type SavedItemRepository interface {
	List(ctx context.Context, userID, folder string, page Page) ([]models.SavedItem, int64, error)
	Find(ctx context.Context, userID, productID string) (*models.SavedItem, error)
	GetByID(ctx context.Context, userID, id string) (*models.SavedItem, error)
	Create(ctx context.Context, item *models.SavedItem) error
	Delete(ctx context.Context, userID, id string) error
	Folders(ctx context.Context, userID string) ([]models.FolderCount, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	SavedProductIDs(ctx context.Context, userID string, productIDs []string) (map[string]bool, error)
}
