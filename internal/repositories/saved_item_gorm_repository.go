package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vybe/internal/models"
)

// GORMSavedItemRepository is a GORM implementation of SavedItemRepository.
type GORMSavedItemRepository struct {
	db *gorm.DB
}

// NewGORMSavedItemRepository creates a new instance of GORMSavedItemRepository.
func NewGORMSavedItemRepository(db *gorm.DB) *GORMSavedItemRepository {
	return &GORMSavedItemRepository{db: db}
}

// List returns a page of the user's saved items with their products, newest first.
func (r *GORMSavedItemRepository) List(ctx context.Context, userID, folder string, page Page) ([]models.SavedItem, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.SavedItem{}).Where("user_id = ?", userID)
	if folder != "" {
		base = base.Where("folder = ?", folder)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count saved items: %w", err)
	}

	var items []models.SavedItem
	err := base.Preload("Product").
		Order("created_at DESC").
		Order("id").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list saved items: %w", err)
	}
	return items, total, nil
}

// Find looks up the user's saved record for a product.
func (r *GORMSavedItemRepository) Find(ctx context.Context, userID, productID string) (*models.SavedItem, error) {
	var item models.SavedItem
	err := r.db.WithContext(ctx).First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find saved item for product %s: %w", productID, translate(err))
	}
	return &item, nil
}

// GetByID retrieves one of the user's saved items with its product.
func (r *GORMSavedItemRepository) GetByID(ctx context.Context, userID, id string) (*models.SavedItem, error) {
	var item models.SavedItem
	err := r.db.WithContext(ctx).Preload("Product").First(&item, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get saved item %s: %w", id, translate(err))
	}
	return &item, nil
}

// Create inserts a saved item. The (user, product) unique index turns a
// concurrent duplicate into ErrDuplicate.
func (r *GORMSavedItemRepository) Create(ctx context.Context, item *models.SavedItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create saved item: %w", translate(err))
	}
	return nil
}

// Delete removes one of the user's saved items.
func (r *GORMSavedItemRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.SavedItem{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete saved item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("saved item with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// Folders returns the user's distinct folder labels in ascending order with item counts.
func (r *GORMSavedItemRepository) Folders(ctx context.Context, userID string) ([]models.FolderCount, error) {
	folders := []models.FolderCount{}
	err := r.db.WithContext(ctx).Model(&models.SavedItem{}).
		Select("folder, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("folder").
		Order("folder ASC").
		Scan(&folders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}

// CountByUser returns how many products the user has saved.
func (r *GORMSavedItemRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.SavedItem{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count saved items: %w", err)
	}
	return n, nil
}

// SavedProductIDs reports which of productIDs the user has saved.
func (r *GORMSavedItemRepository) SavedProductIDs(ctx context.Context, userID string, productIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	var ids []string
	err := r.db.WithContext(ctx).Model(&models.SavedItem{}).
		Where("user_id = ? AND product_id IN ?", userID, productIDs).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up saved products: %w", err)
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
