package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vybe/internal/models"
)

const likeCountColumn = "(SELECT COUNT(*) FROM outfit_likes WHERE outfit_likes.outfit_id = outfits.id) AS likes"

// GORMOutfitRepository is a GORM implementation of OutfitRepository.
type GORMOutfitRepository struct {
	db *gorm.DB
}

// NewGORMOutfitRepository creates a new instance of GORMOutfitRepository.
func NewGORMOutfitRepository(db *gorm.DB) *GORMOutfitRepository {
	return &GORMOutfitRepository{db: db}
}

func withLikes(db *gorm.DB) *gorm.DB {
	return db.Select("outfits.*, " + likeCountColumn)
}

func withOwner(db *gorm.DB) *gorm.DB {
	return db.Preload("User")
}

// Create creates a new outfit in the database.
func (r *GORMOutfitRepository) Create(ctx context.Context, outfit *models.Outfit) error {
	if outfit.ID == "" {
		outfit.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(outfit).Error; err != nil {
		return fmt.Errorf("failed to create outfit: %w", translate(err))
	}
	return nil
}

// GetByID retrieves a single outfit by its ID.
func (r *GORMOutfitRepository) GetByID(ctx context.Context, id string) (*models.Outfit, error) {
	var outfit models.Outfit
	err := r.db.WithContext(ctx).Model(&models.Outfit{}).
		Scopes(withLikes, withOwner).
		Preload("BasedOnProduct").
		Where("outfits.id = ?", id).
		First(&outfit).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get outfit by ID %s: %w", id, translate(err))
	}
	return &outfit, nil
}

// GetOwned retrieves an outfit only if userID owns it.
func (r *GORMOutfitRepository) GetOwned(ctx context.Context, id, userID string) (*models.Outfit, error) {
	var outfit models.Outfit
	err := r.db.WithContext(ctx).Model(&models.Outfit{}).
		Scopes(withLikes, withOwner).
		Preload("BasedOnProduct").
		Where("outfits.id = ? AND outfits.user_id = ?", id, userID).
		First(&outfit).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get outfit %s for user %s: %w", id, userID, translate(err))
	}
	return &outfit, nil
}

// UpdateOwned applies changes to an outfit owned by userID.
func (r *GORMOutfitRepository) UpdateOwned(ctx context.Context, id, userID string, changes OutfitChanges) error {
	res := r.db.WithContext(ctx).Model(&models.Outfit{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"name":        changes.Name,
			"description": changes.Description,
			"is_public":   changes.IsPublic,
			"updated_at":  changes.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update outfit: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("outfit with ID %s not found for update: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteOwned removes an outfit owned by userID together with its likes.
func (r *GORMOutfitRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Outfit{}, "id = ? AND user_id = ?", id, userID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete outfit: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("outfit with ID %s not found for deletion: %w", id, ErrNotFound)
		}
		if err := tx.Delete(&models.OutfitLike{}, "outfit_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete outfit likes: %w", err)
		}
		return nil
	})
}

func (r *GORMOutfitRepository) listPage(base *gorm.DB, page Page, order ...string) ([]models.Outfit, int64, error) {
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count outfits: %w", err)
	}

	q := base.Scopes(withLikes, withOwner)
	for _, o := range order {
		q = q.Order(o)
	}
	outfits := []models.Outfit{}
	if err := q.Limit(page.Limit).Offset(page.Offset).Find(&outfits).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list outfits: %w", err)
	}
	return outfits, total, nil
}

// ListByUser returns a page of the user's outfits, newest first.
func (r *GORMOutfitRepository) ListByUser(ctx context.Context, userID string, style models.Style, page Page) ([]models.Outfit, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Outfit{}).Where("outfits.user_id = ?", userID)
	if style != "" {
		base = base.Where("outfits.style = ?", style)
	}
	return r.listPage(base, page, "outfits.created_at DESC", "outfits.id")
}

// ListPublic returns a page of public outfits, most liked first and newest
// first among equals.
func (r *GORMOutfitRepository) ListPublic(ctx context.Context, style models.Style, page Page) ([]models.Outfit, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Outfit{}).Where("outfits.is_public = ?", true)
	if style != "" {
		base = base.Where("outfits.style = ?", style)
	}
	return r.listPage(base, page, "likes DESC", "outfits.created_at DESC", "outfits.id")
}

// CountByUser returns how many outfits the user owns.
func (r *GORMOutfitRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Outfit{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count outfits: %w", err)
	}
	return n, nil
}

// CountCreatedSince returns how many outfits the user created at or after since.
func (r *GORMOutfitRepository) CountCreatedSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Outfit{}).
		Where("user_id = ? AND created_at >= ?", userID, since.UTC()).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count outfits since %s: %w", since.Format(time.RFC3339), err)
	}
	return n, nil
}

// AddLike records that userID likes outfitID. Repeat likes are ignored.
func (r *GORMOutfitRepository) AddLike(ctx context.Context, outfitID, userID string) (bool, error) {
	like := models.OutfitLike{OutfitID: outfitID, UserID: userID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if res.Error != nil {
		return false, fmt.Errorf("failed to like outfit %s: %w", outfitID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// RemoveLike withdraws userID's like of outfitID, if any.
func (r *GORMOutfitRepository) RemoveLike(ctx context.Context, outfitID, userID string) error {
	err := r.db.WithContext(ctx).Delete(&models.OutfitLike{}, "outfit_id = ? AND user_id = ?", outfitID, userID).Error
	if err != nil {
		return fmt.Errorf("failed to unlike outfit %s: %w", outfitID, err)
	}
	return nil
}

// CountLikes returns the number of users who like the outfit.
func (r *GORMOutfitRepository) CountLikes(ctx context.Context, outfitID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.OutfitLike{}).Where("outfit_id = ?", outfitID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}
