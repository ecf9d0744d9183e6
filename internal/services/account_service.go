package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vybe/internal/models"
	"vybe/internal/repositories"
)

// AccountService handles a user's profile, wishlist and statistics.
type AccountService struct {
	users    repositories.UserRepository
	saved    repositories.SavedItemRepository
	products repositories.ProductRepository
	reviews  repositories.ReviewRepository
	outfits  repositories.OutfitRepository
	events   EventPublisher
}

// NewAccountService creates a new AccountService.
func NewAccountService(users repositories.UserRepository, saved repositories.SavedItemRepository, products repositories.ProductRepository, reviews repositories.ReviewRepository, outfits repositories.OutfitRepository, events EventPublisher) *AccountService {
	if events == nil {
		events = NoopPublisher{}
	}
	return &AccountService{
		users:    users,
		saved:    saved,
		products: products,
		reviews:  reviews,
		outfits:  outfits,
		events:   events,
	}
}

// Profile returns the caller's account.
func (s *AccountService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SavedItems lists the user's wishlist, optionally one folder, newest first.
func (s *AccountService) SavedItems(ctx context.Context, userID, folder string, p Pagination) ([]models.SavedItem, int64, error) {
	items, total, err := s.saved.List(ctx, userID, strings.TrimSpace(folder), p.window())
	if err != nil {
		return nil, 0, err
	}
	if err := s.rateProducts(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// rateProducts fills in the derived rating of each embedded product.
func (s *AccountService) rateProducts(ctx context.Context, items []models.SavedItem) error {
	var ids []string
	for _, item := range items {
		if item.Product != nil {
			ids = append(ids, item.Product.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	summaries, err := s.reviews.Summaries(ctx, ids)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		sum := summaries[item.Product.ID]
		item.Product.Rating = sum.Average
		item.Product.ReviewCount = sum.Count
	}
	return nil
}

// SaveItemInput is a request to put a product on the wishlist.
type SaveItemInput struct {
	ProductID string
	Folder    string
	Notes     string
}

// SaveItem adds a product to the user's wishlist. A product can be saved once
// per user; the check is repeated by the storage layer's unique index.
func (s *AccountService) SaveItem(ctx context.Context, userID string, in SaveItemInput) (*models.SavedItem, error) {
	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if _, err := s.saved.Find(ctx, userID, in.ProductID); err == nil {
		return nil, ErrAlreadySaved
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	folder := strings.TrimSpace(in.Folder)
	if folder == "" {
		folder = models.DefaultFolder
	}
	item := &models.SavedItem{
		UserID:    userID,
		ProductID: in.ProductID,
		Folder:    folder,
		Notes:     strings.TrimSpace(in.Notes),
	}
	if err := s.saved.Create(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadySaved
		}
		return nil, err
	}

	publish(s.events, EventItemSaved, ItemSaved{
		SavedItemID: item.ID,
		UserID:      userID,
		ProductID:   item.ProductID,
		Folder:      item.Folder,
		OccurredAt:  time.Now().UTC(),
	})

	stored, err := s.saved.GetByID(ctx, userID, item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload saved item: %w", err)
	}
	if err := s.rateProducts(ctx, []models.SavedItem{*stored}); err != nil {
		return nil, err
	}
	return stored, nil
}

// RemoveItem deletes one of the user's saved items.
func (s *AccountService) RemoveItem(ctx context.Context, userID, id string) error {
	if err := s.saved.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSavedItemNotFound
		}
		return err
	}
	return nil
}

// Folders returns the user's folder labels in ascending order with item counts.
func (s *AccountService) Folders(ctx context.Context, userID string) ([]models.FolderCount, error) {
	return s.saved.Folders(ctx, userID)
}

// UserStats summarizes a user's activity.
type UserStats struct {
	SavedItems     int64 `json:"savedItems"`
	OutfitsCreated int64 `json:"outfitsCreated"`
}

// Stats counts the user's saved items and outfits.
func (s *AccountService) Stats(ctx context.Context, userID string) (UserStats, error) {
	saved, err := s.saved.CountByUser(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	outfits, err := s.outfits.CountByUser(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	return UserStats{SavedItems: saved, OutfitsCreated: outfits}, nil
}
