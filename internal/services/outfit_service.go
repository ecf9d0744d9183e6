package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	"vybe/internal/metrics"
	"vybe/internal/models"
	"vybe/internal/repositories"
	"vybe/internal/stylist"
)

// OutfitServiceConfig tunes the daily generation quota.
type OutfitServiceConfig struct {
	// DailyLimit is how many outfits a free user may create per store day.
	DailyLimit int
	// Location defines when the store day starts. Defaults to time.Local.
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// OutfitService handles outfit generation, collection and likes.
type OutfitService struct {
	outfits    repositories.OutfitRepository
	products   repositories.ProductRepository
	users      repositories.UserRepository
	stylist    stylist.Stylist
	events     EventPublisher
	dailyLimit int
	loc        *time.Location
	now        func() time.Time
}

// NewOutfitService creates a new OutfitService.
func NewOutfitService(outfits repositories.OutfitRepository, products repositories.ProductRepository, users repositories.UserRepository, st stylist.Stylist, events EventPublisher, cfg OutfitServiceConfig) *OutfitService {
	if cfg.DailyLimit < 1 {
		cfg.DailyLimit = 3
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if events == nil {
		events = NoopPublisher{}
	}
	return &OutfitService{
		outfits:    outfits,
		products:   products,
		users:      users,
		stylist:    st,
		events:     events,
		dailyLimit: cfg.DailyLimit,
		loc:        cfg.Location,
		now:        cfg.Now,
	}
}

// startOfDay is local midnight in loc of the day containing t.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Generate builds an outfit around a product and stores it for the user.
// Free users are limited to dailyLimit outfits per store day.
func (s *OutfitService) Generate(ctx context.Context, userID, productID, style string) (*models.Outfit, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := s.now()
	if !user.HasActivePro(now) {
		today, err := s.outfits.CountCreatedSince(ctx, userID, startOfDay(now, s.loc))
		if err != nil {
			return nil, err
		}
		if today >= int64(s.dailyLimit) {
			metrics.ObserveQuotaRejection()
			return nil, ErrQuotaExceeded
		}
	}

	normalized := models.NormalizeStyle(style)
	generated := s.stylist.Generate(ctx, *product, normalized)

	outfit := &models.Outfit{
		UserID:           userID,
		Name:             generated.Name,
		Description:      generated.Description,
		Items:            datatypes.JSONSlice[models.OutfitItem](generated.Items),
		Style:            normalized,
		BasedOnProductID: &product.ID,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}
	if err := s.outfits.Create(ctx, outfit); err != nil {
		return nil, err
	}
	outfit.BaseProduct = product.Summary()

	publish(s.events, EventOutfitGenerated, OutfitGenerated{
		OutfitID:   outfit.ID,
		UserID:     userID,
		ProductID:  product.ID,
		Style:      string(normalized),
		OccurredAt: now.UTC(),
	})
	return outfit, nil
}

// CreateOutfitInput is a user-assembled outfit.
type CreateOutfitInput struct {
	Name        string
	Description string
	Style       string
	Items       []models.OutfitItem
	IsPublic    bool
}

// Create stores an outfit the user put together by hand. It does not count
// against the generation quota.
func (s *OutfitService) Create(ctx context.Context, userID string, in CreateOutfitInput) (*models.Outfit, error) {
	now := s.now().UTC()
	items := in.Items
	if items == nil {
		items = []models.OutfitItem{}
	}
	outfit := &models.Outfit{
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Items:       datatypes.JSONSlice[models.OutfitItem](items),
		Style:       models.NormalizeStyle(in.Style),
		IsPublic:    in.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.outfits.Create(ctx, outfit); err != nil {
		return nil, err
	}
	return outfit, nil
}

// MyOutfits lists the user's outfits, newest first, optionally of one style.
func (s *OutfitService) MyOutfits(ctx context.Context, userID, style string, p Pagination) ([]models.Outfit, int64, error) {
	return s.outfits.ListByUser(ctx, userID, models.Style(style), p.window())
}

// Explore lists public outfits, most liked first.
func (s *OutfitService) Explore(ctx context.Context, style string, p Pagination) ([]models.Outfit, int64, error) {
	return s.outfits.ListPublic(ctx, models.Style(style), p.window())
}

// Get returns an outfit with its owner and base product.
func (s *OutfitService) Get(ctx context.Context, id string) (*models.Outfit, error) {
	outfit, err := s.outfits.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOutfitNotFound
		}
		return nil, err
	}
	if outfit.BasedOnProduct != nil {
		outfit.BaseProduct = outfit.BasedOnProduct.Summary()
	}
	return outfit, nil
}

// UpdateOutfitInput holds the owner-editable fields. Nil means unchanged.
type UpdateOutfitInput struct {
	Name        *string
	Description *string
	IsPublic    *bool
}

// Update edits an outfit owned by userID. Outfits owned by anyone else are
// reported as not found. An empty name keeps the current one.
func (s *OutfitService) Update(ctx context.Context, userID, id string, in UpdateOutfitInput) (*models.Outfit, error) {
	outfit, err := s.outfits.GetOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOutfitNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		if name := strings.TrimSpace(*in.Name); name != "" {
			outfit.Name = name
		}
	}
	if in.Description != nil {
		outfit.Description = *in.Description
	}
	if in.IsPublic != nil {
		outfit.IsPublic = *in.IsPublic
	}
	outfit.UpdatedAt = s.now().UTC()

	err = s.outfits.UpdateOwned(ctx, id, userID, repositories.OutfitChanges{
		Name:        outfit.Name,
		Description: outfit.Description,
		IsPublic:    outfit.IsPublic,
		UpdatedAt:   outfit.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOutfitNotFound
		}
		return nil, err
	}
	if outfit.BasedOnProduct != nil {
		outfit.BaseProduct = outfit.BasedOnProduct.Summary()
	}
	return outfit, nil
}

// Delete removes an outfit owned by userID along with its likes.
func (s *OutfitService) Delete(ctx context.Context, userID, id string) error {
	if err := s.outfits.DeleteOwned(ctx, id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOutfitNotFound
		}
		return err
	}
	return nil
}

// Like records userID's like and returns the outfit's like count. Liking
// twice has no further effect.
func (s *OutfitService) Like(ctx context.Context, userID, id string) (int64, error) {
	if err := s.exists(ctx, id); err != nil {
		return 0, err
	}
	added, err := s.outfits.AddLike(ctx, id, userID)
	if err != nil {
		return 0, err
	}
	likes, err := s.outfits.CountLikes(ctx, id)
	if err != nil {
		return 0, err
	}
	if added {
		publish(s.events, EventOutfitLiked, OutfitLiked{
			OutfitID:   id,
			UserID:     userID,
			Likes:      likes,
			OccurredAt: s.now().UTC(),
		})
	}
	return likes, nil
}

// Unlike withdraws userID's like and returns the outfit's like count.
func (s *OutfitService) Unlike(ctx context.Context, userID, id string) (int64, error) {
	if err := s.exists(ctx, id); err != nil {
		return 0, err
	}
	if err := s.outfits.RemoveLike(ctx, id, userID); err != nil {
		return 0, err
	}
	return s.outfits.CountLikes(ctx, id)
}

func (s *OutfitService) exists(ctx context.Context, id string) error {
	if _, err := s.outfits.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOutfitNotFound
		}
		return fmt.Errorf("failed to load outfit: %w", err)
	}
	return nil
}
