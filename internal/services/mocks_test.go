package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"vybe/internal/models"
	"vybe/internal/repositories"
	"vybe/internal/stylist"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, filter repositories.ProductFilter, sort repositories.ProductSort, page repositories.Page) ([]models.Product, int64, error) {
	args := m.Called(ctx, filter, sort, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetWithReviews(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Brands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) PriceRange(ctx context.Context, category models.Category) (repositories.PriceRange, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(repositories.PriceRange), args.Error(1)
}

// MockReviewRepository is a mock implementation of repositories.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Summaries(ctx context.Context, productIDs []string) (map[string]models.RatingSummary, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.RatingSummary), args.Error(1)
}

// MockSavedItemRepository is a mock implementation of repositories.SavedItemRepository
type MockSavedItemRepository struct {
	mock.Mock
}

func (m *MockSavedItemRepository) List(ctx context.Context, userID, folder string, page repositories.Page) ([]models.SavedItem, int64, error) {
	args := m.Called(ctx, userID, folder, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.SavedItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockSavedItemRepository) Find(ctx context.Context, userID, productID string) (*models.SavedItem, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedItem), args.Error(1)
}

func (m *MockSavedItemRepository) GetByID(ctx context.Context, userID, id string) (*models.SavedItem, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedItem), args.Error(1)
}

func (m *MockSavedItemRepository) Create(ctx context.Context, item *models.SavedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockSavedItemRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockSavedItemRepository) Folders(ctx context.Context, userID string) ([]models.FolderCount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FolderCount), args.Error(1)
}

func (m *MockSavedItemRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSavedItemRepository) SavedProductIDs(ctx context.Context, userID string, productIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

// MockOutfitRepository is a mock implementation of repositories.OutfitRepository
type MockOutfitRepository struct {
	mock.Mock
}

func (m *MockOutfitRepository) Create(ctx context.Context, outfit *models.Outfit) error {
	args := m.Called(ctx, outfit)
	return args.Error(0)
}

func (m *MockOutfitRepository) GetByID(ctx context.Context, id string) (*models.Outfit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Outfit), args.Error(1)
}

func (m *MockOutfitRepository) GetOwned(ctx context.Context, id, userID string) (*models.Outfit, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Outfit), args.Error(1)
}

func (m *MockOutfitRepository) UpdateOwned(ctx context.Context, id, userID string, changes repositories.OutfitChanges) error {
	args := m.Called(ctx, id, userID, changes)
	return args.Error(0)
}

func (m *MockOutfitRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockOutfitRepository) ListByUser(ctx context.Context, userID string, style models.Style, page repositories.Page) ([]models.Outfit, int64, error) {
	args := m.Called(ctx, userID, style, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Outfit), args.Get(1).(int64), args.Error(2)
}

func (m *MockOutfitRepository) ListPublic(ctx context.Context, style models.Style, page repositories.Page) ([]models.Outfit, int64, error) {
	args := m.Called(ctx, style, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Outfit), args.Get(1).(int64), args.Error(2)
}

func (m *MockOutfitRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOutfitRepository) CountCreatedSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOutfitRepository) AddLike(ctx context.Context, outfitID, userID string) (bool, error) {
	args := m.Called(ctx, outfitID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOutfitRepository) RemoveLike(ctx context.Context, outfitID, userID string) error {
	args := m.Called(ctx, outfitID, userID)
	return args.Error(0)
}

func (m *MockOutfitRepository) CountLikes(ctx context.Context, outfitID string) (int64, error) {
	args := m.Called(ctx, outfitID)
	return args.Get(0).(int64), args.Error(1)
}

// MockStylist is a mock implementation of stylist.Stylist
type MockStylist struct {
	mock.Mock
}

func (m *MockStylist) Generate(ctx context.Context, product models.Product, style models.Style) stylist.GeneratedOutfit {
	args := m.Called(ctx, product, style)
	return args.Get(0).(stylist.GeneratedOutfit)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, payload interface{}) error {
	args := m.Called(routingKey, payload)
	return args.Error(0)
}
