package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vybe/internal/models"
	"vybe/internal/repositories"
	"vybe/internal/services"
	"vybe/pkg/cache"
)

type productFixture struct {
	products *MockProductRepository
	reviews  *MockReviewRepository
	saved    *MockSavedItemRepository
	cache    *cache.MemoryCache
	service  *services.ProductService
}

func newProductFixture() *productFixture {
	f := &productFixture{
		products: new(MockProductRepository),
		reviews:  new(MockReviewRepository),
		saved:    new(MockSavedItemRepository),
		cache:    cache.NewMemoryCache(),
	}
	f.service = services.NewProductService(f.products, f.reviews, f.saved, f.cache, time.Minute)
	return f
}

func (f *productFixture) assertExpectations(t *testing.T) {
	f.products.AssertExpectations(t)
	f.reviews.AssertExpectations(t)
	f.saved.AssertExpectations(t)
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		sortBy, sortOrder string
		want              repositories.ProductSort
		wantErr           bool
	}{
		{"", "", repositories.ProductSort{Column: "created_at", Desc: true}, false},
		{"price", "asc", repositories.ProductSort{Column: "price"}, false},
		{"name", "DESC", repositories.ProductSort{Column: "name", Desc: true}, false},
		{"updatedAt", "Asc", repositories.ProductSort{Column: "updated_at"}, false},
		{"brand", "", repositories.ProductSort{Column: "brand", Desc: true}, false},
		{"password", "ASC", repositories.ProductSort{}, true},
		{"price; DROP TABLE products", "ASC", repositories.ProductSort{}, true},
		{"price", "sideways", repositories.ProductSort{}, true},
	}

	for _, tt := range tests {
		got, err := services.ParseSort(tt.sortBy, tt.sortOrder)
		if tt.wantErr {
			assert.ErrorIs(t, err, services.ErrInvalidSort, tt.sortBy)
			continue
		}
		assert.NoError(t, err, tt.sortBy)
		assert.Equal(t, tt.want, got, tt.sortBy)
	}
}

func TestProductService_ListProductsDerivesRatingAndSaved(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	filter := repositories.ProductFilter{Brand: "nike"}
	sort := repositories.ProductSort{Column: "price"}
	listed := []models.Product{{ID: "p1", Name: "Air Max"}, {ID: "p2", Name: "Dunk"}}

	f.products.On("List", ctx, filter, sort, repositories.Page{Limit: 20, Offset: 20}).Return(listed, int64(22), nil).Once()
	f.reviews.On("Summaries", ctx, []string{"p1", "p2"}).Return(map[string]models.RatingSummary{
		"p1": {Average: 4.3, Count: 3},
	}, nil).Once()
	f.saved.On("SavedProductIDs", ctx, "user-1", []string{"p1", "p2"}).Return(map[string]bool{"p2": true}, nil).Once()

	products, total, err := f.service.ListProducts(ctx, filter, sort, services.NewPagination(2, 20), "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(22), total)
	require.Len(t, products, 2)
	assert.Equal(t, 4.3, products[0].Rating)
	assert.Equal(t, 3, products[0].ReviewCount)
	assert.Equal(t, 0.0, products[1].Rating)
	assert.Equal(t, 0, products[1].ReviewCount)
	require.NotNil(t, products[0].IsSaved)
	assert.False(t, *products[0].IsSaved)
	assert.True(t, *products[1].IsSaved)
	f.assertExpectations(t)
}

func TestProductService_ListProductsAnonymousHasNoSavedFlag(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	f.products.On("List", ctx, repositories.ProductFilter{}, mock.Anything, mock.Anything).Return([]models.Product{{ID: "p1"}}, int64(1), nil).Once()
	f.reviews.On("Summaries", ctx, []string{"p1"}).Return(map[string]models.RatingSummary{}, nil).Once()

	products, _, err := f.service.ListProducts(ctx, repositories.ProductFilter{}, repositories.ProductSort{}, services.NewPagination(1, 20), "")

	require.NoError(t, err)
	assert.Nil(t, products[0].IsSaved)
	f.saved.AssertNotCalled(t, "SavedProductIDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_RejectsInvalidFilters(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	_, _, err := f.service.ListProducts(ctx, repositories.ProductFilter{Category: "hats"}, repositories.ProductSort{}, services.NewPagination(1, 20), "")
	assert.ErrorIs(t, err, services.ErrInvalidCategory)

	_, _, err = f.service.ListProducts(ctx, repositories.ProductFilter{Gender: "kids"}, repositories.ProductSort{}, services.NewPagination(1, 20), "")
	assert.ErrorIs(t, err, services.ErrInvalidGender)

	_, _, err = f.service.ProductsByCategory(ctx, "shoes", services.NewPagination(1, 20))
	assert.ErrorIs(t, err, services.ErrInvalidCategory)

	f.products.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_GetProduct(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	product := &models.Product{ID: "p1", Reviews: []models.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}}
	f.products.On("GetWithReviews", ctx, "p1").Return(product, nil).Once()
	f.saved.On("SavedProductIDs", ctx, "user-1", []string{"p1"}).Return(map[string]bool{"p1": true}, nil).Once()

	got, err := f.service.GetProduct(ctx, "p1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 4.3, got.Rating)
	assert.Equal(t, 3, got.ReviewCount)
	require.NotNil(t, got.IsSaved)
	assert.True(t, *got.IsSaved)

	// Missing product
	f.products.On("GetWithReviews", ctx, "nope").Return(nil, notFound("product")).Once()
	_, err = f.service.GetProduct(ctx, "nope", "")
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	f.assertExpectations(t)
}

func TestProductService_FeaturedUsesDefaultLimit(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	f.products.On("List", ctx, repositories.ProductFilter{IsSale: true}, repositories.ProductSort{Column: "created_at", Desc: true}, repositories.Page{Limit: 10}).
		Return([]models.Product{}, int64(0), nil).Once()

	products, err := f.service.OnSale(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, products)
	f.assertExpectations(t)
}

func TestProductService_FacetsAreCachedUntilCatalogChanges(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	f.products.On("Brands", ctx).Return([]string{"Adidas", "Nike"}, nil).Once()
	f.products.On("PriceRange", ctx, models.CategoryTrainers).Return(repositories.PriceRange{MinPrice: 90, MaxPrice: 180}, nil).Once()

	for i := 0; i < 3; i++ {
		brands, err := f.service.Brands(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Adidas", "Nike"}, brands)

		pr, err := f.service.PriceRange(ctx, "trainers")
		require.NoError(t, err)
		assert.Equal(t, 180.0, pr.MaxPrice)
	}
	f.assertExpectations(t)

	newProduct := &models.Product{Name: "Gazelle", Brand: "Adidas", Category: models.CategoryTrainers, Price: 100}
	f.products.On("Create", ctx, newProduct).Return(nil).Once()
	require.NoError(t, f.service.CreateProduct(ctx, newProduct))
	assert.Equal(t, models.GenderUnisex, newProduct.Gender)

	f.products.On("Brands", ctx).Return([]string{"Adidas", "New Balance", "Nike"}, nil).Once()
	brands, err := f.service.Brands(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 3)
	f.assertExpectations(t)
}

func TestProductService_PriceRangeRejectsUnknownCategory(t *testing.T) {
	f := newProductFixture()
	_, err := f.service.PriceRange(context.Background(), "hats")
	assert.ErrorIs(t, err, services.ErrInvalidCategory)
}

func TestProductService_AddReview(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	f.products.On("GetByID", ctx, "p1").Return(&models.Product{ID: "p1"}, nil).Twice()
	f.reviews.On("Create", ctx, mock.MatchedBy(func(r *models.Review) bool {
		return r.ProductID == "p1" && r.UserID == "user-1" && r.Rating == 5 && r.Comment == "Great"
	})).Return(nil).Once()

	review, err := f.service.AddReview(ctx, "user-1", "p1", 5, "  Great ")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	f.reviews.On("Create", ctx, mock.AnythingOfType("*models.Review")).Return(errors.Join(repositories.ErrDuplicate)).Once()
	_, err = f.service.AddReview(ctx, "user-1", "p1", 4, "")
	assert.ErrorIs(t, err, services.ErrAlreadyReviewed)

	f.products.On("GetByID", ctx, "gone").Return(nil, notFound("product")).Once()
	_, err = f.service.AddReview(ctx, "user-1", "gone", 4, "")
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	f.assertExpectations(t)
}
