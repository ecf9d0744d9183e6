package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vybe/internal/models"
	"vybe/internal/repositories"
	"vybe/pkg/cache"
)

const (
	facetPrefix    = "facets:"
	brandsCacheKey = facetPrefix + "brands"
)

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"price":     "price",
	"name":      "name",
	"brand":     "brand",
}

// ParseSort checks a caller-supplied sort field and direction against the
// allow-list. Empty values mean createdAt DESC.
func ParseSort(sortBy, sortOrder string) (repositories.ProductSort, error) {
	if sortBy == "" {
		sortBy = "createdAt"
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return repositories.ProductSort{}, fmt.Errorf("%w: unsupported sortBy %q", ErrInvalidSort, sortBy)
	}

	switch {
	case sortOrder == "" || strings.EqualFold(sortOrder, "DESC"):
		return repositories.ProductSort{Column: column, Desc: true}, nil
	case strings.EqualFold(sortOrder, "ASC"):
		return repositories.ProductSort{Column: column}, nil
	default:
		return repositories.ProductSort{}, fmt.Errorf("%w: sortOrder must be ASC or DESC", ErrInvalidSort)
	}
}

var newestFirst = repositories.ProductSort{Column: "created_at", Desc: true}

// ProductService handles catalog reads, facets and reviews.
type ProductService struct {
	products repositories.ProductRepository
	reviews  repositories.ReviewRepository
	saved    repositories.SavedItemRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewProductService creates a new ProductService.
func NewProductService(products repositories.ProductRepository, reviews repositories.ReviewRepository, saved repositories.SavedItemRepository, c cache.Cache, cacheTTL time.Duration) *ProductService {
	return &ProductService{
		products: products,
		reviews:  reviews,
		saved:    saved,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func validateFilter(filter repositories.ProductFilter) error {
	if filter.Category != "" && !filter.Category.Valid() {
		return ErrInvalidCategory
	}
	if filter.Gender != "" && !filter.Gender.Valid() {
		return ErrInvalidGender
	}
	return nil
}

// ListProducts returns a filtered, sorted page of the catalog. When viewerID
// is set every product also reports whether the viewer saved it.
func (s *ProductService) ListProducts(ctx context.Context, filter repositories.ProductFilter, sort repositories.ProductSort, p Pagination, viewerID string) ([]models.Product, int64, error) {
	if err := validateFilter(filter); err != nil {
		return nil, 0, err
	}
	products, total, err := s.products.List(ctx, filter, sort, p.window())
	if err != nil {
		return nil, 0, err
	}
	if err := s.decorate(ctx, products, viewerID); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ProductsByCategory lists one category, newest first.
func (s *ProductService) ProductsByCategory(ctx context.Context, category string, p Pagination) ([]models.Product, int64, error) {
	c := models.Category(category)
	if !c.Valid() {
		return nil, 0, ErrInvalidCategory
	}
	return s.ListProducts(ctx, repositories.ProductFilter{Category: c}, newestFirst, p, "")
}

// Search matches query against name, brand and description, newest first.
func (s *ProductService) Search(ctx context.Context, query string, p Pagination) ([]models.Product, int64, error) {
	return s.ListProducts(ctx, repositories.ProductFilter{Search: query}, newestFirst, p, "")
}

// NewArrivals returns up to limit products flagged new.
func (s *ProductService) NewArrivals(ctx context.Context, limit int) ([]models.Product, error) {
	return s.featured(ctx, repositories.ProductFilter{IsNew: true}, limit)
}

// OnSale returns up to limit products flagged on sale.
func (s *ProductService) OnSale(ctx context.Context, limit int) ([]models.Product, error) {
	return s.featured(ctx, repositories.ProductFilter{IsSale: true}, limit)
}

func (s *ProductService) featured(ctx context.Context, filter repositories.ProductFilter, limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = DefaultFeaturedSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	products, _, err := s.ListProducts(ctx, filter, newestFirst, Pagination{Page: 1, Limit: limit}, "")
	return products, err
}

// GetProduct returns a product with its reviews and derived rating.
func (s *ProductService) GetProduct(ctx context.Context, id, viewerID string) (*models.Product, error) {
	product, err := s.products.GetWithReviews(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	summary := models.Summarize(product.Reviews)
	product.Rating = summary.Average
	product.ReviewCount = summary.Count
	if product.Reviews == nil {
		product.Reviews = []models.Review{}
	}

	if viewerID != "" {
		saved, err := s.saved.SavedProductIDs(ctx, viewerID, []string{product.ID})
		if err != nil {
			return nil, err
		}
		isSaved := saved[product.ID]
		product.IsSaved = &isSaved
	}
	return product, nil
}

// AffiliateLinks returns the product whose retailer links were asked for.
func (s *ProductService) AffiliateLinks(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// decorate fills in the derived rating fields and, for a signed-in viewer,
// the saved flag.
func (s *ProductService) decorate(ctx context.Context, products []models.Product, viewerID string) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]string, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}

	summaries, err := s.reviews.Summaries(ctx, ids)
	if err != nil {
		return err
	}
	var saved map[string]bool
	if viewerID != "" {
		if saved, err = s.saved.SavedProductIDs(ctx, viewerID, ids); err != nil {
			return err
		}
	}

	for i := range products {
		sum := summaries[products[i].ID]
		products[i].Rating = sum.Average
		products[i].ReviewCount = sum.Count
		if saved != nil {
			isSaved := saved[products[i].ID]
			products[i].IsSaved = &isSaved
		}
	}
	return nil
}

// Brands returns every brand in the catalog, served from cache when possible.
func (s *ProductService) Brands(ctx context.Context) ([]string, error) {
	var brands []string
	if s.cached(ctx, brandsCacheKey, &brands) {
		return brands, nil
	}

	brands, err := s.products.Brands(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, brandsCacheKey, brands)
	return brands, nil
}

// PriceRange returns the catalog's price bounds, optionally for one category.
func (s *ProductService) PriceRange(ctx context.Context, category string) (repositories.PriceRange, error) {
	c := models.Category(category)
	if c != "" && !c.Valid() {
		return repositories.PriceRange{}, ErrInvalidCategory
	}
	key := facetPrefix + "price:" + category
	if category == "" {
		key = facetPrefix + "price:all"
	}

	var pr repositories.PriceRange
	if s.cached(ctx, key, &pr) {
		return pr, nil
	}

	pr, err := s.products.PriceRange(ctx, c)
	if err != nil {
		return repositories.PriceRange{}, err
	}
	s.store(ctx, key, pr)
	return pr, nil
}

// CreateProduct adds a product to the catalog and drops cached facets.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if !product.Category.Valid() {
		return ErrInvalidCategory
	}
	if product.Gender == "" {
		product.Gender = models.GenderUnisex
	}
	if !product.Gender.Valid() {
		return ErrInvalidGender
	}
	if err := s.products.Create(ctx, product); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, facetPrefix); err != nil {
		slog.Warn("failed to invalidate facet cache", slog.String("error", err.Error()))
	}
	return nil
}

// AddReview records userID's rating of a product. Each user reviews a product once.
func (s *ProductService) AddReview(ctx context.Context, userID, productID string, rating int, comment string) (*models.Review, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	review := &models.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return review, nil
}

// cached is a best-effort cache read. A cache failure is treated as a miss.
func (s *ProductService) cached(ctx context.Context, key string, dest interface{}) bool {
	ok, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		slog.Warn("cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return ok
}

func (s *ProductService) store(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		slog.Warn("cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
