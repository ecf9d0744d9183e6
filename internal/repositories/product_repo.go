package repositories

import (
	"context"

	"vybe/internal/models"
)

// ProductFilter narrows a catalog listing. Zero values mean "no filter".
type ProductFilter struct {
	Category models.Category
	Gender   models.Gender
	Brand    string // case-insensitive substring
	Search   string // case-insensitive substring of name, brand or description
	MinPrice *float64
	MaxPrice *float64
	IsNew    bool
	IsSale   bool
}

// ProductSort orders a catalog listing. Column must already be allow-listed.
type ProductSort struct {
	Column string
	Desc   bool
}

// PriceRange is the cheapest and dearest price in a slice of the catalog.
type PriceRange struct {
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter, sort ProductSort, page Page) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetWithReviews(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Count(ctx context.Context) (int64, error)
	Brands(ctx context.Context) ([]string, error)
	PriceRange(ctx context.Context, category models.Category) (PriceRange, error)
}
