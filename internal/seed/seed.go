// Package seed loads the launch catalog into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"

	"vybe/internal/models"
)

type entry struct {
	Name          string
	Brand         string
	Description   string
	Price         float64
	OriginalPrice *float64
	Images        []string
	Category      models.Category
	Gender        models.Gender
	IsNew         bool
	IsSale        bool
	Links         map[string]string
	Sizes         []string
	Colors        []string
	Tags          []string
}

func (e entry) product() *models.Product {
	return &models.Product{
		Name:           e.Name,
		Brand:          e.Brand,
		Description:    e.Description,
		Price:          e.Price,
		OriginalPrice:  e.OriginalPrice,
		Images:         e.Images,
		Category:       e.Category,
		Gender:         e.Gender,
		IsNew:          e.IsNew,
		IsSale:         e.IsSale,
		AffiliateLinks: datatypes.NewJSONType(e.Links),
		Sizes:          e.Sizes,
		Colors:         e.Colors,
		Tags:           e.Tags,
	}
}

// ProductCounter reports how many products the catalog holds.
type ProductCounter interface {
	Count(ctx context.Context) (int64, error)
}

// ProductCreator adds a product through the catalog's write path.
type ProductCreator interface {
	CreateProduct(ctx context.Context, product *models.Product) error
}

// Catalog inserts the launch catalog when the store has no products yet.
// It returns the number of products inserted.
func Catalog(ctx context.Context, counter ProductCounter, creator ProductCreator) (int, error) {
	existing, err := counter.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if existing > 0 {
		slog.Info("catalog already populated, skipping seed", slog.Int64("products", existing))
		return 0, nil
	}

	for i, e := range catalog {
		if err := creator.CreateProduct(ctx, e.product()); err != nil {
			return i, fmt.Errorf("seed product %q: %w", e.Name, err)
		}
	}
	slog.Info("catalog seeded", slog.Int("products", len(catalog)))
	return len(catalog), nil
}
