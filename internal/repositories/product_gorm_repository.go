package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vybe/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func applyProductFilter(filter ProductFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if filter.Category != "" {
			q = q.Where("category = ?", filter.Category)
		}
		if filter.Gender != "" {
			q = q.Where("gender = ?", filter.Gender)
		}
		if filter.Brand != "" {
			q = q.Where(`LOWER(brand) LIKE ? ESCAPE '\'`, likePattern(filter.Brand))
		}
		if filter.Search != "" {
			p := likePattern(filter.Search)
			q = q.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(brand) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, p, p, p)
		}
		if filter.MinPrice != nil {
			q = q.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			q = q.Where("price <= ?", *filter.MaxPrice)
		}
		if filter.IsNew {
			q = q.Where("is_new = ?", true)
		}
		if filter.IsSale {
			q = q.Where("is_sale = ?", true)
		}
		return q
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-insensitive substring pattern in which the
// caller's wildcards match literally.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// List returns one page of products matching filter and the total match count.
func (r *GORMProductRepository) List(ctx context.Context, filter ProductFilter, sort ProductSort, page Page) ([]models.Product, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Product{}).Scopes(applyProductFilter(filter)).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	column := sort.Column
	if column == "" {
		column = "created_at"
	}
	var products []models.Product
	err := base.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: sort.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, translate(err))
	}
	return &product, nil
}

// GetWithReviews retrieves a product with its reviews and their authors, newest first.
func (r *GORMProductRepository) GetWithReviews(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.User").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, translate(err))
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", translate(err))
	}
	return nil
}

// Count returns the number of products in the catalog.
func (r *GORMProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// Brands returns every distinct brand in ascending order.
func (r *GORMProductRepository) Brands(ctx context.Context) ([]string, error) {
	brands := []string{}
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Distinct().
		Order("brand ASC").
		Pluck("brand", &brands).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

// PriceRange returns the min and max price, optionally within one category.
// An empty slice of the catalog reports zeros.
func (r *GORMProductRepository) PriceRange(ctx context.Context, category models.Category) (PriceRange, error) {
	var row struct {
		MinPrice *float64
		MaxPrice *float64
	}
	q := r.db.WithContext(ctx).Model(&models.Product{}).Select("MIN(price) AS min_price, MAX(price) AS max_price")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Scan(&row).Error; err != nil {
		return PriceRange{}, fmt.Errorf("failed to get price range: %w", err)
	}

	var out PriceRange
	if row.MinPrice != nil {
		out.MinPrice = *row.MinPrice
	}
	if row.MaxPrice != nil {
		out.MaxPrice = *row.MaxPrice
	}
	return out, nil
}
