package models

import (
	"time"

	"gorm.io/datatypes"
)

// Category is the closed set of catalog departments.
type Category string

const (
	CategoryClothing    Category = "clothing"
	CategoryTrainers    Category = "trainers"
	CategoryAccessories Category = "accessories"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryClothing, CategoryTrainers, CategoryAccessories}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Gender is the audience a product is cut for.
type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
)

// Valid reports whether g is one of the known gender tags.
func (g Gender) Valid() bool {
	return g == GenderMen || g == GenderWomen || g == GenderUnisex
}

// Product represents a catalog item.
//
// Rating and ReviewCount are never persisted. They are filled in from the
// product's reviews every time a product is read.
type Product struct {
	ID             string                                `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name           string                                `json:"name" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Brand          string                                `json:"brand" gorm:"type:varchar(255);not null;index" validate:"required,max=255"`
	Description    string                                `json:"description" gorm:"type:text"`
	Price          float64                               `json:"price" gorm:"type:decimal(10,2);not null;check:chk_products_price,price >= 0" validate:"gte=0"`
	OriginalPrice  *float64                              `json:"originalPrice,omitempty" gorm:"type:decimal(10,2)" validate:"omitempty,gte=0"`
	Images         datatypes.JSONSlice[string]           `json:"images"`
	Category       Category                              `json:"category" gorm:"type:varchar(20);not null;index" validate:"required,oneof=clothing trainers accessories"`
	Gender         Gender                                `json:"gender" gorm:"type:varchar(10);not null;default:unisex" validate:"omitempty,oneof=men women unisex"`
	IsNew          bool                                  `json:"isNew" gorm:"not null;default:false"`
	IsSale         bool                                  `json:"isSale" gorm:"not null;default:false"`
	AffiliateLinks datatypes.JSONType[map[string]string] `json:"affiliateLinks"`
	Sizes          datatypes.JSONSlice[string]           `json:"sizes"`
	Colors         datatypes.JSONSlice[string]           `json:"colors"`
	Tags           datatypes.JSONSlice[string]           `json:"tags"`
	Rating         float64                               `json:"rating" gorm:"-"`
	ReviewCount    int                                   `json:"reviewCount" gorm:"-"`
	IsSaved        *bool                                 `json:"isSaved,omitempty" gorm:"-"`
	Reviews        []Review                              `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt      time.Time                             `json:"createdAt"`
	UpdatedAt      time.Time                             `json:"updatedAt"`
}

// Links returns the retailer → URL mapping, never nil.
func (p *Product) Links() map[string]string {
	links := p.AffiliateLinks.Data()
	if links == nil {
		return map[string]string{}
	}
	return links
}

// ProductSummary is the trimmed product shape embedded in outfits.
type ProductSummary struct {
	ID     string                      `json:"id"`
	Name   string                      `json:"name"`
	Brand  string                      `json:"brand"`
	Images datatypes.JSONSlice[string] `json:"images"`
	Price  float64                     `json:"price"`
}

// Summary trims p down to the fields shown next to an outfit.
func (p *Product) Summary() *ProductSummary {
	return &ProductSummary{ID: p.ID, Name: p.Name, Brand: p.Brand, Images: p.Images, Price: p.Price}
}
