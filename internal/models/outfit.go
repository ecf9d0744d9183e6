package models

import (
	"time"

	"gorm.io/datatypes"
)

// OutfitItem is one piece of an outfit with its estimated price.
type OutfitItem struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Price float64 `json:"price" validate:"gte=0"`
}

// Outfit represents a user-owned collection of items.
//
// Likes is derived from the outfit_likes table and is only populated by
// queries that ask for it.
type Outfit struct {
	ID               string                          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID           string                          `json:"userId" gorm:"type:varchar(36);not null;index"`
	Name             string                          `json:"name" gorm:"type:varchar(255);not null"`
	Description      string                          `json:"description" gorm:"type:text"`
	Items            datatypes.JSONSlice[OutfitItem] `json:"items"`
	ImageURL         string                          `json:"imageUrl,omitempty" gorm:"type:varchar(512)"`
	Style            Style                           `json:"style" gorm:"type:varchar(20);not null;index"`
	IsPublic         bool                            `json:"isPublic" gorm:"not null;default:false;index"`
	Likes            int64                           `json:"likes" gorm:"->;-:migration"`
	BasedOnProductID *string                         `json:"basedOnProductId,omitempty" gorm:"type:varchar(36)"`
	User             *UserRef                        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BasedOnProduct   *Product                        `json:"-" gorm:"foreignKey:BasedOnProductID"`
	BaseProduct      *ProductSummary                 `json:"basedOnProduct,omitempty" gorm:"-"`
	CreatedAt        time.Time                       `json:"createdAt" gorm:"index"`
	UpdatedAt        time.Time                       `json:"updatedAt"`
}

// OutfitLike records that a user liked an outfit. One row per (outfit, user).
type OutfitLike struct {
	OutfitID  string `gorm:"primaryKey;type:varchar(36)"`
	UserID    string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time
}
