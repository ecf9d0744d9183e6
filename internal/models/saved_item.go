package models

import "time"

// DefaultFolder is used when a saved item is stored without a folder.
const DefaultFolder = "default"

// SavedItem is a product a user has put on their wishlist.
type SavedItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);not null;uniqueIndex:idx_saved_items_user_product;index:idx_saved_items_user_folder,priority:1"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);not null;uniqueIndex:idx_saved_items_user_product"`
	Folder    string    `json:"folder" gorm:"type:varchar(100);not null;default:default;index:idx_saved_items_user_folder,priority:2"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FolderCount is one folder label with the number of items filed under it.
type FolderCount struct {
	Folder string `json:"folder"`
	Count  int64  `json:"count"`
}
