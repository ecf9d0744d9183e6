package models

import (
	"time"

	"gorm.io/datatypes"
)

// Preferences is the per-user settings bag.
type Preferences struct {
	DarkMode      bool `json:"darkMode"`
	Notifications bool `json:"notifications"`
	PriceAlerts   bool `json:"priceAlerts"`
}

// DefaultPreferences are applied to newly registered accounts.
func DefaultPreferences() Preferences {
	return Preferences{DarkMode: true, Notifications: true, PriceAlerts: true}
}

// User represents an account.
type User struct {
	ID           string                          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string                          `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	Password     string                          `json:"-" gorm:"type:varchar(255);not null" validate:"required,min=6,max=255"` // bcrypt hash once stored
	Name         string                          `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	Avatar       string                          `json:"avatar,omitempty" gorm:"type:varchar(512)"`
	IsPro        bool                            `json:"isPro" gorm:"not null;default:false"`
	ProExpiresAt *time.Time                      `json:"proExpiresAt,omitempty"`
	Preferences  datatypes.JSONType[Preferences] `json:"preferences"`
	LastLoginAt  *time.Time                      `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time                       `json:"createdAt"`
	UpdatedAt    time.Time                       `json:"updatedAt"`
}

// HasActivePro reports whether the account is on the paid tier at now.
// A pro flag without an expiry never lapses.
func (u *User) HasActivePro(now time.Time) bool {
	if !u.IsPro {
		return false
	}
	return u.ProExpiresAt == nil || now.Before(*u.ProExpiresAt)
}

// UserRef is the public face of a user attached to reviews and outfits.
type UserRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// TableName points UserRef at the users table so it can be preloaded.
func (UserRef) TableName() string { return "users" }
