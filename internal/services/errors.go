package services

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOutfitNotFound     = errors.New("outfit not found")
	ErrSavedItemNotFound  = errors.New("saved item not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadySaved       = errors.New("product already saved")
	ErrAlreadyReviewed    = errors.New("product already reviewed")
	ErrQuotaExceeded      = errors.New("daily outfit generation limit reached. Upgrade to Pro for unlimited generations")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidGender      = errors.New("invalid gender")
	ErrInvalidSort        = errors.New("invalid sort")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
