// Package stylist turns a base product and a style into a complete outfit.
//
// Two implementations exist. TemplateStylist is deterministic and needs no
// configuration. AIStylist asks a chat-completions endpoint for a look and
// falls back to the template for the requested style on any failure. Neither
// ever returns an error: some outfit is always better than none.
package stylist

import (
	"context"

	"vybe/internal/models"
)

// MaxItems caps the length of a generated outfit, base product included.
const MaxItems = 5

// GeneratedOutfit is the stylist's proposal before it is persisted.
type GeneratedOutfit struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Items       []models.OutfitItem `json:"items"`
}

// Stylist proposes an outfit built around product. Implementations must be
// safe for concurrent use.
type Stylist interface {
	Generate(ctx context.Context, product models.Product, style models.Style) GeneratedOutfit
}
