package stylist

import (
	"context"

	"vybe/internal/metrics"
	"vybe/internal/models"
)

type template struct {
	name        string
	description string
	items       []models.OutfitItem
}

var templates = map[models.Style]template{
	models.StyleStreet: {
		name:        "Street Vibes",
		description: "Casual streetwear with bold statement pieces",
		items: []models.OutfitItem{
			{Name: "Black Cargo Pants", Price: 85},
			{Name: "Oversized Graphic Hoodie", Price: 65},
			{Name: "Silver Chain Necklace", Price: 45},
		},
	},
	models.StyleSmart: {
		name:        "Smart Casual",
		description: "Elevated everyday look with premium touches",
		items: []models.OutfitItem{
			{Name: "Slim Black Jeans", Price: 95},
			{Name: "White Oversized Tee", Price: 35},
			{Name: "Black Bomber Jacket", Price: 120},
		},
	},
	models.StyleStatement: {
		name:        "Statement Piece",
		description: "Bold and confident with vintage influences",
		items: []models.OutfitItem{
			{Name: "Distressed Denim Jeans", Price: 75},
			{Name: "Vintage Band Tee", Price: 55},
			{Name: "Oversized Leather Jacket", Price: 250},
			{Name: "Gold Chains", Price: 80},
		},
	},
	models.StyleMinimal: {
		name:        "Minimal Aesthetic",
		description: "Clean and minimal with neutral tones",
		items: []models.OutfitItem{
			{Name: "White T-Shirt", Price: 30},
			{Name: "Black Trousers", Price: 80},
			{Name: "Minimal Watch", Price: 150},
		},
	},
	models.StyleVintage: {
		name:        "Vintage Revival",
		description: "Retro-inspired with modern touches",
		items: []models.OutfitItem{
			{Name: "Vintage Wash Jeans", Price: 90},
			{Name: "Retro Windbreaker", Price: 120},
			{Name: "Vintage Cap", Price: 35},
		},
	},
}

// Template returns the static outfit for style with product as the first
// item at its real price. Unknown styles get the street template.
func Template(product models.Product, style models.Style) GeneratedOutfit {
	tpl, ok := templates[style]
	if !ok {
		tpl = templates[models.StyleStreet]
	}

	items := make([]models.OutfitItem, 0, len(tpl.items)+1)
	items = append(items, baseItem(product))
	items = append(items, tpl.items...)
	return GeneratedOutfit{
		Name:        tpl.name,
		Description: tpl.description,
		Items:       items,
	}
}

func baseItem(product models.Product) models.OutfitItem {
	return models.OutfitItem{Name: product.Name, Price: product.Price}
}

// TemplateStylist serves the static templates only.
type TemplateStylist struct{}

// NewTemplateStylist creates a stylist that never leaves the process.
func NewTemplateStylist() *TemplateStylist {
	return &TemplateStylist{}
}

// Generate implements Stylist.
func (TemplateStylist) Generate(_ context.Context, product models.Product, style models.Style) GeneratedOutfit {
	style = models.NormalizeStyle(string(style))
	metrics.ObserveGeneration(metrics.SourceTemplate, string(style))
	return Template(product, style)
}
