package stylist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"vybe/internal/models"
)

// defaultItemPrice is used when the model gives no usable price.
const defaultItemPrice = 50

var styleDescriptions = map[models.Style]string{
	models.StyleStreet:    "casual streetwear with bold statement pieces",
	models.StyleSmart:     "elevated everyday look with premium touches",
	models.StyleStatement: "bold and confident with vintage influences",
	models.StyleMinimal:   "clean and minimal aesthetic",
	models.StyleVintage:   "retro-inspired with modern touches",
}

func buildPrompt(product models.Product, style models.Style) string {
	desc, ok := styleDescriptions[style]
	if !ok {
		desc = styleDescriptions[models.StyleStreet]
	}
	return fmt.Sprintf(`Generate a complete outfit based on this %s: %s by %s.

Style preference: %s

Provide the response in this exact JSON format:
{
  "name": "Outfit name",
  "description": "Brief description of the look",
  "items": [
    {
      "name": "Item name",
      "category": "category",
      "price": estimated_price
    }
  ]
}

Include 4-5 items that complement the base product. Estimate realistic prices for each item.
`, product.Category, product.Name, product.Brand, desc)
}

type aiReply struct {
	Name        string   `json:"name" validate:"max=255"`
	Description string   `json:"description" validate:"max=2000"`
	Items       []aiItem `json:"items" validate:"required,dive"`
}

type aiItem struct {
	Name     string          `json:"name" validate:"required,max=255"`
	Category string          `json:"category"`
	Price    json.RawMessage `json:"price"`
}

// parseReply strictly decodes the model's reply. The reply must be a single
// JSON object of the requested shape, optionally wrapped in a code fence.
// Keys outside that shape, at any level, reject the reply.
func parseReply(v *validator.Validate, content string, product models.Product, style models.Style) (GeneratedOutfit, error) {
	dec := json.NewDecoder(strings.NewReader(stripCodeFence(content)))
	dec.DisallowUnknownFields()

	var reply aiReply
	if err := dec.Decode(&reply); err != nil {
		return GeneratedOutfit{}, fmt.Errorf("failed to decode stylist reply: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return GeneratedOutfit{}, errors.New("stylist reply has trailing content")
	}
	if err := v.Struct(reply); err != nil {
		return GeneratedOutfit{}, fmt.Errorf("invalid stylist reply: %w", err)
	}

	items := make([]models.OutfitItem, 0, MaxItems)
	items = append(items, baseItem(product))
	for _, it := range reply.Items {
		if len(items) == MaxItems {
			break
		}
		items = append(items, models.OutfitItem{Name: it.Name, Price: coercePrice(it.Price)})
	}

	out := GeneratedOutfit{
		Name:        strings.TrimSpace(reply.Name),
		Description: strings.TrimSpace(reply.Description),
		Items:       items,
	}
	if out.Name == "" {
		out.Name = style.Title() + " Look"
	}
	if out.Description == "" {
		out.Description = "AI generated outfit"
	}
	return out, nil
}

// coercePrice accepts a JSON number or numeric string. Anything missing,
// unparsable, or not positive becomes defaultItemPrice.
func coercePrice(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return defaultItemPrice
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return defaultItemPrice
		}
		s = strings.TrimPrefix(strings.TrimSpace(s), "$")
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return defaultItemPrice
		}
		n = parsed
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return defaultItemPrice
	}
	return n
}

func stripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}
