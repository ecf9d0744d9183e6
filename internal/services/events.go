package services

import (
	"log/slog"
	"time"
)

// Routing keys of the domain events.
const (
	EventOutfitGenerated = "outfit.generated"
	EventOutfitLiked     = "outfit.liked"
	EventItemSaved       = "item.saved"
)

// EventPublisher delivers domain events to the message broker.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

// Publish implements EventPublisher.
func (NoopPublisher) Publish(string, interface{}) error { return nil }

// OutfitGenerated is published after a generated outfit is stored.
type OutfitGenerated struct {
	OutfitID   string    `json:"outfitId"`
	UserID     string    `json:"userId"`
	ProductID  string    `json:"productId"`
	Style      string    `json:"style"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OutfitLiked is published when a user likes an outfit for the first time.
type OutfitLiked struct {
	OutfitID   string    `json:"outfitId"`
	UserID     string    `json:"userId"`
	Likes      int64     `json:"likes"`
	OccurredAt time.Time `json:"occurredAt"`
}

// ItemSaved is published when a product is added to a wishlist.
type ItemSaved struct {
	SavedItemID string    `json:"savedItemId"`
	UserID      string    `json:"userId"`
	ProductID   string    `json:"productId"`
	Folder      string    `json:"folder"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// publish never fails the caller; a lost event is only logged.
func publish(p EventPublisher, routingKey string, payload interface{}) {
	if err := p.Publish(routingKey, payload); err != nil {
		slog.Warn("failed to publish event",
			slog.String("type", routingKey),
			slog.String("error", err.Error()),
		)
	}
}
