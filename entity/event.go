package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	Location    string     `json:"location"`
	Category    string     `json:"category"`
	PriceRange  PriceRange `json:"price_range"`
	ImageID     string     `json:"image_id"`
}

type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

type TicketTier struct {
	ID       string          `json:"id"`
	EventID  string          `json:"event_id"`
	Name     string          `json:"name"`
	Quantity uint            `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type ResaleListing struct {
	ID            string          `json:"id"`
	EventID       string          `json:"event_id"`
	SellerName    string          `json:"seller_name"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	ResalePrice   decimal.Decimal `json:"resale_price"`
}

type Review struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// NewEvent is an event as submitted by an organiser, before it gets an ID and a price range.
type NewEvent struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Category    string
	Tiers       []NewTicketTier
}

type NewTicketTier struct {
	Name     string
	Quantity uint
	Price    decimal.Decimal
}
