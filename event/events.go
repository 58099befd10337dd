package event

import (
	"time"

	"campustix/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/shopspring/decimal"
)

type header struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func newHeader(idempotencyKey string) header {
	return header{
		ID:             watermill.NewUUID(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

// ResaleAnalysisCompleted is published after the advisor priced a resale ticket.
// EventID is empty for analyses that were not requested for a catalog event.
type ResaleAnalysisCompleted struct {
	Header  header                 `json:"header"`
	EventID string                 `json:"event_id"`
	Request entity.AdvisoryRequest `json:"request"`
	Result  entity.AdvisoryResult  `json:"result"`
}

func NewResaleAnalysisCompleted(idempotencyKey, eventID string, req entity.AdvisoryRequest, result entity.AdvisoryResult) ResaleAnalysisCompleted {
	return ResaleAnalysisCompleted{
		Header:  newHeader(idempotencyKey),
		EventID: eventID,
		Request: req,
		Result:  result,
	}
}

type ResaleAnalysisFailed struct {
	Header  header `json:"header"`
	EventID string `json:"event_id"`
	Reason  string `json:"reason"`
}

func NewResaleAnalysisFailed(idempotencyKey, eventID, reason string) ResaleAnalysisFailed {
	return ResaleAnalysisFailed{
		Header:  newHeader(idempotencyKey),
		EventID: eventID,
		Reason:  reason,
	}
}

type TicketPurchased struct {
	Header   header          `json:"header"`
	EventID  string          `json:"event_id"`
	UserID   string          `json:"user_id"`
	TicketID string          `json:"ticket_id"`
	TierName string          `json:"tier_name"`
	Price    decimal.Decimal `json:"price"`
}

func NewTicketPurchased(idempotencyKey string, purchase entity.Purchase) TicketPurchased {
	return TicketPurchased{
		Header:   newHeader(idempotencyKey),
		EventID:  purchase.Ticket.EventID,
		UserID:   purchase.UserID,
		TicketID: purchase.Ticket.ID,
		TierName: purchase.Ticket.TicketType,
		Price:    purchase.Price,
	}
}

type EventCreated struct {
	Header     header            `json:"header"`
	EventID    string            `json:"event_id"`
	Title      string            `json:"title"`
	Date       time.Time         `json:"date"`
	PriceRange entity.PriceRange `json:"price_range"`
}

func NewEventCreated(idempotencyKey string, e entity.Event) EventCreated {
	return EventCreated{
		Header:     newHeader(idempotencyKey),
		EventID:    e.ID,
		Title:      e.Title,
		Date:       e.Date,
		PriceRange: e.PriceRange,
	}
}
