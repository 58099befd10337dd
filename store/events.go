package store

import (
	"context"
	"strings"

	"campustix/entity"

	"github.com/google/uuid"
)

type EventRepo struct {
	mem *Memory
}

func NewEventRepo(mem *Memory) EventRepo {
	return EventRepo{
		mem: mem,
	}
}

func (r EventRepo) List(_ context.Context) ([]entity.Event, error) {
	r.mem.lock.RLock()
	defer r.mem.lock.RUnlock()

	events := make([]entity.Event, len(r.mem.events))
	copy(events, r.mem.events)

	return events, nil
}

func (r EventRepo) Get(_ context.Context, eventID string) (entity.Event, error) {
	r.mem.lock.RLock()
	defer r.mem.lock.RUnlock()

	i := r.mem.eventIndex(eventID)
	if i < 0 {
		return entity.Event{}, notFoundError{kind: "event", id: eventID}
	}

	return r.mem.events[i], nil
}

func (r EventRepo) Tiers(_ context.Context, eventID string) ([]entity.TicketTier, error) {
	r.mem.lock.RLock()
	defer r.mem.lock.RUnlock()

	if r.mem.eventIndex(eventID) < 0 {
		return nil, notFoundError{kind: "event", id: eventID}
	}

	tiers := make([]entity.TicketTier, len(r.mem.tiers[eventID]))
	copy(tiers, r.mem.tiers[eventID])

	return tiers, nil
}

func (r EventRepo) ResaleListings(_ context.Context, eventID string) ([]entity.ResaleListing, error) {
	r.mem.lock.RLock()
	defer r.mem.lock.RUnlock()

	if r.mem.eventIndex(eventID) < 0 {
		return nil, notFoundError{kind: "event", id: eventID}
	}

	listings := make([]entity.ResaleListing, len(r.mem.resaleListings[eventID]))
	copy(listings, r.mem.resaleListings[eventID])

	return listings, nil
}

func (r EventRepo) Reviews(_ context.Context, eventID string) ([]entity.Review, error) {
	r.mem.lock.RLock()
	defer r.mem.lock.RUnlock()

	if r.mem.eventIndex(eventID) < 0 {
		return nil, notFoundError{kind: "event", id: eventID}
	}

	reviews := make([]entity.Review, len(r.mem.reviews[eventID]))
	copy(reviews, r.mem.reviews[eventID])

	return reviews, nil
}

func (r EventRepo) Create(_ context.Context, newEvent entity.NewEvent) (entity.Event, error) {
	if err := validateNewEvent(newEvent); err != nil {
		return entity.Event{}, err
	}

	event := entity.Event{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(newEvent.Title),
		Description: strings.TrimSpace(newEvent.Description),
		Date:        newEvent.Date.UTC(),
		Location:    strings.TrimSpace(newEvent.Location),
		Category:    strings.TrimSpace(newEvent.Category),
		PriceRange: entity.PriceRange{
			Min: newEvent.Tiers[0].Price,
			Max: newEvent.Tiers[0].Price,
		},
		ImageID: "event-1",
	}

	tiers := make([]entity.TicketTier, 0, len(newEvent.Tiers))
	for _, t := range newEvent.Tiers {
		if t.Price.LessThan(event.PriceRange.Min) {
			event.PriceRange.Min = t.Price
		}
		if t.Price.GreaterThan(event.PriceRange.Max) {
			event.PriceRange.Max = t.Price
		}

		tiers = append(tiers, entity.TicketTier{
			ID:       uuid.NewString(),
			EventID:  event.ID,
			Name:     strings.TrimSpace(t.Name),
			Quantity: t.Quantity,
			Price:    t.Price,
		})
	}

	r.mem.lock.Lock()
	defer r.mem.lock.Unlock()

	r.mem.events = append([]entity.Event{event}, r.mem.events...)
	r.mem.tiers[event.ID] = tiers

	return event, nil
}

func validateNewEvent(e entity.NewEvent) error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return invalidEventError{reason: "title is required"}
	case strings.TrimSpace(e.Description) == "":
		return invalidEventError{reason: "description is required"}
	case strings.TrimSpace(e.Location) == "":
		return invalidEventError{reason: "location is required"}
	case strings.TrimSpace(e.Category) == "":
		return invalidEventError{reason: "category is required"}
	case e.Date.IsZero():
		return invalidEventError{reason: "date is required"}
	case len(e.Tiers) == 0:
		return invalidEventError{reason: "at least one ticket tier is required"}
	}

	for _, t := range e.Tiers {
		if strings.TrimSpace(t.Name) == "" {
			return invalidEventError{reason: "ticket tier name is required"}
		}
		if t.Price.IsNegative() {
			return invalidEventError{reason: "ticket tier price must not be negative"}
		}
	}

	return nil
}
