package http

import (
	"fmt"
	"net/http"
	"time"

	"campustix/entity"
	"campustix/event"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createEventRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Date        time.Time           `json:"date"`
	Location    string              `json:"location"`
	Category    string              `json:"category"`
	Tickets     []createTicketsTier `json:"tickets"`
}

type createTicketsTier struct {
	Name     string          `json:"name"`
	Quantity uint            `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (h handler) ListEvents(c echo.Context) error {
	events, err := h.eventRepo.List(c.Request().Context())
	if err != nil {
		return storeError(fmt.Errorf("listing events: %w", err), "failed to list events")
	}

	return c.JSON(http.StatusOK, events)
}

func (h handler) GetEvent(c echo.Context) error {
	e, err := h.eventRepo.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(err, "failed to get event")
	}

	return c.JSON(http.StatusOK, e)
}

func (h handler) ListTicketTiers(c echo.Context) error {
	tiers, err := h.eventRepo.Tiers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(err, "failed to list tickets")
	}

	return c.JSON(http.StatusOK, tiers)
}

func (h handler) ListResaleListings(c echo.Context) error {
	listings, err := h.eventRepo.ResaleListings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(err, "failed to list resale tickets")
	}

	return c.JSON(http.StatusOK, listings)
}

func (h handler) ListReviews(c echo.Context) error {
	reviews, err := h.eventRepo.Reviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(err, "failed to list reviews")
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h handler) GetInsights(c echo.Context) error {
	ctx := c.Request().Context()
	eventID := c.Param("id")

	if _, err := h.eventRepo.Get(ctx, eventID); err != nil {
		return storeError(err, "failed to get event")
	}

	return c.JSON(http.StatusOK, h.insights.Get(ctx, eventID))
}

func (h handler) CreateEvent(c echo.Context) error {
	var request createEventRequest
	if err := c.Bind(&request); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  "failed to parse request",
			Internal: fmt.Errorf("failed to bind request: %w", err),
		}
	}

	newEvent := entity.NewEvent{
		Title:       request.Title,
		Description: request.Description,
		Date:        request.Date,
		Location:    request.Location,
		Category:    request.Category,
	}
	for _, t := range request.Tickets {
		newEvent.Tiers = append(newEvent.Tiers, entity.NewTicketTier{
			Name:     t.Name,
			Quantity: t.Quantity,
			Price:    t.Price,
		})
	}

	ctx := c.Request().Context()

	created, err := h.eventRepo.Create(ctx, newEvent)
	if err != nil {
		return storeError(fmt.Errorf("creating event: %w", err), "failed to create event")
	}

	e := event.NewEventCreated(idempotencyKey(c), created)
	if err := h.publisher.Publish(ctx, e); err != nil {
		log.FromContext(ctx).WithError(err).Error("Failed to publish event created")
	}

	return c.JSON(http.StatusCreated, created)
}

func idempotencyKey(c echo.Context) string {
	if key := c.Request().Header.Get(headerKeyIdempotencyKey); key != "" {
		return key
	}
	return uuid.NewString()
}
