package http

import (
	"errors"
	"fmt"
	"net/http"

	"campustix/advisory"
	"campustix/entity"
	"campustix/event"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	analysisUnavailableMessage = "Could not get resale analysis. Please try again later."

	defaultCurrentDemand = "High demand due to limited tickets and popular headliners."
	venueDetailsTemplate = "The event is at %s, a venue with a capacity of 5,000."
)

type resaleAnalysisRequest struct {
	EventDescription string   `json:"eventDescription"`
	OriginalPrice    *float64 `json:"originalPrice"`
	ResalePrice      *float64 `json:"resalePrice"`
	CurrentDemand    string   `json:"currentDemand"`
	VenueDetails     string   `json:"venueDetails"`
}

type eventResaleAnalysisRequest struct {
	ResalePrice *float64 `json:"resale_price"`
}

type resaleAnalysisResponse struct {
	Analysis        entity.AdvisoryResult `json:"analysis"`
	FairPrice       string                `json:"fair_price"`
	PotentialProfit string                `json:"potential_profit"`
	// ProfitDirection is "profit" or "loss".
	ProfitDirection string `json:"profit_direction"`
}

func (h handler) AnalyzeResale(c echo.Context) error {
	var request resaleAnalysisRequest
	if err := c.Bind(&request); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  "failed to parse request",
			Internal: fmt.Errorf("failed to bind request: %w", err),
		}
	}

	if request.OriginalPrice == nil {
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: "originalPrice is required"}
	}
	if request.ResalePrice == nil {
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: "resalePrice is required"}
	}

	return h.analyze(c, "", entity.AdvisoryRequest{
		EventDescription: request.EventDescription,
		OriginalPrice:    *request.OriginalPrice,
		ResalePrice:      *request.ResalePrice,
		CurrentDemand:    request.CurrentDemand,
		VenueDetails:     request.VenueDetails,
	})
}

// AnalyzeEventResale prices a resale ticket for a catalog event; only the resale price comes from the caller.
func (h handler) AnalyzeEventResale(c echo.Context) error {
	var request eventResaleAnalysisRequest
	if err := c.Bind(&request); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  "failed to parse request",
			Internal: fmt.Errorf("failed to bind request: %w", err),
		}
	}

	if request.ResalePrice == nil {
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: "resale_price is required"}
	}

	e, err := h.eventRepo.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(err, "failed to get event")
	}

	return h.analyze(c, e.ID, entity.AdvisoryRequest{
		EventDescription: e.Description,
		OriginalPrice:    e.PriceRange.Min.InexactFloat64(),
		ResalePrice:      *request.ResalePrice,
		CurrentDemand:    defaultCurrentDemand,
		VenueDetails:     fmt.Sprintf(venueDetailsTemplate, e.Location),
	})
}

func (h handler) analyze(c echo.Context, eventID string, req entity.AdvisoryRequest) error {
	ctx := c.Request().Context()
	logger := log.FromContext(ctx).WithField("event_id", eventID)

	result, err := h.advisor.Advise(ctx, req)
	if err != nil {
		var validationErr *advisory.ValidationError
		if errors.As(err, &validationErr) {
			return &echo.HTTPError{
				Code:     http.StatusBadRequest,
				Message:  validationErr.Error(),
				Internal: err,
			}
		}

		failed := event.NewResaleAnalysisFailed(idempotencyKey(c), eventID, err.Error())
		if pubErr := h.publisher.Publish(ctx, failed); pubErr != nil {
			logger.WithError(pubErr).Error("Failed to publish resale analysis failed")
		}

		return &echo.HTTPError{
			Code:     http.StatusBadGateway,
			Message:  analysisUnavailableMessage,
			Internal: fmt.Errorf("analysing resale: %w", err),
		}
	}

	completed := event.NewResaleAnalysisCompleted(idempotencyKey(c), eventID, req, result)
	if err := h.publisher.Publish(ctx, completed); err != nil {
		logger.WithError(err).Error("Failed to publish resale analysis completed")
	}

	return c.JSON(http.StatusOK, newResaleAnalysisResponse(result))
}

func newResaleAnalysisResponse(result entity.AdvisoryResult) resaleAnalysisResponse {
	direction := "profit"
	if result.PotentialProfit < 0 {
		direction = "loss"
	}

	return resaleAnalysisResponse{
		Analysis:        result,
		FairPrice:       formatUSD(decimal.NewFromFloat(result.FairPriceEstimate)),
		PotentialProfit: formatUSD(decimal.NewFromFloat(result.PotentialProfit)),
		ProfitDirection: direction,
	}
}
