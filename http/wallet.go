package http

import (
	"fmt"
	"net/http"

	"campustix/entity"
	"campustix/event"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type walletResponse struct {
	entity.User
	CreditsValueUSD string `json:"credits_value_usd"`
}

type purchaseRequest struct {
	EventID string `json:"event_id"`
	TierID  string `json:"tier_id"`
}

func (h handler) GetWallet(c echo.Context) error {
	user, err := h.walletRepo.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(err, "failed to get wallet")
	}

	return c.JSON(http.StatusOK, walletResponse{
		User:            user,
		CreditsValueUSD: formatUSD(user.CampusCredits.Mul(entity.CreditValueUSD)),
	})
}

func (h handler) PurchaseTicket(c echo.Context) error {
	var request purchaseRequest
	if err := c.Bind(&request); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  "failed to parse request",
			Internal: fmt.Errorf("failed to bind request: %w", err),
		}
	}

	if request.EventID == "" || request.TierID == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "event_id and tier_id are required",
		}
	}

	ctx := c.Request().Context()

	purchase, err := h.walletRepo.Purchase(ctx, c.Param("id"), request.EventID, request.TierID)
	if err != nil {
		return storeError(fmt.Errorf("purchasing ticket: %w", err), "failed to purchase ticket")
	}

	// The purchase is already settled; a lost event only leaves the insights behind.
	e := event.NewTicketPurchased(idempotencyKey(c), purchase)
	if err := h.publisher.Publish(ctx, e); err != nil {
		log.FromContext(ctx).WithError(err).Error("Failed to publish ticket purchased")
	}

	return c.JSON(http.StatusCreated, purchase)
}

func formatUSD(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
