package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// storeError maps repository errors to HTTP errors by the behaviour they expose.
func storeError(err error, message string) *echo.HTTPError {
	var notFound interface{ NotFound() bool }
	if errors.As(err, &notFound) && notFound.NotFound() {
		return &echo.HTTPError{
			Code:     http.StatusNotFound,
			Message:  err.Error(),
			Internal: err,
		}
	}

	var invalidEvent interface{ InvalidEvent() bool }
	if errors.As(err, &invalidEvent) && invalidEvent.InvalidEvent() {
		return &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  err.Error(),
			Internal: err,
		}
	}

	var soldOut interface{ SoldOut() bool }
	if errors.As(err, &soldOut) && soldOut.SoldOut() {
		return &echo.HTTPError{
			Code:     http.StatusConflict,
			Message:  "This ticket type is sold out.",
			Internal: err,
		}
	}

	var insufficient interface{ InsufficientCredits() bool }
	if errors.As(err, &insufficient) && insufficient.InsufficientCredits() {
		return &echo.HTTPError{
			Code:     http.StatusConflict,
			Message:  "You don't have enough Campus Credits to buy this ticket.",
			Internal: err,
		}
	}

	return &echo.HTTPError{
		Code:     http.StatusInternalServerError,
		Message:  message,
		Internal: err,
	}
}
