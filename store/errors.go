package store

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func (e notFoundError) NotFound() bool {
	return true
}

type invalidEventError struct {
	reason string
}

func (e invalidEventError) Error() string {
	return fmt.Sprintf("invalid event: %s", e.reason)
}

func (e invalidEventError) InvalidEvent() bool {
	return true
}

type soldOutError struct {
	tierID string
}

func (e soldOutError) Error() string {
	return fmt.Sprintf("ticket tier sold out: %s", e.tierID)
}

func (e soldOutError) SoldOut() bool {
	return true
}

type insufficientCreditsError struct {
	creditsAvailable decimal.Decimal
	creditsRequired  decimal.Decimal
}

func (e insufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: credits available %s, credits required %s", e.creditsAvailable, e.creditsRequired)
}

func (e insufficientCreditsError) InsufficientCredits() bool {
	return true
}
