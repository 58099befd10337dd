package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"campustix/entity"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

// TextAdvisor sends a prompt to a text generation provider and returns its reply,
// constrained to shape when the provider supports it.
type TextAdvisor interface {
	Advise(ctx context.Context, prompt string, shape OutputShape) (json.RawMessage, error)
}

type Service struct {
	advisor TextAdvisor
	shape   OutputShape
}

func NewService(advisor TextAdvisor) *Service {
	return &Service{
		advisor: advisor,
		shape:   ResultShape(),
	}
}

func (s *Service) Advise(ctx context.Context, req entity.AdvisoryRequest) (entity.AdvisoryResult, error) {
	if err := Validate(req); err != nil {
		return entity.AdvisoryResult{}, err
	}

	logger := log.FromContext(ctx)
	start := time.Now()

	raw, err := s.advisor.Advise(ctx, RenderPrompt(req), s.shape)
	if err != nil {
		logger.WithError(err).Warn("Resale advisor call failed")
		return entity.AdvisoryResult{}, &AdvisoryError{Err: fmt.Errorf("calling provider: %w", err)}
	}

	result, err := parseResult(raw)
	if err != nil {
		logger.WithError(err).Warn("Resale advisor returned a nonconformant reply")
		return entity.AdvisoryResult{}, &AdvisoryError{Err: err}
	}

	logger.WithField("latency_ms", time.Since(start).Milliseconds()).Info("Resale analysis complete")

	return result, nil
}

func Validate(req entity.AdvisoryRequest) error {
	texts := []struct {
		field string
		value string
	}{
		{"eventDescription", req.EventDescription},
		{"currentDemand", req.CurrentDemand},
		{"venueDetails", req.VenueDetails},
	}
	for _, t := range texts {
		if strings.TrimSpace(t.value) == "" {
			return &ValidationError{Field: t.field, Reason: "is required"}
		}
	}

	if !isFinite(req.OriginalPrice) {
		return &ValidationError{Field: "originalPrice", Reason: "must be a finite number"}
	}
	// Free events have a face value of zero.
	if req.OriginalPrice < 0 {
		return &ValidationError{Field: "originalPrice", Reason: "must not be negative"}
	}

	if !isFinite(req.ResalePrice) {
		return &ValidationError{Field: "resalePrice", Reason: "must be a finite number"}
	}
	if req.ResalePrice <= 0 {
		return &ValidationError{Field: "resalePrice", Reason: "must be greater than 0"}
	}

	return nil
}

// reply mirrors entity.AdvisoryResult with pointers so missing fields can be told apart from zero values.
type reply struct {
	FairPriceEstimate *float64 `json:"fairPriceEstimate"`
	PotentialProfit   *float64 `json:"potentialProfit"`
	RiskAssessment    *string  `json:"riskAssessment"`
	MarketSentiment   *string  `json:"marketSentiment"`
}

func parseResult(raw json.RawMessage) (entity.AdvisoryResult, error) {
	obj, err := extractObject(raw)
	if err != nil {
		return entity.AdvisoryResult{}, err
	}

	var r reply
	if err := json.Unmarshal(obj, &r); err != nil {
		return entity.AdvisoryResult{}, fmt.Errorf("decoding reply: %w", err)
	}

	switch {
	case r.FairPriceEstimate == nil:
		return entity.AdvisoryResult{}, errors.New("reply is missing fairPriceEstimate")
	case r.PotentialProfit == nil:
		return entity.AdvisoryResult{}, errors.New("reply is missing potentialProfit")
	case r.RiskAssessment == nil || strings.TrimSpace(*r.RiskAssessment) == "":
		return entity.AdvisoryResult{}, errors.New("reply is missing riskAssessment")
	case r.MarketSentiment == nil || strings.TrimSpace(*r.MarketSentiment) == "":
		return entity.AdvisoryResult{}, errors.New("reply is missing marketSentiment")
	}

	if *r.FairPriceEstimate < 0 {
		return entity.AdvisoryResult{}, fmt.Errorf("reply has a negative fairPriceEstimate: %v", *r.FairPriceEstimate)
	}

	return entity.AdvisoryResult{
		FairPriceEstimate: *r.FairPriceEstimate,
		PotentialProfit:   *r.PotentialProfit,
		RiskAssessment:    strings.TrimSpace(*r.RiskAssessment),
		MarketSentiment:   strings.TrimSpace(*r.MarketSentiment),
	}, nil
}

// extractObject returns the JSON object in a reply. Providers without schema-constrained
// decoding tend to wrap it in code fences or prose.
func extractObject(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)

	// Some providers return the object encoded as a JSON string.
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			trimmed = bytes.TrimSpace([]byte(s))
		}
	}

	if json.Valid(trimmed) {
		if len(trimmed) > 0 && trimmed[0] == '{' {
			return trimmed, nil
		}
		return nil, errors.New("reply is not a JSON object")
	}

	// The first '{' that starts a complete object wins. Braces in the surrounding
	// prose fail to decode and are skipped.
	for offset := 0; offset < len(trimmed); offset++ {
		if trimmed[offset] != '{' {
			continue
		}
		var obj json.RawMessage
		if err := json.NewDecoder(bytes.NewReader(trimmed[offset:])).Decode(&obj); err == nil {
			return obj, nil
		}
	}

	return nil, errors.New("reply does not contain a JSON object")
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
