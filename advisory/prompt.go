package advisory

import (
	"fmt"
	"strconv"

	"campustix/entity"
)

const promptTemplate = `You are an expert in ticket resale market analysis. Given the details about an event and its resale ticket, provide a comprehensive analysis.

Event Description: %s
Original Price: %s
Resale Price: %s
Current Demand: %s
Venue Details: %s

Analyze the provided information and estimate a fair price for the resale ticket, potential profit/loss, risks, and market sentiment.

Reply with a single JSON object with these fields:
fairPriceEstimate: number, the estimated fair resale price, never negative
potentialProfit: number, the profit (positive) or loss (negative) if the ticket is bought and resold
riskAssessment: string, the risks involved in buying the resale ticket
marketSentiment: string, the current market sentiment towards the event and its tickets`

// RenderPrompt renders the same string for the same request.
func RenderPrompt(req entity.AdvisoryRequest) string {
	return fmt.Sprintf(promptTemplate,
		req.EventDescription,
		formatNumber(req.OriginalPrice),
		formatNumber(req.ResalePrice),
		req.CurrentDemand,
		req.VenueDetails,
	)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// OutputShape is a JSON schema describing the structured reply expected from the provider.
type OutputShape struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required"`
	AdditionalProperties bool                `json:"additionalProperties"`
}

type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ResultShape describes entity.AdvisoryResult.
func ResultShape() OutputShape {
	return OutputShape{
		Type: "object",
		Properties: map[string]Property{
			"fairPriceEstimate": {
				Type:        "number",
				Description: "An estimated fair price for the resale ticket based on market conditions.",
			},
			"potentialProfit": {
				Type:        "number",
				Description: "The potential profit or loss if the ticket is bought and resold.",
			},
			"riskAssessment": {
				Type:        "string",
				Description: "An assessment of the risks involved in buying the resale ticket.",
			},
			"marketSentiment": {
				Type:        "string",
				Description: "An overview of the current market sentiment towards the event and tickets.",
			},
		},
		Required:             []string{"fairPriceEstimate", "potentialProfit", "riskAssessment", "marketSentiment"},
		AdditionalProperties: false,
	}
}
