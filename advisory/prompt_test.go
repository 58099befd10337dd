package advisory_test

import (
	"encoding/json"
	"testing"

	"campustix/advisory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPrompt(t *testing.T) {
	req := concertRequest()

	prompt := advisory.RenderPrompt(req)

	assert.Equal(t, prompt, advisory.RenderPrompt(req))
	assert.Contains(t, prompt, "Event Description: Concert\n")
	assert.Contains(t, prompt, "Original Price: 25\n")
	assert.Contains(t, prompt, "Resale Price: 40\n")
	assert.Contains(t, prompt, "Current Demand: High\n")
	assert.Contains(t, prompt, "Venue Details: Stadium, 5000 cap\n")
}

func TestRenderPrompt_fractional_prices(t *testing.T) {
	req := concertRequest()
	req.OriginalPrice = 25.5
	req.ResalePrice = 39.99

	prompt := advisory.RenderPrompt(req)

	assert.Contains(t, prompt, "Original Price: 25.5\n")
	assert.Contains(t, prompt, "Resale Price: 39.99\n")
}

func TestRenderPrompt_differs_per_request(t *testing.T) {
	other := concertRequest()
	other.ResalePrice = 41

	assert.NotEqual(t, advisory.RenderPrompt(concertRequest()), advisory.RenderPrompt(other))
}

func TestResultShape(t *testing.T) {
	payload, err := json.Marshal(advisory.ResultShape())
	require.NoError(t, err)

	var schema struct {
		Type       string `json:"type"`
		Properties map[string]struct {
			Type string `json:"type"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal(payload, &schema))

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, "number", schema.Properties["fairPriceEstimate"].Type)
	assert.Equal(t, "number", schema.Properties["potentialProfit"].Type)
	assert.Equal(t, "string", schema.Properties["riskAssessment"].Type)
	assert.Equal(t, "string", schema.Properties["marketSentiment"].Type)
	assert.ElementsMatch(t, []string{"fairPriceEstimate", "potentialProfit", "riskAssessment", "marketSentiment"}, schema.Required)
}
