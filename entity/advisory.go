package entity

type AdvisoryRequest struct {
	EventDescription string  `json:"eventDescription"`
	OriginalPrice    float64 `json:"originalPrice"`
	ResalePrice      float64 `json:"resalePrice"`
	CurrentDemand    string  `json:"currentDemand"`
	VenueDetails     string  `json:"venueDetails"`
}

type AdvisoryResult struct {
	FairPriceEstimate float64 `json:"fairPriceEstimate"`
	// PotentialProfit is whatever the model reports; it is not derived from the other fields.
	PotentialProfit float64 `json:"potentialProfit"`
	RiskAssessment  string  `json:"riskAssessment"`
	MarketSentiment string  `json:"marketSentiment"`
}
