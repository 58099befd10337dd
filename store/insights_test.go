package store_test

import (
	"context"
	"testing"

	"campustix/entity"
	"campustix/event"
	"campustix/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightsRepo(t *testing.T) {
	ctx := context.Background()
	r := store.NewInsightsRepo()

	req := entity.AdvisoryRequest{EventDescription: "Concert", OriginalPrice: 25, ResalePrice: 40, CurrentDemand: "High", VenueDetails: "Stadium"}

	first := event.NewResaleAnalysisCompleted("key-1", "event-1", req, entity.AdvisoryResult{FairPriceEstimate: 30})
	second := event.NewResaleAnalysisCompleted("key-2", "event-1", req, entity.AdvisoryResult{FairPriceEstimate: 35})

	require.NoError(t, r.OnResaleAnalysisCompleted(ctx, &first))
	require.NoError(t, r.OnResaleAnalysisCompleted(ctx, &second))
	// redelivery
	require.NoError(t, r.OnResaleAnalysisCompleted(ctx, &second))

	failed := event.NewResaleAnalysisFailed("key-3", "event-1", "provider timeout")
	require.NoError(t, r.OnResaleAnalysisFailed(ctx, &failed))

	purchased := event.NewTicketPurchased("key-4", entity.Purchase{
		UserID: store.DemoUserID,
		Ticket: entity.NftTicket{ID: "nft-x", EventID: "event-1", TicketType: "VIP Pass"},
		Price:  decimal.NewFromInt(75),
	})
	require.NoError(t, r.OnTicketPurchased(ctx, &purchased))
	require.NoError(t, r.OnTicketPurchased(ctx, &purchased))

	insights := r.Get(ctx, "event-1")
	assert.Equal(t, "event-1", insights.EventID)
	assert.Equal(t, 2, insights.AnalysesCompleted)
	assert.Equal(t, 1, insights.AnalysesFailed)
	assert.Equal(t, 1, insights.TicketsSold)
	assert.True(t, insights.LastFairPriceEstimate.Equal(decimal.NewFromInt(35)), insights.LastFairPriceEstimate.String())
	assert.True(t, insights.AverageFairPriceEstimate.Equal(decimal.RequireFromString("32.5")), insights.AverageFairPriceEstimate.String())
}

func TestInsightsRepo_unknown_event(t *testing.T) {
	r := store.NewInsightsRepo()

	insights := r.Get(context.Background(), "event-2")
	assert.Equal(t, "event-2", insights.EventID)
	assert.Zero(t, insights.AnalysesCompleted)
}

func TestInsightsRepo_ignores_analyses_without_event(t *testing.T) {
	ctx := context.Background()
	r := store.NewInsightsRepo()

	e := event.NewResaleAnalysisCompleted("key-1", "", entity.AdvisoryRequest{}, entity.AdvisoryResult{FairPriceEstimate: 30})
	require.NoError(t, r.OnResaleAnalysisCompleted(ctx, &e))

	assert.Zero(t, r.Get(ctx, "").AnalysesCompleted)
}
