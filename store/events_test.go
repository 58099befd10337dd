package store_test

import (
	"context"
	"testing"
	"time"

	"campustix/entity"
	"campustix/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepo_List(t *testing.T) {
	r := store.NewEventRepo(store.NewSeededMemory(time.Now()))

	events, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, "event-1", events[0].ID)
}

func TestEventRepo_Get(t *testing.T) {
	ctx := context.Background()
	r := store.NewEventRepo(store.NewSeededMemory(time.Now()))

	event, err := r.Get(ctx, "event-3")
	require.NoError(t, err)
	assert.Equal(t, "Senior Art Exhibition", event.Title)
	assert.True(t, event.PriceRange.Min.IsZero())

	_, err = r.Get(ctx, "event-404")
	require.Error(t, err)
	var notFound interface{ NotFound() bool }
	require.ErrorAs(t, err, &notFound)
	assert.True(t, notFound.NotFound())
}

func TestEventRepo_event_details(t *testing.T) {
	ctx := context.Background()
	r := store.NewEventRepo(store.NewSeededMemory(time.Now()))

	tiers, err := r.Tiers(ctx, "event-1")
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, "General Admission", tiers[0].Name)

	listings, err := r.ResaleListings(ctx, "event-1")
	require.NoError(t, err)
	assert.Len(t, listings, 2)

	reviews, err := r.Reviews(ctx, "event-1")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	listings, err = r.ResaleListings(ctx, "event-2")
	require.NoError(t, err)
	assert.Empty(t, listings)

	_, err = r.Tiers(ctx, "event-404")
	assert.Error(t, err)
}

func TestEventRepo_Create(t *testing.T) {
	ctx := context.Background()
	r := store.NewEventRepo(store.NewSeededMemory(time.Now()))

	created, err := r.Create(ctx, entity.NewEvent{
		Title:       "Robotics Showcase",
		Description: "Student robots compete in the atrium.",
		Date:        time.Now().Add(48 * time.Hour),
		Location:    "Engineering Atrium",
		Category:    "Tech",
		Tiers: []entity.NewTicketTier{
			{Name: "Standard", Quantity: 100, Price: decimal.NewFromInt(12)},
			{Name: "Pit Pass", Quantity: 10, Price: decimal.NewFromInt(30)},
			{Name: "Early Bird", Quantity: 20, Price: decimal.RequireFromString("7.5")},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.PriceRange.Min.Equal(decimal.RequireFromString("7.5")), created.PriceRange.Min.String())
	assert.True(t, created.PriceRange.Max.Equal(decimal.NewFromInt(30)), created.PriceRange.Max.String())

	events, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 5)
	assert.Equal(t, created.ID, events[0].ID, "new events are listed first")

	tiers, err := r.Tiers(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, tiers, 3)
}

func TestEventRepo_Create_invalid(t *testing.T) {
	valid := func() entity.NewEvent {
		return entity.NewEvent{
			Title:       "Robotics Showcase",
			Description: "Student robots compete in the atrium.",
			Date:        time.Now().Add(48 * time.Hour),
			Location:    "Engineering Atrium",
			Category:    "Tech",
			Tiers:       []entity.NewTicketTier{{Name: "Standard", Quantity: 100, Price: decimal.NewFromInt(12)}},
		}
	}

	testCases := []struct {
		name   string
		modify func(e *entity.NewEvent)
	}{
		{name: "no title", modify: func(e *entity.NewEvent) { e.Title = " " }},
		{name: "no date", modify: func(e *entity.NewEvent) { e.Date = time.Time{} }},
		{name: "no tiers", modify: func(e *entity.NewEvent) { e.Tiers = nil }},
		{name: "negative price", modify: func(e *entity.NewEvent) { e.Tiers[0].Price = decimal.NewFromInt(-1) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := store.NewEventRepo(store.NewSeededMemory(time.Now()))

			e := valid()
			tc.modify(&e)

			_, err := r.Create(context.Background(), e)
			var invalid interface{ InvalidEvent() bool }
			require.ErrorAs(t, err, &invalid)

			events, err := r.List(context.Background())
			require.NoError(t, err)
			assert.Len(t, events, 4)
		})
	}
}
