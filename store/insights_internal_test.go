package store

import (
	"context"
	"testing"

	"campustix/entity"
	"campustix/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightsRepo_processed_ids_are_bounded(t *testing.T) {
	ctx := context.Background()
	r := newInsightsRepo(2)

	purchased := func(key string) *event.TicketPurchased {
		e := event.NewTicketPurchased(key, entity.Purchase{
			Ticket: entity.NftTicket{EventID: "event-1"},
		})
		return &e
	}

	first := purchased("key-1")
	require.NoError(t, r.OnTicketPurchased(ctx, first))
	require.NoError(t, r.OnTicketPurchased(ctx, first))
	assert.Equal(t, 1, r.Get(ctx, "event-1").TicketsSold)

	for _, key := range []string{"key-2", "key-3"} {
		require.NoError(t, r.OnTicketPurchased(ctx, purchased(key)))
	}

	assert.Len(t, r.processed.ids, 2)
	assert.Len(t, r.processed.order, 2)
	assert.NotContains(t, r.processed.ids, first.Header.ID)
	assert.Equal(t, 3, r.Get(ctx, "event-1").TicketsSold)
}
