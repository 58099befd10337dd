package store

import (
	"context"
	"sync"

	"campustix/entity"
	"campustix/event"

	"github.com/shopspring/decimal"
)

type insightsRecord struct {
	insights    entity.MarketInsights
	estimateSum decimal.Decimal
}

// processedLimit bounds how many event ids are remembered for deduplication.
// Redeliveries arrive shortly after the original, so old ids are dropped first.
const processedLimit = 10_000

// processedIDs is a FIFO set of handled event ids.
type processedIDs struct {
	ids   map[string]struct{}
	order []string
	limit int
}

// InsightsRepo is a read model of resale analyses and sales per event, built from events on the bus.
type InsightsRepo struct {
	lock      *sync.RWMutex
	insights  map[string]*insightsRecord
	processed *processedIDs
}

func NewInsightsRepo() InsightsRepo {
	return newInsightsRepo(processedLimit)
}

func newInsightsRepo(limit int) InsightsRepo {
	return InsightsRepo{
		lock:     &sync.RWMutex{},
		insights: make(map[string]*insightsRecord),
		processed: &processedIDs{
			ids:   make(map[string]struct{}),
			limit: limit,
		},
	}
}

func (r InsightsRepo) Get(_ context.Context, eventID string) entity.MarketInsights {
	r.lock.RLock()
	defer r.lock.RUnlock()

	rec, ok := r.insights[eventID]
	if !ok {
		return entity.MarketInsights{EventID: eventID}
	}

	return rec.insights
}

func (r InsightsRepo) OnResaleAnalysisCompleted(_ context.Context, e *event.ResaleAnalysisCompleted) error {
	if e.EventID == "" {
		return nil
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if r.alreadyProcessed(e.Header.ID) {
		return nil
	}

	rec := r.record(e.EventID)
	estimate := decimal.NewFromFloat(e.Result.FairPriceEstimate)

	rec.insights.AnalysesCompleted++
	rec.estimateSum = rec.estimateSum.Add(estimate)
	rec.insights.LastFairPriceEstimate = estimate.Round(2)
	rec.insights.AverageFairPriceEstimate = rec.estimateSum.
		Div(decimal.NewFromInt(int64(rec.insights.AnalysesCompleted))).
		Round(2)

	return nil
}

func (r InsightsRepo) OnResaleAnalysisFailed(_ context.Context, e *event.ResaleAnalysisFailed) error {
	if e.EventID == "" {
		return nil
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if r.alreadyProcessed(e.Header.ID) {
		return nil
	}

	r.record(e.EventID).insights.AnalysesFailed++

	return nil
}

func (r InsightsRepo) OnTicketPurchased(_ context.Context, e *event.TicketPurchased) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.alreadyProcessed(e.Header.ID) {
		return nil
	}

	r.record(e.EventID).insights.TicketsSold++

	return nil
}

// alreadyProcessed marks id as seen; redelivered events are ignored.
func (r InsightsRepo) alreadyProcessed(id string) bool {
	p := r.processed
	if _, ok := p.ids[id]; ok {
		return true
	}

	p.ids[id] = struct{}{}
	p.order = append(p.order, id)
	if len(p.order) > p.limit {
		delete(p.ids, p.order[0])
		p.order = p.order[1:]
	}

	return false
}

func (r InsightsRepo) record(eventID string) *insightsRecord {
	rec, ok := r.insights[eventID]
	if !ok {
		rec = &insightsRecord{
			insights: entity.MarketInsights{
				EventID:                  eventID,
				LastFairPriceEstimate:    decimal.Zero,
				AverageFairPriceEstimate: decimal.Zero,
			},
			estimateSum: decimal.Zero,
		}
		r.insights[eventID] = rec
	}
	return rec
}
