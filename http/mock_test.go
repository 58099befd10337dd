package http_test

import (
	"context"
	"sync"

	"campustix/entity"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

type MockPublisher struct {
	lock   sync.Mutex
	Events []any
	Err    error
}

func (m *MockPublisher) Publish(_ context.Context, event any) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Events = append(m.Events, event)

	return nil
}

func (m *MockPublisher) Published() []any {
	m.lock.Lock()
	defer m.lock.Unlock()
	return append([]any(nil), m.Events...)
}

type MockAdvisor struct {
	lock     sync.Mutex
	Requests []entity.AdvisoryRequest
	// CorrelationIDs seen in the request context, one per call.
	CorrelationIDs []string

	Result entity.AdvisoryResult
	Err    error
}

func (m *MockAdvisor) Advise(ctx context.Context, req entity.AdvisoryRequest) (entity.AdvisoryResult, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.Requests = append(m.Requests, req)
	m.CorrelationIDs = append(m.CorrelationIDs, log.CorrelationIDFromContext(ctx))
	if m.Err != nil {
		return entity.AdvisoryResult{}, m.Err
	}

	return m.Result, nil
}
