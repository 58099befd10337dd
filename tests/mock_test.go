package tests_test

import (
	"context"
	"encoding/json"
	"sync"

	"campustix/advisory"
)

type MockTextAdvisor struct {
	lock    sync.Mutex
	Prompts []string
	Reply   string
}

func (m *MockTextAdvisor) Advise(_ context.Context, prompt string, _ advisory.OutputShape) (json.RawMessage, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	return json.RawMessage(m.Reply), nil
}

func (m *MockTextAdvisor) Calls() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.Prompts)
}
