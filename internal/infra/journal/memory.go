// Package journal provides append-only event journal adapters. Appends
// happen under the market aggregate's write lock, so stored order is call
// order for both adapters.
package journal

import (
	"context"
	"sync"

	"rental-market/internal/usecase/shared"
)

type Memory struct {
	mu     sync.RWMutex
	events []shared.Event
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(_ context.Context, ev shared.Event) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ev.Seq = uint64(len(m.events)) + 1
	m.events = append(m.events, ev)
	return ev.Seq, nil
}

func (m *Memory) List(_ context.Context, afterSeq uint64, limit int) ([]shared.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if afterSeq >= uint64(len(m.events)) {
		return []shared.Event{}, nil
	}
	tail := m.events[afterSeq:]
	if limit > 0 && limit < len(tail) {
		tail = tail[:limit]
	}
	out := make([]shared.Event, len(tail))
	copy(out, tail)
	return out, nil
}
