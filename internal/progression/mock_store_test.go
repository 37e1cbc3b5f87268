package progression

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/event"
)

// MockStore is an in-memory ProgressStore with failure injection
type MockStore struct {
	mu      sync.Mutex
	states  map[string]domain.ProgressionState
	saves   int
	saveErr error
	loadErr error
}

func NewMockStore() *MockStore {
	return &MockStore{states: make(map[string]domain.ProgressionState)}
}

func (m *MockStore) Load(_ context.Context, playerID string) (*domain.ProgressionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	s, ok := m.states[playerID]
	if !ok {
		return nil, domain.ErrSaveNotFound
	}
	c := s.Clone()
	c.HarmonyRate, c.EssenceRate = 0, 0
	return &c, nil
}

func (m *MockStore) Save(_ context.Context, playerID string, state domain.ProgressionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return errors.Join(domain.ErrSaveFailed, m.saveErr)
	}
	m.states[playerID] = state.Clone()
	m.saves++
	return nil
}

func (m *MockStore) Delete(_ context.Context, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, playerID)
	return nil
}

func (m *MockStore) CheckHealth(context.Context) error { return nil }

func (m *MockStore) Put(playerID string, state domain.ProgressionState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[playerID] = state.Clone()
}

func (m *MockStore) Get(playerID string) (domain.ProgressionState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.states[playerID]
	return s, ok
}

func (m *MockStore) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *MockStore) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// recordingBus is a MemoryBus that remembers every published event
type recordingBus struct {
	*event.MemoryBus
	mu     sync.Mutex
	events []event.Event
}

func newRecordingBus() *recordingBus {
	b := &recordingBus{MemoryBus: event.NewMemoryBus()}
	event.SubscribeAll(b.MemoryBus, func(_ context.Context, evt event.Event) error {
		b.mu.Lock()
		b.events = append(b.events, evt)
		b.mu.Unlock()
		return nil
	})
	return b
}

func (b *recordingBus) Types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type
	}
	return out
}

func (b *recordingBus) Events() []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]event.Event(nil), b.events...)
}
