package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/charadas/charadas-api/internal/charada"
)

// MemoryRepo is an in-memory repository used by tests and by the
// STORE_DRIVER=memory mode. Stored values are copied on the way in and out.
type MemoryRepo struct {
	mu      sync.RWMutex
	store   map[string]charada.Charada
	counter *int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]charada.Charada)}
}

func (m *MemoryRepo) List(ctx context.Context) ([]*charada.Charada, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*charada.Charada, 0, len(m.store))
	for _, c := range m.store {
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryRepo) Get(ctx context.Context, key string) (*charada.Charada, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.store[key]; ok {
		return &c, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) Insert(ctx context.Context, c *charada.Charada) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[c.Key]; ok {
		return ErrDuplicate
	}
	m.store[c.Key] = *c
	return nil
}

func (m *MemoryRepo) Update(ctx context.Context, key, pergunta, resposta string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.store[key]
	if !ok {
		return ErrNotFound
	}
	c.Pergunta = pergunta
	c.Resposta = resposta
	m.store[key] = c
	return nil
}

func (m *MemoryRepo) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[key]; !ok {
		return ErrNotFound
	}
	delete(m.store, key)
	return nil
}

func (m *MemoryRepo) NextID(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var next int64 = 1
	if m.counter != nil {
		next = *m.counter + 1
	}
	m.counter = &next
	return next, nil
}

func (m *MemoryRepo) CurrentID(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.counter == nil {
		return 0, nil
	}
	return *m.counter, nil
}

func (m *MemoryRepo) RaiseCounter(ctx context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counter != nil && *m.counter >= id {
		return *m.counter, nil
	}
	m.counter = &id
	return id, nil
}

func (m *MemoryRepo) Ping(ctx context.Context) error { return nil }
