package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/deppfellow/product-service/internal/model"
)

// MemoryProductStore keeps products in process memory. It backs local runs
// and tests; records are lost on restart.
type MemoryProductStore struct {
	mu    sync.RWMutex
	items map[string]model.Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{items: make(map[string]model.Product)}
}

func (s *MemoryProductStore) Get(_ context.Context, id string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p.WithID(id), nil
}

func (s *MemoryProductStore) Put(_ context.Context, p model.Product) error {
	id := p.ID()
	if id == "" {
		return errMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy so later mutation by the caller cannot leak in.
	s.items[id] = p.WithID(id)
	return nil
}

func (s *MemoryProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	return nil
}

// Scan returns records ordered by productID.
func (s *MemoryProductStore) Scan(_ context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, 0, len(s.items))
	for id, p := range s.items {
		products = append(products, p.WithID(id))
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ID() < products[j].ID()
	})
	return products, nil
}
