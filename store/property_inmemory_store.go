package store

import (
	"context"
	"sort"
	"sync"

	"properties_service/domain"
)

// PropertyInMemoryStore keeps listings in a slice behind a lock. It
// honors the same contract as the Mongo store (createdAt descending,
// capped result set) and backs the test suites and local runs without
// a database.
type PropertyInMemoryStore struct {
	mu         sync.RWMutex
	properties []*domain.Property
}

func NewPropertyInMemoryStore() *PropertyInMemoryStore {
	return &PropertyInMemoryStore{}
}

func (store *PropertyInMemoryStore) Search(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	matches := make([]*domain.Property, 0)
	for _, property := range store.properties {
		if filter.Matches(property) {
			matches = append(matches, property)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	if len(matches) > domain.SearchLimit {
		matches = matches[:domain.SearchLimit]
	}
	return matches, nil
}

func (store *PropertyInMemoryStore) Get(ctx context.Context, id string) (*domain.Property, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, property := range store.properties {
		if property.ID == id {
			return property, nil
		}
	}
	return nil, domain.ErrPropertyNotFound
}

func (store *PropertyInMemoryStore) Insert(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if property.ID == "" {
		property.ID = domain.NewPropertyID()
	}
	store.properties = append(store.properties, property)
	return property, nil
}

func (store *PropertyInMemoryStore) DeleteAll(ctx context.Context) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	count := int64(len(store.properties))
	store.properties = nil
	return count, nil
}
