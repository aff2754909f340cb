package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"properties_service/domain"
)

func storedListing(name string, createdAt time.Time) *domain.Property {
	return &domain.Property{
		Name:        name,
		Address:     "Somewhere",
		SalePrice:   price(100),
		IsAvailable: true,
		CreatedAt:   createdAt,
	}
}

func TestInsertAssignsIdentityWhenMissing(t *testing.T) {
	memoryStore := NewPropertyInMemoryStore()

	created, err := memoryStore.Insert(context.Background(), storedListing("A", time.Now()))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	withID := storedListing("B", time.Now())
	withID.ID = "fixed-id"
	created, err = memoryStore.Insert(context.Background(), withID)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", created.ID)
}

func TestGetResolvesAbsentToNotFound(t *testing.T) {
	memoryStore := NewPropertyInMemoryStore()

	_, err := memoryStore.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestSearchOrdersByCreatedAtDescending(t *testing.T) {
	memoryStore := NewPropertyInMemoryStore()
	base := time.Now()

	for _, offset := range []int{2, 0, 1} {
		_, err := memoryStore.Insert(context.Background(),
			storedListing(fmt.Sprintf("listing-%d", offset), base.Add(time.Duration(offset)*time.Hour)))
		require.NoError(t, err)
	}

	results, err := memoryStore.Search(context.Background(), domain.PropertyFilter{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "listing-2", results[0].Name)
	assert.Equal(t, "listing-1", results[1].Name)
	assert.Equal(t, "listing-0", results[2].Name)
}

func TestSearchNeverExceedsTheCap(t *testing.T) {
	memoryStore := NewPropertyInMemoryStore()
	base := time.Now()

	for i := 0; i < domain.SearchLimit+20; i++ {
		_, err := memoryStore.Insert(context.Background(),
			storedListing(fmt.Sprintf("listing-%d", i), base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	results, err := memoryStore.Search(context.Background(), domain.PropertyFilter{})
	require.NoError(t, err)
	assert.Len(t, results, domain.SearchLimit)
	// The cap keeps the most recent listings.
	assert.Equal(t, fmt.Sprintf("listing-%d", domain.SearchLimit+19), results[0].Name)
}

func TestSearchExcludesUnavailableListings(t *testing.T) {
	memoryStore := NewPropertyInMemoryStore()

	hidden := storedListing("Hidden", time.Now())
	hidden.IsAvailable = false
	_, err := memoryStore.Insert(context.Background(), hidden)
	require.NoError(t, err)

	results, err := memoryStore.Search(context.Background(), domain.PropertyFilter{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDeleteAllReportsCount(t *testing.T) {
	memoryStore := NewPropertyInMemoryStore()

	for i := 0; i < 3; i++ {
		_, err := memoryStore.Insert(context.Background(), storedListing(fmt.Sprintf("listing-%d", i), time.Now()))
		require.NoError(t, err)
	}

	count, err := memoryStore.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	results, err := memoryStore.Search(context.Background(), domain.PropertyFilter{})
	require.NoError(t, err)
	assert.Empty(t, results)
}
