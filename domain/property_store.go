package domain

import (
	"context"
	"errors"
)

// SearchLimit caps every search result regardless of how many
// listings match.
const SearchLimit = 100

var ErrPropertyNotFound = errors.New("property not found")

// PropertyStore is the persistence collaborator. Search returns
// matches ordered by createdAt descending, capped at SearchLimit.
// Insert assigns an identity when the record carries none. DeleteAll
// is a seeding utility, it is not part of the HTTP contract.
type PropertyStore interface {
	Search(ctx context.Context, filter PropertyFilter) ([]*Property, error)
	Get(ctx context.Context, id string) (*Property, error)
	Insert(ctx context.Context, property *Property) (*Property, error)
	DeleteAll(ctx context.Context) (int64, error)
}
