package domain

import "context"

// PropertyCache keeps recently served listings for id lookups. A cache
// miss or a cache failure both fall through to the store.
type PropertyCache interface {
	Get(ctx context.Context, id string) (*Property, error)
	Post(ctx context.Context, property *Property) error
}
