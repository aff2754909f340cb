package domain

import "strings"

// PropertyFilter is the search request: every field is optional and
// every present field narrows the result. Availability is not a field,
// unavailable listings are never returned.
type PropertyFilter struct {
	Name     string
	Address  string
	MinPrice *float64
	MaxPrice *float64
}

// Condition is one predicate over a listing. A filter reduces to the
// conjunction of its conditions so each axis stays testable on its own.
type Condition func(*Property) bool

func (filter PropertyFilter) Conditions() []Condition {
	conditions := []Condition{Available()}
	if filter.Name != "" {
		conditions = append(conditions, NameContains(filter.Name))
	}
	if filter.Address != "" {
		conditions = append(conditions, AddressContains(filter.Address))
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, PriceAtLeast(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, PriceAtMost(*filter.MaxPrice))
	}
	return conditions
}

func (filter PropertyFilter) Matches(property *Property) bool {
	for _, condition := range filter.Conditions() {
		if !condition(property) {
			return false
		}
	}
	return true
}

func Available() Condition {
	return func(property *Property) bool {
		return property.IsAvailable
	}
}

func NameContains(name string) Condition {
	needle := strings.ToLower(name)
	return func(property *Property) bool {
		return strings.Contains(strings.ToLower(property.Name), needle)
	}
}

func AddressContains(address string) Condition {
	needle := strings.ToLower(address)
	return func(property *Property) bool {
		return strings.Contains(strings.ToLower(property.Address), needle)
	}
}

// PriceAtLeast passes when either price axis clears the bound. A
// listing missing a price simply fails the comparison on that axis.
func PriceAtLeast(min float64) Condition {
	return func(property *Property) bool {
		return (property.SalePrice != nil && *property.SalePrice >= min) ||
			(property.RentPrice != nil && *property.RentPrice >= min)
	}
}

// PriceAtMost guards each axis for presence before comparing: a
// missing price must not slip under the upper bound.
func PriceAtMost(max float64) Condition {
	return func(property *Property) bool {
		return (property.SalePrice != nil && *property.SalePrice <= max) ||
			(property.RentPrice != nil && *property.RentPrice <= max)
	}
}
