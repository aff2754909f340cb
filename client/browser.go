package client

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"properties_service/domain"
)

// PropertiesPerPage is the window increment for progressive
// disclosure of the filtered result set.
const PropertiesPerPage = 6

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Filters are the locally applied filter fields, kept as the raw
// strings a filter bar would hold. An empty field imposes no
// constraint.
type Filters struct {
	Name     string
	Address  string
	MinPrice string
	MaxPrice string
}

// Browser owns the client-side fetch lifecycle over the properties
// API: idle -> loading -> ready or failed, with a new fetch always
// re-entering loading. On top of the fetched set it re-applies a local
// filter and exposes a growing visible window.
//
// Overlapping fetches are not cancelled; whichever response arrives
// last overwrites the state. That matches the web client this was
// lifted from and is an accepted race, not a queue.
type Browser struct {
	mu           sync.Mutex
	client       *Client
	state        State
	properties   []domain.PropertyResponse
	filtered     []domain.PropertyResponse
	selected     *domain.PropertyResponse
	filters      Filters
	visibleCount int
	errMessage   string
}

func NewBrowser(client *Client) *Browser {
	return &Browser{
		client:       client,
		state:        StateIdle,
		visibleCount: PropertiesPerPage,
	}
}

// Fetch loads the full server-filterable result set and recomputes the
// local view. On failure only the error message changes: previously
// fetched data and the window position stay as they were.
func (browser *Browser) Fetch(ctx context.Context, filters ServerFilters) {
	browser.mu.Lock()
	browser.state = StateLoading
	browser.errMessage = ""
	browser.mu.Unlock()

	properties, err := browser.client.GetProperties(ctx, filters)

	browser.mu.Lock()
	defer browser.mu.Unlock()
	if err != nil {
		browser.state = StateFailed
		browser.errMessage = err.Error()
		return
	}
	browser.state = StateReady
	browser.properties = properties
	browser.refilterLocked()
}

// FetchByID loads a single listing into the selected slot through the
// same loading transitions.
func (browser *Browser) FetchByID(ctx context.Context, id string) {
	browser.mu.Lock()
	browser.state = StateLoading
	browser.errMessage = ""
	browser.mu.Unlock()

	property, err := browser.client.GetProperty(ctx, id)

	browser.mu.Lock()
	defer browser.mu.Unlock()
	if err != nil {
		browser.state = StateFailed
		browser.errMessage = err.Error()
		return
	}
	browser.state = StateReady
	browser.selected = property
}

// SetFilters replaces the local filter fields, resets the visible
// window to the first page and recomputes the filtered view. No store
// round trip happens here.
func (browser *Browser) SetFilters(filters Filters) {
	browser.mu.Lock()
	defer browser.mu.Unlock()

	browser.filters = filters
	browser.visibleCount = PropertiesPerPage
	browser.refilterLocked()
}

func (browser *Browser) ClearFilters() {
	browser.SetFilters(Filters{})
}

// LoadMore advances the visible window by one page.
func (browser *Browser) LoadMore() {
	browser.mu.Lock()
	defer browser.mu.Unlock()

	browser.visibleCount += PropertiesPerPage
}

// Visible returns the current window over the filtered results.
func (browser *Browser) Visible() []domain.PropertyResponse {
	browser.mu.Lock()
	defer browser.mu.Unlock()

	end := browser.visibleCount
	if end > len(browser.filtered) {
		end = len(browser.filtered)
	}
	visible := make([]domain.PropertyResponse, end)
	copy(visible, browser.filtered[:end])
	return visible
}

func (browser *Browser) HasMore() bool {
	browser.mu.Lock()
	defer browser.mu.Unlock()

	return browser.visibleCount < len(browser.filtered)
}

func (browser *Browser) State() State {
	browser.mu.Lock()
	defer browser.mu.Unlock()

	return browser.state
}

func (browser *Browser) Err() string {
	browser.mu.Lock()
	defer browser.mu.Unlock()

	return browser.errMessage
}

func (browser *Browser) Selected() *domain.PropertyResponse {
	browser.mu.Lock()
	defer browser.mu.Unlock()

	return browser.selected
}

func (browser *Browser) refilterLocked() {
	filtered := make([]domain.PropertyResponse, 0, len(browser.properties))
	for _, property := range browser.properties {
		if matchesLocal(browser.filters, property) {
			filtered = append(filtered, property)
		}
	}
	browser.filtered = filtered
}

// matchesLocal mirrors the web client's filter bar: substring matches
// on name and address, price bounds against the sale price only. The
// server-side filter accepts either price axis; the narrower local
// check is kept as-is until the product owners rule on the mismatch.
func matchesLocal(filters Filters, property domain.PropertyResponse) bool {
	if filters.Name != "" &&
		!strings.Contains(strings.ToLower(property.Name), strings.ToLower(filters.Name)) {
		return false
	}
	if filters.Address != "" &&
		!strings.Contains(strings.ToLower(property.Address), strings.ToLower(filters.Address)) {
		return false
	}
	if filters.MinPrice != "" {
		min, err := strconv.ParseFloat(filters.MinPrice, 64)
		if err != nil || property.SalePrice == nil || *property.SalePrice < min {
			return false
		}
	}
	if filters.MaxPrice != "" {
		max, err := strconv.ParseFloat(filters.MaxPrice, 64)
		if err != nil || property.SalePrice == nil || *property.SalePrice > max {
			return false
		}
	}
	return true
}
