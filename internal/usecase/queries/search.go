package queries

import (
	"context"
	"strings"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/availability"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/categories"

	"github.com/google/uuid"
)

// SearchRequest is the ephemeral, validated form of the storefront's filter
// state. A half-open date range (only one of check-in/check-out) is not a
// valid date filter and is ignored, matching how the UI submits partial input.
type SearchRequest struct {
	Category string
	Term     string
	CheckIn  *time.Time
	CheckOut *time.Time
}

// Stay returns the validated stay range, or nil when the date filter is
// absent or invalid. Invalid input downgrades silently: partial dates are
// routine in interactive search, not an error condition.
func (r SearchRequest) Stay() *availability.Stay {
	if r.CheckIn == nil || r.CheckOut == nil {
		return nil
	}
	stay, err := availability.NewStay(*r.CheckIn, *r.CheckOut)
	if err != nil {
		return nil
	}
	return &stay
}

type SearchResult struct {
	Entries []*EntryView `json:"entries"`
	// DateFiltered reports whether availability filtering was applied.
	DateFiltered bool `json:"date_filtered"`
	Nights       int  `json:"nights,omitempty"`
}

// CatalogFilter is the declarative shape handed to the catalog store. Exactly
// one of CategoryIn / CategoryLike is set when a category filter applies.
type CatalogFilter struct {
	CategoryIn   []string
	CategoryLike string
	Term         string
	Limit        int
}

type CatalogReadStore interface {
	Search(ctx context.Context, filter CatalogFilter) ([]*EntryView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*EntryView, error)
}

type LedgerReadStore interface {
	// FindForStay fetches all ledger rows for the resource-id set over
	// [checkIn, checkOut) in one batched query.
	FindForStay(ctx context.Context, resourceIDs []uuid.UUID, checkIn, checkOut time.Time) ([]availability.LedgerRow, error)
}

type SearchQueries interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
}

type searchQueriesImpl struct {
	catalog    CatalogReadStore
	ledger     LedgerReadStore
	aliases    categories.AliasTable
	maxResults int
}

func NewSearchQueries(catalog CatalogReadStore, ledger LedgerReadStore, aliases categories.AliasTable, maxResults int) SearchQueries {
	if maxResults <= 0 {
		maxResults = 200
	}
	return &searchQueriesImpl{
		catalog:    catalog,
		ledger:     ledger,
		aliases:    aliases,
		maxResults: maxResults,
	}
}

// Search runs the two-phase pipeline: fetch matching catalog entries, then,
// when a valid stay is requested, fetch the ledger for exactly those entries'
// resources and keep the entries with at least one fully available resource.
// Both phases are pure reads; abandoning the call mid-flight is side-effect
// free, and any store failure aborts the whole search.
func (q *searchQueriesImpl) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	entries, err := q.catalog.Search(ctx, q.composeFilter(req))
	if err != nil {
		return nil, err
	}

	stay := req.Stay()
	if stay == nil {
		return &SearchResult{Entries: entries}, nil
	}

	filtered, err := q.resolveAvailability(ctx, entries, *stay)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Entries:      filtered,
		DateFiltered: true,
		Nights:       stay.Nights(),
	}, nil
}

func (q *searchQueriesImpl) composeFilter(req SearchRequest) CatalogFilter {
	filter := CatalogFilter{
		Term:  strings.TrimSpace(req.Term),
		Limit: q.maxResults,
	}

	category := strings.ToLower(strings.TrimSpace(req.Category))
	if category == "" || category == categories.All {
		return filter
	}

	if literals, ok := q.aliases.Expand(category); ok {
		filter.CategoryIn = literals
	} else {
		filter.CategoryLike = categories.Singularize(category)
	}
	return filter
}

func (q *searchQueriesImpl) resolveAvailability(ctx context.Context, entries []*EntryView, stay availability.Stay) ([]*EntryView, error) {
	if len(entries) == 0 {
		return entries, nil
	}

	candidates := make([]availability.Candidate, len(entries))
	for i, e := range entries {
		candidates[i] = availability.Candidate{EntryID: e.ID, ResourceIDs: e.ResourceIDs}
	}

	resourceIDs := availability.ResourceIDSet(candidates)
	var rows []availability.LedgerRow
	if len(resourceIDs) > 0 {
		var err error
		rows, err = q.ledger.FindForStay(ctx, resourceIDs, stay.CheckIn(), stay.CheckOut())
		if err != nil {
			return nil, err
		}
	}

	availableIDs := availability.Resolve(candidates, rows, stay.Nights())
	availableSet := make(map[uuid.UUID]struct{}, len(availableIDs))
	for _, id := range availableIDs {
		availableSet[id] = struct{}{}
	}

	filtered := make([]*EntryView, 0, len(availableIDs))
	for _, e := range entries {
		if _, ok := availableSet[e.ID]; ok {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
