package queries

import (
	"context"
	"sort"

	"github.com/nivekneved/travellounge-sub002/internal/pkg/categories"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	GetEntry(ctx context.Context, id uuid.UUID) (*EntryView, error)
	ListAll(ctx context.Context) ([]*EntryView, error)
	ListCategories() []string
}

type catalogQueriesImpl struct {
	catalog    CatalogReadStore
	aliases    categories.AliasTable
	maxResults int
}

func NewCatalogQueries(catalog CatalogReadStore, aliases categories.AliasTable, maxResults int) CatalogQueries {
	if maxResults <= 0 {
		maxResults = 200
	}
	return &catalogQueriesImpl{catalog: catalog, aliases: aliases, maxResults: maxResults}
}

func (q *catalogQueriesImpl) GetEntry(ctx context.Context, id uuid.UUID) (*EntryView, error) {
	entry, err := q.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errs.ErrEntryNotFound
	}
	return entry, nil
}

func (q *catalogQueriesImpl) ListAll(ctx context.Context) ([]*EntryView, error) {
	return q.catalog.Search(ctx, CatalogFilter{Limit: q.maxResults})
}

// ListCategories returns the logical filter keys for the storefront's filter
// bar, sorted for a stable UI.
func (q *catalogQueriesImpl) ListCategories() []string {
	keys := make([]string, 0, len(q.aliases))
	for k := range q.aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
