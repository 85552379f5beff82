package readstore

import (
	"context"

	"github.com/nivekneved/travellounge-sub002/internal/infra"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/pgconv"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogReadStore struct {
	pool *pgxpool.Pool
}

func NewCatalogReadStore(pool *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{pool: pool}
}

var entryColumns = []string{
	"e.id::text",
	"e.name",
	"e.description",
	"e.category",
	"e.images",
	"e.base_price_cents",
	"e.currency",
	"e.location",
	"e.created_at",
	"e.updated_at",
	"array_remove(array_agg(r.id::text), NULL) AS resource_ids",
}

// Search composes the storefront catalog query: optional category predicate
// (exact literal set or substring fallback), optional free-text predicate over
// name and description, newest first with id as the tie-break so pagination
// stays reproducible.
func (s *CatalogReadStore) Search(ctx context.Context, filter queries.CatalogFilter) ([]*queries.EntryView, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(entryColumns...).
		From("catalog_entries e").
		LeftJoin("bookable_resources r ON r.entry_id = e.id").
		GroupBy("e.id").
		OrderBy("e.created_at DESC", "e.id DESC")

	if len(filter.CategoryIn) > 0 {
		query = query.Where(squirrel.Eq{"e.category": filter.CategoryIn})
	} else if filter.CategoryLike != "" {
		query = query.Where(squirrel.ILike{"e.category": "%" + filter.CategoryLike + "%"})
	}

	if filter.Term != "" {
		pattern := "%" + filter.Term + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"e.name": pattern},
			squirrel.ILike{"e.description": pattern},
		})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build catalog search query", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search catalog", err)
	}
	defer rows.Close()

	var result []*queries.EntryView
	for rows.Next() {
		view, scanErr := scanEntryView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog entry", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog rows", err)
	}

	return result, nil
}

func (s *CatalogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EntryView, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(entryColumns...).
		From("catalog_entries e").
		LeftJoin("bookable_resources r ON r.entry_id = e.id").
		Where(squirrel.Eq{"e.id": id}).
		GroupBy("e.id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build catalog lookup query", err)
	}

	row := s.pool.QueryRow(ctx, sql, args...)
	view, err := scanEntryView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find catalog entry", err)
	}
	return view, nil
}

func scanEntryView(row pgx.Row) (*queries.EntryView, error) {
	var (
		view        queries.EntryView
		idText      string
		resourceIDs []string
	)
	if err := row.Scan(
		&idText,
		&view.Name,
		&view.Description,
		&view.Category,
		&view.Images,
		&view.BasePriceCents,
		&view.Currency,
		&view.Location,
		&view.CreatedAt,
		&view.UpdatedAt,
		&resourceIDs,
	); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idText)
	if err != nil {
		return nil, err
	}
	view.ID = id

	view.ResourceIDs = make([]uuid.UUID, 0, len(resourceIDs))
	for _, raw := range resourceIDs {
		rid, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		view.ResourceIDs = append(view.ResourceIDs, rid)
	}
	return &view, nil
}
