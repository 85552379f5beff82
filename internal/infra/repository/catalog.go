package repository

import (
	"context"

	"github.com/nivekneved/travellounge-sub002/internal/domain/catalog"
	"github.com/nivekneved/travellounge-sub002/internal/infra"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/pgconv"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) Create(ctx context.Context, entry *catalog.Entry) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Insert("catalog_entries").
		Columns("id", "name", "description", "category", "images", "base_price_cents", "currency", "location", "created_at", "updated_at").
		Values(
			entry.ID(),
			entry.Name(),
			entry.Description(),
			entry.Category().String(),
			[]string(entry.Images()),
			entry.BasePrice().Cents(),
			entry.BasePrice().Currency(),
			entry.Location().String(),
			entry.CreatedAt(),
			entry.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build entry insert", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to create catalog entry", err)
	}
	return nil
}

func (r *CatalogRepository) Update(ctx context.Context, entry *catalog.Entry) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Update("catalog_entries").
		Set("name", entry.Name()).
		Set("description", entry.Description()).
		Set("category", entry.Category().String()).
		Set("images", []string(entry.Images())).
		Set("base_price_cents", entry.BasePrice().Cents()).
		Set("currency", entry.BasePrice().Currency()).
		Set("location", entry.Location().String()).
		Set("updated_at", entry.UpdatedAt()).
		Where(squirrel.Eq{"id": entry.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build entry update", err)
	}

	ct, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update catalog entry", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("catalog entry not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the entry; bookable resources and their ledger rows go with
// it via ON DELETE CASCADE.
func (r *CatalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM catalog_entries WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete catalog entry", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("catalog entry not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) FindSnapshot(ctx context.Context, id uuid.UUID) (*commands.EntrySnapshot, error) {
	const sql = `SELECT id::text, name, category FROM catalog_entries WHERE id = $1`

	var (
		snapshot commands.EntrySnapshot
		idText   string
	)
	err := r.pool.QueryRow(ctx, sql, id).Scan(&idText, &snapshot.Name, &snapshot.Category)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find entry snapshot", err)
	}

	parsed, err := uuid.Parse(idText)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed entry id", err)
	}
	snapshot.ID = parsed
	return &snapshot, nil
}

func (r *CatalogRepository) AddResource(ctx context.Context, res *catalog.BookableResource) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Insert("bookable_resources").
		Columns("id", "entry_id", "name", "total_units").
		Values(res.ID(), res.EntryID(), res.Name(), res.TotalUnits()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build resource insert", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to add bookable resource", err)
	}
	return nil
}

func (r *CatalogRepository) DeleteResource(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM bookable_resources WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete bookable resource", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("bookable resource not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) FindResourceSnapshot(ctx context.Context, id uuid.UUID) (*commands.ResourceSnapshot, error) {
	const sql = `SELECT id::text, entry_id::text, name, total_units FROM bookable_resources WHERE id = $1`

	var (
		snapshot    commands.ResourceSnapshot
		idText      string
		entryIDText string
	)
	err := r.pool.QueryRow(ctx, sql, id).Scan(&idText, &entryIDText, &snapshot.Name, &snapshot.TotalUnits)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find resource snapshot", err)
	}

	parsedID, err := uuid.Parse(idText)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed resource id", err)
	}
	parsedEntryID, err := uuid.Parse(entryIDText)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed entry id", err)
	}
	snapshot.ID = parsedID
	snapshot.EntryID = parsedEntryID
	return &snapshot, nil
}
