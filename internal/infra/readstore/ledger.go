package readstore

import (
	"context"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/availability"
	"github.com/nivekneved/travellounge-sub002/internal/infra"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LedgerReadStore struct {
	pool *pgxpool.Pool
}

func NewLedgerReadStore(pool *pgxpool.Pool) *LedgerReadStore {
	return &LedgerReadStore{pool: pool}
}

// FindForStay fetches every ledger row for the given resources over
// [checkIn, checkOut) in one query. The check-out day is excluded: that night
// is not consumed by the stay.
func (s *LedgerReadStore) FindForStay(ctx context.Context, resourceIDs []uuid.UUID, checkIn, checkOut time.Time) ([]availability.LedgerRow, error) {
	ids := make([]string, len(resourceIDs))
	for i, id := range resourceIDs {
		ids[i] = id.String()
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("resource_id::text", "day", "blocked", "units_left").
		From("daily_ledger").
		Where(squirrel.Eq{"resource_id": ids}).
		Where(squirrel.GtOrEq{"day": checkIn}).
		Where(squirrel.Lt{"day": checkOut}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build ledger query", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch ledger rows", err)
	}
	defer rows.Close()

	var result []availability.LedgerRow
	for rows.Next() {
		var (
			idText    string
			day       time.Time
			blocked   bool
			unitsLeft pgtype.Int4
		)
		if err := rows.Scan(&idText, &day, &blocked, &unitsLeft); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger row", err)
		}

		resourceID, err := uuid.Parse(idText)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed resource id in ledger row", err)
		}

		result = append(result, availability.LedgerRow{
			ResourceID: resourceID,
			Day:        day,
			Blocked:    blocked,
			UnitsLeft:  pgconv.Int32PtrFromPgtype(unitsLeft),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ledger rows", err)
	}

	return result, nil
}
