//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestEntry(t *testing.T, db DBLike, name, category string, basePriceCents int64) uuid.UUID {
	t.Helper()

	entryID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO catalog_entries (id, name, description, category, images, base_price_cents, currency, location)
		 VALUES ($1, $2, $3, $4, $5, $6, 'MUR', 'Grand Baie')`,
		entryID, name, "Seeded for tests", category, []string{"https://cdn.example.com/img1.jpg"}, basePriceCents)
	require.NoError(t, err)

	return entryID
}

func CreateTestResource(t *testing.T, db DBLike, entryID uuid.UUID, name string, totalUnits int32) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO bookable_resources (id, entry_id, name, total_units) VALUES ($1, $2, $3, $4)`,
		resourceID, entryID, name, totalUnits)
	require.NoError(t, err)

	return resourceID
}

// SeedLedgerDays writes one ledger row per day for [from, from+days).
func SeedLedgerDays(t *testing.T, db DBLike, resourceID uuid.UUID, from time.Time, days int, blocked bool, unitsLeft *int32) {
	t.Helper()

	ctx := context.Background()
	for i := range days {
		day := from.AddDate(0, 0, i)
		_, err := db.Exec(ctx,
			`INSERT INTO daily_ledger (resource_id, day, blocked, units_left)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (resource_id, day) DO UPDATE SET blocked = $3, units_left = $4, updated_at = now()`,
			resourceID, day, blocked, unitsLeft)
		require.NoError(t, err)
	}
}

func CreateTestStaff(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	ctx := context.Background()

	passwordHash, err := password.HashPassword("password123")
	require.NoError(t, err)

	tag, err := db.Exec(ctx,
		`INSERT INTO staff_accounts (id, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, true)
		 ON CONFLICT (email) DO NOTHING`,
		staffID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM staff_accounts WHERE email = $1", email).Scan(&staffID)
	}

	return staffID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	passwordHash, err := password.HashPassword("password123")
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO staff_accounts (email, password_hash, role, is_active)
		VALUES ('admin@travellounge.test', $1, 'admin', true)
		ON CONFLICT (email) DO NOTHING;
	`, passwordHash)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
