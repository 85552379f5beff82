package repository

import (
	"context"

	"github.com/nivekneved/travellounge-sub002/internal/infra"
	"github.com/nivekneved/travellounge-sub002/internal/infra/notify"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const upsertLedgerSQL = `
	INSERT INTO daily_ledger (resource_id, day, blocked, units_left, price_cents)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (resource_id, day)
	DO UPDATE SET blocked = EXCLUDED.blocked,
	              units_left = EXCLUDED.units_left,
	              price_cents = EXCLUDED.price_cents,
	              updated_at = now()
`

// UpsertRange writes all rows in one transaction and emits a single
// ledger-change notification with it, so storefront clients refresh once per
// admin save rather than once per day written.
func (r *LedgerRepository) UpsertRange(ctx context.Context, upserts []commands.LedgerUpsert) error {
	if len(upserts) == 0 {
		return nil
	}

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, u := range upserts {
			batch.Queue(upsertLedgerSQL, u.ResourceID, u.Day, u.Blocked, u.UnitsLeft, u.PriceCents)
		}
		batch.Queue("SELECT pg_notify($1, $2)", notify.LedgerChannel, upserts[0].ResourceID.String())

		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert ledger rows", err)
	}
	return nil
}
