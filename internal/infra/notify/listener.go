package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerChannel is the Postgres NOTIFY channel the ledger repository writes
// to; payload is the resource id that changed.
const LedgerChannel = "ledger_changed"

// LedgerFeed relays Postgres LISTEN notifications to in-process subscribers
// (the SSE endpoint). The search core itself never touches this: a missed
// event only delays a storefront refresh, and re-running a search is
// idempotent.
type LedgerFeed struct {
	pool *pgxpool.Pool

	mu   sync.Mutex
	subs map[chan string]struct{}
}

func NewLedgerFeed(pool *pgxpool.Pool) *LedgerFeed {
	return &LedgerFeed{
		pool: pool,
		subs: make(map[chan string]struct{}),
	}
}

// Subscribe returns a channel of changed resource ids and an unsubscribe
// function. Slow subscribers drop events rather than block the relay.
func (f *LedgerFeed) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 16)

	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		delete(f.subs, ch)
		f.mu.Unlock()
	}
	return ch, cancel
}

// Run blocks on a dedicated connection until ctx is canceled, reconnecting
// with a flat backoff when the connection drops.
func (f *LedgerFeed) Run(ctx context.Context) {
	for {
		if err := f.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("ledger feed connection lost, reconnecting", "error", err.Error())
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}

func (f *LedgerFeed) listen(ctx context.Context) error {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+LedgerChannel); err != nil {
		return err
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		f.broadcast(notification.Payload)
	}
}

func (f *LedgerFeed) broadcast(payload string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch := range f.subs {
		select {
		case ch <- payload:
		default:
			// subscriber is not draining; drop
		}
	}
}
