//go:build unit

package availability_test

import (
	"testing"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/availability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func units(n int32) *int32 {
	return &n
}

// rows builds one ledger row per night starting at the given day.
func rowsFor(resourceID uuid.UUID, start time.Time, nights int, mutate func(i int, r *availability.LedgerRow)) []availability.LedgerRow {
	out := make([]availability.LedgerRow, 0, nights)
	for i := 0; i < nights; i++ {
		row := availability.LedgerRow{
			ResourceID: resourceID,
			Day:        start.AddDate(0, 0, i),
		}
		if mutate != nil {
			mutate(i, &row)
		}
		out = append(out, row)
	}
	return out
}

func TestResourceIDSet(t *testing.T) {
	shared := uuid.New()
	a := uuid.New()
	b := uuid.New()

	ids := availability.ResourceIDSet([]availability.Candidate{
		{EntryID: uuid.New(), ResourceIDs: []uuid.UUID{a, shared}},
		{EntryID: uuid.New(), ResourceIDs: []uuid.UUID{shared, b}},
		{EntryID: uuid.New()},
	})

	assert.Equal(t, []uuid.UUID{a, shared, b}, ids, "deduped, first-seen order")
}

func TestResolve(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	const nights = 3

	t.Run("fully covered resource keeps its entry", func(t *testing.T) {
		entryID := uuid.New()
		resourceID := uuid.New()

		got := availability.Resolve(
			[]availability.Candidate{{EntryID: entryID, ResourceIDs: []uuid.UUID{resourceID}}},
			rowsFor(resourceID, start, nights, nil),
			nights,
		)

		assert.Equal(t, []uuid.UUID{entryID}, got)
	})

	t.Run("one missing night drops the resource", func(t *testing.T) {
		entryID := uuid.New()
		resourceID := uuid.New()

		got := availability.Resolve(
			[]availability.Candidate{{EntryID: entryID, ResourceIDs: []uuid.UUID{resourceID}}},
			rowsFor(resourceID, start, nights-1, nil),
			nights,
		)

		assert.Empty(t, got, "partial ledger coverage must not count as available")
	})

	t.Run("single blocked night drops the resource", func(t *testing.T) {
		entryID := uuid.New()
		resourceID := uuid.New()

		got := availability.Resolve(
			[]availability.Candidate{{EntryID: entryID, ResourceIDs: []uuid.UUID{resourceID}}},
			rowsFor(resourceID, start, nights, func(i int, r *availability.LedgerRow) {
				if i == 1 {
					r.Blocked = true
				}
			}),
			nights,
		)

		assert.Empty(t, got)
	})

	t.Run("zero units on any night drops the resource", func(t *testing.T) {
		entryID := uuid.New()
		resourceID := uuid.New()

		got := availability.Resolve(
			[]availability.Candidate{{EntryID: entryID, ResourceIDs: []uuid.UUID{resourceID}}},
			rowsFor(resourceID, start, nights, func(i int, r *availability.LedgerRow) {
				if i == nights-1 {
					r.UnitsLeft = units(0)
				} else {
					r.UnitsLeft = units(5)
				}
			}),
			nights,
		)

		assert.Empty(t, got)
	})

	t.Run("nil units does not block a night", func(t *testing.T) {
		entryID := uuid.New()
		resourceID := uuid.New()

		got := availability.Resolve(
			[]availability.Candidate{{EntryID: entryID, ResourceIDs: []uuid.UUID{resourceID}}},
			rowsFor(resourceID, start, nights, func(i int, r *availability.LedgerRow) {
				if i == 0 {
					r.UnitsLeft = units(2)
				}
			}),
			nights,
		)

		assert.Equal(t, []uuid.UUID{entryID}, got)
	})

	t.Run("one open resource is enough for the entry", func(t *testing.T) {
		entryID := uuid.New()
		blockedRes := uuid.New()
		openRes := uuid.New()

		rows := rowsFor(blockedRes, start, nights, func(_ int, r *availability.LedgerRow) {
			r.Blocked = true
		})
		rows = append(rows, rowsFor(openRes, start, nights, nil)...)

		got := availability.Resolve(
			[]availability.Candidate{{EntryID: entryID, ResourceIDs: []uuid.UUID{blockedRes, openRes}}},
			rows,
			nights,
		)

		assert.Equal(t, []uuid.UUID{entryID}, got)
	})

	t.Run("entry without resources is never available", func(t *testing.T) {
		got := availability.Resolve(
			[]availability.Candidate{{EntryID: uuid.New()}},
			nil,
			nights,
		)

		assert.Empty(t, got)
	})

	t.Run("candidate order is preserved", func(t *testing.T) {
		first := uuid.New()
		second := uuid.New()
		third := uuid.New()
		res1 := uuid.New()
		res2 := uuid.New()
		res3 := uuid.New()

		rows := rowsFor(res1, start, nights, nil)
		rows = append(rows, rowsFor(res2, start, 1, nil)...) // short coverage
		rows = append(rows, rowsFor(res3, start, nights, nil)...)

		got := availability.Resolve(
			[]availability.Candidate{
				{EntryID: first, ResourceIDs: []uuid.UUID{res1}},
				{EntryID: second, ResourceIDs: []uuid.UUID{res2}},
				{EntryID: third, ResourceIDs: []uuid.UUID{res3}},
			},
			rows,
			nights,
		)

		assert.Equal(t, []uuid.UUID{first, third}, got)
	})

	t.Run("resolve is repeatable on the same inputs", func(t *testing.T) {
		entryID := uuid.New()
		resourceID := uuid.New()
		candidates := []availability.Candidate{{EntryID: entryID, ResourceIDs: []uuid.UUID{resourceID}}}
		rows := rowsFor(resourceID, start, nights, nil)

		first := availability.Resolve(candidates, rows, nights)
		second := availability.Resolve(candidates, rows, nights)

		assert.Equal(t, first, second)
	})

	t.Run("single night stay", func(t *testing.T) {
		entryID := uuid.New()
		resourceID := uuid.New()

		got := availability.Resolve(
			[]availability.Candidate{{EntryID: entryID, ResourceIDs: []uuid.UUID{resourceID}}},
			rowsFor(resourceID, start, 1, nil),
			1,
		)

		assert.Equal(t, []uuid.UUID{entryID}, got)
	})

	t.Run("extra rows beyond the required nights disqualify", func(t *testing.T) {
		// More rows than nights means the fetch window and the stay disagree;
		// the strict count comparison treats that as unavailable.
		entryID := uuid.New()
		resourceID := uuid.New()

		got := availability.Resolve(
			[]availability.Candidate{{EntryID: entryID, ResourceIDs: []uuid.UUID{resourceID}}},
			rowsFor(resourceID, start, nights+1, nil),
			nights,
		)

		assert.Empty(t, got)
	})
}
