package availability

import (
	"time"

	"github.com/google/uuid"
)

// LedgerRow is one per-resource, per-date availability record. UnitsLeft nil
// means the count was never specified for that day, which does not block the
// day on its own.
type LedgerRow struct {
	ResourceID uuid.UUID
	Day        time.Time
	Blocked    bool
	UnitsLeft  *int32
}

// Candidate pairs a catalog entry with the bookable resources it owns.
type Candidate struct {
	EntryID     uuid.UUID
	ResourceIDs []uuid.UUID
}

// ResourceIDSet flattens the candidates' resources into one batch key set so
// the ledger can be fetched in a single query instead of one per entry.
func ResourceIDSet(candidates []Candidate) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, c := range candidates {
		for _, id := range c.ResourceIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// Resolve returns the IDs of entries with at least one resource available for
// every night of the stay, in candidate order.
//
// A resource qualifies only when the ledger holds an explicit row for each
// required night, none blocked, and each row's unit count absent or positive.
// A missing night makes the resource unavailable: overstating availability
// costs the admin a false-positive inquiry to untangle, understating it only
// hides a listing. Entries with no resources at all cannot be evaluated and
// are excluded for the same reason.
func Resolve(candidates []Candidate, rows []LedgerRow, nights int) []uuid.UUID {
	open := openResources(rows, nights)

	var available []uuid.UUID
	for _, c := range candidates {
		for _, id := range c.ResourceIDs {
			if open[id] {
				available = append(available, c.EntryID)
				break
			}
		}
	}
	return available
}

type resourceTally struct {
	nights  int
	blocked bool
	soldOut bool
}

func openResources(rows []LedgerRow, nights int) map[uuid.UUID]bool {
	tallies := make(map[uuid.UUID]*resourceTally)
	for _, row := range rows {
		t := tallies[row.ResourceID]
		if t == nil {
			t = &resourceTally{}
			tallies[row.ResourceID] = t
		}
		t.nights++
		if row.Blocked {
			t.blocked = true
		}
		if row.UnitsLeft != nil && *row.UnitsLeft <= 0 {
			t.soldOut = true
		}
	}

	open := make(map[uuid.UUID]bool, len(tallies))
	for id, t := range tallies {
		open[id] = t.nights == nights && !t.blocked && !t.soldOut
	}
	return open
}
