//go:build e2e

package search_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/handler/dto/response"
	"github.com/nivekneved/travellounge-sub002/tests/common/dbtest"
	"github.com/nivekneved/travellounge-sub002/tests/common/httptest"
	"github.com/nivekneved/travellounge-sub002/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const searchURL = "/api/search"

type SearchSuite struct {
	e2e.SharedSuite
}

func TestSearchSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SearchSuite))
}

func (s *SearchSuite) performSearch(t *testing.T, query string) *response.SearchResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, searchURL+query, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.SearchResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return &res
}

func entryNames(res *response.SearchResponse) []string {
	names := make([]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		names = append(names, e.Name)
	}
	return names
}

// =============================================================================
// TestSearchCatalog - filter behavior without dates
// =============================================================================

func (s *SearchSuite) TestSearchCatalog() {
	s.Run("Normal case: No filters return the whole catalog", func() {
		t := s.T()

		dbtest.CreateTestEntry(t, s.DB, "Le Morne Palace", "Luxury Resort", 4_500_00)
		dbtest.CreateTestEntry(t, s.DB, "Lagoon Explorer", "Catamaran Cruise", 180_00)

		res := s.performSearch(t, "")
		require.Equal(t, 2, res.Total)
		require.False(t, res.DateFiltered, "No dates given, availability must not be applied")
		require.ElementsMatch(t, []string{"Le Morne Palace", "Lagoon Explorer"}, entryNames(res))
	})

	s.Run("Normal case: Category alias expands to literal category names", func() {
		t := s.T()

		dbtest.CreateTestEntry(t, s.DB, "Le Morne Palace", "Luxury Resort", 4_500_00)
		dbtest.CreateTestEntry(t, s.DB, "Port Louis City Hotel", "Hotel", 950_00)
		dbtest.CreateTestEntry(t, s.DB, "Lagoon Explorer", "Catamaran Cruise", 180_00)

		res := s.performSearch(t, "?category=hotels")
		require.Equal(t, 2, res.Total)
		require.ElementsMatch(t, []string{"Le Morne Palace", "Port Louis City Hotel"}, entryNames(res))
	})

	s.Run("Normal case: Unaliased category falls back to singularized substring match", func() {
		t := s.T()

		dbtest.CreateTestEntry(t, s.DB, "Tamarin Beach Villa", "Beach Villa", 2_200_00)
		dbtest.CreateTestEntry(t, s.DB, "Port Louis City Hotel", "Hotel", 950_00)

		res := s.performSearch(t, "?category=villas")
		require.Equal(t, 1, res.Total)
		require.Equal(t, "Tamarin Beach Villa", res.Entries[0].Name)
	})

	s.Run("Normal case: Free text term matches name case-insensitively", func() {
		t := s.T()

		dbtest.CreateTestEntry(t, s.DB, "Lagoon Explorer", "Catamaran Cruise", 180_00)
		dbtest.CreateTestEntry(t, s.DB, "Port Louis City Hotel", "Hotel", 950_00)

		res := s.performSearch(t, "?q=lagoon")
		require.Equal(t, 1, res.Total)
		require.Equal(t, "Lagoon Explorer", res.Entries[0].Name)
	})

	s.Run("Normal case: Response carries the full entry shape", func() {
		t := s.T()

		entryID := dbtest.CreateTestEntry(t, s.DB, "Le Morne Palace", "Luxury Resort", 4_500_00)
		resourceID := dbtest.CreateTestResource(t, s.DB, entryID, "Deluxe Sea View", 12)

		res := s.performSearch(t, "?q=morne")
		require.Equal(t, 1, res.Total)

		expected := &response.EntryResponse{
			ID:             entryID,
			Name:           "Le Morne Palace",
			Description:    "Seeded for tests",
			Category:       "Luxury Resort",
			Images:         []string{"https://cdn.example.com/img1.jpg"},
			BasePriceCents: 4_500_00,
			Currency:       "MUR",
			Location:       "Grand Baie",
			ResourceIDs:    []uuid.UUID{resourceID},
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.EntryResponse{}, "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, res.Entries[0], opts...); diff != "" {
			t.Errorf("Entry response mismatch (-want +got):\n%s", diff)
		}
	})
}

// =============================================================================
// TestSearchWithDates - availability filtering over the daily ledger
// =============================================================================

func (s *SearchSuite) TestSearchWithDates() {
	checkIn := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	nights := 3
	dateQuery := fmt.Sprintf("?check_in=%s&check_out=%s",
		checkIn.Format("2006-01-02"), checkIn.AddDate(0, 0, nights).Format("2006-01-02"))

	units := func(n int32) *int32 { return &n }

	s.Run("Normal case: Only entries with a fully open resource survive", func() {
		t := s.T()

		// Fully covered resource, entry stays.
		openID := dbtest.CreateTestEntry(t, s.DB, "Open Resort", "Hotel", 1_000_00)
		openRes := dbtest.CreateTestResource(t, s.DB, openID, "Standard Room", 10)
		dbtest.SeedLedgerDays(t, s.DB, openRes, checkIn, nights, false, units(5))

		// One blocked night in the middle, entry drops.
		blockedID := dbtest.CreateTestEntry(t, s.DB, "Blocked Resort", "Hotel", 1_000_00)
		blockedRes := dbtest.CreateTestResource(t, s.DB, blockedID, "Standard Room", 10)
		dbtest.SeedLedgerDays(t, s.DB, blockedRes, checkIn, nights, false, units(5))
		dbtest.SeedLedgerDays(t, s.DB, blockedRes, checkIn.AddDate(0, 0, 1), 1, true, units(5))

		// Ledger covers only two of the three nights, entry drops.
		partialID := dbtest.CreateTestEntry(t, s.DB, "Partial Resort", "Hotel", 1_000_00)
		partialRes := dbtest.CreateTestResource(t, s.DB, partialID, "Standard Room", 10)
		dbtest.SeedLedgerDays(t, s.DB, partialRes, checkIn, nights-1, false, units(5))

		res := s.performSearch(t, dateQuery)
		require.True(t, res.DateFiltered)
		require.Equal(t, nights, res.Nights)
		require.Equal(t, []string{"Open Resort"}, entryNames(res))
	})

	s.Run("Normal case: A sold-out night excludes the entry", func() {
		t := s.T()

		entryID := dbtest.CreateTestEntry(t, s.DB, "Sold Out Resort", "Hotel", 1_000_00)
		resourceID := dbtest.CreateTestResource(t, s.DB, entryID, "Standard Room", 10)
		dbtest.SeedLedgerDays(t, s.DB, resourceID, checkIn, nights, false, units(5))
		dbtest.SeedLedgerDays(t, s.DB, resourceID, checkIn.AddDate(0, 0, 2), 1, false, units(0))

		res := s.performSearch(t, dateQuery)
		require.True(t, res.DateFiltered)
		require.Empty(t, res.Entries)
	})

	s.Run("Normal case: Null units means unconstrained capacity", func() {
		t := s.T()

		entryID := dbtest.CreateTestEntry(t, s.DB, "Unconstrained Resort", "Hotel", 1_000_00)
		resourceID := dbtest.CreateTestResource(t, s.DB, entryID, "Standard Room", 10)
		dbtest.SeedLedgerDays(t, s.DB, resourceID, checkIn, nights, false, nil)

		res := s.performSearch(t, dateQuery)
		require.Equal(t, []string{"Unconstrained Resort"}, entryNames(res))
	})

	s.Run("Edge case: Entry without any bookable resource is never available", func() {
		t := s.T()

		dbtest.CreateTestEntry(t, s.DB, "Resourceless Listing", "Hotel", 1_000_00)

		res := s.performSearch(t, dateQuery)
		require.True(t, res.DateFiltered)
		require.Empty(t, res.Entries)
	})

	s.Run("Edge case: One open resource is enough even when siblings are blocked", func() {
		t := s.T()

		entryID := dbtest.CreateTestEntry(t, s.DB, "Mixed Resort", "Hotel", 1_000_00)
		blockedRes := dbtest.CreateTestResource(t, s.DB, entryID, "Garden Room", 10)
		dbtest.SeedLedgerDays(t, s.DB, blockedRes, checkIn, nights, true, units(5))
		openRes := dbtest.CreateTestResource(t, s.DB, entryID, "Sea View Room", 10)
		dbtest.SeedLedgerDays(t, s.DB, openRes, checkIn, nights, false, units(2))

		res := s.performSearch(t, dateQuery)
		require.Equal(t, []string{"Mixed Resort"}, entryNames(res))
	})

	s.Run("Error case: Check-out on or before check-in downgrades to an undated search", func() {
		t := s.T()

		dbtest.CreateTestEntry(t, s.DB, "Open Resort", "Hotel", 1_000_00)

		res := s.performSearch(t, fmt.Sprintf("?check_in=%s&check_out=%s",
			checkIn.Format("2006-01-02"), checkIn.Format("2006-01-02")))
		require.False(t, res.DateFiltered, "Invalid range must not filter by availability")
		require.Equal(t, 1, res.Total)
	})
}
