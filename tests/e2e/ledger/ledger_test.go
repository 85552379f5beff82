//go:build e2e

package ledger_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/staff"
	"github.com/nivekneved/travellounge-sub002/internal/handler/dto/request"
	"github.com/nivekneved/travellounge-sub002/internal/handler/dto/response"
	"github.com/nivekneved/travellounge-sub002/tests/common/authtest"
	"github.com/nivekneved/travellounge-sub002/tests/common/dbtest"
	"github.com/nivekneved/travellounge-sub002/tests/common/httptest"
	"github.com/nivekneved/travellounge-sub002/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const ledgerURL = "/api/admin/ledger"

type LedgerSuite struct {
	e2e.SharedSuite
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) seedEntryWithResource(t *testing.T) (uuid.UUID, uuid.UUID) {
	t.Helper()
	entryID := dbtest.CreateTestEntry(t, s.DB, "Le Morne Palace", "Luxury Resort", 4_500_00)
	resourceID := dbtest.CreateTestResource(t, s.DB, entryID, "Deluxe Sea View", 12)
	return entryID, resourceID
}

func upsertBody(resourceID uuid.UUID, from time.Time, days int) request.UpsertLedgerRequest {
	unitsLeft := int32(4)
	priceCents := int64(5_200_00)
	return request.UpsertLedgerRequest{
		ResourceID: resourceID,
		From:       from,
		To:         from.AddDate(0, 0, days),
		Blocked:    false,
		UnitsLeft:  &unitsLeft,
		PriceCents: &priceCents,
	}
}

// =============================================================================
// TestUpsertLedgerRange - admin availability maintenance
// =============================================================================

func (s *LedgerSuite) TestUpsertLedgerRange() {
	from := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)

	s.Run("Normal case: Editor writes a range and search starts seeing the entry", func() {
		t := s.T()

		_, resourceID := s.seedEntryWithResource(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "editor@travellounge.test", string(staff.RoleEditor))

		dateQuery := fmt.Sprintf("/api/search?check_in=%s&check_out=%s",
			from.Format("2006-01-02"), from.AddDate(0, 0, 3).Format("2006-01-02"))

		// Before the ledger exists the stay cannot be satisfied.
		before := httptest.PerformRequest(t, s.Router, http.MethodGet, dateQuery, nil, "")
		var beforeRes response.SearchResponse
		httptest.AssertSuccessResponse(t, before, http.StatusOK, &beforeRes)
		require.Empty(t, beforeRes.Entries)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, ledgerURL, upsertBody(resourceID, from, 3), token)

		var res response.LedgerUpsertResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 3, res.DaysWritten)

		after := httptest.PerformRequest(t, s.Router, http.MethodGet, dateQuery, nil, "")
		var afterRes response.SearchResponse
		httptest.AssertSuccessResponse(t, after, http.StatusOK, &afterRes)
		require.Equal(t, 1, afterRes.Total)
		require.Equal(t, "Le Morne Palace", afterRes.Entries[0].Name)
	})

	s.Run("Normal case: Resubmitting the same range overwrites instead of duplicating", func() {
		t := s.T()

		_, resourceID := s.seedEntryWithResource(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "editor@travellounge.test", string(staff.RoleEditor))

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPut, ledgerURL, upsertBody(resourceID, from, 3), token)
		require.Equal(t, http.StatusOK, w1.Code, w1.Body.String())

		blockedBody := upsertBody(resourceID, from, 3)
		blockedBody.Blocked = true
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPut, ledgerURL, blockedBody, token)
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())

		var count int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM daily_ledger WHERE resource_id = $1", resourceID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 3, count)

		var blocked bool
		err = s.DB.QueryRow(t.Context(),
			"SELECT blocked FROM daily_ledger WHERE resource_id = $1 AND day = $2", resourceID, from).Scan(&blocked)
		require.NoError(t, err)
		require.True(t, blocked, "Second submission must win")
	})

	s.Run("Error case: Inverted range is rejected", func() {
		t := s.T()

		_, resourceID := s.seedEntryWithResource(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "editor@travellounge.test", string(staff.RoleEditor))

		body := upsertBody(resourceID, from, 3)
		body.To = from.AddDate(0, 0, -1)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, ledgerURL, body, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Error case: Unknown resource returns 404", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "editor@travellounge.test", string(staff.RoleEditor))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, ledgerURL, upsertBody(uuid.New(), from, 3), token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: Viewer role cannot write the ledger", func() {
		t := s.T()

		_, resourceID := s.seedEntryWithResource(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "viewer@travellounge.test", string(staff.RoleViewer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, ledgerURL, upsertBody(resourceID, from, 3), token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: Missing token is rejected", func() {
		t := s.T()

		_, resourceID := s.seedEntryWithResource(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, ledgerURL, upsertBody(resourceID, from, 3), "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
