//go:build e2e

package inquiry_test

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

const (
	submitURL = "/api/inquiries"
	adminURL  = "/api/admin/inquiries"
)

type InquirySuite struct {
	e2e.SharedSuite
}

func TestInquirySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(InquirySuite))
}

func (s *InquirySuite) submitBody(entryID uuid.UUID) request.SubmitInquiryRequest {
	checkIn := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 5)
	return request.SubmitInquiryRequest{
		EntryID:    entryID,
		GuestName:  "Anita Ramgoolam",
		GuestEmail: "anita@example.com",
		GuestPhone: "+230 5123 4567",
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		PartySize:  2,
		Message:    "Looking for a sea-view room for our anniversary.",
	}
}

// =============================================================================
// TestSubmitInquiry - public storefront submission
// =============================================================================

func (s *InquirySuite) TestSubmitInquiry() {
	s.Run("Normal case: Guest inquiry is accepted and stored as pending", func() {
		t := s.T()
		entryID := dbtest.CreateTestEntry(t, s.DB, "Paradise Cove Resort", "Luxury Resort", 4_500_00)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL, s.submitBody(entryID), "")

		var created response.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEqual(t, uuid.Nil, created.ID)

		var status string
		err := s.DB.QueryRow(t.Context(),
			"SELECT status FROM inquiries WHERE id = $1", created.ID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "pending", status)
	})

	s.Run("Error case: Unknown entry returns 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL, s.submitBody(uuid.New()), "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Entry not found")
	})

	s.Run("Error case: Missing guest name fails binding", func() {
		t := s.T()
		entryID := dbtest.CreateTestEntry(t, s.DB, "Paradise Cove Resort", "Luxury Resort", 4_500_00)

		body := s.submitBody(entryID)
		body.GuestName = ""
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("Error case: Zero party size fails binding", func() {
		t := s.T()
		entryID := dbtest.CreateTestEntry(t, s.DB, "Paradise Cove Resort", "Luxury Resort", 4_500_00)

		body := s.submitBody(entryID)
		body.PartySize = 0
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("Normal case: Half-open date range is stored undated", func() {
		t := s.T()
		entryID := dbtest.CreateTestEntry(t, s.DB, "Paradise Cove Resort", "Luxury Resort", 4_500_00)

		body := s.submitBody(entryID)
		body.CheckOut = nil
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL, body, "")

		var created response.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		var checkIn *time.Time
		err := s.DB.QueryRow(t.Context(),
			"SELECT check_in FROM inquiries WHERE id = $1", created.ID).Scan(&checkIn)
		require.NoError(t, err)
		require.Nil(t, checkIn)
	})
}

// =============================================================================
// TestInquiryTriage - admin list / get / status workflow
// =============================================================================

func (s *InquirySuite) TestInquiryTriage() {
	s.Run("Normal case: List, get and status update round-trip", func() {
		t := s.T()
		entryID := dbtest.CreateTestEntry(t, s.DB, "Indigo Bay Catamaran", "Catamaran Cruise", 2_100_00)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL, s.submitBody(entryID), "")
		var created response.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "triage-editor@travellounge.test", string(staff.RoleEditor))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"?status=pending", nil, token)
		var listed []response.InquiryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, created.ID, listed[0].ID)
		require.Equal(t, "Indigo Bay Catamaran", listed[0].EntryName)

		detailURL := fmt.Sprintf("%s/%s", adminURL, created.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, detailURL+"/status",
			request.UpdateInquiryStatusRequest{Status: "contacted"}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, token)
		var got response.InquiryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "contacted", got.Status)

		// the pending filter no longer matches
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"?status=pending", nil, token)
		var pending []response.InquiryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
		require.Empty(t, pending)
	})

	s.Run("Error case: Unknown status label is rejected", func() {
		t := s.T()
		entryID := dbtest.CreateTestEntry(t, s.DB, "Indigo Bay Catamaran", "Catamaran Cruise", 2_100_00)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL, s.submitBody(entryID), "")
		var created response.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "triage-editor@travellounge.test", string(staff.RoleEditor))
		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s/status", adminURL, created.ID),
			request.UpdateInquiryStatusRequest{Status: "archived"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid inquiry status")
	})

	s.Run("Error case: Unknown inquiry returns 404", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "triage-editor@travellounge.test", string(staff.RoleEditor))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", adminURL, uuid.New()), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Inquiry not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s/status", adminURL, uuid.New()),
			request.UpdateInquiryStatusRequest{Status: "contacted"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Inquiry not found")
	})

	s.Run("Error case: Viewer role cannot update status", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "triage-viewer@travellounge.test", string(staff.RoleViewer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s/status", adminURL, uuid.New()),
			request.UpdateInquiryStatusRequest{Status: "contacted"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("Error case: Missing token is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}
