//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/inquiry"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/clock"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"
	commandsmock "github.com/nivekneved/travellounge-sub002/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InquiryCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockInquiry *commandsmock.MockInquiryRepository
	mockCatalog *commandsmock.MockCatalogRepository
	mockFinder  *commandsmock.MockInquiryFinder
	clock       *clock.FixedClock
	inquiries   commands.InquiryCommands
}

func (s *InquiryCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockInquiry = commandsmock.NewMockInquiryRepository(s.mockCtrl)
	s.mockCatalog = commandsmock.NewMockCatalogRepository(s.mockCtrl)
	s.mockFinder = commandsmock.NewMockInquiryFinder(s.mockCtrl)
	s.clock = clock.NewFixedClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	s.inquiries = commands.NewInquiryCommands(s.mockInquiry, s.mockCatalog, s.mockFinder, s.clock)
}

func (s *InquiryCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInquiryCommandsSuite(t *testing.T) {
	suite.Run(t, new(InquiryCommandsTestSuite))
}

func (s *InquiryCommandsTestSuite) validParams(entryID uuid.UUID) commands.SubmitInquiryParams {
	checkIn := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)
	return commands.SubmitInquiryParams{
		EntryID:    entryID,
		GuestName:  "Anita Ramgoolam",
		GuestEmail: "anita@example.com",
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		PartySize:  2,
	}
}

func (s *InquiryCommandsTestSuite) TestSubmit() {
	entryID := uuid.New()
	snapshot := &commands.EntrySnapshot{ID: entryID, Name: "Paradise Cove Resort", Category: "Luxury Resort"}

	s.Run("success with stay dates", func() {
		s.mockCatalog.EXPECT().
			FindSnapshot(gomock.Any(), entryID).
			Return(snapshot, nil)

		var created *inquiry.Inquiry
		s.mockInquiry.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inq *inquiry.Inquiry) error {
				created = inq
				return nil
			})

		id, err := s.inquiries.Submit(context.Background(), s.validParams(entryID))
		s.Require().NoError(err)
		s.Assert().NotEqual(uuid.Nil, id)
		s.Require().NotNil(created)
		s.Assert().Equal(id, created.ID())
		s.Require().NotNil(created.Stay())
		s.Assert().Equal(3, created.Stay().Nights())
		s.Assert().Equal(inquiry.StatusPending, created.Status())
		s.Assert().Equal(s.clock.Now(), created.CreatedAt())
	})

	s.Run("invalid stay dates are recorded as undated", func() {
		s.mockCatalog.EXPECT().
			FindSnapshot(gomock.Any(), entryID).
			Return(snapshot, nil)

		var created *inquiry.Inquiry
		s.mockInquiry.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inq *inquiry.Inquiry) error {
				created = inq
				return nil
			})

		params := s.validParams(entryID)
		params.CheckIn, params.CheckOut = params.CheckOut, params.CheckIn

		_, err := s.inquiries.Submit(context.Background(), params)
		s.Require().NoError(err)
		s.Require().NotNil(created)
		s.Assert().Nil(created.Stay())
	})

	s.Run("unknown entry", func() {
		s.mockCatalog.EXPECT().
			FindSnapshot(gomock.Any(), entryID).
			Return(nil, nil)

		_, err := s.inquiries.Submit(context.Background(), s.validParams(entryID))
		s.Require().ErrorIs(err, commands.ErrEntryNotFound)
	})

	s.Run("invalid guest data", func() {
		s.mockCatalog.EXPECT().
			FindSnapshot(gomock.Any(), entryID).
			Return(snapshot, nil)

		params := s.validParams(entryID)
		params.GuestEmail = "no-at-sign"

		_, err := s.inquiries.Submit(context.Background(), params)
		s.Require().ErrorIs(err, commands.ErrInvalidInquiry)
	})
}

func (s *InquiryCommandsTestSuite) TestUpdateStatus() {
	id := uuid.New()

	s.Run("moves through workflow", func() {
		s.mockFinder.EXPECT().
			Exists(gomock.Any(), id).
			Return(true, nil)
		s.mockInquiry.EXPECT().
			UpdateStatus(gomock.Any(), id, inquiry.StatusContacted, s.clock.Now()).
			Return(nil)

		s.Require().NoError(s.inquiries.UpdateStatus(context.Background(), id, "contacted"))
	})

	s.Run("rejects unknown status before touching storage", func() {
		err := s.inquiries.UpdateStatus(context.Background(), id, "archived")
		s.Require().ErrorIs(err, commands.ErrInvalidStatus)
	})

	s.Run("unknown inquiry", func() {
		s.mockFinder.EXPECT().
			Exists(gomock.Any(), id).
			Return(false, nil)

		err := s.inquiries.UpdateStatus(context.Background(), id, "confirmed")
		s.Require().ErrorIs(err, commands.ErrInquiryNotFound)
	})
}
