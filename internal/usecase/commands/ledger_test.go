//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"
	commandsmock "github.com/nivekneved/travellounge-sub002/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockCatalog *commandsmock.MockCatalogRepository
	mockLedger  *commandsmock.MockLedgerRepository
	ledger      commands.LedgerCommands
}

func (s *LedgerCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = commandsmock.NewMockCatalogRepository(s.mockCtrl)
	s.mockLedger = commandsmock.NewMockLedgerRepository(s.mockCtrl)
	s.ledger = commands.NewLedgerCommands(s.mockCatalog, s.mockLedger)
}

func (s *LedgerCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerCommandsSuite(t *testing.T) {
	suite.Run(t, new(LedgerCommandsTestSuite))
}

func (s *LedgerCommandsTestSuite) snapshot(resourceID uuid.UUID) *commands.ResourceSnapshot {
	return &commands.ResourceSnapshot{
		ID:         resourceID,
		EntryID:    uuid.New(),
		Name:       "Deluxe Sea View",
		TotalUnits: 10,
	}
}

func (s *LedgerCommandsTestSuite) TestUpsertRange() {
	resourceID := uuid.New()
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	s.Run("writes one row per day", func() {
		s.mockCatalog.EXPECT().
			FindResourceSnapshot(gomock.Any(), resourceID).
			Return(s.snapshot(resourceID), nil)

		var captured []commands.LedgerUpsert
		s.mockLedger.EXPECT().
			UpsertRange(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, upserts []commands.LedgerUpsert) error {
				captured = upserts
				return nil
			})

		days, err := s.ledger.UpsertRange(context.Background(), commands.UpsertLedgerRangeParams{
			ResourceID: resourceID,
			From:       from,
			To:         from.AddDate(0, 0, 5),
			Blocked:    true,
		})
		s.Require().NoError(err)
		s.Assert().Equal(5, days)
		s.Require().Len(captured, 5)
		s.Assert().Equal(from, captured[0].Day)
		s.Assert().Equal(from.AddDate(0, 0, 4), captured[4].Day)
		for _, u := range captured {
			s.Assert().Equal(resourceID, u.ResourceID)
			s.Assert().True(u.Blocked)
		}
	})

	s.Run("times of day are truncated before the range check", func() {
		s.mockCatalog.EXPECT().
			FindResourceSnapshot(gomock.Any(), resourceID).
			Return(s.snapshot(resourceID), nil)
		s.mockLedger.EXPECT().
			UpsertRange(gomock.Any(), gomock.Any()).
			Return(nil)

		days, err := s.ledger.UpsertRange(context.Background(), commands.UpsertLedgerRangeParams{
			ResourceID: resourceID,
			From:       from.Add(9 * time.Hour),
			To:         from.AddDate(0, 0, 2).Add(23 * time.Hour),
		})
		s.Require().NoError(err)
		s.Assert().Equal(2, days)
	})

	s.Run("empty range", func() {
		_, err := s.ledger.UpsertRange(context.Background(), commands.UpsertLedgerRangeParams{
			ResourceID: resourceID,
			From:       from,
			To:         from,
		})
		s.Require().ErrorIs(err, commands.ErrInvalidLedgerRange)
	})

	s.Run("inverted range", func() {
		_, err := s.ledger.UpsertRange(context.Background(), commands.UpsertLedgerRangeParams{
			ResourceID: resourceID,
			From:       from,
			To:         from.AddDate(0, 0, -3),
		})
		s.Require().ErrorIs(err, commands.ErrInvalidLedgerRange)
	})

	s.Run("range wider than a year", func() {
		_, err := s.ledger.UpsertRange(context.Background(), commands.UpsertLedgerRangeParams{
			ResourceID: resourceID,
			From:       from,
			To:         from.AddDate(0, 0, 400),
		})
		s.Require().ErrorIs(err, commands.ErrLedgerRangeTooWide)
	})

	s.Run("unknown resource", func() {
		s.mockCatalog.EXPECT().
			FindResourceSnapshot(gomock.Any(), resourceID).
			Return(nil, nil)

		_, err := s.ledger.UpsertRange(context.Background(), commands.UpsertLedgerRangeParams{
			ResourceID: resourceID,
			From:       from,
			To:         from.AddDate(0, 0, 1),
		})
		s.Require().ErrorIs(err, commands.ErrResourceNotFound)
	})
}
