//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/availability"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/categories"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"
	"github.com/nivekneved/travellounge-sub002/tests/common/builder"
	queriesmock "github.com/nivekneved/travellounge-sub002/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testAliases = categories.AliasTable{
	"hotels":  {"Hotel", "Luxury Resort"},
	"cruises": {"Cruise", "Cruise Liner"},
}

type SearchQueriesTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockCatalog *queriesmock.MockCatalogReadStore
	mockLedger  *queriesmock.MockLedgerReadStore
	search      queries.SearchQueries
}

func (s *SearchQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = queriesmock.NewMockCatalogReadStore(s.mockCtrl)
	s.mockLedger = queriesmock.NewMockLedgerReadStore(s.mockCtrl)
	s.search = queries.NewSearchQueries(s.mockCatalog, s.mockLedger, testAliases, 200)
}

func (s *SearchQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchQueriesSuite(t *testing.T) {
	suite.Run(t, new(SearchQueriesTestSuite))
}

func (s *SearchQueriesTestSuite) TestFilterComposition() {
	cases := []struct {
		name     string
		req      queries.SearchRequest
		expected queries.CatalogFilter
	}{
		{
			name:     "no filters",
			req:      queries.SearchRequest{},
			expected: queries.CatalogFilter{Limit: 200},
		},
		{
			name:     "category all is no category filter",
			req:      queries.SearchRequest{Category: "All"},
			expected: queries.CatalogFilter{Limit: 200},
		},
		{
			name:     "aliased category expands to literal set",
			req:      queries.SearchRequest{Category: "Hotels"},
			expected: queries.CatalogFilter{CategoryIn: []string{"Hotel", "Luxury Resort"}, Limit: 200},
		},
		{
			name:     "unknown category falls back to singularized substring",
			req:      queries.SearchRequest{Category: "villas"},
			expected: queries.CatalogFilter{CategoryLike: "villa", Limit: 200},
		},
		{
			name:     "term is trimmed",
			req:      queries.SearchRequest{Term: "  beach  "},
			expected: queries.CatalogFilter{Term: "beach", Limit: 200},
		},
		{
			name: "category and term combine",
			req:  queries.SearchRequest{Category: "cruises", Term: "sunset"},
			expected: queries.CatalogFilter{
				CategoryIn: []string{"Cruise", "Cruise Liner"},
				Term:       "sunset",
				Limit:      200,
			},
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			s.mockCatalog.EXPECT().
				Search(gomock.Any(), c.expected).
				Return(nil, nil)

			result, err := s.search.Search(context.Background(), c.req)
			s.Require().NoError(err)
			s.Assert().False(result.DateFiltered)
		})
	}
}

func (s *SearchQueriesTestSuite) TestSearchWithoutDates() {
	entry := builder.NewEntryBuilder().BuildView()
	s.mockCatalog.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]*queries.EntryView{entry}, nil)

	result, err := s.search.Search(context.Background(), queries.SearchRequest{Term: "cove"})
	s.Require().NoError(err)
	s.Assert().Equal([]*queries.EntryView{entry}, result.Entries)
	s.Assert().False(result.DateFiltered)
	s.Assert().Zero(result.Nights)
}

func (s *SearchQueriesTestSuite) TestSearchWithStay() {
	checkIn := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	available := builder.NewEntryBuilder().BuildView()
	unavailable := builder.NewEntryBuilder().
		With(func(b *builder.EntryBuilder) { b.Name = "Harbour Lights Hotel" }).
		BuildView()
	noResources := builder.NewEntryBuilder().
		With(func(b *builder.EntryBuilder) { b.ResourceIDs = nil }).
		BuildView()

	s.mockCatalog.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]*queries.EntryView{available, unavailable, noResources}, nil)

	wantIDs := append(append([]uuid.UUID{}, available.ResourceIDs...), unavailable.ResourceIDs...)
	rows := []availability.LedgerRow{
		{ResourceID: available.ResourceIDs[0], Day: checkIn},
		{ResourceID: available.ResourceIDs[0], Day: checkIn.AddDate(0, 0, 1)},
		// second entry only covers one of the two nights
		{ResourceID: unavailable.ResourceIDs[0], Day: checkIn},
	}
	s.mockLedger.EXPECT().
		FindForStay(gomock.Any(), wantIDs, checkIn, checkOut).
		Return(rows, nil)

	result, err := s.search.Search(context.Background(), queries.SearchRequest{
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	})
	s.Require().NoError(err)
	s.Assert().True(result.DateFiltered)
	s.Assert().Equal(2, result.Nights)
	s.Assert().Equal([]*queries.EntryView{available}, result.Entries)
}

func (s *SearchQueriesTestSuite) TestInvalidDateRangeDowngrades() {
	checkIn := time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, -1)

	entry := builder.NewEntryBuilder().BuildView()
	s.mockCatalog.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]*queries.EntryView{entry}, nil)
	// no ledger call expected

	result, err := s.search.Search(context.Background(), queries.SearchRequest{
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	})
	s.Require().NoError(err)
	s.Assert().False(result.DateFiltered)
	s.Assert().Equal([]*queries.EntryView{entry}, result.Entries)
}

func (s *SearchQueriesTestSuite) TestHalfOpenDateRangeDowngrades() {
	checkIn := time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)

	entry := builder.NewEntryBuilder().BuildView()
	s.mockCatalog.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]*queries.EntryView{entry}, nil)

	result, err := s.search.Search(context.Background(), queries.SearchRequest{CheckIn: &checkIn})
	s.Require().NoError(err)
	s.Assert().False(result.DateFiltered)
}

func (s *SearchQueriesTestSuite) TestNoResourcesSkipsLedgerQuery() {
	checkIn := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 1)

	entry := builder.NewEntryBuilder().
		With(func(b *builder.EntryBuilder) { b.ResourceIDs = nil }).
		BuildView()
	s.mockCatalog.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]*queries.EntryView{entry}, nil)
	// ledger must not be queried when no candidate has resources

	result, err := s.search.Search(context.Background(), queries.SearchRequest{
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	})
	s.Require().NoError(err)
	s.Assert().True(result.DateFiltered)
	s.Assert().Empty(result.Entries)
}

func (s *SearchQueriesTestSuite) TestCatalogFailureAborts() {
	s.mockCatalog.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.search.Search(context.Background(), queries.SearchRequest{})
	s.Require().Error(err)
}

func (s *SearchQueriesTestSuite) TestLedgerFailureAborts() {
	checkIn := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 1)

	entry := builder.NewEntryBuilder().BuildView()
	s.mockCatalog.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]*queries.EntryView{entry}, nil)
	s.mockLedger.EXPECT().
		FindForStay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.search.Search(context.Background(), queries.SearchRequest{
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	})
	s.Require().Error(err)
}

func TestSearchRequestStay(t *testing.T) {
	checkIn := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	t.Run("valid pair", func(t *testing.T) {
		stay := queries.SearchRequest{CheckIn: &checkIn, CheckOut: &checkOut}.Stay()
		require.NotNil(t, stay)
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("missing either date", func(t *testing.T) {
		assert.Nil(t, queries.SearchRequest{CheckIn: &checkIn}.Stay())
		assert.Nil(t, queries.SearchRequest{CheckOut: &checkOut}.Stay())
		assert.Nil(t, queries.SearchRequest{}.Stay())
	})

	t.Run("inverted range", func(t *testing.T) {
		assert.Nil(t, queries.SearchRequest{CheckIn: &checkOut, CheckOut: &checkIn}.Stay())
	})
}
