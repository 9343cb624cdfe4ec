package impl

import (
	"context"
	"testing"
	"time"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/domain/repository"
	"poolscout/internal/errors"
	mockRepo "poolscout/internal/mocks/repository"
	mockService "poolscout/internal/mocks/service"
	mockUsecase "poolscout/internal/mocks/usecase"
	"poolscout/internal/transform/poolinfer"
	"poolscout/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testRunAt = time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)

type listingPipelineMocks struct {
	source    *mockService.MockListingSource
	listings  *mockRepo.MockListingRepository
	tx        *mockRepo.MockListingTransactionManager
	txRepo    *mockRepo.MockListingRepository
	corrector *mockUsecase.MockAddressCorrector
}

func newTestListingPipeline(t *testing.T) (*listingPipeline, *listingPipelineMocks) {
	t.Helper()

	m := &listingPipelineMocks{
		source:    mockService.NewMockListingSource(t),
		listings:  mockRepo.NewMockListingRepository(t),
		tx:        mockRepo.NewMockListingTransactionManager(t),
		txRepo:    mockRepo.NewMockListingRepository(t),
		corrector: mockUsecase.NewMockAddressCorrector(t),
	}

	p, ok := NewListingPipeline(ListingPipelineParams{
		Source:     m.source,
		Listings:   m.listings,
		TxManager:  m.tx,
		Corrector:  m.corrector,
		Classifier: poolinfer.New(12),
		Config:     &config.Config{ListingSource: &config.ListingSourceConfig{LocationDelay: time.Second}},
		Logger:     discardLogger(),
	}).(*listingPipeline)
	require.True(t, ok)

	p.now = func() time.Time { return testRunAt }
	p.sleep = func(context.Context, time.Duration) error { return nil }

	return p, m
}

func floatPtr(v float64) *float64 { return &v }

func passThroughCorrection(_ context.Context, listings []entity.Listing, _ []int) (*usecase.CorrectionResult, error) {
	return &usecase.CorrectionResult{Listings: listings}, nil
}

func (m *listingPipelineMocks) expectTransaction() {
	m.tx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repo repository.ListingRepository) error) error {
			return fn(m.txRepo)
		}).
		Once()
}

func TestListingPipeline_Run(t *testing.T) {
	p, m := newTestListingPipeline(t)
	ctx := context.Background()

	toronto := entity.SearchLocation{CountryCode: "CA", ProvinceState: "ON", SearchArea: "Toronto"}
	hamilton := entity.SearchLocation{CountryCode: "CA", ProvinceState: "ON", SearchArea: "Hamilton"}

	m.listings.EXPECT().FindSearchLocations(ctx).Return([]entity.SearchLocation{toronto, hamilton}, nil).Once()
	m.source.EXPECT().FetchListings(ctx, toronto).Return([]entity.RawListing{
		{
			MLSID:         "A1",
			Description:   "Beautiful home with private inground pool and hot tub",
			Address:       "123 Main St|Toronto, ON M5V3A8",
			Bedrooms:      "3 + 1",
			Price:         "$1,250,000",
			HouseCategory: "Single Family",
			Latitude:      floatPtr(43.64),
			Longitude:     floatPtr(-79.39),
		},
		{MLSID: "A2", Address: "1 Bay St|Toronto, ON M5J2R8", HouseCategory: "Apartment"},
		{MLSID: "A1", Address: "123 Main St|Toronto, ON M5V3A8", HouseCategory: "Single Family"},
		{
			MLSID:         "A4",
			Address:       "Main St|Toronto, ON M5V3A8",
			HouseCategory: "Single Family",
			Latitude:      floatPtr(43.64),
			Longitude:     floatPtr(-79.39),
		},
	}, nil).Once()
	m.source.EXPECT().FetchListings(ctx, hamilton).Return(nil, errors.New("timeout")).Once()

	m.corrector.EXPECT().
		Correct(ctx, mock.Anything, mock.Anything).
		RunAndReturn(passThroughCorrection).
		Once()

	m.expectTransaction()
	m.txRepo.EXPECT().
		StageListings(ctx, mock.MatchedBy(func(rows []*entity.ListingRow) bool {
			if len(rows) != 1 {
				return false
			}
			r := rows[0]

			return r.MLSID == "A1" && r.AddressNumber == 123 && r.PoolMentioned &&
				r.PoolType == entity.PoolTypeInGround && r.SearchLocation == "CA-ON-Toronto" &&
				r.DateCollected.Equal(testRunAt) && *r.Bedrooms == 4
		})).
		Return(1, nil).
		Once()
	m.txRepo.EXPECT().InsertNewListings(ctx).Return(1, nil).Once()
	m.txRepo.EXPECT().
		RecordSightings(ctx, []entity.Sighting{{MLSID: "A1", SearchLocation: "CA-ON-Toronto"}}, testRunAt).
		Return(1, nil).
		Once()
	m.txRepo.EXPECT().DetectRemovals(ctx, []string{"CA-ON-Toronto"}, testRunAt).Return(2, nil).Once()
	m.txRepo.EXPECT().DetectRelistings(ctx).Return(1, nil).Once()

	summary, err := p.Run(ctx, usecase.RunRequest{RunID: "run-1"})
	require.NoError(t, err)

	assert.Equal(t, entity.PipelineListings, summary.Pipeline)
	assert.Equal(t, "run-1", summary.RunID)
	assert.False(t, summary.Failed)
	assert.Equal(t, 4, summary.RowsIn)
	assert.Equal(t, 1, summary.RowsOut)
	assert.Equal(t, 1, summary.Dropped[dropDuplicateMLS])
	assert.Equal(t, 1, summary.Dropped[dropNonHome])
	assert.Equal(t, 1, summary.Dropped[dropMissingAddressNumber])
	assert.Equal(t, summary.RowsIn-summary.RowsOut, summary.TotalDropped())
	assert.Equal(t, 1, summary.Counters["location_failures"])
	assert.Equal(t, 1, summary.Counters["pool_flagged"])
	assert.Equal(t, 2, summary.Counters["removed"])
	assert.Equal(t, 1, summary.Counters["relisted"])
	assert.Len(t, summary.Errors, 1)
	assert.Equal(t, testRunAt, summary.FinishedAt)
}

func TestListingPipeline_Run_QuotaLoadsPartialResult(t *testing.T) {
	p, m := newTestListingPipeline(t)
	ctx := context.Background()

	loc := entity.SearchLocation{CountryCode: "CA", ProvinceState: "ON", SearchArea: "Toronto"}
	m.listings.EXPECT().FindSearchLocations(ctx).Return([]entity.SearchLocation{loc}, nil).Once()
	m.source.EXPECT().FetchListings(ctx, loc).Return([]entity.RawListing{
		{
			MLSID:         "A1",
			Address:       "123 Main St|Toronto, ON M5V3A8",
			HouseCategory: "Single Family",
			Latitude:      floatPtr(43.64),
			Longitude:     floatPtr(-79.39),
		},
		{MLSID: "B2", Address: "77 Bay St|Toronto, ON", HouseCategory: "Single Family"},
	}, nil).Once()

	m.corrector.EXPECT().
		Correct(ctx, mock.Anything, []int{1}).
		RunAndReturn(func(_ context.Context, listings []entity.Listing, _ []int) (*usecase.CorrectionResult, error) {
			return &usecase.CorrectionResult{
				Listings:  listings[:1],
				Dropped:   listings[1:],
				Attempted: 1,
			}, errors.Wrap(domainerrors.ErrQuotaExceeded, "address correction stopped")
		}).
		Once()

	m.expectTransaction()
	m.txRepo.EXPECT().StageListings(ctx, mock.Anything).Return(1, nil).Once()
	m.txRepo.EXPECT().InsertNewListings(ctx).Return(1, nil).Once()
	m.txRepo.EXPECT().RecordSightings(ctx, mock.Anything, testRunAt).Return(1, nil).Once()
	m.txRepo.EXPECT().DetectRemovals(ctx, mock.Anything, testRunAt).Return(0, nil).Once()
	m.txRepo.EXPECT().DetectRelistings(ctx).Return(0, nil).Once()

	summary, err := p.Run(ctx, usecase.RunRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))

	require.NotNil(t, summary)
	assert.True(t, summary.Failed)
	assert.Equal(t, 1, summary.RowsOut)
	assert.Equal(t, 1, summary.Dropped[dropUnresolvableAddress])
	assert.Equal(t, 1, summary.Counters["inserted"])
}

func TestListingPipeline_Run_AllLocationsFail(t *testing.T) {
	p, m := newTestListingPipeline(t)
	ctx := context.Background()

	loc := entity.SearchLocation{CountryCode: "CA", ProvinceState: "ON", SearchArea: "Toronto"}
	m.listings.EXPECT().FindSearchLocations(ctx).Return([]entity.SearchLocation{loc}, nil).Once()
	m.source.EXPECT().FetchListings(ctx, loc).Return(nil, errors.New("503")).Once()

	summary, err := p.Run(ctx, usecase.RunRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
	assert.True(t, summary.Failed)
}

func TestListingPipeline_Run_PersistFailureRollsBack(t *testing.T) {
	p, m := newTestListingPipeline(t)
	ctx := context.Background()

	loc := entity.SearchLocation{CountryCode: "CA", ProvinceState: "ON", SearchArea: "Toronto"}
	m.listings.EXPECT().FindSearchLocations(ctx).Return([]entity.SearchLocation{loc}, nil).Once()
	m.source.EXPECT().FetchListings(ctx, loc).Return([]entity.RawListing{{
		MLSID:         "A1",
		Address:       "123 Main St|Toronto, ON M5V3A8",
		HouseCategory: "Single Family",
		Latitude:      floatPtr(43.64),
		Longitude:     floatPtr(-79.39),
	}}, nil).Once()
	m.corrector.EXPECT().Correct(ctx, mock.Anything, mock.Anything).RunAndReturn(passThroughCorrection).Once()

	dbErr := errors.New("deadlock detected")
	m.expectTransaction()
	m.txRepo.EXPECT().StageListings(ctx, mock.Anything).Return(1, nil).Once()
	m.txRepo.EXPECT().InsertNewListings(ctx).Return(0, dbErr).Once()

	summary, err := p.Run(ctx, usecase.RunRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPersistFailed))
	assert.ErrorIs(t, err, dbErr)
	assert.True(t, summary.Failed)
}

func TestListingPipeline_Run_MalformedBatch(t *testing.T) {
	p, m := newTestListingPipeline(t)
	ctx := context.Background()

	loc := entity.SearchLocation{CountryCode: "CA", ProvinceState: "ON", SearchArea: "Toronto"}
	m.listings.EXPECT().FindSearchLocations(ctx).Return([]entity.SearchLocation{loc}, nil).Once()
	m.source.EXPECT().FetchListings(ctx, loc).Return([]entity.RawListing{{MLSID: "A1"}}, nil).Once()

	summary, err := p.Run(ctx, usecase.RunRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedInput))
	assert.True(t, summary.Failed)
}

func TestPrepareListingRows(t *testing.T) {
	listings := []entity.Listing{
		{MLSID: "A", Address: entity.ParsedAddress{AddressNumber: "12A"}, Coordinates: &entity.Coordinates{Lat: 1, Lon: 2}, SearchLocation: "CA-ON-X"},
		{MLSID: "B", Address: entity.ParsedAddress{AddressNumber: ""}, Coordinates: &entity.Coordinates{Lat: 1, Lon: 2}},
		{MLSID: "C", Address: entity.ParsedAddress{AddressNumber: "5"}},
		{MLSID: "D", Description: "Nice", Amenities: "Pool", Address: entity.ParsedAddress{AddressNumber: "7"}, Coordinates: &entity.Coordinates{}},
	}

	rows, sightings, skipped := prepareListingRows(listings, testRunAt)

	require.Len(t, rows, 2)
	assert.Equal(t, int64(12), rows[0].AddressNumber)
	assert.Equal(t, "Nice | Amenities: Pool", rows[1].Description)
	assert.Equal(t, []entity.Sighting{{MLSID: "A", SearchLocation: "CA-ON-X"}}, sightings)
	assert.Equal(t, []entity.SkippedListing{
		{MLSID: "B", Reason: dropMissingAddressNumber},
		{MLSID: "C", Reason: dropMissingCoordinates},
	}, skipped)
}

func TestCivicNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"123", 123, true},
		{" 45B ", 45, true},
		{"10-2", 10, true},
		{"", 0, false},
		{"A12", 0, false},
	}

	for _, tt := range tests {
		got, ok := civicNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
