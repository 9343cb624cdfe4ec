package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"poolscout/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingRepository_StageListings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("TRUNCATE TABLE listing_staging")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "listing_staging"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	collected := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []*entity.ListingRow{
		{MLSID: "M1", DateCollected: collected, AddressNumber: 12, StreetName: "Main St", PoolType: entity.PoolTypeInGround},
		{MLSID: "M2", DateCollected: collected, AddressNumber: 14, StreetName: "Main St", PoolType: entity.PoolTypeNone},
	}

	n, err := repo.StageListings(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestListingRepository_StageListings_EmptyOnlyTruncates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("TRUNCATE TABLE listing_staging")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.StageListings(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListingRepository_RecordSightings_DeduplicatesPairs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)
	seenAt := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO listing_search_location")).
		WithArgs(seenAt, seenAt, "M1", "CA-NB-Moncton", "M2", "CA-NB-Moncton").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.RecordSightings(context.Background(), []entity.Sighting{
		{MLSID: "M2", SearchLocation: "CA-NB-Moncton"},
		{MLSID: "M1", SearchLocation: "CA-NB-Moncton"},
		{MLSID: "M2", SearchLocation: "CA-NB-Moncton"},
	}, seenAt)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestListingRepository_DetectRemovals(t *testing.T) {
	runAt := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	t.Run("no queried locations", func(t *testing.T) {
		db, _ := newMockDB(t)
		n, err := NewListingRepository(db).DetectRemovals(context.Background(), nil, runAt)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("records removals for queried locations", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO listing_removal")).
			WithArgs("CA-NB-Moncton", "CA-NB-Dieppe", runAt, runAt).
			WillReturnResult(sqlmock.NewResult(0, 3))

		n, err := NewListingRepository(db).DetectRemovals(context.Background(), []string{"CA-NB-Moncton", "CA-NB-Dieppe"}, runAt)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
}

func TestListingRepository_FindNewPoolListings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)
	since := time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)
	collected := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	columns := []string{
		"mls_id", "address_number", "street_name", "municipality", "province_state", "postal_code",
		"lat", "lon", "date_collected", "description", "bedrooms", "bathrooms", "size_sqft",
		"stories", "house_cat", "price", "pool_type", "pool_mentioned",
	}
	mock.ExpectQuery(regexp.QuoteMeta("AND l.pool_mentioned = true")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("M1", "12", "Main St", "Moncton", "NB", "E1A1A1",
				46.09, -64.78, collected, "Inground pool", int64(3), 2.5, 1800.0,
				2.0, "House", "349900.00", "in-ground", true).
			AddRow("M2", "", "Elm St", "Dieppe", "NB", "E1A2B2",
				nil, nil, collected, "Pool", nil, nil, nil,
				nil, "", nil, "", true))

	listings, err := repo.FindNewPoolListings(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, "M1", first.MLSID)
	require.NotNil(t, first.Coordinates)
	assert.InDelta(t, 46.09, first.Coordinates.Lat, 1e-9)
	assert.Equal(t, entity.PoolTypeInGround, first.PoolType)
	require.NotNil(t, first.Bedrooms)
	assert.Equal(t, 3, *first.Bedrooms)
	assert.True(t, first.Price.Valid)
	assert.True(t, first.Price.Decimal.Equal(decimal.RequireFromString("349900")))

	second := listings[1]
	assert.Nil(t, second.Coordinates)
	assert.Equal(t, entity.PoolTypeNone, second.PoolType)
	assert.False(t, second.Price.Valid)
}

func TestListingRepository_FindRemovedPoolListings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)
	since := time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)
	removed := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN listing_removal lr ON lr.mls_id = l.mls_id")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"mls_id", "pool_type", "pool_mentioned", "removal_date"}).
			AddRow("M9", "above-ground", true, removed))

	listings, err := repo.FindRemovedPoolListings(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.NotNil(t, listings[0].RemovalDate)
	assert.True(t, removed.Equal(*listings[0].RemovalDate))
	assert.Equal(t, entity.PoolTypeAboveGround, listings[0].PoolType)
}

func TestUniqueSightings_SortsAndDrops(t *testing.T) {
	got := uniqueSightings([]entity.Sighting{
		{MLSID: "B", SearchLocation: "x"},
		{MLSID: "A", SearchLocation: "y"},
		{MLSID: "A", SearchLocation: "x"},
		{MLSID: "B", SearchLocation: "x"},
	})

	assert.Equal(t, []entity.Sighting{
		{MLSID: "A", SearchLocation: "x"},
		{MLSID: "A", SearchLocation: "y"},
		{MLSID: "B", SearchLocation: "x"},
	}, got)
}

func TestTuples(t *testing.T) {
	assert.Equal(t, "(?, ?), (?, ?), (?, ?)", tuples("(?, ?)", 3))
	assert.Empty(t, tuples("(?)", 0))
}
