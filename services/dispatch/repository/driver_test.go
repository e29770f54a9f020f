package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/database"
	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/ridewave/dispatch/internal/utils"
)

func setupDriverRepoTest(t *testing.T) (*DispatchRepo, sqlmock.Sqlmock, redismock.ClientMock, func()) {
	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	redisDB, redisMock := redismock.NewClientMock()

	repo := &DispatchRepo{
		cfg:   &models.Config{},
		db:    sqlxDB,
		redis: database.WrapRedisClient(redisDB),
	}

	cleanup := func() {
		sqlxDB.Close()
		redisDB.Close()
	}

	return repo, sqlMock, redisMock, cleanup
}

func TestFindAvailableDrivers_MergesCachedPositions(t *testing.T) {
	repo, sqlMock, redisMock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "vehicle_class", "is_available"}).
		AddRow("driver-1", "mini", true).
		AddRow("driver-2", "mini", true).
		AddRow("driver-3", "mini", true)
	sqlMock.ExpectQuery("^SELECT (.+) FROM drivers").
		WithArgs("mini").
		WillReturnRows(rows)

	// driver-2 has never reported a position
	redisMock.ExpectGeoPos(constants.KeyDriverGeo, "driver-1", "driver-2", "driver-3").
		SetVal([]*redis.GeoPos{
			{Longitude: 106.8, Latitude: -6.2},
			nil,
			{Longitude: 106.9, Latitude: -6.3},
		})

	candidates, err := repo.FindAvailableDrivers(context.Background(), "mini")
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	require.NotNil(t, candidates[0].Position)
	assert.Equal(t, -6.2, candidates[0].Position.Latitude)
	assert.Equal(t, 106.8, candidates[0].Position.Longitude)

	assert.Nil(t, candidates[1].Position)

	require.NotNil(t, candidates[2].Position)
	assert.Equal(t, -6.3, candidates[2].Position.Latitude)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestFindAvailableDrivers_PositionLookupError(t *testing.T) {
	repo, sqlMock, redisMock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "vehicle_class", "is_available"}).
		AddRow("driver-1", "mini", true)
	sqlMock.ExpectQuery("^SELECT (.+) FROM drivers").
		WithArgs("mini").
		WillReturnRows(rows)

	redisMock.ExpectGeoPos(constants.KeyDriverGeo, "driver-1").
		SetErr(errors.New("connection refused"))

	candidates, err := repo.FindAvailableDrivers(context.Background(), "mini")
	assert.Error(t, err)
	assert.Nil(t, candidates)
	assert.Contains(t, err.Error(), "failed to load driver positions")
}

func TestUpdateDriverPosition_Success(t *testing.T) {
	repo, _, redisMock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	position := models.Coordinate{Latitude: -6.2, Longitude: 106.8}

	redisMock.ExpectGeoAdd(constants.KeyDriverGeo, &redis.GeoLocation{
		Longitude: position.Longitude,
		Latitude:  position.Latitude,
		Name:      "driver-1",
	}).SetVal(1)

	// hash fields are passed as a map, so argument order is not stable;
	// match the command loosely and verify the geohash cell is present
	wantGeohash := utils.EncodeLocation(position)
	redisMock.CustomMatch(func(expected, actual []interface{}) error {
		found := false
		for _, arg := range actual {
			if s, ok := arg.(string); ok && s == wantGeohash {
				found = true
			}
		}
		if !found {
			return errors.New("geohash cell missing from position hash")
		}
		return nil
	}).ExpectHSet(constants.KeyDriverPositionPrefix+"driver-1",
		// redismock compares argument counts before calling the custom
		// matcher, so the expectation needs one placeholder per hash
		// field/value; the matcher above ignores these values
		"latitude", nil, "longitude", nil, "geohash", nil, "updated_at", nil,
	).SetVal(4)

	err := repo.UpdateDriverPosition(context.Background(), "driver-1", position)
	assert.NoError(t, err)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestUpdateDriverPosition_GeoAddError(t *testing.T) {
	repo, _, redisMock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	position := models.Coordinate{Latitude: -6.2, Longitude: 106.8}

	redisMock.ExpectGeoAdd(constants.KeyDriverGeo, &redis.GeoLocation{
		Longitude: position.Longitude,
		Latitude:  position.Latitude,
		Name:      "driver-1",
	}).SetErr(errors.New("redis down"))

	err := repo.UpdateDriverPosition(context.Background(), "driver-1", position)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update driver geo set")
}
