package tracking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/tracking"
)

func geoPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(-12.05, -77.04)
	require.NoError(t, err)
	return p
}

func Test_NewCurrentLocation(t *testing.T) {
	speed := 24.5
	now := time.Now().UTC()

	loc, err := tracking.NewCurrentLocation(
		kernel.NewUUID(), kernel.NewUUID(), geoPoint(t), &speed, nil, now)

	require.NoError(t, err)
	assert.NoError(t, loc.Validate())
	require.NotNil(t, loc.SpeedKmh())
	assert.Equal(t, 24.5, *loc.SpeedKmh())
	assert.Nil(t, loc.Heading())
	assert.Equal(t, now, loc.UpdatedAt())
}

func Test_NewCurrentLocation_Invalid(t *testing.T) {
	now := time.Now().UTC()

	_, err := tracking.NewCurrentLocation(kernel.UUID{}, kernel.NewUUID(), geoPoint(t), nil, nil, now)
	assert.Error(t, err)

	_, err = tracking.NewCurrentLocation(kernel.NewUUID(), kernel.NewUUID(), kernel.GeoPoint{}, nil, nil, now)
	assert.Error(t, err)
}

func Test_CurrentLocation_IsFresh(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	window := 10 * time.Minute

	tests := []struct {
		name      string
		updatedAt time.Time
		want      bool
	}{
		{"just reported", now, true},
		{"two minutes old", now.Add(-2 * time.Minute), true},
		{"exactly at the window", now.Add(-window), true},
		{"one second past the window", now.Add(-window - time.Second), false},
		{"an hour old", now.Add(-time.Hour), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			loc, err := tracking.NewCurrentLocation(
				kernel.NewUUID(), kernel.NewUUID(), geoPoint(t), nil, nil, test.updatedAt)
			require.NoError(t, err)

			assert.Equal(t, test.want, loc.IsFresh(now, window))
		})
	}
}

func Test_NewHistoryRecord(t *testing.T) {
	heading := 180.0
	now := time.Now().UTC()

	rec, err := tracking.NewHistoryRecord(
		kernel.NewUUID(), kernel.NewUUID(), geoPoint(t), nil, &heading, now)

	require.NoError(t, err)
	assert.NoError(t, rec.Validate())
	assert.NoError(t, rec.ID().Validate())
	assert.Equal(t, now, rec.RecordedAt())
}

func Test_NewCitizenLocation(t *testing.T) {
	userID := kernel.NewUUID()
	now := time.Now().UTC()

	loc, err := tracking.NewCitizenLocation(userID, geoPoint(t), now)

	require.NoError(t, err)
	assert.Equal(t, userID, loc.UserID())

	_, err = tracking.NewCitizenLocation(kernel.UUID{}, geoPoint(t), now)
	assert.Error(t, err)
}
