package kernel_test

import (
	"testing"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(-12.0464, -77.0428)

		require.NoError(t, err)
		assert.InDelta(t, -12.0464, p.Latitude(), 1e-9)
		assert.InDelta(t, -77.0428, p.Longitude(), 1e-9)
		require.NoError(t, p.Validate())
	})

	t.Run("boundary coordinates are valid", func(t *testing.T) {
		for _, coords := range [][2]float64{
			{90, 180},
			{-90, -180},
			{0, 0},
		} {
			_, err := kernel.NewGeoPoint(coords[0], coords[1])
			require.NoError(t, err)
		}
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.0001, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("both out of range joins errors", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(1.5, 2.5)
	b, _ := kernel.NewGeoPoint(1.5, 2.5)
	c, _ := kernel.NewGeoPoint(1.5, 2.6)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	var zero kernel.GeoPoint
	_, err = a.IsEqual(zero)
	require.Error(t, err)
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("identical points have zero distance", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(-12.0464, -77.0428)

		d, err := p.DistanceKm(p)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(-12.0464, -77.0428)
		b, _ := kernel.NewGeoPoint(-12.1000, -77.0300)

		dab, err := a.DistanceKm(b)
		require.NoError(t, err)
		dba, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, dab, dba, 1e-9)
	})

	t.Run("known distance between city centers", func(t *testing.T) {
		// Lima Plaza Mayor to Callao Plaza Grau is roughly 12 km.
		lima, _ := kernel.NewGeoPoint(-12.0464, -77.0428)
		callao, _ := kernel.NewGeoPoint(-12.0667, -77.1500)

		d, err := lima.DistanceKm(callao)

		require.NoError(t, err)
		assert.InDelta(t, 11.9, d, 0.5)
	})

	t.Run("short distance matches haversine expectation", func(t *testing.T) {
		// ~50 m apart; the nearest-vehicle classifier depends on this scale.
		a, _ := kernel.NewGeoPoint(-12.0464, -77.0428)
		b, _ := kernel.NewGeoPoint(-12.0468, -77.0430)

		d, err := a.DistanceKm(b)

		require.NoError(t, err)
		assert.Less(t, d, 0.1)
		assert.Greater(t, d, 0.01)
	})

	t.Run("unconstructed point is rejected", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(1, 1)
		var zero kernel.GeoPoint

		_, err := a.DistanceKm(zero)

		require.Error(t, err)
	})
}
