package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/route"
	"wastetrack/internal/pkg/errs"
)

func geoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func waypoint(t *testing.T, seq int) *route.Waypoint {
	t.Helper()
	wp, err := route.NewWaypoint(seq, geoPoint(t, -12.05, -77.04), "")
	require.NoError(t, err)
	return wp
}

func Test_NewRoute(t *testing.T) {
	waypoints := []*route.Waypoint{waypoint(t, 3), waypoint(t, 1), waypoint(t, 2)}

	r, err := route.NewRoute("Centro Norte", geoPoint(t, -12.04, -77.03), 90, kernel.NewUUID(), waypoints)

	require.NoError(t, err)
	assert.NoError(t, r.Validate())
	assert.Equal(t, route.StatusDraft, r.Status())
	assert.Equal(t, 90, r.EstimatedMinutes())

	got := r.Waypoints()
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].SequenceOrder())
	assert.Equal(t, 2, got[1].SequenceOrder())
	assert.Equal(t, 3, got[2].SequenceOrder())
}

func Test_NewRoute_Invalid(t *testing.T) {
	start := geoPoint(t, -12.04, -77.03)

	tests := []struct {
		name    string
		routeFn func() (*route.Route, error)
	}{
		{"empty name", func() (*route.Route, error) {
			return route.NewRoute("  ", start, 90, kernel.NewUUID(), nil)
		}},
		{"non-positive duration", func() (*route.Route, error) {
			return route.NewRoute("Centro", start, 0, kernel.NewUUID(), nil)
		}},
		{"unconstructed start point", func() (*route.Route, error) {
			return route.NewRoute("Centro", kernel.GeoPoint{}, 90, kernel.NewUUID(), nil)
		}},
		{"missing creator", func() (*route.Route, error) {
			return route.NewRoute("Centro", start, 90, kernel.UUID{}, nil)
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.routeFn()
			assert.Error(t, err)
		})
	}
}

func Test_NewRoute_DuplicateSequenceOrder(t *testing.T) {
	waypoints := []*route.Waypoint{waypoint(t, 1), waypoint(t, 1)}

	_, err := route.NewRoute("Centro", geoPoint(t, -12.04, -77.03), 90, kernel.NewUUID(), waypoints)

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_NewRoute_GapsInSequenceAreAllowed(t *testing.T) {
	waypoints := []*route.Waypoint{waypoint(t, 10), waypoint(t, 2)}

	r, err := route.NewRoute("Centro", geoPoint(t, -12.04, -77.03), 90, kernel.NewUUID(), waypoints)

	require.NoError(t, err)
	got := r.Waypoints()
	assert.Equal(t, 2, got[0].SequenceOrder())
	assert.Equal(t, 10, got[1].SequenceOrder())
}

func Test_Route_SetStatus(t *testing.T) {
	r, err := route.NewRoute("Centro", geoPoint(t, -12.04, -77.03), 90, kernel.NewUUID(), nil)
	require.NoError(t, err)

	require.NoError(t, r.SetStatus(route.StatusActive))
	assert.Equal(t, route.StatusActive, r.Status())

	assert.Error(t, r.SetStatus(route.Status("archived")))
	assert.Equal(t, route.StatusActive, r.Status())
}

func Test_NewWaypoint_SequenceMustBePositive(t *testing.T) {
	for _, seq := range []int{0, -1} {
		_, err := route.NewWaypoint(seq, geoPoint(t, -12.05, -77.04), "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func Test_Waypoint_MustBeConstructed(t *testing.T) {
	var wp route.Waypoint

	assert.ErrorIs(t, wp.Validate(), route.ErrWaypointIsNotConstructed)
}
