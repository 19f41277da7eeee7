package services

import (
	"math"
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/tracking"
)

// FreshnessWindow is the cutoff beyond which a truck's last reported
// position no longer counts for nearest-vehicle matching.
const FreshnessWindow = 10 * time.Minute

const (
	// candidateCutoffKm bounds the radius within which an active truck
	// counts as heading towards the citizen at all. A truck at exactly this
	// distance is discarded.
	candidateCutoffKm = 1.0

	// nearbyThresholdKm is the radius within which the truck is reported as
	// arriving rather than merely on the way.
	nearbyThresholdKm = 0.1

	// etaMinutesPerKm converts distance to a whole-minute estimate. This is
	// a fixed linear heuristic, not a routing engine.
	etaMinutesPerKm = 10.0
)

// MatchStatus is the citizen-facing answer to "where is my truck".
type MatchStatus string

const (
	// MatchLocationNotSet means the citizen has no stored coordinate to
	// measure against.
	MatchLocationNotSet MatchStatus = "LOCATION_NOT_SET"

	// MatchNotScheduled means no active truck has a fresh position within
	// the candidate radius.
	MatchNotScheduled MatchStatus = "NOT_SCHEDULED"

	// MatchOnTheWay means the nearest candidate truck is within the radius
	// but not yet close.
	MatchOnTheWay MatchStatus = "ON_THE_WAY"

	// MatchNearby means the nearest candidate truck is under 100 meters
	// away.
	MatchNearby MatchStatus = "NEARBY"
)

// Candidate is one truck position offered to the matcher: the projection row
// joined with the truck's display name. Callers are expected to have already
// filtered to trucks serving an active assignment with a fresh projection.
type Candidate struct {
	TruckName string
	Location  *tracking.CurrentLocation
}

// Match is the matcher's verdict. TruckName and EtaMinutes are only
// meaningful when Status is MatchOnTheWay or MatchNearby.
type Match struct {
	Status     MatchStatus
	TruckName  string
	EtaMinutes int
	DistanceKm float64
}

// TruckMatcher is a pure domain service that turns candidate truck positions
// into a citizen-facing status and ETA. It holds no state and performs no
// I/O; given the same inputs it always returns the same Match.
type TruckMatcher struct{}

// NewTruckMatcher creates a new TruckMatcher instance.
func NewTruckMatcher() TruckMatcher {
	return TruckMatcher{}
}

// MatchNearest finds the candidate truck closest to the citizen's coordinate
// by great-circle distance.
//
// Decision rules:
//   - No candidate strictly under 1 km: MatchNotScheduled.
//   - Nearest candidate under 0.1 km: MatchNearby.
//   - Otherwise: MatchOnTheWay.
//
// The ETA is round(distance_km * 10) whole minutes, clamped to a minimum of
// one minute so a truck around the corner never reads as "0 minutes".
func (m TruckMatcher) MatchNearest(citizenPoint kernel.GeoPoint, candidates []Candidate) (Match, error) {
	if err := citizenPoint.Validate(); err != nil {
		return Match{}, err
	}

	best := Match{Status: MatchNotScheduled, DistanceKm: math.MaxFloat64}
	for _, candidate := range candidates {
		if err := candidate.Location.Validate(); err != nil {
			return Match{}, err
		}

		distanceKm, err := citizenPoint.DistanceKm(candidate.Location.Point())
		if err != nil {
			return Match{}, err
		}

		if !withinCandidateRadius(distanceKm) || distanceKm >= best.DistanceKm {
			continue
		}

		best = Match{
			Status:     MatchOnTheWay,
			TruckName:  candidate.TruckName,
			EtaMinutes: etaMinutes(distanceKm),
			DistanceKm: distanceKm,
		}
		if distanceKm < nearbyThresholdKm {
			best.Status = MatchNearby
		}
	}

	if best.Status == MatchNotScheduled {
		return Match{Status: MatchNotScheduled}, nil
	}

	return best, nil
}

// withinCandidateRadius reports whether a truck at the given distance still
// counts as a candidate. The cutoff is exclusive: exactly 1 km away is out.
func withinCandidateRadius(distanceKm float64) bool {
	return distanceKm < candidateCutoffKm
}

func etaMinutes(distanceKm float64) int {
	eta := int(math.Round(distanceKm * etaMinutesPerKm))
	if eta < 1 {
		return 1
	}
	return eta
}
