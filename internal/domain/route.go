package domain

// Represents a single turn-by-turn instruction segment of a route, with its
// own distance and duration. Instruction text has already been stripped of
// provider markup.
type RouteStep struct {
	Instruction     string
	DistanceText    string
	DurationText    string
	DistanceMeters  int
	DurationSeconds int
}

// Represents one route alternative returned by the directions provider.
// TrafficDurationSeconds carries the provider's own traffic-aware estimate
// when available; it is surfaced for reconciliation only and plays no part
// in the local adjustment computation.
type Route struct {
	Steps                  []RouteStep
	TotalDurationText      string
	TotalDurationSeconds   int
	TotalDistanceText      string
	Polyline               string
	TrafficDurationSeconds *int
}

// Per-street share of a route adjustment.
type StreetContribution struct {
	Street            string
	Level             TrafficLevel
	Multiplier        float64
	DailyVehicleCount int
	Weight            float64
}

// Represents the traffic adjustment computed for a whole route.
// A RouteAdjustment is an immutable value produced fresh per request.
// Multiplier is the weighted aggregate congestion factor, Confidence the
// fraction of total route duration attributable to matched streets, and
// StreetDetails the optional per-street breakdown (populated only when
// requested, sorted by descending weight then street name).
type RouteAdjustment struct {
	Multiplier     float64
	Confidence     float64
	StreetsMatched int
	StreetDetails  []StreetContribution
}
