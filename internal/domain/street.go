package domain

// TrafficLevel is the categorical congestion rating of a street, derived
// from its measured daily vehicle count.
type TrafficLevel string

const (
	TrafficLow      TrafficLevel = "LOW"
	TrafficModerate TrafficLevel = "MODERATE"
	TrafficHigh     TrafficLevel = "HIGH"
	TrafficSevere   TrafficLevel = "SEVERE"

	// TrafficUnknown marks a street with no reference entry. It only appears
	// in lookup sentinels, never inside the reference store itself.
	TrafficUnknown TrafficLevel = "UNKNOWN"
)

// One raw row of the traffic dataset as persisted (level and multiplier
// are derived at load time, not stored).
type StreetRow struct {
	StreetName        string
	DailyVehicleCount int
}

// Represents one street in the congestion reference dataset.
// Records are built once at load time and are immutable afterwards.
type StreetRecord struct {
	NormalizedName    string
	DailyVehicleCount int
	Level             TrafficLevel
	Multiplier        float64
}
