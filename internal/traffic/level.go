package traffic

import "traffic-route-service/internal/domain"

// trafficBand maps a daily-vehicle-count floor to its level and multiplier.
type trafficBand struct {
	minCount   int
	level      domain.TrafficLevel
	multiplier float64
}

// Single source of truth for the count -> level/multiplier derivation.
// Ordered from heaviest to lightest; classify picks the first band whose
// floor the observed count reaches. Multipliers never drop below 1.0, so
// a known street can never shorten a nominal estimate.
var trafficBands = []trafficBand{
	{minCount: 50000, level: domain.TrafficSevere, multiplier: 1.60},
	{minCount: 25000, level: domain.TrafficHigh, multiplier: 1.35},
	{minCount: 10000, level: domain.TrafficModerate, multiplier: 1.15},
	{minCount: 0, level: domain.TrafficLow, multiplier: 1.00},
}

func classify(dailyVehicleCount int) (domain.TrafficLevel, float64) {
	for _, b := range trafficBands {
		if dailyVehicleCount >= b.minCount {
			return b.level, b.multiplier
		}
	}
	return domain.TrafficLow, 1.00
}
