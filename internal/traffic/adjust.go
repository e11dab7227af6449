package traffic

import (
	"fmt"
	"slices"
	"strings"

	"traffic-route-service/internal/domain"
)

// Aggregator computes a route-level congestion adjustment from an ordered
// sequence of turn-by-turn steps. It is pure and stateless: every Adjust
// call allocates only call-scoped working state, so concurrent invocations
// need no coordination.
type Aggregator struct {
	store     *Store
	extractor StreetExtractor
}

// NewAggregator wires the aggregator to its reference store. A nil extractor
// selects the default regex rules.
func NewAggregator(store *Store, extractor StreetExtractor) *Aggregator {
	if extractor == nil {
		extractor = RegexExtractor{}
	}
	return &Aggregator{store: store, extractor: extractor}
}

func neutralAdjustment() domain.RouteAdjustment {
	return domain.RouteAdjustment{Multiplier: 1.0, Confidence: 0.0, StreetsMatched: 0}
}

// Streets extracted from steps, deduplicated on normalized name with
// per-street duration accumulated across non-contiguous occurrences.
type streetCandidate struct {
	displayName     string
	durationSeconds int
}

// Adjust derives the traffic multiplier and confidence for a route.
//
// Streets are weighted by their share of total route duration. The
// multiplier is the weighted average of matched streets' congestion
// multipliers, renormalized over matched mass only: folding unknown streets
// in as neutral would silently dilute the congestion signal, so instead the
// matched share is reported separately as confidence and the caller decides
// what to do with low-confidence estimates.
//
// Unmatched steps, empty routes and zero-duration routes all resolve to the
// neutral default; only a step with negative duration or distance rejects
// the call.
func (a *Aggregator) Adjust(steps []domain.RouteStep, includeDetails bool) (domain.RouteAdjustment, error) {
	totalDuration := 0
	for i, s := range steps {
		if s.DurationSeconds < 0 || s.DistanceMeters < 0 {
			return domain.RouteAdjustment{}, fmt.Errorf(
				"adjust route: step %d: %w: negative duration or distance", i, ErrInvalidInput,
			)
		}
		totalDuration += s.DurationSeconds
	}

	if len(steps) == 0 || totalDuration == 0 {
		return neutralAdjustment(), nil
	}

	candidates := make(map[string]*streetCandidate)
	for _, s := range steps {
		// Zero-duration steps carry no weight either way.
		if s.DurationSeconds == 0 {
			continue
		}

		name, ok := a.extractor.ExtractStreet(s.Instruction)
		if !ok {
			continue
		}

		key := NormalizeStreet(name)
		if key == "" {
			continue
		}

		if c, ok := candidates[key]; ok {
			c.durationSeconds += s.DurationSeconds
			continue
		}
		candidates[key] = &streetCandidate{displayName: name, durationSeconds: s.DurationSeconds}
	}

	// Resolve in sorted key order so float accumulation is bit-identical
	// across calls on identical input.
	keys := make([]string, 0, len(candidates))
	for k := range candidates {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	matchedDuration := 0
	weightedMass := 0.0
	matched := make([]domain.StreetContribution, 0, len(keys))

	for _, k := range keys {
		c := candidates[k]
		rec, ok, err := a.store.Lookup(c.displayName)
		if err != nil || !ok {
			continue
		}

		weight := float64(c.durationSeconds) / float64(totalDuration)
		matchedDuration += c.durationSeconds
		weightedMass += weight * rec.Multiplier
		matched = append(matched, domain.StreetContribution{
			Street:            c.displayName,
			Level:             rec.Level,
			Multiplier:        rec.Multiplier,
			DailyVehicleCount: rec.DailyVehicleCount,
			Weight:            weight,
		})
	}

	if matchedDuration == 0 {
		return neutralAdjustment(), nil
	}

	matchedShare := float64(matchedDuration) / float64(totalDuration)
	adj := domain.RouteAdjustment{
		Multiplier:     weightedMass / matchedShare,
		Confidence:     matchedShare,
		StreetsMatched: len(matched),
	}

	if includeDetails {
		slices.SortFunc(matched, func(x, y domain.StreetContribution) int {
			if x.Weight != y.Weight {
				if x.Weight > y.Weight {
					return -1
				}
				return 1
			}
			return strings.Compare(x.Street, y.Street)
		})
		adj.StreetDetails = matched
	}

	return adj, nil
}
