package directions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"traffic-route-service/internal/domain"
	"traffic-route-service/internal/platform/metrics"
	"traffic-route-service/internal/platform/obs"
	"traffic-route-service/internal/ports"
)

// GoogleDirectionsProvider implements DirectionsProvider against the Google
// Directions API.
//
// It coordinates:
//   - Lookup-key normalization
//   - A short-TTL directions cache (traffic-aware responses go stale fast)
//   - External API calls with retry/backoff
//   - Stripping provider markup from step instructions
//
// The provider is safe for concurrent use.
type GoogleDirectionsProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   ports.DirectionsCache
	metrics *metrics.Collector
}

// NewGoogleDirectionsProvider wires the provider. Cache and collector are
// optional; a nil cache means every call goes to the API.
func NewGoogleDirectionsProvider(
	apiKey string,
	cache ports.DirectionsCache,
	collector *metrics.Collector,
) (*GoogleDirectionsProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	provider := &GoogleDirectionsProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
		cache:   cache,
		metrics: collector,
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *GoogleDirectionsProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Instructions arrive as HTML fragments; the engine wants plain text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

func stripHTML(s string) string {
	return htmlTagPattern.ReplaceAllString(s, "")
}

// GetRoutes returns route alternatives between two free-text locations,
// consulting the directions cache before issuing an external call.
func (g *GoogleDirectionsProvider) GetRoutes(
	ctx context.Context,
	origin string,
	destination string,
	mode string,
) (_ []domain.Route, err error) {
	defer obs.Time(ctx, "directions.GetRoutes")(&err)

	normOrigin := g.normalize(origin)
	normDestination := g.normalize(destination)
	if normOrigin == "" || normDestination == "" {
		return nil, errors.New("get routes: origin and destination must be non-empty")
	}

	mode = g.normalize(mode)
	if mode == "" {
		mode = "driving"
	}

	if g.cache != nil {
		routes, ok, cacheErr := g.cache.Get(ctx, normOrigin, normDestination, mode)
		if cacheErr != nil {
			log.Printf("directions cache read failed: %v", cacheErr)
		} else if ok {
			if g.metrics != nil {
				g.metrics.CacheHits.Inc()
			}
			return routes, nil
		}
		if g.metrics != nil {
			g.metrics.CacheMisses.Inc()
		}
	}

	if g.metrics != nil {
		g.metrics.DirectionsCalls.Inc()
	}

	routes, err := g.fetchRoutes(ctx, normOrigin, normDestination, mode)
	if err != nil {
		if g.metrics != nil {
			g.metrics.DirectionsErrors.Inc()
		}
		return nil, fmt.Errorf("get routes %q -> %q: %w", normOrigin, normDestination, err)
	}

	if g.cache != nil {
		if cacheErr := g.cache.Put(ctx, normOrigin, normDestination, mode, routes); cacheErr != nil {
			log.Printf("directions cache write failed: %v", cacheErr)
		}
	}

	return routes, nil
}
