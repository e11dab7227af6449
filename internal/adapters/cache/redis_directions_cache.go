package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"traffic-route-service/internal/domain"
	"traffic-route-service/internal/platform/obs"
)

// DirectionsTTL bounds how long a traffic-aware directions response is
// considered fresh.
const DirectionsTTL = 5 * time.Minute

// RedisDirectionsCache is a Redis-backed cache for directions responses.
// Keys carry normalized origin/destination/mode; payloads are JSON-encoded
// domain routes with a short TTL.
type RedisDirectionsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDirectionsCache(client *redis.Client) *RedisDirectionsCache {
	return &RedisDirectionsCache{client: client, ttl: DirectionsTTL}
}

func directionsKey(origin, destination, mode string) string {
	norm := func(s string) string {
		return strings.ToLower(strings.Join(strings.Fields(s), " "))
	}
	return "directions:" + norm(origin) + "|" + norm(destination) + "|" + norm(mode)
}

// Fetch cached routes for one lookup key.
func (c *RedisDirectionsCache) Get(
	ctx context.Context,
	origin string,
	destination string,
	mode string,
) (_ []domain.Route, _ bool, err error) {
	defer obs.Time(ctx, "directions.cache.Get")(&err)

	if c.client == nil {
		return nil, false, errors.New("directions cache: redis client is nil")
	}

	if origin == "" || destination == "" {
		return nil, false, errors.New("get directions cache: origin and destination must not be empty")
	}

	payload, err := c.client.Get(ctx, directionsKey(origin, destination, mode)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get directions cache: %w", err)
	}

	var routes []domain.Route
	if err := json.Unmarshal(payload, &routes); err != nil {
		return nil, false, fmt.Errorf("get directions cache: decode payload: %w", err)
	}

	return routes, true, nil
}

// Store routes for one lookup key with the cache TTL.
func (c *RedisDirectionsCache) Put(
	ctx context.Context,
	origin string,
	destination string,
	mode string,
	routes []domain.Route,
) error {
	if c.client == nil {
		return errors.New("directions cache: redis client is nil")
	}

	if origin == "" || destination == "" {
		return errors.New("insert directions cache: origin and destination must not be empty")
	}

	payload, err := json.Marshal(routes)
	if err != nil {
		return fmt.Errorf("insert directions cache: encode payload: %w", err)
	}

	if err := c.client.Set(ctx, directionsKey(origin, destination, mode), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert directions cache: %w", err)
	}

	return nil
}
