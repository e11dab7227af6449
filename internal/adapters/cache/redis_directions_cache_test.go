package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"traffic-route-service/internal/domain"
)

func newTestRedisCache(t *testing.T) (*RedisDirectionsCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisDirectionsCache(client), mr
}

func sampleRoutes() []domain.Route {
	trafficSeconds := 950
	return []domain.Route{
		{
			Steps: []domain.RouteStep{
				{
					Instruction:     "Turn right onto Main St",
					DistanceText:    "1.0 km",
					DurationText:    "3 mins",
					DistanceMeters:  1000,
					DurationSeconds: 180,
				},
			},
			TotalDurationText:      "14 mins",
			TotalDurationSeconds:   840,
			TotalDistanceText:      "6.2 km",
			Polyline:               "abc123",
			TrafficDurationSeconds: &trafficSeconds,
		},
	}
}

func TestRedisDirectionsCacheRoundTrip(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "Downtown San Diego", "La Jolla", "driving", sampleRoutes()); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	routes, ok, err := c.Get(ctx, "downtown  san diego", "La Jolla", "driving")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}

	if len(routes) != 1 || len(routes[0].Steps) != 1 {
		t.Fatalf("unexpected payload shape: %+v", routes)
	}
	if routes[0].Steps[0].Instruction != "Turn right onto Main St" {
		t.Errorf("instruction = %q", routes[0].Steps[0].Instruction)
	}
	if routes[0].TrafficDurationSeconds == nil || *routes[0].TrafficDurationSeconds != 950 {
		t.Errorf("traffic duration not preserved: %v", routes[0].TrafficDurationSeconds)
	}
}

func TestRedisDirectionsCacheMiss(t *testing.T) {
	c, _ := newTestRedisCache(t)

	_, ok, err := c.Get(context.Background(), "A", "B", "driving")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("expected miss for unseeded key")
	}
}

func TestRedisDirectionsCacheExpiry(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "A", "B", "driving", sampleRoutes()); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	mr.FastForward(DirectionsTTL + time.Second)

	_, ok, err := c.Get(ctx, "A", "B", "driving")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("expected entry to expire after TTL")
	}
}
