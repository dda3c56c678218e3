// Package cache holds the distance cache used in front of the Distance Matrix API.
package cache

import (
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/TonAldo48/matematch-sub001/internal/model"
)

// DefaultTTL is the hard expiry for a cached distance.
const DefaultTTL = 24 * time.Hour

// DefaultSize bounds the number of cached pairs.
const DefaultSize = 4096

// Key identifies a cached distance. Coordinates are rounded to five
// decimals (about 1.1 m) so equivalent lookups share an entry.
type Key struct {
	Origin      model.Coordinates
	Destination model.Coordinates
	Mode        model.TravelMode
}

// NewKey rounds the coordinates and builds a key.
func NewKey(origin, destination model.Coordinates, mode model.TravelMode) Key {
	return Key{Origin: round(origin), Destination: round(destination), Mode: mode}
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%s", k.Origin, k.Destination, k.Mode)
}

func round(c model.Coordinates) model.Coordinates {
	const scale = 1e5
	return model.Coordinates{
		Lat: math.Round(c.Lat*scale) / scale,
		Lng: math.Round(c.Lng*scale) / scale,
	}
}

// DistanceCache is a bounded LRU of distance results with a fixed TTL.
// It is safe for concurrent use.
type DistanceCache struct {
	lru    *expirable.LRU[Key, model.DistanceResult]
	hits   prometheus.Counter
	misses prometheus.Counter
}

// Option configures a DistanceCache.
type Option func(*options)

type options struct {
	size int
	ttl  time.Duration
	reg  prometheus.Registerer
}

// WithSize sets the maximum number of entries. Non-positive values keep the default.
func WithSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.size = n
		}
	}
}

// WithTTL sets the entry lifetime. Non-positive values keep the default.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.ttl = d
		}
	}
}

// WithRegisterer registers hit/miss counters on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.reg = reg }
}

// NewDistanceCache builds a cache. Metrics are only registered when a
// registerer is supplied.
func NewDistanceCache(opts ...Option) (*DistanceCache, error) {
	o := options{size: DefaultSize, ttl: DefaultTTL}
	for _, opt := range opts {
		opt(&o)
	}

	c := &DistanceCache{
		lru: expirable.NewLRU[Key, model.DistanceResult](o.size, nil, o.ttl),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "distance_cache_hits_total",
			Help: "Distance lookups served from cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "distance_cache_misses_total",
			Help: "Distance lookups that missed the cache.",
		}),
	}
	if o.reg != nil {
		for _, col := range []prometheus.Collector{c.hits, c.misses} {
			if err := o.reg.Register(col); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// Get returns a cached result. Expired entries are never returned.
func (c *DistanceCache) Get(k Key) (model.DistanceResult, bool) {
	v, ok := c.lru.Get(k)
	if ok {
		c.hits.Inc()
	} else {
		c.misses.Inc()
	}
	return v, ok
}

// Set stores a result, replacing any previous entry for k and restarting its TTL.
func (c *DistanceCache) Set(k Key, v model.DistanceResult) {
	c.lru.Add(k, v)
}

// Len reports the number of live entries.
func (c *DistanceCache) Len() int {
	return c.lru.Len()
}

// Purge drops every entry.
func (c *DistanceCache) Purge() {
	c.lru.Purge()
}
