// Package cache implements the two-tier listing cache: a single-slot
// in-process tier and an on-disk tier keyed by a hash of
// (kind, compartment, lifecycle filter), invalidated by TTL.
package cache

import (
	"context"
	"time"

	"github.com/dsctl/dsctl/telemetry"
	"github.com/dsctl/dsctl/types"
)

// Key identifies one cached listing.
type Key struct {
	Kind          types.Kind
	CompartmentID string
	States        types.StateSet
}

// String returns the canonical key form used for both tiers.
func (k Key) String() string {
	return string(k.Kind) + "|" + k.CompartmentID + "|" + k.States.CacheKey()
}

// Fetcher performs the real directory fetch on a cache miss.
type Fetcher func(ctx context.Context) ([]types.Resource, error)

// entry is the on-disk cache record.
type entry struct {
	Key       string           `json:"key"`
	FetchedAt time.Time        `json:"fetched_at"`
	Resources []types.Resource `json:"resources"`
}

// Listings caches directory listings. It is advisory: concurrent
// invocations may both miss and both fetch, last writer wins on disk.
// Not safe for concurrent use within one process; dsctl is synchronous
// throughout.
type Listings struct {
	dir    string
	ttl    time.Duration
	logger *telemetry.Logger
	tel    *telemetry.Provider
	now    func() time.Time

	// single-slot in-process tier, overwritten wholesale on every miss
	memKey string
	mem    []types.Resource
	memSet bool
}

// New creates a listing cache rooted at dir. A TTL of zero disables
// caching entirely: every Get performs a fresh fetch and touches neither
// tier. tel may be nil.
func New(dir string, ttl time.Duration, logger *telemetry.Logger, tel *telemetry.Provider) *Listings {
	return &Listings{
		dir:    dir,
		ttl:    ttl,
		logger: logger,
		tel:    tel,
		now:    time.Now,
	}
}

// Get returns the listing for key, trying memory, then disk, then fetch.
// Nothing is cached when the fetch fails.
func (c *Listings) Get(ctx context.Context, key Key, fetch Fetcher) ([]types.Resource, error) {
	if c.ttl <= 0 {
		return c.fetchFresh(ctx, key, fetch)
	}

	k := key.String()

	// The in-process slot is valid for the lifetime of the call graph
	// that populated it, no age check.
	if c.memSet && c.memKey == k {
		c.logger.LogCacheHit(ctx, "memory", k)
		c.tel.RecordCacheHit(ctx, "memory")
		return c.mem, nil
	}

	if resources, ok := c.loadDisk(ctx, k); ok {
		c.logger.LogCacheHit(ctx, "disk", k)
		c.tel.RecordCacheHit(ctx, "disk")
		c.store(k, resources)
		return resources, nil
	}

	c.logger.LogCacheMiss(ctx, k)
	c.tel.RecordCacheMiss(ctx)

	resources, err := c.fetchFresh(ctx, key, fetch)
	if err != nil {
		return nil, err
	}

	c.store(k, resources)
	c.writeDisk(ctx, k, resources)
	return resources, nil
}

func (c *Listings) fetchFresh(ctx context.Context, key Key, fetch Fetcher) ([]types.Resource, error) {
	start := time.Now()
	resources, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.tel.RecordRemoteFetch(ctx, string(key.Kind))
	c.logger.LogRemoteFetch(ctx, key.String(), len(resources), float64(time.Since(start).Milliseconds()))
	return resources, nil
}

func (c *Listings) store(key string, resources []types.Resource) {
	c.memKey = key
	c.mem = resources
	c.memSet = true
}
