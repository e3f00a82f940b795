package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"time"

	"github.com/dsctl/dsctl/types"
)

// path maps a canonical key to its cache file. FNV is enough here: the
// hash only spreads keys across file names, nothing security-relevant.
func (c *Listings) path(key string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return filepath.Join(c.dir, fmt.Sprintf("%016x.json", h.Sum64()))
}

// loadDisk returns the cached listing for key if the file exists and its
// modification time is within TTL. Age exactly at TTL is still valid.
// Unreadable or corrupt files are misses, never errors.
func (c *Listings) loadDisk(ctx context.Context, key string) ([]types.Resource, bool) {
	path := c.path(key)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if c.now().Sub(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is derived from the cache dir
	if err != nil {
		c.logger.LogCacheFileError(ctx, path, err)
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		c.logger.LogCacheFileError(ctx, path, err)
		return nil, false
	}
	if e.Key != key {
		// Hash collision between two keys; treat as a miss.
		return nil, false
	}

	return e.Resources, true
}

// writeDisk replaces the cache file for key. Failures are logged and
// swallowed: the cache is advisory, the caller already has the listing.
func (c *Listings) writeDisk(ctx context.Context, key string, resources []types.Resource) {
	if err := os.MkdirAll(c.dir, 0750); err != nil {
		c.logger.LogCacheFileError(ctx, c.dir, err)
		return
	}

	data, err := json.Marshal(entry{
		Key:       key,
		FetchedAt: c.now(),
		Resources: resources,
	})
	if err != nil {
		c.logger.LogCacheFileError(ctx, c.path(key), err)
		return
	}

	if err := os.WriteFile(c.path(key), data, 0600); err != nil {
		c.logger.LogCacheFileError(ctx, c.path(key), err)
	}
}

// FileStatus describes one cache file for `dsctl cache status`.
type FileStatus struct {
	Path  string
	Size  int64
	Age   time.Duration
	Valid bool
	Key   string
}

// Status reports every cache file in the directory.
func (c *Listings) Status() ([]FileStatus, error) {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache dir: %w", err)
	}

	var statuses []FileStatus
	for _, dirEntry := range entries {
		if dirEntry.IsDir() || filepath.Ext(dirEntry.Name()) != ".json" {
			continue
		}
		info, err := dirEntry.Info()
		if err != nil {
			continue
		}

		age := c.now().Sub(info.ModTime())
		status := FileStatus{
			Path:  filepath.Join(c.dir, dirEntry.Name()),
			Size:  info.Size(),
			Age:   age,
			Valid: c.ttl > 0 && age <= c.ttl,
		}

		if data, err := os.ReadFile(status.Path); err == nil { // #nosec G304 -- path is derived from the cache dir
			var e entry
			if json.Unmarshal(data, &e) == nil {
				status.Key = e.Key
			}
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// Purge removes every cache file and clears the in-process slot.
func (c *Listings) Purge() error {
	c.memKey = ""
	c.mem = nil
	c.memSet = false

	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read cache dir: %w", err)
	}

	for _, dirEntry := range entries {
		if dirEntry.IsDir() || filepath.Ext(dirEntry.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, dirEntry.Name())); err != nil {
			return fmt.Errorf("remove cache file: %w", err)
		}
	}

	return nil
}
