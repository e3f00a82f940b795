package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsctl/dsctl/telemetry"
	"github.com/dsctl/dsctl/types"
)

func testLogger() *telemetry.Logger {
	return telemetry.NewLoggerTo(os.Stderr, "error")
}

func testKey() Key {
	return Key{Kind: types.KindTarget, CompartmentID: "ocid1.compartment.oc1..c1"}
}

func testListing() []types.Resource {
	return []types.Resource{
		{OCID: "ocid1.datasafetargetdatabase.oc1..t1", Kind: types.KindTarget, DisplayName: "Prod-DB1", LifecycleState: types.StateActive},
		{OCID: "ocid1.datasafetargetdatabase.oc1..t2", Kind: types.KindTarget, DisplayName: "Test-DB1", LifecycleState: types.StateInactive},
	}
}

// countingFetcher returns a fixed listing and counts invocations.
func countingFetcher(listing []types.Resource, calls *int) Fetcher {
	return func(ctx context.Context) ([]types.Resource, error) {
		*calls++
		return listing, nil
	}
}

func TestGet_SecondCallServedFromMemory(t *testing.T) {
	c := New(t.TempDir(), 300*time.Second, testLogger(), nil)

	calls := 0
	fetch := countingFetcher(testListing(), &calls)

	first, err := c.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err)
	second, err := c.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second call must be served from cache")
	assert.Equal(t, first, second)
}

func TestGet_DiskTierSurvivesProcessRestart(t *testing.T) {
	dir := t.TempDir()
	calls := 0
	fetch := countingFetcher(testListing(), &calls)

	c1 := New(dir, 300*time.Second, testLogger(), nil)
	_, err := c1.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err)

	// A fresh instance simulates a new invocation of the tool.
	c2 := New(dir, 300*time.Second, testLogger(), nil)
	listing, err := c2.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "disk tier should serve the second process")
	assert.Len(t, listing, 2)
}

func TestGet_TTLBoundary(t *testing.T) {
	dir := t.TempDir()
	ttl := 300 * time.Second
	calls := 0
	fetch := countingFetcher(testListing(), &calls)

	c := New(dir, ttl, testLogger(), nil)
	_, err := c.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	path := c.path(testKey().String())

	fileTime := time.Now().Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, fileTime, fileTime))

	// Age exactly TTL: still valid.
	fresh := New(dir, ttl, testLogger(), nil)
	fresh.now = func() time.Time { return fileTime.Add(ttl) }
	_, err = fresh.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "file aged exactly TTL must still be valid")

	// One second past TTL: expired, refetch.
	expired := New(dir, ttl, testLogger(), nil)
	expired.now = func() time.Time { return fileTime.Add(ttl + time.Second) }
	_, err = expired.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "file past TTL must trigger a refetch")
}

func TestGet_ZeroTTLDisablesCaching(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, 0, testLogger(), nil)

	calls := 0
	fetch := countingFetcher(testListing(), &calls)

	_, err := c.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err)
	_, err = c.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err)

	assert.Equal(t, 2, calls, "TTL=0 must fetch every time")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "TTL=0 must not write cache files")
}

func TestGet_DifferentKeysDoNotCollide(t *testing.T) {
	c := New(t.TempDir(), 300*time.Second, testLogger(), nil)

	targetCalls := 0
	connectorCalls := 0

	_, err := c.Get(context.Background(), testKey(), countingFetcher(testListing(), &targetCalls))
	require.NoError(t, err)

	connectorKey := Key{Kind: types.KindConnector, CompartmentID: "ocid1.compartment.oc1..c1"}
	_, err = c.Get(context.Background(), connectorKey, countingFetcher(nil, &connectorCalls))
	require.NoError(t, err)

	assert.Equal(t, 1, targetCalls)
	assert.Equal(t, 1, connectorCalls, "a different key must not hit the other key's entry")
}

func TestGet_StateFilterIsPartOfKey(t *testing.T) {
	c := New(t.TempDir(), 300*time.Second, testLogger(), nil)

	calls := 0
	fetch := countingFetcher(testListing(), &calls)

	states, err := types.NewStateSet("ACTIVE")
	require.NoError(t, err)

	_, err = c.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err)

	filtered := Key{Kind: types.KindTarget, CompartmentID: "ocid1.compartment.oc1..c1", States: states}
	_, err = c.Get(context.Background(), filtered, fetch)
	require.NoError(t, err)

	assert.Equal(t, 2, calls, "filtered and unfiltered listings are distinct entries")
}

func TestGet_CorruptFileTreatedAsMiss(t *testing.T) {
	dir := t.TempDir()
	calls := 0
	fetch := countingFetcher(testListing(), &calls)

	c := New(dir, 300*time.Second, testLogger(), nil)
	_, err := c.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err)

	path := c.path(testKey().String())
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	fresh := New(dir, 300*time.Second, testLogger(), nil)
	listing, err := fresh.Get(context.Background(), testKey(), fetch)
	require.NoError(t, err, "corruption must not surface as an error")
	assert.Equal(t, 2, calls)
	assert.Len(t, listing, 2)
}

func TestGet_FetchErrorNotCached(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, 300*time.Second, testLogger(), nil)

	calls := 0
	failing := func(ctx context.Context) ([]types.Resource, error) {
		calls++
		return nil, assert.AnError
	}

	_, err := c.Get(context.Background(), testKey(), failing)
	require.Error(t, err)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries, "nothing may be cached on failure")

	_, err = c.Get(context.Background(), testKey(), failing)
	require.Error(t, err)
	assert.Equal(t, 2, calls, "failed fetch must not populate any tier")
}

func TestStatusAndPurge(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, 300*time.Second, testLogger(), nil)

	calls := 0
	_, err := c.Get(context.Background(), testKey(), countingFetcher(testListing(), &calls))
	require.NoError(t, err)

	statuses, err := c.Status()
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Valid)
	assert.Equal(t, testKey().String(), statuses[0].Key)
	assert.Greater(t, statuses[0].Size, int64(0))

	require.NoError(t, c.Purge())

	statuses, err = c.Status()
	require.NoError(t, err)
	assert.Empty(t, statuses)

	// Purged memory slot too: next Get fetches again.
	_, err = c.Get(context.Background(), testKey(), countingFetcher(testListing(), &calls))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestStatus_MissingDirIsEmpty(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "never-created"), 300*time.Second, testLogger(), nil)

	statuses, err := c.Status()
	require.NoError(t, err)
	assert.Empty(t, statuses)
	assert.NoError(t, c.Purge())
}
