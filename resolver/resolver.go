// Package resolver turns human-friendly Data Safe resource names into
// OCIDs using tiered matching over cached compartment listings.
package resolver

import (
	"context"
	"time"

	"github.com/dsctl/dsctl/cache"
	"github.com/dsctl/dsctl/providers"
	"github.com/dsctl/dsctl/telemetry"
	"github.com/dsctl/dsctl/types"
)

// Resolver resolves names against a directory through the listing cache.
// All cache state is owned here and by the injected cache, never global,
// so tests stay isolated.
type Resolver struct {
	dir      providers.Directory
	listings *cache.Listings
	logger   *telemetry.Logger
	tel      *telemetry.Provider

	// default compartment (name or OCID) and its memoized resolution
	defaultCompartment  string
	resolvedCompartment string
}

// New creates a resolver. defaultCompartment may be empty; tel may be nil.
func New(dir providers.Directory, listings *cache.Listings, defaultCompartment string, logger *telemetry.Logger, tel *telemetry.Provider) *Resolver {
	return &Resolver{
		dir:                dir,
		listings:           listings,
		logger:             logger,
		tel:                tel,
		defaultCompartment: defaultCompartment,
	}
}

// ResolveTarget resolves a target database name or OCID.
func (r *Resolver) ResolveTarget(ctx context.Context, input, compartment string) (string, error) {
	return r.resolve(ctx, types.KindTarget, input, compartment)
}

// ResolveConnector resolves an on-prem connector name or OCID.
func (r *Resolver) ResolveConnector(ctx context.Context, input, compartment string) (string, error) {
	return r.resolve(ctx, types.KindConnector, input, compartment)
}

// resolve maps input to exactly one OCID or fails with a disambiguation
// report. OCID inputs pass through verbatim without any cache or remote
// access: existence is validated later by whatever consumes the OCID.
func (r *Resolver) resolve(ctx context.Context, kind types.Kind, input, compartment string) (string, error) {
	if types.IsOCID(input) {
		return input, nil
	}

	start := time.Now()
	ctx, span := r.tel.StartSpan(ctx, "resolve."+string(kind))
	defer span.End()

	compartmentID, err := r.compartmentID(ctx, compartment)
	if err != nil {
		return "", err
	}

	// Always the unfiltered listing, so one cached fetch serves every
	// resolution in this compartment.
	listing, err := r.listings.Get(ctx, cache.Key{Kind: kind, CompartmentID: compartmentID}, func(ctx context.Context) ([]types.Resource, error) {
		return r.dir.ListResources(ctx, kind, compartmentID, types.StateSet{})
	})
	if err != nil {
		return "", err
	}

	resource, tier, candidates := matchName(input, listing)
	if resource == nil {
		if len(candidates) == 0 {
			return "", &NotFoundError{Input: input, Kind: kind, CompartmentID: compartmentID}
		}
		return "", &AmbiguousError{Input: input, Kind: kind, Candidates: candidates}
	}

	if tier == MatchSubstring {
		r.logger.LogFuzzyMatch(ctx, input, resource.DisplayName, resource.OCID)
	}
	r.tel.RecordResolveDuration(ctx, string(kind), time.Since(start))

	return resource.OCID, nil
}

// Lookup resolves input and fetches the full record, for `dsctl show`.
func (r *Resolver) Lookup(ctx context.Context, kind types.Kind, input, compartment string) (*types.Resource, error) {
	ocid, err := r.resolve(ctx, kind, input, compartment)
	if err != nil {
		return nil, err
	}
	return r.dir.GetResource(ctx, kind, ocid)
}

// List returns the cached listing for a compartment, filtered by states.
// The cache key carries the canonical state set, so differently spelled
// but equal filters share one entry.
func (r *Resolver) List(ctx context.Context, kind types.Kind, compartment string, states types.StateSet) ([]types.Resource, error) {
	compartmentID, err := r.compartmentID(ctx, compartment)
	if err != nil {
		return nil, err
	}

	return r.listings.Get(ctx, cache.Key{Kind: kind, CompartmentID: compartmentID, States: states}, func(ctx context.Context) ([]types.Resource, error) {
		return r.dir.ListResources(ctx, kind, compartmentID, states)
	})
}
