package resolver

import (
	"context"

	"github.com/dsctl/dsctl/types"
)

// ResolveCompartment maps a compartment name or OCID to an OCID. Names
// match exactly and case-sensitively, no fuzzy tiers: compartment names
// are configured values, not interactive input.
func (r *Resolver) ResolveCompartment(ctx context.Context, input string) (string, error) {
	if types.IsOCID(input) {
		return input, nil
	}

	compartments, err := r.dir.ListCompartments(ctx)
	if err != nil {
		return "", err
	}

	var ocids []string
	for _, c := range compartments {
		if c.Name == input {
			ocids = append(ocids, c.OCID)
		}
	}

	switch len(ocids) {
	case 0:
		return "", &CompartmentNotFoundError{Name: input}
	case 1:
		return ocids[0], nil
	default:
		return "", &CompartmentNotUniqueError{Name: input, OCIDs: ocids}
	}
}

// compartmentID resolves the effective compartment: the explicit argument
// when given, else the configured default. The default's resolution is
// memoized for the process lifetime.
func (r *Resolver) compartmentID(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return r.ResolveCompartment(ctx, explicit)
	}

	if r.resolvedCompartment != "" {
		return r.resolvedCompartment, nil
	}
	if r.defaultCompartment == "" {
		return "", ErrMissingCompartment
	}

	ocid, err := r.ResolveCompartment(ctx, r.defaultCompartment)
	if err != nil {
		return "", err
	}
	r.resolvedCompartment = ocid
	return ocid, nil
}
