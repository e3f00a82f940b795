package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dsctl/dsctl/types"
)

// ErrMissingCompartment means no compartment was supplied and no default
// compartment is configured.
var ErrMissingCompartment = errors.New("no compartment given and no default compartment configured")

// NotFoundError means name resolution produced zero candidates at every tier.
type NotFoundError struct {
	Input         string
	Kind          types.Kind
	CompartmentID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching %q in compartment %s", e.Kind, e.Input, e.CompartmentID)
}

// Candidate is one (display name, OCID) pair a substring match produced.
type Candidate struct {
	DisplayName string
	OCID        string
}

// AmbiguousError means substring matching produced more than one candidate.
// Candidates are sorted byte-wise by display name, then by OCID, so the
// operator-facing listing is deterministic.
type AmbiguousError struct {
	Input      string
	Kind       types.Kind
	Candidates []Candidate
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q matches %d %ss:", e.Input, len(e.Candidates), e.Kind)
	for _, c := range e.Candidates {
		fmt.Fprintf(&b, "\n  %s  %s", c.DisplayName, c.OCID)
	}
	return b.String()
}

// CompartmentNotFoundError means no compartment carries the given name.
type CompartmentNotFoundError struct {
	Name string
}

func (e *CompartmentNotFoundError) Error() string {
	return fmt.Sprintf("compartment %q not found in tenancy", e.Name)
}

// CompartmentNotUniqueError means the name appears on several compartments
// in the subtree. Compartment names get no fuzzy matching and no
// disambiguation, the caller must use the OCID.
type CompartmentNotUniqueError struct {
	Name  string
	OCIDs []string
}

func (e *CompartmentNotUniqueError) Error() string {
	return fmt.Sprintf("compartment name %q is not unique in the tenancy (%s); use the OCID",
		e.Name, strings.Join(e.OCIDs, ", "))
}
