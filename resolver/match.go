package resolver

import (
	"sort"
	"strings"

	"github.com/dsctl/dsctl/types"
)

// MatchTier indicates which matching tier resolved a name.
type MatchTier int

const (
	MatchExact MatchTier = iota
	MatchFold
	MatchSubstring
)

func (t MatchTier) String() string {
	switch t {
	case MatchExact:
		return "exact"
	case MatchFold:
		return "case-insensitive"
	case MatchSubstring:
		return "substring"
	default:
		return "unknown"
	}
}

// matchName applies the three matching tiers against a listing. Records
// without a display name never participate. Tiers 1 and 2 only resolve on
// a unique hit; duplicates fall through to tier 3 where the full candidate
// set is reported.
func matchName(input string, listing []types.Resource) (*types.Resource, MatchTier, []Candidate) {
	// Tier 1: exact, case-sensitive
	if r := uniqueMatch(listing, func(name string) bool {
		return name == input
	}); r != nil {
		return r, MatchExact, nil
	}

	// Tier 2: exact, case-insensitive
	if r := uniqueMatch(listing, func(name string) bool {
		return strings.EqualFold(name, input)
	}); r != nil {
		return r, MatchFold, nil
	}

	// Tier 3: case-insensitive substring, collecting every candidate
	lowered := strings.ToLower(input)
	var candidates []Candidate
	var last *types.Resource
	for i := range listing {
		r := &listing[i]
		if r.DisplayName == "" {
			continue
		}
		if strings.Contains(strings.ToLower(r.DisplayName), lowered) {
			candidates = append(candidates, Candidate{DisplayName: r.DisplayName, OCID: r.OCID})
			last = r
		}
	}

	if len(candidates) == 1 {
		return last, MatchSubstring, candidates
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DisplayName != candidates[j].DisplayName {
			return candidates[i].DisplayName < candidates[j].DisplayName
		}
		return candidates[i].OCID < candidates[j].OCID
	})
	return nil, MatchSubstring, candidates
}

func uniqueMatch(listing []types.Resource, match func(name string) bool) *types.Resource {
	var found *types.Resource
	for i := range listing {
		r := &listing[i]
		if r.DisplayName == "" {
			continue
		}
		if match(r.DisplayName) {
			if found != nil {
				return nil // not unique, fall through to the next tier
			}
			found = r
		}
	}
	return found
}
