// Package filter narrows fetched listings before display.
package filter

import (
	"fmt"
	"strings"

	"github.com/dsctl/dsctl/types"
)

// Filter holds the client-side listing filters of the list commands.
type Filter struct {
	states types.StateSet
	tags   map[string]string
}

// New creates a filter. An empty state set and nil tags include everything.
func New(states types.StateSet, tags map[string]string) *Filter {
	return &Filter{states: states, tags: tags}
}

// Apply returns the resources passing every filter.
func (f *Filter) Apply(resources []types.Resource) []types.Resource {
	var out []types.Resource
	for _, r := range resources {
		if f.includes(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f *Filter) includes(r types.Resource) bool {
	if !f.states.Contains(r.LifecycleState) {
		return false
	}
	for key, value := range f.tags {
		if r.FreeformTags[key] != value {
			return false
		}
	}
	return true
}

// ParseTagFlags parses repeated key=value flags into a tag map.
func ParseTagFlags(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	tags := make(map[string]string, len(flags))
	for _, flag := range flags {
		key, value, ok := strings.Cut(flag, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid tag filter %q, expected key=value", flag)
		}
		tags[key] = value
	}
	return tags, nil
}
