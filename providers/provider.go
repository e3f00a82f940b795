package providers

import (
	"context"
	"fmt"

	"github.com/dsctl/dsctl/types"
)

// Directory is the read side of the Data Safe control plane: it lists and
// fetches compartments and resources. Implementations paginate internally
// and return fully aggregated results.
type Directory interface {
	ListResources(ctx context.Context, kind types.Kind, compartmentID string, states types.StateSet) ([]types.Resource, error)
	GetResource(ctx context.Context, kind types.Kind, ocid string) (*types.Resource, error)
	ListCompartments(ctx context.Context) ([]types.Compartment, error)
	GetCompartment(ctx context.Context, ocid string) (*types.Compartment, error)
}

// Config holds directory connection settings.
type Config struct {
	ConfigPath  string // OCI config file, empty for the default chain
	Profile     string // profile inside the config file
	Region      string // override region, empty keeps the profile's
	TenancyOCID string // override tenancy, empty reads it from the profile
}

// Factory creates a directory instance.
type Factory func(ctx context.Context, cfg Config) (Directory, error)

// Registry of available directory implementations
var registry = make(map[string]Factory)

// Register registers a new directory factory.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// Get creates a directory instance by name.
func Get(ctx context.Context, name string, cfg Config) (Directory, error) {
	factory, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("directory %s not found", name)
	}
	return factory(ctx, cfg)
}

// Names returns available directory implementation names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// RemoteError wraps a failed directory call with the operation that issued
// it. The underlying platform error keeps its status code and message; no
// retry happens at this layer.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
