package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/dsctl/dsctl/types"
)

// MockDirectory for testing
type MockDirectory struct {
	resources    []types.Resource
	compartments []types.Compartment
}

func (m *MockDirectory) ListResources(ctx context.Context, kind types.Kind, compartmentID string, states types.StateSet) ([]types.Resource, error) {
	var result []types.Resource
	for _, r := range m.resources {
		if r.Kind != kind || r.CompartmentID != compartmentID {
			continue
		}
		if !states.Contains(r.LifecycleState) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (m *MockDirectory) GetResource(ctx context.Context, kind types.Kind, ocid string) (*types.Resource, error) {
	for _, r := range m.resources {
		if r.Kind == kind && r.OCID == ocid {
			return &r, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *MockDirectory) ListCompartments(ctx context.Context) ([]types.Compartment, error) {
	return m.compartments, nil
}

func (m *MockDirectory) GetCompartment(ctx context.Context, ocid string) (*types.Compartment, error) {
	for _, c := range m.compartments {
		if c.OCID == ocid {
			return &c, nil
		}
	}
	return nil, errors.New("not found")
}

func TestDirectoryInterface(t *testing.T) {
	// Ensure MockDirectory implements Directory
	var _ Directory = (*MockDirectory)(nil)

	dir := &MockDirectory{
		resources: []types.Resource{
			{OCID: "ocid1.datasafetargetdatabase.oc1..t1", Kind: types.KindTarget, CompartmentID: "ocid1.compartment.oc1..c1", LifecycleState: types.StateActive},
			{OCID: "ocid1.datasafeonpremconnector.oc1..k1", Kind: types.KindConnector, CompartmentID: "ocid1.compartment.oc1..c1", LifecycleState: types.StateActive},
		},
	}

	ctx := context.Background()
	resources, err := dir.ListResources(ctx, types.KindTarget, "ocid1.compartment.oc1..c1", types.StateSet{})
	if err != nil {
		t.Fatalf("ListResources() error = %v", err)
	}
	if len(resources) != 1 {
		t.Errorf("ListResources() returned %d resources, want 1", len(resources))
	}
}

func TestDirectoryRegistry(t *testing.T) {
	// Register a mock directory
	Register("test", func(ctx context.Context, cfg Config) (Directory, error) {
		return &MockDirectory{}, nil
	})

	// Get the directory
	ctx := context.Background()
	dir, err := Get(ctx, "test", Config{})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if dir == nil {
		t.Fatal("Get() returned nil directory")
	}

	// Try to get a non-existent implementation
	_, err = Get(ctx, "nonexistent", Config{})
	if err == nil {
		t.Error("Get() should error for non-existent directory")
	}
}

func TestRemoteErrorUnwrap(t *testing.T) {
	inner := errors.New("service returned 404")
	err := &RemoteError{Op: "list target databases", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("RemoteError should unwrap to the underlying error")
	}
	if err.Error() != "list target databases: service returned 404" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
