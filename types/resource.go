package types

import "time"

// Kind identifies what sort of Data Safe resource a record describes.
type Kind string

const (
	KindTarget    Kind = "target"
	KindConnector Kind = "connector"
)

// Resource is an immutable snapshot of a Data Safe resource as returned
// by the directory. The cache may hold it for at most its TTL.
type Resource struct {
	OCID           string            `json:"ocid"`
	Kind           Kind              `json:"kind"`
	DisplayName    string            `json:"display_name"`
	Description    string            `json:"description,omitempty"`
	CompartmentID  string            `json:"compartment_id"`
	LifecycleState LifecycleState    `json:"lifecycle_state"`
	DatabaseType   string            `json:"database_type,omitempty"`
	Infrastructure string            `json:"infrastructure_type,omitempty"`
	FreeformTags   map[string]string `json:"freeform_tags,omitempty"`
	TimeCreated    time.Time         `json:"time_created"`
}

// Compartment is an administrative grouping under which resources live.
type Compartment struct {
	OCID           string         `json:"ocid"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	LifecycleState LifecycleState `json:"lifecycle_state"`
}

// BuildResourceMap converts a slice of resources to a map for lookup by OCID.
func BuildResourceMap(resources []Resource) map[string]Resource {
	resourceMap := make(map[string]Resource)
	for _, resource := range resources {
		resourceMap[resource.OCID] = resource
	}
	return resourceMap
}
