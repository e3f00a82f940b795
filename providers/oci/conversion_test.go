package oci

import (
	"testing"
	"time"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/datasafe"
	"github.com/oracle/oci-go-sdk/v65/identity"
	"github.com/stretchr/testify/assert"

	"github.com/dsctl/dsctl/types"
)

func TestConvertTargetSummary(t *testing.T) {
	created := common.SDKTime{Time: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}

	summary := datasafe.TargetDatabaseSummary{
		Id:             common.String("ocid1.datasafetargetdatabase.oc1..t1"),
		DisplayName:    common.String("Prod-DB1"),
		Description:    common.String("primary"),
		CompartmentId:  common.String("ocid1.compartment.oc1..c1"),
		LifecycleState: datasafe.TargetDatabaseLifecycleStateActive,
		DatabaseType:   datasafe.DatabaseTypeDatabaseCloudService,
		TimeCreated:    &created,
		FreeformTags:   map[string]string{"env": "prod"},
	}

	resource := convertTargetSummary(summary)

	assert.Equal(t, "ocid1.datasafetargetdatabase.oc1..t1", resource.OCID)
	assert.Equal(t, types.KindTarget, resource.Kind)
	assert.Equal(t, "Prod-DB1", resource.DisplayName)
	assert.Equal(t, types.StateActive, resource.LifecycleState)
	assert.Equal(t, "prod", resource.FreeformTags["env"])
	assert.Equal(t, created.Time, resource.TimeCreated)
}

func TestConvertTargetSummary_NilFields(t *testing.T) {
	// Records straight off the wire can carry nil pointers everywhere.
	resource := convertTargetSummary(datasafe.TargetDatabaseSummary{})

	assert.Equal(t, "", resource.OCID)
	assert.Equal(t, "", resource.DisplayName)
	assert.True(t, resource.TimeCreated.IsZero())
}

func TestConvertConnectorSummary(t *testing.T) {
	summary := datasafe.OnPremConnectorSummary{
		Id:             common.String("ocid1.datasafeonpremconnector.oc1..k1"),
		DisplayName:    common.String("dc1-connector"),
		CompartmentId:  common.String("ocid1.compartment.oc1..c1"),
		LifecycleState: datasafe.LifecycleStateActive,
	}

	resource := convertConnectorSummary(summary)

	assert.Equal(t, types.KindConnector, resource.Kind)
	assert.Equal(t, "dc1-connector", resource.DisplayName)
	assert.Equal(t, types.StateActive, resource.LifecycleState)
}

func TestConvertCompartment(t *testing.T) {
	compartment := convertCompartment(identity.Compartment{
		Id:             common.String("ocid1.compartment.oc1..c1"),
		Name:           common.String("security"),
		LifecycleState: identity.CompartmentLifecycleStateActive,
	})

	assert.Equal(t, "ocid1.compartment.oc1..c1", compartment.OCID)
	assert.Equal(t, "security", compartment.Name)
	assert.Equal(t, types.StateActive, compartment.LifecycleState)
}
