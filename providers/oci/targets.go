package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/datasafe"

	"github.com/dsctl/dsctl/types"
)

// listTargets pages through all target databases in a compartment.
// State filtering happens client-side so one unfiltered listing can be
// cached and reused for every filter combination.
func (d *Directory) listTargets(ctx context.Context, compartmentID string, states types.StateSet) ([]types.Resource, error) {
	var resources []types.Resource
	var page *string

	for {
		request := datasafe.ListTargetDatabasesRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		}

		response, err := d.dataSafe.ListTargetDatabases(ctx, request)
		if err != nil {
			return nil, remoteErr("list target databases in "+compartmentID, err)
		}

		for _, item := range response.Items {
			resource := convertTargetSummary(item)
			if !states.Contains(resource.LifecycleState) {
				continue
			}
			resources = append(resources, resource)
		}

		if response.OpcNextPage == nil {
			break
		}
		page = response.OpcNextPage
	}

	return resources, nil
}

func (d *Directory) getTarget(ctx context.Context, ocid string) (*types.Resource, error) {
	response, err := d.dataSafe.GetTargetDatabase(ctx, datasafe.GetTargetDatabaseRequest{
		TargetDatabaseId: common.String(ocid),
	})
	if err != nil {
		return nil, remoteErr("get target database "+ocid, err)
	}

	resource := convertTarget(response.TargetDatabase)
	return &resource, nil
}

func convertTargetSummary(t datasafe.TargetDatabaseSummary) types.Resource {
	return types.Resource{
		OCID:           stringValue(t.Id),
		Kind:           types.KindTarget,
		DisplayName:    stringValue(t.DisplayName),
		Description:    stringValue(t.Description),
		CompartmentID:  stringValue(t.CompartmentId),
		LifecycleState: types.LifecycleState(t.LifecycleState),
		DatabaseType:   string(t.DatabaseType),
		Infrastructure: string(t.InfrastructureType),
		FreeformTags:   t.FreeformTags,
		TimeCreated:    timeValue(t.TimeCreated),
	}
}

// convertTarget maps a full target record. The database details are
// polymorphic in the API model, so only the common attributes are kept.
func convertTarget(t datasafe.TargetDatabase) types.Resource {
	return types.Resource{
		OCID:           stringValue(t.Id),
		Kind:           types.KindTarget,
		DisplayName:    stringValue(t.DisplayName),
		Description:    stringValue(t.Description),
		CompartmentID:  stringValue(t.CompartmentId),
		LifecycleState: types.LifecycleState(t.LifecycleState),
		FreeformTags:   t.FreeformTags,
		TimeCreated:    timeValue(t.TimeCreated),
	}
}
