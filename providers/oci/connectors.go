package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/datasafe"

	"github.com/dsctl/dsctl/types"
)

func (d *Directory) listConnectors(ctx context.Context, compartmentID string, states types.StateSet) ([]types.Resource, error) {
	var resources []types.Resource
	var page *string

	for {
		request := datasafe.ListOnPremConnectorsRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		}

		response, err := d.dataSafe.ListOnPremConnectors(ctx, request)
		if err != nil {
			return nil, remoteErr("list on-prem connectors in "+compartmentID, err)
		}

		for _, item := range response.Items {
			resource := convertConnectorSummary(item)
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

func (d *Directory) getConnector(ctx context.Context, ocid string) (*types.Resource, error) {
	response, err := d.dataSafe.GetOnPremConnector(ctx, datasafe.GetOnPremConnectorRequest{
		OnPremConnectorId: common.String(ocid),
	})
	if err != nil {
		return nil, remoteErr("get on-prem connector "+ocid, err)
	}

	resource := convertConnector(response.OnPremConnector)
	return &resource, nil
}

func convertConnectorSummary(c datasafe.OnPremConnectorSummary) types.Resource {
	return types.Resource{
		OCID:           stringValue(c.Id),
		Kind:           types.KindConnector,
		DisplayName:    stringValue(c.DisplayName),
		Description:    stringValue(c.Description),
		CompartmentID:  stringValue(c.CompartmentId),
		LifecycleState: types.LifecycleState(c.LifecycleState),
		FreeformTags:   c.FreeformTags,
		TimeCreated:    timeValue(c.TimeCreated),
	}
}

func convertConnector(c datasafe.OnPremConnector) types.Resource {
	return types.Resource{
		OCID:           stringValue(c.Id),
		Kind:           types.KindConnector,
		DisplayName:    stringValue(c.DisplayName),
		Description:    stringValue(c.Description),
		CompartmentID:  stringValue(c.CompartmentId),
		LifecycleState: types.LifecycleState(c.LifecycleState),
		FreeformTags:   c.FreeformTags,
		TimeCreated:    timeValue(c.TimeCreated),
	}
}
