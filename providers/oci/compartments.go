package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/identity"

	"github.com/dsctl/dsctl/types"
)

// ListCompartments returns the tenancy root plus every active compartment
// in the subtree.
func (d *Directory) ListCompartments(ctx context.Context) ([]types.Compartment, error) {
	compartments := make([]types.Compartment, 0)

	root, err := d.identity.GetCompartment(ctx, identity.GetCompartmentRequest{
		CompartmentId: common.String(d.tenancyID),
	})
	if err != nil {
		return nil, remoteErr("get tenancy root compartment "+d.tenancyID, err)
	}
	compartments = append(compartments, convertCompartment(root.Compartment))

	var page *string
	for {
		request := identity.ListCompartmentsRequest{
			CompartmentId:          common.String(d.tenancyID),
			CompartmentIdInSubtree: common.Bool(true),
			LifecycleState:         identity.CompartmentLifecycleStateActive,
			Page:                   page,
		}

		response, err := d.identity.ListCompartments(ctx, request)
		if err != nil {
			return nil, remoteErr("list compartments in tenancy "+d.tenancyID, err)
		}

		for i := range response.Items {
			compartments = append(compartments, convertCompartment(response.Items[i]))
		}

		if response.OpcNextPage == nil {
			break
		}
		page = response.OpcNextPage
	}

	return compartments, nil
}

// GetCompartment fetches one compartment by OCID.
func (d *Directory) GetCompartment(ctx context.Context, ocid string) (*types.Compartment, error) {
	response, err := d.identity.GetCompartment(ctx, identity.GetCompartmentRequest{
		CompartmentId: common.String(ocid),
	})
	if err != nil {
		return nil, remoteErr("get compartment "+ocid, err)
	}

	compartment := convertCompartment(response.Compartment)
	return &compartment, nil
}

func convertCompartment(c identity.Compartment) types.Compartment {
	return types.Compartment{
		OCID:           stringValue(c.Id),
		Name:           stringValue(c.Name),
		Description:    stringValue(c.Description),
		LifecycleState: types.LifecycleState(c.LifecycleState),
	}
}
