// Package oci implements the Data Safe directory against the OCI API.
package oci

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/datasafe"
	"github.com/oracle/oci-go-sdk/v65/identity"

	"github.com/dsctl/dsctl/providers"
	"github.com/dsctl/dsctl/types"
)

func init() {
	// Register the OCI directory factory
	providers.Register("oci", NewDirectoryFactory)
}

// NewDirectoryFactory adapts NewDirectory to the registry signature.
func NewDirectoryFactory(ctx context.Context, cfg providers.Config) (providers.Directory, error) {
	return NewDirectory(ctx, cfg)
}

// Directory implements providers.Directory using the OCI SDK.
type Directory struct {
	dataSafe  datasafe.DataSafeClient
	identity  identity.IdentityClient
	tenancyID string
}

// NewDirectory builds OCI clients from the standard config chain
// (config file + profile, or the SDK's default provider).
func NewDirectory(ctx context.Context, cfg providers.Config) (*Directory, error) {
	configProvider := configurationProvider(cfg)

	dataSafeClient, err := datasafe.NewDataSafeClientWithConfigurationProvider(configProvider)
	if err != nil {
		return nil, fmt.Errorf("create data safe client: %w", err)
	}
	identityClient, err := identity.NewIdentityClientWithConfigurationProvider(configProvider)
	if err != nil {
		return nil, fmt.Errorf("create identity client: %w", err)
	}

	if cfg.Region != "" {
		dataSafeClient.SetRegion(cfg.Region)
		identityClient.SetRegion(cfg.Region)
	}

	tenancyID := cfg.TenancyOCID
	if tenancyID == "" {
		tenancyID, err = configProvider.TenancyOCID()
		if err != nil {
			return nil, fmt.Errorf("read tenancy from config: %w", err)
		}
	}

	return &Directory{
		dataSafe:  dataSafeClient,
		identity:  identityClient,
		tenancyID: tenancyID,
	}, nil
}

func configurationProvider(cfg providers.Config) common.ConfigurationProvider {
	if cfg.ConfigPath != "" {
		return common.CustomProfileConfigProvider(cfg.ConfigPath, cfg.Profile)
	}
	if cfg.Profile != "" {
		return common.CustomProfileConfigProvider("", cfg.Profile)
	}
	return common.DefaultConfigProvider()
}

// TenancyID returns the tenancy the directory is bound to.
func (d *Directory) TenancyID() string {
	return d.tenancyID
}

// ListResources lists targets or connectors in a compartment, filtered by
// lifecycle state. Pagination is handled here; the caller sees one
// aggregated listing.
func (d *Directory) ListResources(ctx context.Context, kind types.Kind, compartmentID string, states types.StateSet) ([]types.Resource, error) {
	switch kind {
	case types.KindTarget:
		return d.listTargets(ctx, compartmentID, states)
	case types.KindConnector:
		return d.listConnectors(ctx, compartmentID, states)
	default:
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
}

// GetResource fetches a single resource by OCID.
func (d *Directory) GetResource(ctx context.Context, kind types.Kind, ocid string) (*types.Resource, error) {
	switch kind {
	case types.KindTarget:
		return d.getTarget(ctx, ocid)
	case types.KindConnector:
		return d.getConnector(ctx, ocid)
	default:
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
}

func remoteErr(op string, err error) error {
	return &providers.RemoteError{Op: op, Err: err}
}
