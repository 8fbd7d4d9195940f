package cloud

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/pkg/errors"
)

// OCIInstanceService is the interface for all instance lifecycle operations in OCI.
type OCIInstanceService interface {
	GetInstance(ctx context.Context, instanceOCID string) (*core.Instance, error)
	// InstanceAction runs a power action on the instance and returns the OCI request ID.
	InstanceAction(ctx context.Context, instanceOCID string, action core.InstanceActionActionEnum) (string, error)
}

// ociInstanceService is the implementation of OCIInstanceService.
type ociInstanceService struct {
	client core.ComputeClient
}

// NewOCIInstanceService creates a new instance of OCIInstanceService.
func NewOCIInstanceService() (OCIInstanceService, error) {
	client, err := core.NewComputeClientWithConfigurationProvider(common.DefaultConfigProvider())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create OCI Compute client")
	}

	return &ociInstanceService{client: client}, nil
}

// GetInstance returns the instance with the given OCID.
func (svc *ociInstanceService) GetInstance(ctx context.Context, instanceOCID string) (*core.Instance, error) {
	response, err := svc.client.GetInstance(ctx, core.GetInstanceRequest{
		InstanceId: common.String(instanceOCID),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get instance")
	}

	return &response.Instance, nil
}

// InstanceAction runs START, STOP or another power action on the instance.
func (svc *ociInstanceService) InstanceAction(ctx context.Context, instanceOCID string, action core.InstanceActionActionEnum) (string, error) {
	response, err := svc.client.InstanceAction(ctx, core.InstanceActionRequest{
		InstanceId: common.String(instanceOCID),
		Action:     action,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to run %s action on instance", action)
	}

	if response.OpcRequestId == nil {
		return "", nil
	}
	return *response.OpcRequestId, nil
}
