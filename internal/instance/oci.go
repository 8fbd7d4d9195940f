package instance

import (
	"context"

	"github.com/doitintl/vmcycle/internal/cloud"
	"github.com/doitintl/vmcycle/internal/types"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/ptr"
)

var ociStatuses = map[core.InstanceLifecycleStateEnum]types.InstanceStatus{
	core.InstanceLifecycleStateProvisioning:  types.StatusProvisioning,
	core.InstanceLifecycleStateStarting:      types.StatusStaging,
	core.InstanceLifecycleStateRunning:       types.StatusRunning,
	core.InstanceLifecycleStateMoving:        types.StatusRepairing,
	core.InstanceLifecycleStateCreatingImage: types.StatusRunning,
	core.InstanceLifecycleStateStopping:      types.StatusStopping,
	core.InstanceLifecycleStateStopped:       types.StatusTerminated,
	core.InstanceLifecycleStateTerminating:   types.StatusUnknown,
	core.InstanceLifecycleStateTerminated:    types.StatusUnknown,
}

// ociController is a Controller implementation for Oracle Cloud Infrastructure.
type ociController struct {
	logger      *logrus.Entry
	instanceSvc cloud.OCIInstanceService
}

// NewOCIController creates a new Controller for Oracle Cloud Infrastructure.
func NewOCIController(_ context.Context, logger *logrus.Entry) (Controller, error) {
	instanceSvc, err := cloud.NewOCIInstanceService()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create compute service for OCI")
	}

	return &ociController{
		logger:      logger,
		instanceSvc: instanceSvc,
	}, nil
}

// Start runs the START action on the instance (ref.Name is the instance OCID).
func (c *ociController) Start(ctx context.Context, ref types.InstanceRef) (string, error) {
	return c.action(ctx, ref, core.InstanceActionActionStart)
}

// Stop runs the STOP action on the instance (ref.Name is the instance OCID).
func (c *ociController) Stop(ctx context.Context, ref types.InstanceRef) (string, error) {
	return c.action(ctx, ref, core.InstanceActionActionStop)
}

func (c *ociController) action(ctx context.Context, ref types.InstanceRef, action core.InstanceActionActionEnum) (string, error) {
	c.logger.WithFields(logrus.Fields{
		"compartmentOCID": ref.Project,
		"instanceOCID":    ref.Name,
		"action":          action,
	}).Debug("running instance action")

	requestID, err := c.instanceSvc.InstanceAction(ctx, ref.Name, action)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	return requestID, nil
}

// Status returns the lifecycle state of the instance in GCE vocabulary.
// The instance must belong to the compartment in ref.Project.
func (c *ociController) Status(ctx context.Context, ref types.InstanceRef) (types.InstanceStatus, error) {
	instance, err := c.instanceSvc.GetInstance(ctx, ref.Name)
	if err != nil {
		return types.StatusUnknown, errors.Wrapf(err, "failed to get instance %s", ref.Name)
	}
	if compartment := ptr.Deref(instance.CompartmentId, ""); compartment != ref.Project {
		return types.StatusUnknown, errors.Errorf("instance %s belongs to compartment %s, not %s", ref.Name, compartment, ref.Project)
	}
	if status, ok := ociStatuses[instance.LifecycleState]; ok {
		return status, nil
	}
	return types.StatusUnknown, nil
}
