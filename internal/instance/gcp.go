package instance

import (
	"context"
	"fmt"
	"strings"

	"github.com/doitintl/vmcycle/internal/cloud"
	"github.com/doitintl/vmcycle/internal/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/compute/v1"
)

const (
	operationDone = "DONE" // operation status DONE
)

var gcpStatuses = map[string]types.InstanceStatus{
	"PROVISIONING": types.StatusProvisioning,
	"STAGING":      types.StatusStaging,
	"RUNNING":      types.StatusRunning,
	"STOPPING":     types.StatusStopping,
	"SUSPENDING":   types.StatusSuspending,
	"SUSPENDED":    types.StatusSuspended,
	"REPAIRING":    types.StatusRepairing,
	"TERMINATED":   types.StatusTerminated,
}

type gcpController struct {
	instances  cloud.InstanceService
	operations cloud.ZoneOperations
	logger     *logrus.Entry
}

// OperationError is returned when a zonal operation finished with errors.
type OperationError struct {
	name string
	err  *compute.OperationError
}

func newOperationError(name string, err *compute.OperationError) *OperationError {
	return &OperationError{name: name, err: err}
}

func joinErrorMessages(operationError *compute.OperationError) string {
	if operationError == nil || len(operationError.Errors) == 0 {
		return ""
	}
	messages := make([]string, 0, len(operationError.Errors))
	for _, errorItem := range operationError.Errors {
		messages = append(messages, errorItem.Message)
	}
	return strings.Join(messages, ", ")
}

func (e *OperationError) Error() string {
	if e.err == nil {
		return ""
	}
	return fmt.Sprintf("operation %s finished with errors: %v", e.name, joinErrorMessages(e.err))
}

func NewGCPController(ctx context.Context, logger *logrus.Entry) (Controller, error) {
	// initialize Google Cloud client with application default credentials
	client, err := compute.NewService(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Google Cloud client")
	}

	return &gcpController{
		instances:  cloud.NewInstanceService(client),
		operations: cloud.NewZoneOperations(client),
		logger:     logger,
	}, nil
}

func (c *gcpController) Start(ctx context.Context, ref types.InstanceRef) (string, error) {
	op, err := c.instances.Start(ctx, ref.Project, ref.Zone, ref.Name)
	if err != nil {
		return "", errors.Wrapf(err, "failed to start instance %s", ref.Name)
	}
	return operationName(op), nil
}

func (c *gcpController) Stop(ctx context.Context, ref types.InstanceRef) (string, error) {
	op, err := c.instances.Stop(ctx, ref.Project, ref.Zone, ref.Name)
	if err != nil {
		return "", errors.Wrapf(err, "failed to stop instance %s", ref.Name)
	}
	return operationName(op), nil
}

func (c *gcpController) Status(ctx context.Context, ref types.InstanceRef) (types.InstanceStatus, error) {
	instance, err := c.instances.Get(ctx, ref.Project, ref.Zone, ref.Name)
	if err != nil {
		return types.StatusUnknown, errors.Wrapf(err, "failed to get instance %s", ref.Name)
	}
	status, ok := gcpStatuses[instance.Status]
	if !ok {
		c.logger.WithField("status", instance.Status).Warn("unexpected instance status")
		return types.StatusUnknown, nil
	}
	return status, nil
}

// OperationDone reports whether the zonal operation is DONE; a DONE operation with errors yields an *OperationError.
func (c *gcpController) OperationDone(ctx context.Context, ref types.InstanceRef, operation string) (bool, error) {
	if operation == "" {
		c.logger.Warn("operation is empty")
		return true, nil
	}
	op, err := c.operations.Get(ref.Project, ref.Zone, operation).Context(ctx).Do()
	if err != nil {
		return false, errors.Wrapf(err, "failed to get operation %s", operation)
	}
	if op == nil || op.Status != operationDone {
		return false, nil
	}
	// If the operation has an error, return it
	if op.Error != nil {
		return true, newOperationError(operation, op.Error)
	}
	return true, nil
}

func operationName(op *compute.Operation) string {
	if op == nil {
		return ""
	}
	return op.Name
}
