package instance

import (
	"context"
	"errors"

	"github.com/doitintl/vmcycle/internal/config"
	"github.com/doitintl/vmcycle/internal/types"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownCloudProvider    = errors.New("unknown cloud provider")
	ErrOperationWaitNotSupport = errors.New("waiting for operations is not supported by this cloud provider")
)

// Controller issues lifecycle calls against a single instance and reports its status.
// Start and Stop return the provider operation (or request) identifier of the call.
type Controller interface {
	Start(ctx context.Context, ref types.InstanceRef) (string, error)
	Stop(ctx context.Context, ref types.InstanceRef) (string, error)
	Status(ctx context.Context, ref types.InstanceRef) (types.InstanceStatus, error)
}

// OperationWaiter is implemented by controllers whose lifecycle calls return pollable operations.
type OperationWaiter interface {
	OperationDone(ctx context.Context, ref types.InstanceRef, operation string) (bool, error)
}

func NewController(ctx context.Context, logger *logrus.Entry, provider types.CloudProvider, cfg *config.Config) (Controller, error) {
	if provider == types.CloudProviderAWS {
		return NewAwsController(ctx, logger, cfg.Zone)
	} else if provider == types.CloudProviderGCP {
		return NewGCPController(ctx, logger)
	} else if provider == types.CloudProviderOCI {
		return NewOCIController(ctx, logger)
	}
	return nil, ErrUnknownCloudProvider
}
