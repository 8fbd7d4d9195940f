package cloud

import (
	"context"

	"google.golang.org/api/compute/v1"
)

type InstanceService interface {
	Get(ctx context.Context, projectID, zone, instance string) (*compute.Instance, error)
	Start(ctx context.Context, projectID, zone, instance string) (*compute.Operation, error)
	Stop(ctx context.Context, projectID, zone, instance string) (*compute.Operation, error)
}

type instanceService struct {
	client *compute.Service
}

func NewInstanceService(client *compute.Service) InstanceService {
	return &instanceService{client: client}
}

func (s *instanceService) Get(ctx context.Context, projectID, zone, instance string) (*compute.Instance, error) {
	return s.client.Instances.Get(projectID, zone, instance).Context(ctx).Do() //nolint:wrapcheck
}

func (s *instanceService) Start(ctx context.Context, projectID, zone, instance string) (*compute.Operation, error) {
	return s.client.Instances.Start(projectID, zone, instance).Context(ctx).Do() //nolint:wrapcheck
}

func (s *instanceService) Stop(ctx context.Context, projectID, zone, instance string) (*compute.Operation, error) {
	return s.client.Instances.Stop(projectID, zone, instance).Context(ctx).Do() //nolint:wrapcheck
}
