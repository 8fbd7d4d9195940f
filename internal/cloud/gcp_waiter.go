package cloud

import (
	"context"

	"google.golang.org/api/compute/v1"
)

type OperationCall interface {
	Context(ctx context.Context) OperationCall
	Do() (*compute.Operation, error)
}

type ZoneOperations interface {
	Get(projectID, zone, operationName string) OperationCall
}

type zoneOperations struct {
	client *compute.Service
}

type zoneOperationCall struct {
	call *compute.ZoneOperationsGetCall
}

func NewZoneOperations(client *compute.Service) ZoneOperations {
	return &zoneOperations{client: client}
}

func (o *zoneOperations) Get(projectID, zone, operationName string) OperationCall {
	return &zoneOperationCall{o.client.ZoneOperations.Get(projectID, zone, operationName)}
}

func (c *zoneOperationCall) Context(ctx context.Context) OperationCall {
	return &zoneOperationCall{c.call.Context(ctx)}
}

func (c *zoneOperationCall) Do() (*compute.Operation, error) {
	return c.call.Do() //nolint:wrapcheck
}
