package cloud

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/pkg/errors"
)

type Ec2InstanceManager interface {
	Get(ctx context.Context, instanceID string) (*types.Instance, error)
	FindByName(ctx context.Context, name, zone string) (*types.Instance, error)
	// Start returns the instance state change and the request ID of the call
	Start(ctx context.Context, instanceID string) (*types.InstanceStateChange, string, error)
	// Stop returns the instance state change and the request ID of the call
	Stop(ctx context.Context, instanceID string) (*types.InstanceStateChange, string, error)
}

type ec2InstanceManager struct {
	client *ec2.Client
}

func NewEc2InstanceManager(client *ec2.Client) Ec2InstanceManager {
	return &ec2InstanceManager{client: client}
}

func (m *ec2InstanceManager) Get(ctx context.Context, instanceID string) (*types.Instance, error) {
	input := &ec2.DescribeInstancesInput{
		InstanceIds: []string{
			instanceID,
		},
	}
	return m.describeOne(ctx, input)
}

func (m *ec2InstanceManager) FindByName(ctx context.Context, name, zone string) (*types.Instance, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{Name: aws.String("tag:Name"), Values: []string{name}},
			{Name: aws.String("availability-zone"), Values: []string{zone}},
			// skip terminated instances that still carry the same name tag
			{Name: aws.String("instance-state-name"), Values: []string{"pending", "running", "stopping", "stopped"}},
		},
	}
	return m.describeOne(ctx, input)
}

func (m *ec2InstanceManager) describeOne(ctx context.Context, input *ec2.DescribeInstancesInput) (*types.Instance, error) {
	resp, err := m.client.DescribeInstances(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to describe instances")
	}

	var found []types.Instance
	for _, reservation := range resp.Reservations {
		found = append(found, reservation.Instances...)
	}
	if len(found) == 0 {
		return nil, errors.New("no instances found for the given id or name")
	}
	if len(found) > 1 {
		return nil, errors.Errorf("found %d instances, expected exactly one", len(found))
	}

	return &found[0], nil
}

func (m *ec2InstanceManager) Start(ctx context.Context, instanceID string) (*types.InstanceStateChange, string, error) {
	resp, err := m.client.StartInstances(ctx, &ec2.StartInstancesInput{InstanceIds: []string{instanceID}})
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to start instance %s", instanceID)
	}
	requestID, _ := awsmiddleware.GetRequestIDMetadata(resp.ResultMetadata)
	if len(resp.StartingInstances) == 0 {
		return nil, requestID, nil
	}
	return &resp.StartingInstances[0], requestID, nil
}

func (m *ec2InstanceManager) Stop(ctx context.Context, instanceID string) (*types.InstanceStateChange, string, error) {
	resp, err := m.client.StopInstances(ctx, &ec2.StopInstancesInput{InstanceIds: []string{instanceID}})
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to stop instance %s", instanceID)
	}
	requestID, _ := awsmiddleware.GetRequestIDMetadata(resp.ResultMetadata)
	if len(resp.StoppingInstances) == 0 {
		return nil, requestID, nil
	}
	return &resp.StoppingInstances[0], requestID, nil
}
