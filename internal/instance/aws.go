package instance

import (
	"context"
	"strings"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/doitintl/vmcycle/internal/cloud"
	"github.com/doitintl/vmcycle/internal/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/ptr"
)

const ec2InstanceIDPrefix = "i-"

var ec2Statuses = map[ec2types.InstanceStateName]types.InstanceStatus{
	ec2types.InstanceStateNamePending:      types.StatusStaging,
	ec2types.InstanceStateNameRunning:      types.StatusRunning,
	ec2types.InstanceStateNameStopping:     types.StatusStopping,
	ec2types.InstanceStateNameStopped:      types.StatusTerminated,
	ec2types.InstanceStateNameShuttingDown: types.StatusStopping,
	// a terminated EC2 instance is gone for good and never reaches RUNNING again
	ec2types.InstanceStateNameTerminated: types.StatusUnknown,
}

type awsController struct {
	logger  *logrus.Entry
	manager cloud.Ec2InstanceManager
}

func NewAwsController(ctx context.Context, logger *logrus.Entry, zone string) (Controller, error) {
	region := regionFromZone(zone)
	// initialize AWS client with the default credentials chain
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	// create AWS client for EC2 service in the given region
	client := ec2.NewFromConfig(cfg)

	return &awsController{
		logger:  logger.WithField("region", region),
		manager: cloud.NewEc2InstanceManager(client),
	}, nil
}

// regionFromZone returns the region of an availability zone: us-east-1a -> us-east-1.
// A zone that already ends with a digit is taken as a region.
func regionFromZone(zone string) string {
	if zone == "" {
		return zone
	}
	last := rune(zone[len(zone)-1])
	if unicode.IsLetter(last) {
		return zone[:len(zone)-1]
	}
	return zone
}

// resolveID returns the EC2 instance ID, looking the instance up by its Name tag when ref.Name is not an ID.
func (c *awsController) resolveID(ctx context.Context, ref types.InstanceRef) (string, error) {
	if strings.HasPrefix(ref.Name, ec2InstanceIDPrefix) {
		return ref.Name, nil
	}
	instance, err := c.manager.FindByName(ctx, ref.Name, ref.Zone)
	if err != nil {
		return "", errors.Wrapf(err, "failed to find instance named %s in %s", ref.Name, ref.Zone)
	}
	id := ptr.Deref(instance.InstanceId, "")
	c.logger.WithFields(logrus.Fields{
		"name":        ref.Name,
		"instance-id": id,
	}).Debug("resolved instance id from Name tag")
	return id, nil
}

func (c *awsController) Start(ctx context.Context, ref types.InstanceRef) (string, error) {
	id, err := c.resolveID(ctx, ref)
	if err != nil {
		return "", err
	}
	change, requestID, err := c.manager.Start(ctx, id)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	c.logStateChange(change)
	return requestID, nil
}

func (c *awsController) Stop(ctx context.Context, ref types.InstanceRef) (string, error) {
	id, err := c.resolveID(ctx, ref)
	if err != nil {
		return "", err
	}
	change, requestID, err := c.manager.Stop(ctx, id)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	c.logStateChange(change)
	return requestID, nil
}

func (c *awsController) Status(ctx context.Context, ref types.InstanceRef) (types.InstanceStatus, error) {
	var (
		instance *ec2types.Instance
		err      error
	)
	if strings.HasPrefix(ref.Name, ec2InstanceIDPrefix) {
		instance, err = c.manager.Get(ctx, ref.Name)
	} else {
		instance, err = c.manager.FindByName(ctx, ref.Name, ref.Zone)
	}
	if err != nil {
		return types.StatusUnknown, errors.Wrapf(err, "failed to get instance %s", ref.Name)
	}
	return ec2Status(instance.State), nil
}

func (c *awsController) logStateChange(change *ec2types.InstanceStateChange) {
	if change == nil {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"instance-id": ptr.Deref(change.InstanceId, ""),
		"previous":    ec2StateName(change.PreviousState),
		"current":     ec2StateName(change.CurrentState),
	}).Debug("instance state changed")
}

func ec2StateName(state *ec2types.InstanceState) ec2types.InstanceStateName {
	if state == nil {
		return ""
	}
	return state.Name
}

func ec2Status(state *ec2types.InstanceState) types.InstanceStatus {
	if status, ok := ec2Statuses[ec2StateName(state)]; ok {
		return status
	}
	return types.StatusUnknown
}
