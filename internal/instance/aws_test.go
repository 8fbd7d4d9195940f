package instance

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/doitintl/vmcycle/internal/cloud"
	"github.com/doitintl/vmcycle/internal/types"
	mocks "github.com/doitintl/vmcycle/mocks/cloud"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	tmock "github.com/stretchr/testify/mock"
)

func Test_regionFromZone(t *testing.T) {
	tests := []struct {
		zone string
		want string
	}{
		{zone: "us-east-1a", want: "us-east-1"},
		{zone: "eu-central-1c", want: "eu-central-1"},
		{zone: "us-west-2", want: "us-west-2"},
		{zone: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			if got := regionFromZone(tt.zone); got != tt.want {
				t.Errorf("regionFromZone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_ec2Status(t *testing.T) {
	tests := []struct {
		name  string
		state *ec2types.InstanceState
		want  types.InstanceStatus
	}{
		{name: "pending", state: &ec2types.InstanceState{Name: ec2types.InstanceStateNamePending}, want: types.StatusStaging},
		{name: "running", state: &ec2types.InstanceState{Name: ec2types.InstanceStateNameRunning}, want: types.StatusRunning},
		{name: "stopping", state: &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopping}, want: types.StatusStopping},
		{name: "stopped", state: &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopped}, want: types.StatusTerminated},
		{name: "terminated", state: &ec2types.InstanceState{Name: ec2types.InstanceStateNameTerminated}, want: types.StatusUnknown},
		{name: "nil state", state: nil, want: types.StatusUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ec2Status(tt.state); got != tt.want {
				t.Errorf("ec2Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_awsController_Start(t *testing.T) {
	tests := []struct {
		name      string
		ref       types.InstanceRef
		managerFn func(t *testing.T) cloud.Ec2InstanceManager
		want      string
		wantErr   bool
	}{
		{
			name: "start by instance id",
			ref:  types.InstanceRef{Project: "123456789012", Zone: "us-east-1a", Name: "i-0123456789abcdef0"},
			managerFn: func(t *testing.T) cloud.Ec2InstanceManager {
				mock := mocks.NewEc2InstanceManager(t)
				mock.EXPECT().Start(tmock.Anything, "i-0123456789abcdef0").Return(&ec2types.InstanceStateChange{
					InstanceId:    aws.String("i-0123456789abcdef0"),
					PreviousState: &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopped},
					CurrentState:  &ec2types.InstanceState{Name: ec2types.InstanceStateNamePending},
				}, "request-1", nil)
				return mock
			},
			want: "request-1",
		},
		{
			name: "start by name tag",
			ref:  types.InstanceRef{Project: "123456789012", Zone: "us-east-1a", Name: "web-server"},
			managerFn: func(t *testing.T) cloud.Ec2InstanceManager {
				mock := mocks.NewEc2InstanceManager(t)
				mock.EXPECT().FindByName(tmock.Anything, "web-server", "us-east-1a").Return(&ec2types.Instance{InstanceId: aws.String("i-0123456789abcdef0")}, nil)
				mock.EXPECT().Start(tmock.Anything, "i-0123456789abcdef0").Return(nil, "request-2", nil)
				return mock
			},
			want: "request-2",
		},
		{
			name: "name tag not found",
			ref:  types.InstanceRef{Project: "123456789012", Zone: "us-east-1a", Name: "web-server"},
			managerFn: func(t *testing.T) cloud.Ec2InstanceManager {
				mock := mocks.NewEc2InstanceManager(t)
				mock.EXPECT().FindByName(tmock.Anything, "web-server", "us-east-1a").Return(nil, errors.New("no instances found for the given id or name"))
				return mock
			},
			wantErr: true,
		},
		{
			name: "start rejected by the API",
			ref:  types.InstanceRef{Project: "123456789012", Zone: "us-east-1a", Name: "i-0123456789abcdef0"},
			managerFn: func(t *testing.T) cloud.Ec2InstanceManager {
				mock := mocks.NewEc2InstanceManager(t)
				mock.EXPECT().Start(tmock.Anything, "i-0123456789abcdef0").Return(nil, "", errors.New("UnauthorizedOperation"))
				return mock
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &awsController{
				logger:  logrus.NewEntry(logrus.New()),
				manager: tt.managerFn(t),
			}
			got, err := c.Start(context.Background(), tt.ref)
			if (err != nil) != tt.wantErr {
				t.Errorf("Start() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Start() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_awsController_StopAndStatus(t *testing.T) {
	ref := types.InstanceRef{Project: "123456789012", Zone: "us-east-1a", Name: "i-0123456789abcdef0"}
	mock := mocks.NewEc2InstanceManager(t)
	mock.EXPECT().Stop(tmock.Anything, "i-0123456789abcdef0").Return(&ec2types.InstanceStateChange{
		InstanceId:   aws.String("i-0123456789abcdef0"),
		CurrentState: &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopping},
	}, "request-3", nil).Once()
	mock.EXPECT().Get(tmock.Anything, "i-0123456789abcdef0").Return(&ec2types.Instance{
		InstanceId: aws.String("i-0123456789abcdef0"),
		State:      &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopped},
	}, nil).Once()

	c := &awsController{logger: logrus.NewEntry(logrus.New()), manager: mock}
	got, err := c.Stop(context.Background(), ref)
	if err != nil || got != "request-3" {
		t.Fatalf("Stop() = %v, %v, want request-3", got, err)
	}
	status, err := c.Status(context.Background(), ref)
	if err != nil || status != types.StatusTerminated {
		t.Fatalf("Status() = %v, %v, want %v", status, err, types.StatusTerminated)
	}
}
