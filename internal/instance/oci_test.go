package instance

import (
	"context"
	"testing"

	"github.com/doitintl/vmcycle/internal/cloud"
	"github.com/doitintl/vmcycle/internal/types"
	cmocks "github.com/doitintl/vmcycle/mocks/cloud"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func matchErr(err1 error, err2 error) bool {
	errStr1 := ""
	errStr2 := ""
	if err1 != nil {
		errStr1 = err1.Error()
	}
	if err2 != nil {
		errStr2 = err2.Error()
	}
	return errStr1 == errStr2
}

var ociRef = types.InstanceRef{Project: "test-compartment-id", Zone: "Uocm:PHX-AD-1", Name: "test-instance-id"}

func Test_ociController_Action(t *testing.T) {
	tests := []struct {
		name          string
		stop          bool
		instanceSvcFn func(t *testing.T) cloud.OCIInstanceService
		want          string
		wantErr       error
	}{
		{
			name: "start instance",
			instanceSvcFn: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := cmocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().InstanceAction(mock.Anything, "test-instance-id", core.InstanceActionActionStart).Return("test-request-id", nil).Once()
				return mockSvc
			},
			want: "test-request-id",
		},
		{
			name: "stop instance",
			stop: true,
			instanceSvcFn: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := cmocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().InstanceAction(mock.Anything, "test-instance-id", core.InstanceActionActionStop).Return("test-request-id", nil).Once()
				return mockSvc
			},
			want: "test-request-id",
		},
		{
			name: "instance action failed",
			instanceSvcFn: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := cmocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().InstanceAction(mock.Anything, "test-instance-id", core.InstanceActionActionStart).Return("", errors.New("error")).Once()
				return mockSvc
			},
			wantErr: errors.New("error"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ociController{
				logger:      logrus.NewEntry(logrus.New()),
				instanceSvc: tt.instanceSvcFn(t),
			}
			var (
				got string
				err error
			)
			if tt.stop {
				got, err = c.Stop(context.Background(), ociRef)
			} else {
				got, err = c.Start(context.Background(), ociRef)
			}
			if !matchErr(err, tt.wantErr) {
				t.Errorf("Start/Stop() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Start/Stop() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_ociController_Status(t *testing.T) {
	tests := []struct {
		name          string
		instanceSvcFn func(t *testing.T) cloud.OCIInstanceService
		want          types.InstanceStatus
		wantErr       bool
	}{
		{
			name: "running instance",
			instanceSvcFn: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := cmocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().GetInstance(mock.Anything, "test-instance-id").Return(&core.Instance{
					Id:             common.String("test-instance-id"),
					CompartmentId:  common.String("test-compartment-id"),
					LifecycleState: core.InstanceLifecycleStateRunning,
				}, nil).Once()
				return mockSvc
			},
			want: types.StatusRunning,
		},
		{
			name: "stopped instance",
			instanceSvcFn: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := cmocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().GetInstance(mock.Anything, "test-instance-id").Return(&core.Instance{
					Id:             common.String("test-instance-id"),
					CompartmentId:  common.String("test-compartment-id"),
					LifecycleState: core.InstanceLifecycleStateStopped,
				}, nil).Once()
				return mockSvc
			},
			want: types.StatusTerminated,
		},
		{
			name: "starting instance",
			instanceSvcFn: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := cmocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().GetInstance(mock.Anything, "test-instance-id").Return(&core.Instance{
					Id:             common.String("test-instance-id"),
					CompartmentId:  common.String("test-compartment-id"),
					LifecycleState: core.InstanceLifecycleStateStarting,
				}, nil).Once()
				return mockSvc
			},
			want: types.StatusStaging,
		},
		{
			name: "instance in another compartment",
			instanceSvcFn: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := cmocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().GetInstance(mock.Anything, "test-instance-id").Return(&core.Instance{
					Id:             common.String("test-instance-id"),
					CompartmentId:  common.String("other-compartment-id"),
					LifecycleState: core.InstanceLifecycleStateRunning,
				}, nil).Once()
				return mockSvc
			},
			want:    types.StatusUnknown,
			wantErr: true,
		},
		{
			name: "get instance failed",
			instanceSvcFn: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := cmocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().GetInstance(mock.Anything, "test-instance-id").Return(nil, errors.New("error")).Once()
				return mockSvc
			},
			want:    types.StatusUnknown,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ociController{
				logger:      logrus.NewEntry(logrus.New()),
				instanceSvc: tt.instanceSvcFn(t),
			}
			got, err := c.Status(context.Background(), ociRef)
			if (err != nil) != tt.wantErr {
				t.Errorf("Status() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Status() got = %v, want %v", got, tt.want)
			}
		})
	}
}
