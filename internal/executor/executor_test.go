package executor

import (
	"context"
	"testing"
	"time"

	"github.com/doitintl/vmcycle/internal/instance"
	"github.com/doitintl/vmcycle/internal/types"
	mocks "github.com/doitintl/vmcycle/mocks/instance"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testRef = types.InstanceRef{Project: "test-project", Zone: "test-zone", Name: "test-instance"}

// waitingController is a controller that also waits for operations
type waitingController struct {
	*mocks.Controller
	*mocks.OperationWaiter
}

func TestExecutor_Execute(t *testing.T) {
	type args struct {
		ctx func() context.Context
		ref types.InstanceRef
		req types.ActionRequest
	}
	tests := []struct {
		name           string
		controllerFn   func(t *testing.T) instance.Controller
		opts           Options
		args           args
		wantStatus     types.OutcomeStatus
		wantOperations []string
		wantErr        error
	}{
		{
			name: "restart without wait issues stop then start",
			controllerFn: func(t *testing.T) instance.Controller {
				mock := mocks.NewController(t)
				tmock.InOrder(
					mock.EXPECT().Stop(tmock.Anything, testRef).Return("stop-op", nil).Once(),
					mock.EXPECT().Start(tmock.Anything, testRef).Return("start-op", nil).Once(),
				)
				return mock
			},
			args:           args{ref: testRef, req: types.ActionRequest{Action: types.ActionRestart, Wait: false}},
			wantStatus:     types.OutcomeOK,
			wantOperations: []string{"stop-op", "start-op"},
		},
		{
			name: "restart with wait polls until terminated then until running",
			controllerFn: func(t *testing.T) instance.Controller {
				mock := mocks.NewController(t)
				tmock.InOrder(
					mock.EXPECT().Stop(tmock.Anything, testRef).Return("stop-op", nil).Once(),
					mock.EXPECT().Status(tmock.Anything, testRef).Return(types.StatusStopping, nil).Times(3),
					mock.EXPECT().Status(tmock.Anything, testRef).Return(types.StatusTerminated, nil).Once(),
					mock.EXPECT().Start(tmock.Anything, testRef).Return("start-op", nil).Once(),
					mock.EXPECT().Status(tmock.Anything, testRef).Return(types.StatusStaging, nil).Once(),
					mock.EXPECT().Status(tmock.Anything, testRef).Return(types.StatusRunning, nil).Once(),
				)
				return mock
			},
			opts:           Options{PollInterval: time.Millisecond, PollAttempts: 10},
			args:           args{ref: testRef, req: types.ActionRequest{Action: types.ActionRestart, Wait: true}},
			wantStatus:     types.OutcomeOK,
			wantOperations: []string{"stop-op", "start-op"},
		},
		{
			name: "stop with wait polls until terminated",
			controllerFn: func(t *testing.T) instance.Controller {
				mock := mocks.NewController(t)
				mock.EXPECT().Stop(tmock.Anything, testRef).Return("stop-op", nil).Once()
				mock.EXPECT().Status(tmock.Anything, testRef).Return(types.StatusTerminated, nil).Once()
				return mock
			},
			opts:           Options{PollInterval: time.Millisecond, PollAttempts: 3},
			args:           args{ref: testRef, req: types.ActionRequest{Action: types.ActionStop, Wait: true}},
			wantStatus:     types.OutcomeOK,
			wantOperations: []string{"stop-op"},
		},
		{
			name: "start without wait does not poll",
			controllerFn: func(t *testing.T) instance.Controller {
				mock := mocks.NewController(t)
				mock.EXPECT().Start(tmock.Anything, testRef).Return("start-op", nil).Once()
				return mock
			},
			args:           args{ref: testRef, req: types.ActionRequest{Action: types.ActionStart}},
			wantStatus:     types.OutcomeOK,
			wantOperations: []string{"start-op"},
		},
		{
			name: "timeout when target status is never reached",
			controllerFn: func(t *testing.T) instance.Controller {
				mock := mocks.NewController(t)
				mock.EXPECT().Stop(tmock.Anything, testRef).Return("stop-op", nil).Once()
				mock.EXPECT().Status(tmock.Anything, testRef).Return(types.StatusStopping, nil).Times(4)
				return mock
			},
			opts:           Options{PollInterval: time.Millisecond, PollAttempts: 3},
			args:           args{ref: testRef, req: types.ActionRequest{Action: types.ActionRestart, Wait: true}},
			wantStatus:     types.OutcomeTimeout,
			wantOperations: []string{"stop-op"},
			wantErr:        types.ErrTimeout,
		},
		{
			name: "timeout when context is done while waiting",
			controllerFn: func(t *testing.T) instance.Controller {
				mock := mocks.NewController(t)
				mock.EXPECT().Start(tmock.Anything, testRef).Return("start-op", nil).Once()
				mock.EXPECT().Status(tmock.Anything, testRef).Return(types.StatusStaging, nil).Maybe()
				return mock
			},
			opts: Options{PollInterval: 5 * time.Millisecond, PollAttempts: 1000},
			args: args{
				ctx: func() context.Context {
					ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
					_ = cancel // context must outlive this closure; the deadline releases it
					return ctx
				},
				ref: testRef,
				req: types.ActionRequest{Action: types.ActionStart, Wait: true},
			},
			wantStatus:     types.OutcomeTimeout,
			wantOperations: []string{"start-op"},
			wantErr:        types.ErrTimeout,
		},
		{
			name: "missing instance name fails before any call",
			controllerFn: func(t *testing.T) instance.Controller {
				return mocks.NewController(t)
			},
			args: args{
				ref: types.InstanceRef{Project: "test-project", Zone: "test-zone"},
				req: types.ActionRequest{Action: types.ActionRestart, Wait: true},
			},
			wantStatus:     types.OutcomeError,
			wantOperations: []string{},
			wantErr:        types.ErrConfiguration,
		},
		{
			name: "unknown action fails before any call",
			controllerFn: func(t *testing.T) instance.Controller {
				return mocks.NewController(t)
			},
			args:           args{ref: testRef, req: types.ActionRequest{Action: "reboot"}},
			wantStatus:     types.OutcomeError,
			wantOperations: []string{},
			wantErr:        types.ErrConfiguration,
		},
		{
			name: "stop error prevents start",
			controllerFn: func(t *testing.T) instance.Controller {
				mock := mocks.NewController(t)
				mock.EXPECT().Stop(tmock.Anything, testRef).Return("", errors.New("permission denied")).Once()
				return mock
			},
			opts:           Options{PollInterval: time.Millisecond, PollAttempts: 3},
			args:           args{ref: testRef, req: types.ActionRequest{Action: types.ActionRestart, Wait: true}},
			wantStatus:     types.OutcomeError,
			wantOperations: []string{},
		},
		{
			name: "status error while waiting stops the action",
			controllerFn: func(t *testing.T) instance.Controller {
				mock := mocks.NewController(t)
				mock.EXPECT().Stop(tmock.Anything, testRef).Return("stop-op", nil).Once()
				mock.EXPECT().Status(tmock.Anything, testRef).Return(types.StatusUnknown, errors.New("instance not found")).Once()
				return mock
			},
			opts:           Options{PollInterval: time.Millisecond, PollAttempts: 3},
			args:           args{ref: testRef, req: types.ActionRequest{Action: types.ActionRestart, Wait: true}},
			wantStatus:     types.OutcomeError,
			wantOperations: []string{"stop-op"},
		},
		{
			name: "wait for operations",
			controllerFn: func(t *testing.T) instance.Controller {
				controller := mocks.NewController(t)
				waiter := mocks.NewOperationWaiter(t)
				controller.EXPECT().Stop(tmock.Anything, testRef).Return("stop-op", nil).Once()
				waiter.EXPECT().OperationDone(tmock.Anything, testRef, "stop-op").Return(false, nil).Once()
				waiter.EXPECT().OperationDone(tmock.Anything, testRef, "stop-op").Return(true, nil).Once()
				controller.EXPECT().Start(tmock.Anything, testRef).Return("start-op", nil).Once()
				waiter.EXPECT().OperationDone(tmock.Anything, testRef, "start-op").Return(true, nil).Once()
				return &waitingController{Controller: controller, OperationWaiter: waiter}
			},
			opts:           Options{PollInterval: time.Millisecond, PollAttempts: 3, WaitFor: types.WaitForOperation},
			args:           args{ref: testRef, req: types.ActionRequest{Action: types.ActionRestart, Wait: true}},
			wantStatus:     types.OutcomeOK,
			wantOperations: []string{"stop-op", "start-op"},
		},
		{
			name: "failed operation is a provider error",
			controllerFn: func(t *testing.T) instance.Controller {
				controller := mocks.NewController(t)
				waiter := mocks.NewOperationWaiter(t)
				controller.EXPECT().Start(tmock.Anything, testRef).Return("start-op", nil).Once()
				waiter.EXPECT().OperationDone(tmock.Anything, testRef, "start-op").Return(true, errors.New("quota exceeded")).Once()
				return &waitingController{Controller: controller, OperationWaiter: waiter}
			},
			opts:           Options{PollInterval: time.Millisecond, PollAttempts: 3, WaitFor: types.WaitForOperation},
			args:           args{ref: testRef, req: types.ActionRequest{Action: types.ActionStart, Wait: true}},
			wantStatus:     types.OutcomeError,
			wantOperations: []string{"start-op"},
		},
		{
			name: "wait for operations is not supported by controller",
			controllerFn: func(t *testing.T) instance.Controller {
				return mocks.NewController(t)
			},
			opts:           Options{PollInterval: time.Millisecond, PollAttempts: 3, WaitFor: types.WaitForOperation},
			args:           args{ref: testRef, req: types.ActionRequest{Action: types.ActionStart, Wait: true}},
			wantStatus:     types.OutcomeError,
			wantOperations: []string{},
			wantErr:        types.ErrConfiguration,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logrus.NewEntry(logrus.New())
			e := New(logger, tt.controllerFn(t), tt.opts)
			ctx := context.Background()
			if tt.args.ctx != nil {
				ctx = tt.args.ctx()
			}
			outcome, err := e.Execute(ctx, tt.args.ref, tt.args.req)
			require.NotNil(t, outcome)
			assert.Equal(t, tt.wantStatus, outcome.Status)
			assert.Equal(t, tt.wantOperations, outcome.Operations)
			if tt.wantStatus == types.OutcomeOK {
				require.NoError(t, err)
				assert.Empty(t, outcome.Message)
				return
			}
			require.Error(t, err)
			assert.Equal(t, err.Error(), outcome.Message)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExecutor_Execute_stopErrorMessage(t *testing.T) {
	mock := mocks.NewController(t)
	mock.EXPECT().Stop(tmock.Anything, testRef).Return("", errors.New("googleapi: Error 403: permission denied")).Once()

	e := New(logrus.NewEntry(logrus.New()), mock, Options{})
	_, err := e.Execute(context.Background(), testRef, types.ActionRequest{Action: types.ActionRestart})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "googleapi: Error 403: permission denied")
	assert.NotErrorIs(t, err, types.ErrTimeout)
	assert.NotErrorIs(t, err, types.ErrConfiguration)
	mock.AssertNotCalled(t, "Start", tmock.Anything, tmock.Anything)
}

func TestExecutor_Execute_progressLog(t *testing.T) {
	logger, hook := test.NewNullLogger()
	mock := mocks.NewController(t)
	mock.EXPECT().Stop(tmock.Anything, testRef).Return("stop-op", nil).Once()
	mock.EXPECT().Start(tmock.Anything, testRef).Return("start-op", nil).Once()

	e := New(logrus.NewEntry(logger), mock, Options{})
	_, err := e.Execute(context.Background(), testRef, types.ActionRequest{Action: types.ActionRestart})
	require.NoError(t, err)

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{
		"executing instance action",
		"stop requested",
		"start requested",
		"instance action completed",
	}, messages)
	assert.Equal(t, "test-instance", hook.LastEntry().Data["instance"])
}
