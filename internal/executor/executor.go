package executor

import (
	"context"
	"time"

	"github.com/doitintl/vmcycle/internal/instance"
	"github.com/doitintl/vmcycle/internal/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultPollInterval = 5 * time.Second

// Options control how the executor waits for lifecycle transitions.
type Options struct {
	// PollInterval is the delay between two checks
	PollInterval time.Duration
	// PollAttempts is the number of checks after the first one before giving up
	PollAttempts int
	// WaitFor selects between polling instance status and polling the operation
	WaitFor types.WaitStrategy
	// Timeout bounds a whole execution, zero means no bound
	Timeout time.Duration
}

// Executor runs start, stop and restart actions against a single instance.
type Executor struct {
	controller instance.Controller
	opts       Options
	logger     *logrus.Entry
}

type step struct {
	name   string
	call   func(ctx context.Context, ref types.InstanceRef) (string, error)
	target types.InstanceStatus
}

func New(logger *logrus.Entry, controller instance.Controller, opts Options) *Executor {
	if opts.WaitFor == "" {
		opts.WaitFor = types.WaitForStatus
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	return &Executor{
		controller: controller,
		opts:       opts,
		logger:     logger,
	}
}

// Execute issues the lifecycle calls for the requested action and, if req.Wait is set, waits for each to complete.
// The returned outcome is always populated; err is non-nil when the outcome is not ok.
func (e *Executor) Execute(ctx context.Context, ref types.InstanceRef, req types.ActionRequest) (*types.Outcome, error) {
	outcome := types.NewOutcome(ref, req.Action)
	if err := e.validate(ref, req); err != nil {
		outcome.Fail(err)
		return outcome, err
	}

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	log := e.logger.WithFields(logrus.Fields{
		"project":  ref.Project,
		"zone":     ref.Zone,
		"instance": ref.Name,
		"action":   req.Action,
	})
	log.Info("executing instance action")

	for _, s := range e.steps(req.Action) {
		operation, err := e.run(ctx, log, ref, s, req.Wait)
		if operation != "" {
			outcome.Operations = append(outcome.Operations, operation)
		}
		if err != nil {
			// a failed stop or start ends the action; later steps are not attempted
			outcome.Fail(err)
			return outcome, err
		}
	}

	log.WithField("operations", outcome.Operations).Info("instance action completed")
	return outcome, nil
}

func (e *Executor) validate(ref types.InstanceRef, req types.ActionRequest) error {
	if err := ref.Validate(); err != nil {
		return err //nolint:wrapcheck
	}
	if _, err := types.ParseAction(string(req.Action)); err != nil {
		return err //nolint:wrapcheck
	}
	if req.Wait && e.opts.WaitFor == types.WaitForOperation {
		if _, ok := e.controller.(instance.OperationWaiter); !ok {
			return errors.Wrap(types.ErrConfiguration, instance.ErrOperationWaitNotSupport.Error())
		}
	}
	return nil
}

func (e *Executor) steps(action types.Action) []step {
	stop := step{name: "stop", call: e.controller.Stop, target: types.StatusTerminated}
	start := step{name: "start", call: e.controller.Start, target: types.StatusRunning}
	switch action {
	case types.ActionStop:
		return []step{stop}
	case types.ActionStart:
		return []step{start}
	case types.ActionRestart:
		return []step{stop, start}
	}
	return nil
}

func (e *Executor) run(ctx context.Context, log *logrus.Entry, ref types.InstanceRef, s step, wait bool) (string, error) {
	operation, err := s.call(ctx, ref)
	if err != nil {
		return "", errors.Wrapf(err, "%s request failed", s.name)
	}
	log = log.WithField("operation", operation)
	log.Infof("%s requested", s.name)
	if !wait {
		return operation, nil
	}

	if err = e.wait(ctx, log, ref, operation, s.target); err != nil {
		return operation, errors.Wrapf(err, "waiting for %s failed", s.name)
	}
	log.Infof("%s completed", s.name)
	return operation, nil
}

func (e *Executor) wait(ctx context.Context, log *logrus.Entry, ref types.InstanceRef, operation string, target types.InstanceStatus) error {
	if e.opts.WaitFor == types.WaitForOperation {
		waiter := e.controller.(instance.OperationWaiter) //nolint:forcetypeassert
		return pollUntil(ctx, e.opts.PollInterval, e.opts.PollAttempts, func(ctx context.Context, attempt int) (bool, error) {
			done, err := waiter.OperationDone(ctx, ref, operation)
			log.WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"done":    done,
			}).Debug("checked operation")
			return done, err //nolint:wrapcheck
		})
	}
	return pollUntil(ctx, e.opts.PollInterval, e.opts.PollAttempts, func(ctx context.Context, attempt int) (bool, error) {
		status, err := e.controller.Status(ctx, ref)
		if err != nil {
			return false, err //nolint:wrapcheck
		}
		log.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"status":  status,
			"target":  target,
		}).Debug("checked instance status")
		return status == target, nil
	})
}
