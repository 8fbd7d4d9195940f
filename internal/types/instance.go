package types

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// InstanceRef identifies a single VM instance.
// For AWS Project is the account ID and Zone the availability zone; for OCI Project is the compartment OCID
// and Name the instance OCID.
type InstanceRef struct {
	Project string
	Zone    string
	Name    string
}

// Validate checks that all identifiers are set.
func (r InstanceRef) Validate() error {
	var missing []string
	if r.Project == "" {
		missing = append(missing, "project")
	}
	if r.Zone == "" {
		missing = append(missing, "zone")
	}
	if r.Name == "" {
		missing = append(missing, "instance")
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrConfiguration, "missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func (r InstanceRef) String() string {
	return fmt.Sprintf("%s/%s/%s", r.Project, r.Zone, r.Name)
}

type Action string

const (
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionRestart Action = "restart"
)

// ParseAction parses start, stop or restart (case insensitive).
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionStart, ActionStop, ActionRestart:
		return a, nil
	}
	return "", errors.Wrapf(ErrConfiguration, "unknown action %q, supported actions: start, stop, restart", s)
}

// ActionRequest is the action to perform and whether to wait for it to complete.
type ActionRequest struct {
	Action Action
	Wait   bool
}

// InstanceStatus is the instance lifecycle status in GCE vocabulary.
type InstanceStatus string

const (
	StatusProvisioning InstanceStatus = "PROVISIONING"
	StatusStaging      InstanceStatus = "STAGING"
	StatusRunning      InstanceStatus = "RUNNING"
	StatusStopping     InstanceStatus = "STOPPING"
	StatusSuspending   InstanceStatus = "SUSPENDING"
	StatusSuspended    InstanceStatus = "SUSPENDED"
	StatusRepairing    InstanceStatus = "REPAIRING"
	StatusTerminated   InstanceStatus = "TERMINATED"
	StatusUnknown      InstanceStatus = "UNKNOWN"
)
