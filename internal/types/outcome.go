package types

import (
	"github.com/pkg/errors"
)

var (
	// ErrConfiguration is returned when instance identifiers or options are missing or invalid
	ErrConfiguration = errors.New("configuration error")
	// ErrTimeout is returned when the instance did not reach the target status in time
	ErrTimeout = errors.New("timeout")
)

type OutcomeStatus string

const (
	OutcomeOK      OutcomeStatus = "ok"
	OutcomeError   OutcomeStatus = "error"
	OutcomeTimeout OutcomeStatus = "timeout"
)

// Outcome is the result of a single action execution.
type Outcome struct {
	Status     OutcomeStatus `json:"status"`
	Action     Action        `json:"action"`
	Project    string        `json:"project"`
	Zone       string        `json:"zone"`
	Instance   string        `json:"instance"`
	Operations []string      `json:"operations"`
	Message    string        `json:"message,omitempty"`
}

// NewOutcome creates an empty outcome for the instance and action.
func NewOutcome(ref InstanceRef, action Action) *Outcome {
	return &Outcome{
		Status:     OutcomeOK,
		Action:     action,
		Project:    ref.Project,
		Zone:       ref.Zone,
		Instance:   ref.Name,
		Operations: []string{},
	}
}

// Fail records err on the outcome and sets the status matching its class.
func (o *Outcome) Fail(err error) {
	o.Status = OutcomeFromError(err)
	o.Message = err.Error()
}

// OutcomeFromError maps an error to the outcome status.
func OutcomeFromError(err error) OutcomeStatus {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrTimeout):
		return OutcomeTimeout
	default:
		return OutcomeError
	}
}
