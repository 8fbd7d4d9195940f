package config

import (
	"strings"
	"time"

	"github.com/doitintl/vmcycle/internal/types"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultPollAttempts = 60
	DefaultPort         = 8080
)

// DefaultTimeout covers a restart that uses both poll budgets in full, plus call latency.
const DefaultTimeout = 2*(DefaultPollAttempts+1)*DefaultPollInterval + 5*time.Minute

var (
	ErrMissingProject     = errors.New("--project-id is required or set env PROJECT_ID")
	ErrMissingZone        = errors.New("--zone is required or set env ZONE")
	ErrMissingInstance    = errors.New("--instance is required or set env INSTANCE_NAME")
	ErrInvalidInterval    = errors.New("--poll-interval must be positive")
	ErrInvalidAttempts    = errors.New("--poll-attempts must not be negative")
	ErrInvalidWaitFor     = errors.New("--wait-for must be one of: status, operation")
	ErrOperationNotOnGCP  = errors.New("--wait-for=operation is only supported on gcp")
	ErrInvalidTimeout     = errors.New("--timeout must not be negative")
	ErrUnsupportedCloud   = errors.New("--cloud must be one of: gcp, aws, oci")
	errMetadataNotOnCloud = errors.New("metadata server is not available")
)

type Config struct {
	// Provider is the cloud provider hosting the instance
	Provider types.CloudProvider `json:"cloud"`
	// Project is the name of the GCP project or the AWS account ID or the OCI compartment OCID
	Project string `json:"project"`
	// Zone is the GCP zone or the AWS availability zone or the OCI availability domain
	Zone string `json:"zone"`
	// Instance is the instance name (GCP), ID or Name tag (AWS) or OCID (OCI)
	Instance string `json:"instance"`
	// Action is the default action to perform
	Action string `json:"action"`
	// NoWait skips waiting for the instance to reach the target status
	NoWait bool `json:"no-wait"`
	// WaitFor selects what to poll: instance status or zonal operation
	WaitFor types.WaitStrategy `json:"wait-for"`
	// Poll interval
	PollInterval time.Duration `json:"poll-interval"`
	// Poll attempts after the first status query
	PollAttempts int `json:"poll-attempts"`
	// Timeout bounds a whole action execution, zero means no bound
	Timeout time.Duration `json:"timeout"`
	// UseMetadata resolves missing project and zone from the GCE metadata server
	UseMetadata bool `json:"use-metadata"`
	// Port is the HTTP port to listen on
	Port int `json:"port"`
	// DevelopMode mode
	DevelopMode bool `json:"develop-mode"`
}

func NewConfig(c *cli.Context) *Config {
	var cfg Config
	cfg.Provider = types.CloudProvider(c.String("cloud"))
	cfg.Project = c.String("project-id")
	cfg.Zone = c.String("zone")
	cfg.Instance = c.String("instance")
	cfg.Action = c.String("action")
	cfg.NoWait = c.Bool("no-wait")
	cfg.WaitFor = types.WaitStrategy(c.String("wait-for"))
	cfg.PollInterval = c.Duration("poll-interval")
	cfg.PollAttempts = c.Int("poll-attempts")
	cfg.Timeout = c.Duration("timeout")
	cfg.UseMetadata = c.Bool("use-metadata")
	cfg.Port = c.Int("port")
	cfg.DevelopMode = c.Bool("develop-mode")
	return &cfg
}

// InstanceRef returns the configured instance reference.
func (cfg *Config) InstanceRef() types.InstanceRef {
	return types.InstanceRef{Project: cfg.Project, Zone: cfg.Zone, Name: cfg.Instance}
}

// MetadataSource provides project and zone of the current GCE instance.
type MetadataSource interface {
	OnGCE() bool
	ProjectID() (string, error)
	Zone() (string, error)
}

// ResolveFromMetadata fills an empty project and zone from the metadata server.
// It does nothing unless UseMetadata is set and the provider is GCP.
func (cfg *Config) ResolveFromMetadata(md MetadataSource) error {
	if !cfg.UseMetadata || cfg.Provider != types.CloudProviderGCP {
		return nil
	}
	if cfg.Project != "" && cfg.Zone != "" {
		return nil
	}
	if !md.OnGCE() {
		return errors.Wrap(errMetadataNotOnCloud, "failed to resolve project and zone")
	}
	var err error
	// get project ID from metadata server
	if cfg.Project == "" {
		cfg.Project, err = md.ProjectID()
		if err != nil {
			return errors.Wrap(err, "failed to get project ID from metadata server")
		}
	}
	// get zone from metadata server
	if cfg.Zone == "" {
		cfg.Zone, err = md.Zone()
		if err != nil {
			return errors.Wrap(err, "failed to get zone from metadata server")
		}
	}
	return nil
}

// Validate reports every problem with the configuration at once, wrapped in types.ErrConfiguration.
// Instance identifiers are required only when requireInstance is set.
func (cfg *Config) Validate(requireInstance bool) error {
	var result error
	switch cfg.Provider {
	case types.CloudProviderGCP, types.CloudProviderAWS, types.CloudProviderOCI:
	default:
		result = multierror.Append(result, ErrUnsupportedCloud)
	}
	if requireInstance {
		if cfg.Project == "" {
			result = multierror.Append(result, ErrMissingProject)
		}
		if cfg.Zone == "" {
			result = multierror.Append(result, ErrMissingZone)
		}
		if cfg.Instance == "" {
			result = multierror.Append(result, ErrMissingInstance)
		}
	}
	if cfg.Action != "" {
		if _, err := types.ParseAction(cfg.Action); err != nil {
			result = multierror.Append(result, err)
		}
	}
	switch cfg.WaitFor {
	case types.WaitForStatus:
	case types.WaitForOperation:
		if cfg.Provider != types.CloudProviderGCP {
			result = multierror.Append(result, ErrOperationNotOnGCP)
		}
	default:
		result = multierror.Append(result, ErrInvalidWaitFor)
	}
	if cfg.PollInterval <= 0 {
		result = multierror.Append(result, ErrInvalidInterval)
	}
	if cfg.PollAttempts < 0 {
		result = multierror.Append(result, ErrInvalidAttempts)
	}
	if cfg.Timeout < 0 {
		result = multierror.Append(result, ErrInvalidTimeout)
	}
	if result != nil {
		merr := result.(*multierror.Error) //nolint:errorlint
		merr.ErrorFormat = joinErrors
		return &ValidationError{errs: merr}
	}
	return nil
}

// ValidationError holds every configuration problem found by Validate.
// It matches types.ErrConfiguration and each of the collected errors with errors.Is.
type ValidationError struct {
	errs *multierror.Error
}

func (e *ValidationError) Error() string {
	return types.ErrConfiguration.Error() + ": " + e.errs.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == types.ErrConfiguration //nolint:errorlint
}

func (e *ValidationError) Unwrap() error {
	return e.errs.Unwrap()
}

// Errors returns the collected configuration problems.
func (e *ValidationError) Errors() []error {
	return e.errs.WrappedErrors()
}

func joinErrors(errs []error) string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}
