// Copyright © 2024 DoiT International
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	"github.com/doitintl/vmcycle/internal/cloud"
	"github.com/doitintl/vmcycle/internal/config"
	"github.com/doitintl/vmcycle/internal/executor"
	"github.com/doitintl/vmcycle/internal/instance"
	"github.com/doitintl/vmcycle/internal/server"
	"github.com/doitintl/vmcycle/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	version   string
	buildDate string
	gitCommit string
	gitBranch string
)

const (
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
)

// controllerFactory creates the cloud controller; replaced in tests
type controllerFactory func(ctx context.Context, logger *logrus.Entry, cfg *config.Config) (instance.Controller, error)

func newController(ctx context.Context, logger *logrus.Entry, cfg *config.Config) (instance.Controller, error) {
	return instance.NewController(ctx, logger, cfg.Provider, cfg) //nolint:wrapcheck
}

func prepareLogger(level string, jsonFormat bool) *logrus.Entry {
	logger := logrus.New()

	// set log level
	l, err := logrus.ParseLevel(level)
	if err != nil {
		l = logrus.InfoLevel
	}
	logger.SetLevel(l)

	// set log formatter to JSON
	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger.WithField("version", version)
}

// loadConfig builds the configuration from flags and env, fills project and zone from metadata when asked to,
// and validates it before any provider call.
func loadConfig(c *cli.Context, md config.MetadataSource) (*config.Config, error) {
	cfg := config.NewConfig(c)
	if err := cfg.ResolveFromMetadata(md); err != nil {
		return nil, errors.Wrap(types.ErrConfiguration, err.Error())
	}
	if err := cfg.Validate(true); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return cfg, nil
}

func newExecutor(log *logrus.Entry, controller instance.Controller, cfg *config.Config) *executor.Executor {
	return executor.New(log, controller, executor.Options{
		PollInterval: cfg.PollInterval,
		PollAttempts: cfg.PollAttempts,
		WaitFor:      cfg.WaitFor,
		Timeout:      cfg.Timeout,
	})
}

// writeOutcome prints the outcome as a single JSON line.
func writeOutcome(log *logrus.Entry, w io.Writer, outcome *types.Outcome) {
	if err := json.NewEncoder(w).Encode(outcome); err != nil {
		log.WithError(err).Error("failed to write outcome")
	}
}

// failedOutcome is the outcome of an action that failed before the executor ran.
func failedOutcome(ref types.InstanceRef, action string, err error) *types.Outcome {
	outcome := types.NewOutcome(ref, types.Action(action))
	outcome.Fail(err)
	return outcome
}

// runAction performs the configured action once and writes the outcome as a JSON line to w, on failure too.
func runAction(ctx context.Context, log *logrus.Entry, cfg *config.Config, factory controllerFactory, w io.Writer) error {
	ref := cfg.InstanceRef()
	action, err := types.ParseAction(cfg.Action)
	if err != nil {
		writeOutcome(log, w, failedOutcome(ref, cfg.Action, err))
		return err //nolint:wrapcheck
	}

	log.WithFields(logrus.Fields{
		"cloud":    cfg.Provider,
		"project":  ref.Project,
		"zone":     ref.Zone,
		"instance": ref.Name,
		"action":   action,
		"wait":     !cfg.NoWait,
	}).Info("vmcycle run is starting")

	controller, err := factory(ctx, log, cfg)
	if err != nil {
		err = errors.Wrap(err, "failed to create cloud controller")
		writeOutcome(log, w, failedOutcome(ref, string(action), err))
		return err
	}

	outcome, err := newExecutor(log, controller, cfg).Execute(ctx, ref, types.ActionRequest{Action: action, Wait: !cfg.NoWait})
	writeOutcome(log, w, outcome)
	return err //nolint:wrapcheck
}

// serve runs the HTTP surface until ctx is done.
func serve(ctx context.Context, log *logrus.Entry, cfg *config.Config, factory controllerFactory) error {
	action, err := types.ParseAction(cfg.Action)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if !cfg.DevelopMode {
		gin.SetMode(gin.ReleaseMode)
	}

	controller, err := factory(ctx, log, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create cloud controller")
	}

	srv := server.New(log, newExecutor(log, controller, cfg), cfg.InstanceRef(), action, !cfg.NoWait)
	return srv.Serve(ctx, ":"+strconv.Itoa(cfg.Port)) //nolint:wrapcheck
}

func runCmd(c *cli.Context) error {
	ctx, cancel := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := prepareLogger(c.String("log-level"), c.Bool("json"))
	cfg, err := loadConfig(c, cloud.NewMetadataResolver())
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		writeOutcome(log, c.App.Writer, failedOutcome(config.NewConfig(c).InstanceRef(), c.String("action"), err))
		return cli.Exit(err.Error(), 1)
	}

	if err = runAction(ctx, log, cfg, newController, c.App.Writer); err != nil {
		log.WithError(err).Error("vmcycle run failed")
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func serveCmd(c *cli.Context) error {
	ctx, cancel := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := prepareLogger(c.String("log-level"), c.Bool("json"))
	cfg, err := loadConfig(c, cloud.NewMetadataResolver())
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		return cli.Exit(err.Error(), 1)
	}
	log.WithFields(logrus.Fields{
		"Cloud":      cfg.Provider,
		"Project":    cfg.Project,
		"Zone":       cfg.Zone,
		"Instance":   cfg.Instance,
		"Port":       cfg.Port,
		"Version":    version,
		"Build Date": buildDate,
		"Git Commit": gitCommit,
		"Git Branch": gitBranch,
	}).Info("vmcycle server is starting")

	if err = serve(ctx, log, cfg, newController); err != nil {
		log.WithError(err).Error("vmcycle server failed")
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func instanceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "cloud",
			Usage:    "cloud provider hosting the instance: gcp, aws or oci",
			Value:    string(types.CloudProviderGCP),
			EnvVars:  []string{"CLOUD_PROVIDER"},
			Category: "Instance",
		},
		&cli.StringFlag{
			Name:     "project-id",
			Aliases:  []string{"p", "project"},
			Usage:    "GCP project ID, AWS account ID or OCI compartment OCID",
			EnvVars:  []string{"PROJECT_ID"},
			Category: "Instance",
		},
		&cli.StringFlag{
			Name:     "zone",
			Aliases:  []string{"z"},
			Usage:    "GCE zone, AWS availability zone or OCI availability domain",
			EnvVars:  []string{"ZONE"},
			Category: "Instance",
		},
		&cli.StringFlag{
			Name:     "instance",
			Aliases:  []string{"i"},
			Usage:    "instance name (GCP), instance ID or Name tag (AWS) or instance OCID (OCI)",
			EnvVars:  []string{"INSTANCE_NAME"},
			Category: "Instance",
		},
		&cli.BoolFlag{
			Name:     "use-metadata",
			Usage:    "resolve missing project and zone from the GCE metadata server",
			EnvVars:  []string{"USE_METADATA"},
			Category: "Instance",
		},
		&cli.StringFlag{
			Name:     "action",
			Aliases:  []string{"a"},
			Usage:    "action to perform: start, stop or restart",
			Value:    string(types.ActionRestart),
			EnvVars:  []string{"ACTION"},
			Category: "Action",
		},
		&cli.BoolFlag{
			Name:     "no-wait",
			Usage:    "do not wait for the instance to reach the target status",
			EnvVars:  []string{"NO_WAIT"},
			Category: "Action",
		},
		&cli.StringFlag{
			Name:     "wait-for",
			Usage:    "what to poll while waiting: status (instance status) or operation (GCP zonal operation)",
			Value:    string(types.WaitForStatus),
			EnvVars:  []string{"WAIT_FOR"},
			Category: "Action",
		},
		&cli.DurationFlag{
			Name:     "poll-interval",
			Usage:    "interval between two status checks",
			Value:    config.DefaultPollInterval,
			EnvVars:  []string{"POLL_INTERVAL"},
			Category: "Action",
		},
		&cli.IntFlag{
			Name:     "poll-attempts",
			Usage:    "number of status checks after the first one before reporting a timeout",
			Value:    config.DefaultPollAttempts,
			EnvVars:  []string{"POLL_ATTEMPTS"},
			Category: "Action",
		},
		&cli.DurationFlag{
			Name:     "timeout",
			Usage:    "maximum duration of one action, 0 for no limit; a restart waits twice, so keep it above 2 x (poll-attempts+1) x poll-interval",
			Value:    config.DefaultTimeout,
			EnvVars:  []string{"TIMEOUT"},
			Category: "Action",
		},
		&cli.StringFlag{
			Name:     "log-level",
			Usage:    "set log level (debug, info(*), warning, error, fatal, panic)",
			Value:    DefaultLogLevel,
			EnvVars:  []string{"LOG_LEVEL"},
			Category: "Logging",
		},
		&cli.BoolFlag{
			Name:     "json",
			Usage:    "produce log in JSON format: Logstash and Splunk friendly",
			EnvVars:  []string{"LOG_JSON"},
			Category: "Logging",
		},
		&cli.BoolFlag{
			Name:     "develop-mode",
			Usage:    "enable develop mode",
			EnvVars:  []string{"DEV_MODE"},
			Category: "Development",
		},
	}
}

func newApp() *cli.App {
	serveFlags := append(instanceFlags(), &cli.IntFlag{
		Name:     "port",
		Usage:    "HTTP port to listen on",
		Value:    config.DefaultPort,
		EnvVars:  []string{"PORT"},
		Category: "Server",
	})

	return &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "stop, start or restart the instance once",
				Flags:  instanceFlags(),
				Action: runCmd,
			},
			{
				Name:   "serve",
				Usage:  "serve an HTTP endpoint that stops, starts or restarts the instance",
				Flags:  serveFlags,
				Action: serveCmd,
			},
		},
		Name:    "vmcycle",
		Usage:   "stops, starts or restarts a single cloud VM instance",
		Version: version,
	}
}

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Printf("vmcycle %s\n", version)
		fmt.Printf("  Build date: %s\n", buildDate)
		fmt.Printf("  Git commit: %s\n", gitCommit)
		fmt.Printf("  Git branch: %s\n", gitBranch)
		fmt.Printf("  Built with: %s\n", runtime.Version())
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
