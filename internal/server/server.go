package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/doitintl/vmcycle/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 30 * time.Second
)

// ActionExecutor runs an action against an instance.
type ActionExecutor interface {
	Execute(ctx context.Context, ref types.InstanceRef, req types.ActionRequest) (*types.Outcome, error)
}

type Server struct {
	executor ActionExecutor
	ref      types.InstanceRef
	action   types.Action
	wait     bool
	logger   *logrus.Entry
}

// New creates an HTTP surface that runs actions against ref; action and wait are the defaults for requests
// that do not set the action and wait query parameters.
func New(logger *logrus.Entry, executor ActionExecutor, ref types.InstanceRef, action types.Action, wait bool) *Server {
	if action == "" {
		action = types.ActionRestart
	}
	return &Server{
		executor: executor,
		ref:      ref,
		action:   action,
		wait:     wait,
		logger:   logger,
	}
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", addr)
	}
	return s.serve(ctx, listener)
}

func (s *Server) serve(ctx context.Context, listener net.Listener) error {
	serv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Serve(listener)
	}()

	s.logger.WithField("address", listener.Addr().String()).Info("HTTP server started")

	select {
	case err := <-errCh:
		return errors.Wrap(err, "HTTP server stopped")
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := serv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shutdown HTTP server")
	}
	return nil
}

func (s *Server) Router() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	router.GET("/", s.handleAction)
	router.POST("/", s.handleAction)
	router.GET("/healthz", s.handleHealth)

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"query":   c.Request.URL.RawQuery,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("handled request")
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) handleAction(c *gin.Context) {
	action, err := types.ParseAction(c.DefaultQuery("action", string(s.action)))
	if err != nil {
		c.String(http.StatusBadRequest, "Error: %v", err)
		return
	}

	wait := s.wait
	if value := c.Query("wait"); value != "" {
		if wait, err = strconv.ParseBool(value); err != nil {
			c.String(http.StatusBadRequest, "Error: invalid wait value %q", value)
			return
		}
	}

	// a caller hanging up does not end the action, only --timeout does
	ctx := context.WithoutCancel(c.Request.Context())
	outcome, err := s.executor.Execute(ctx, s.ref, types.ActionRequest{Action: action, Wait: wait})
	if err != nil {
		s.logger.WithError(err).WithField("action", action).Error("instance action failed")
		c.String(statusCode(err), "Error %s VM: %v", gerund(action), err)
		return
	}

	c.String(http.StatusOK, successMessage(outcome, wait))
}

// statusCode maps an execution error to the HTTP status returned to the caller.
func statusCode(err error) int {
	switch {
	case errors.Is(err, types.ErrConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func successMessage(outcome *types.Outcome, wait bool) string {
	where := fmt.Sprintf("VM '%s' in zone '%s' (project: %s)", outcome.Instance, outcome.Zone, outcome.Project)
	if !wait {
		return fmt.Sprintf("Requested %s of %s", outcome.Action, where)
	}
	return fmt.Sprintf("%s %s", pastTense(outcome.Action), where)
}

func gerund(action types.Action) string {
	switch action {
	case types.ActionStart:
		return "starting"
	case types.ActionStop:
		return "stopping"
	default:
		return "restarting"
	}
}

func pastTense(action types.Action) string {
	switch action {
	case types.ActionStart:
		return "Started"
	case types.ActionStop:
		return "Stopped"
	default:
		return "Restarted"
	}
}
