// Package interference stops and restores the services that compete with
// monitor mode for control of wireless interfaces.
package interference

import (
	"context"
	"errors"
	"fmt"

	"killshot/internal/pkg/logging"
	"killshot/internal/port"
	"killshot/internal/types"

	"github.com/sirupsen/logrus"
)

// Coordinator is the InterferenceCoordinator adapter.
type Coordinator struct {
	services   port.ServiceManager
	runner     port.CommandRunner
	processes  port.ProcessLister
	airmonPath string
	units      []string
	watchList  []string
	logger     *logrus.Entry
}

// Ensure Coordinator implements the InterferenceCoordinator port
var _ port.InterferenceCoordinator = (*Coordinator)(nil)

// NewCoordinator creates a coordinator for the given service units and
// interfering process names.
func NewCoordinator(services port.ServiceManager, runner port.CommandRunner, processes port.ProcessLister, airmonPath string, units, watchList []string) *Coordinator {
	return &Coordinator{
		services:   services,
		runner:     runner,
		processes:  processes,
		airmonPath: airmonPath,
		units:      units,
		watchList:  watchList,
		logger:     logging.WithComponent("interference"),
	}
}

// WithLogger replaces the coordinator's logger.
func (c *Coordinator) WithLogger(logger *logrus.Entry) *Coordinator {
	c.logger = logger
	return c
}

// SuppressInterference stops the configured units in order. If a unit fails
// to stop, the units already stopped are started again and the error is returned.
func (c *Coordinator) SuppressInterference(ctx context.Context) error {
	stopped := make([]string, 0, len(c.units))
	for _, unit := range c.units {
		logger := c.logger.WithField("unit", unit)
		logger.Info("Stopping service")

		if err := c.services.Stop(ctx, unit); err != nil {
			logger.WithError(err).Error("Failed to stop service, rolling back")
			if rerr := c.start(context.WithoutCancel(ctx), reversed(stopped)); rerr != nil {
				return errors.Join(err, rerr)
			}
			return err
		}
		stopped = append(stopped, unit)
	}
	return nil
}

// KillInterference runs `airmon-ng check kill`.
func (c *Coordinator) KillInterference(ctx context.Context) error {
	c.logger.Info("Killing interfering processes")

	cmd := types.NewCommand(c.airmonPath, "check", "kill")
	out, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if !out.Success() {
		return &types.ServiceError{
			Op:   "kill",
			Unit: "interfering processes",
			Err:  fmt.Errorf("%s exited with status %d: %s", cmd, out.ExitCode, out.Diagnostic()),
		}
	}
	return nil
}

// RestoreNetworking starts the configured units in reverse order. Every unit
// is attempted; failures are joined.
func (c *Coordinator) RestoreNetworking(ctx context.Context) error {
	return c.start(ctx, reversed(c.units))
}

// Interfering lists running processes known to interfere with monitor mode.
func (c *Coordinator) Interfering(ctx context.Context) ([]types.InterferingProcess, error) {
	procs, err := c.processes.FindByName(ctx, c.watchList)
	if err != nil {
		return nil, fmt.Errorf("failed to list interfering processes: %w", err)
	}
	return procs, nil
}

// WithSuppressed runs fn with interference suppressed on this coordinator.
func (c *Coordinator) WithSuppressed(ctx context.Context, kill bool, fn func(context.Context) error) error {
	return WithSuppressed(ctx, c, c.logger, kill, fn)
}

func (c *Coordinator) start(ctx context.Context, units []string) error {
	var errs []error
	for _, unit := range units {
		logger := c.logger.WithField("unit", unit)
		logger.Info("Starting service")

		if err := c.services.Start(ctx, unit); err != nil {
			logger.WithError(err).Error("Failed to start service")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithSuppressed suppresses interference, optionally kills interfering
// processes, runs fn and restores networking exactly once on every path
// after a successful suppression. Restoration ignores cancellation of ctx.
// A restore failure is logged to logger and joined into the returned error.
func WithSuppressed(ctx context.Context, coord port.InterferenceCoordinator, logger *logrus.Entry, kill bool, fn func(context.Context) error) (err error) {
	if err := coord.SuppressInterference(ctx); err != nil {
		return err
	}

	defer func() {
		if rerr := coord.RestoreNetworking(context.WithoutCancel(ctx)); rerr != nil {
			logger.WithError(rerr).Error("Failed to restore networking")
			err = errors.Join(err, rerr)
		}
	}()

	if kill {
		if err := coord.KillInterference(ctx); err != nil {
			return err
		}
	}
	return fn(ctx)
}

func reversed(units []string) []string {
	out := make([]string, len(units))
	for i, unit := range units {
		out[len(units)-1-i] = unit
	}
	return out
}
