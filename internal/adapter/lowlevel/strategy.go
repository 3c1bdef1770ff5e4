// Package lowlevel implements the mode switch strategy that drives the
// interface directly: link down, iw type change, link up.
package lowlevel

import (
	"context"
	"fmt"

	"killshot/internal/pkg/logging"
	"killshot/internal/port"
	"killshot/internal/types"

	"github.com/sirupsen/logrus"
)

const Name = "lowlevel"

// Strategy is the low-level ModeSwitchStrategy. The interface keeps its name.
type Strategy struct {
	runner port.CommandRunner
	links  port.LinkController
	iwPath string
	logger *logrus.Entry
}

// Ensure Strategy implements the ModeSwitchStrategy port
var _ port.ModeSwitchStrategy = (*Strategy)(nil)

// NewStrategy creates the low-level strategy.
func NewStrategy(runner port.CommandRunner, links port.LinkController, iwPath string) *Strategy {
	return &Strategy{
		runner: runner,
		links:  links,
		iwPath: iwPath,
		logger: logging.WithComponent(Name),
	}
}

// WithLogger replaces the strategy's logger.
func (s *Strategy) WithLogger(logger *logrus.Entry) *Strategy {
	s.logger = logger
	return s
}

// Name identifies the strategy.
func (s *Strategy) Name() string { return Name }

// Enable runs link down, `iw dev <iface> set monitor control`, link up.
func (s *Strategy) Enable(ctx context.Context, interfaceName string) (types.ModeTransitionResult, error) {
	return s.transition(ctx, interfaceName, types.ModeMonitor, "set", "monitor", "control")
}

// Disable runs link down, `iw dev <iface> set type managed`, link up.
func (s *Strategy) Disable(ctx context.Context, interfaceName string) (types.ModeTransitionResult, error) {
	return s.transition(ctx, interfaceName, types.ModeManaged, "set", "type", "managed")
}

func (s *Strategy) transition(ctx context.Context, interfaceName string, target types.Mode, iwArgs ...string) (types.ModeTransitionResult, error) {
	logger := s.logger.WithFields(logrus.Fields{"interface": interfaceName, "target": target})
	res := types.ModeTransitionResult{Interface: interfaceName, Strategy: Name, Target: target}

	logger.Debug("Bringing link down")
	if err := s.links.LinkDown(ctx, interfaceName); err != nil {
		if types.IsFatal(err) {
			return res, err
		}
		res.Message = fmt.Sprintf("link down: %v", err)
		logger.WithError(err).Error("Failed to bring link down")
		return res, nil
	}

	args := append([]string{"dev", interfaceName}, iwArgs...)
	out, err := s.runner.Run(ctx, types.NewCommand(s.iwPath, args...))
	if err != nil {
		s.recoverLink(ctx, logger, interfaceName)
		return res, err
	}
	if !out.Success() {
		res.Message = out.Diagnostic()
		logger.WithField("exit_code", out.ExitCode).Error("iw failed to change interface type")
		s.recoverLink(ctx, logger, interfaceName)
		return res, nil
	}

	logger.Debug("Bringing link up")
	if err := s.links.LinkUp(ctx, interfaceName); err != nil {
		if types.IsFatal(err) {
			return res, err
		}
		res.Message = fmt.Sprintf("link up: %v", err)
		logger.WithError(err).Error("Failed to bring link up")
		return res, nil
	}

	res.Success = true
	logger.Info("Interface type changed")
	return res, nil
}

// recoverLink brings the interface back up after a failed type change.
func (s *Strategy) recoverLink(ctx context.Context, logger *logrus.Entry, interfaceName string) {
	if err := s.links.LinkUp(context.WithoutCancel(ctx), interfaceName); err != nil {
		logger.WithError(err).Warn("Failed to bring link back up")
	}
}
