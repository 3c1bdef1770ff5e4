// Package airmon implements the tool-assisted mode switch strategy on top of
// airmon-ng from the aircrack-ng suite.
package airmon

import (
	"context"
	"strings"

	"killshot/internal/pkg/logging"
	"killshot/internal/port"
	"killshot/internal/types"

	"github.com/sirupsen/logrus"
)

const Name = "airmon"

// Strategy is a tool-assisted ModeSwitchStrategy. airmon-ng may create a
// monitor alias (wlan0 -> wlan0mon); the resulting name is parsed from its output.
type Strategy struct {
	runner     port.CommandRunner
	airmonPath string
	logger     *logrus.Entry
}

// Ensure Strategy implements the ModeSwitchStrategy port
var _ port.ModeSwitchStrategy = (*Strategy)(nil)

// NewStrategy creates the airmon-ng strategy.
func NewStrategy(runner port.CommandRunner, airmonPath string) *Strategy {
	return &Strategy{
		runner:     runner,
		airmonPath: airmonPath,
		logger:     logging.WithComponent(Name),
	}
}

// WithLogger replaces the strategy's logger.
func (s *Strategy) WithLogger(logger *logrus.Entry) *Strategy {
	s.logger = logger
	return s
}

// Name identifies the strategy.
func (s *Strategy) Name() string { return Name }

// Enable runs `airmon-ng start <iface>`.
// A non-zero exit fails with stdout as the message; a zero exit without an
// "enabled on" line fails with stderr as the message.
func (s *Strategy) Enable(ctx context.Context, interfaceName string) (types.ModeTransitionResult, error) {
	logger := s.logger.WithField("interface", interfaceName)
	logger.Info("Starting monitor mode with airmon-ng")

	res := types.ModeTransitionResult{Interface: interfaceName, Strategy: Name, Target: types.ModeMonitor}

	out, err := s.runner.Run(ctx, types.NewCommand(s.airmonPath, "start", interfaceName))
	if err != nil {
		return res, err
	}

	if !out.Success() {
		res.Message = strings.TrimSpace(out.Stdout)
		logger.WithField("exit_code", out.ExitCode).Error("airmon-ng start failed")
		return res, nil
	}

	_, newName, ok := ParseEnabledInterface(out.Stdout)
	if !ok {
		res.Message = strings.TrimSpace(out.Stderr)
		if res.Message == "" {
			res.Message = "airmon-ng did not report an interface in monitor mode"
		}
		logger.WithField("stderr", res.Message).Error("airmon-ng start produced no monitor interface")
		return res, nil
	}

	res.Success = true
	res.Interface = newName
	logger.WithField("monitor_interface", newName).Info("airmon-ng enabled monitor mode")
	return res, nil
}

// Disable runs `airmon-ng stop <iface>`. Exit status decides success; the
// resulting managed interface name is parsed from the output when present.
// A non-zero exit fails with stdout as the message, or stderr when stdout is empty.
func (s *Strategy) Disable(ctx context.Context, interfaceName string) (types.ModeTransitionResult, error) {
	logger := s.logger.WithField("interface", interfaceName)
	logger.Info("Stopping monitor mode with airmon-ng")

	res := types.ModeTransitionResult{Interface: interfaceName, Strategy: Name, Target: types.ModeManaged}

	out, err := s.runner.Run(ctx, types.NewCommand(s.airmonPath, "stop", interfaceName))
	if err != nil {
		return res, err
	}

	if !out.Success() {
		res.Message = strings.TrimSpace(out.Stdout)
		if res.Message == "" {
			res.Message = strings.TrimSpace(out.Stderr)
		}
		logger.WithField("exit_code", out.ExitCode).Error("airmon-ng stop failed")
		return res, nil
	}

	if verb, name, ok := ParseEnabledInterface(out.Stdout); ok && verb != "monitor" {
		res.Interface = name
	}

	res.Success = true
	logger.WithField("managed_interface", res.Interface).Info("airmon-ng disabled monitor mode")
	return res, nil
}
