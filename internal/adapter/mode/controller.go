// Package mode implements the interface mode controller: it queries and
// changes the operating mode of a wireless interface and scans through it.
package mode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"killshot/internal/pkg/logging"
	"killshot/internal/port"
	"killshot/internal/types"

	"github.com/sirupsen/logrus"
)

// Controller is the InterfaceModeController adapter. Transitions are
// delegated to a ModeSwitchStrategy; the mode is read back from
// `airmon-ng status` after every transition when verification is on.
type Controller struct {
	strategy   port.ModeSwitchStrategy
	runner     port.CommandRunner
	networkMgr port.NetworkManager
	airmonPath string
	iwlistPath string
	verify     bool
	logger     *logrus.Entry
}

// Ensure Controller implements the InterfaceModeController port
var _ port.InterfaceModeController = (*Controller)(nil)

// NewController creates a mode controller around the given strategy.
func NewController(strategy port.ModeSwitchStrategy, runner port.CommandRunner, networkMgr port.NetworkManager, airmonPath, iwlistPath string, verify bool) *Controller {
	return &Controller{
		strategy:   strategy,
		runner:     runner,
		networkMgr: networkMgr,
		airmonPath: airmonPath,
		iwlistPath: iwlistPath,
		verify:     verify,
		logger:     logging.WithComponent("controller"),
	}
}

// WithLogger replaces the controller's logger.
func (c *Controller) WithLogger(logger *logrus.Entry) *Controller {
	c.logger = logger
	return c
}

// Strategy returns the name of the configured strategy.
func (c *Controller) Strategy() string {
	return c.strategy.Name()
}

// QueryMode reports whether the interface is in monitor mode.
// The interface must exist; a missing airmon-ng is a fatal *types.ToolMissingError.
func (c *Controller) QueryMode(ctx context.Context, interfaceName string) (types.Mode, error) {
	if err := c.checkInterface(interfaceName); err != nil {
		return types.ModeUnknown, err
	}

	out, err := c.runner.Run(ctx, types.NewCommand(c.airmonPath, "status"))
	if err != nil {
		return types.ModeUnknown, err
	}
	if !out.Success() {
		c.logger.WithField("interface", interfaceName).
			WithField("exit_code", out.ExitCode).
			Warn("airmon-ng status exited non-zero, inspecting output anyway")
	}

	mode := ParseMonitorModeStatus(out.Stdout, interfaceName)
	c.logger.WithField("interface", interfaceName).WithField("mode", mode).Debug("Queried interface mode")
	return mode, nil
}

// EnableMonitorMode switches the interface to monitor mode.
func (c *Controller) EnableMonitorMode(ctx context.Context, interfaceName string) (types.ModeTransitionResult, error) {
	return c.transition(ctx, types.ModeTransitionRequest{Interface: interfaceName, Mode: types.ModeMonitor})
}

// DisableMonitorMode switches the interface back to managed mode.
func (c *Controller) DisableMonitorMode(ctx context.Context, interfaceName string) (types.ModeTransitionResult, error) {
	return c.transition(ctx, types.ModeTransitionRequest{Interface: interfaceName, Mode: types.ModeManaged})
}

func (c *Controller) transition(ctx context.Context, req types.ModeTransitionRequest) (types.ModeTransitionResult, error) {
	res := types.ModeTransitionResult{Interface: req.Interface, Strategy: c.strategy.Name(), Target: req.Mode}
	if err := req.Validate(); err != nil {
		return res, err
	}
	if err := c.checkInterface(req.Interface); err != nil {
		return res, err
	}

	logger := c.logger.WithFields(logrus.Fields{
		"interface": req.Interface,
		"strategy":  c.strategy.Name(),
		"target":    req.Mode,
	})
	logger.Info("Switching interface mode")

	var err error
	if req.Mode == types.ModeMonitor {
		res, err = c.strategy.Enable(ctx, req.Interface)
	} else {
		res, err = c.strategy.Disable(ctx, req.Interface)
	}
	if err != nil || !res.Success {
		return res, err
	}

	if !c.verify {
		return res, nil
	}
	return c.verifyResult(ctx, logger, res)
}

// verifyResult re-reads the mode of the resulting interface. A zero exit
// status from the strategy is not trusted on its own. A monitor alias that
// vanished after a disable is not in monitor mode.
func (c *Controller) verifyResult(ctx context.Context, logger *logrus.Entry, res types.ModeTransitionResult) (types.ModeTransitionResult, error) {
	mode, err := c.QueryMode(ctx, res.Interface)
	if err != nil {
		if types.IsFatal(err) {
			return res, err
		}
		if res.Target == types.ModeManaged && errors.Is(err, types.ErrInterfaceNotFound) {
			logger.WithField("result", res.Interface).Info("Monitor interface removed")
			return res, nil
		}
		res.Success = false
		res.Message = fmt.Sprintf("verification failed: %v", err)
		logger.WithError(err).Error("Could not verify interface mode")
		return res, nil
	}

	reached := mode == types.ModeMonitor
	if res.Target != types.ModeMonitor {
		reached = mode != types.ModeMonitor
	}
	if !reached {
		res.Success = false
		res.Message = fmt.Sprintf("verification failed: %s reports %s mode", res.Interface, mode)
		logger.WithField("result", res.Interface).WithField("mode", mode).Error("Interface did not reach the requested mode")
		return res, nil
	}

	logger.WithField("result", res.Interface).Info("Interface mode verified")
	return res, nil
}

// ScanForNetworks runs `iwlist <iface> scanning` and returns its raw output.
func (c *Controller) ScanForNetworks(ctx context.Context, interfaceName string) (string, error) {
	if err := c.checkInterface(interfaceName); err != nil {
		return "", err
	}

	logger := c.logger.WithField("interface", interfaceName)
	logger.Info("Scanning for networks")

	cmd := types.NewCommand(c.iwlistPath, interfaceName, "scanning")
	out, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return "", err
	}
	if !out.Success() {
		return "", fmt.Errorf("%s exited with status %d: %s", cmd, out.ExitCode, out.Diagnostic())
	}
	return out.Stdout, nil
}

func (c *Controller) checkInterface(interfaceName string) error {
	if strings.TrimSpace(interfaceName) == "" {
		return types.ErrEmptyInterface
	}
	if _, err := c.networkMgr.GetLinkByName(interfaceName); err != nil {
		return err
	}
	return nil
}
