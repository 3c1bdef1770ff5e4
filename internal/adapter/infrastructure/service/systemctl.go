// Package service provides system service manager adapter implementations.
package service

import (
	"context"
	"fmt"

	"killshot/internal/port"
	"killshot/internal/types"
)

// SystemctlAdapter implements the ServiceManager port by running systemctl.
type SystemctlAdapter struct {
	runner        port.CommandRunner
	systemctlPath string
}

// Ensure SystemctlAdapter implements the ServiceManager port
var _ port.ServiceManager = (*SystemctlAdapter)(nil)

// NewSystemctlAdapter creates a service manager that shells out to systemctl.
func NewSystemctlAdapter(runner port.CommandRunner, systemctlPath string) *SystemctlAdapter {
	return &SystemctlAdapter{runner: runner, systemctlPath: systemctlPath}
}

// Start starts the named unit.
func (s *SystemctlAdapter) Start(ctx context.Context, unit string) error {
	return s.run(ctx, "start", unit)
}

// Stop stops the named unit.
func (s *SystemctlAdapter) Stop(ctx context.Context, unit string) error {
	return s.run(ctx, "stop", unit)
}

func (s *SystemctlAdapter) run(ctx context.Context, op, unit string) error {
	result, err := s.runner.Run(ctx, types.NewCommand(s.systemctlPath, op, unit))
	if err != nil {
		return err
	}
	if !result.Success() {
		return &types.ServiceError{
			Op:   op,
			Unit: unit,
			Err:  fmt.Errorf("systemctl exited with status %d: %s", result.ExitCode, result.Diagnostic()),
		}
	}
	return nil
}
