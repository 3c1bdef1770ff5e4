// Package command provides the external process execution adapter implementation.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"time"

	"killshot/internal/pkg/logging"
	"killshot/internal/port"
	"killshot/internal/types"
)

// RunnerAdapter is an adapter that implements the CommandRunner port using os/exec.
type RunnerAdapter struct {
	timeout time.Duration
}

// Ensure RunnerAdapter implements the CommandRunner port
var _ port.CommandRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new command runner adapter. A positive timeout
// bounds every invocation; zero means the caller's context is the only limit.
func NewRunnerAdapter(timeout time.Duration) *RunnerAdapter {
	return &RunnerAdapter{timeout: timeout}
}

// Run executes the command, capturing stdout and stderr.
func (r *RunnerAdapter) Run(ctx context.Context, cmd types.Command) (*types.CommandResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logger := logging.WithComponent("exec").WithField("command", cmd.String())
	logger.Debug("Running command")

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	result := &types.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return result, nil
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return nil, &types.ToolMissingError{Tool: cmd.Name, Err: err}
	}

	if ctx.Err() != nil {
		return nil, fmt.Errorf("%s: %w", cmd.Name, ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		logger.WithField("exit_code", result.ExitCode).Debug("Command exited with non-zero status")
		return result, nil
	}

	return nil, fmt.Errorf("failed to run %s: %w", cmd.Name, err)
}
