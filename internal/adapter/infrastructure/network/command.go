package network

import (
	"context"
	"fmt"

	"killshot/internal/port"
	"killshot/internal/types"
)

// CommandAdapter implements the LinkController port by running `ip link set`.
type CommandAdapter struct {
	runner port.CommandRunner
	ipPath string
}

// Ensure CommandAdapter implements the LinkController port
var _ port.LinkController = (*CommandAdapter)(nil)

// NewCommandAdapter creates a link controller that shells out to the ip binary.
func NewCommandAdapter(runner port.CommandRunner, ipPath string) *CommandAdapter {
	return &CommandAdapter{runner: runner, ipPath: ipPath}
}

// LinkDown brings the interface down.
func (c *CommandAdapter) LinkDown(ctx context.Context, interfaceName string) error {
	return c.setLink(ctx, interfaceName, "down")
}

// LinkUp brings the interface up.
func (c *CommandAdapter) LinkUp(ctx context.Context, interfaceName string) error {
	return c.setLink(ctx, interfaceName, "up")
}

func (c *CommandAdapter) setLink(ctx context.Context, interfaceName, state string) error {
	cmd := types.NewCommand(c.ipPath, "link", "set", interfaceName, state)
	result, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("%s exited with status %d: %s", cmd, result.ExitCode, result.Diagnostic())
	}
	return nil
}
