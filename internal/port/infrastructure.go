// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=infrastructure.go -destination=../mock/infrastructure.go -package=mock

import (
	"context"

	"killshot/internal/types"

	"github.com/vishvananda/netlink"
)

// CommandRunner is a port for external process execution.
// Implementations return a *types.ToolMissingError when the binary cannot be
// found. A process that runs and exits non-zero is not an error: the exit code
// is reported in the result.
type CommandRunner interface {
	// Run executes the command and waits for it to finish
	Run(ctx context.Context, cmd types.Command) (*types.CommandResult, error)
}

// NetworkManager is a port for network interface queries.
// This interface abstracts netlink operations.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListLinks returns every link known to the kernel
	ListLinks() ([]netlink.Link, error)
}

// LinkController is a port for bringing an interface administratively up or down.
type LinkController interface {
	// LinkDown brings the interface down
	LinkDown(ctx context.Context, interfaceName string) error

	// LinkUp brings the interface up
	LinkUp(ctx context.Context, interfaceName string) error
}

// WirelessClient is a port for nl80211 interface queries.
type WirelessClient interface {
	// Interfaces returns the wireless interfaces known to nl80211
	Interfaces() ([]types.WirelessInterface, error)
}

// ServiceManager is a port for starting and stopping system services.
type ServiceManager interface {
	// Start starts the named unit
	Start(ctx context.Context, unit string) error

	// Stop stops the named unit
	Stop(ctx context.Context, unit string) error
}

// ProcessLister is a port for inspecting running processes.
type ProcessLister interface {
	// FindByName returns running processes whose name is in names
	FindByName(ctx context.Context, names []string) ([]types.InterferingProcess, error)
}

// Prompter is a port for yes/no operator confirmation.
type Prompter interface {
	// Confirm asks the question and returns the answer, or defaultYes on empty input
	Confirm(question string, defaultYes bool) (bool, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool
}
