// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=network.go -destination=../mock/network.go -package=mock

import (
	"context"

	"killshot/internal/types"
)

// ModeSwitchStrategy is one way of moving an interface between managed and
// monitor mode. The controller is strategy-agnostic; the low-level (ip/iw) and
// tool-assisted (airmon-ng) variants are both adapters of this port.
//
// A returned error is reserved for fatal conditions such as a missing tool.
// A tool that ran but failed yields a result with Success set to false.
type ModeSwitchStrategy interface {
	// Name identifies the strategy in logs and results
	Name() string

	// Enable switches the interface to monitor mode
	Enable(ctx context.Context, interfaceName string) (types.ModeTransitionResult, error)

	// Disable switches the interface back to managed mode
	Disable(ctx context.Context, interfaceName string) (types.ModeTransitionResult, error)
}

// InterfaceModeController is the primary port for interface mode management.
type InterfaceModeController interface {
	// QueryMode reports the current mode of the interface
	QueryMode(ctx context.Context, interfaceName string) (types.Mode, error)

	// EnableMonitorMode switches the interface to monitor mode and verifies the result
	EnableMonitorMode(ctx context.Context, interfaceName string) (types.ModeTransitionResult, error)

	// DisableMonitorMode switches the interface to managed mode and verifies the result
	DisableMonitorMode(ctx context.Context, interfaceName string) (types.ModeTransitionResult, error)

	// ScanForNetworks returns the raw output of the scan tool
	ScanForNetworks(ctx context.Context, interfaceName string) (string, error)
}

// InterferenceCoordinator is the primary port for stopping and restoring the
// services that fight over wireless interfaces. Every successful suppression
// must be paired with exactly one RestoreNetworking.
type InterferenceCoordinator interface {
	// SuppressInterference stops the configured network services
	SuppressInterference(ctx context.Context) error

	// KillInterference kills interfering processes through the monitor-mode helper
	KillInterference(ctx context.Context) error

	// RestoreNetworking restarts the configured network services
	RestoreNetworking(ctx context.Context) error
}
