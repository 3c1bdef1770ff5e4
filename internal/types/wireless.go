// Package types defines common types used across the application.
package types

import (
	"fmt"
	"net"
	"strings"
)

// Mode is the operating mode of a wireless interface.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeManaged
	ModeMonitor
)

func (m Mode) String() string {
	switch m {
	case ModeManaged:
		return "managed"
	case ModeMonitor:
		return "monitor"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name as accepted on the command line.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "managed", "station":
		return ModeManaged, nil
	case "monitor":
		return ModeMonitor, nil
	}
	return ModeUnknown, fmt.Errorf("unknown mode %q", s)
}

// ModeTransitionRequest asks for an interface to be switched to a mode.
// It is created per invocation and never persisted.
type ModeTransitionRequest struct {
	Interface string
	Mode      Mode
}

// Validate rejects requests without an interface name or with a target mode
// other than managed or monitor.
func (r ModeTransitionRequest) Validate() error {
	if strings.TrimSpace(r.Interface) == "" {
		return ErrEmptyInterface
	}
	if r.Mode != ModeManaged && r.Mode != ModeMonitor {
		return fmt.Errorf("interface %s: cannot transition to %s mode", r.Interface, r.Mode)
	}
	return nil
}

// ModeTransitionResult is the outcome of a transition attempt.
// Interface holds the resulting name, which differs from the requested one
// when the tool created a monitor alias (e.g. wlan0 -> wlan0mon).
type ModeTransitionResult struct {
	Success   bool
	Interface string
	Message   string
	Strategy  string
	Target    Mode
}

// Err returns a TransitionError for a failed result and nil otherwise.
func (r ModeTransitionResult) Err() error {
	if r.Success {
		return nil
	}
	return &TransitionError{
		Interface: r.Interface,
		Target:    r.Target,
		Strategy:  r.Strategy,
		Message:   r.Message,
	}
}

// WirelessInterface is the nl80211 view of a wireless interface.
type WirelessInterface struct {
	Name         string
	Index        int
	PHY          int
	HardwareAddr net.HardwareAddr
	Mode         Mode
	Type         string // raw nl80211 interface type, e.g. "station"
}

// NetworkDevice is the link-layer view of any network interface.
type NetworkDevice struct {
	Name   string
	Index  int
	Type   string // link encapsulation, e.g. "ether", "loopback", "ieee802.11/radiotap"
	Status string // UP or DOWN
}

// InterferingProcess is a running process known to fight over wireless interfaces.
type InterferingProcess struct {
	PID  int32
	Name string
}
