// Package network provides network management adapter implementations.
package network

import (
	"context"
	"errors"
	"fmt"

	"killshot/internal/port"
	"killshot/internal/types"

	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the NetworkManager and
// LinkController ports using vishvananda/netlink library.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the NetworkManager and LinkController ports
var (
	_ port.NetworkManager = (*ManagerAdapter)(nil)
	_ port.LinkController = (*ManagerAdapter)(nil)
)

// NewManagerAdapter creates a new network manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// GetLinkByName returns a network link by interface name.
// A missing interface is reported as *types.NotFoundError.
func (n *ManagerAdapter) GetLinkByName(interfaceName string) (netlink.Link, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		var notFound netlink.LinkNotFoundError
		if errors.As(err, &notFound) {
			return nil, &types.NotFoundError{Interface: interfaceName, Err: err}
		}
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}
	return link, nil
}

// ListLinks returns every link known to the kernel.
func (n *ManagerAdapter) ListLinks() ([]netlink.Link, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// LinkDown brings the interface down.
func (n *ManagerAdapter) LinkDown(ctx context.Context, interfaceName string) error {
	link, err := n.GetLinkByName(interfaceName)
	if err != nil {
		return err
	}
	if err := netlink.LinkSetDown(link); err != nil {
		return fmt.Errorf("failed to set link %s down: %w", interfaceName, err)
	}
	return nil
}

// LinkUp brings the interface up.
func (n *ManagerAdapter) LinkUp(ctx context.Context, interfaceName string) error {
	link, err := n.GetLinkByName(interfaceName)
	if err != nil {
		return err
	}
	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("failed to set link %s up: %w", interfaceName, err)
	}
	return nil
}
