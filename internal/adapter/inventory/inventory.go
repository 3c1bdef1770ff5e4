// Package inventory lists the network devices the host knows about.
package inventory

import (
	"context"
	"fmt"
	"net"
	"sort"

	"killshot/internal/pkg/logging"
	"killshot/internal/port"
	"killshot/internal/types"

	"github.com/sirupsen/logrus"
)

// Inventory reads links from rtnetlink, wireless interfaces from nl80211
// and per-device details from iw.
type Inventory struct {
	networkMgr port.NetworkManager
	wireless   port.WirelessClient
	runner     port.CommandRunner
	iwPath     string
	logger     *logrus.Entry
}

// NewInventory creates a device inventory.
func NewInventory(networkMgr port.NetworkManager, wireless port.WirelessClient, runner port.CommandRunner, iwPath string) *Inventory {
	return &Inventory{
		networkMgr: networkMgr,
		wireless:   wireless,
		runner:     runner,
		iwPath:     iwPath,
		logger:     logging.WithComponent("inventory"),
	}
}

// WithLogger replaces the inventory's logger.
func (i *Inventory) WithLogger(logger *logrus.Entry) *Inventory {
	i.logger = logger
	return i
}

// ListDevices returns every network link ordered by index.
func (i *Inventory) ListDevices() ([]types.NetworkDevice, error) {
	links, err := i.networkMgr.ListLinks()
	if err != nil {
		return nil, err
	}

	devices := make([]types.NetworkDevice, 0, len(links))
	for _, link := range links {
		attrs := link.Attrs()
		if attrs == nil {
			continue
		}
		status := "DOWN"
		if attrs.Flags&net.FlagUp != 0 {
			status = "UP"
		}
		devices = append(devices, types.NetworkDevice{
			Name:   attrs.Name,
			Index:  attrs.Index,
			Type:   attrs.EncapType,
			Status: status,
		})
	}
	sort.Slice(devices, func(a, b int) bool { return devices[a].Index < devices[b].Index })

	i.logger.WithField("count", len(devices)).Debug("Listed network devices")
	return devices, nil
}

// ListWireless returns the nl80211 wireless interfaces ordered by name.
func (i *Inventory) ListWireless() ([]types.WirelessInterface, error) {
	ifaces, err := i.wireless.Interfaces()
	if err != nil {
		return nil, err
	}
	sort.Slice(ifaces, func(a, b int) bool { return ifaces[a].Name < ifaces[b].Name })
	return ifaces, nil
}

// DeviceInfo returns the raw output of `iw dev <iface> info`.
func (i *Inventory) DeviceInfo(ctx context.Context, interfaceName string) (string, error) {
	if interfaceName == "" {
		return "", types.ErrEmptyInterface
	}

	cmd := types.NewCommand(i.iwPath, "dev", interfaceName, "info")
	out, err := i.runner.Run(ctx, cmd)
	if err != nil {
		return "", err
	}
	if !out.Success() {
		return "", fmt.Errorf("%s exited with status %d: %s", cmd, out.ExitCode, out.Diagnostic())
	}
	return out.Stdout, nil
}
