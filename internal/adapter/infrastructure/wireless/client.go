// Package wireless provides the nl80211 client adapter implementation.
package wireless

import (
	"fmt"

	"killshot/internal/port"
	"killshot/internal/types"

	"github.com/mdlayher/wifi"
)

// ClientAdapter is an adapter that implements the WirelessClient port using mdlayher/wifi library.
type ClientAdapter struct{}

// Ensure ClientAdapter implements the WirelessClient port
var _ port.WirelessClient = (*ClientAdapter)(nil)

// NewClientAdapter creates a new nl80211 client adapter.
func NewClientAdapter() *ClientAdapter {
	return &ClientAdapter{}
}

// Interfaces returns the wireless interfaces known to nl80211.
func (c *ClientAdapter) Interfaces() ([]types.WirelessInterface, error) {
	client, err := wifi.New()
	if err != nil {
		return nil, fmt.Errorf("failed to open nl80211 client: %w", err)
	}
	defer client.Close()

	ifaces, err := client.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list wireless interfaces: %w", err)
	}

	result := make([]types.WirelessInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		// P2P device interfaces have no netdev name
		if iface.Name == "" {
			continue
		}
		result = append(result, convertInterface(iface))
	}
	return result, nil
}

func convertInterface(iface *wifi.Interface) types.WirelessInterface {
	return types.WirelessInterface{
		Name:         iface.Name,
		Index:        iface.Index,
		PHY:          iface.PHY,
		HardwareAddr: iface.HardwareAddr,
		Mode:         modeFromType(iface.Type),
		Type:         iface.Type.String(),
	}
}

func modeFromType(t wifi.InterfaceType) types.Mode {
	switch t {
	case wifi.InterfaceTypeMonitor:
		return types.ModeMonitor
	case wifi.InterfaceTypeStation:
		return types.ModeManaged
	default:
		return types.ModeUnknown
	}
}
