package cmd

import (
	"context"

	"killshot/internal/adapter/airmon"
	"killshot/internal/adapter/infrastructure/command"
	"killshot/internal/adapter/infrastructure/file"
	"killshot/internal/adapter/infrastructure/network"
	"killshot/internal/adapter/infrastructure/process"
	"killshot/internal/adapter/infrastructure/prompt"
	"killshot/internal/adapter/infrastructure/service"
	"killshot/internal/adapter/infrastructure/wireless"
	"killshot/internal/adapter/interference"
	"killshot/internal/adapter/inventory"
	"killshot/internal/adapter/lowlevel"
	"killshot/internal/adapter/mode"
	"killshot/internal/pkg/config"
	"killshot/internal/pkg/logging"
	"killshot/internal/pkg/privilege"
	"killshot/internal/port"
	"killshot/internal/types"
)

type interferenceService interface {
	port.InterferenceCoordinator
	Interfering(ctx context.Context) ([]types.InterferingProcess, error)
}

type deviceInventory interface {
	ListDevices() ([]types.NetworkDevice, error)
	ListWireless() ([]types.WirelessInterface, error)
	DeviceInfo(ctx context.Context, interfaceName string) (string, error)
}

// app holds the components a command works with.
type app struct {
	modes        port.InterfaceModeController
	interference interferenceService
	devices      deviceInventory
	prompter     port.Prompter
	files        port.FileManager
	privileged   func() (bool, error)
}

// buildApp is replaced in tests.
var buildApp = newApp

// newApp wires the adapters selected by the configuration.
func newApp(c *config.Config) *app {
	logger := logging.GetLogger()

	runner := command.NewRunnerAdapter(c.CommandTimeout)
	networkMgr := network.NewManagerAdapter()

	var links port.LinkController
	switch c.LinkBackend {
	case config.LinkBackendNetlink:
		links = networkMgr
	default:
		links = network.NewCommandAdapter(runner, c.Tools.IP)
	}

	var strategy port.ModeSwitchStrategy
	switch c.Strategy {
	case config.StrategyLowLevel:
		strategy = lowlevel.NewStrategy(runner, links, c.Tools.IW)
	default:
		strategy = airmon.NewStrategy(runner, c.Tools.Airmon)
	}

	var services port.ServiceManager
	switch c.Services.Backend {
	case config.ServiceBackendDBus:
		services = service.NewDBusAdapter()
	default:
		services = service.NewSystemctlAdapter(runner, c.Tools.Systemctl)
	}

	logger.WithFields(map[string]interface{}{
		"strategy":         strategy.Name(),
		"link_backend":     c.LinkBackend,
		"services_backend": c.Services.Backend,
	}).Debug("Created adapters")

	return &app{
		modes: mode.NewController(strategy, runner, networkMgr, c.Tools.Airmon, c.Tools.IWList, c.Verify),
		interference: interference.NewCoordinator(
			services, runner, process.NewListerAdapter(), c.Tools.Airmon, c.Services.Units, c.Services.Processes,
		),
		devices:    inventory.NewInventory(networkMgr, wireless.NewClientAdapter(), runner, c.Tools.IW),
		prompter:   prompt.NewPrompterAdapter(),
		files:      file.NewManagerAdapter(),
		privileged: privilege.HasRequiredPrivileges,
	}
}
