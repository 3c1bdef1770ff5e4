package config

import (
	"fmt"
	"os"
	"time"

	"killshot/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	StrategyAirmon   = "airmon"
	StrategyLowLevel = "lowlevel"

	LinkBackendIP      = "ip"
	LinkBackendNetlink = "netlink"

	ServiceBackendSystemctl = "systemctl"
	ServiceBackendDBus      = "dbus"
)

// ToolsConfig names the external binaries. Bare names are resolved through PATH.
type ToolsConfig struct {
	Airmon    string `yaml:"airmon"`
	IP        string `yaml:"ip"`
	IW        string `yaml:"iw"`
	IWList    string `yaml:"iwlist"`
	Systemctl string `yaml:"systemctl"`
}

// ServicesConfig represents the interfering services and processes
type ServicesConfig struct {
	Backend   string   `yaml:"backend"`
	Units     []string `yaml:"units"`
	Processes []string `yaml:"processes"`
}

// Config represents the main configuration structure
type Config struct {
	Logging        logging.LogConfig `yaml:"logging"`
	Strategy       string            `yaml:"strategy"`
	LinkBackend    string            `yaml:"link_backend"`
	Verify         bool              `yaml:"verify"`
	CommandTimeout time.Duration     `yaml:"command_timeout"`
	Tools          ToolsConfig       `yaml:"tools"`
	Services       ServicesConfig    `yaml:"services"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "simple",
		},
		Strategy:    StrategyAirmon,
		LinkBackend: LinkBackendIP,
		Verify:      true,
		Tools: ToolsConfig{
			Airmon:    "airmon-ng",
			IP:        "ip",
			IW:        "iw",
			IWList:    "iwlist",
			Systemctl: "systemctl",
		},
		Services: ServicesConfig{
			Backend: ServiceBackendSystemctl,
			Units:   []string{"NetworkManager", "wpa_supplicant"},
			Processes: []string{
				"NetworkManager",
				"wpa_supplicant",
				"dhclient",
				"dhcpcd",
				"avahi-daemon",
				"wpa_action",
				"ifplugd",
				"udhcpc",
				"iwd",
			},
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Strategy {
	case StrategyAirmon, StrategyLowLevel:
	default:
		return fmt.Errorf("unknown strategy %q: must be %s or %s", c.Strategy, StrategyAirmon, StrategyLowLevel)
	}

	switch c.LinkBackend {
	case LinkBackendIP, LinkBackendNetlink:
	default:
		return fmt.Errorf("unknown link_backend %q: must be %s or %s", c.LinkBackend, LinkBackendIP, LinkBackendNetlink)
	}

	switch c.Services.Backend {
	case ServiceBackendSystemctl, ServiceBackendDBus:
	default:
		return fmt.Errorf("unknown services backend %q: must be %s or %s", c.Services.Backend, ServiceBackendSystemctl, ServiceBackendDBus)
	}

	if c.CommandTimeout < 0 {
		return fmt.Errorf("command_timeout must not be negative")
	}

	if err := c.validateTools(); err != nil {
		return err
	}

	for _, unit := range c.Services.Units {
		if unit == "" {
			return fmt.Errorf("services: unit names must not be empty")
		}
	}

	return nil
}

func (c *Config) validateTools() error {
	tools := map[string]string{
		"airmon":    c.Tools.Airmon,
		"ip":        c.Tools.IP,
		"iw":        c.Tools.IW,
		"iwlist":    c.Tools.IWList,
		"systemctl": c.Tools.Systemctl,
	}
	for name, path := range tools {
		if path == "" {
			return fmt.Errorf("tools: %s binary is required", name)
		}
	}
	return nil
}
