//go:build integration
// +build integration

package test

import (
	"context"
	"os"
	"os/exec"
	"testing"
	"time"

	"killshot/internal/adapter/airmon"
	"killshot/internal/adapter/infrastructure/command"
	"killshot/internal/adapter/infrastructure/network"
	"killshot/internal/adapter/lowlevel"
	"killshot/internal/adapter/mode"
	"killshot/internal/pkg/privilege"
	"killshot/internal/port"
	"killshot/internal/types"
)

// These tests drive a real wireless card. Set KILLSHOT_TEST_IFACE to a
// managed-mode interface that may be taken over, and run as root.
const ifaceEnv = "KILLSHOT_TEST_IFACE"

func requireHardware(t *testing.T) string {
	t.Helper()

	iface := os.Getenv(ifaceEnv)
	if iface == "" {
		t.Skipf("%s not set", ifaceEnv)
	}
	ok, err := privilege.HasRequiredPrivileges()
	if err != nil || !ok {
		t.Skip("requires root")
	}
	for _, tool := range []string{"airmon-ng", "iw", "iwlist", "ip"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not installed", tool)
		}
	}
	return iface
}

func TestMonitorModeRoundTrip(t *testing.T) {
	iface := requireHardware(t)

	runner := command.NewRunnerAdapter(30 * time.Second)
	networkMgr := network.NewManagerAdapter()

	strategies := map[string]port.ModeSwitchStrategy{
		airmon.Name:   airmon.NewStrategy(runner, "airmon-ng"),
		lowlevel.Name: lowlevel.NewStrategy(runner, networkMgr, "iw"),
	}

	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			c := mode.NewController(strategy, runner, networkMgr, "airmon-ng", "iwlist", true)

			before, err := c.QueryMode(ctx, iface)
			if err != nil {
				t.Fatalf("QueryMode(%s): %v", iface, err)
			}
			if before != types.ModeManaged {
				t.Fatalf("%s must start in managed mode, got %s", iface, before)
			}

			enabled, err := c.EnableMonitorMode(ctx, iface)
			if err != nil {
				t.Fatalf("EnableMonitorMode: %v", err)
			}
			if !enabled.Success {
				t.Fatalf("EnableMonitorMode failed: %s", enabled.Message)
			}
			t.Logf("monitor interface: %s", enabled.Interface)

			// Best effort: leave the card as we found it
			defer func() {
				if _, err := c.DisableMonitorMode(context.Background(), enabled.Interface); err != nil {
					t.Logf("cleanup: %v", err)
				}
			}()

			out, err := c.ScanForNetworks(ctx, enabled.Interface)
			if err != nil {
				t.Logf("scan through %s: %v", enabled.Interface, err)
			} else {
				t.Logf("scan output: %d bytes", len(out))
			}

			disabled, err := c.DisableMonitorMode(ctx, enabled.Interface)
			if err != nil {
				t.Fatalf("DisableMonitorMode: %v", err)
			}
			if !disabled.Success {
				t.Fatalf("DisableMonitorMode failed: %s", disabled.Message)
			}

			after, err := c.QueryMode(ctx, disabled.Interface)
			if err != nil {
				t.Fatalf("QueryMode(%s): %v", disabled.Interface, err)
			}
			if after != before {
				t.Errorf("mode after round trip = %s, want %s", after, before)
			}
		})
	}
}

func TestMissingTool(t *testing.T) {
	runner := command.NewRunnerAdapter(0)

	_, err := runner.Run(context.Background(), types.NewCommand("killshot-no-such-airmon", "status"))
	if !types.IsFatal(err) {
		t.Fatalf("expected fatal ToolMissing error, got %v", err)
	}
}
