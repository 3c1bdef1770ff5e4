package cmd

import (
	"errors"
	"fmt"

	"killshot/internal/pkg/logging"
	"killshot/internal/types"

	"github.com/spf13/cobra"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Enable or disable monitor mode on an interface",
}

var monitorEnableCmd = &cobra.Command{
	Use:   "enable <interface>",
	Short: "Switch an interface to monitor mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransition(cmd, args[0], types.ModeMonitor)
	},
}

var monitorDisableCmd = &cobra.Command{
	Use:   "disable <interface>",
	Short: "Switch an interface back to managed mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransition(cmd, args[0], types.ModeManaged)
	},
}

func runTransition(cmd *cobra.Command, iface string, target types.Mode) error {
	a := buildApp(cfg)
	if err := requirePrivileges(a); err != nil {
		return err
	}

	var (
		res types.ModeTransitionResult
		err error
	)
	if target == types.ModeMonitor {
		res, err = a.modes.EnableMonitorMode(cmd.Context(), iface)
	} else {
		res, err = a.modes.DisableMonitorMode(cmd.Context(), iface)
	}
	if err != nil {
		if errors.Is(err, types.ErrInterfaceNotFound) {
			showWirelessDevices(cmd, a)
		}
		return err
	}
	if !res.Success {
		showWirelessDevices(cmd, a)
		return res.Err()
	}

	logging.WithComponentAndInterface("cli", iface).
		WithField("result", res.Interface).
		Infof("Interface is now in %s mode", target)
	fmt.Fprintln(cmd.OutOrStdout(), res.Interface)
	return nil
}

func init() {
	monitorCmd.AddCommand(monitorEnableCmd, monitorDisableCmd)
	rootCmd.AddCommand(monitorCmd)
}
