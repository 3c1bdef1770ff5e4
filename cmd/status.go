package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"killshot/internal/pkg/logging"
	"killshot/internal/types"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <interface>",
	Short: "Show whether an interface is in monitor mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := buildApp(cfg)

		m, err := a.modes.QueryMode(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, types.ErrInterfaceNotFound) {
				showWirelessDevices(cmd, a)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], m)
		return nil
	},
}

// showWirelessDevices lists the wireless devices on stderr so the operator
// can pick a valid interface after a failure.
func showWirelessDevices(cmd *cobra.Command, a *app) {
	ifaces, err := a.devices.ListWireless()
	if err != nil {
		logging.WithComponent("cli").WithError(err).Warn("Cannot list wireless devices")
		return
	}

	out := cmd.ErrOrStderr()
	if len(ifaces) == 0 {
		fmt.Fprintln(out, "No wireless devices found.")
		return
	}

	fmt.Fprintln(out, "Available wireless devices:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTERFACE\tPHY\tMODE")
	for _, iface := range ifaces {
		fmt.Fprintf(w, "%s\tphy%d\t%s\n", iface.Name, iface.PHY, iface.Mode)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
