package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var devicesWirelessFlag bool

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List network devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := buildApp(cfg)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		defer w.Flush()

		if devicesWirelessFlag {
			ifaces, err := a.devices.ListWireless()
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "INTERFACE\tPHY\tMAC\tMODE\tTYPE")
			for _, iface := range ifaces {
				fmt.Fprintf(w, "%s\tphy%d\t%s\t%s\t%s\n", iface.Name, iface.PHY, iface.HardwareAddr, iface.Mode, iface.Type)
			}
			return nil
		}

		devices, err := a.devices.ListDevices()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "DEVICE\tTYPE\tSTATUS")
		for _, d := range devices {
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, d.Type, d.Status)
		}
		return nil
	},
}

var devicesInfoCmd = &cobra.Command{
	Use:   "info <interface>",
	Short: "Show iw details for a wireless device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := buildApp(cfg)
		out, err := a.devices.DeviceInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	devicesCmd.Flags().BoolVarP(&devicesWirelessFlag, "wireless", "w", false, "List only nl80211 wireless interfaces")
	devicesCmd.AddCommand(devicesInfoCmd)
	rootCmd.AddCommand(devicesCmd)
}
