package cmd

import (
	"fmt"
	"text/tabwriter"

	"killshot/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var servicesKillFlag bool

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Stop, restore or inspect services that interfere with monitor mode",
}

var servicesStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the configured network services",
	Long: `Stop the configured network services.

Networking stays down until "killshot services restore" is run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := buildApp(cfg)
		if err := requirePrivileges(a); err != nil {
			return err
		}

		if err := a.interference.SuppressInterference(cmd.Context()); err != nil {
			return err
		}
		if servicesKillFlag {
			if err := a.interference.KillInterference(cmd.Context()); err != nil {
				logging.WithComponent("cli").WithError(err).Error("Killing interfering processes failed")
				fmt.Fprintln(cmd.ErrOrStderr(), `Networking services are stopped; run "killshot services restore" to start them again.`)
				return err
			}
		}
		return nil
	},
}

var servicesRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Start the configured network services again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := buildApp(cfg)
		if err := requirePrivileges(a); err != nil {
			return err
		}
		return a.interference.RestoreNetworking(cmd.Context())
	},
}

var servicesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "List running processes that interfere with monitor mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := buildApp(cfg)
		procs, err := a.interference.Interfering(cmd.Context())
		if err != nil {
			return err
		}

		if len(procs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No interfering processes found.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PID\tNAME")
		for _, p := range procs {
			fmt.Fprintf(w, "%d\t%s\n", p.PID, p.Name)
		}
		return w.Flush()
	},
}

func init() {
	servicesStopCmd.Flags().BoolVar(&servicesKillFlag, "kill", false, "Also kill interfering processes with airmon-ng check kill")
	servicesCmd.AddCommand(servicesStopCmd, servicesRestoreCmd, servicesCheckCmd)
	rootCmd.AddCommand(servicesCmd)
}
