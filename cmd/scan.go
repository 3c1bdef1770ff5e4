package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"killshot/internal/adapter/interference"
	"killshot/internal/pkg/logging"
	"killshot/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	scanYesFlag      bool
	scanSuppressFlag bool
	scanKillFlag     bool
	scanRestoreFlag  bool
	scanForceFlag    bool
	scanOutputFlag   string
	scanFilterFlag   []string
)

var errDeclined = errors.New("monitor mode is required for scanning")

var scanFilters = map[string]bool{"channel": true, "band": true}

var scanCmd = &cobra.Command{
	Use:   "scan <interface>",
	Short: "Scan for wireless networks through an interface",
	Long: `Scan for wireless networks through an interface.

The interface is switched to monitor mode first if needed, after asking for
confirmation unless --yes is given. The raw output of the scan tool is written
to stdout or to --output.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	iface := args[0]
	logger := logging.WithComponentAndInterface("scan", iface)

	for _, f := range scanFilterFlag {
		if !scanFilters[f] {
			return fmt.Errorf("unknown filter %q: must be channel or band", f)
		}
	}

	a := buildApp(cfg)
	if err := requirePrivileges(a); err != nil {
		return err
	}

	if scanOutputFlag != "" && !scanForceFlag && a.files.FileExists(scanOutputFlag) {
		return fmt.Errorf("output file %s already exists, use --force to overwrite", scanOutputFlag)
	}
	if len(scanFilterFlag) > 0 {
		logger.WithField("filters", strings.Join(scanFilterFlag, ",")).Info("Applying filters")
	}

	var output string
	work := func(ctx context.Context) error {
		scanIface, enabled, err := ensureMonitorMode(ctx, cmd, a, logger, iface)
		if err != nil {
			return err
		}
		if enabled && scanRestoreFlag {
			defer restoreManagedMode(ctx, a, logger, scanIface)
		}

		output, err = a.modes.ScanForNetworks(ctx, scanIface)
		return err
	}

	var err error
	switch {
	case scanSuppressFlag:
		err = interference.WithSuppressed(ctx, a.interference, logger, scanKillFlag, work)
	case scanKillFlag:
		logger.Warn("Killing interfering processes without --suppress, networking will not be restored")
		if err = a.interference.KillInterference(ctx); err == nil {
			err = work(ctx)
		}
	default:
		err = work(ctx)
	}
	if err != nil {
		return err
	}

	if scanOutputFlag == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}
	if err := a.files.WriteFile(scanOutputFlag, []byte(output), 0644); err != nil {
		return err
	}
	logger.WithField("file", scanOutputFlag).Info("Scan output written")
	return nil
}

// ensureMonitorMode returns the interface to scan through, switching it to
// monitor mode when the operator agrees. enabled reports whether this run
// changed the mode.
func ensureMonitorMode(ctx context.Context, cmd *cobra.Command, a *app, logger *logrus.Entry, iface string) (string, bool, error) {
	m, err := a.modes.QueryMode(ctx, iface)
	if err != nil {
		if errors.Is(err, types.ErrInterfaceNotFound) {
			showWirelessDevices(cmd, a)
		}
		return "", false, err
	}
	if m == types.ModeMonitor {
		logger.Info("Interface is already in monitor mode")
		return iface, false, nil
	}

	logger.Warn("Interface is not in monitor mode")
	if !scanYesFlag {
		ok, err := a.prompter.Confirm(fmt.Sprintf("Would you like killshot to attempt to enable monitor mode on %s?", iface), true)
		if err != nil {
			return "", false, err
		}
		if !ok {
			showWirelessDevices(cmd, a)
			return "", false, errDeclined
		}
	}

	res, err := a.modes.EnableMonitorMode(ctx, iface)
	if err != nil {
		return "", false, err
	}
	if !res.Success {
		showWirelessDevices(cmd, a)
		return "", false, res.Err()
	}
	logger.WithField("result", res.Interface).Info("Monitor mode enabled")
	return res.Interface, true, nil
}

func restoreManagedMode(ctx context.Context, a *app, logger *logrus.Entry, iface string) {
	res, err := a.modes.DisableMonitorMode(context.WithoutCancel(ctx), iface)
	if err == nil {
		err = res.Err()
	}
	if err != nil {
		logger.WithError(err).Error("Failed to switch interface back to managed mode")
		return
	}
	logger.WithField("result", res.Interface).Info("Interface switched back to managed mode")
}

func init() {
	flags := scanCmd.Flags()
	flags.BoolVarP(&scanYesFlag, "yes", "y", false, "Enable monitor mode without asking")
	flags.BoolVar(&scanSuppressFlag, "suppress", false, "Stop interfering services for the duration of the scan")
	flags.BoolVar(&scanKillFlag, "kill", false, "Kill interfering processes with airmon-ng check kill")
	flags.BoolVar(&scanRestoreFlag, "restore", false, "Switch the interface back to managed mode after scanning")
	flags.StringVarP(&scanOutputFlag, "output", "o", "", "Write scan output to a file instead of stdout")
	flags.BoolVar(&scanForceFlag, "force", false, "Overwrite an existing output file")
	flags.StringSliceVarP(&scanFilterFlag, "filter", "F", nil, "Filters to apply: channel, band")
	rootCmd.AddCommand(scanCmd)
}
