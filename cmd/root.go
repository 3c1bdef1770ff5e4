package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"killshot/internal/pkg/config"
	"killshot/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configFlag    string
	logLevelFlag  string
	logFormatFlag string
	logFileFlag   string
	strategyFlag  string
	verboseFlag   bool

	cfg *config.Config
)

var errNotPrivileged = errors.New("this command must be run as root or with administrator privileges")

var rootCmd = &cobra.Command{
	Use:           "killshot",
	Short:         "killshot scans for wireless networks and manages monitor mode",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = c
		logging.InitLogger(cfg.Logging)
		return nil
	},
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.Default()
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.Logging.Level = logLevelFlag
	}
	if verboseFlag {
		c.Logging.Level = "debug"
	}
	if flags.Changed("log-format") {
		c.Logging.Format = logFormatFlag
	}
	if flags.Changed("log-file") {
		c.Logging.File = logFileFlag
	}
	if flags.Changed("strategy") {
		c.Strategy = strategyFlag
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return c, nil
}

// requirePrivileges fails unless the process may reconfigure interfaces.
func requirePrivileges(a *app) error {
	ok, err := a.privileged()
	if err != nil {
		return err
	}
	if !ok {
		return errNotPrivileged
	}
	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	cobra.CheckErr(err)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	flags.StringVar(&logLevelFlag, "log-level", "info", "Log level: debug, info, warn, error or 1-5")
	flags.StringVar(&logFormatFlag, "log-format", "simple", "Log format: simple, compact, text or json")
	flags.StringVar(&logFileFlag, "log-file", "", "Also append logs to this file")
	flags.StringVar(&strategyFlag, "strategy", config.StrategyAirmon, "Mode switch strategy: airmon or lowlevel")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output (debug logging)")
}
