package cmd

import (
	"fmt"

	"github.com/rustyeddy/riskmate/config"
	"github.com/rustyeddy/riskmate/logs"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfgFile  string
	logLevel string

	cfg *config.Config
	log *logs.Logger
}

// NewRootCmd builds the riskmate command tree.
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "riskmate",
		Short: "Forex risk and lot size calculator",
		Long: `RiskMate sizes a forex position from your account balance, the share of it
you are willing to lose, and the distance between entry and stop.

Run without a subcommand for an interactive session, or use:
  riskmate calc --pair EURUSD --entry 1.1000 --stop 1.0950
  riskmate pairs`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runSession,
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file with session defaults (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(
		newCalcCmd(a),
		newPairsCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd, a
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return execute(newRootCmd())
}

// execute runs rootCmd and releases the logger whether or not it failed.
func execute(rootCmd *cobra.Command, a *app) error {
	defer a.close()
	return rootCmd.Execute()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.cfg = config.Default()
	if a.cfgFile != "" {
		cfg, err := config.LoadFromFile(a.cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}

	a.log = logs.New(a.cfg.Log, cmd.ErrOrStderr())
	return nil
}

func (a *app) close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}
