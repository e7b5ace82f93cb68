package cmd

import (
	"fmt"

	"github.com/rustyeddy/riskmate/input"
	"github.com/rustyeddy/riskmate/market"
	"github.com/rustyeddy/riskmate/report"
	"github.com/rustyeddy/riskmate/risk"
	"github.com/spf13/cobra"
)

// Numeric flags are kept as text and go through input.ParseFloat, so NaN
// and infinities are rejected the same way the prompts reject them.
type calcFlags struct {
	balance  string
	riskPct  string
	pair     string
	entry    string
	stop     string
	pipSize  string
	pipValue string
	json     bool
}

func newCalcCmd(a *app) *cobra.Command {
	f := &calcFlags{}

	c := &cobra.Command{
		Use:   "calc",
		Short: "Size one position from flags",
		Long: `Compute the lot size and 1R/2R/3R targets without prompting.

Balance, risk and pair default to the config values. Pairs missing from
the catalog need --pip-size and --pip-value.

Examples:
  riskmate calc --pair EURUSD --entry 1.1000 --stop 1.0950
  riskmate calc --balance 5000 --risk 2 --pair XAUUSD --entry 1900 --stop 1895 --json
  riskmate calc --pair BTCUSD --pip-size 1 --pip-value 1 --entry 60000 --stop 59500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCalc(cmd, f)
		},
	}

	c.Flags().StringVarP(&f.balance, "balance", "b", "", "account balance in USD")
	c.Flags().StringVarP(&f.riskPct, "risk", "r", "", "risk percent of balance (1 means 1%)")
	c.Flags().StringVarP(&f.pair, "pair", "p", "", "pair symbol, e.g. EURUSD")
	c.Flags().StringVarP(&f.entry, "entry", "e", "", "entry price (required)")
	c.Flags().StringVarP(&f.stop, "stop", "s", "", "stop loss price (required)")
	c.Flags().StringVar(&f.pipSize, "pip-size", "", "pip size for a pair not in the catalog")
	c.Flags().StringVar(&f.pipValue, "pip-value", "", "USD pip value per lot for a pair not in the catalog")
	c.Flags().BoolVar(&f.json, "json", false, "print the result as JSON")
	_ = c.MarkFlagRequired("entry")
	_ = c.MarkFlagRequired("stop")

	return c
}

// number parses the value of flag name, or returns def when it was not set.
func number(cmd *cobra.Command, name, raw string, def float64) (float64, error) {
	if !cmd.Flags().Changed(name) {
		return def, nil
	}
	v, err := input.ParseFloat(raw)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return v, nil
}

func (a *app) runCalc(cmd *cobra.Command, f *calcFlags) error {
	flags := cmd.Flags()

	in := risk.Inputs{}
	var err error
	if in.Balance, err = number(cmd, "balance", f.balance, a.cfg.Session.Balance); err != nil {
		return err
	}
	if in.RiskPercent, err = number(cmd, "risk", f.riskPct, a.cfg.Session.RiskPercent); err != nil {
		return err
	}
	if in.Entry, err = number(cmd, "entry", f.entry, 0); err != nil {
		return err
	}
	if in.Stop, err = number(cmd, "stop", f.stop, 0); err != nil {
		return err
	}
	if !flags.Changed("pair") {
		f.pair = a.cfg.Session.Pair
	}

	in.Pair, _, err = market.Resolve(market.Normalize(f.pair), func(sym string) (float64, float64, error) {
		if !flags.Changed("pip-size") || !flags.Changed("pip-value") {
			return 0, 0, fmt.Errorf("pair %s is not in the catalog: set --pip-size and --pip-value", sym)
		}
		pipSize, err := number(cmd, "pip-size", f.pipSize, 0)
		if err != nil {
			return 0, 0, err
		}
		pipValue, err := number(cmd, "pip-value", f.pipValue, 0)
		if err != nil {
			return 0, 0, err
		}
		a.log.WithField("pair", sym).Warn("pair not in catalog, using manual spec")
		return pipSize, pipValue, nil
	})
	if err != nil {
		return err
	}

	c := a.calculate(in)

	r := report.FromCalculation(c)
	if f.json {
		return report.JSON(cmd.OutOrStdout(), r)
	}
	return report.Text(cmd.OutOrStdout(), r)
}
