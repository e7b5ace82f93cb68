package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/riskmate/input"
	"github.com/rustyeddy/riskmate/market"
	"github.com/rustyeddy/riskmate/pkg/id"
	"github.com/rustyeddy/riskmate/report"
	"github.com/rustyeddy/riskmate/risk"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) runSession(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	p := input.NewPrompter(cmd.InOrStdin(), out)

	fmt.Fprintln(out, "=== RiskMate | Forex Risk & Lot Size Calculator ===")

	c, err := a.ask(p, out)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out)
		return nil
	}
	if err != nil {
		return err
	}

	return report.Text(out, report.FromCalculation(c))
}

// ask walks the user through one calculation.
func (a *app) ask(p *input.Prompter, out io.Writer) (risk.Calculation, error) {
	balance, err := p.AskFloatDefault("Account balance (USD): ", a.cfg.Session.Balance)
	if err != nil {
		return risk.Calculation{}, err
	}
	riskPct, err := p.AskFloatDefault("Risk % (e.g. 1): ", a.cfg.Session.RiskPercent)
	if err != nil {
		return risk.Calculation{}, err
	}

	fmt.Fprintln(out, "\nSupported pairs:")
	fmt.Fprintln(out, strings.Join(market.Symbols(), ", "))
	line, err := p.AskLine(fmt.Sprintf("Pair (e.g. EURUSD / XAUUSD): [%s] ", a.cfg.Session.Pair))
	if err != nil {
		return risk.Calculation{}, err
	}
	if line == "" {
		line = a.cfg.Session.Pair
	}

	spec, _, err := market.Resolve(market.Normalize(line), func(sym string) (float64, float64, error) {
		a.log.WithField("pair", sym).Warn("pair not in catalog, asking for manual spec")
		fmt.Fprintln(out, "\nThis pair is not in the list. Switching to manual entry.")
		pipSize, err := p.AskFloat("Pip size (e.g. 0.0001 for EURUSD, 0.01 for USDJPY): ")
		if err != nil {
			return 0, 0, err
		}
		pipValue, err := p.AskFloat("Pip value for 1.00 lot (USD) (majors ~10): ")
		if err != nil {
			return 0, 0, err
		}
		return pipSize, pipValue, nil
	})
	if err != nil {
		return risk.Calculation{}, err
	}

	entry, err := p.AskFloat("Entry price: ")
	if err != nil {
		return risk.Calculation{}, err
	}
	stop, err := p.AskFloat("Stop loss price: ")
	if err != nil {
		return risk.Calculation{}, err
	}

	return a.calculate(risk.Inputs{
		Balance:     balance,
		RiskPercent: riskPct,
		Pair:        spec,
		Entry:       entry,
		Stop:        stop,
	}), nil
}

// calculate runs one sizing and logs it under a fresh calculation id.
func (a *app) calculate(in risk.Inputs) risk.Calculation {
	c := risk.Calculate(in)

	entry := a.log.WithFields(logrus.Fields{
		"calc":      id.New(),
		"pair":      c.Pair.Symbol,
		"direction": c.Direction,
		"stop_pips": c.StopPips,
		"lots":      c.Lots,
	})
	if c.Lots == 0 {
		entry.Debug("lot size undefined for this stop or pip value")
	}
	entry.Info("position sized")

	return c
}
