package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/rustyeddy/riskmate/market"
	"github.com/spf13/cobra"
)

func newPairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "List the built-in pair specifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PAIR\tPIP SIZE\tPIP VALUE/LOT (USD)")
			for _, sym := range market.Symbols() {
				p, _ := market.Lookup(sym)
				fmt.Fprintf(w, "%s\t%g\t%g\n", p.Symbol, p.PipSize, p.PipValuePerLot)
			}
			return w.Flush()
		},
	}
}
