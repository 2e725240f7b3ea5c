package cli

import (
	"shelf_life/inventory/internal/simulation"

	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		fixturePath string
		days        int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Print how the stock ages over a number of days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := loadItems(fixturePath)
			if err != nil {
				return err
			}
			return simulation.Run(cmd.OutOrStdout(), items, days, nil)
		},
	}
	cmd.Flags().StringVarP(&fixturePath, "fixture", "f", "", "YAML fixture with the opening stock (default: built-in shop stock)")
	cmd.Flags().IntVarP(&days, "days", "d", simulation.DefaultDays, "number of days to simulate")
	return cmd
}
