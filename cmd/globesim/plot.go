package main

import (
	"fmt"

	"github.com/philipparndt/globesim/internal/report"
	"github.com/spf13/cobra"
)

var plotSamples int

var plotCmd = &cobra.Command{
	Use:   "plot <file>",
	Short: "Chart the signal falloff curve",
	Long:  "Save a chart of signal strength against distance to the heart surface. The extension selects png, svg or pdf.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().IntVarP(&plotSamples, "samples", "n", 200, "Number of samples along the curve")
}

func runPlot(cmd *cobra.Command, args []string) error {
	p, err := report.FalloffPlot(cfg.Field(), plotSamples)
	if err != nil {
		return err
	}
	if err := report.Save(p, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved falloff chart to %s\n", args[0])
	return nil
}
