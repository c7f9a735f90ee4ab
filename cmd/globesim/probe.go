package main

import (
	"fmt"
	"strconv"

	"github.com/philipparndt/globesim/pkg/analysis"
	"github.com/philipparndt/globesim/pkg/geometry"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe <x> <y> <z>",
	Short: "Evaluate the contact signal at a point",
	Long: `Print the distance from a point to the heart surface and the signal strength
an electrode there would report. Prefix negative coordinates with --, e.g.
globesim probe -- 0 0 -2.`,
	Args: cobra.ExactArgs(3),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	point, err := parsePoint(args)
	if err != nil {
		return err
	}

	p := analysis.ProbePoint(cfg.Field(), point)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Point: %s\n", analysis.FormatVector(p.Point))
	fmt.Fprintf(w, "Distance to surface: %.6f units\n", p.Distance)
	fmt.Fprintf(w, "Signal strength: %.6f (%s)\n", p.Strength, analysis.FormatPercent(p.Strength))
	return nil
}

func parsePoint(args []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}
