package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/globesim/pkg/analysis"
	"github.com/philipparndt/globesim/pkg/catheter"
	"github.com/spf13/cobra"
)

var moveX, moveY, moveZ float64

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Place the catheter hub and show electrode signals",
	Long:  "Move the catheter hub to a position and print every electrode with its world position, signal and color.",
	Args:  cobra.NoArgs,
	RunE:  runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)

	start := catheter.StartPosition
	moveCmd.Flags().Float64Var(&moveX, "x", start.X, "Hub X coordinate")
	moveCmd.Flags().Float64Var(&moveY, "y", start.Y, "Hub Y coordinate")
	moveCmd.Flags().Float64Var(&moveZ, "z", start.Z, "Hub Z coordinate")
}

func runMove(cmd *cobra.Command, args []string) error {
	sim := cfg.NewSimulator()
	snap := sim.Move(moveX, moveY, moveZ)

	logger.Debug("catheter moved", "hub", snap.Hub.String())
	printSnapshot(cmd.OutOrStdout(), snap, cfg.Catheter.ContactThreshold)
	return nil
}

func printSnapshot(w io.Writer, snap catheter.Snapshot, threshold float64) {
	status := analysis.Summarize(snap, threshold)

	fmt.Fprintf(w, "Hub: %s\n\n", analysis.FormatVector(snap.Hub))
	fmt.Fprintf(w, "%-4s %-30s %-8s %-8s\n", "Name", "World position", "Signal", "Color")
	fmt.Fprintln(w, "---------------------------------------------------------")
	for _, e := range snap.Electrodes {
		c := e.Color()
		fmt.Fprintf(w, "%-4s %-30s %-8s #%02x%02x%02x\n", e.Name, e.World.String(), e.Percent(), c.R, c.G, c.B)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, status.ContactText())
	fmt.Fprintln(w, status.ProgressText())
	fmt.Fprintf(w, "Strongest: %s (%s)  Weakest: %s (%s)\n",
		status.Strongest.Name, status.Strongest.Percent(),
		status.Weakest.Name, status.Weakest.Percent())
}
