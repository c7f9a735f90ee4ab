package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/philipparndt/globesim/internal/metrics"
	"github.com/philipparndt/globesim/internal/report"
	"github.com/philipparndt/globesim/pkg/analysis"
	"github.com/philipparndt/globesim/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	automapSteps   int
	automapDelay   time.Duration
	automapMetrics string
	automapPlot    string
)

var automapCmd = &cobra.Command{
	Use:   "automap",
	Short: "Run the automatic mapping sweep",
	Long: `Sweep the catheter around the heart, printing the contact status after every
step. Interrupt with Ctrl+C to stop after the current step.`,
	Args: cobra.NoArgs,
	RunE: runAutomap,
}

func init() {
	rootCmd.AddCommand(automapCmd)

	automapCmd.Flags().IntVarP(&automapSteps, "steps", "n", 0, "Number of steps (default from config)")
	automapCmd.Flags().DurationVarP(&automapDelay, "delay", "d", -1, "Pause after each step (default from config)")
	automapCmd.Flags().StringVar(&automapMetrics, "metrics", "", "Write prometheus textfile metrics to this path after every step")
	automapCmd.Flags().StringVar(&automapPlot, "plot", "", "Save a chart of the run (png, svg or pdf)")
}

func runAutomap(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sim := cfg.NewSimulator()
	mapper := cfg.AutoMapper()
	mapper.Logger = logger
	if automapSteps > 0 {
		mapper.Steps = automapSteps
	}
	if automapDelay >= 0 {
		mapper.Delay = automapDelay
	}

	recorder := metrics.NewRecorder(cfg.Catheter.ContactThreshold)
	sim.Subscribe(recorder.Observe)
	trace := &report.Trace{Threshold: cfg.Catheter.ContactThreshold}
	sim.Subscribe(trace.Observe)

	w := cmd.OutOrStdout()
	step := 0
	var writeErr error
	err := mapper.Run(ctx, sim.Hub().Y, func(p geometry.Vector3) {
		snap := sim.MoveTo(p)
		step++

		status := analysis.Summarize(snap, cfg.Catheter.ContactThreshold)
		fmt.Fprintf(w, "[%02d/%02d] hub %s  %s  %s\n", step, mapper.Steps, snap.Hub, status.ContactText(), status.ProgressText())

		if automapMetrics != "" && writeErr == nil {
			writeErr = recorder.WriteTextfile(automapMetrics)
		}
	})

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("auto-mapping interrupted", "steps", step)
	case err != nil:
		return err
	}
	if writeErr != nil {
		return writeErr
	}

	if automapPlot != "" {
		p, err := report.TracePlot(*trace)
		if err != nil {
			return err
		}
		if err := report.Save(p, automapPlot); err != nil {
			return err
		}
		logger.Info("saved auto-mapping chart", "path", automapPlot)
	}
	return nil
}
