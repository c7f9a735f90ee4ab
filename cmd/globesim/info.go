package main

import (
	"fmt"

	"github.com/philipparndt/globesim/pkg/analysis"
	"github.com/philipparndt/globesim/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.stl>",
	Short: "Display information about an exported STL file",
	Long:  "Show the triangle count, surface area and bounding box of an STL file, e.g. one written by export.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("failed to parse STL file: %w", err)
	}

	bbox := model.BoundingBox()
	size := bbox.Size()

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "STL File Information")
	fmt.Fprintln(w, "====================")
	if model.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", model.Name)
	}
	fmt.Fprintf(w, "File: %s\n\n", filename)

	fmt.Fprintf(w, "Triangles: %d\n", model.TriangleCount())
	fmt.Fprintf(w, "Surface Area: %.6f square units\n\n", model.SurfaceArea())

	if model.TriangleCount() == 0 {
		return nil
	}

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(bbox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(bbox.Max))
	fmt.Fprintf(w, "  Center: %s\n", analysis.FormatVector(bbox.Center()))
	fmt.Fprintf(w, "  Size: %s\n", analysis.FormatVector(size))
	return nil
}
