// Package report draws charts of the signal model and auto-mapping runs.
package report

import (
	"fmt"
	"image/color"

	"github.com/philipparndt/globesim/pkg/analysis"
	"github.com/philipparndt/globesim/pkg/catheter"
	"github.com/philipparndt/globesim/pkg/heart"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// Sample is the simulator state after one auto-mapping step
type Sample struct {
	Step       int
	Contacting int
	Progress   float64
}

// Trace collects samples during an auto-mapping run
type Trace struct {
	Threshold float64
	Samples   []Sample
}

// Observe appends a sample. It has the catheter.Listener signature.
func (t *Trace) Observe(snap catheter.Snapshot) {
	t.Samples = append(t.Samples, Sample{
		Step:       len(t.Samples),
		Contacting: snap.ContactingCount(t.Threshold),
		Progress:   snap.MappingProgress(),
	})
}

// FalloffPlot charts signal strength against distance to the heart surface
func FalloffPlot(field heart.Field, samples int) (*plot.Plot, error) {
	distances, strengths := analysis.FalloffCurve(field, field.MaxDistance*1.25, samples)

	pts := make(plotter.XYs, len(distances))
	for i := range distances {
		pts[i] = plotter.XY{X: distances[i], Y: strengths[i]}
	}

	p := plot.New()
	p.Title.Text = "Contact signal falloff"
	p.X.Label.Text = "Distance to surface"
	p.Y.Label.Text = "Signal strength"
	p.Y.Min, p.Y.Max = 0, 1

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create falloff line: %w", err)
	}
	line.Color = catheter.StrongColor
	line.Width = vg.Points(1.5)
	p.Add(line, plotter.NewGrid())
	return p, nil
}

// TracePlot charts mapping progress and contact ratio per step
func TracePlot(trace Trace) (*plot.Plot, error) {
	if len(trace.Samples) == 0 {
		return nil, fmt.Errorf("no samples to plot")
	}

	progress := make(plotter.XYs, len(trace.Samples))
	contact := make(plotter.XYs, len(trace.Samples))
	for i, s := range trace.Samples {
		progress[i] = plotter.XY{X: float64(s.Step), Y: s.Progress}
		contact[i] = plotter.XY{X: float64(s.Step), Y: float64(s.Contacting) / catheter.ElectrodeCount}
	}

	p := plot.New()
	p.Title.Text = "Auto-mapping"
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Ratio"
	p.Y.Min, p.Y.Max = 0, 1

	progressLine, err := plotter.NewLine(progress)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress line: %w", err)
	}
	progressLine.Color = catheter.StrongColor
	progressLine.Width = vg.Points(1.5)

	contactLine, err := plotter.NewLine(contact)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact line: %w", err)
	}
	contactLine.Color = catheter.WeakColor
	contactLine.Width = vg.Points(1)
	contactLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(progressLine, contactLine, plotter.NewGrid())
	p.Legend.Add("mapping progress", progressLine)
	p.Legend.Add("electrodes in contact", contactLine)
	p.Legend.Top = true
	p.Legend.TextStyle.Color = color.Black
	return p, nil
}

// Save writes p to path; the extension selects the image format
func Save(p *plot.Plot, path string) error {
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
