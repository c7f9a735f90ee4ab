package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/globesim/pkg/catheter"
	"github.com/philipparndt/globesim/pkg/geometry"
	"github.com/philipparndt/globesim/pkg/heart"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Status is the summary shown next to the electrode list
type Status struct {
	Hub          geometry.Vector3
	Contacting   int
	Total        int
	Progress     float64
	MeanStrength float64
	Strongest    catheter.Electrode
	Weakest      catheter.Electrode
}

// Summarize computes the status of a snapshot using threshold for contact
func Summarize(snap catheter.Snapshot, threshold float64) Status {
	status := Status{
		Hub:        snap.Hub,
		Contacting: snap.ContactingCount(threshold),
		Total:      len(snap.Electrodes),
		Progress:   snap.MappingProgress(),
	}
	if len(snap.Electrodes) == 0 {
		return status
	}

	strengths := snap.Strengths()
	status.MeanStrength = stat.Mean(strengths, nil)
	status.Strongest = snap.Electrodes[floats.MaxIdx(strengths)]
	status.Weakest = snap.Electrodes[floats.MinIdx(strengths)]
	return status
}

// ContactText formats the contact count, e.g. "Electrodes in contact: 3/8"
func (s Status) ContactText() string {
	return fmt.Sprintf("Electrodes in contact: %d/%d", s.Contacting, s.Total)
}

// ProgressText formats the mapping progress, e.g. "Mapping progress: 42%"
func (s Status) ProgressText() string {
	return fmt.Sprintf("Mapping progress: %s", FormatPercent(s.Progress))
}

// Probe describes the signal at an arbitrary point
type Probe struct {
	Point    geometry.Vector3
	Distance float64
	Strength float64
}

// ProbePoint evaluates the field at point
func ProbePoint(field heart.Field, point geometry.Vector3) Probe {
	distance := field.DistanceToSurface(point)
	return Probe{
		Point:    point,
		Distance: distance,
		Strength: field.Strength(distance),
	}
}

// FalloffCurve samples the strength for samples+1 evenly spaced distances in [0, maxDistance]
func FalloffCurve(field heart.Field, maxDistance float64, samples int) (distances, strengths []float64) {
	if samples < 1 {
		samples = 1
	}
	distances = make([]float64, samples+1)
	floats.Span(distances, 0, maxDistance)

	strengths = make([]float64, len(distances))
	for i, d := range distances {
		strengths[i] = field.Strength(d)
	}
	return distances, strengths
}

// FormatPercent formats a [0,1] ratio as a whole percentage
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(ratio*100)))
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
