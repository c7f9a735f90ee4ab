package catheter

import (
	"fmt"
	"image/color"
	"math"

	"github.com/philipparndt/globesim/pkg/geometry"
)

var (
	// WeakColor is the tint of an electrode with no signal
	WeakColor = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	// StrongColor is the tint of an electrode in full contact
	StrongColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Electrode is a sensing point on the catheter. Values are immutable; the
// simulator replaces them wholesale on every recompute so strength, percent
// and color are always derived from the same reading.
type Electrode struct {
	Name     string
	Local    geometry.Vector3 // offset from the hub, fixed at construction
	World    geometry.Vector3 // Local + hub position
	Strength float64          // contact signal in [0,1]
}

// WithStrength returns a copy with the strength clamped to [0,1]
func (e Electrode) WithStrength(strength float64) Electrode {
	e.Strength = clamp01(strength)
	return e
}

// Percent formats the strength as a whole percentage, e.g. "94%"
func (e Electrode) Percent() string {
	return fmt.Sprintf("%d%%", int(math.Round(e.Strength*100)))
}

// Color interpolates from WeakColor to StrongColor by strength
func (e Electrode) Color() color.RGBA {
	s := clamp01(e.Strength)
	return color.RGBA{
		R: uint8(math.Round(float64(StrongColor.R) * s)),
		G: uint8(math.Round(float64(WeakColor.G) * (1 - s))),
		B: uint8(math.Round(float64(WeakColor.B) * (1 - s))),
		A: 255,
	}
}

func (e Electrode) String() string {
	return fmt.Sprintf("%s %s %s", e.Name, e.World, e.Percent())
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
