// Package heart models the idealized spherical heart surface and the contact
// signal an electrode picks up near it.
package heart

import (
	"math"

	"github.com/philipparndt/globesim/pkg/geometry"
)

const (
	// DefaultRadius is the radius of the heart sphere centered at the origin
	DefaultRadius = 2.0
	// DefaultMaxDistance is the distance from the surface at which the signal reaches zero
	DefaultMaxDistance = 2.0
)

// Field maps points in space to a contact signal strength
type Field struct {
	Radius      float64
	MaxDistance float64
}

// DefaultField returns the field used by the simulator
func DefaultField() Field {
	return Field{
		Radius:      DefaultRadius,
		MaxDistance: DefaultMaxDistance,
	}
}

// DistanceToSurface returns the distance from point to the nearest point on the heart sphere
func (f Field) DistanceToSurface(point geometry.Vector3) float64 {
	return math.Abs(point.Length() - f.Radius)
}

// Strength converts a surface distance to a signal strength in [0,1] with a
// quadratic falloff: 1 on the surface, 0 at or beyond MaxDistance.
func (f Field) Strength(distance float64) float64 {
	if f.MaxDistance <= 0 || math.IsNaN(distance) {
		if distance == 0 {
			return 1
		}
		return 0
	}
	normalized := math.Min(math.Max(distance/f.MaxDistance, 0), 1)
	return (1 - normalized) * (1 - normalized)
}

// StrengthAt is Strength(DistanceToSurface(point))
func (f Field) StrengthAt(point geometry.Vector3) float64 {
	return f.Strength(f.DistanceToSurface(point))
}
