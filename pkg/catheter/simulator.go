// Package catheter simulates a ring-shaped mapping catheter whose electrodes
// sense contact with the heart surface.
package catheter

import (
	"fmt"
	"math"

	"github.com/philipparndt/globesim/pkg/geometry"
	"github.com/philipparndt/globesim/pkg/heart"
	"gonum.org/v1/gonum/floats"
)

const (
	// ElectrodeCount is the number of electrodes on the ring
	ElectrodeCount = 8
	// RingRadius is the distance of each electrode from the hub
	RingRadius = 0.5
	// DefaultContactThreshold is the strength above which an electrode counts as in contact
	DefaultContactThreshold = 0.7
)

// StartPosition is the hub position after construction and Reset
var StartPosition = geometry.NewVector3(0, 0, 3)

// Snapshot is a consistent view of the simulator after one recompute
type Snapshot struct {
	Hub        geometry.Vector3
	Electrodes []Electrode
}

// Listener receives a snapshot after every recompute
type Listener func(Snapshot)

// Simulator owns the electrode ring and recomputes it whenever the hub moves.
// It is not safe for concurrent use; drive it from a single goroutine.
type Simulator struct {
	field      heart.Field
	hub        geometry.Vector3
	electrodes []Electrode
	listeners  []Listener
}

// New creates a simulator with the default heart field
func New() *Simulator {
	return NewWithField(heart.DefaultField())
}

// NewWithField creates a simulator at StartPosition using field for signal strength
func NewWithField(field heart.Field) *Simulator {
	s := &Simulator{
		field:      field,
		hub:        StartPosition,
		electrodes: make([]Electrode, ElectrodeCount),
	}

	for i := range s.electrodes {
		angle := 2 * math.Pi * float64(i) / ElectrodeCount
		s.electrodes[i] = Electrode{
			Name:  fmt.Sprintf("E%d", i+1),
			Local: geometry.NewVector3(RingRadius*math.Cos(angle), RingRadius*math.Sin(angle), 0),
		}
	}

	s.recompute()
	return s
}

// Field returns the heart field used for signal strength
func (s *Simulator) Field() heart.Field {
	s.mustBeConstructed()
	return s.field
}

// SetField swaps the heart field and recomputes every electrode
func (s *Simulator) SetField(field heart.Field) Snapshot {
	s.mustBeConstructed()
	s.field = field
	s.recompute()
	return s.Snapshot()
}

// Move places the hub at (x, y, z) and recomputes every electrode
func (s *Simulator) Move(x, y, z float64) Snapshot {
	return s.MoveTo(geometry.NewVector3(x, y, z))
}

// MoveTo places the hub at position and recomputes every electrode
func (s *Simulator) MoveTo(position geometry.Vector3) Snapshot {
	s.mustBeConstructed()
	s.hub = position
	s.recompute()
	return s.Snapshot()
}

// Reset moves the hub back to StartPosition
func (s *Simulator) Reset() Snapshot {
	return s.MoveTo(StartPosition)
}

// Hub returns the current hub position
func (s *Simulator) Hub() geometry.Vector3 {
	s.mustBeConstructed()
	return s.hub
}

// Electrodes returns a copy of the electrode ring
func (s *Simulator) Electrodes() []Electrode {
	s.mustBeConstructed()
	out := make([]Electrode, len(s.electrodes))
	copy(out, s.electrodes)
	return out
}

// Snapshot returns the hub and a copy of the electrodes
func (s *Simulator) Snapshot() Snapshot {
	return Snapshot{Hub: s.Hub(), Electrodes: s.Electrodes()}
}

// Subscribe registers a listener called after every recompute
func (s *Simulator) Subscribe(listener Listener) {
	s.mustBeConstructed()
	s.listeners = append(s.listeners, listener)
}

// ContactingCount counts electrodes whose strength is strictly above threshold
func (s *Simulator) ContactingCount(threshold float64) int {
	s.mustBeConstructed()
	return Snapshot{Electrodes: s.electrodes}.ContactingCount(threshold)
}

// Contacting is ContactingCount with DefaultContactThreshold
func (s *Simulator) Contacting() int {
	return s.ContactingCount(DefaultContactThreshold)
}

// MappingProgress is the mean electrode strength capped at 1
func (s *Simulator) MappingProgress() float64 {
	s.mustBeConstructed()
	return Snapshot{Electrodes: s.electrodes}.MappingProgress()
}

// recompute rebuilds the whole ring into a fresh slice and swaps it in, so a
// listener or caller never sees a half-updated ring.
func (s *Simulator) recompute() {
	next := make([]Electrode, len(s.electrodes))
	for i, e := range s.electrodes {
		e.World = e.Local.Add(s.hub)
		next[i] = e.WithStrength(s.field.StrengthAt(e.World))
	}
	s.electrodes = next

	if len(s.listeners) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, l := range s.listeners {
		l(snap)
	}
}

func (s *Simulator) mustBeConstructed() {
	if s == nil || s.electrodes == nil {
		panic("catheter: simulator used before construction; use catheter.New")
	}
}

// ContactingCount counts electrodes whose strength is strictly above threshold
func (snap Snapshot) ContactingCount(threshold float64) int {
	count := 0
	for _, e := range snap.Electrodes {
		if e.Strength > threshold {
			count++
		}
	}
	return count
}

// Strengths returns the electrode strengths in ring order
func (snap Snapshot) Strengths() []float64 {
	out := make([]float64, len(snap.Electrodes))
	for i, e := range snap.Electrodes {
		out[i] = e.Strength
	}
	return out
}

// MappingProgress is the mean electrode strength capped at 1
func (snap Snapshot) MappingProgress() float64 {
	if len(snap.Electrodes) == 0 {
		return 0
	}
	return math.Min(1, floats.Sum(snap.Strengths())/float64(len(snap.Electrodes)))
}
