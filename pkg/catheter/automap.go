package catheter

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/philipparndt/globesim/pkg/geometry"
)

const (
	// DefaultAutoMapSteps is the number of waypoints in one auto-mapping sweep
	DefaultAutoMapSteps = 36
	// DefaultAutoMapDelay is the pause after each waypoint
	DefaultAutoMapDelay = 200 * time.Millisecond
)

// Path is the circular sweep followed while auto-mapping. Step i of n sits at
// angle a = 2πi/n with x = Radius·cos(a) and z = CenterZ + Amplitude·sin(2a).
type Path struct {
	Radius    float64
	CenterZ   float64
	Amplitude float64
}

// DefaultPath returns the sweep around the default heart
func DefaultPath() Path {
	return Path{Radius: 3.0, CenterZ: 3.0, Amplitude: 1.5}
}

// Waypoint returns the hub position for step i of steps, keeping y
func (p Path) Waypoint(i, steps int, y float64) geometry.Vector3 {
	if steps <= 0 {
		return geometry.NewVector3(p.Radius, y, p.CenterZ)
	}
	angle := 2 * math.Pi * float64(i) / float64(steps)
	return geometry.NewVector3(
		p.Radius*math.Cos(angle),
		y,
		p.CenterZ+math.Sin(angle*2)*p.Amplitude,
	)
}

// AutoMapper walks the hub along a Path, pausing between steps
type AutoMapper struct {
	Steps  int
	Delay  time.Duration
	Path   Path
	Logger *slog.Logger
}

// NewAutoMapper returns an AutoMapper with the default sweep
func NewAutoMapper() *AutoMapper {
	return &AutoMapper{
		Steps:  DefaultAutoMapSteps,
		Delay:  DefaultAutoMapDelay,
		Path:   DefaultPath(),
		Logger: slog.Default(),
	}
}

// Run calls apply with each waypoint in order and waits Delay after each one.
// The y coordinate of every waypoint is y. Cancelling ctx stops the sweep at
// the next step boundary and Run returns ctx.Err(); a full sweep returns nil.
func (a *AutoMapper) Run(ctx context.Context, y float64, apply func(geometry.Vector3)) error {
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.DebugContext(ctx, "auto-mapping started", "steps", a.Steps, "delay", a.Delay)

	for i := 0; i < a.Steps; i++ {
		if err := ctx.Err(); err != nil {
			logger.DebugContext(ctx, "auto-mapping stopped", "step", i)
			return err
		}

		apply(a.Path.Waypoint(i, a.Steps, y))

		if a.Delay <= 0 {
			continue
		}
		timer := time.NewTimer(a.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.DebugContext(ctx, "auto-mapping stopped", "step", i+1)
			return ctx.Err()
		case <-timer.C:
		}
	}

	logger.DebugContext(ctx, "auto-mapping finished", "steps", a.Steps)
	return nil
}
