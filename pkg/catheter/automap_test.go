package catheter

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/philipparndt/globesim/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathWaypoint(t *testing.T) {
	p := DefaultPath()

	assert.True(t, p.Waypoint(0, 36, 0.25).ApproxEqual(geometry.NewVector3(3, 0.25, 3), 1e-12))

	// a quarter turn: x ~ 0, sin(2a) = sin(π) ~ 0
	quarter := p.Waypoint(9, 36, 0)
	assert.InDelta(t, 0, quarter.X, 1e-12)
	assert.InDelta(t, 3, quarter.Z, 1e-12)

	// an eighth turn reaches the top of the z oscillation
	eighth := p.Waypoint(1, 8, -1)
	assert.InDelta(t, 3*math.Cos(math.Pi/4), eighth.X, 1e-12)
	assert.InDelta(t, 4.5, eighth.Z, 1e-12)
	assert.Equal(t, -1.0, eighth.Y)
}

func TestAutoMapperRunsAllSteps(t *testing.T) {
	a := NewAutoMapper()
	a.Delay = 0

	var visited []geometry.Vector3
	err := a.Run(context.Background(), 0, func(p geometry.Vector3) {
		visited = append(visited, p)
	})

	require.NoError(t, err)
	require.Len(t, visited, DefaultAutoMapSteps)
	for i, p := range visited {
		assert.Equal(t, a.Path.Waypoint(i, a.Steps, 0), p)
	}
}

func TestAutoMapperDrivesSimulator(t *testing.T) {
	sim := New()
	a := NewAutoMapper()
	a.Delay = 0

	contacts := 0
	err := a.Run(context.Background(), sim.Hub().Y, func(p geometry.Vector3) {
		sim.MoveTo(p)
		contacts += sim.Contacting()
	})

	require.NoError(t, err)
	last := a.Path.Waypoint(a.Steps-1, a.Steps, 0)
	assert.Equal(t, last, sim.Hub())
	assert.Positive(t, contacts)
}

func TestAutoMapperCancel(t *testing.T) {
	for _, delay := range []time.Duration{0, 5 * time.Millisecond} {
		a := NewAutoMapper()
		a.Delay = delay

		ctx, cancel := context.WithCancel(context.Background())
		steps := 0
		err := a.Run(ctx, 0, func(geometry.Vector3) {
			steps++
			if steps == 3 {
				cancel()
			}
		})

		assert.ErrorIs(t, err, context.Canceled, "delay %v", delay)
		assert.Equal(t, 3, steps, "delay %v", delay)
		cancel()
	}
}

func TestAutoMapperAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewAutoMapper().Run(ctx, 0, func(geometry.Vector3) { called = true })

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestAutoMapperWaitsBetweenSteps(t *testing.T) {
	a := &AutoMapper{Steps: 4, Delay: 10 * time.Millisecond, Path: DefaultPath()}

	start := time.Now()
	err := a.Run(context.Background(), 0, func(geometry.Vector3) {})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}
