package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/globesim/pkg/catheter"
	"github.com/philipparndt/globesim/pkg/geometry"
	"github.com/philipparndt/globesim/pkg/heart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceObserve(t *testing.T) {
	sim := catheter.New()
	trace := &Trace{Threshold: catheter.DefaultContactThreshold}
	sim.Subscribe(trace.Observe)

	a := catheter.NewAutoMapper()
	a.Delay = 0
	require.NoError(t, a.Run(context.Background(), 0, func(p geometry.Vector3) { sim.MoveTo(p) }))

	require.Len(t, trace.Samples, a.Steps)
	for i, s := range trace.Samples {
		assert.Equal(t, i, s.Step)
		assert.True(t, s.Progress >= 0 && s.Progress <= 1)
	}
}

func TestSaveCharts(t *testing.T) {
	dir := t.TempDir()

	falloff, err := FalloffPlot(heart.DefaultField(), 50)
	require.NoError(t, err)
	require.NoError(t, Save(falloff, filepath.Join(dir, "falloff.png")))

	trace := Trace{Samples: []Sample{{0, 0, 0.1}, {1, 4, 0.6}, {2, 8, 0.9}}}
	progress, err := TracePlot(trace)
	require.NoError(t, err)
	require.NoError(t, Save(progress, filepath.Join(dir, "automap.svg")))

	for _, name := range []string{"falloff.png", "automap.svg"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestTracePlotEmpty(t *testing.T) {
	_, err := TracePlot(Trace{})
	assert.Error(t, err)
}
