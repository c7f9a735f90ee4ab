package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/globesim/pkg/catheter"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderFollowsSimulator(t *testing.T) {
	sim := catheter.New()
	rec := NewRecorder(catheter.DefaultContactThreshold)
	sim.Subscribe(rec.Observe)

	sim.Move(0, 0, 2)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.moves))
	assert.Equal(t, 8.0, testutil.ToFloat64(rec.contacting))
	assert.InDelta(t, sim.MappingProgress(), testutil.ToFloat64(rec.progress), 1e-12)
	assert.InDelta(t, sim.Electrodes()[0].Strength, testutil.ToFloat64(rec.strength.WithLabelValues("E1")), 1e-12)
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.hub.WithLabelValues("z")))

	sim.Move(0, 0, 10)
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.moves))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.contacting))
}

func TestWriteTextfile(t *testing.T) {
	rec := NewRecorder(0.7)
	rec.Observe(catheter.New().Snapshot())

	path := filepath.Join(t.TempDir(), "globesim.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "globesim_mapping_progress_ratio")
	assert.Contains(t, string(data), `globesim_electrode_signal_strength{electrode="E8"}`)
}
