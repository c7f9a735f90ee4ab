package scene

import (
	"testing"

	"github.com/philipparndt/globesim/pkg/catheter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParts(t *testing.T) {
	sim := catheter.New()
	sim.Move(0, 0, 2)
	opts := DefaultOptions()

	s := Catheter(sim, opts)
	require.Len(t, s.Parts, 2+2*catheter.ElectrodeCount)

	heartPart, ok := s.Part("heart")
	require.True(t, ok)
	assert.Equal(t, PointCloud, heartPart.Kind)
	assert.Equal(t, (opts.HeartDivisions+1)*(opts.HeartDivisions+1), heartPart.Mesh.VertexCount())

	hub, ok := s.Part("hub")
	require.True(t, ok)
	assert.Equal(t, 121, hub.Mesh.VertexCount())

	for _, e := range sim.Electrodes() {
		sphere, ok := s.Part(e.Name)
		require.True(t, ok, e.Name)
		assert.Equal(t, e.Color(), sphere.Color)
		assert.Equal(t, 81, sphere.Mesh.VertexCount())

		connector, ok := s.Part(e.Name + "-connector")
		require.True(t, ok)
		assert.Equal(t, Surface, connector.Kind)
		assert.Equal(t, 2*opts.TubeDivisions, connector.Mesh.TriangleCount())
	}
}

func TestSurfacesMergesConnectors(t *testing.T) {
	s := Catheter(catheter.New(), DefaultOptions())

	surfaces := s.Surfaces()
	assert.Equal(t, catheter.ElectrodeCount*2*6, surfaces.TriangleCount())
}

func TestBoundsCoversHeart(t *testing.T) {
	s := Catheter(catheter.New(), DefaultOptions())
	bbox := s.Bounds()

	assert.InDelta(t, -2, bbox.Min.X, 1e-9)
	assert.InDelta(t, 2, bbox.Max.X, 1e-9)
	// hub sphere at z=3 with radius 0.15
	assert.InDelta(t, 3.15, bbox.Max.Z, 1e-9)
}
