// Package scene turns a catheter snapshot into renderable parts.
package scene

import (
	"image/color"

	"github.com/philipparndt/globesim/pkg/catheter"
	"github.com/philipparndt/globesim/pkg/geometry"
	"github.com/philipparndt/globesim/pkg/heart"
	"github.com/philipparndt/globesim/pkg/mesh"
)

// Kind tells the renderer how to draw a part
type Kind int

const (
	// PointCloud parts are drawn as dots at each vertex
	PointCloud Kind = iota
	// Surface parts are drawn from their triangles
	Surface
)

var (
	HeartColor     = color.RGBA{R: 139, G: 0, B: 0, A: 255}    // dark red
	HubColor       = color.RGBA{R: 70, G: 130, B: 180, A: 255}  // steel blue
	ConnectorColor = color.RGBA{R: 211, G: 211, B: 211, A: 255} // light gray
)

// Options controls the tessellation of each part
type Options struct {
	HeartDivisions     int
	HubRadius          float64
	HubDivisions       int
	ElectrodeRadius    float64
	ElectrodeDivisions int
	TubeDiameter       float64
	TubeDivisions      int
}

// DefaultOptions mirrors the catheter proportions used by the desktop view
func DefaultOptions() Options {
	return Options{
		HeartDivisions:     24,
		HubRadius:          0.15,
		HubDivisions:       10,
		ElectrodeRadius:    0.08,
		ElectrodeDivisions: 8,
		TubeDiameter:       0.02,
		TubeDivisions:      6,
	}
}

// Part is one colored mesh of the scene
type Part struct {
	Name  string
	Kind  Kind
	Color color.RGBA
	Mesh  mesh.Mesh
}

// Scene is everything drawn for one frame
type Scene struct {
	Parts []Part
}

// Build creates the heart, the hub, one sphere per electrode tinted by its
// signal, and a connector tube from the hub to each electrode.
func Build(field heart.Field, snap catheter.Snapshot, opts Options) Scene {
	parts := make([]Part, 0, 2+2*len(snap.Electrodes))

	parts = append(parts, Part{
		Name:  "heart",
		Kind:  PointCloud,
		Color: HeartColor,
		Mesh:  mesh.BuildSphere(geometry.Vector3{}, field.Radius, opts.HeartDivisions),
	})
	parts = append(parts, Part{
		Name:  "hub",
		Kind:  PointCloud,
		Color: HubColor,
		Mesh:  mesh.BuildSphere(snap.Hub, opts.HubRadius, opts.HubDivisions),
	})

	for _, e := range snap.Electrodes {
		parts = append(parts, Part{
			Name:  e.Name,
			Kind:  PointCloud,
			Color: e.Color(),
			Mesh:  mesh.BuildSphere(e.World, opts.ElectrodeRadius, opts.ElectrodeDivisions),
		})
		parts = append(parts, Part{
			Name:  e.Name + "-connector",
			Kind:  Surface,
			Color: ConnectorColor,
			Mesh:  mesh.BuildTube(snap.Hub, e.World, opts.TubeDiameter, opts.TubeDivisions),
		})
	}

	return Scene{Parts: parts}
}

// Catheter builds the scene from the simulator's current state
func Catheter(sim *catheter.Simulator, opts Options) Scene {
	return Build(sim.Field(), sim.Snapshot(), opts)
}

// Surfaces merges every Surface part into one mesh
func (s Scene) Surfaces() mesh.Mesh {
	var m mesh.Mesh
	for _, p := range s.Parts {
		if p.Kind == Surface {
			m.Append(p.Mesh)
		}
	}
	return m
}

// Bounds returns the bounding box of all parts
func (s Scene) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, p := range s.Parts {
		for _, v := range p.Mesh.Vertices {
			bbox.Extend(v)
		}
	}
	return bbox
}

// Part returns the part with the given name
func (s Scene) Part(name string) (Part, bool) {
	for _, p := range s.Parts {
		if p.Name == name {
			return p, true
		}
	}
	return Part{}, false
}
