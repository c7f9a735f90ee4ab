package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/globesim/pkg/scene"
)

const dotSize = float32(3)

// SceneView renders a catheter scene in 3D
type SceneView struct {
	widget.BaseWidget
	scene     scene.Scene
	camera    *Camera
	objects   []fyne.CanvasObject
	dragStart *fyne.Position
	width     float64
	height    float64
}

// NewSceneView creates a view framing s
func NewSceneView(s scene.Scene) *SceneView {
	v := &SceneView{
		scene:  s,
		camera: NewCamera(s.Bounds()),
		width:  800,
		height: 600,
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetScene replaces the scene and redraws it; call from the UI goroutine
func (v *SceneView) SetScene(s scene.Scene) {
	v.scene = s
	v.Render(v.width, v.height)
}

// Camera returns the view camera
func (v *SceneView) Camera() *Camera {
	return v.camera
}

// CreateRenderer creates the renderer for the widget
func (v *SceneView) CreateRenderer() fyne.WidgetRenderer {
	return &sceneWidgetRenderer{view: v}
}

// Render projects the scene for the given size and rebuilds the canvas objects
func (v *SceneView) Render(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width = width
	v.height = height

	frame := ProjectScene(v.scene, v.camera, width, height)
	objects := make([]fyne.CanvasObject, 0, len(frame.Dots)+len(frame.Segments))

	for _, s := range frame.Segments {
		line := canvas.NewLine(s.Color)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(float32(s.X1), float32(s.Y1))
		line.Position2 = fyne.NewPos(float32(s.X2), float32(s.Y2))
		objects = append(objects, line)
	}

	for _, d := range frame.Dots {
		dot := canvas.NewCircle(d.Color)
		dot.Resize(fyne.NewSize(dotSize, dotSize))
		dot.Move(fyne.NewPos(float32(d.X)-dotSize/2, float32(d.Y)-dotSize/2))
		objects = append(objects, dot)
	}

	v.objects = objects
	v.Refresh()
}

// Dragged handles mouse drag events for rotation
func (v *SceneView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.camera.Rotate(float64(deltaY)*0.01, float64(deltaX)*0.01)
		v.Render(v.width, v.height)
	}
	pos := event.Position
	v.dragStart = &pos
}

// DragEnd handles the end of a drag event
func (v *SceneView) DragEnd() {
	v.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (v *SceneView) Scrolled(event *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.Render(v.width, v.height)
}

// sceneWidgetRenderer implements fyne.WidgetRenderer
type sceneWidgetRenderer struct {
	view *SceneView
}

func (r *sceneWidgetRenderer) Layout(size fyne.Size) {
	r.view.Render(float64(size.Width), float64(size.Height))
}

func (r *sceneWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *sceneWidgetRenderer) Refresh() {
	canvas.Refresh(r.view)
}

func (r *sceneWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.view.objects
}

func (r *sceneWidgetRenderer) Destroy() {}
