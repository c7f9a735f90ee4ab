package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/globesim/internal/config"
	"github.com/philipparndt/globesim/internal/logging"
	"github.com/philipparndt/globesim/pkg/analysis"
	"github.com/philipparndt/globesim/pkg/catheter"
	"github.com/philipparndt/globesim/pkg/geometry"
	"github.com/philipparndt/globesim/pkg/scene"
	"github.com/philipparndt/globesim/pkg/viewer"
	"github.com/philipparndt/globesim/pkg/watcher"
	"github.com/philipparndt/globesim/version"
	"github.com/spf13/cobra"
)

const (
	sliderMin  = -5
	sliderMax  = 5
	sliderStep = 0.01

	reloadDebounce = 300 * time.Millisecond
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "globesim-gui",
	Short:        "Interactive mapping catheter simulator",
	Version:      version.GetFullVersion(),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file, reloaded on change")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := logging.WithSession(logging.New(os.Stderr, logging.FromEnv(cfg.Log)))
	slog.SetDefault(logger)

	a := app.New()
	w := a.NewWindow("Globe System Simulator")

	appInstance := newApp(w, cfg, logger)
	appInstance.setupMainUI()

	if configPath != "" {
		fw, err := appInstance.watchConfig(configPath)
		if err != nil {
			logger.Warn("config reload disabled", "error", err)
		} else {
			defer fw.Close()
		}
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
	return nil
}

// App holds the simulator and every widget bound to it. All fields are
// accessed from the fyne UI goroutine only.
type App struct {
	window fyne.Window
	cfg    config.Config
	logger *slog.Logger

	sim  *catheter.Simulator
	snap catheter.Snapshot

	view          *viewer.SceneView
	sliders       [3]*widget.Slider
	electrodeList *widget.List
	contactLabel  *widget.Label
	progressLabel *widget.Label
	progressBar   *widget.ProgressBar
	autoButton    *widget.Button

	// syncing suppresses slider callbacks while positions are pushed into them
	syncing    bool
	autoCtx    context.Context
	cancelAuto context.CancelFunc
}

func newApp(w fyne.Window, cfg config.Config, logger *slog.Logger) *App {
	a := &App{
		window: w,
		cfg:    cfg,
		logger: logger,
		sim:    cfg.NewSimulator(),
	}
	a.snap = a.sim.Snapshot()
	a.sim.Subscribe(a.onSnapshot)
	return a
}

func (a *App) setupMainUI() {
	a.view = viewer.NewSceneView(scene.Build(a.sim.Field(), a.snap, a.cfg.SceneOptions()))

	axes := []string{"X", "Y", "Z"}
	sliderRows := make([]fyne.CanvasObject, 0, len(axes))
	for i, axis := range axes {
		s := widget.NewSlider(sliderMin, sliderMax)
		s.Step = sliderStep
		s.OnChanged = func(float64) { a.onSliderChanged() }
		a.sliders[i] = s
		sliderRows = append(sliderRows, container.NewBorder(nil, nil, widget.NewLabel(axis), nil, s))
	}
	a.syncSliders(a.snap.Hub)

	resetButton := widget.NewButton("Reset", a.reset)
	a.autoButton = widget.NewButton("Start Auto-Mapping", a.toggleAutoMap)

	a.electrodeList = widget.NewList(
		func() int { return len(a.snap.Electrodes) },
		func() fyne.CanvasObject {
			swatch := canvas.NewRectangle(color.Black)
			swatch.SetMinSize(fyne.NewSize(16, 16))
			return container.NewHBox(swatch, widget.NewLabel("E0"), widget.NewLabel("100%"))
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			e := a.snap.Electrodes[id]
			row := item.(*fyne.Container)

			swatch := row.Objects[0].(*canvas.Rectangle)
			swatch.FillColor = e.Color()
			swatch.Refresh()
			row.Objects[1].(*widget.Label).SetText(e.Name)
			row.Objects[2].(*widget.Label).SetText(e.Percent())
		},
	)

	a.contactLabel = widget.NewLabel("")
	a.contactLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.progressLabel = widget.NewLabel("")
	a.progressBar = widget.NewProgressBar()
	a.updateStatus()

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Move the sliders to position the catheter\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	controls := container.NewVBox(
		widget.NewLabel("Catheter Position:"),
		widget.NewSeparator(),
	)
	for _, row := range sliderRows {
		controls.Add(row)
	}
	controls.Add(container.NewGridWithColumns(2, resetButton, a.autoButton))
	controls.Add(widget.NewSeparator())
	controls.Add(a.contactLabel)
	controls.Add(a.progressLabel)
	controls.Add(a.progressBar)
	controls.Add(widget.NewSeparator())
	controls.Add(instructions)

	infoPanel := container.NewBorder(
		controls,
		nil,
		nil,
		nil,
		container.NewBorder(widget.NewLabel("Electrodes:"), nil, nil, nil, a.electrodeList),
	)
	panelWidth := canvas.NewRectangle(color.Transparent)
	panelWidth.SetMinSize(fyne.NewSize(320, 0))
	panel := container.NewStack(panelWidth, infoPanel)

	content := container.NewBorder(
		nil,    // top
		nil,    // bottom
		nil,    // left
		panel,  // right
		a.view, // center
	)

	a.window.SetContent(content)
	a.window.SetOnClosed(a.stopAutoMap)

	a.view.Render(800, 600)
}

func (a *App) onSliderChanged() {
	if a.syncing {
		return
	}
	a.sim.Move(a.sliders[0].Value, a.sliders[1].Value, a.sliders[2].Value)
}

// moveTo places the hub and mirrors the position into the sliders
func (a *App) moveTo(p geometry.Vector3) {
	a.syncSliders(p)
	a.sim.MoveTo(p)
}

func (a *App) syncSliders(p geometry.Vector3) {
	a.syncing = true
	defer func() { a.syncing = false }()

	a.sliders[0].SetValue(p.X)
	a.sliders[1].SetValue(p.Y)
	a.sliders[2].SetValue(p.Z)
}

func (a *App) onSnapshot(snap catheter.Snapshot) {
	a.snap = snap
	if a.view == nil {
		return
	}

	a.updateStatus()
	a.electrodeList.Refresh()
	a.view.SetScene(scene.Build(a.sim.Field(), snap, a.cfg.SceneOptions()))
}

func (a *App) updateStatus() {
	status := analysis.Summarize(a.snap, a.cfg.Catheter.ContactThreshold)
	a.contactLabel.SetText(status.ContactText())
	a.progressLabel.SetText(status.ProgressText())
	a.progressBar.SetValue(status.Progress)
}

func (a *App) reset() {
	a.stopAutoMap()
	a.moveTo(a.cfg.Start())
}

func (a *App) toggleAutoMap() {
	if a.cancelAuto != nil {
		a.stopAutoMap()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.autoCtx, a.cancelAuto = ctx, cancel
	a.autoButton.SetText("Stop Auto-Mapping")

	mapper := a.cfg.AutoMapper()
	mapper.Logger = a.logger
	y := a.sim.Hub().Y

	go func() {
		err := mapper.Run(ctx, y, func(p geometry.Vector3) {
			fyne.DoAndWait(func() {
				if ctx.Err() == nil {
					a.moveTo(p)
				}
			})
		})
		if err == nil {
			a.logger.Info("auto-mapping finished", "steps", mapper.Steps)
		}

		fyne.Do(func() {
			if a.autoCtx != ctx {
				return
			}
			cancel()
			a.autoCtx, a.cancelAuto = nil, nil
			a.autoButton.SetText("Start Auto-Mapping")
		})
	}()
}

func (a *App) stopAutoMap() {
	if a.cancelAuto == nil {
		return
	}
	a.cancelAuto()
	a.autoCtx, a.cancelAuto = nil, nil
	a.autoButton.SetText("Start Auto-Mapping")
}

// watchConfig re-applies the heart and render settings when the file changes
func (a *App) watchConfig(path string) (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(reloadDebounce, a.logger)
	if err != nil {
		return nil, err
	}

	err = fw.Watch([]string{path}, func(changed string) {
		cfg, err := config.Load(changed)
		if err != nil {
			a.logger.Error("config reload failed", "path", changed, "error", err)
			fyne.Do(func() { dialog.ShowError(err, a.window) })
			return
		}

		fyne.Do(func() {
			a.cfg = cfg
			a.sim.SetField(cfg.Field())
			a.logger.Info("config reloaded", "path", changed)
		})
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	fw.Start()
	return fw, nil
}
