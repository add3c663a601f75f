package main

import (
	"flag"
	"fmt"
	"image"
	"strconv"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/plotstream/plotstream/src/chartdata"
	"github.com/plotstream/plotstream/src/colorscale"
	"github.com/plotstream/plotstream/src/progressive"
	"github.com/plotstream/plotstream/src/render"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	controller *progressive.Controller
	series     []chartdata.Series
	scaleName  string
	scale      colorscale.Scale
	chunkSize  int
	delayMs    int
	chunked    bool

	chartCanvas *canvas.Image
	progressBar *widget.ProgressBar
	phaseLabel  *widget.Label
	statsLabel  *widget.Label
}

func main() {
	var pointsFlag int
	var scaleFlag string
	var logLevel string
	flag.IntVar(&pointsFlag, "points", 600, "points per demo series")
	flag.StringVar(&scaleFlag, "scale", "viridis", "color scale preset")
	flag.StringVar(&logLevel, "loglevel", "info", "log level (debug, info, warn, error)")
	flag.Parse()
	chartdata.SetLogLevel(logLevel)

	scale, err := colorscale.ByName(scaleFlag)
	if err != nil {
		chartdata.Errorf("%v", err)
		scale = colorscale.Default()
		scaleFlag = "viridis"
	}

	a := app.NewWithID("com.plotstream.viewer")
	w := a.NewWindow("PlotStream Viewer")
	w.Resize(fyne.NewSize(1000, 640))

	state := &uiState{
		app:        a,
		window:     w,
		controller: progressive.NewController(scale),
		series:     demoSeries(pointsFlag),
		scaleName:  scaleFlag,
		scale:      scale,
		chunkSize:  75,
		delayMs:    40,
		chunked:    true,
	}

	state.chartCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.chartCanvas.FillMode = canvas.ImageFillContain
	state.chartCanvas.SetMinSize(fyne.NewSize(900, 480))
	state.progressBar = widget.NewProgressBar()
	state.phaseLabel = widget.NewLabel("Idle")
	state.statsLabel = widget.NewLabel("")

	scaleSelect := widget.NewSelect(colorscale.PresetNames(), func(v string) {
		sc, err := colorscale.ByName(v)
		if err != nil {
			chartdata.Errorf("%v", err)
			return
		}
		state.scaleName = v
		state.scale = sc
		state.controller = progressive.NewController(sc)
		startLoad(state)
	})
	scaleSelect.Selected = state.scaleName

	chunkSelect := widget.NewSelect([]string{"1", "25", "75", "150", "500"}, func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			state.chunkSize = n
		}
		startLoad(state)
	})
	chunkSelect.Selected = strconv.Itoa(state.chunkSize)

	delaySelect := widget.NewSelect([]string{"0", "10", "40", "100"}, func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			state.delayMs = n
		}
		startLoad(state)
	})
	delaySelect.Selected = strconv.Itoa(state.delayMs)

	chunkedChk := widget.NewCheck("Progressive", func(b bool) {
		state.chunked = b
		startLoad(state)
	})
	chunkedChk.SetChecked(state.chunked)

	reloadBtn := widget.NewButton("Reload", func() { startLoad(state) })

	top := container.NewHBox(
		reloadBtn,
		widget.NewLabel("Scale:"), scaleSelect,
		widget.NewLabel("Chunk:"), chunkSelect,
		widget.NewLabel("Delay ms:"), delaySelect,
		chunkedChk,
	)
	bottom := container.NewVBox(state.progressBar, container.NewHBox(state.phaseLabel, state.statsLabel))
	w.SetContent(container.NewBorder(top, bottom, nil, nil, state.chartCanvas))

	startLoad(state)
	w.ShowAndRun()
}

// startLoad kicks off a fresh load request; an in-flight one is superseded
// by the controller's request token.
func startLoad(state *uiState) {
	opts := progressive.Options{
		Enabled:         state.chunked,
		ChunkSize:       state.chunkSize,
		InterChunkDelay: time.Duration(state.delayMs) * time.Millisecond,
	}
	err := state.controller.Load(state.series, opts,
		func(percentage float64, phase string, loadedPoints int) {
			fyne.Do(func() {
				state.progressBar.SetValue(percentage / 100)
				state.phaseLabel.SetText(phase)
				redrawChart(state, phase)
			})
		},
		func(totalPoints int, stats chartdata.StatisticsSnapshot) {
			fyne.Do(func() {
				state.progressBar.SetValue(1)
				state.phaseLabel.SetText(state.controller.Phase())
				state.statsLabel.SetText(statsSummary(stats))
				redrawChart(state, "")
			})
		})
	if err != nil {
		chartdata.Errorf("load rejected: %v", err)
		state.phaseLabel.SetText(fmt.Sprintf("load rejected: %v", err))
	}
}

func redrawChart(state *uiState, badge string) {
	img, err := render.Render(state.controller.Traces(), render.Options{
		Width:  960,
		Height: 480,
		Title:  "PlotStream demo",
		Scale:  state.scale,
		Badge:  badge,
	})
	if err != nil {
		chartdata.Warnf("render fallback: %v", err)
	}
	state.chartCanvas.Image = img
	state.chartCanvas.Refresh()
}

// statsSummary formats the completion statistics for the footer label.
func statsSummary(s chartdata.StatisticsSnapshot) string {
	z := "-"
	if s.ZRange != nil {
		z = fmt.Sprintf("[%s, %s]", render.FormatTick(s.ZRange[0]), render.FormatTick(s.ZRange[1]))
	}
	return fmt.Sprintf("%d pts / %d series  x=[%s, %s] y=[%s, %s] z=%s  ~%d KiB",
		s.TotalPoints, s.SeriesCount,
		render.FormatTick(s.XRange[0]), render.FormatTick(s.XRange[1]),
		render.FormatTick(s.YRange[0]), render.FormatTick(s.YRange[1]),
		z, s.EstimatedBytes/1024)
}
