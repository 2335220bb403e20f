package mainwindow

import (
	"fmt"
	"image/color"

	"pomostudy/internal/core/engine"
	"pomostudy/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	windowWidth  = float32(460)
	windowHeight = float32(520)
	cardWidth    = float32(400)
	cardHeight   = float32(300)
	stripHeight  = float32(28)
)

// Callbacks defines main window action handlers.
type Callbacks struct {
	OnPauseToggle func()
	OnReset       func()
	OnSetTime     func()
	OnTheme       func()
	OnResetTotal  func()
}

// Window is the main application window: a large tappable timer card, the
// start/pause and reset controls, the cumulative total footer, and a progress
// strip along the bottom edge.
type Window struct {
	window    fyne.Window
	callbacks Callbacks

	background     *canvas.Rectangle
	titleLabel     *canvas.Text
	cardBackground *canvas.Rectangle
	timerText      *canvas.Text
	modeText       *canvas.Text
	pauseButton    *widget.Button
	resetButton    *widget.Button
	totalLabel     *canvas.Text
	stripBase      *canvas.Rectangle
	stripFill      *canvas.Rectangle
	stripBox       *fyne.Container

	progress float64
}

// New creates the main window with the given theme applied.
func New(app fyne.App, initial theme.Theme, callbacks Callbacks) *Window {
	window := app.NewWindow("PomoStudy")

	main := &Window{
		window:    window,
		callbacks: callbacks,
	}

	main.background = canvas.NewRectangle(initial.BackgroundColor())

	main.titleLabel = canvas.NewText("PomoStudy", initial.AccentColor())
	main.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	main.titleLabel.TextSize = 18

	main.cardBackground = canvas.NewRectangle(initial.CardColor())
	main.cardBackground.StrokeColor = initial.AccentColor()
	main.cardBackground.StrokeWidth = 1

	main.timerText = canvas.NewText("Set time", initial.TextColor())
	main.timerText.TextStyle = fyne.TextStyle{Bold: true}
	main.timerText.TextSize = 64
	main.timerText.Alignment = fyne.TextAlignCenter

	main.modeText = canvas.NewText("study", initial.TextColor())
	main.modeText.TextSize = 20
	main.modeText.Alignment = fyne.TextAlignCenter

	main.pauseButton = widget.NewButton("Start", func() {
		if main.callbacks.OnPauseToggle != nil {
			main.callbacks.OnPauseToggle()
		}
	})
	main.resetButton = widget.NewButton("Reset", func() {
		if main.callbacks.OnReset != nil {
			main.callbacks.OnReset()
		}
	})

	main.totalLabel = canvas.NewText("Total studied: 0.00 h (00:00:00)", initial.AccentColor())
	main.totalLabel.TextSize = 14

	main.stripBase = canvas.NewRectangle(initial.CardColor())
	main.stripFill = canvas.NewRectangle(initial.ProgressColor())
	main.stripBox = container.New(&stripLayout{window: main}, main.stripBase, main.stripFill)

	settingsButton := widget.NewButton("Set time", func() {
		if main.callbacks.OnSetTime != nil {
			main.callbacks.OnSetTime()
		}
	})
	themeButton := widget.NewButton("Theme", func() {
		if main.callbacks.OnTheme != nil {
			main.callbacks.OnTheme()
		}
	})
	resetTotalButton := widget.NewButton("Reset total", func() {
		if main.callbacks.OnResetTotal != nil {
			main.callbacks.OnResetTotal()
		}
	})

	header := container.NewHBox(main.titleLabel, layout.NewSpacer(), settingsButton, themeButton)

	tap := newTapArea(func() {
		if main.callbacks.OnSetTime != nil {
			main.callbacks.OnSetTime()
		}
	})
	card := container.New(&cardLayout{}, main.cardBackground, main.timerText, main.modeText, tap)

	controls := container.NewHBox(layout.NewSpacer(), main.pauseButton, main.resetButton, layout.NewSpacer())
	footer := container.NewHBox(main.totalLabel, layout.NewSpacer(), resetTotalButton)

	bottom := container.NewVBox(controls, footer, main.stripBox)
	content := container.NewBorder(header, bottom, nil, nil, container.NewCenter(card))
	root := container.NewMax(main.background, content)

	window.SetContent(root)
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.CenterOnScreen()

	return main
}

// Show displays the main window.
func (main *Window) Show() {
	main.window.Show()
	main.window.RequestFocus()
}

// Hide hides the main window without quitting.
func (main *Window) Hide() {
	main.window.Hide()
}

// Window exposes the underlying Fyne window for close interception.
func (main *Window) Window() fyne.Window {
	return main.window
}

// Refresh applies one engine snapshot to every widget. Must run on the Fyne
// thread.
func (main *Window) Refresh(status engine.Status) {
	main.timerText.Text = status.Clock
	main.timerText.Refresh()

	main.modeText.Text = string(status.Mode)
	main.modeText.Refresh()

	main.pauseButton.SetText(pauseLabel(status.Running, status.Paused))

	main.totalLabel.Text = fmt.Sprintf("Total studied: %s (%s)", status.TotalShort, status.TotalLong)
	main.totalLabel.Refresh()

	main.SetProgress(status.Progress)
}

// SetProgress updates the bottom strip fill. Must run on the Fyne thread.
func (main *Window) SetProgress(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	if progress == main.progress {
		return
	}
	main.progress = progress
	main.stripBox.Refresh()
}

// ApplyTheme recolors the whole window. Must run on the Fyne thread.
func (main *Window) ApplyTheme(value theme.Theme) {
	main.background.FillColor = value.BackgroundColor()
	main.cardBackground.FillColor = value.CardColor()
	main.cardBackground.StrokeColor = value.AccentColor()
	main.timerText.Color = value.TextColor()
	main.modeText.Color = value.TextColor()
	main.titleLabel.Color = value.AccentColor()
	main.totalLabel.Color = value.AccentColor()
	main.stripBase.FillColor = value.CardColor()
	main.stripFill.FillColor = value.ProgressColor()

	canvas.Refresh(main.background)
	canvas.Refresh(main.cardBackground)
	main.timerText.Refresh()
	main.modeText.Refresh()
	main.titleLabel.Refresh()
	main.totalLabel.Refresh()
	main.stripBox.Refresh()
}

// SetCardFill overrides the card fill color; used by the mode-switch pulse.
// Safe to call from any goroutine.
func (main *Window) SetCardFill(fill color.NRGBA) {
	fyne.Do(func() {
		main.cardBackground.FillColor = fill
		canvas.Refresh(main.cardBackground)
	})
}

func pauseLabel(running, paused bool) string {
	switch {
	case !running:
		return "Start"
	case paused:
		return "Resume"
	default:
		return "Pause"
	}
}

// tapArea is an invisible widget that forwards taps; it sits over the timer
// card so clicking the card opens the set-time dialog.
type tapArea struct {
	widget.BaseWidget
	onTapped func()
}

func newTapArea(onTapped func()) *tapArea {
	area := &tapArea{onTapped: onTapped}
	area.ExtendBaseWidget(area)
	return area
}

func (area *tapArea) Tapped(*fyne.PointEvent) {
	if area.onTapped != nil {
		area.onTapped()
	}
}

func (area *tapArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewWithoutLayout())
}

// cardLayout fills the card background, stacks the time and mode labels in the
// middle, and stretches the tap catcher over everything.
type cardLayout struct{}

func (cardLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 4 {
		return
	}
	background := objects[0]
	timerText := objects[1]
	modeText := objects[2]
	tap := objects[3]

	background.Move(fyne.NewPos(0, 0))
	background.Resize(size)

	timerSize := timerText.MinSize()
	modeSize := modeText.MinSize()
	totalHeight := timerSize.Height + modeSize.Height + 8

	timerY := (size.Height - totalHeight) / 2
	if timerY < 0 {
		timerY = 0
	}
	timerText.Move(fyne.NewPos(0, timerY))
	timerText.Resize(fyne.NewSize(size.Width, timerSize.Height))

	modeText.Move(fyne.NewPos(0, timerY+timerSize.Height+8))
	modeText.Resize(fyne.NewSize(size.Width, modeSize.Height))

	tap.Move(fyne.NewPos(0, 0))
	tap.Resize(size)
}

func (cardLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(cardWidth, cardHeight)
}

// stripLayout sizes the fill rectangle to the window's progress fraction.
type stripLayout struct {
	window *Window
}

func (strip *stripLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	base := objects[0]
	fill := objects[1]

	base.Move(fyne.NewPos(0, 0))
	base.Resize(size)

	width := size.Width * float32(strip.window.progress)
	fill.Move(fyne.NewPos(0, 0))
	fill.Resize(fyne.NewSize(width, size.Height))
}

func (strip *stripLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, stripHeight)
}
