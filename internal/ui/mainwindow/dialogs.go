package mainwindow

import (
	"fmt"
	"image/color"
	"strconv"

	"pomostudy/internal/core/model"
	"pomostudy/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// SetTimeDialog edits study and break session lengths. Values outside the
// documented bounds never reach the engine.
type SetTimeDialog struct {
	window     fyne.Window
	studyEntry *widget.Entry
	breakEntry *widget.Entry
	errorLabel *widget.Label
	onSave     func(studyMinutes, breakMinutes int)
}

// NewSetTimeDialog creates the session length dialog.
func NewSetTimeDialog(app fyne.App, config model.Config, onSave func(studyMinutes, breakMinutes int)) *SetTimeDialog {
	window := app.NewWindow("Set time and breaks")

	studyEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()
	studyEntry.SetText(strconv.Itoa(config.StudyMinutes))
	breakEntry.SetText(strconv.Itoa(config.BreakMinutes))

	errorLabel := widget.NewLabel("")
	errorLabel.Hide()

	dialog := &SetTimeDialog{
		window:     window,
		studyEntry: studyEntry,
		breakEntry: breakEntry,
		errorLabel: errorLabel,
		onSave:     onSave,
	}

	form := container.NewVBox(
		container.NewHBox(widget.NewLabel("Study (minutes)"), layout.NewSpacer(), studyEntry),
		container.NewHBox(widget.NewLabel("Break (minutes)"), layout.NewSpacer(), breakEntry),
		errorLabel,
	)

	saveButton := widget.NewButton("Save", dialog.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(350, 200))

	return dialog
}

// Show displays the dialog.
func (dialog *SetTimeDialog) Show() {
	dialog.errorLabel.Hide()
	dialog.window.Show()
	dialog.window.RequestFocus()
}

// UpdateConfig replaces the edited values.
func (dialog *SetTimeDialog) UpdateConfig(config model.Config) {
	dialog.studyEntry.SetText(strconv.Itoa(config.StudyMinutes))
	dialog.breakEntry.SetText(strconv.Itoa(config.BreakMinutes))
}

func (dialog *SetTimeDialog) handleSave() {
	studyMinutes, ok := parseMinutesInRange(dialog.studyEntry.Text, model.MinStudyMinutes, model.MaxStudyMinutes)
	if !ok {
		dialog.showError(fmt.Sprintf("Study minutes must be %d-%d", model.MinStudyMinutes, model.MaxStudyMinutes))
		return
	}
	breakMinutes, ok := parseMinutesInRange(dialog.breakEntry.Text, model.MinBreakMinutes, model.MaxBreakMinutes)
	if !ok {
		dialog.showError(fmt.Sprintf("Break minutes must be %d-%d", model.MinBreakMinutes, model.MaxBreakMinutes))
		return
	}

	if dialog.onSave != nil {
		dialog.onSave(studyMinutes, breakMinutes)
	}
	dialog.window.Hide()
}

func (dialog *SetTimeDialog) showError(message string) {
	dialog.errorLabel.SetText(message)
	dialog.errorLabel.Show()
}

func parseMinutesInRange(value string, lower, upper int) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < lower || parsed > upper {
		return 0, false
	}
	return parsed, true
}

// ShowResetTotalConfirm asks before the accumulated study total is wiped.
// onConfirm runs only on an explicit Yes.
func ShowResetTotalConfirm(parent fyne.Window, onConfirm func()) {
	confirm := dialog.NewConfirm(
		"Reset total study time",
		"Reset the accumulated study total to zero?",
		func(confirmed bool) {
			dispatchConfirm(confirmed, onConfirm)
		},
		parent,
	)
	confirm.SetConfirmText("Yes")
	confirm.SetDismissText("No")
	confirm.Show()
}

func dispatchConfirm(confirmed bool, onConfirm func()) {
	if confirmed && onConfirm != nil {
		onConfirm()
	}
}

// ThemeDialog offers the built-in theme presets plus a custom color set.
type ThemeDialog struct {
	window fyne.Window
}

// NewThemeDialog creates the theme picker. Custom walks one color picker per
// surface and hands the assembled set to onPick like any preset.
func NewThemeDialog(app fyne.App, presets []theme.Preset, onPick func(theme.Theme)) *ThemeDialog {
	window := app.NewWindow("Choose theme")

	items := container.NewVBox()
	for _, preset := range presets {
		preset := preset
		items.Add(widget.NewButton(preset.Name, func() {
			if onPick != nil {
				onPick(preset.Theme)
			}
			window.Hide()
		}))
	}
	items.Add(widget.NewButton("Custom...", func() {
		pickCustomTheme(window, func(picked theme.Theme) {
			if onPick != nil {
				onPick(picked)
			}
			window.Hide()
		})
	}))

	closeButton := widget.NewButton("Close", func() {
		window.Hide()
	})

	window.SetContent(container.NewBorder(nil, closeButton, nil, nil, items))
	window.Resize(fyne.NewSize(280, 300))

	return &ThemeDialog{window: window}
}

// colorStep names one surface of a custom theme and writes its picked color.
type colorStep struct {
	title string
	apply func(*theme.Theme, string)
}

func customColorSteps() []colorStep {
	return []colorStep{
		{"Background color", func(t *theme.Theme, hex string) { t.Background = hex }},
		{"Card color", func(t *theme.Theme, hex string) { t.Card = hex }},
		{"Accent color", func(t *theme.Theme, hex string) { t.Accent = hex }},
		{"Progress color", func(t *theme.Theme, hex string) { t.Progress = hex }},
	}
}

// pickCustomTheme walks the color pickers in order. Dismissing any picker
// abandons the whole set; text color stays at the default.
func pickCustomTheme(parent fyne.Window, onDone func(theme.Theme)) {
	custom := theme.Default()
	steps := customColorSteps()

	var show func(index int)
	show = func(index int) {
		if index >= len(steps) {
			onDone(custom)
			return
		}
		step := steps[index]
		picker := dialog.NewColorPicker(step.title, "", func(picked color.Color) {
			step.apply(&custom, theme.FormatColor(picked))
			show(index + 1)
		}, parent)
		picker.Advanced = true
		picker.Show()
	}
	show(0)
}

// Show displays the dialog.
func (dialog *ThemeDialog) Show() {
	dialog.window.Show()
	dialog.window.RequestFocus()
}
