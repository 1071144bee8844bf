package screen

import (
	"fmt"
	"image/color"

	"timerbox/internal/core/model"
	"timerbox/internal/core/presets"
	"timerbox/internal/core/session"
	"timerbox/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controls is the subset of the session controller the screen drives.
type Controls interface {
	Snapshot() session.Snapshot
	Presets() []model.Preset
	SelectPreset(preset model.Preset)
	StartCustom(minutes, seconds string) error
	ToggleRunPause() error
	Reset()
	Stop()
	AddTime(deltaSeconds int)
	SavePreset(draft presets.Draft, editingID string) (model.Preset, error)
	DeletePreset(id string)
	ResetPresets()
	ResetStatistics()
	UpdateSettings(settings model.Settings)
}

// Quick-add steps offered below the clock.
var quickAddSteps = []struct {
	label   string
	seconds int
}{
	{"+30s", 30},
	{"+1m", 60},
	{"+5m", 300},
}

// Window is the single application screen.
type Window struct {
	window   fyne.Window
	controls Controls

	clock       *canvas.Text
	accent      *canvas.Rectangle
	status      *widget.Label
	presetLabel *widget.Label
	progress    *widget.ProgressBar
	sessions    *widget.Label
	toggle      *widget.Button
	quickAdd    *fyne.Container
	minutes     *widget.Entry
	seconds     *widget.Entry

	presetList  *widget.List
	presetItems []model.Preset

	vibration   *widget.Check
	autoStart   *widget.Check
	sound       *widget.Select
	statsLabel  *widget.Label
	presetCount *widget.Label
}

// New builds the screen inside window.
func New(window fyne.Window, controls Controls) *Window {
	screen := &Window{
		window:   window,
		controls: controls,
	}

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Timer", theme.HistoryIcon(), screen.buildTimerTab()),
		container.NewTabItemWithIcon("Settings", theme.SettingsIcon(), screen.buildSettingsTab()),
	)
	window.SetContent(tabs)
	window.Resize(fyne.NewSize(420, 760))

	screen.ReloadPresets()
	screen.Render(controls.Snapshot())
	return screen
}

// Show displays the window.
func (screen *Window) Show() {
	screen.window.Show()
	screen.window.RequestFocus()
}

// Listen renders controller events until the channel closes.
func (screen *Window) Listen(events <-chan session.Event) {
	go func() {
		for event := range events {
			event := event
			fyne.Do(func() {
				screen.handleEvent(event)
			})
		}
	}()
}

func (screen *Window) handleEvent(event session.Event) {
	if event.Type == session.EventPresetsChange {
		screen.ReloadPresets()
	}
	screen.Render(event.Snapshot)
}

// Render projects snapshot onto the widgets.
func (screen *Window) Render(snapshot session.Snapshot) {
	state := snapshot.State

	screen.clock.Text = timer.FormatClock(state.RemainingSeconds)
	screen.clock.Refresh()
	screen.progress.SetValue(snapshot.Progress)
	screen.status.SetText(statusText(snapshot.Phase))

	accent := model.ColorHex("")
	if snapshot.Preset != nil {
		screen.presetLabel.SetText(snapshot.Preset.Emoji + " " + snapshot.Preset.Name)
		accent = model.ColorHex(snapshot.Preset.Color)
	} else {
		screen.presetLabel.SetText("")
	}
	screen.accent.FillColor = hexColor(accent)
	screen.accent.Refresh()

	if state.Running {
		screen.toggle.SetText("Pause")
		screen.toggle.SetIcon(theme.MediaPauseIcon())
	} else {
		screen.toggle.SetText("Start")
		screen.toggle.SetIcon(theme.MediaPlayIcon())
	}

	if state.RemainingSeconds > 0 {
		screen.quickAdd.Show()
	} else {
		screen.quickAdd.Hide()
	}

	sessions := fmt.Sprintf("Completed sessions: %d", state.CompletedSessions)
	screen.sessions.SetText(sessions)
	screen.statsLabel.SetText(sessions)

	screen.vibration.SetChecked(snapshot.Settings.VibrationEnabled)
	screen.autoStart.SetChecked(snapshot.Settings.AutoStartEnabled)
	screen.sound.SetSelected(string(snapshot.Settings.SoundType))
}

// ReloadPresets re-reads the preset list.
func (screen *Window) ReloadPresets() {
	screen.presetItems = screen.controls.Presets()
	screen.presetCount.SetText(fmt.Sprintf("Saved presets: %d", len(screen.presetItems)))
	screen.presetList.Refresh()
}

func (screen *Window) buildTimerTab() fyne.CanvasObject {
	screen.sessions = widget.NewLabel("")

	screen.clock = canvas.NewText("00:00", theme.Color(theme.ColorNameForeground))
	screen.clock.TextSize = 56
	screen.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	screen.clock.Alignment = fyne.TextAlignCenter

	screen.accent = canvas.NewRectangle(color.Transparent)
	screen.accent.SetMinSize(fyne.NewSize(0, 6))

	screen.status = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	screen.presetLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	screen.progress = widget.NewProgressBar()
	screen.progress.TextFormatter = func() string { return "" }

	addButtons := make([]fyne.CanvasObject, 0, len(quickAddSteps))
	for _, step := range quickAddSteps {
		seconds := step.seconds
		addButtons = append(addButtons, widget.NewButton(step.label, func() {
			screen.controls.AddTime(seconds)
		}))
	}
	screen.quickAdd = container.NewGridWithColumns(len(addButtons), addButtons...)

	screen.toggle = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		_ = screen.controls.ToggleRunPause()
	})
	screen.toggle.Importance = widget.HighImportance
	reset := widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), screen.controls.Reset)
	stop := widget.NewButtonWithIcon("Stop", theme.MediaStopIcon(), screen.controls.Stop)
	controlsRow := container.NewGridWithColumns(3, screen.toggle, reset, stop)

	screen.minutes = widget.NewEntry()
	screen.minutes.SetPlaceHolder("min")
	screen.seconds = widget.NewEntry()
	screen.seconds.SetPlaceHolder("sec")
	custom := widget.NewButton("Set custom", screen.startCustom)
	customRow := container.NewGridWithColumns(3, screen.minutes, screen.seconds, custom)

	screen.presetList = widget.NewList(
		func() int { return len(screen.presetItems) },
		screen.newPresetRow,
		screen.updatePresetRow,
	)
	addPreset := widget.NewButtonWithIcon("New preset", theme.ContentAddIcon(), func() {
		screen.openPresetForm(nil)
	})

	header := container.NewVBox(
		widget.NewLabelWithStyle("⏰ Timers", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		screen.sessions,
		screen.clock,
		screen.accent,
		screen.progress,
		screen.status,
		screen.presetLabel,
		screen.quickAdd,
		controlsRow,
		widget.NewLabelWithStyle("Custom timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		customRow,
		container.NewHBox(
			widget.NewLabelWithStyle("Presets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			addPreset,
		),
	)
	return container.NewBorder(header, nil, nil, nil, screen.presetList)
}

func (screen *Window) startCustom() {
	if err := screen.controls.StartCustom(screen.minutes.Text, screen.seconds.Text); err != nil {
		return
	}
	screen.minutes.SetText("")
	screen.seconds.SetText("")
}

func (screen *Window) newPresetRow() fyne.CanvasObject {
	choose := widget.NewButton("", nil)
	choose.Alignment = widget.ButtonAlignLeading
	edit := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), nil)
	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
	return container.NewBorder(nil, nil, nil, container.NewHBox(edit, remove), choose)
}

func (screen *Window) updatePresetRow(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(screen.presetItems) {
		return
	}
	preset := screen.presetItems[id]

	row := item.(*fyne.Container)
	choose := row.Objects[0].(*widget.Button)
	actions := row.Objects[1].(*fyne.Container)
	edit := actions.Objects[0].(*widget.Button)
	remove := actions.Objects[1].(*widget.Button)

	choose.SetText(fmt.Sprintf("%s  %s  %s", preset.Emoji, preset.Name, timer.FormatClock(preset.DurationSeconds)))
	choose.OnTapped = func() { screen.controls.SelectPreset(preset) }
	edit.OnTapped = func() { screen.openPresetForm(&preset) }
	remove.OnTapped = func() { screen.controls.DeletePreset(preset.ID) }
}

func (screen *Window) buildSettingsTab() fyne.CanvasObject {
	screen.vibration = widget.NewCheck("Vibration on timer events", func(enabled bool) {
		settings := screen.controls.Snapshot().Settings
		if settings.VibrationEnabled == enabled {
			return
		}
		settings.VibrationEnabled = enabled
		screen.controls.UpdateSettings(settings)
	})
	screen.autoStart = widget.NewCheck("Offer restart when a preset finishes", func(enabled bool) {
		settings := screen.controls.Snapshot().Settings
		if settings.AutoStartEnabled == enabled {
			return
		}
		settings.AutoStartEnabled = enabled
		screen.controls.UpdateSettings(settings)
	})

	soundOptions := make([]string, 0, len(model.SoundTypes))
	for _, soundType := range model.SoundTypes {
		soundOptions = append(soundOptions, string(soundType))
	}
	screen.sound = widget.NewSelect(soundOptions, func(selected string) {
		settings := screen.controls.Snapshot().Settings
		if string(settings.SoundType) == selected {
			return
		}
		settings.SoundType = model.SoundType(selected)
		screen.controls.UpdateSettings(settings)
	})

	screen.statsLabel = widget.NewLabel("")
	screen.presetCount = widget.NewLabel("")

	return container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle("⚙️ Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		screen.vibration,
		screen.autoStart,
		container.NewHBox(widget.NewLabel("Sound"), screen.sound),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("📊 Statistics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		screen.statsLabel,
		widget.NewButton("Reset statistics", screen.controls.ResetStatistics),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("🎯 Presets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		screen.presetCount,
		widget.NewButton("Restore default presets", screen.controls.ResetPresets),
		widget.NewSeparator(),
		widget.NewLabel("TimerBox v1.0\nPreset and custom countdown timers."),
	))
}

func statusText(phase timer.Phase) string {
	switch phase {
	case timer.PhaseRunning:
		return "▶️ Running"
	case timer.PhaseArmed:
		return "⏸️ Paused"
	default:
		return "Pick a timer"
	}
}

func hexColor(hex string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Transparent
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
