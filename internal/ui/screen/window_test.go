package screen

import (
	"image/color"
	"testing"

	"timerbox/internal/core/model"
	"timerbox/internal/core/presets"
	"timerbox/internal/core/session"
	"timerbox/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeControls struct {
	snapshot  session.Snapshot
	presets   []model.Preset
	selected  []string
	custom    [][2]string
	customErr error
	toggles   int
	resets    int
	stops     int
	added     []int
	deleted   []string
	saved     []presets.Draft
	settings  []model.Settings
}

func newFakeControls() *fakeControls {
	return &fakeControls{
		snapshot: session.Snapshot{Phase: timer.PhaseIdle, Settings: model.DefaultSettings()},
		presets:  model.DefaultPresets(),
	}
}

func (fake *fakeControls) Snapshot() session.Snapshot {
	return fake.snapshot
}

func (fake *fakeControls) Presets() []model.Preset {
	return fake.presets
}

func (fake *fakeControls) SelectPreset(preset model.Preset) {
	fake.selected = append(fake.selected, preset.ID)
}

func (fake *fakeControls) StartCustom(minutes, seconds string) error {
	fake.custom = append(fake.custom, [2]string{minutes, seconds})
	return fake.customErr
}

func (fake *fakeControls) ToggleRunPause() error {
	fake.toggles++
	return nil
}

func (fake *fakeControls) Reset() {
	fake.resets++
}

func (fake *fakeControls) Stop() {
	fake.stops++
}

func (fake *fakeControls) AddTime(deltaSeconds int) {
	fake.added = append(fake.added, deltaSeconds)
}

func (fake *fakeControls) SavePreset(draft presets.Draft, _ string) (model.Preset, error) {
	fake.saved = append(fake.saved, draft)
	return model.Preset{}, nil
}

func (fake *fakeControls) DeletePreset(id string) {
	fake.deleted = append(fake.deleted, id)
}

func (fake *fakeControls) ResetPresets() {}

func (fake *fakeControls) ResetStatistics() {}

func (fake *fakeControls) UpdateSettings(settings model.Settings) {
	fake.settings = append(fake.settings, settings)
	fake.snapshot.Settings = settings
}

func newTestScreen(t *testing.T, controls *fakeControls) *Window {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	return New(app.NewWindow("TimerBox"), controls)
}

func TestRenderIdle(t *testing.T) {
	screen := newTestScreen(t, newFakeControls())

	assert.Equal(t, "00:00", screen.clock.Text)
	assert.Equal(t, "Pick a timer", screen.status.Text)
	assert.Equal(t, "Start", screen.toggle.Text)
	assert.False(t, screen.quickAdd.Visible())
	assert.Empty(t, screen.presetLabel.Text)
	assert.Equal(t, "Completed sessions: 0", screen.sessions.Text)
	assert.Equal(t, "Saved presets: 6", screen.presetCount.Text)
}

func TestRenderRunningPreset(t *testing.T) {
	screen := newTestScreen(t, newFakeControls())
	ramen := model.DefaultPresets()[0]

	screen.Render(session.Snapshot{
		State:    timer.State{RemainingSeconds: 238, InitialSeconds: 240, Running: true, SelectedPresetID: "ramen", CompletedSessions: 2},
		Phase:    timer.PhaseRunning,
		Progress: 2.0 / 240,
		Preset:   &ramen,
		Settings: model.DefaultSettings(),
	})

	assert.Equal(t, "03:58", screen.clock.Text)
	assert.Equal(t, "▶️ Running", screen.status.Text)
	assert.Equal(t, "🍜 Ramen", screen.presetLabel.Text)
	assert.Equal(t, "Pause", screen.toggle.Text)
	assert.True(t, screen.quickAdd.Visible())
	assert.Equal(t, "Completed sessions: 2", screen.statsLabel.Text)
	assert.InDelta(t, 2.0/240, screen.progress.Value, 1e-9)
	assert.Equal(t, color.NRGBA{R: 0xf9, G: 0x73, B: 0x16, A: 255}, screen.accent.FillColor)
}

func TestButtonsDriveControls(t *testing.T) {
	controls := newFakeControls()
	screen := newTestScreen(t, controls)

	test.Tap(screen.toggle)
	test.Tap(screen.quickAdd.Objects[1].(*widget.Button))
	test.Tap(screen.quickAdd.Objects[2].(*widget.Button))

	assert.Equal(t, 1, controls.toggles)
	assert.Equal(t, []int{60, 300}, controls.added)
}

func TestStartCustomClearsFieldsOnSuccess(t *testing.T) {
	controls := newFakeControls()
	screen := newTestScreen(t, controls)

	test.Type(screen.minutes, "5")
	test.Type(screen.seconds, "30")
	screen.startCustom()

	assert.Equal(t, [][2]string{{"5", "30"}}, controls.custom)
	assert.Empty(t, screen.minutes.Text)

	controls.customErr = model.ErrDurationTooLong
	test.Type(screen.minutes, "1500")
	screen.startCustom()
	assert.Equal(t, "1500", screen.minutes.Text)
}

func TestPresetRowActions(t *testing.T) {
	controls := newFakeControls()
	screen := newTestScreen(t, controls)

	row := screen.newPresetRow()
	screen.updatePresetRow(3, row)

	rowBox := row.(*fyne.Container)
	choose := rowBox.Objects[0].(*widget.Button)
	remove := rowBox.Objects[1].(*fyne.Container).Objects[1].(*widget.Button)
	assert.Equal(t, "☕  Coffee  03:00", choose.Text)

	test.Tap(choose)
	test.Tap(remove)
	assert.Equal(t, []string{"coffee"}, controls.selected)
	assert.Equal(t, []string{"coffee"}, controls.deleted)
}

func TestReloadPresetsTracksControls(t *testing.T) {
	controls := newFakeControls()
	screen := newTestScreen(t, controls)

	controls.presets = controls.presets[:2]
	screen.handleEvent(session.Event{Type: session.EventPresetsChange, Snapshot: controls.snapshot})

	assert.Len(t, screen.presetItems, 2)
	assert.Equal(t, "Saved presets: 2", screen.presetCount.Text)
}

func TestSettingsWidgetsUpdateControls(t *testing.T) {
	controls := newFakeControls()
	screen := newTestScreen(t, controls)
	require.Empty(t, controls.settings)

	test.Tap(screen.vibration)
	screen.sound.SetSelected(string(model.SoundBell))

	require.Len(t, controls.settings, 2)
	assert.False(t, controls.settings[0].VibrationEnabled)
	assert.Equal(t, model.SoundBell, controls.settings[1].SoundType)
	assert.False(t, controls.settings[1].VibrationEnabled)
}

func TestPresetFormDraftRoundTrip(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	preset := model.Preset{ID: "tea", Name: "Tea", DurationSeconds: 3725, Emoji: "🍵", Color: "bg-teal-500"}

	form := newPresetForm(presets.OpenDraft(&preset))
	assert.Equal(t, presets.OpenDraft(&preset), form.draft())

	blank := newPresetForm(presets.OpenDraft(nil))
	assert.Equal(t, model.DefaultColor, blank.draft().Color)
	assert.Equal(t, model.DefaultEmoji, blank.draft().Emoji)
}

func TestPresetFormKeepsUnlistedEmoji(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	preset := model.Preset{ID: "odd", Name: "Odd", DurationSeconds: 90, Emoji: "🦉", Color: "bg-red-500"}

	form := newPresetForm(presets.OpenDraft(&preset))
	assert.Equal(t, "🦉", form.draft().Emoji)
	assert.Equal(t, "🦉", form.emoji.Options[0])
	assert.Len(t, form.emoji.Options, len(model.EmojiOptions)+1)

	assert.Equal(t, model.EmojiOptions, emojiChoices(model.DefaultEmoji))
	assert.Equal(t, model.EmojiOptions, emojiChoices(""))
}

func TestCompletionText(t *testing.T) {
	_, message := completionText("Ramen")
	assert.Equal(t, "The Ramen timer is done!", message)
	_, message = completionText("")
	assert.Equal(t, "The time you set is up!", message)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 255}, hexColor("#3b82f6"))
	assert.Equal(t, color.Transparent, hexColor("blue"))
}
