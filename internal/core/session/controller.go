package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"timerbox/internal/core/model"
	"timerbox/internal/core/presets"
	"timerbox/internal/core/timer"
)

var (
	patternSave   = []time.Duration{100 * time.Millisecond}
	patternDelete = []time.Duration{50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond}
)

// Config contains runtime options for the Controller.
type Config struct {
	TickInterval time.Duration
	NewTicker    func(time.Duration) Ticker
}

// Controller owns the countdown state, the preset store and the tick loop,
// and turns transition effects into collaborator calls.
type Controller struct {
	mu       sync.Mutex
	state    timer.State
	store    *presets.Store
	settings model.Settings
	haptics  Haptics
	alerts   Alerts
	options  Config
	events   []chan Event

	cancelTick context.CancelFunc
	tickDone   chan struct{}
	closed     bool
}

// New creates an idle Controller.
func New(store *presets.Store, settings model.Settings, haptics Haptics, alerts Alerts, options Config) *Controller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.NewTicker == nil {
		options.NewTicker = newClockTicker
	}
	if store == nil {
		store = presets.New()
	}

	return &Controller{
		store:    store,
		settings: settings,
		haptics:  haptics,
		alerts:   alerts,
		options:  options,
	}
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	if controller.closed {
		close(ch)
	} else {
		controller.events = append(controller.events, ch)
	}
	controller.mu.Unlock()
	return ch
}

// Close cancels the tick loop, waits for it to exit and closes observers.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	done := controller.stopTickLocked()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	if done != nil {
		<-done
	}
	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns the current state.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.snapshotLocked()
}

// Presets returns the ordered preset list.
func (controller *Controller) Presets() []model.Preset {
	return controller.store.List()
}

// Settings returns the active settings.
func (controller *Controller) Settings() model.Settings {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.settings
}

// UpdateSettings replaces the active settings.
func (controller *Controller) UpdateSettings(settings model.Settings) {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.settings = settings
	controller.emitLocked(EventSettingsChange)
	controller.mu.Unlock()
}

// SelectPreset arms the timer with preset.
func (controller *Controller) SelectPreset(preset model.Preset) {
	_ = controller.apply(EventStateChange, func(state timer.State) (timer.State, []timer.Effect, error) {
		next, effects := state.SelectPreset(preset)
		return next, effects, nil
	})
}

// StartCustom arms the timer from the custom minutes and seconds fields.
func (controller *Controller) StartCustom(minutes, seconds string) error {
	return controller.apply(EventStateChange, func(state timer.State) (timer.State, []timer.Effect, error) {
		return state.StartCustom(minutes, seconds)
	})
}

// ToggleRunPause starts or pauses the countdown.
func (controller *Controller) ToggleRunPause() error {
	return controller.apply(EventStateChange, timer.State.ToggleRunPause)
}

// Reset rewinds the current run and pauses it.
func (controller *Controller) Reset() {
	_ = controller.apply(EventStateChange, withoutError(timer.State.Reset))
}

// Stop clears the timer.
func (controller *Controller) Stop() {
	_ = controller.apply(EventStateChange, withoutError(timer.State.Stop))
}

// AddTime extends the current run by deltaSeconds.
func (controller *Controller) AddTime(deltaSeconds int) {
	_ = controller.apply(EventStateChange, func(state timer.State) (timer.State, []timer.Effect, error) {
		next, effects := state.AddTime(deltaSeconds)
		return next, effects, nil
	})
}

// SavePreset stores draft as a new preset, or over editingID when set.
func (controller *Controller) SavePreset(draft presets.Draft, editingID string) (model.Preset, error) {
	saved, err := controller.store.SaveDraft(draft, editingID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyName):
			controller.warn("Enter a name", "Please enter a preset name.")
		case errors.Is(err, model.ErrInvalidDuration):
			controller.warn("Enter a time", "Please set a valid time.")
		}
		return model.Preset{}, err
	}

	controller.notify(EventPresetsChange, patternSave)
	return saved, nil
}

// DeletePreset asks for confirmation and then removes the preset. A timer
// armed from it keeps counting but no longer resolves a preset.
func (controller *Controller) DeletePreset(id string) {
	preset, ok := controller.store.Find(id)
	if !ok || controller.alerts == nil {
		return
	}
	controller.alerts.Confirm(
		"Delete preset",
		fmt.Sprintf("Delete the '%s' preset?", preset.Name),
		func() {
			if !controller.store.Delete(id) {
				return
			}
			controller.mu.Lock()
			controller.state = controller.state.ForgetPreset(id)
			controller.mu.Unlock()
			controller.notify(EventPresetsChange, patternDelete)
		},
	)
}

// ResetPresets asks for confirmation and then restores the default presets.
func (controller *Controller) ResetPresets() {
	if controller.alerts == nil {
		return
	}
	controller.alerts.Confirm(
		"Reset to defaults",
		"Reset all presets to their defaults?",
		func() {
			controller.store.ResetToDefaults()
			controller.notify(EventPresetsChange, nil)
			controller.warn("Reset complete", "All presets were restored to their defaults.")
		},
	)
}

// ResetStatistics asks for confirmation and then zeroes the session count.
func (controller *Controller) ResetStatistics() {
	if controller.alerts == nil {
		return
	}
	controller.alerts.Confirm(
		"Reset statistics",
		"Reset all statistics?",
		func() {
			_ = controller.apply(EventStateChange, func(state timer.State) (timer.State, []timer.Effect, error) {
				return state.ResetStatistics(), nil, nil
			})
		},
	)
}

type transition func(timer.State) (timer.State, []timer.Effect, error)

func withoutError(fn func(timer.State) (timer.State, []timer.Effect)) transition {
	return func(state timer.State) (timer.State, []timer.Effect, error) {
		next, effects := fn(state)
		return next, effects, nil
	}
}

func (controller *Controller) apply(eventType EventType, fn transition) error {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return nil
	}
	next, effects, err := fn(controller.state)
	controller.state = next
	controller.syncTickLocked()
	controller.emitLocked(eventType)
	settings := controller.settings
	controller.mu.Unlock()

	controller.perform(effects, settings)
	return err
}

func (controller *Controller) tick(ctx context.Context) {
	controller.mu.Lock()
	if ctx.Err() != nil {
		controller.mu.Unlock()
		return
	}
	next, effects := controller.state.Tick()
	controller.state = next
	controller.syncTickLocked()
	eventType := EventTick
	if !next.Running {
		eventType = EventCompleted
	}
	controller.emitLocked(eventType)
	settings := controller.settings
	controller.mu.Unlock()

	controller.perform(effects, settings)
}

// syncTickLocked keeps exactly one tick loop alive while the state ticks.
func (controller *Controller) syncTickLocked() {
	if !controller.state.Ticking() {
		controller.stopTickLocked()
		return
	}
	if controller.cancelTick != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	controller.cancelTick = cancel
	controller.tickDone = done

	ticker := controller.options.NewTicker(controller.options.TickInterval)
	go controller.run(ctx, ticker, done)
}

func (controller *Controller) stopTickLocked() chan struct{} {
	if controller.cancelTick == nil {
		return nil
	}
	controller.cancelTick()
	done := controller.tickDone
	controller.cancelTick = nil
	controller.tickDone = nil
	return done
}

func (controller *Controller) run(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			controller.tick(ctx)
		}
	}
}

func (controller *Controller) perform(effects []timer.Effect, settings model.Settings) {
	for _, effect := range effects {
		switch effect.Type {
		case timer.EffectPulse:
			controller.pulse(effect.Pattern, settings)
		case timer.EffectWarn:
			controller.warn(effect.Title, effect.Message)
		case timer.EffectCompleted:
			controller.complete(effect.PresetID, settings)
		}
	}
}

func (controller *Controller) complete(presetID string, settings model.Settings) {
	if controller.alerts == nil {
		return
	}
	preset, ok := controller.store.Find(presetID)
	if !ok {
		controller.alerts.NotifyCompletion("", nil)
		return
	}

	var onRestart func()
	if settings.AutoStartEnabled {
		onRestart = func() {
			current, ok := controller.store.Find(presetID)
			if !ok {
				return
			}
			controller.SelectPreset(current)
			_ = controller.ToggleRunPause()
		}
	}
	controller.alerts.NotifyCompletion(preset.Name, onRestart)
}

func (controller *Controller) pulse(pattern []time.Duration, settings model.Settings) {
	if !settings.VibrationEnabled || controller.haptics == nil || len(pattern) == 0 {
		return
	}
	controller.haptics.Pulse(pattern)
}

func (controller *Controller) warn(title, message string) {
	if controller.alerts != nil {
		controller.alerts.Warn(title, message)
	}
}

// notify emits eventType and fires pattern for store mutations.
func (controller *Controller) notify(eventType EventType, pattern []time.Duration) {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.emitLocked(eventType)
	settings := controller.settings
	controller.mu.Unlock()

	controller.pulse(pattern, settings)
}

func (controller *Controller) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		State:    controller.state,
		Phase:    controller.state.Phase(),
		Progress: controller.state.Progress(),
		Settings: controller.settings,
	}
	if preset, ok := controller.store.Find(controller.state.SelectedPresetID); ok {
		snapshot.Preset = &preset
	}
	return snapshot
}

func (controller *Controller) emitLocked(eventType EventType) {
	if len(controller.events) == 0 {
		return
	}
	event := Event{
		Type:     eventType,
		Snapshot: controller.snapshotLocked(),
		At:       time.Now(),
	}
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
