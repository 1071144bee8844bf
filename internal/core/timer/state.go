package timer

import (
	"fmt"

	"timerbox/internal/core/model"
)

// Phase is the derived position of the timer in its state machine.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseArmed   Phase = "armed"
	PhaseRunning Phase = "running"
)

// State is the countdown state. Transitions never mutate the receiver; they
// return the next state together with the effects to perform.
type State struct {
	RemainingSeconds  int
	InitialSeconds    int
	Running           bool
	SelectedPresetID  string
	CompletedSessions int
}

// Phase reports the current state machine phase.
func (state State) Phase() Phase {
	switch {
	case state.RemainingSeconds <= 0:
		return PhaseIdle
	case state.Running:
		return PhaseRunning
	default:
		return PhaseArmed
	}
}

// Progress returns the elapsed fraction of the current run in [0, 1].
func (state State) Progress() float64 {
	if state.InitialSeconds <= 0 {
		return 0
	}
	progress := float64(state.InitialSeconds-state.RemainingSeconds) / float64(state.InitialSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Ticking reports whether the one-second tick should be active.
func (state State) Ticking() bool {
	return state.Running && state.RemainingSeconds > 0
}

// SelectPreset arms the timer with the preset's duration.
func (state State) SelectPreset(preset model.Preset) (State, []Effect) {
	state.RemainingSeconds = preset.DurationSeconds
	state.InitialSeconds = preset.DurationSeconds
	state.SelectedPresetID = preset.ID
	state.Running = false
	return state, []Effect{pulse(PatternSelect)}
}

// StartCustom arms the timer from the custom minutes/seconds form fields.
func (state State) StartCustom(minutes, seconds string) (State, []Effect, error) {
	total := model.ParseField(minutes)*60 + model.ParseField(seconds)
	if total <= 0 {
		return state, []Effect{warn("Enter a time", "Please enter a valid time.")}, model.ErrInvalidDuration
	}
	if total > model.MaxCustomSeconds {
		return state, []Effect{warn("Time limit", "Please set 24 hours or less.")},
			fmt.Errorf("%w: %d seconds", model.ErrDurationTooLong, total)
	}

	state.RemainingSeconds = total
	state.InitialSeconds = total
	state.SelectedPresetID = ""
	state.Running = false
	return state, []Effect{pulse(PatternSelect)}, nil
}

// ForgetPreset drops the reference to a deleted preset. The countdown itself
// is left untouched.
func (state State) ForgetPreset(id string) State {
	if state.SelectedPresetID == id {
		state.SelectedPresetID = ""
	}
	return state
}

// ToggleRunPause flips between running and paused.
func (state State) ToggleRunPause() (State, []Effect, error) {
	if state.RemainingSeconds <= 0 {
		return state, []Effect{warn("Set a time", "Pick a timer first.")}, model.ErrNoDurationSet
	}
	state.Running = !state.Running
	return state, []Effect{pulse(PatternToggle)}, nil
}

// Reset pauses and rewinds to the start of the current run.
func (state State) Reset() (State, []Effect) {
	state.Running = false
	state.RemainingSeconds = state.InitialSeconds
	return state, []Effect{pulse(PatternReset)}
}

// Stop clears the timer back to idle.
func (state State) Stop() (State, []Effect) {
	state.Running = false
	state.RemainingSeconds = 0
	state.InitialSeconds = 0
	state.SelectedPresetID = ""
	return state, []Effect{pulse(PatternStop)}
}

// AddTime extends both the remaining and the initial duration.
func (state State) AddTime(deltaSeconds int) (State, []Effect) {
	state.RemainingSeconds += deltaSeconds
	state.InitialSeconds += deltaSeconds
	return state, []Effect{pulse(PatternAddTime)}
}

// Tick advances the countdown by one second.
func (state State) Tick() (State, []Effect) {
	if !state.Ticking() {
		return state, nil
	}

	state.RemainingSeconds--
	if state.RemainingSeconds > 0 {
		return state, nil
	}

	state.Running = false
	state.CompletedSessions++
	return state, []Effect{
		pulse(PatternComplete),
		{Type: EffectCompleted, PresetID: state.SelectedPresetID},
	}
}

// ResetStatistics zeroes the completed session counter.
func (state State) ResetStatistics() State {
	state.CompletedSessions = 0
	return state
}

// FormatClock renders seconds as MM:SS, or H:MM:SS from one hour up.
func FormatClock(seconds int) string {
	hours, minutes, secs := model.SplitSeconds(seconds)
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
