package session

import (
	"time"

	"timerbox/internal/core/model"
	"timerbox/internal/core/timer"
)

// EventType defines the type of controller event.
type EventType string

const (
	EventStateChange    EventType = "state_change"
	EventTick           EventType = "tick"
	EventCompleted      EventType = "completed"
	EventPresetsChange  EventType = "presets_change"
	EventSettingsChange EventType = "settings_change"
)

// Snapshot is a read-only view of the controller at one instant.
type Snapshot struct {
	State    timer.State
	Phase    timer.Phase
	Progress float64
	// Preset is the selected preset resolved by id, nil when none is
	// selected or the selected one was deleted.
	Preset   *model.Preset
	Settings model.Settings
}

// Event represents a controller update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
