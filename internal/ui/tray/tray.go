package tray

import (
	"fmt"

	"timerbox/internal/core/session"
	"timerbox/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "TimerBox"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow   func()
	OnToggle func()
	OnReset  func()
	OnStop   func()
	OnQuit   func()
}

// Manager mirrors the countdown in the system tray menu.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	stopItem   *fyne.MenuItem
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Pick a timer", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Start", func() { invoke(manager.callbacks.OnToggle) })
	manager.resetItem = fyne.NewMenuItem("Reset", func() { invoke(manager.callbacks.OnReset) })
	manager.stopItem = fyne.NewMenuItem("Stop", func() { invoke(manager.callbacks.OnStop) })

	manager.Update(session.Snapshot{Phase: timer.PhaseIdle})
	return manager
}

// Update refreshes the menu from snapshot.
func (manager *Manager) Update(snapshot session.Snapshot) {
	manager.statusItem.Label = StatusLine(snapshot)
	if snapshot.State.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	// A finished run is idle but can still be rewound or cleared.
	cleared := snapshot.State.InitialSeconds <= 0
	manager.toggleItem.Disabled = snapshot.Phase == timer.PhaseIdle
	manager.resetItem.Disabled = cleared
	manager.stopItem.Disabled = cleared
	manager.refreshMenu()
}

// StatusLine summarises snapshot for the tray status item.
func StatusLine(snapshot session.Snapshot) string {
	if snapshot.Phase == timer.PhaseIdle {
		return "Pick a timer"
	}
	label := "Custom"
	if snapshot.Preset != nil {
		label = snapshot.Preset.Emoji + " " + snapshot.Preset.Name
	}
	status := fmt.Sprintf("%s %s", label, timer.FormatClock(snapshot.State.RemainingSeconds))
	if snapshot.Phase == timer.PhaseArmed {
		status += " (paused)"
	}
	return status
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show", func() { invoke(manager.callbacks.OnShow) }),
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		manager.stopItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { invoke(manager.callbacks.OnQuit) }),
	))
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}
