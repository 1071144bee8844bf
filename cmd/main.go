package main

import (
	"log"
	"time"

	"timerbox/internal/core/presets"
	"timerbox/internal/core/session"
	"timerbox/internal/platform"
	"timerbox/internal/storage"
	"timerbox/internal/ui/screen"
	"timerbox/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "TimerBox"

func main() {
	lock, err := platform.LockInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
	}

	fyneApp := app.NewWithID("com.timerbox.app")
	fyneApp.SetIcon(theme.HistoryIcon())
	mainWindow := fyneApp.NewWindow(appName)

	controller := session.New(
		presets.New(),
		settings,
		platform.NewHaptics(),
		screen.NewAlerts(mainWindow),
		session.Config{TickInterval: time.Second},
	)
	defer controller.Close()

	view := screen.New(mainWindow, controller)
	view.Listen(controller.Subscribe(16))
	mainWindow.SetMaster()

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow: view.Show,
			OnToggle: func() {
				_ = controller.ToggleRunPause()
			},
			OnReset: controller.Reset,
			OnStop:  controller.Stop,
			OnQuit: func() {
				controller.Close()
				fyneApp.Quit()
			},
		})
		trayManager.Update(controller.Snapshot())

		trayEvents := controller.Subscribe(16)
		go func() {
			for event := range trayEvents {
				snapshot := event.Snapshot
				fyne.Do(func() {
					trayManager.Update(snapshot)
				})
			}
		}()
	}

	view.Show()
	fyneApp.Run()
}
