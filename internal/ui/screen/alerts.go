package screen

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Alerts presents controller dialogs on a Fyne window. Every call is routed
// through fyne.Do so it may come from the tick goroutine.
type Alerts struct {
	window fyne.Window
}

// NewAlerts creates dialogs parented to window.
func NewAlerts(window fyne.Window) *Alerts {
	return &Alerts{window: window}
}

// Warn shows an informational dialog.
func (alerts *Alerts) Warn(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation("⚠️ "+title, message, alerts.window)
	})
}

// Confirm shows a cancel/confirm dialog and runs onConfirm on confirm.
func (alerts *Alerts) Confirm(title, message string, onConfirm func()) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, func(confirmed bool) {
			if confirmed && onConfirm != nil {
				onConfirm()
			}
		}, alerts.window)
	})
}

// NotifyCompletion announces the end of a countdown, offering a restart
// button when onRestart is set.
func (alerts *Alerts) NotifyCompletion(presetName string, onRestart func()) {
	title, message := completionText(presetName)
	fyne.Do(func() {
		alerts.window.RequestFocus()
		if onRestart == nil {
			dialog.ShowInformation(title, message, alerts.window)
			return
		}
		confirm := dialog.NewConfirm(title, message, func(restart bool) {
			if restart {
				onRestart()
			}
		}, alerts.window)
		confirm.SetConfirmText("Restart")
		confirm.SetDismissText("OK")
		confirm.Show()
	})
}

func completionText(presetName string) (string, string) {
	if presetName == "" {
		return "🎉 Timer complete!", "The time you set is up!"
	}
	return "🎉 Timer complete!", fmt.Sprintf("The %s timer is done!", presetName)
}
