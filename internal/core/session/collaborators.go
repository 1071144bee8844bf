package session

import "time"

// Haptics fires vibration patterns. Calls are fire-and-forget.
type Haptics interface {
	Pulse(pattern []time.Duration)
}

// Alerts presents dialogs to the user.
type Alerts interface {
	Warn(title, message string)
	// Confirm calls onConfirm only if the user accepts.
	Confirm(title, message string, onConfirm func())
	// NotifyCompletion announces a finished countdown. presetName is empty for
	// custom timers; onRestart is nil when no restart should be offered.
	NotifyCompletion(presetName string, onRestart func())
}

// Ticker delivers the periodic ticks that drive the countdown.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type clockTicker struct {
	ticker *time.Ticker
}

func newClockTicker(interval time.Duration) Ticker {
	return clockTicker{ticker: time.NewTicker(interval)}
}

func (clock clockTicker) Chan() <-chan time.Time {
	return clock.ticker.C
}

func (clock clockTicker) Stop() {
	clock.ticker.Stop()
}
