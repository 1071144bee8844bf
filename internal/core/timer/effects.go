package timer

import "time"

// EffectType defines the kind of side effect a transition requests.
type EffectType string

const (
	EffectPulse     EffectType = "pulse"
	EffectWarn      EffectType = "warn"
	EffectCompleted EffectType = "completed"
)

// Effect is a side-effect request produced by a transition. The caller
// decides how, and whether, to carry it out.
type Effect struct {
	Type     EffectType
	Pattern  []time.Duration
	Title    string
	Message  string
	PresetID string
}

// Haptic patterns used by the transitions.
var (
	PatternSelect   = []time.Duration{50 * time.Millisecond}
	PatternToggle   = []time.Duration{30 * time.Millisecond}
	PatternReset    = []time.Duration{30 * time.Millisecond, 30 * time.Millisecond}
	PatternStop     = []time.Duration{30 * time.Millisecond, 30 * time.Millisecond, 30 * time.Millisecond}
	PatternAddTime  = []time.Duration{20 * time.Millisecond}
	PatternComplete = []time.Duration{
		200 * time.Millisecond, 100 * time.Millisecond,
		200 * time.Millisecond, 100 * time.Millisecond,
		200 * time.Millisecond,
	}
)

func pulse(pattern []time.Duration) Effect {
	return Effect{Type: EffectPulse, Pattern: pattern}
}

func warn(title, message string) Effect {
	return Effect{Type: EffectWarn, Title: title, Message: message}
}
