package model

import "errors"

var (
	// ErrInvalidDuration indicates a requested duration of zero seconds or less.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrDurationTooLong indicates a custom duration above MaxCustomSeconds.
	ErrDurationTooLong = errors.New("duration too long")
	// ErrNoDurationSet indicates start/pause with nothing armed.
	ErrNoDurationSet = errors.New("no duration set")
	// ErrEmptyName indicates a preset saved with a blank name.
	ErrEmptyName = errors.New("empty preset name")
)

// MaxCustomSeconds caps durations entered through the custom timer form.
const MaxCustomSeconds = 24 * 60 * 60
