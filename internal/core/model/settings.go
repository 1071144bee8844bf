package model

// SoundType selects the completion sound. It is display-only.
type SoundType string

const (
	SoundDefault SoundType = "default"
	SoundBell    SoundType = "bell"
	SoundChime   SoundType = "chime"
	SoundSilent  SoundType = "silent"
)

// SoundTypes lists the selectable sound types in display order.
var SoundTypes = []SoundType{SoundDefault, SoundBell, SoundChime, SoundSilent}

// Settings holds the user-editable behaviour flags.
type Settings struct {
	VibrationEnabled bool
	SoundType        SoundType
	AutoStartEnabled bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		VibrationEnabled: true,
		SoundType:        SoundDefault,
		AutoStartEnabled: false,
	}
}

// ValidSoundType reports whether value names a known sound type.
func ValidSoundType(value SoundType) bool {
	for _, known := range SoundTypes {
		if known == value {
			return true
		}
	}
	return false
}
