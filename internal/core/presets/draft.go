package presets

import (
	"strconv"

	"timerbox/internal/core/model"
)

// Draft is the unvalidated form data used while creating or editing a preset.
type Draft struct {
	Name    string
	Emoji   string
	Color   string
	Hours   string
	Minutes string
	Seconds string
}

// OpenDraft prepares a draft for editing existing, or a blank one when nil.
func OpenDraft(existing *model.Preset) Draft {
	if existing == nil {
		return Draft{
			Emoji: model.DefaultEmoji,
			Color: model.DefaultColor,
		}
	}

	hours, minutes, seconds := model.SplitSeconds(existing.DurationSeconds)
	return Draft{
		Name:    existing.Name,
		Emoji:   existing.Emoji,
		Color:   existing.Color,
		Hours:   strconv.Itoa(hours),
		Minutes: strconv.Itoa(minutes),
		Seconds: strconv.Itoa(seconds),
	}
}

// TotalSeconds sums the draft's duration fields.
func (draft Draft) TotalSeconds() int {
	return model.ParseField(draft.Hours)*3600 +
		model.ParseField(draft.Minutes)*60 +
		model.ParseField(draft.Seconds)
}
