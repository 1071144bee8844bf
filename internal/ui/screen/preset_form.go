package screen

import (
	"timerbox/internal/core/model"
	"timerbox/internal/core/presets"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// presetForm edits a draft. It stays open until the draft saves.
type presetForm struct {
	name    *widget.Entry
	emoji   *widget.Select
	color   *widget.Select
	hours   *widget.Entry
	minutes *widget.Entry
	seconds *widget.Entry
}

func newPresetForm(draft presets.Draft) *presetForm {
	form := &presetForm{
		name:    widget.NewEntry(),
		emoji:   widget.NewSelect(emojiChoices(draft.Emoji), nil),
		color:   widget.NewSelect(colorNames(), nil),
		hours:   widget.NewEntry(),
		minutes: widget.NewEntry(),
		seconds: widget.NewEntry(),
	}
	form.name.SetPlaceHolder("Preset name")
	form.hours.SetPlaceHolder("h")
	form.minutes.SetPlaceHolder("m")
	form.seconds.SetPlaceHolder("s")

	form.name.SetText(draft.Name)
	form.emoji.SetSelected(draft.Emoji)
	form.color.SetSelected(colorName(draft.Color))
	form.hours.SetText(draft.Hours)
	form.minutes.SetText(draft.Minutes)
	form.seconds.SetText(draft.Seconds)
	return form
}

func (form *presetForm) draft() presets.Draft {
	return presets.Draft{
		Name:    form.name.Text,
		Emoji:   form.emoji.Selected,
		Color:   colorValue(form.color.Selected),
		Hours:   form.hours.Text,
		Minutes: form.minutes.Text,
		Seconds: form.seconds.Text,
	}
}

func (form *presetForm) content() fyne.CanvasObject {
	return widget.NewForm(
		widget.NewFormItem("Name", form.name),
		widget.NewFormItem("Emoji", form.emoji),
		widget.NewFormItem("Color", form.color),
		widget.NewFormItem("Time", container.NewGridWithColumns(3, form.hours, form.minutes, form.seconds)),
	)
}

func (screen *Window) openPresetForm(existing *model.Preset) {
	title := "New preset"
	editingID := ""
	if existing != nil {
		title = "Edit preset"
		editingID = existing.ID
	}

	form := newPresetForm(presets.OpenDraft(existing))

	var popup *dialog.CustomDialog
	save := widget.NewButton("Save", func() {
		if _, err := screen.controls.SavePreset(form.draft(), editingID); err != nil {
			return
		}
		popup.Hide()
	})
	save.Importance = widget.HighImportance
	cancel := widget.NewButton("Cancel", func() {
		popup.Hide()
	})

	body := container.NewBorder(nil, container.NewHBox(layout.NewSpacer(), cancel, save), nil, nil, form.content())
	popup = dialog.NewCustomWithoutButtons(title, body, screen.window)
	popup.Resize(fyne.NewSize(360, 320))
	popup.Show()
}

// emojiChoices keeps an emoji the preset already uses selectable even when
// it is not one of the offered options.
func emojiChoices(current string) []string {
	choices := append([]string(nil), model.EmojiOptions...)
	if current == "" {
		return choices
	}
	for _, option := range choices {
		if option == current {
			return choices
		}
	}
	return append([]string{current}, choices...)
}

func colorNames() []string {
	names := make([]string, 0, len(model.ColorOptions))
	for _, option := range model.ColorOptions {
		names = append(names, option.Name)
	}
	return names
}

func colorName(value string) string {
	for _, option := range model.ColorOptions {
		if option.Value == value {
			return option.Name
		}
	}
	return ""
}

func colorValue(name string) string {
	for _, option := range model.ColorOptions {
		if option.Name == name {
			return option.Value
		}
	}
	return model.DefaultColor
}
