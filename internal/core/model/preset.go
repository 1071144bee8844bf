package model

// Preset is a named, reusable countdown configuration.
type Preset struct {
	ID              string
	Name            string
	DurationSeconds int
	Emoji           string
	Color           string
	IsDefault       bool
}

// DefaultEmoji and DefaultColor prefill a blank preset draft.
const (
	DefaultEmoji = "⏰"
	DefaultColor = "bg-blue-500"
)

// DefaultPresets returns a freshly allocated copy of the factory presets.
func DefaultPresets() []Preset {
	return []Preset{
		{ID: "ramen", Name: "Ramen", DurationSeconds: 4 * 60, Emoji: "🍜", Color: "bg-orange-500", IsDefault: true},
		{ID: "pomodoro", Name: "Pomodoro", DurationSeconds: 25 * 60, Emoji: "🍅", Color: "bg-red-500", IsDefault: true},
		{ID: "exercise", Name: "Exercise", DurationSeconds: 7 * 60, Emoji: "💪", Color: "bg-green-500", IsDefault: true},
		{ID: "coffee", Name: "Coffee", DurationSeconds: 3 * 60, Emoji: "☕", Color: "bg-amber-600", IsDefault: true},
		{ID: "meditation", Name: "Meditation", DurationSeconds: 10 * 60, Emoji: "🧘", Color: "bg-purple-500", IsDefault: true},
		{ID: "rest", Name: "Rest", DurationSeconds: 15 * 60, Emoji: "😴", Color: "bg-blue-500", IsDefault: true},
	}
}

// ColorOption is a selectable preset color.
type ColorOption struct {
	Name  string
	Value string
	Hex   string
}

// ColorOptions lists the colors offered by the preset form.
var ColorOptions = []ColorOption{
	{Name: "Red", Value: "bg-red-500", Hex: "#ef4444"},
	{Name: "Orange", Value: "bg-orange-500", Hex: "#f97316"},
	{Name: "Yellow", Value: "bg-yellow-500", Hex: "#eab308"},
	{Name: "Green", Value: "bg-green-500", Hex: "#22c55e"},
	{Name: "Blue", Value: "bg-blue-500", Hex: "#3b82f6"},
	{Name: "Indigo", Value: "bg-indigo-500", Hex: "#6366f1"},
	{Name: "Purple", Value: "bg-purple-500", Hex: "#a855f7"},
	{Name: "Pink", Value: "bg-pink-500", Hex: "#ec4899"},
	{Name: "Teal", Value: "bg-teal-500", Hex: "#14b8a6"},
	{Name: "Brown", Value: "bg-amber-600", Hex: "#f59e0b"},
}

// EmojiOptions lists the emoji offered by the preset form.
var EmojiOptions = []string{
	DefaultEmoji, "🍜", "🍅", "💪", "☕", "🧘", "😴", "📚", "🎵", "🎨", "🏃",
	"🧑‍💻", "🎯", "🔥", "⚡", "🌟", "🎪", "🎮", "🎬", "📝", "🧠",
	"🍎", "🥗", "🍵", "🥤", "🍰", "🎂", "🍳", "🥘", "🌮", "🍕",
}

// ColorHex returns the display hex for a color value, red when unknown.
func ColorHex(value string) string {
	for _, option := range ColorOptions {
		if option.Value == value {
			return option.Hex
		}
	}
	return "#ef4444"
}
