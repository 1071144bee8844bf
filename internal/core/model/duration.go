package model

import (
	"strconv"
	"strings"
)

// ParseField reads a numeric form field the way a lenient integer parse does:
// an optional sign and the leading digits, ignoring anything after them.
// Blank or non-numeric text reads as 0. Values are clamped just past
// MaxCustomSeconds so that summing h/m/s fields cannot overflow.
func ParseField(text string) int {
	text = strings.TrimSpace(text)
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	// Out-of-range input still yields the saturated value.
	parsed, _ := strconv.ParseInt(text[:end], 10, 64)
	switch {
	case parsed > MaxCustomSeconds:
		return MaxCustomSeconds + 1
	case parsed < -MaxCustomSeconds:
		return -(MaxCustomSeconds + 1)
	}
	return int(parsed)
}

// SplitSeconds breaks a duration in seconds into hours, minutes and seconds.
func SplitSeconds(total int) (hours, minutes, seconds int) {
	if total < 0 {
		total = 0
	}
	return total / 3600, (total % 3600) / 60, total % 60
}
