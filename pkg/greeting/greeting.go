// Package greeting produces a time-of-day salutation for dashboard headers.
package greeting

import "time"

// ForTime returns the salutation for the given clock time. Morning runs from
// 05:00 to 11:59, afternoon from 12:00 to 16:59, evening otherwise.
func ForTime(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "Good morning"
	case h >= 12 && h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Now returns the salutation for the current local time.
func Now() string {
	return ForTime(time.Now())
}
