package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ClassDateLayout is the calendar-date layout used on the wire and in
// attendance keys.
const ClassDateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseClassDate parses a calendar date in the wire format.
func ParseClassDate(value string) (time.Time, error) {
	return time.Parse(ClassDateLayout, value)
}

// FormatClassDate formats a calendar date in the wire format.
func FormatClassDate(t time.Time) string {
	return t.Format(ClassDateLayout)
}
