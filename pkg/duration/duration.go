// Package duration parses human-readable relative time offsets such as
// "+1 day" or "2 hours 30 minutes" into millisecond counts.
package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrEmpty indicates an empty or whitespace-only input string.
var ErrEmpty = errors.New("empty duration string")

// Millisecond counts per unit.
const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
	msPerMonth  = 30 * msPerDay
	msPerYear   = 365 * msPerDay
)

// unitMillis maps a normalized unit word to its length in milliseconds.
var unitMillis = map[string]int64{
	"ms":          1,
	"msec":        1,
	"millisecond": 1,
	"s":           msPerSecond,
	"sec":         msPerSecond,
	"second":      msPerSecond,
	"m":           msPerMinute,
	"min":         msPerMinute,
	"minute":      msPerMinute,
	"h":           msPerHour,
	"hr":          msPerHour,
	"hour":        msPerHour,
	"d":           msPerDay,
	"day":         msPerDay,
	"w":           msPerWeek,
	"week":        msPerWeek,
	"mo":          msPerMonth,
	"month":       msPerMonth,
	"y":           msPerYear,
	"yr":          msPerYear,
	"year":        msPerYear,
}

// Parse converts a relative offset string to milliseconds.
//
// The grammar is a sequence of terms, each an optionally signed decimal
// count followed by a unit word ("+1 day", "2 hours 30 minutes",
// "-45 seconds", "1.5 hours"). Unit words are case-insensitive and may
// carry a plural "s". Terms accumulate, so "1 day 12 hours" is 129600000.
func Parse(s string) (int64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, ErrEmpty
	}

	var total float64
	for i := 0; i < len(fields); i += 2 {
		if i+1 >= len(fields) {
			return 0, fmt.Errorf("dangling count %q: missing unit", fields[i])
		}

		count, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid count %q: %w", fields[i], err)
		}

		millis, ok := unitMillis[normalizeUnit(fields[i+1])]
		if !ok {
			return 0, fmt.Errorf("unknown unit %q", fields[i+1])
		}

		total += count * float64(millis)
	}

	return int64(math.Round(total)), nil
}

// ParseDuration converts a relative offset string to a time.Duration.
func ParseDuration(s string) (time.Duration, error) {
	millis, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return time.Duration(millis) * time.Millisecond, nil
}

// normalizeUnit lowercases a unit word and strips a plural "s".
// "s" (second) and "ms" (millisecond) are kept as-is.
func normalizeUnit(unit string) string {
	unit = strings.ToLower(unit)
	if len(unit) > 2 && strings.HasSuffix(unit, "s") {
		unit = strings.TrimSuffix(unit, "s")
	}
	return unit
}
