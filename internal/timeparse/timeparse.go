// Package timeparse turns free-form date/time text into an instant.
//
// Parsing is best-effort and tries, in order:
//   - a bare four-digit year ("2024"), as January 1st of that year
//   - epoch milliseconds ("1709251200000")
//   - a fixed list of layouts (RFC3339, "2006-01-02 15:04:05", "2006/01/02", ...)
//   - natural language relative to a reference instant ("yesterday",
//     "3 days ago", "last friday")
package timeparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

// ErrEmpty is returned for blank input.
var ErrEmpty = errors.New("empty time value")

var (
	yearRegex  = regexp.MustCompile(`^\d{4}$`)
	epochRegex = regexp.MustCompile(`^-?\d+$`)
)

// Layouts with an explicit offset are parsed as-is; the rest are interpreted
// in the reference location.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
}

var localLayouts = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
}

// Parse interprets value relative to ref. Times without an explicit offset
// are placed in ref's location.
func Parse(value string, ref time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmpty
	}

	if yearRegex.MatchString(value) {
		return time.ParseInLocation("2006", value, ref.Location())
	}

	if epochRegex.MatchString(value) {
		ms, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid epoch milliseconds %q: %w", value, err)
		}
		return time.UnixMilli(ms).In(ref.Location()), nil
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(ref.Location()), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, ref.Location()); err == nil {
			return t, nil
		}
	}

	t, err := naturaldate.Parse(value, ref, naturaldate.WithDirection(naturaldate.Past))
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse time %q: %w", value, err)
	}
	if t.Equal(ref) && !mentionsNow(value) {
		return time.Time{}, fmt.Errorf("could not parse time %q", value)
	}
	return t, nil
}

// mentionsNow reports whether value names the reference instant itself.
// Otherwise a natural-language result equal to ref means nothing matched.
func mentionsNow(value string) bool {
	switch strings.ToLower(value) {
	case "now", "today", "right now", "just now":
		return true
	}
	return false
}
