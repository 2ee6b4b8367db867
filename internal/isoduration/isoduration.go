// Package isoduration matches and evaluates ISO-8601 duration expressions.
//
// The grammar is loose. Every component is optional, numbers may carry their
// own sign and use "," or "." as the decimal separator, and a bare "P" is the
// zero duration. Values are float64 milliseconds; a malformed component
// evaluates to NaN.
package isoduration

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sosodev/duration"
)

// Millisecond lengths of each calendar unit. A year is 365 days and a month is
// a twelfth of that.
const (
	MillisPerSecond = float64(time.Second / time.Millisecond)
	MillisPerMinute = 60 * MillisPerSecond
	MillisPerHour   = 60 * MillisPerMinute
	MillisPerDay    = 24 * MillisPerHour
	MillisPerWeek   = 7 * MillisPerDay
	MillisPerYear   = 365 * MillisPerDay
	MillisPerMonth  = MillisPerYear / 12
)

var grammar = regexp.MustCompile(`^(-|\+)?P` +
	`(?:([-+]?[0-9,.]*)Y)?` +
	`(?:([-+]?[0-9,.]*)M)?` +
	`(?:([-+]?[0-9,.]*)W)?` +
	`(?:([-+]?[0-9,.]*)D)?` +
	`(?:T(?:([-+]?[0-9,.]*)H)?(?:([-+]?[0-9,.]*)M)?(?:([-+]?[0-9,.]*)S)?)?$`)

// Duration is a parsed ISO-8601 duration.
type Duration struct {
	// Parts holds the individual components. Components that failed to parse
	// are NaN.
	Parts duration.Duration
}

// Match reports whether s is accepted by the duration grammar.
func Match(s string) bool {
	return grammar.MatchString(s)
}

// Parse evaluates s against the duration grammar. ok is false when s does not
// match at all; a match with unparseable numbers still returns ok with NaN
// components.
func Parse(s string) (Duration, bool) {
	m := grammar.FindStringSubmatch(s)
	if m == nil {
		return Duration{}, false
	}
	parts := duration.Duration{
		Negative: m[1] == "-",
		Years:    component(m[2]),
		Months:   component(m[3]),
		Weeks:    component(m[4]),
		Days:     component(m[5]),
		Hours:    component(m[6]),
		Minutes:  component(m[7]),
		Seconds:  component(m[8]),
	}
	return Duration{Parts: parts}, true
}

// component converts one captured number. Missing and empty captures are zero.
func component(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Milliseconds returns the signed length of d in milliseconds.
func (d Duration) Milliseconds() float64 {
	p := d.Parts
	ms := p.Years*MillisPerYear +
		p.Months*MillisPerMonth +
		p.Weeks*MillisPerWeek +
		p.Days*MillisPerDay +
		p.Hours*MillisPerHour +
		p.Minutes*MillisPerMinute +
		p.Seconds*MillisPerSecond
	if p.Negative {
		return -ms
	}
	return ms
}

// String returns the canonical ISO-8601 text for d, or "" when a component is
// not a number.
func (d Duration) String() string {
	if math.IsNaN(d.Milliseconds()) {
		return ""
	}
	return d.Parts.String()
}

// Canonical returns the ISO-8601 text for a millisecond count, or "" when ms
// is not finite or does not fit in a time.Duration.
func Canonical(ms float64) string {
	if !Representable(ms) {
		return ""
	}
	return duration.FromTimeDuration(ToTimeDuration(ms)).String()
}

// Representable reports whether ms is finite and fits in a time.Duration.
func Representable(ms float64) bool {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return false
	}
	limit := float64(math.MaxInt64) / float64(time.Millisecond)
	return math.Abs(ms) < limit
}

// ToTimeDuration converts ms to a time.Duration, rounding to the nearest
// nanosecond. Callers must check Representable first.
func ToTimeDuration(ms float64) time.Duration {
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}
