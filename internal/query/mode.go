// Package query classifies an input string and builds the result items for it.
//
// A query is one of four modes:
//
//	""            default          calendar facts about now
//	"d 3600000"   number-duration  offsets of a raw millisecond count
//	"1DT2H"       iso-duration     offsets of "P" + the upper-cased input
//	"2024-03-01"  time             facts about a parsed date/time
//
// Building never fails: malformed input yields items whose values are "NaN"
// or "Invalid Date".
package query

import (
	"strings"

	"github.com/gorewood/daydayup/internal/isoduration"
)

// Mode is the interpretation chosen for an input.
type Mode string

// Query modes.
const (
	ModeDefault        Mode = "default"
	ModeTime           Mode = "time"
	ModeISODuration    Mode = "iso-duration"
	ModeNumberDuration Mode = "number-duration"
)

// NumberMarker prefixes a raw millisecond duration, as in "d 3600000".
const NumberMarker = "d"

// Classify picks the mode for input. The first matching rule wins: empty
// input, the number marker prefix, the ISO duration grammar, then time.
func Classify(input string) Mode {
	switch {
	case input == "":
		return ModeDefault
	case strings.HasPrefix(input, NumberMarker):
		return ModeNumberDuration
	case isoduration.Match(ISOCandidate(input)):
		return ModeISODuration
	default:
		return ModeTime
	}
}

// ISOCandidate is the text tested against the duration grammar.
func ISOCandidate(input string) string {
	return "P" + strings.ToUpper(input)
}

// Modes lists every mode in classification order.
func Modes() []Mode {
	return []Mode{ModeDefault, ModeNumberDuration, ModeISODuration, ModeTime}
}
