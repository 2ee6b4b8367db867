// Package calendar derives calendar facts from a reference instant.
//
// All boundaries are computed in the location of the reference instant.
// End-of-period values are the last millisecond of the period.
package calendar

import "time"

// WeekNumbering selects how week-of-year is counted.
type WeekNumbering string

// Week numbering schemes.
const (
	// WeekSunday counts weeks starting on Sunday, with week 1 being the week
	// that contains January 1st.
	WeekSunday WeekNumbering = "sunday"
	// WeekISO uses ISO-8601 weeks (Monday start, week 1 contains a Thursday).
	WeekISO WeekNumbering = "iso"
)

// Facts is the set of calendar values derived from one instant.
type Facts struct {
	Now          time.Time
	StartOfDay   time.Time
	StartOfYear  time.Time
	EndOfYear    time.Time
	EndOfMonth   time.Time
	DayOfWeek    int // 0 = Sunday
	WeekOfYear   int
	DayOfYear    int
	Quarter      int
	LeapYear     bool
	YearProgress float64
}

// Compute derives Facts for now.
func Compute(now time.Time, numbering WeekNumbering) Facts {
	return Facts{
		Now:          now,
		StartOfDay:   StartOfDay(now),
		StartOfYear:  StartOfYear(now),
		EndOfYear:    EndOfYear(now),
		EndOfMonth:   EndOfMonth(now),
		DayOfWeek:    int(now.Weekday()),
		WeekOfYear:   WeekOfYear(now, numbering),
		DayOfYear:    now.YearDay(),
		Quarter:      Quarter(now),
		LeapYear:     IsLeapYear(now.Year()),
		YearProgress: YearProgress(now),
	}
}

// StartOfDay returns midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfYear returns midnight on January 1st of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last millisecond of t's year.
func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location()).Add(-time.Millisecond)
}

// EndOfMonth returns the last millisecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location()).Add(-time.Millisecond)
}

// Quarter returns the quarter of the year, 1 through 4.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// YearProgress returns the elapsed fraction of t's year. It is 0 at the start
// of the year and reaches 1 only at the final millisecond.
func YearProgress(t time.Time) float64 {
	start := StartOfYear(t).UnixMilli()
	end := EndOfYear(t).UnixMilli()
	return float64(t.UnixMilli()-start) / float64(end-start)
}

// WeekOfYear returns the 1-based week number of t.
func WeekOfYear(t time.Time, numbering WeekNumbering) int {
	if numbering == WeekISO {
		_, week := t.ISOWeek()
		return week
	}
	return sundayWeek(t)
}

// sundayWeek counts Sunday-start weeks. The last days of December belong to
// week 1 when their week already contains the next January 1st.
func sundayWeek(t time.Time) int {
	weekday := int(t.Weekday())
	if t.Month() == time.December && 31-t.Day() < 6-weekday {
		return 1
	}
	jan1 := int(StartOfYear(t).Weekday())
	return (t.YearDay()-1+jan1)/7 + 1
}
