package locale

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Thresholds for relative phrasing. Each magnitude applies to offsets below
// its bound; anything longer is counted in years. Bounds sit half a unit past
// the last whole count of their magnitude.
const (
	fewSecondsBelow = 44*time.Second + time.Second/2
	minuteBelow     = 89*time.Second + time.Second/2
	minutesBelow    = 44*time.Minute + time.Minute/2
	hourBelow       = 89*time.Minute + time.Minute/2
	hoursBelow      = 21*time.Hour + time.Hour/2
	dayBelow        = 35*time.Hour + time.Hour/2
	daysBelow       = 25*day + day/2
	monthBelow      = 45*day + day/2
	monthsBelow     = 10*month + month/2
	yearBelow       = 17*month + month/2

	day   = 24 * time.Hour
	month = 730 * time.Hour
	year  = 8760 * time.Hour
)

// Count renders n as an ordinal when the catalog asks for it.
func (c *Catalog) Count(n int) string {
	if c.Ordinals {
		return humanize.Ordinal(n)
	}
	return strconv.Itoa(n)
}

// WeekdayName returns the name for weekday (0 = Sunday through 6), with the
// Friday suffix appended on Fridays. Loaded catalogs always have 7 names.
func (c *Catalog) WeekdayName(weekday int) string {
	name := c.Weekdays[weekday]
	if time.Weekday(weekday) == time.Friday {
		name += c.FridaySuffix
	}
	return name
}

// Percent renders a fraction as a percentage with the shortest exact digits.
func Percent(fraction float64) string {
	return strconv.FormatFloat(fraction*100, 'f', -1, 64)
}

// Since phrases t relative to ref: offsets in the past use the Past label and
// offsets in the future use the Future label. Counts are rounded half up, and
// a count of one falls back to the singular form of the smaller magnitude.
func (c *Catalog) Since(t, ref time.Time) string {
	future := t.After(ref)
	diff := ref.Sub(t)
	if future {
		diff = t.Sub(ref)
	}

	mags := c.magnitudes()
	i := sort.Search(len(mags), func(i int) bool { return mags[i].D > diff })
	if i >= len(mags) {
		i = len(mags) - 1
	}
	mag := mags[i]

	var count time.Duration
	if diff == math.MaxInt64 {
		// Sub saturated; count from the millisecond clocks instead.
		ms := math.Abs(float64(t.UnixMilli() - ref.UnixMilli()))
		count = time.Duration(math.Round(ms / float64(mag.DivBy/time.Millisecond)))
	} else {
		count = roundDiv(diff, mag.DivBy)
	}
	if count <= 1 && i > 0 && strings.Contains(mag.Format, "%d") {
		mag.Format = mags[i-1].Format
	}

	// A single magnitude dividing by one nanosecond prints the offset as is,
	// so shifting ref by count nanoseconds prints count.
	offset := max(count, 1)
	shifted := ref.Add(-offset)
	if future {
		shifted = ref.Add(offset)
	}
	return humanize.CustomRelTime(shifted, ref, c.Past, c.Future, []humanize.RelTimeMagnitude{
		{D: math.MaxInt64, Format: mag.Format, DivBy: time.Nanosecond},
	})
}

// roundDiv returns d/unit rounded half up, truncating where rounding would
// overflow.
func roundDiv(d, unit time.Duration) time.Duration {
	if d > math.MaxInt64-unit/2 {
		return d / unit
	}
	return (d + unit/2) / unit
}

func (c *Catalog) magnitudes() []humanize.RelTimeMagnitude {
	r := c.Relative
	return []humanize.RelTimeMagnitude{
		{D: fewSecondsBelow, Format: r.Seconds, DivBy: time.Second},
		{D: minuteBelow, Format: r.Minute, DivBy: time.Minute},
		{D: minutesBelow, Format: r.Minutes, DivBy: time.Minute},
		{D: hourBelow, Format: r.Hour, DivBy: time.Hour},
		{D: hoursBelow, Format: r.Hours, DivBy: time.Hour},
		{D: dayBelow, Format: r.Day, DivBy: day},
		{D: daysBelow, Format: r.Days, DivBy: day},
		{D: monthBelow, Format: r.Month, DivBy: month},
		{D: monthsBelow, Format: r.Months, DivBy: month},
		{D: yearBelow, Format: r.Year, DivBy: year},
		{D: math.MaxInt64, Format: r.Years, DivBy: year},
	}
}
