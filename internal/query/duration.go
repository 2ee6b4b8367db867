package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gorewood/daydayup/internal/isoduration"
)

// span is a signed duration in milliseconds with its ISO-8601 text.
type span struct {
	ms  float64
	iso string
}

// isoDuration evaluates "P" + the upper-cased input.
func isoDuration(input string) span {
	d, ok := isoduration.Parse(ISOCandidate(input))
	if !ok {
		return span{ms: math.NaN()}
	}
	return span{ms: d.Milliseconds(), iso: d.String()}
}

// numberDuration reads the millisecond count from the second field of input.
func numberDuration(input string) span {
	fields := strings.Fields(input)
	if len(fields) < 2 {
		return span{ms: math.NaN()}
	}
	ms, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return span{ms: math.NaN()}
	}
	return span{ms: ms, iso: isoduration.Canonical(ms)}
}

// maxInstantMillis bounds instants to 100,000,000 days either side of the
// epoch.
const maxInstantMillis = 8.64e15

// durationItems lists the duration, the instants it reaches before and after
// now, and now itself.
func (b *Builder) durationItems(d span, now time.Time) ([]Item, []string) {
	cat := b.Catalog
	value := numberValue(d.ms)
	items := []Item{
		NewItem(value, fmt.Sprintf(cat.Milliseconds, FormatValue(value)), d.iso),
	}

	var warnings []string
	invalid := false
	for _, ms := range []float64{-d.ms, d.ms} {
		t, ok := shift(now, ms)
		if !ok {
			invalid = true
			items = append(items, NewItem(InvalidDate, cat.InvalidDate, ""))
			continue
		}
		items = append(items,
			NewItem(t.UnixMilli(), fmt.Sprintf(cat.Offset, cat.Since(t, now), t.Format(DetailFormat)), ""))
	}
	if invalid {
		warnings = append(warnings, fmt.Sprintf("duration %s ms has no valid date offset", FormatValue(value)))
	}

	items = append(items, instantItem(now, DetailFormat, cat.DetailNow))
	return items, warnings
}

// shift moves now by ms milliseconds. ok is false when ms is not finite or
// the result leaves the supported instant range.
func shift(now time.Time, ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, false
	}
	base := now.UnixMilli()
	if math.Abs(float64(base)+ms) > maxInstantMillis {
		return time.Time{}, false
	}

	whole := math.Trunc(ms)
	frac := time.Duration(math.Round((ms - whole) * float64(time.Millisecond)))
	subMilli := now.Sub(time.UnixMilli(base))
	return time.UnixMilli(base + int64(whole)).Add(subMilli + frac).In(now.Location()), true
}
