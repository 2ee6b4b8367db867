package query

import (
	"fmt"
	"time"

	"github.com/gorewood/daydayup/internal/calendar"
	"github.com/gorewood/daydayup/internal/locale"
)

// Display layouts for instants.
const (
	DefaultFormat = "2006-01-02 15:04:05"
	DetailFormat  = "2006-01-02 15:04:05.000"
)

// Result is the outcome of one query.
type Result struct {
	Input string `json:"input"`
	Mode  Mode   `json:"mode"`
	Items []Item `json:"items"`
	// Warnings explain degenerate items, such as an unparseable time.
	Warnings []string `json:"warnings,omitempty"`
}

// Builder computes result items. The zero value is not usable; create one
// with NewBuilder.
type Builder struct {
	// Now supplies the reference instant. It is read once per query.
	Now      func() time.Time
	Location *time.Location
	Catalog  *locale.Catalog
	Weeks    calendar.WeekNumbering
}

// NewBuilder returns a builder reading the wall clock.
func NewBuilder(catalog *locale.Catalog, loc *time.Location, weeks calendar.WeekNumbering) *Builder {
	if loc == nil {
		loc = time.Local
	}
	return &Builder{
		Now:      time.Now,
		Location: loc,
		Catalog:  catalog,
		Weeks:    weeks,
	}
}

// Query classifies input and builds its items.
func (b *Builder) Query(input string) Result {
	mode := Classify(input)
	now := b.now()

	result := Result{Input: input, Mode: mode}
	switch mode {
	case ModeNumberDuration:
		result.Items, result.Warnings = b.durationItems(numberDuration(input), now)
	case ModeISODuration:
		result.Items, result.Warnings = b.durationItems(isoDuration(input), now)
	case ModeTime:
		result.Items, result.Warnings = b.timeItems(input, now)
	default:
		result.Items = b.defaultItems(now)
	}
	return result
}

func (b *Builder) now() time.Time {
	loc := b.Location
	if loc == nil {
		loc = time.Local
	}
	return b.Now().In(loc)
}

// instantItem renders t as epoch milliseconds, titled by format applied to t
// in layout.
func instantItem(t time.Time, layout, format string) Item {
	return NewItem(t.UnixMilli(), fmt.Sprintf(format, t.Format(layout)), "")
}
