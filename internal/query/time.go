package query

import (
	"fmt"
	"time"

	"github.com/gorewood/daydayup/internal/calendar"
	"github.com/gorewood/daydayup/internal/timeparse"
)

// timeItems lists the parsed instant, its formatted form and the start of its
// day.
func (b *Builder) timeItems(input string, now time.Time) ([]Item, []string) {
	cat := b.Catalog
	t, err := timeparse.Parse(input, now)
	if err != nil {
		return []Item{
			NewItem(NotANumber, "", ""),
			NewItem(InvalidDate, cat.InvalidDate, ""),
			NewItem(InvalidDate, fmt.Sprintf(cat.ParsedStartOfDay, cat.InvalidDate), ""),
		}, []string{err.Error()}
	}

	return []Item{
		NewItem(t.UnixMilli(), "", ""),
		NewItem(t.Format(DefaultFormat), "", ""),
		instantItem(calendar.StartOfDay(t), DefaultFormat, cat.ParsedStartOfDay),
	}, nil
}
