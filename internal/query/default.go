package query

import (
	"fmt"
	"time"

	"github.com/gorewood/daydayup/internal/calendar"
	"github.com/gorewood/daydayup/internal/locale"
)

// defaultItems lists calendar facts about now, in display order.
func (b *Builder) defaultItems(now time.Time) []Item {
	cat := b.Catalog
	facts := calendar.Compute(now, b.Weeks)

	leapTitle := cat.CommonYear
	if facts.LeapYear {
		leapTitle = cat.LeapYear
	}

	return []Item{
		instantItem(facts.Now, DefaultFormat, cat.Now),
		NewItem(facts.YearProgress, fmt.Sprintf(cat.YearProgress, locale.Percent(facts.YearProgress)), ""),
		NewItem(facts.DayOfWeek, fmt.Sprintf(cat.Weekday, cat.WeekdayName(facts.DayOfWeek)), ""),
		NewItem(facts.DayOfYear, fmt.Sprintf(cat.DayOfYear, cat.Count(facts.DayOfYear)), ""),
		NewItem(facts.WeekOfYear, fmt.Sprintf(cat.WeekOfYear, cat.Count(facts.WeekOfYear)), ""),
		NewItem(facts.Quarter, fmt.Sprintf(cat.Quarter, cat.Count(facts.Quarter)), ""),
		instantItem(facts.StartOfDay, DefaultFormat, cat.StartOfDay),
		instantItem(facts.EndOfYear, DefaultFormat, cat.EndOfYear),
		instantItem(facts.EndOfMonth, DefaultFormat, cat.EndOfMonth),
		NewItem(facts.LeapYear, leapTitle, ""),
	}
}
