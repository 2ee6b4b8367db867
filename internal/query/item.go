package query

import (
	"math"
	"strconv"
)

// Placeholder values for degenerate results.
const (
	NotANumber  = "NaN"
	InvalidDate = "Invalid Date"
)

// Item is one result row. Copy and LargeType always equal the stringified
// Value.
type Item struct {
	Value     any    `json:"value"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Copy      string `json:"copy"`
	LargeType string `json:"largetype"`
}

// NewItem builds an item. An empty title falls back to the stringified value.
func NewItem(value any, title, subtitle string) Item {
	text := FormatValue(value)
	if title == "" {
		title = text
	}
	return Item{
		Value:     value,
		Title:     title,
		Subtitle:  subtitle,
		Copy:      text,
		LargeType: text,
	}
}

// Text returns the stringified value.
func (i Item) Text() string {
	return i.Copy
}

// FormatValue stringifies an item value.
func FormatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return formatFloat(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return NotANumber
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// numberValue keeps a millisecond count JSON-safe: integral values become
// int64, non-finite values become their text.
func numberValue(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatFloat(v)
	}
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return int64(v)
	}
	return v
}
