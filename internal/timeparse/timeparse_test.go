package timeparse

import (
	"errors"
	"testing"
	"time"
)

var shanghai = time.FixedZone("CST", 8*60*60)

func ref() time.Time {
	return time.Date(2024, time.March, 1, 9, 30, 0, 0, shanghai)
}

func TestParse_Layouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date only", "2024-02-14", time.Date(2024, time.February, 14, 0, 0, 0, 0, shanghai)},
		{"date time", "2024-02-14 08:15:30", time.Date(2024, time.February, 14, 8, 15, 30, 0, shanghai)},
		{"date time T", "2024-02-14T08:15:30", time.Date(2024, time.February, 14, 8, 15, 30, 0, shanghai)},
		{"date time minutes", "2024-02-14 08:15", time.Date(2024, time.February, 14, 8, 15, 0, 0, shanghai)},
		{"millis", "2024-02-14 08:15:30.250", time.Date(2024, time.February, 14, 8, 15, 30, int(250*time.Millisecond), shanghai)},
		{"slashes", "2024/02/14", time.Date(2024, time.February, 14, 0, 0, 0, 0, shanghai)},
		{"month name", "Feb 14 2024", time.Date(2024, time.February, 14, 0, 0, 0, 0, shanghai)},
		{"long month name", "February 14, 2024", time.Date(2024, time.February, 14, 0, 0, 0, 0, shanghai)},
		{"rfc3339 utc", "2024-02-14T00:00:00Z", time.Date(2024, time.February, 14, 8, 0, 0, 0, shanghai)},
		{"epoch millis", "1709251200000", time.Date(2024, time.March, 1, 8, 0, 0, 0, shanghai)},
		{"bare year", "2024", time.Date(2024, time.January, 1, 0, 0, 0, 0, shanghai)},
		{"five digits are epoch millis", "12345", time.UnixMilli(12345).In(shanghai)},
		{"surrounding spaces", "  2024-02-14  ", time.Date(2024, time.February, 14, 0, 0, 0, 0, shanghai)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, ref())
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_KeepsReferenceLocation(t *testing.T) {
	got, err := Parse("2024-02-14T00:00:00Z", ref())
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	if got.Location() != shanghai {
		t.Errorf("location = %v, want %v", got.Location(), shanghai)
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("   ", ref())
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("Parse(blank) error = %v, want ErrEmpty", err)
	}
}

func TestParse_Natural(t *testing.T) {
	got, err := Parse("yesterday", ref())
	if err != nil {
		t.Fatalf("Parse(yesterday) unexpected error: %v", err)
	}
	if got.Day() != 29 || got.Month() != time.February {
		t.Errorf("Parse(yesterday) = %v, want 2024-02-29", got)
	}
}
