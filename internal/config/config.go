package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // zone database for hosts without one

	"gopkg.in/yaml.v3"

	"github.com/gorewood/daydayup/internal/calendar"
)

// Environment variables that override config.yaml.
const (
	EnvLocale   = "DAYDAYUP_LOCALE"
	EnvTimezone = "DAYDAYUP_TZ"
)

// Setting sources, reported by the config command.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Settings is the effective configuration for a query.
type Settings struct {
	Locale        string                 `json:"locale"         yaml:"locale"`
	Timezone      string                 `json:"timezone"       yaml:"timezone"`
	WeekNumbering calendar.WeekNumbering `json:"week_numbering" yaml:"week_numbering"`

	// Sources records where each value came from, keyed by yaml name.
	Sources map[string]string `json:"-" yaml:"-"`
}

// Defaults returns settings for the host's local zone and the built-in
// English catalog.
func Defaults() Settings {
	return Settings{
		Locale:        "en",
		Timezone:      "",
		WeekNumbering: calendar.WeekSunday,
		Sources: map[string]string{
			"locale":         SourceDefault,
			"timezone":       SourceDefault,
			"week_numbering": SourceDefault,
		},
	}
}

// Load reads config.yaml from dir over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(dir string) (Settings, error) {
	settings := Defaults()

	if path := File(dir); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := settings.merge(data); err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Settings{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvLocale); v != "" {
		settings.Set("locale", v, SourceEnv)
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		settings.Set("timezone", v, SourceEnv)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// merge overlays the keys present in a YAML document.
func (s *Settings) merge(data []byte) error {
	var file struct {
		Locale        *string `yaml:"locale"`
		Timezone      *string `yaml:"timezone"`
		WeekNumbering *string `yaml:"week_numbering"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	if file.Locale != nil {
		s.Set("locale", *file.Locale, SourceFile)
	}
	if file.Timezone != nil {
		s.Set("timezone", *file.Timezone, SourceFile)
	}
	if file.WeekNumbering != nil {
		s.Set("week_numbering", *file.WeekNumbering, SourceFile)
	}
	return nil
}

// Set assigns a setting by its yaml name and records the source. Unknown keys
// are ignored.
func (s *Settings) Set(key, value, source string) {
	switch key {
	case "locale":
		s.Locale = value
	case "timezone":
		s.Timezone = value
	case "week_numbering":
		s.WeekNumbering = calendar.WeekNumbering(value)
	default:
		return
	}
	if s.Sources == nil {
		s.Sources = make(map[string]string)
	}
	s.Sources[key] = source
}

// Validate checks values that cannot be caught by YAML decoding.
func (s Settings) Validate() error {
	switch s.WeekNumbering {
	case calendar.WeekSunday, calendar.WeekISO:
	default:
		return fmt.Errorf("invalid week_numbering %q (use %q or %q)",
			s.WeekNumbering, calendar.WeekSunday, calendar.WeekISO)
	}
	if _, err := s.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured timezone. An empty timezone is the host's
// local zone.
func (s Settings) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}
