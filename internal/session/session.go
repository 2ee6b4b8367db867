// Package session turns resolved settings into a ready query builder.
package session

import (
	"fmt"
	"time"

	"github.com/gorewood/daydayup/internal/config"
	"github.com/gorewood/daydayup/internal/locale"
	"github.com/gorewood/daydayup/internal/query"
	"github.com/gorewood/daydayup/internal/timeparse"
)

// Options are per-invocation overrides layered over config settings.
// Empty fields keep the configured value.
type Options struct {
	Locale   string
	Timezone string
	ISOWeek  bool
}

// Apply layers opts over settings, recording source as the origin of every
// value it changes.
func (opts Options) Apply(settings config.Settings, source string) config.Settings {
	sources := make(map[string]string, len(settings.Sources))
	for k, v := range settings.Sources {
		sources[k] = v
	}
	settings.Sources = sources

	if opts.Locale != "" {
		settings.Set("locale", opts.Locale, source)
	}
	if opts.Timezone != "" {
		settings.Set("timezone", opts.Timezone, source)
	}
	if opts.ISOWeek {
		settings.Set("week_numbering", "iso", source)
	}
	return settings
}

// NewBuilder creates a builder for settings. dir is the configuration
// directory searched for user locale catalogs; at, when non-empty, pins the
// builder's clock.
func NewBuilder(settings config.Settings, dir, at string) (*query.Builder, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	loc, err := settings.Location()
	if err != nil {
		return nil, err
	}
	catalog, err := locale.Load(settings.Locale, dir)
	if err != nil {
		return nil, fmt.Errorf("loading locale: %w", err)
	}

	builder := query.NewBuilder(catalog, loc, settings.WeekNumbering)
	if at != "" {
		ref, err := timeparse.Parse(at, time.Now().In(loc))
		if err != nil {
			return nil, fmt.Errorf("invalid reference time: %w", err)
		}
		builder.Now = func() time.Time { return ref }
	}
	return builder, nil
}
