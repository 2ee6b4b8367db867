// Package locale provides the display catalogs used to title result items.
//
// Catalogs are YAML documents. Resolution order for a name is:
//  1. <config dir>/locales/<name>.yaml, layered over the built-in catalog of
//     the same name (or "en" when there is none)
//  2. the built-in catalog
//
// A user file only needs the keys it wants to change.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default is the catalog used when no locale is configured.
const Default = "en"

//go:embed catalogs/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned when no catalog exists for a name.
var ErrNotFound = errors.New("locale not found")

// Catalog holds the format strings for one display language.
type Catalog struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	Weekdays     []string `yaml:"weekdays"`
	FridaySuffix string   `yaml:"friday_suffix"`
	// Ordinals renders counts as English ordinals ("61st") instead of plain
	// numbers.
	Ordinals bool `yaml:"ordinals"`

	Now          string `yaml:"now"`
	YearProgress string `yaml:"year_progress"`
	Weekday      string `yaml:"weekday"`
	DayOfYear    string `yaml:"day_of_year"`
	WeekOfYear   string `yaml:"week_of_year"`
	Quarter      string `yaml:"quarter"`
	StartOfDay   string `yaml:"start_of_day"`
	EndOfYear    string `yaml:"end_of_year"`
	EndOfMonth   string `yaml:"end_of_month"`
	LeapYear     string `yaml:"leap_year"`
	CommonYear   string `yaml:"common_year"`

	Milliseconds     string `yaml:"milliseconds"`
	Offset           string `yaml:"offset"`
	DetailNow        string `yaml:"detail_now"`
	ParsedStartOfDay string `yaml:"parsed_start_of_day"`
	InvalidDate      string `yaml:"invalid_date"`

	Past     string   `yaml:"past"`
	Future   string   `yaml:"future"`
	Relative Relative `yaml:"relative"`

	// Source is where the catalog was loaded from: "built-in" or a file path.
	Source string `yaml:"-"`
}

// Relative holds one format per relative-time magnitude. Each format takes
// the direction label through %s; the plural forms also take a count via %d.
type Relative struct {
	Seconds string `yaml:"seconds"`
	Minute  string `yaml:"minute"`
	Minutes string `yaml:"minutes"`
	Hour    string `yaml:"hour"`
	Hours   string `yaml:"hours"`
	Day     string `yaml:"day"`
	Days    string `yaml:"days"`
	Month   string `yaml:"month"`
	Months  string `yaml:"months"`
	Year    string `yaml:"year"`
	Years   string `yaml:"years"`
}

// Info describes an available catalog.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
}

// Load resolves the catalog called name. dir is the configuration directory
// and may be empty to use built-ins only.
func Load(name, dir string) (*Catalog, error) {
	if name == "" {
		name = Default
	}

	base, err := loadBuiltin(name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	path := userPath(dir, name)
	data, readErr := readOptional(path)
	if readErr != nil {
		return nil, readErr
	}
	if data == nil {
		if base == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return base, nil
	}

	if base == nil {
		if base, err = loadBuiltin(Default); err != nil {
			return nil, err
		}
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parsing locale %s: %w", path, err)
	}
	if base.Name == "" || base.Name == Default {
		base.Name = name
	}
	base.Source = path
	if err := base.validate(); err != nil {
		return nil, fmt.Errorf("locale %s: %w", path, err)
	}
	return base, nil
}

// List returns the user catalogs in dir followed by built-ins that they do
// not shadow, sorted by name within each group.
func List(dir string) []Info {
	seen := make(map[string]bool)
	var infos []Info

	if localesDir := userDir(dir); localesDir != "" {
		entries, err := os.ReadDir(localesDir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
					continue
				}
				name := strings.TrimSuffix(entry.Name(), ".yaml")
				cat, err := Load(name, dir)
				if err != nil {
					continue
				}
				seen[name] = true
				infos = append(infos, Info{Name: name, Description: cat.Description, Source: cat.Source})
			}
		}
	}

	var builtins []Info
	entries, _ := builtinFS.ReadDir("catalogs")
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		if seen[name] {
			continue
		}
		cat, err := loadBuiltin(name)
		if err != nil {
			continue
		}
		builtins = append(builtins, Info{Name: name, Description: cat.Description, Source: cat.Source})
	}
	sort.Slice(builtins, func(i, j int) bool { return builtins[i].Name < builtins[j].Name })

	return append(infos, builtins...)
}

func loadBuiltin(name string) (*Catalog, error) {
	data, err := builtinFS.ReadFile("catalogs/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing built-in locale %s: %w", name, err)
	}
	cat.Source = "built-in"
	return &cat, nil
}

func userDir(dir string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "locales")
}

func userPath(dir, name string) string {
	localesDir := userDir(dir)
	if localesDir == "" {
		return ""
	}
	return filepath.Join(localesDir, name+".yaml")
}

// readOptional returns nil data when path is empty or missing.
func readOptional(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading locale %s: %w", path, err)
	}
	return data, nil
}

func (c *Catalog) validate() error {
	if len(c.Weekdays) != 7 {
		return fmt.Errorf("weekdays must list 7 names, got %d", len(c.Weekdays))
	}
	return nil
}
