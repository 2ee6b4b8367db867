package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/daydayup/internal/config"
	"github.com/gorewood/daydayup/internal/locale"
	"github.com/gorewood/daydayup/internal/output"
)

// configResult is the JSON shape of the config command.
type configResult struct {
	ConfigDir  string            `json:"config_dir"`
	ConfigFile string            `json:"config_file"`
	Settings   config.Settings   `json:"settings"`
	Sources    map[string]string `json:"sources"`
	Locales    []locale.Info     `json:"locales"`
}

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show effective settings and available locales",
		Long: `Show the effective settings, where each value came from, and the
locale catalogs available.

Settings are resolved from, lowest to highest precedence:
  built-in defaults
  config.yaml in the config directory ($DAYDAYUP_CONFIG_HOME, $XDG_CONFIG_HOME/daydayup,
  %AppData%\daydayup or ~/.config/daydayup)
  $DAYDAYUP_LOCALE and $DAYDAYUP_TZ
  --locale, --tz and --iso-week

Catalogs in <config dir>/locales/<name>.yaml override or extend the
built-in en and zh catalogs.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, _ []string) error {
	printer, err := newPrinter(cmd, formatFor(cmd))
	if err != nil {
		printer.Error(err)
		return err
	}

	settings, dir, err := loadSettings(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	result := configResult{
		ConfigDir:  dir,
		ConfigFile: config.File(dir),
		Settings:   settings,
		Sources:    settings.Sources,
		Locales:    locale.List(dir),
	}
	if printer.Structured() {
		return printer.WriteJSON(result)
	}
	printConfig(printer, result)
	return nil
}

func printConfig(printer *output.Printer, result configResult) {
	printer.KeyValue("config_dir", result.ConfigDir)
	printer.KeyValue("config_file", result.ConfigFile)

	timezone := result.Settings.Timezone
	if timezone == "" {
		timezone = "Local"
	}

	printer.Header("Settings")
	printer.KeyValue("locale", withSource(result.Settings.Locale, result.Sources["locale"]))
	printer.KeyValue("timezone", withSource(timezone, result.Sources["timezone"]))
	printer.KeyValue("week_numbering",
		withSource(string(result.Settings.WeekNumbering), result.Sources["week_numbering"]))

	printer.Header("Locales")
	rows := make([][]string, 0, len(result.Locales))
	for _, info := range result.Locales {
		rows = append(rows, []string{info.Name, info.Description, info.Source})
	}
	printer.Table([]string{"NAME", "DESCRIPTION", "SOURCE"}, rows)
}

func withSource(value, source string) string {
	return fmt.Sprintf("%s (%s)", value, source)
}
