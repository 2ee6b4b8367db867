package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/daydayup/internal/config"
	"github.com/gorewood/daydayup/internal/output"
	"github.com/gorewood/daydayup/internal/session"
)

// addSettingsFlags registers the persistent flags that override config.yaml.
func addSettingsFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("tz", "", "IANA time zone, e.g. Asia/Shanghai (default: local)")
	flags.String("locale", "", "Locale catalog, e.g. en or zh")
	flags.Bool("iso-week", false, "Number weeks by ISO 8601 instead of Sunday-start")
	flags.String("color", string(output.ColorAuto), "Color output: auto, always or never")
}

// settingsOptions reads the settings flags from the command hierarchy.
func settingsOptions(cmd *cobra.Command) session.Options {
	return session.Options{
		Locale:   flagValue(cmd, "locale"),
		Timezone: flagValue(cmd, "tz"),
		ISOWeek:  flagValue(cmd, "iso-week") == "true",
	}
}

// loadSettings resolves defaults, config.yaml, environment and flags, in
// that order of precedence. It also returns the config directory.
func loadSettings(cmd *cobra.Command) (config.Settings, string, error) {
	dir := config.Dir()
	settings, err := config.Load(dir)
	if err != nil {
		return config.Settings{}, dir, output.NewSystemErrorWithCause("loading config: "+err.Error(), err)
	}

	settings = settingsOptions(cmd).Apply(settings, config.SourceFlag)
	if err := settings.Validate(); err != nil {
		return config.Settings{}, dir, output.NewUserErrorWithCause(err.Error(), err)
	}
	return settings, dir, nil
}

// newPrinter builds a printer for format honoring --color. The returned
// printer is usable even when the flag is invalid, so the error can be shown.
func newPrinter(cmd *cobra.Command, format output.Format) (*output.Printer, error) {
	mode, err := output.ParseColorMode(flagValue(cmd, "color"))
	styled := err == nil && mode.Styled(output.IsTTY(cmd.OutOrStdout()))
	printer := output.NewPrinter(cmd.OutOrStdout(), format, styled).WithStderr(cmd.ErrOrStderr())
	return printer, err
}

// formatFor picks the output format from --json.
func formatFor(cmd *cobra.Command) output.Format {
	if isJSONMode(cmd) {
		return output.FormatJSON
	}
	return output.FormatHuman
}

// flagValue returns a flag's value from cmd or its parents, or "" when no
// such flag exists.
func flagValue(cmd *cobra.Command, name string) string {
	if flag := cmd.Flag(name); flag != nil {
		return flag.Value.String()
	}
	return ""
}
