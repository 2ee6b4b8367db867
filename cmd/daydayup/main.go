// Package main provides the entry point for the daydayup CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/daydayup/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command. Without a subcommand the arguments
// are joined into one query.
func newRootCmd() *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "daydayup [input...]",
		Short: "Answer date and duration questions",
		Long: `daydayup - Answer date and duration questions from one line of input.

Input selects the answer:
  (nothing)      facts about today: progress through the year, weekday,
                 week and quarter, ends of month and year
  1DT2H          an ISO 8601 duration without its leading P
  d 3600000      a duration in milliseconds
  anything else  a point in time: a four-digit year, epoch milliseconds,
                 a date, a timestamp, or a phrase such as "yesterday 9am"

Durations are shown with the instants that far before and after now.
Use -- before input that starts with a dash.`,
		Example: `  daydayup
  daydayup 1DT2H
  daydayup d 86400000
  daydayup --at 2024-03-01 --tz Asia/Shanghai 2 weeks ago
  daydayup --alfred "{query}"`,
		Args:          cobra.ArbitraryArgs,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, flags)
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	addSettingsFlags(cmd)
	cmd.Flags().BoolVar(&flags.alfred, "alfred", false, "Output Alfred script filter JSON")
	cmd.Flags().StringVar(&flags.at, "at", "", "Reference time to use instead of now")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "query", Title: "Query Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newClassifyCmd(), "query")
	addGroupedCommand(cmd, newServeCmd(), "agent")
	addGroupedCommand(cmd, newConfigCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
