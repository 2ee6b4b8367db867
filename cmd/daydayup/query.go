package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/daydayup/internal/output"
	"github.com/gorewood/daydayup/internal/session"
)

// queryFlags holds the root command's local flags.
type queryFlags struct {
	alfred bool
	at     string
}

func runQuery(cmd *cobra.Command, args []string, flags *queryFlags) error {
	format := formatFor(cmd)
	if flags.alfred {
		if format == output.FormatJSON {
			err := output.NewUserError("--json and --alfred cannot be combined")
			output.NewPrinter(cmd.OutOrStdout(), output.FormatJSON, false).Error(err)
			return err
		}
		format = output.FormatAlfred
	}

	printer, err := newPrinter(cmd, format)
	if err != nil {
		printer.Error(err)
		return err
	}

	settings, dir, err := loadSettings(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	builder, err := session.NewBuilder(settings, dir, flags.at)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}

	result := builder.Query(strings.Join(args, " "))
	if err := printer.Result(result); err != nil {
		return output.NewSystemErrorWithCause("writing result: "+err.Error(), err)
	}
	for _, warning := range result.Warnings {
		printer.Warn("%s", warning)
	}
	return nil
}
