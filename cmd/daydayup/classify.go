package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/daydayup/internal/query"
)

// classifyResult is the JSON shape of the classify command.
type classifyResult struct {
	Input string     `json:"input"`
	Mode  query.Mode `json:"mode"`
	ISO   string     `json:"iso,omitempty"`
}

// newClassifyCmd creates the classify command.
func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [input...]",
		Short: "Show which mode an input selects",
		Long: `Show which mode an input selects without computing anything.

Modes: default, number-duration, iso-duration, time.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			result := classifyResult{Input: input, Mode: query.Classify(input)}
			if result.Mode == query.ModeISODuration {
				result.ISO = query.ISOCandidate(input)
			}

			printer, err := newPrinter(cmd, formatFor(cmd))
			if err != nil {
				printer.Error(err)
				return err
			}
			if printer.Structured() {
				return printer.WriteJSON(result)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Mode)
			return err
		},
	}
}
