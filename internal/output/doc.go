// Package output renders query results and errors for the daydayup CLI.
//
// Three renderings share one Printer:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), output.FormatHuman, output.IsTTY(cmd.OutOrStdout()))
//	printer.Result(result)
//
//   - FormatHuman: one line per item, title first with the copyable value
//     dimmed underneath when it differs. Colors are dropped when the writer is
//     not a terminal.
//   - FormatJSON: {"input": "...", "mode": "...", "items": [...]}
//   - FormatAlfred: an Alfred script filter document, {"items": [...]}, with
//     each item's arg, copy and large-type text set to the item value and the
//     icon hidden.
//
// # Errors
//
// Commands return *ExitError values built with NewUserError or
// NewSystemError; GetExitCode maps them to process exit codes:
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad flag values, unknown locale
//	output.ExitSystemError // 2: unreadable configuration
//
// In JSON and Alfred formats errors are written to stdout as
// {"error": "...", "code": N}; in human format they go to stderr.
package output
