package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gorewood/daydayup/internal/query"
)

// Format selects how results are written.
type Format string

// Output formats.
const (
	FormatHuman  Format = "human"
	FormatJSON   Format = "json"
	FormatAlfred Format = "alfred"
)

// Printer writes results, warnings and errors in one Format.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	format Format
	styled bool
	styles *Styles
}

// Styles holds lipgloss styles for human output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Title   lipgloss.Style
	Value   lipgloss.Style
	Index   lipgloss.Style
	Key     lipgloss.Style
	Header  lipgloss.Style
}

// NewPrinter creates a Printer. When styled is false every style is plain.
func NewPrinter(writer io.Writer, format Format, styled bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Title:   lipgloss.NewStyle().Bold(true),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // Gray
		Index:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
	if !styled {
		plain := lipgloss.NewStyle()
		styles = &Styles{
			Error:   plain,
			Warning: plain,
			Title:   plain,
			Value:   plain,
			Index:   plain,
			Key:     plain,
			Header:  plain,
		}
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		format: format,
		styled: styled,
		styles: styles,
	}
}

// WithStderr sets the writer for human-format errors and warnings.
// Structured formats keep writing everything to the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// Format returns the printer's output format.
func (p *Printer) Format() Format {
	return p.format
}

// Structured reports whether the printer emits machine-readable documents.
func (p *Printer) Structured() bool {
	return p.format == FormatJSON || p.format == FormatAlfred
}

// Result writes a query result in the printer's format.
func (p *Printer) Result(result query.Result) error {
	switch p.format {
	case FormatJSON:
		return p.WriteJSON(result)
	case FormatAlfred:
		return p.writeAlfred(result.Items)
	default:
		p.Items(result.Items)
		return nil
	}
}

// Items renders items as a numbered list. The value line is omitted when it
// repeats the title.
func (p *Printer) Items(items []query.Item) {
	width := len(fmt.Sprint(len(items)))
	for i, item := range items {
		index := p.styles.Index.Render(fmt.Sprintf("%*d.", width, i+1))
		mustWrite(fmt.Fprintf(p.w, "%s %s\n", index, p.styles.Title.Render(item.Title)))

		indent := strings.Repeat(" ", width+2)
		if item.Text() != item.Title {
			mustWrite(fmt.Fprintf(p.w, "%s%s\n", indent, p.styles.Value.Render(item.Text())))
		}
		if item.Subtitle != "" {
			mustWrite(fmt.Fprintf(p.w, "%s%s\n", indent, p.styles.Value.Render(item.Subtitle)))
		}
	}
}

// Error writes an error. Structured formats get {"error": "...", "code": N}
// on the main writer; human format gets a styled line on the error writer.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.Structured() {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn writes a warning to the error writer in human format. Structured
// formats carry warnings inside their documents, so this is a no-op there.
func (p *Printer) Warn(format string, args ...any) {
	if p.Structured() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// KeyValue writes "key: value" with the key styled.
func (p *Printer) KeyValue(key, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}

// Header writes a section heading preceded by a blank line.
func (p *Printer) Header(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Header.Render(title)))
}

// Table writes rows in space-padded columns with a styled header row.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	p.tableRow(headers, widths, p.styles.Title)
	for _, row := range rows {
		p.tableRow(row, widths, lipgloss.NewStyle())
	}
}

func (p *Printer) tableRow(cells []string, widths []int, style lipgloss.Style) {
	var b strings.Builder
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			b.WriteString("  ")
		}
		if i == len(cells)-1 {
			b.WriteString(style.Render(cell))
			continue
		}
		b.WriteString(style.Render(cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))))
	}
	mustWrite(fmt.Fprintln(p.w, b.String()))
}

// WriteJSON encodes data as indented JSON.
func (p *Printer) WriteJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns {"error": message, "code": code}.
func ErrorJSON(message string, code int) []byte {
	result, _ := json.Marshal(map[string]any{
		"error": message,
		"code":  code,
	})
	return result
}

// mustWrite panics if a write fails. Writes go to stdout, stderr or buffers,
// where failure means the process cannot report anything anyway.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
