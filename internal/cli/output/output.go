package output

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var Out io.Writer = os.Stdout

// Info prints an informational message to the user.
func Info(format string, a ...interface{}) {
	fmt.Fprintf(Out, format, a...)
}

// Success prints a success message (keeps formatting consistent).
func Success(format string, a ...interface{}) {
	fmt.Fprintf(Out, format, a...)
}

// Error prints an error message to stderr.
func Error(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
}

// List prints a list of lines with a prefix.
func List(prefix string, items []string) {
	for _, it := range items {
		fmt.Fprintf(Out, "%s %s\n", prefix, it)
	}
}

// Align is the alignment of a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Table prints rows under headers as a rounded table. Short rows are padded
// with empty cells; aligns may be shorter than headers.
func Table(headers []string, rows [][]string, aligns []Align) {
	if s := RenderTable(headers, rows, aligns); s != "" {
		fmt.Fprintln(Out, s)
	}
}

// RenderTable returns the table Table would print.
func RenderTable(headers []string, rows [][]string, aligns []Align) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
