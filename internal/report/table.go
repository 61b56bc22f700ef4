// internal/report/table.go
// Package report renders benchmark summaries as plain-text tables. The
// output format is a compatibility contract: scripts downstream consume
// the pipe-delimited layout, so nothing here may emit ANSI sequences or
// reflow columns.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderTable writes a right-aligned table: a header line, a dashed
// separator, then one line per row. Columns are sized to the widest cell
// by terminal display width, so CJK and fullwidth content (two cells per
// glyph) still lines up. Rows shorter than the header render empty
// trailing cells.
func RenderTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
		for _, row := range rows {
			if i >= len(row) {
				continue
			}
			if cellWidth := runewidth.StringWidth(row[i]); cellWidth > widths[i] {
				widths[i] = cellWidth
			}
		}
	}

	cells := make([]string, len(headers))
	for i, header := range headers {
		cells[i] = padCell(header, widths[i])
	}
	fmt.Fprintln(w, strings.Join(cells, " | "))

	for i := range headers {
		cells[i] = strings.Repeat("-", widths[i])
	}
	fmt.Fprintln(w, strings.Join(cells, "-+-"))

	for _, row := range rows {
		for i := range headers {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			cells[i] = padCell(value, widths[i])
		}
		fmt.Fprintln(w, strings.Join(cells, " | "))
	}
}

// padCell left-pads with spaces until the cell's display width matches
// the column width. Padding counts display cells, not runes.
func padCell(value string, width int) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	return strings.Repeat(" ", padding) + value
}
