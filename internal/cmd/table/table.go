// Package table provides aligned table rendering for CLI output.
package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nordicdata/econsync/pkg/differ"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignLeft aligns content to the left.
	AlignLeft Align = iota
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: defaults to left
}

// Render writes the table with columns sized to the longest value per
// column and a rule under the header.
func Render(w io.Writer, data Data) {
	widths := columnWidths(data)

	renderRow(w, data.Headers, widths, data.ColumnAlignment)

	total := 2 * (len(widths) - 1) // separators
	for _, width := range widths {
		total += width
	}
	fmt.Fprintf(w, "  %s\n", strings.Repeat("─", total))

	for _, row := range data.Rows {
		renderRow(w, row, widths, data.ColumnAlignment)
	}
}

// renderRow writes one padded row with a two-space left margin.
func renderRow(w io.Writer, cells []string, widths []int, alignment []Align) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if i < len(alignment) && alignment[i] == AlignRight {
			parts[i] = fmt.Sprintf("%*s", widths[i], cell)
		} else {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
	}
	fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(parts, "  "), " "))
}

// columnWidths sizes each column to its longest value, header included.
func columnWidths(data Data) []int {
	widths := make([]int, len(data.Headers))
	for i, h := range data.Headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range data.Rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}
	return widths
}

// ChangesToData converts a change list to table format.
func ChangesToData(changes []differ.Change) Data {
	rows := make([][]string, 0, len(changes))
	for _, ch := range changes {
		rows = append(rows, []string{
			ch.Country,
			ch.Field,
			FormatValue(ch.Old),
			"→",
			FormatValue(ch.New),
			strconv.Itoa(ch.Year),
		})
	}

	return Data{
		Headers:         []string{"Country", "Field", "Old", "", "New", "Year"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft, AlignRight, AlignLeft},
	}
}

// FormatValue renders a dataset value for display. Absent values show
// as "-".
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = FormatValue(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
