package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one column of a Table. Width 0 sizes the column to its
// widest cell; a positive Width is a hard limit and longer cells are cut.
// Style colours a cell after padding and defaults to Val.
type Column struct {
	Title string
	Width int
	Style func(string) string
}

// Row is one line of cells, in column order.
type Row []string

// Table is a plain-text grid with a styled header and divider.
type Table struct {
	Columns []Column
	Rows    []Row
}

var styleHeader = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

// NewTable creates a table with the given columns and no rows.
func NewTable(cols ...Column) *Table {
	return &Table{Columns: cols}
}

// AddRow appends a row. Missing trailing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, Row(cells))
}

// Widths returns the rendered width of every column.
func (t *Table) Widths() []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		widths[i] = lipgloss.Width(col.Title)
		for _, row := range t.Rows {
			if i < len(row) {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}
	return widths
}

// Render returns the table as text, one line per row plus header and
// divider. Widths are measured on the raw cells, so styling never shifts
// the alignment.
func (t *Table) Render() string {
	widths := t.Widths()
	line := func(cells []string, style func(i int) func(string) string) string {
		parts := make([]string, len(t.Columns))
		for i := range t.Columns {
			var s string
			if i < len(cells) {
				s = cells[i]
			}
			parts[i] = style(i)(fit(s, widths[i]))
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ") + "\n"
	}

	titles := make([]string, len(t.Columns))
	rules := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		titles[i] = col.Title
		rules[i] = strings.Repeat("─", widths[i])
	}

	var sb strings.Builder
	sb.WriteString(line(titles, func(int) func(string) string {
		return func(s string) string { return styleHeader.Render(s) }
	}))
	sb.WriteString(line(rules, func(int) func(string) string { return Meta }))
	for _, row := range t.Rows {
		sb.WriteString(line(row, t.cellStyle))
	}
	return sb.String()
}

func (t *Table) cellStyle(i int) func(string) string {
	if s := t.Columns[i].Style; s != nil {
		return s
	}
	return Val
}

// fit pads or cuts s to exactly width runes.
func fit(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

// KeyValueBlock renders labelled lines inside a rounded border. Labels are
// aligned to the longest one; values are written as given, so callers
// style them.
func KeyValueBlock(title string, pairs [][2]string) string {
	keyWidth := 0
	for _, p := range pairs {
		keyWidth = max(keyWidth, lipgloss.Width(p[0])+1)
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(StyleTitle.Render(title))
		sb.WriteString("\n")
	}
	for _, p := range pairs {
		sb.WriteString(Meta(fit(p[0]+":", keyWidth)) + " " + p[1] + "\n")
	}
	return StyleBorder.Render(strings.TrimRight(sb.String(), "\n"))
}
