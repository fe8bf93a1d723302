// Package tabular holds the in-memory table model the processing pipeline
// works on, plus the xlsx codec that produces and consumes it.
package tabular

import "strings"

// Table is one parsed spreadsheet: a header row plus data rows in source
// order. Column lookup is case-insensitive on the trimmed header name.
// Tables are read-only for the duration of a run.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

func New(columns []string, rows [][]string) Table {
	index := make(map[string]int, len(columns))

	for i, name := range columns {
		key := normalizeHeader(name)
		if _, ok := index[key]; ok {
			continue // first header wins on duplicates
		}

		index[key] = i
	}

	return Table{
		columns: columns,
		index:   index,
		rows:    rows,
	}
}

func (t Table) Columns() []string {
	return t.columns
}

func (t Table) RowCount() int {
	return len(t.rows)
}

// Column resolves a header name to a cell accessor. The second result
// reports whether the column exists.
func (t Table) Column(name string) (Column, bool) {
	idx, ok := t.index[normalizeHeader(name)]
	if !ok {
		return Column{index: -1}, false
	}

	return Column{index: idx, rows: t.rows}, true
}

// OptionalColumn never fails: an absent column yields empty cells. This is
// the explicit degraded form for per-table optional fields.
func (t Table) OptionalColumn(name string) Column {
	col, _ := t.Column(name)
	if col.index < 0 {
		return Column{index: -1}
	}

	return col
}

// Column reads the cells of one table column. Rows shorter than the header
// (a trailing-cell quirk of xlsx exports) read as empty strings.
type Column struct {
	index int
	rows  [][]string
}

func (c Column) Value(row int) string {
	if c.index < 0 || row < 0 || row >= len(c.rows) {
		return ""
	}

	cells := c.rows[row]
	if c.index >= len(cells) {
		return ""
	}

	return cells[c.index]
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
