package utils

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Table renders rows of pre-formatted cells, right-aligning each column to its widest cell.
type Table struct {
	rows [][]string
}

func NewTable() *Table {
	return &Table{}
}

func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *Table) widths() []int {
	var result []int

	for _, row := range t.rows {
		for i, cell := range row {
			w := utf8.RuneCountInString(cell)

			if i >= len(result) {
				result = append(result, w)
			} else {
				result[i] = Max(result[i], w)
			}
		}
	}

	return result
}

func (t *Table) String() string {
	widths := t.widths()

	builder := strings.Builder{}
	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				builder.WriteString(" ")
			}

			builder.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
			builder.WriteString(cell)
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}
