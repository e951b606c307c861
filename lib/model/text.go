package model

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pescuma/bethyw/lib/utils"
)

const (
	unnamedText    = "Unnamed"
	noMeasuresText = "<no measures>"
	noDataText     = "<no data>"
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// String renders the label line followed by a table of the values and statistics, and a blank line.
func (m *Measure) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("%v (%v)\n", m.label, m.codename))

	if len(m.values) == 0 {
		builder.WriteString(noDataText)
		builder.WriteString("\n\n")
		return builder.String()
	}

	var header, values []string
	for _, year := range m.ListYears() {
		header = append(header, strconv.FormatUint(uint64(year), 10))
		values = append(values, formatValue(m.values[year]))
	}

	header = append(header, "Average", "Diff.", "% Diff.")
	values = append(values,
		formatValue(m.Average()),
		formatValue(m.Difference()),
		formatValue(m.DifferenceAsPercentage()))

	table := utils.NewTable()
	table.AddRow(header...)
	table.AddRow(values...)

	builder.WriteString(table.String())
	builder.WriteString("\n")

	return builder.String()
}

func (a *Area) displayName() string {
	if len(a.names) == 0 {
		return fmt.Sprintf("%v (%v)", unnamedText, a.code)
	}

	var names []string
	for _, lang := range a.ListLanguages() {
		names = append(names, a.names[lang])
	}

	return fmt.Sprintf("%v (%v)", strings.Join(names, " / "), a.code)
}

func (a *Area) String() string {
	builder := strings.Builder{}
	builder.WriteString(a.displayName())
	builder.WriteString("\n")

	if len(a.measures) == 0 {
		builder.WriteString(noMeasuresText)
		builder.WriteString("\n\n")
		return builder.String()
	}

	for _, codename := range a.ListMeasureCodenames() {
		builder.WriteString(a.measures[codename].String())
	}

	return builder.String()
}

func (as *Areas) String() string {
	builder := strings.Builder{}
	_ = as.WriteText(&builder)
	return builder.String()
}

// WriteText writes every area, in ascending code order.
func (as *Areas) WriteText(w io.Writer) error {
	for _, area := range as.ListAreas() {
		_, err := io.WriteString(w, area.String())
		if err != nil {
			return err
		}
	}

	return nil
}
