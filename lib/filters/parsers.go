package filters

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pescuma/bethyw/lib/model"
)

// Filters groups the three filters applied while importing. Nil members mean "no filter".
type Filters struct {
	Areas    *AreaFilter
	Measures *MeasureFilter
	Years    *YearFilter
}

// ParseAreasArg returns an empty filter if values is empty or contains "all".
func ParseAreasArg(values []string) (*AreaFilter, error) {
	if isAll(values) {
		return NewAreaFilter()
	}

	return NewAreaFilter(values...)
}

// ParseMeasuresArg returns an empty filter if values is empty or contains "all".
func ParseMeasuresArg(values []string) *MeasureFilter {
	if isAll(values) {
		return NewMeasureFilter()
	}

	return NewMeasureFilter(values...)
}

var yearsRE = regexp.MustCompile(`^(\d{4})(?:-(\d{4}))?$`)

// ParseYearsArg accepts YYYY, YYYY-ZZZZ, 0 and 0-0. An empty value is the same as 0.
func ParseYearsArg(value string) (*YearFilter, error) {
	value = strings.TrimSpace(value)

	switch value {
	case "", "0", "0-0":
		return NewYearFilter(0, 0), nil
	}

	parts := yearsRE.FindStringSubmatch(value)
	if parts == nil {
		return nil, model.NewError(model.ErrInvalidArgument, "invalid input for years argument")
	}

	start, _ := strconv.ParseUint(parts[1], 10, 0)
	end := start
	if parts[2] != "" {
		end, _ = strconv.ParseUint(parts[2], 10, 0)
	}

	if start > end {
		return nil, model.NewError(model.ErrInvalidArgument, "invalid input for years argument")
	}

	return NewYearFilter(uint(start), uint(end)), nil
}
