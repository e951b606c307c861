package datasets

import (
	"github.com/pescuma/bethyw/lib/model"
)

type SourceDataType int

const (
	None SourceDataType = iota
	AuthorityCodeCSV
	WelshStatsJSON
	AuthorityByYearCSV
)

func (t SourceDataType) String() string {
	switch t {
	case AuthorityCodeCSV:
		return "authority code CSV"
	case WelshStatsJSON:
		return "StatsWales JSON"
	case AuthorityByYearCSV:
		return "authority by year CSV"
	default:
		return "none"
	}
}

// SourceColumn is a logical column of a source file.
type SourceColumn int

const (
	AuthCode SourceColumn = iota
	AuthNameEng
	AuthNameCym
	MeasureCode
	MeasureName
	SingleMeasureCode
	SingleMeasureName
	Year
	Value
)

func (c SourceColumn) String() string {
	switch c {
	case AuthCode:
		return "AUTH_CODE"
	case AuthNameEng:
		return "AUTH_NAME_ENG"
	case AuthNameCym:
		return "AUTH_NAME_CYM"
	case MeasureCode:
		return "MEASURE_CODE"
	case MeasureName:
		return "MEASURE_NAME"
	case SingleMeasureCode:
		return "SINGLE_MEASURE_CODE"
	case SingleMeasureName:
		return "SINGLE_MEASURE_NAME"
	case Year:
		return "YEAR"
	case Value:
		return "VALUE"
	default:
		return "UNKNOWN"
	}
}

// ColumnMapping maps logical columns to the header (or constant) used by one source.
type ColumnMapping map[SourceColumn]string

// Get returns the mapped value, or a MalformedSource error when the mapping does not have it.
func (m ColumnMapping) Get(col SourceColumn) (string, error) {
	v, ok := m[col]
	if !ok {
		return "", model.NewError(model.ErrMalformedSource, "column mapping has no %v entry", col)
	}

	return v, nil
}

func (m ColumnMapping) Has(col SourceColumn) bool {
	_, ok := m[col]
	return ok
}

// InputFileSource describes one known dataset file.
type InputFileSource struct {
	Name string
	Code string
	File string
	Type SourceDataType
	Cols ColumnMapping
}
