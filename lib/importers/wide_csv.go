package importers

import (
	"io"
	"strconv"
	"strings"

	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/model"
)

// populateFromAuthorityByYearCSV reads a file with one row per area and one column per year,
// all for the same measure. The areas must already be in the store.
func populateFromAuthorityByYearCSV(areas *model.Areas, r io.Reader, cols datasets.ColumnMapping, f *filters.Filters) error {
	authCode, err := cols.Get(datasets.AuthCode)
	if err != nil {
		return err
	}

	measureCode, err := cols.Get(datasets.SingleMeasureCode)
	if err != nil {
		return err
	}

	measureName, err := cols.Get(datasets.SingleMeasureName)
	if err != nil {
		return err
	}

	reader := newCSVReader(r)

	header, err := readHeader(reader)
	if err != nil {
		return err
	}

	if len(header) == 0 || header[0] != authCode {
		return errHeadings()
	}

	years := make([]uint, 0, len(header)-1)
	for _, h := range header[1:] {
		year, err := strconv.ParseUint(strings.TrimSpace(h), 10, 0)
		if err != nil {
			return model.WrapError(model.ErrMalformedSource, err, "malformed file: invalid year %q", h)
		}

		years = append(years, uint(year))
	}

	if !f.Measures.Matches(measureCode) {
		return nil
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return readError(err)
		}

		if len(row) != len(header) {
			return errColumns()
		}

		code := row[0]
		if !f.Areas.Matches(code) {
			continue
		}

		measure := model.NewMeasure(measureCode, measureName)

		for i, year := range years {
			if !f.Years.Matches(year) {
				continue
			}

			value, err := parseValue(row[i+1])
			if err != nil {
				return model.WrapError(model.ErrMalformedSource, err, "malformed file: invalid value for %v in %v", code, year)
			}

			measure.SetValue(year, value)
		}

		area, err := areas.GetArea(code)
		if err != nil {
			return err
		}

		area.SetMeasure(measureCode, measure)
	}

	return nil
}
