package importers

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/model"
)

type statsWalesRecord map[string]json.RawMessage

type statsWalesColumns struct {
	authCode    string
	authNameEng string
	measureCode string
	measureName string
	single      bool
	year        string
	value       string
}

func newStatsWalesColumns(cols datasets.ColumnMapping) (*statsWalesColumns, error) {
	var err error
	result := &statsWalesColumns{}

	get := func(c datasets.SourceColumn) string {
		if err != nil {
			return ""
		}

		var v string
		v, err = cols.Get(c)
		return v
	}

	result.authCode = get(datasets.AuthCode)
	result.authNameEng = get(datasets.AuthNameEng)
	result.year = get(datasets.Year)
	result.value = get(datasets.Value)

	if cols.Has(datasets.MeasureCode) {
		result.measureCode = get(datasets.MeasureCode)
		result.measureName = get(datasets.MeasureName)
	} else {
		result.single = true
		result.measureCode = get(datasets.SingleMeasureCode)
		result.measureName = get(datasets.SingleMeasureName)
	}

	if err != nil {
		return nil, err
	}

	return result, nil
}

// populateFromWelshStatsJSON reads a StatsWales export, where the records are in the "value" array.
// The records are decoded one at a time.
func populateFromWelshStatsJSON(areas *model.Areas, r io.Reader, cols datasets.ColumnMapping, f *filters.Filters) error {
	sc, err := newStatsWalesColumns(cols)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	err = expectDelim(dec, '{')
	if err != nil {
		return err
	}

	found := false
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return jsonError(err)
		}

		if key != "value" {
			var skip json.RawMessage
			err = dec.Decode(&skip)
			if err != nil {
				return jsonError(err)
			}
			continue
		}

		found = true

		err = expectDelim(dec, '[')
		if err != nil {
			return err
		}

		for dec.More() {
			var record statsWalesRecord
			err = dec.Decode(&record)
			if err != nil {
				return jsonError(err)
			}

			err = importStatsWalesRecord(areas, record, sc, f)
			if err != nil {
				return err
			}
		}

		err = expectDelim(dec, ']')
		if err != nil {
			return err
		}
	}

	err = expectDelim(dec, '}')
	if err != nil {
		return err
	}

	if !found {
		return model.NewError(model.ErrMalformedSource, "malformed file: no value array")
	}

	return nil
}

func importStatsWalesRecord(areas *model.Areas, record statsWalesRecord, sc *statsWalesColumns, f *filters.Filters) error {
	code, err := record.raw(sc.authCode)
	if err != nil {
		return err
	}

	name, err := record.raw(sc.authNameEng)
	if err != nil {
		return err
	}

	if !f.Areas.Matches(code, name) {
		return nil
	}

	measureCode, measureName := sc.measureCode, sc.measureName
	if !sc.single {
		measureCode, err = record.raw(sc.measureCode)
		if err != nil {
			return err
		}

		measureName, err = record.raw(sc.measureName)
		if err != nil {
			return err
		}
	}

	if !f.Measures.Matches(measureCode) {
		return nil
	}

	year, err := record.year(sc.year)
	if err != nil {
		return err
	}

	if !f.Years.Matches(year) {
		return nil
	}

	value, err := record.number(sc.value)
	if err != nil {
		return err
	}

	measure := model.NewMeasure(measureCode, measureName)
	measure.SetValue(year, value)

	area := model.NewArea(code)

	err = area.SetName(model.EnglishLang, name)
	if err != nil {
		return err
	}

	area.SetMeasure(measureCode, measure)

	areas.SetArea(code, area)

	return nil
}

// raw returns the field contents: a JSON string without quotes, or the literal text of a number.
func (r statsWalesRecord) raw(field string) (string, error) {
	data, ok := r[field]
	if !ok {
		return "", model.NewError(model.ErrMalformedSource, "malformed file: record has no %v field", field)
	}

	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return "", model.WrapError(model.ErrMalformedSource, err, "malformed file: invalid %v field", field)
		}
		return s, nil
	}

	var n json.Number
	err := json.Unmarshal(data, &n)
	if err != nil {
		return "", model.WrapError(model.ErrMalformedSource, err, "malformed file: invalid %v field", field)
	}

	return n.String(), nil
}

// year reads the leading digits of the field, so "2015" and "2015-16" are both 2015.
func (r statsWalesRecord) year(field string) (uint, error) {
	text, err := r.raw(field)
	if err != nil {
		return 0, err
	}

	text = strings.TrimSpace(text)
	end := strings.IndexFunc(text, func(c rune) bool { return !unicode.IsDigit(c) })
	if end >= 0 {
		text = text[:end]
	}

	year, err := strconv.ParseUint(text, 10, 0)
	if err != nil {
		return 0, model.WrapError(model.ErrMalformedSource, err, "malformed file: invalid %v field", field)
	}

	return uint(year), nil
}

func (r statsWalesRecord) number(field string) (float64, error) {
	text, err := r.raw(field)
	if err != nil {
		return 0, err
	}

	value, err := parseValue(text)
	if err != nil {
		return 0, model.WrapError(model.ErrMalformedSource, err, "malformed file: invalid %v field", field)
	}

	return value, nil
}

func expectDelim(dec *json.Decoder, expected json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return jsonError(err)
	}

	if d, ok := tok.(json.Delim); !ok || d != expected {
		return model.NewError(model.ErrMalformedSource, "malformed file: expected %v but got %v", expected, tok)
	}

	return nil
}

func jsonError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return model.WrapError(model.ErrMalformedSource, err, "malformed file: unexpected end of file")
	}

	return model.WrapError(model.ErrMalformedSource, err, "malformed file")
}
