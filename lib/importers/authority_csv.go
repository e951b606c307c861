package importers

import (
	"io"

	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/model"
)

// populateFromAuthorityCodeCSV reads a three column file: code, English name and Welsh name.
func populateFromAuthorityCodeCSV(areas *model.Areas, r io.Reader, cols datasets.ColumnMapping, f *filters.Filters) error {
	var expected []string
	for _, c := range []datasets.SourceColumn{datasets.AuthCode, datasets.AuthNameEng, datasets.AuthNameCym} {
		name, err := cols.Get(c)
		if err != nil {
			return err
		}
		expected = append(expected, name)
	}

	reader := newCSVReader(r)

	header, err := readHeader(reader)
	if err != nil {
		return err
	}

	if len(header) != len(expected) {
		return errHeadings()
	}
	for i := range expected {
		if header[i] != expected[i] {
			return errHeadings()
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return readError(err)
		}

		if len(row) != len(expected) {
			return errColumns()
		}

		code, eng, cym := row[0], row[1], row[2]

		if !f.Areas.Matches(code, eng, cym) {
			continue
		}

		area := model.NewArea(code)

		err = area.SetName(model.EnglishLang, eng)
		if err != nil {
			return err
		}

		err = area.SetName(model.WelshLang, cym)
		if err != nil {
			return err
		}

		areas.SetArea(code, area)
	}

	return nil
}
