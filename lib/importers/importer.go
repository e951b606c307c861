package importers

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/pescuma/bethyw/lib/consoles"
	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/model"
	"github.com/pescuma/bethyw/lib/utils"
)

type Importer struct {
	console consoles.Console
	areas   *model.Areas
}

func NewImporter(console consoles.Console, areas *model.Areas) *Importer {
	return &Importer{
		console: console,
		areas:   areas,
	}
}

// Import opens the dataset file inside dir and adds its contents to the store.
func (i *Importer) Import(dir string, ds datasets.InputFileSource, f *filters.Filters) error {
	path := filepath.Join(dir, ds.File)

	file, err := os.Open(path)
	if err != nil {
		return model.WrapError(model.ErrIO, err, "failed to open file %v", path)
	}
	defer file.Close()

	var size int64 = -1
	if stat, err := file.Stat(); err == nil {
		size = stat.Size()
	}

	i.console.Printf("Importing %v from %v (%v)...\n", ds.Name, path, humanize.Bytes(uint64(utils.Max(size, 0))))

	bar := utils.NewProgressBar(int(size))
	bar.Describe(utils.TruncateFilename(path))

	reader := progressbar.NewReader(file, bar)

	before := i.areas.Size()

	err = Populate(i.areas, &reader, ds.Type, ds.Cols, f)
	_ = bar.Finish()
	if err != nil {
		return err
	}

	i.console.Printf("Imported %v: %v areas in the store (%v new)\n", ds.Code, i.areas.Size(), i.areas.Size()-before)

	return nil
}

// Populate parses r as a source of type t and adds the records that pass f to areas.
// A nil f, or nil members in it, means no filtering.
func Populate(areas *model.Areas, r io.Reader, t datasets.SourceDataType, cols datasets.ColumnMapping, f *filters.Filters) error {
	if f == nil {
		f = &filters.Filters{}
	}

	switch t {
	case datasets.AuthorityCodeCSV:
		return populateFromAuthorityCodeCSV(areas, r, cols, f)
	case datasets.WelshStatsJSON:
		return populateFromWelshStatsJSON(areas, r, cols, f)
	case datasets.AuthorityByYearCSV:
		return populateFromAuthorityByYearCSV(areas, r, cols, f)
	default:
		return model.NewError(model.ErrMalformedSource, "unexpected data type")
	}
}

func newCSVReader(r io.Reader) *csv.Reader {
	result := csv.NewReader(r)
	result.FieldsPerRecord = -1
	return result
}

// readHeader returns the first record, without the UTF-8 BOM some exports carry.
func readHeader(reader *csv.Reader) ([]string, error) {
	header, err := reader.Read()
	if err == io.EOF {
		return nil, errHeadings()
	}
	if err != nil {
		return nil, readError(err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	return header, nil
}

func readError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return model.WrapError(model.ErrMalformedSource, err, "malformed file")
	}

	return model.WrapError(model.ErrIO, err, "failed to read file")
}

// parseValue accepts only finite numbers.
func parseValue(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.Errorf("not a finite number: %v", text)
	}

	return value, nil
}

func errHeadings() error {
	return model.NewError(model.ErrMalformedSource, "malformed file: headings are not correct")
}

func errColumns() error {
	return model.NewError(model.ErrMalformedSource, "malformed file: incorrect number of columns")
}
