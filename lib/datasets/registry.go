package datasets

import (
	"strings"

	"github.com/samber/lo"

	"github.com/pescuma/bethyw/lib/model"
)

var Areas = InputFileSource{
	Name: "Areas",
	Code: "areas",
	File: "areas.csv",
	Type: AuthorityCodeCSV,
	Cols: ColumnMapping{
		AuthCode:    "Local authority code",
		AuthNameEng: "Name (eng)",
		AuthNameCym: "Name (cym)",
	},
}

var PopDen = InputFileSource{
	Name: "Population density",
	Code: "popden",
	File: "popu1009.json",
	Type: WelshStatsJSON,
	Cols: ColumnMapping{
		AuthCode:    "Localauthority_Code",
		AuthNameEng: "Localauthority_ItemName_ENG",
		MeasureCode: "Measure_Code",
		MeasureName: "Measure_ItemName_ENG",
		Year:        "Year_Code",
		Value:       "Data",
	},
}

var Biz = InputFileSource{
	Name: "Active Businesses",
	Code: "biz",
	File: "econ0080.json",
	Type: WelshStatsJSON,
	Cols: ColumnMapping{
		AuthCode:    "Area_Code",
		AuthNameEng: "Area_ItemName_ENG",
		MeasureCode: "Variable_Code",
		MeasureName: "Variable_ItemName_ENG",
		Year:        "Year_Code",
		Value:       "Data",
	},
}

var AQI = InputFileSource{
	Name: "Air Quality Indicators",
	Code: "aqi",
	File: "envi0201.json",
	Type: WelshStatsJSON,
	Cols: ColumnMapping{
		AuthCode:    "Area_Code",
		AuthNameEng: "Area_ItemName_ENG",
		MeasureCode: "Pollutant_ItemName_ENG",
		MeasureName: "Pollutant_ItemName_ENG",
		Year:        "Year_Code",
		Value:       "Data",
	},
}

var Trains = InputFileSource{
	Name: "Rail passenger journeys",
	Code: "trains",
	File: "tran0152.json",
	Type: WelshStatsJSON,
	Cols: ColumnMapping{
		AuthCode:          "LocalAuthority_Code",
		AuthNameEng:       "LocalAuthority_ItemName_ENG",
		SingleMeasureCode: "rail",
		SingleMeasureName: "Rail passenger journeys",
		Year:              "Year_Code",
		Value:             "Data",
	},
}

var CompletePopDen = InputFileSource{
	Name: "Population density",
	Code: "complete-popden",
	File: "complete-popu1009-popden.csv",
	Type: AuthorityByYearCSV,
	Cols: ColumnMapping{
		AuthCode:          "AuthorityCode",
		SingleMeasureCode: "dens",
		SingleMeasureName: "Population density",
	},
}

var CompletePop = InputFileSource{
	Name: "Population",
	Code: "complete-pop",
	File: "complete-popu1009-pop.csv",
	Type: AuthorityByYearCSV,
	Cols: ColumnMapping{
		AuthCode:          "AuthorityCode",
		SingleMeasureCode: "pop",
		SingleMeasureName: "Population",
	},
}

var CompleteArea = InputFileSource{
	Name: "Land area",
	Code: "complete-area",
	File: "complete-popu1009-area.csv",
	Type: AuthorityByYearCSV,
	Cols: ColumnMapping{
		AuthCode:          "AuthorityCode",
		SingleMeasureCode: "area",
		SingleMeasureName: "Land area",
	},
}

// All holds the datasets that can be selected by the user. Areas is not part of it
// because it is always imported first.
var All = []InputFileSource{
	PopDen,
	Biz,
	AQI,
	Trains,
	CompletePopDen,
	CompletePop,
	CompleteArea,
}

// Find looks up a dataset by code, ignoring case. The areas dataset can also be found.
func Find(code string) (InputFileSource, error) {
	code = strings.TrimSpace(code)

	if strings.EqualFold(code, Areas.Code) {
		return Areas, nil
	}

	ds, ok := lo.Find(All, func(ds InputFileSource) bool {
		return strings.EqualFold(ds.Code, code)
	})
	if !ok {
		return InputFileSource{}, model.NewError(model.ErrInvalidArgument, "no dataset matches key: %v", code)
	}

	return ds, nil
}

// ParseList returns the datasets named by codes, in the order given and without duplicates.
// An empty list, or one containing "all", selects every dataset in All.
func ParseList(codes []string) ([]InputFileSource, error) {
	codes = lo.Filter(codes, func(c string, _ int) bool { return strings.TrimSpace(c) != "" })

	if len(codes) == 0 || lo.SomeBy(codes, func(c string) bool { return strings.EqualFold(strings.TrimSpace(c), "all") }) {
		return append([]InputFileSource(nil), All...), nil
	}

	var result []InputFileSource
	for _, code := range codes {
		ds, err := Find(code)
		if err != nil {
			return nil, err
		}

		if ds.Code == Areas.Code {
			continue
		}

		if lo.ContainsBy(result, func(r InputFileSource) bool { return r.Code == ds.Code }) {
			continue
		}

		result = append(result, ds)
	}

	return result, nil
}
