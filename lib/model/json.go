package model

import (
	"encoding/json"
	"strconv"
)

type jsonArea struct {
	Names    map[string]string             `json:"names"`
	Measures map[string]map[string]float64 `json:"measures"`
}

// ToJSON serializes the store as {"<code>": {"names": {...}, "measures": {"<codename>": {"<year>": value}}}}.
func (as *Areas) ToJSON() (string, error) {
	if as.Size() == 0 {
		return "{}", nil
	}

	jas := make(map[string]*jsonArea, as.Size())

	for _, code := range as.ListAuthorityCodes() {
		area := as.byCode[foldKey(code)]
		jas[code] = toJsonArea(area)
	}

	marshaled, err := json.Marshal(jas)
	if err != nil {
		return "", err
	}

	return string(marshaled), nil
}

func toJsonArea(area *Area) *jsonArea {
	ja := &jsonArea{
		Names:    make(map[string]string, len(area.names)),
		Measures: make(map[string]map[string]float64, len(area.measures)),
	}

	for lang, name := range area.names {
		ja.Names[lang] = name
	}

	for codename, measure := range area.measures {
		values := make(map[string]float64, len(measure.values))
		for year, value := range measure.values {
			values[strconv.FormatUint(uint64(year), 10)] = value
		}

		ja.Measures[codename] = values
	}

	return ja
}

// FromJSON reads the format written by ToJSON. Measure labels are not part of it, so they are set to the codename.
func FromJSON(content string) (*Areas, error) {
	var jas map[string]*jsonArea

	err := json.Unmarshal([]byte(content), &jas)
	if err != nil {
		return nil, WrapError(ErrMalformedSource, err, "invalid areas JSON")
	}

	result := NewAreas()

	for code, ja := range jas {
		area := NewArea(code)

		if ja != nil {
			for lang, name := range ja.Names {
				err = area.SetName(lang, name)
				if err != nil {
					return nil, err
				}
			}

			for codename, values := range ja.Measures {
				measure := NewMeasure(codename, codename)

				for y, value := range values {
					year, err := strconv.ParseUint(y, 10, 0)
					if err != nil {
						return nil, WrapError(ErrMalformedSource, err, "invalid year %v in measure %v of area %v", y, codename, code)
					}

					measure.SetValue(uint(year), value)
				}

				area.SetMeasure(codename, measure)
			}
		}

		result.SetArea(code, area)
	}

	return result, nil
}
