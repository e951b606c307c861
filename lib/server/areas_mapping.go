package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/model"
)

func (s *server) toArea(a *model.Area) gin.H {
	return gin.H{
		"code":     a.Code(),
		"names":    toNames(a),
		"measures": toMeasureValues(a, nil),
	}
}

func (s *server) toMeasure(m *model.Measure) gin.H {
	return gin.H{
		"codename":             m.Codename(),
		"label":                m.Label(),
		"values":               toValues(m, nil),
		"average":              m.Average(),
		"difference":           m.Difference(),
		"differencePercentage": m.DifferenceAsPercentage(),
	}
}

func toNames(a *model.Area) map[string]string {
	result := make(map[string]string)
	for _, lang := range a.ListLanguages() {
		name, err := a.GetName(lang)
		if err == nil {
			result[lang] = name
		}
	}
	return result
}

func toMeasureValues(a *model.Area, f *filters.Filters) map[string]map[string]float64 {
	if f == nil {
		f = &filters.Filters{}
	}

	result := make(map[string]map[string]float64)
	for _, codename := range a.ListMeasureCodenames() {
		if !f.Measures.Matches(codename) {
			continue
		}

		m, err := a.GetMeasure(codename)
		if err != nil {
			continue
		}

		result[codename] = toValues(m, f.Years)
	}
	return result
}

func toValues(m *model.Measure, years *filters.YearFilter) map[string]float64 {
	result := make(map[string]float64)
	for _, year := range m.ListYears() {
		if !years.Matches(year) {
			continue
		}

		v, err := m.GetValue(year)
		if err == nil {
			result[strconv.FormatUint(uint64(year), 10)] = v
		}
	}
	return result
}
