package server

import (
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/model"
)

type AreasParams struct {
	Areas    string `form:"areas"`
	Measures string `form:"measures"`
	Years    string `form:"years"`
}

type AreaParams struct {
	Code string `uri:"code"`
}

type MeasureParams struct {
	Code    string `uri:"code"`
	Measure string `uri:"measure"`
}

func (s *server) initAreas(r *gin.Engine) {
	r.GET("/api/areas", getP[AreasParams](s.areasList))
	r.GET("/api/areas/:code", getP[AreaParams](s.areaGet))
	r.GET("/api/areas/:code/measures/:measure", getP[MeasureParams](s.measureGet))
	r.GET("/api/codes", getP[GridParams](s.codesList))
	r.GET("/api/measures", get(s.measuresList))
}

func (s *server) areasList(params *AreasParams) (any, error) {
	areasFilter, err := filters.ParseAreasArg(splitList(params.Areas))
	if err != nil {
		return nil, model.WrapError(model.ErrInvalidArgument, err, "invalid areas")
	}

	yearsFilter, err := filters.ParseYearsArg(params.Years)
	if err != nil {
		return nil, err
	}

	f := &filters.Filters{
		Areas:    areasFilter,
		Measures: filters.ParseMeasuresArg(splitList(params.Measures)),
		Years:    yearsFilter,
	}

	result := gin.H{}
	for _, a := range s.areas.ListAreas() {
		if !f.Areas.Matches(append([]string{a.Code()}, lo.Values(toNames(a))...)...) {
			continue
		}

		result[a.Code()] = gin.H{
			"names":    toNames(a),
			"measures": toMeasureValues(a, f),
		}
	}

	return result, nil
}

func (s *server) areaGet(params *AreaParams) (any, error) {
	a, err := s.areas.GetArea(params.Code)
	if err != nil {
		return nil, err
	}

	return s.toArea(a), nil
}

func (s *server) measureGet(params *MeasureParams) (any, error) {
	a, err := s.areas.GetArea(params.Code)
	if err != nil {
		return nil, err
	}

	m, err := a.GetMeasure(params.Measure)
	if err != nil {
		return nil, err
	}

	return s.toMeasure(m), nil
}

func (s *server) codesList(params *GridParams) (any, error) {
	return paginate(s.areas.ListAuthorityCodes(), params.Offset, params.Limit), nil
}

// measuresList returns every codename present in any area, sorted.
func (s *server) measuresList() (any, error) {
	result := lo.Uniq(lo.FlatMap(s.areas.ListAreas(), func(a *model.Area, _ int) []string {
		return a.ListMeasureCodenames()
	}))
	sort.Strings(result)

	return result, nil
}
