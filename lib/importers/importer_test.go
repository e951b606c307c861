package importers

import (
	"strings"
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/model"
)

var authCols = datasets.ColumnMapping{
	datasets.AuthCode:    "code",
	datasets.AuthNameEng: "eng",
	datasets.AuthNameCym: "cym",
}

var popCols = datasets.ColumnMapping{
	datasets.AuthCode:          "code",
	datasets.SingleMeasureCode: "pop",
	datasets.SingleMeasureName: "Population",
}

func importAuthorities(t require.TestingT, areas *model.Areas, content string, f *filters.Filters) {
	err := Populate(areas, strings.NewReader(content), datasets.AuthorityCodeCSV, authCols, f)
	require.NoError(t, err)
}

func areaFilter(t require.TestingT, entries ...string) *filters.Filters {
	af, err := filters.NewAreaFilter(entries...)
	require.NoError(t, err)

	return &filters.Filters{Areas: af}
}

func TestAuthorityCSV(t *testing.T) {
	testgroup.RunInParallel(t, &AuthorityCSVTests{})
}

type AuthorityCSVTests struct {
}

func (g *AuthorityCSVTests) ImportsNames(t *testgroup.T) {
	areas := model.NewAreas()
	importAuthorities(t.T, areas, "code,eng,cym\nW1,Eng1,Cym1\n", nil)

	json, err := areas.ToJSON()
	t.NoError(err)
	t.JSONEq(`{"W1":{"names":{"eng":"Eng1","cym":"Cym1"},"measures":{}}}`, json)
}

func (g *AuthorityCSVTests) HandlesQuotesAndBOM(t *testgroup.T) {
	areas := model.NewAreas()
	importAuthorities(t.T, areas, "\ufeffcode,eng,cym\nW1,\"Vale, The\",Bro\n", nil)

	a, err := areas.GetArea("w1")
	t.NoError(err)

	name, err := a.GetName("ENG")
	t.NoError(err)
	t.Equal("Vale, The", name)
}

func (g *AuthorityCSVTests) AreaFilterMatchesNames(t *testgroup.T) {
	areas := model.NewAreas()
	importAuthorities(t.T, areas, "code,eng,cym\nW06000023,Powys,Powys\nW06000001,Isle of Anglesey,Ynys Môn\n", areaFilter(t.T, "powys"))

	t.Equal([]string{"W06000023"}, areas.ListAuthorityCodes())
}

func (g *AuthorityCSVTests) AreaFilterWithoutMatches(t *testgroup.T) {
	areas := model.NewAreas()
	importAuthorities(t.T, areas, "code,eng,cym\nW06000023,Powys,Powys\n", areaFilter(t.T, "nomatch"))

	t.Equal(0, areas.Size())
	_, err := areas.GetArea("W06000023")
	t.ErrorIs(err, model.ErrNotFound)
}

func (g *AuthorityCSVTests) WrongHeadings(t *testgroup.T) {
	for _, content := range []string{
		"",
		"code,eng\nW1,Eng1\n",
		"code,eng,cym,extra\nW1,Eng1,Cym1,x\n",
		"code,cym,eng\nW1,Eng1,Cym1\n",
		"Code,eng,cym\nW1,Eng1,Cym1\n",
	} {
		err := Populate(model.NewAreas(), strings.NewReader(content), datasets.AuthorityCodeCSV, authCols, nil)
		t.ErrorIs(err, model.ErrMalformedSource, content)
		t.EqualError(err, "malformed file: headings are not correct", content)
	}
}

func (g *AuthorityCSVTests) WrongNumberOfColumns(t *testgroup.T) {
	areas := model.NewAreas()
	err := Populate(areas, strings.NewReader("code,eng,cym\nW1,Eng1,Cym1\nW2,Eng2\n"), datasets.AuthorityCodeCSV, authCols, nil)

	t.ErrorIs(err, model.ErrMalformedSource)
	t.EqualError(err, "malformed file: incorrect number of columns")
}

func (g *AuthorityCSVTests) MissingMapping(t *testgroup.T) {
	err := Populate(model.NewAreas(), strings.NewReader("code,eng,cym\n"), datasets.AuthorityCodeCSV,
		datasets.ColumnMapping{datasets.AuthCode: "code"}, nil)

	t.ErrorIs(err, model.ErrMalformedSource)
	t.EqualError(err, "column mapping has no AUTH_NAME_ENG entry")
}

func TestAuthorityByYearCSV(t *testing.T) {
	testgroup.RunInParallel(t, &AuthorityByYearCSVTests{})
}

type AuthorityByYearCSVTests struct {
}

func (g *AuthorityByYearCSVTests) PopulatesMeasure(t *testgroup.T) {
	areas := model.NewAreas()
	importAuthorities(t.T, areas, "code,eng,cym\nW06000023,Powys,Powys\n", nil)

	err := Populate(areas, strings.NewReader("code,1999,2000\nW06000023,10,20\n"), datasets.AuthorityByYearCSV, popCols, nil)
	t.NoError(err)

	a, err := areas.GetArea("W06000023")
	t.NoError(err)

	m, err := a.GetMeasure("POP")
	t.NoError(err)
	t.Equal("Population", m.Label())
	t.Equal([]uint{1999, 2000}, m.ListYears())

	v, err := m.GetValue(1999)
	t.NoError(err)
	t.Equal(10.0, v)

	v, err = m.GetValue(2000)
	t.NoError(err)
	t.Equal(20.0, v)

	t.Equal(15.0, m.Average())
	t.Equal(10.0, m.Difference())
	t.Equal(100.0, m.DifferenceAsPercentage())
}

func (g *AuthorityByYearCSVTests) YearFilter(t *testgroup.T) {
	areas := model.NewAreas()
	importAuthorities(t.T, areas, "code,eng,cym\nW06000023,Powys,Powys\n", nil)

	err := Populate(areas, strings.NewReader("code,1999,2000\nW06000023,10,20\n"), datasets.AuthorityByYearCSV, popCols,
		&filters.Filters{Years: filters.NewYearFilter(2000, 2000)})
	t.NoError(err)

	a, _ := areas.GetArea("W06000023")
	m, err := a.GetMeasure("pop")
	t.NoError(err)
	t.Equal([]uint{2000}, m.ListYears())
}

func (g *AuthorityByYearCSVTests) MeasureFilterSkipsFile(t *testgroup.T) {
	areas := model.NewAreas()
	importAuthorities(t.T, areas, "code,eng,cym\nW06000023,Powys,Powys\n", nil)

	err := Populate(areas, strings.NewReader("code,1999\nW06000023,10\nW99,x\n"), datasets.AuthorityByYearCSV, popCols,
		&filters.Filters{Measures: filters.NewMeasureFilter("dens")})
	t.NoError(err)

	a, _ := areas.GetArea("W06000023")
	t.Equal(0, a.Size())
}

func (g *AuthorityByYearCSVTests) AreaFilterUsesCode(t *testgroup.T) {
	areas := model.NewAreas()
	importAuthorities(t.T, areas, "code,eng,cym\nW06000023,Powys,Powys\nW06000001,Anglesey,Ynys Môn\n", nil)

	err := Populate(areas, strings.NewReader("code,1999\nW06000023,10\nW06000001,5\n"), datasets.AuthorityByYearCSV, popCols,
		areaFilter(t.T, "w06000001"))
	t.NoError(err)

	powys, _ := areas.GetArea("W06000023")
	t.Equal(0, powys.Size())

	anglesey, _ := areas.GetArea("W06000001")
	t.Equal(1, anglesey.Size())
}

func (g *AuthorityByYearCSVTests) MergesWithExistingMeasure(t *testgroup.T) {
	areas := model.NewAreas()
	importAuthorities(t.T, areas, "code,eng,cym\nW1,Eng1,Cym1\n", nil)

	t.NoError(Populate(areas, strings.NewReader("code,1999,2000\nW1,1,2\n"), datasets.AuthorityByYearCSV, popCols, nil))
	t.NoError(Populate(areas, strings.NewReader("code,2000,2001\nW1,20,30\n"), datasets.AuthorityByYearCSV, popCols, nil))

	a, _ := areas.GetArea("W1")
	m, _ := a.GetMeasure("pop")
	t.Equal([]uint{1999, 2000, 2001}, m.ListYears())

	v, _ := m.GetValue(2000)
	t.Equal(20.0, v)
}

func (g *AuthorityByYearCSVTests) MissingArea(t *testgroup.T) {
	err := Populate(model.NewAreas(), strings.NewReader("code,1999\nW1,10\n"), datasets.AuthorityByYearCSV, popCols, nil)

	t.ErrorIs(err, model.ErrNotFound)
}

func (g *AuthorityByYearCSVTests) Malformed(t *testgroup.T) {
	areas := model.NewAreas()
	importAuthorities(t.T, areas, "code,eng,cym\nW1,Eng1,Cym1\n", nil)

	for _, content := range []string{
		"",
		"other,1999\nW1,10\n",
		"code,year\nW1,10\n",
		"code,1999\nW1,ten\n",
		"code,1999,2000\nW1,10\n",
		"code,1999\nW1,10,20\n",
	} {
		err := Populate(areas, strings.NewReader(content), datasets.AuthorityByYearCSV, popCols, nil)
		t.ErrorIs(err, model.ErrMalformedSource, content)
	}
}

func (g *AuthorityByYearCSVTests) RejectsNonFiniteValues(t *testgroup.T) {
	for _, value := range []string{"NaN", "Inf", "-Inf", "+Infinity"} {
		areas := model.NewAreas()
		importAuthorities(t.T, areas, "code,eng,cym\nW1,Eng1,Cym1\n", nil)

		err := Populate(areas, strings.NewReader("code,1999,2000\nW1,1,"+value+"\n"), datasets.AuthorityByYearCSV, popCols, nil)
		t.ErrorIs(err, model.ErrMalformedSource, value)
		t.ErrorContains(err, "malformed file: invalid value for W1 in 2000", value)

		_, err = areas.ToJSON()
		t.NoError(err, value)
	}
}

func TestUnknownType(t *testing.T) {
	t.Parallel()

	err := Populate(model.NewAreas(), strings.NewReader(""), datasets.None, authCols, nil)

	assert.ErrorIs(t, err, model.ErrMalformedSource)
	assert.EqualError(t, err, "unexpected data type")
}
