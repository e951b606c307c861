package model

import (
	"sort"

	"github.com/samber/lo"
)

// Areas is the store of all imported areas, keyed by local authority code.
// It has a single writer: imports run one after the other and reads happen after them.
type Areas struct {
	byCode map[string]*Area
}

func NewAreas() *Areas {
	return &Areas{
		byCode: map[string]*Area{},
	}
}

// SetArea inserts area under code, or merges it into the area that already exists with that code.
// An inserted area is owned by the store and takes code as its own code.
func (as *Areas) SetArea(code string, area *Area) {
	key := foldKey(code)

	existing, ok := as.byCode[key]
	if ok {
		existing.merge(area)
		return
	}

	area.code = code
	as.byCode[key] = area
}

func (as *Areas) GetArea(code string) (*Area, error) {
	result, ok := as.byCode[foldKey(code)]
	if !ok {
		return nil, NewError(ErrNotFound, "no area found matching %v", code)
	}

	return result, nil
}

func (as *Areas) Size() int {
	return len(as.byCode)
}

// ListAuthorityCodes returns the codes in ascending order.
func (as *Areas) ListAuthorityCodes() []string {
	result := lo.Map(lo.Values(as.byCode), func(a *Area, _ int) string {
		return a.code
	})
	sort.Strings(result)
	return result
}

// ListAreas returns the areas in ascending code order.
func (as *Areas) ListAreas() []*Area {
	return lo.Map(as.ListAuthorityCodes(), func(code string, _ int) *Area {
		return as.byCode[foldKey(code)]
	})
}

func (as *Areas) Equals(other *Areas) bool {
	if len(as.byCode) != len(other.byCode) {
		return false
	}

	for _, code := range as.ListAuthorityCodes() {
		oa, err := other.GetArea(code)
		if err != nil || !as.byCode[foldKey(code)].Equals(oa) {
			return false
		}
	}

	return true
}
