package filters

import (
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// MeasureFilter selects measures by exact codename, ignoring case.
// A nil or empty filter selects everything.
type MeasureFilter struct {
	codenames *set.Set[string]
}

func NewMeasureFilter(codenames ...string) *MeasureFilter {
	result := &MeasureFilter{
		codenames: set.New[string](len(codenames)),
	}

	for _, c := range codenames {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			result.codenames.Insert(c)
		}
	}

	return result
}

func (f *MeasureFilter) IsEmpty() bool {
	return f == nil || f.codenames.Empty()
}

func (f *MeasureFilter) Codenames() []string {
	if f == nil {
		return nil
	}

	return f.codenames.Slice()
}

func (f *MeasureFilter) Matches(codename string) bool {
	if f.IsEmpty() {
		return true
	}

	return f.codenames.Contains(strings.ToLower(codename))
}
