package filters

import (
	"strings"

	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
)

// AreaFilter selects areas whose code or names contain one of its entries.
// A nil or empty filter selects everything.
type AreaFilter struct {
	entries  *set.Set[string]
	matchers []func(string) bool
}

func NewAreaFilter(entries ...string) (*AreaFilter, error) {
	result := &AreaFilter{
		entries: set.New[string](len(entries)),
	}

	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || !result.entries.Insert(e) {
			continue
		}

		m, err := ParseStringFilter(e)
		if err != nil {
			return nil, err
		}

		result.matchers = append(result.matchers, m)
	}

	return result, nil
}

func (f *AreaFilter) IsEmpty() bool {
	return f == nil || f.entries.Empty()
}

func (f *AreaFilter) Entries() []string {
	if f == nil {
		return nil
	}

	return f.entries.Slice()
}

// Matches returns true if any of the candidates matches any entry.
func (f *AreaFilter) Matches(candidates ...string) bool {
	if f.IsEmpty() {
		return true
	}

	return lo.SomeBy(f.matchers, func(m func(string) bool) bool {
		return lo.SomeBy(candidates, m)
	})
}
