package model

import (
	"sort"
	"unicode"

	"github.com/samber/lo"
)

const EnglishLang = "eng"
const WelshLang = "cym"

// Area is a local authority, with its names in different languages and its measures.
type Area struct {
	code     string
	names    map[string]string
	measures map[string]*Measure
}

func NewArea(code string) *Area {
	return &Area{
		code:     code,
		names:    map[string]string{},
		measures: map[string]*Measure{},
	}
}

func (a *Area) Code() string {
	return a.code
}

// SetName requires lang to be a 3 letter language code, like eng or cym.
func (a *Area) SetName(lang string, name string) error {
	if !isLangCode(lang) {
		return NewError(ErrInvalidArgument, "language code must be three alphabetical letters only: %v", lang)
	}

	a.names[lowerKey(lang)] = name

	return nil
}

func isLangCode(lang string) bool {
	runes := []rune(lang)
	if len(runes) != 3 {
		return false
	}

	return lo.EveryBy(runes, func(r rune) bool {
		return r < unicode.MaxASCII && unicode.IsLetter(r)
	})
}

func (a *Area) GetName(lang string) (string, error) {
	result, ok := a.names[lowerKey(lang)]
	if !ok {
		return "", NewError(ErrNotFound, "no name found for language %v", lang)
	}

	return result, nil
}

// ListLanguages returns the language codes with a name, English first and the rest alphabetically.
func (a *Area) ListLanguages() []string {
	result := lo.Keys(a.names)
	sort.Slice(result, func(i, j int) bool {
		li := result[i]
		lj := result[j]

		if li == EnglishLang || lj == EnglishLang {
			return li == EnglishLang && lj != EnglishLang
		}

		return li < lj
	})
	return result
}

// SetMeasure adds measure to the area, taking ownership of it.
// If a measure with the same codename already exists, measure is merged into it:
// the label and the years present in measure are overwritten, other years are kept.
func (a *Area) SetMeasure(codename string, measure *Measure) {
	key := lowerKey(codename)

	existing, ok := a.measures[key]
	if ok {
		existing.merge(measure)
		return
	}

	a.measures[key] = measure
}

func (a *Area) GetMeasure(codename string) (*Measure, error) {
	result, ok := a.measures[lowerKey(codename)]
	if !ok {
		return nil, NewError(ErrNotFound, "no measure found matching %v", codename)
	}

	return result, nil
}

// ListMeasureCodenames returns the codenames in ascending order.
func (a *Area) ListMeasureCodenames() []string {
	result := lo.Keys(a.measures)
	sort.Strings(result)
	return result
}

// Size returns the number of measures.
func (a *Area) Size() int {
	return len(a.measures)
}

// merge copies names and measures from other, with other winning on conflicts.
// Nothing from other is shared with a afterwards.
func (a *Area) merge(other *Area) {
	for lang, name := range other.names {
		a.names[lang] = name
	}

	for codename, measure := range other.measures {
		a.SetMeasure(codename, measure.clone())
	}
}

func (a *Area) Equals(other *Area) bool {
	if a.code != other.code || len(a.measures) != len(other.measures) || len(a.names) != len(other.names) {
		return false
	}

	for lang, name := range a.names {
		on, err := other.GetName(lang)
		if err != nil || on != name {
			return false
		}
	}

	for codename, measure := range a.measures {
		om, err := other.GetMeasure(codename)
		if err != nil || !measure.Equals(om) {
			return false
		}
	}

	return true
}
