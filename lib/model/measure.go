package model

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

// Measure is a single statistical series, with one value per year.
type Measure struct {
	codename string
	label    string
	values   map[uint]float64
}

func NewMeasure(codename string, label string) *Measure {
	return &Measure{
		codename: lowerKey(codename),
		label:    label,
		values:   map[uint]float64{},
	}
}

func (m *Measure) Codename() string {
	return m.codename
}

func (m *Measure) Label() string {
	return m.label
}

func (m *Measure) SetLabel(label string) {
	m.label = label
}

func (m *Measure) SetValue(year uint, value float64) {
	m.values[year] = value
}

func (m *Measure) GetValue(year uint) (float64, error) {
	result, ok := m.values[year]
	if !ok {
		return 0, NewError(ErrNotFound, "no value found for year %v", year)
	}

	return result, nil
}

func (m *Measure) Size() int {
	return len(m.values)
}

// ListYears returns the years in ascending order.
func (m *Measure) ListYears() []uint {
	result := lo.Keys(m.values)
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}

func (m *Measure) Average() float64 {
	if len(m.values) == 0 {
		return 0
	}

	return lo.Sum(lo.Values(m.values)) / float64(len(m.values))
}

func (m *Measure) firstAndLast() (float64, float64, bool) {
	if len(m.values) == 0 {
		return 0, 0, false
	}

	years := m.ListYears()

	return m.values[years[0]], m.values[years[len(years)-1]], true
}

// Difference is the absolute change between the earliest and the latest year.
func (m *Measure) Difference() float64 {
	first, last, ok := m.firstAndLast()
	if !ok {
		return 0
	}

	return math.Abs(last - first)
}

// DifferenceAsPercentage is Difference relative to the earliest year. It is 0 when the earliest value is 0.
func (m *Measure) DifferenceAsPercentage() float64 {
	first, last, ok := m.firstAndLast()
	if !ok || first == 0 {
		return 0
	}

	return math.Abs(last-first) / first * 100
}

func (m *Measure) clone() *Measure {
	result := NewMeasure(m.codename, m.label)
	for year, value := range m.values {
		result.values[year] = value
	}
	return result
}

// merge overwrites the label and every year present in other.
func (m *Measure) merge(other *Measure) {
	m.label = other.label

	for year, value := range other.values {
		m.values[year] = value
	}
}

func (m *Measure) Equals(other *Measure) bool {
	if m.codename != other.codename || m.label != other.label || len(m.values) != len(other.values) {
		return false
	}

	for year, value := range m.values {
		ov, err := other.GetValue(year)
		if err != nil || ov != value {
			return false
		}
	}

	return true
}
