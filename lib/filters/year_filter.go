package filters

import "fmt"

// YearFilter is an inclusive range of years. If any of the bounds is 0 there is no filter.
type YearFilter struct {
	Start uint
	End   uint
}

func NewYearFilter(start, end uint) *YearFilter {
	return &YearFilter{
		Start: start,
		End:   end,
	}
}

func (f *YearFilter) IsEmpty() bool {
	return f == nil || f.Start == 0 || f.End == 0
}

func (f *YearFilter) Matches(year uint) bool {
	if f.IsEmpty() {
		return true
	}

	return year >= f.Start && year <= f.End
}

func (f *YearFilter) String() string {
	if f.IsEmpty() {
		return "all"
	}

	if f.Start == f.End {
		return fmt.Sprintf("%v", f.Start)
	}

	return fmt.Sprintf("%v-%v", f.Start, f.End)
}
