package wikisort

// Range is a half-open interval [Start, End) of array indices.
type Range struct {
	Start, End int
}

// Length returns End - Start.
func (r Range) Length() int {
	return r.End - r.Start
}

func (r Range) empty() bool {
	return r.Start >= r.End
}

func newRange(start, end int) Range {
	return Range{Start: start, End: end}
}
