package wikisort

// wikiIterator is the pass iterator: a small finite-state record that
// partitions an array of the given size into successive levels of
// run-pairs whose lengths are integer approximations of the current
// power-of-two level, so every element belongs to exactly one pair per
// pass. It is a plain struct, not a class hierarchy, per the five public
// methods below; its fields are never touched from outside this file.
type wikiIterator struct {
	size, powerOfTwo int
	denominator      int
	numerator        int
	decimal          int
	numeratorStep    int
	decimalStep      int
}

// newWikiIterator seeds an iterator over [0, size) at the given minimum
// run level (the smallest sub-run length the first pass should produce).
// size must be >= minLevel.
func newWikiIterator(size, minLevel int) *wikiIterator {
	it := &wikiIterator{size: size}
	it.powerOfTwo = floorPowerOfTwo(size)
	it.denominator = it.powerOfTwo / minLevel
	it.numeratorStep = size % it.denominator
	it.decimalStep = size / it.denominator
	it.begin()
	return it
}

// begin resets the iterator to the start of its current level.
func (it *wikiIterator) begin() {
	it.numerator = 0
	it.decimal = 0
}

// nextRange emits the next sub-run of the current level.
func (it *wikiIterator) nextRange() Range {
	start := it.decimal

	it.decimal += it.decimalStep
	it.numerator += it.numeratorStep
	if it.numerator >= it.denominator {
		it.numerator -= it.denominator
		it.decimal++
	}

	return newRange(start, it.decimal)
}

// finished reports whether the current level has been fully walked.
func (it *wikiIterator) finished() bool {
	return it.decimal >= it.size
}

// nextLevel doubles the logical run size for the next pass. It returns
// false once the run size has grown to cover the whole array, at which
// point the array is sorted and no further passes are needed.
func (it *wikiIterator) nextLevel() bool {
	it.decimalStep += it.decimalStep
	it.numeratorStep += it.numeratorStep
	if it.numeratorStep >= it.denominator {
		it.numeratorStep -= it.denominator
		it.decimalStep++
	}
	return it.decimalStep < it.size
}

// length returns the current pass's run length (decimalStep).
func (it *wikiIterator) length() int {
	return it.decimalStep
}

func floorPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}
