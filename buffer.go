package wikisort

// pullDirection records which edge of its donor range an internal buffer
// was gathered toward.
type pullDirection int

const (
	pullToA pullDirection = iota // gathered to the left end of an A run
	pullToB                      // gathered to the right end of a B run
)

// pullDescriptor records how one pass level's internal buffer was
// assembled: the sub-array it was pulled from (in its pre-extraction
// extent — donor's Start/End do not change across extraction, only its
// contents do), how many values were gathered, and which edge they were
// gathered toward.
type pullDescriptor struct {
	donor     Range
	count     int
	direction pullDirection
}

// bufferRange returns the buffer's current (post-extraction) location.
func (p *pullDescriptor) bufferRange() Range {
	if p.direction == pullToA {
		return newRange(p.donor.Start, p.donor.Start+p.count)
	}
	return newRange(p.donor.End-p.count, p.donor.End)
}

// restRange returns what remains of the donor range once the buffer has
// been carved out of it.
func (p *pullDescriptor) restRange() Range {
	if p.direction == pullToA {
		return newRange(p.donor.Start+p.count, p.donor.End)
	}
	return newRange(p.donor.Start, p.donor.End-p.count)
}

// countUniqueForward counts, without mutating a, how many mutually
// distinct values can be found in r scanning left to right from r.Start,
// stopping early once target is reached or r is exhausted.
func countUniqueForward[T any](a []T, r Range, target int, less func(x, y T) bool) int {
	if r.Length() == 0 {
		return 0
	}
	count := 0
	searchFrom := r.Start
	for count < target && searchFrom < r.End {
		next := findLastForward(a, a[searchFrom], newRange(searchFrom, r.End), maxInt(target-count, 1), less)
		count++
		searchFrom = next
	}
	return count
}

// countUniqueBackward is countUniqueForward's mirror, scanning from r.End.
func countUniqueBackward[T any](a []T, r Range, target int, less func(x, y T) bool) int {
	if r.Length() == 0 {
		return 0
	}
	count := 0
	searchFrom := r.End - 1
	for count < target && searchFrom >= r.Start {
		prev := findFirstBackward(a, a[searchFrom], newRange(r.Start, searchFrom+1), maxInt(target-count, 1), less)
		count++
		searchFrom = prev - 1
	}
	return count
}

// pullUniqueToFront gathers up to find mutually-distinct values from r,
// scanning left to right, moving them (in ascending order — the order a
// sorted run already presents them in) to r's own front edge while
// preserving the relative order of everything else in r. It returns how
// many were actually gathered, which may be less than find if r runs out
// of distinct values first.
func pullUniqueToFront[T any](a []T, r Range, find int, cache []T, less func(x, y T) bool) int {
	if r.Length() == 0 || find == 0 {
		return 0
	}
	gathered := r.Start
	searchFrom := r.Start
	count := 0
	for count < find && searchFrom < r.End {
		next := findLastForward(a, a[searchFrom], newRange(searchFrom, r.End), maxInt(find-count, 1), less)
		if amount := searchFrom - gathered; amount > 0 {
			rotate(a, newRange(gathered, searchFrom+1), amount, cache)
		}
		gathered++
		count++
		searchFrom = next
	}
	return count
}

// pullUniqueToBack is pullUniqueToFront's mirror: it gathers distinct
// values scanning right to left and moves them to r's back edge.
func pullUniqueToBack[T any](a []T, r Range, find int, cache []T, less func(x, y T) bool) int {
	if r.Length() == 0 || find == 0 {
		return 0
	}
	gathered := r.End
	searchFrom := r.End - 1
	count := 0
	for count < find && searchFrom >= r.Start {
		prev := findFirstBackward(a, a[searchFrom], newRange(r.Start, searchFrom+1), maxInt(find-count, 1), less)
		rotate(a, newRange(searchFrom, gathered), 1, cache)
		gathered--
		count++
		searchFrom = prev - 1
	}
	return count
}

// levelBuffers holds one pass level's buffer-sizing decision (spec step
// 1) and, once discovered, the single pull descriptor recording where
// the buffer(s) were extracted from (spec step 2-4). Buffer1 and buffer2
// are sub-views of one physically contiguous extracted region rather
// than two independently-discovered regions: both are pulled from
// whichever (A, B) pair first supplies enough distinct values, or the
// best partial donor if none supplies the full target.
type levelBuffers struct {
	blockSize  int
	bufferSize int
	needBoth   bool
	pull       *pullDescriptor
}

// discoverBuffers finds and extracts this pass level's internal
// buffer(s). It scans every (A, B) pair once, counting (without
// mutating) the distinct values available from A's front and B's back,
// and extracts from the first pair that reaches the full target — or,
// failing that, the pair that got closest, recalibrating bufferSize and
// blockSize to whatever was actually achieved (spec step 4).
func discoverBuffers[T any](a []T, it *wikiIterator, cache []T, less func(x, y T) bool) levelBuffers {
	level := it.length()
	blockSize := maxInt(isqrt(level), 1)
	bufferSize := level/blockSize + 1
	needBoth := blockSize > len(cache)

	target := bufferSize
	if needBoth {
		target = bufferSize * 2
	}

	it.begin()
	var best *pullDescriptor
	bestCount := 0
	for !it.finished() {
		A := it.nextRange()
		B := it.nextRange()

		if c := countUniqueForward(a, A, target, less); c > bestCount {
			bestCount = c
			best = &pullDescriptor{donor: A, count: c, direction: pullToA}
			if c >= target {
				break
			}
		}
		if c := countUniqueBackward(a, B, target, less); c > bestCount {
			bestCount = c
			best = &pullDescriptor{donor: B, count: c, direction: pullToB}
			if c >= target {
				break
			}
		}
	}

	lb := levelBuffers{blockSize: blockSize, bufferSize: bufferSize, needBoth: needBoth}
	if best == nil || bestCount == 0 {
		return lb
	}

	var extracted int
	if best.direction == pullToA {
		extracted = pullUniqueToFront(a, best.donor, bestCount, cache, less)
	} else {
		extracted = pullUniqueToBack(a, best.donor, bestCount, cache, less)
	}
	best.count = extracted
	lb.pull = best

	if extracted < bufferSize {
		lb.bufferSize = maxInt(extracted, 1)
		lb.blockSize = level/lb.bufferSize + 1
		lb.needBoth = false
	}
	return lb
}

// buffer1 is the first bufferSize elements of the extracted region.
func (lb levelBuffers) buffer1() Range {
	if lb.pull == nil {
		return Range{}
	}
	loc := lb.pull.bufferRange()
	end := minInt(loc.Start+lb.bufferSize, loc.End)
	return newRange(loc.Start, end)
}

// buffer2 is whatever follows buffer1 in the extracted region; empty
// unless this level needed (and found) a second buffer.
func (lb levelBuffers) buffer2() Range {
	if lb.pull == nil || !lb.needBoth {
		return Range{}
	}
	loc := lb.pull.bufferRange()
	start := minInt(loc.Start+lb.bufferSize, loc.End)
	return newRange(start, loc.End)
}

// trim removes the portion of A or B that currently holds this level's
// extracted buffer, if the buffer happens to have come from this exact
// pair. Every other pair is returned unchanged.
func (lb levelBuffers) trim(A, B Range) (Range, Range) {
	if lb.pull == nil {
		return A, B
	}
	p := lb.pull
	switch {
	case p.direction == pullToA && p.donor == A:
		return newRange(A.Start+p.count, A.End), B
	case p.direction == pullToB && p.donor == B:
		return A, newRange(B.Start, B.End-p.count)
	default:
		return A, B
	}
}

// redistribute sorts the extracted buffer and merges it back into the
// remainder of its donor range, restoring that whole donor range to a
// single sorted run. This is the spec's "find where each head element
// belongs and rotate it in" procedure, applied all at once via the same
// buffer-free merge primitive used elsewhere (the buffer, once sorted,
// and its already-sorted remainder are just two runs to merge).
func redistribute[T any](a []T, lb levelBuffers, less func(x, y T) bool) {
	if lb.pull == nil {
		return
	}
	p := lb.pull
	loc := p.bufferRange()
	insertionSortSmall(a, loc, less)
	rest := p.restRange()
	if p.direction == pullToA {
		mergeInPlace(a, loc, rest, less)
	} else {
		mergeInPlace(a, rest, loc, less)
	}
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	for x*x > n {
		x = (x + n/x) / 2
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}
