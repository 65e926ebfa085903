package wikisort

// Counter is an optional capability a caller can inject to observe
// per-element events (comparator calls, and so on) without the core
// itself ever touching global or process-wide state.
type Counter interface {
	Inc(event string)
}

// SortOptions configures a Sorter. Scratch is a pre-allocated merge
// cache the sorter treats as working storage (its contents are not
// meaningful once Sort returns); it may be nil for a strictly in-place
// sort. VerifyPasses, when set, asserts after every pass that the array
// prefix covered so far is sorted — useful in tests, never needed in a
// correct build, so it costs nothing when left off. Counter, if set,
// is notified of every comparator invocation.
type SortOptions[T any] struct {
	Scratch      []T
	VerifyPasses bool
	Counter      Counter
}

// Sorter holds reusable sort configuration, letting repeated sorts over
// similarly-shaped data share the same scratch buffer and options.
type Sorter[T any] struct {
	opts SortOptions[T]
}

// NewSorter builds a Sorter from the given options.
func NewSorter[T any](opts SortOptions[T]) *Sorter[T] {
	return &Sorter[T]{opts: opts}
}

// Sort performs a stable, in-place sort of a using compare, a three-way
// comparator returning negative, zero, or positive for <, =, >. No merge
// cache is used; merges rely on internal buffers pulled from a itself and
// on the buffer-free merge primitives.
func Sort[T any](a []T, compare func(x, y T) int) {
	SortWithBuffer(a, compare, nil)
}

// SortWithBuffer is Sort with an explicit merge cache. scratch is used
// as working storage and is not meaningful afterward; passing more of it
// lets more of the sort take the faster cache-assisted merge path. A
// nil or empty scratch is equivalent to Sort.
func SortWithBuffer[T any](a []T, compare func(x, y T) int, scratch []T) {
	s := NewSorter(SortOptions[T]{Scratch: scratch})
	s.Sort(a, compare)
}

// SortWithDynamicBuffer is SortWithBuffer with the cache size chosen
// automatically: it tries (len(a)+1)/2 (which degrades all the way to
// an ordinary merge sort with full-size scratch), then
// floor(sqrt((len(a)+1)/2))+1, then a fixed 512, then 0 (strictly in
// place), picking the first rung at or below a conservative size cap so
// that a dynamic sort never silently allocates an unbounded cache for
// an enormous input.
func SortWithDynamicBuffer[T any](a []T, compare func(x, y T) int) {
	const sizeCap = 1 << 16
	half := (len(a) + 1) / 2
	size := half
	switch {
	case half <= sizeCap:
		size = half
	case isqrt(half)+1 <= sizeCap:
		size = isqrt(half) + 1
	case 512 <= sizeCap:
		size = 512
	default:
		size = 0
	}
	SortWithBuffer(a, compare, make([]T, size))
}

// Sort runs the configured sort over a.
func (s *Sorter[T]) Sort(a []T, compare func(x, y T) int) {
	less := func(x, y T) bool { return compare(x, y) < 0 }
	if c := s.opts.Counter; c != nil {
		wrapped := less
		less = func(x, y T) bool {
			c.Inc("compare")
			return wrapped(x, y)
		}
	}
	runSort(a, less, s.opts.Scratch, s.opts.VerifyPasses)
}

// runSort is the driver: Step 1 sorts every min_level-sized sub-run with
// a network; Step 2 repeatedly merges adjacent pairs of sub-runs,
// choosing a cache-assisted merge (Case A) or an in-place block merge
// (Case B) depending on whether the level's run length is below the
// cache size;
// Step 3 is simply the iterator reaching the array's full length.
func runSort[T any](a []T, less func(x, y T) bool, cache []T, verify bool) {
	n := len(a)
	if n < 4 {
		sortSmallRange(a, newRange(0, n), less)
		return
	}

	it := newWikiIterator(n, 4)
	for it.begin(); !it.finished(); {
		sortSmallRange(a, it.nextRange(), less)
	}

	cacheSize := len(cache)
	for {
		level := it.length()
		if level >= n {
			break
		}

		if level < cacheSize {
			mergeLevelWithCache(a, it, less, cache, cacheSize)
		} else {
			mergeLevelInPlace(a, it, less, cache)
		}

		if verify {
			assertSorted(a, newRange(0, minInt(it.length(), n)), less)
		}

		if !it.nextLevel() {
			break
		}
	}
}

// mergeLevelWithCache is the driver's Case A: the level's run length is
// below the cache size, so every A run fits in the cache. When four consecutive sub-runs also fit, two
// adjacent pairs are merged into the cache and then merged against each
// other back into the array in one combined step, advancing two pass
// levels at once.
func mergeLevelWithCache[T any](a []T, it *wikiIterator, less func(x, y T) bool, cache []T, cacheSize int) {
	level := it.length()
	n := len(a)

	if (level+1)*4 <= cacheSize && level*4 <= n {
		it.begin()
		for !it.finished() {
			A1 := it.nextRange()
			B1 := it.nextRange()
			A2 := it.nextRange()
			B2 := it.nextRange()
			mergeCachedQuad(a, A1, B1, A2, B2, less, cache)
		}
		it.nextLevel()
		return
	}

	it.begin()
	for !it.finished() {
		A := it.nextRange()
		B := it.nextRange()
		mergeCachedPair(a, A, B, less, cache)
	}
}

// mergeCachedPair merges one A/B pair using the cache, with fast paths
// for a pair that is fully reversed (rotated) or already in order (left
// as it is).
func mergeCachedPair[T any](a []T, A, B Range, less func(x, y T) bool, cache []T) {
	if A.Length() == 0 || B.Length() == 0 {
		return
	}
	if less(a[B.End-1], a[A.Start]) {
		rotate(a, newRange(A.Start, B.End), A.Length(), cache)
		return
	}
	if less(a[B.Start], a[A.End-1]) {
		copy(cache[:A.Length()], a[A.Start:A.End])
		mergeExternal(a, A, B, less, cache)
	}
}

// mergeCachedQuad merges two adjacent A/B pairs in one step: A1/B1 and
// A2/B2 are each merged into the cache, then the two cached halves are
// merged back into the array, which is equivalent to one extra pass
// level's worth of merging for the combined cost of copying once more
// through the cache.
func mergeCachedQuad[T any](a []T, A1, B1, A2, B2 Range, less func(x, y T) bool, cache []T) {
	half := A1.Length() + B1.Length()
	total := half + A2.Length() + B2.Length()

	if !less(a[B1.Start], a[A1.End-1]) && !less(a[B2.Start], a[A2.End-1]) && !less(a[A2.Start], a[B1.End-1]) {
		return
	}

	left := cache[:half]
	switch {
	case less(a[B1.End-1], a[A1.Start]):
		copy(left[:B1.Length()], a[B1.Start:B1.End])
		copy(left[B1.Length():], a[A1.Start:A1.End])
	case less(a[B1.Start], a[A1.End-1]):
		mergeInto(a, A1, B1, less, left)
	default:
		copy(left[:A1.Length()], a[A1.Start:A1.End])
		copy(left[A1.Length():], a[B1.Start:B1.End])
	}

	right := cache[half:total]
	switch {
	case less(a[B2.End-1], a[A2.Start]):
		copy(right[:B2.Length()], a[B2.Start:B2.End])
		copy(right[B2.Length():], a[A2.Start:A2.End])
	case less(a[B2.Start], a[A2.End-1]):
		mergeInto(a, A2, B2, less, right)
	default:
		copy(right[:A2.Length()], a[A2.Start:A2.End])
		copy(right[A2.Length():], a[B2.Start:B2.End])
	}

	dest := a[A1.Start : A1.Start+total]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			dest[k] = right[j]
			j++
		} else {
			dest[k] = left[i]
			i++
		}
		k++
	}
	for ; i < len(left); i++ {
		dest[k] = left[i]
		k++
	}
	for ; j < len(right); j++ {
		dest[k] = right[j]
		k++
	}
}

// mergeLevelInPlace is the driver's Case B: the level's run length is not
// below the cache size. One internal buffer (or two, if the cache is
// too small to ever help a single block) is pulled once for the whole
// level and reused by every pair, then redistributed once the level is
// fully merged.
func mergeLevelInPlace[T any](a []T, it *wikiIterator, less func(x, y T) bool, cache []T) {
	lb := discoverBuffers(a, it, cache, less)

	var pair Range
	it.begin()
	for !it.finished() {
		A := it.nextRange()
		B := it.nextRange()
		if p := lb.pull; p != nil && (p.donor == A || p.donor == B) {
			pair = newRange(A.Start, B.End)
		}
		mergePairInPlace(a, A, B, less, lb, cache)
	}

	// The donor run has been merged with its partner, so the buffer is
	// redistributed across that whole merged pair, not just the donor.
	if p := lb.pull; p != nil {
		lb.pull = &pullDescriptor{donor: pair, count: p.count, direction: p.direction}
	}
	redistribute(a, lb, less)
}

// mergePairInPlace merges one trimmed A/B pair via mergeBlocked, after
// the usual already-in-order and fully-reversed fast paths.
func mergePairInPlace[T any](a []T, A, B Range, less func(x, y T) bool, lb levelBuffers, cache []T) {
	A, B = lb.trim(A, B)
	if A.Length() == 0 || B.Length() == 0 {
		return
	}
	if less(a[B.End-1], a[A.Start]) {
		rotate(a, newRange(A.Start, B.End), A.Length(), cache)
		return
	}
	if !less(a[B.Start], a[A.End-1]) {
		return
	}
	mergeBlocked(a, A, B, less, lb, cache)
}

// mergeBlocked merges A and B while keeping every merge primitive call
// bounded: a buffer-backed merge only takes an A that fits the buffer or
// cache it uses, and the buffer-free mergeInPlace only an A of at most
// lb.blockSize elements. If A already fits whichever of buffer2, buffer1, or the
// cache is on offer, it merges directly. Otherwise it splits A at its
// midpoint, finds where that midpoint value lands in B, and rotates that
// split into place so the two halves become adjacent merge problems in
// their own right, applied recursively until A is blockSize-sized — the
// same bound discoverBuffers already sizes buffer1/buffer2 to, a pair's
// square root rather than its full length. Recursion bottoms out at
// blockSize-sized A, not size one, so depth stays O(log(|A|/blockSize));
// the rotate at each level costs O(|A|+|B|) summed across that level's
// nodes, since the B-ranges they touch partition B without overlap, so
// the pass stays well short of the mergeInPlace-everywhere quadratic
// blowup this replaces.
func mergeBlocked[T any](a []T, A, B Range, less func(x, y T) bool, lb levelBuffers, cache []T) {
	if A.Length() == 0 || B.Length() == 0 {
		return
	}
	if mergeWithBestBuffer(a, A, B, less, lb, cache) {
		return
	}
	if A.Length() <= lb.blockSize {
		mergeInPlace(a, A, B, less)
		return
	}

	mid := A.Start + A.Length()/2
	splitB := binaryFirst(a, a[mid], B, less)
	rotate(a, newRange(mid, splitB), A.End-mid, cache)
	newMid := mid + (splitB - A.End)

	leftA, leftB := newRange(A.Start, mid), newRange(mid, newMid)
	rightA, rightB := newRange(newMid, splitB), newRange(splitB, B.End)

	mergeBlocked(a, leftA, leftB, less, lb, cache)
	mergeBlocked(a, rightA, rightB, less, lb, cache)
}

// mergeWithBestBuffer merges A and B using whichever of buffer2 (tried
// first, since it leaves buffer1 untouched), buffer1, or the cache is
// large enough to hold all of A, and reports whether one was. It leaves
// a untouched and returns false when none of the three are big enough.
func mergeWithBestBuffer[T any](a []T, A, B Range, less func(x, y T) bool, lb levelBuffers, cache []T) bool {
	buf1 := lb.buffer1()
	buf2 := lb.buffer2()
	switch {
	case buf2.Length() >= A.Length():
		mergeInternal(a, A, B, less, buf2)
	case buf1.Length() >= A.Length():
		mergeInternal(a, A, B, less, buf1)
	case len(cache) >= A.Length():
		copy(cache[:A.Length()], a[A.Start:A.End])
		mergeExternal(a, A, B, less, cache)
	default:
		return false
	}
	return true
}

// assertSorted panics if a[r.Start:r.End] is not sorted under less. Used
// only when SortOptions.VerifyPasses is set.
func assertSorted[T any](a []T, r Range, less func(x, y T) bool) {
	for i := r.Start; i+1 < r.End; i++ {
		if less(a[i+1], a[i]) {
			panic("wikisort: pass invariant violated: range not sorted")
		}
	}
}
