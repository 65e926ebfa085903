package wikisort

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/shibukawa/wikisort/internal/gen"
	"github.com/shibukawa/wikisort/internal/reference"
)

func compareInt(a, b int) int { return a - b }

func TestSortBoundaryLengths(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 7, 8, 15, 16, 31, 32, 100, 1000} {
		rng := rand.New(rand.NewSource(int64(n)))
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(50)
		}
		want := append([]int(nil), a...)
		sort.Ints(want)

		Sort(a, compareInt)
		if !equalInts(a, want) {
			t.Fatalf("n=%d: Sort mismatch: got %v, want %v", n, a, want)
		}
	}
}

func TestSortConcreteScenarios(t *testing.T) {
	scenarios := map[string][]int{
		"empty":            {},
		"single":           {1},
		"all_equal":        {5, 5, 5, 5, 5, 5, 5, 5},
		"already_sorted":   {1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		"reverse_sorted":   {10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		"random_with_dups": {4, 1, 4, 2, 2, 8, 5, 5, 9, 0, 3, 1, 4},
	}
	for name, input := range scenarios {
		a := append([]int(nil), input...)
		want := append([]int(nil), input...)
		sort.Ints(want)
		Sort(a, compareInt)
		if !equalInts(a, want) {
			t.Errorf("%s: got %v, want %v", name, a, want)
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	a := []int{9, 3, 7, 1, 8, 2, 6, 4, 5, 0}
	Sort(a, compareInt)
	once := append([]int(nil), a...)
	Sort(a, compareInt)
	if !equalInts(a, once) {
		t.Fatalf("second sort changed a sorted slice: %v vs %v", a, once)
	}
}

func TestSortWithBufferAndDynamicBufferAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := make([]int, 500)
	for i := range base {
		base[i] = rng.Intn(1000)
	}
	want := append([]int(nil), base...)
	sort.Ints(want)

	noBuf := append([]int(nil), base...)
	Sort(noBuf, compareInt)

	withBuf := append([]int(nil), base...)
	SortWithBuffer(withBuf, compareInt, make([]int, 64))

	dynBuf := append([]int(nil), base...)
	SortWithDynamicBuffer(dynBuf, compareInt)

	if !equalInts(noBuf, want) {
		t.Error("Sort disagrees with reference")
	}
	if !equalInts(withBuf, want) {
		t.Error("SortWithBuffer disagrees with reference")
	}
	if !equalInts(dynBuf, want) {
		t.Error("SortWithDynamicBuffer disagrees with reference")
	}
}

func TestSortStability(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 600
	a := make([]gen.Keyed, n)
	for i := range a {
		a[i] = gen.Keyed{Key: rng.Intn(6), Seq: i}
	}
	Sort(a, gen.CompareKeyed)

	lastKey, lastSeq := -1, -1
	for _, v := range a {
		if v.Key < lastKey {
			t.Fatalf("not sorted by key at seq=%d", v.Seq)
		}
		if v.Key == lastKey && v.Seq < lastSeq {
			t.Fatalf("stability violated: key=%d seq=%d came after seq=%d", v.Key, v.Seq, lastSeq)
		}
		lastKey, lastSeq = v.Key, v.Seq
	}
}

func TestSortDifferentialAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 40; trial++ {
		n := rng.Intn(400)
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(20)
		}
		got := append([]int(nil), a...)
		Sort(got, compareInt)
		want := reference.Sort(a, compareInt)
		if !equalInts(got, want) {
			t.Fatalf("trial %d (n=%d): wikisort disagrees with reference:\ngot:  %v\nwant: %v", trial, n, got, want)
		}
	}
}

func TestSortVerifyPassesOption(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := make([]int, 300)
	for i := range a {
		a[i] = rng.Intn(80)
	}
	s := NewSorter(SortOptions[int]{VerifyPasses: true})
	s.Sort(a, compareInt)
	if !sort.IntsAreSorted(a) {
		t.Fatal("VerifyPasses sort produced unsorted output")
	}
}

type countingCounter struct{ n int }

func (c *countingCounter) Inc(event string) {
	if event == "compare" {
		c.n++
	}
}

func TestSortCounterObservesCompares(t *testing.T) {
	var c countingCounter
	a := []int{5, 3, 4, 1, 2}
	s := NewSorter(SortOptions[int]{Counter: &c})
	s.Sort(a, compareInt)
	if c.n == 0 {
		t.Fatal("Counter never observed a compare event")
	}
}

// TestSortCacheStarvedHighCardinality exercises Case B with no cache at
// all on large, fully-distinct uniform random input — every internal
// buffer pull should succeed close to its full target, and any pair too
// big for those buffers falls to mergeBlocked's recursive split rather
// than mergeInPlace on the whole pair.
func TestSortCacheStarvedHighCardinality(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	const n = 5000
	a := rng.Perm(n)
	want := append([]int(nil), a...)
	sort.Ints(want)

	Sort(a, compareInt)
	if !equalInts(a, want) {
		t.Fatal("cache-starved high-cardinality sort produced wrong output")
	}
}

// TestMergeBlockedRecursesWithSmallBuffers forces the recursive split in
// mergeBlocked by handing it buffers and a cache far smaller than A, on
// an A/B pair too large for any single buffer-backed call, and checks
// the result is correctly merged.
func TestMergeBlockedRecursesWithSmallBuffers(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const aLen, bLen = 200, 220
	merged := rng.Perm(aLen + bLen)
	a := append([]int(nil), merged...)
	sort.Ints(a[:aLen])
	sort.Ints(a[aLen:])

	want := append([]int(nil), a...)
	sort.Ints(want)

	lb := levelBuffers{blockSize: 8}
	mergeBlocked(a, newRange(0, aLen), newRange(aLen, aLen+bLen), intLess, lb, nil)

	if !equalInts(a, want) {
		t.Fatalf("mergeBlocked with no buffers at all: got %v, want %v", a, want)
	}
}
