package wikisort

import (
	"sort"
	"testing"
)

type tagged struct {
	key, seq int
}

func TestSortSmallRangeStable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		a := make([]tagged, n)
		for i := range a {
			a[i] = tagged{key: (n - i) % 3, seq: i}
		}
		orig := append([]tagged(nil), a...)
		less := func(x, y tagged) bool { return x.key < y.key }
		sortSmallRange(a, newRange(0, n), less)

		if !sort.SliceIsSorted(a, func(i, j int) bool { return a[i].key < a[j].key }) {
			t.Fatalf("n=%d: not sorted: %v", n, a)
		}
		// multiset preserved
		want := append([]tagged(nil), orig...)
		sort.Slice(want, func(i, j int) bool {
			if want[i].key != want[j].key {
				return want[i].key < want[j].key
			}
			return want[i].seq < want[j].seq
		})
		if !taggedEqual(a, want) {
			t.Fatalf("n=%d: not stable: got %v, want %v", n, a, want)
		}
	}
}

func taggedEqual(a, b []tagged) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
