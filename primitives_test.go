package wikisort

import "testing"

func intLess(a, b int) bool { return a < b }

func TestBlockSwap(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6}
	blockSwap(a, 0, 3, 3)
	want := []int{4, 5, 6, 1, 2, 3}
	if !equalInts(a, want) {
		t.Errorf("blockSwap: got %v, want %v", a, want)
	}
}

func TestReverseRange(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	reverseRange(a, newRange(1, 4))
	want := []int{1, 4, 3, 2, 5}
	if !equalInts(a, want) {
		t.Errorf("reverseRange: got %v, want %v", a, want)
	}
}

func TestRotate(t *testing.T) {
	for _, cacheSize := range []int{0, 1, 2, 100} {
		cache := make([]int, cacheSize)
		a := []int{1, 2, 3, 4, 5, 6, 7}
		rotate(a, newRange(0, 7), 3, cache)
		want := []int{4, 5, 6, 7, 1, 2, 3}
		if !equalInts(a, want) {
			t.Errorf("rotate cache=%d: got %v, want %v", cacheSize, a, want)
		}
	}
}

func TestRotateNoopAtBounds(t *testing.T) {
	a := []int{1, 2, 3}
	orig := append([]int(nil), a...)
	rotate(a, newRange(0, 3), 0, nil)
	rotate(a, newRange(0, 3), 3, nil)
	if !equalInts(a, orig) {
		t.Errorf("rotate with amount at bounds should be a no-op, got %v", a)
	}
}

func equalInts(a, b []int) bool {
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
