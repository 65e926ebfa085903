package wikisort

import "testing"

func TestRangeLength(t *testing.T) {
	cases := []struct {
		r    Range
		want int
	}{
		{newRange(0, 0), 0},
		{newRange(3, 3), 0},
		{newRange(0, 5), 5},
		{newRange(2, 9), 7},
	}
	for _, c := range cases {
		if got := c.r.Length(); got != c.want {
			t.Errorf("Range{%d,%d}.Length() = %d, want %d", c.r.Start, c.r.End, got, c.want)
		}
	}
}

func TestRangeEmpty(t *testing.T) {
	if !newRange(4, 4).empty() {
		t.Error("newRange(4, 4) should be empty")
	}
	if newRange(4, 5).empty() {
		t.Error("newRange(4, 5) should not be empty")
	}
}
