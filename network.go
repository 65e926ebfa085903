package wikisort

// sortSmallRange sorts a[r.Start:r.End] directly, without recursion. It is
// the driver's Step 1: ranges under min_level (4) are handled here instead
// of through the pass iterator.
func sortSmallRange[T any](a []T, r Range, less func(x, y T) bool) {
	switch r.Length() {
	case 0, 1:
		return
	case 2, 3:
		insertionSortSmall(a, r, less)
	default:
		sortNetwork(a, r, less)
	}
}

// insertionSortSmall is a plain stable insertion sort, used for ranges of
// length 2-3, where a sorting network would be overkill, and for sorting
// an internal buffer before it is redistributed.
func insertionSortSmall[T any](a []T, r Range, less func(x, y T) bool) {
	for i := r.Start + 1; i < r.End; i++ {
		v := a[i]
		j := i - 1
		for j >= r.Start && less(v, a[j]) {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}

// compareExchange networks for lengths 4 through 8. Each pair (i, j) names
// two offsets into the range to compare and, if out of order, swap. These
// are the standard optimal (or near-optimal) networks for their size.
var sortingNetworks = map[int][][2]int{
	4: {{0, 1}, {2, 3}, {0, 2}, {1, 3}, {1, 2}},
	5: {{0, 1}, {3, 4}, {2, 4}, {2, 3}, {0, 3}, {0, 2}, {1, 4}, {1, 3}, {1, 2}},
	6: {{1, 2}, {4, 5}, {0, 2}, {3, 5}, {0, 1}, {3, 4}, {2, 5}, {0, 3}, {1, 4}, {2, 4}, {1, 3}, {2, 3}},
	7: {
		{1, 2}, {3, 4}, {5, 6}, {0, 2}, {3, 5}, {4, 6}, {0, 1}, {4, 5}, {2, 6},
		{0, 4}, {1, 5}, {0, 3}, {2, 5}, {1, 3}, {2, 4}, {2, 3},
	},
	8: {
		{0, 1}, {2, 3}, {4, 5}, {6, 7}, {0, 2}, {1, 3}, {4, 6}, {5, 7}, {1, 2}, {5, 6},
		{0, 4}, {3, 7}, {1, 5}, {2, 6}, {1, 4}, {3, 6}, {2, 4}, {3, 5}, {3, 4},
	},
}

// sortNetwork applies the fixed compare-exchange schedule for a range of
// length 4-8. Stability is not automatic in a sorting network (a
// compare-exchange only knows "less than", not original position), so a
// local permutation vector order[] tracks where each slot's value started;
// a swap on an equal pair only fires if it would restore original order.
func sortNetwork[T any](a []T, r Range, less func(x, y T) bool) {
	n := r.Length()
	pairs, ok := sortingNetworks[n]
	if !ok {
		insertionSortSmall(a, r, less)
		return
	}
	var order [8]int
	for i := 0; i < n; i++ {
		order[i] = i
	}
	for _, p := range pairs {
		i, j := p[0], p[1]
		ai, aj := a[r.Start+i], a[r.Start+j]
		if less(aj, ai) || (order[i] > order[j] && !less(ai, aj)) {
			a[r.Start+i], a[r.Start+j] = aj, ai
			order[i], order[j] = order[j], order[i]
		}
	}
}
