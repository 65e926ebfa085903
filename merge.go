package wikisort

// mergeInto merges the sorted ranges A and B of a into the disjoint output
// slice out, starting at out[0]. The left run wins ties (out takes A's
// element whenever B's current element does not compare strictly less),
// which is what makes the merge stable.
func mergeInto[T any](a []T, A, B Range, less func(x, y T) bool, out []T) {
	i, j, k := A.Start, B.Start, 0
	for i < A.End && j < B.End {
		if less(a[j], a[i]) {
			out[k] = a[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	for i < A.End {
		out[k] = a[i]
		i++
		k++
	}
	for j < B.End {
		out[k] = a[j]
		j++
		k++
	}
}

// mergeExternal merges A and B back into a starting at A.Start. The
// caller must already have copied a[A.Start:A.End] into cache[0:A.Length()]
// before calling; B is merged against that cached copy in place. The B
// remainder needs no copy since it is already where it belongs.
func mergeExternal[T any](a []T, A, B Range, less func(x, y T) bool, cache []T) {
	lenA := A.Length()
	i, j, k := 0, B.Start, A.Start
	for i < lenA && j < B.End {
		if less(a[j], cache[i]) {
			a[k] = a[j]
			j++
		} else {
			a[k] = cache[i]
			i++
		}
		k++
	}
	for i < lenA {
		a[k] = cache[i]
		i++
		k++
	}
}

// mergeInternal merges A and B using buf, a range inside a whose elements
// are mutually distinct under less, as working storage. A's content is
// swapped into buf first, displacing buf's old content into A's slot
// (from where the merge's swaps carry it back into buf).
// Every placement from then on is a swap rather than a copy: the element
// displaced from the destination slot lands in buf. After the merge buf
// holds its original multiset of values, just scrambled in order.
func mergeInternal[T any](a []T, A, B Range, less func(x, y T) bool, buf Range) {
	blockSwap(a, A.Start, buf.Start, A.Length())

	aCount, bCount, insert := 0, 0, 0
	if A.Length() > 0 && B.Length() > 0 {
		for {
			if !less(a[B.Start+bCount], a[buf.Start+aCount]) {
				a[buf.Start+aCount], a[A.Start+insert] = a[A.Start+insert], a[buf.Start+aCount]
				aCount++
				insert++
				if aCount >= A.Length() {
					break
				}
			} else {
				a[B.Start+bCount], a[A.Start+insert] = a[A.Start+insert], a[B.Start+bCount]
				bCount++
				insert++
				if bCount >= B.Length() {
					break
				}
			}
		}
	}
	blockSwap(a, buf.Start+aCount, A.Start+insert, A.Length()-aCount)
}

// mergeInPlace merges A and B with no external storage at all, by
// repeatedly locating where the head of A belongs among the remaining B
// elements, rotating it into place, and narrowing A past the run of
// elements equal to its old head. It is O(|A|*|B|) in the adversarial
// case but amortises to O(n) under the conditions the driver chooses it
// for (few unique values, bounded total rotation).
func mergeInPlace[T any](a []T, A, B Range, less func(x, y T) bool) {
	if A.Length() == 0 || B.Length() == 0 {
		return
	}
	for {
		mid := binaryFirst(a, a[A.Start], B, less)
		if mid > B.Start {
			rotate(a, newRange(A.Start, mid), A.Length(), nil)
			A = newRange(A.Start+(mid-B.Start), mid)
			B = newRange(mid, B.End)
		}
		if B.Length() == 0 || A.Length() == 0 {
			return
		}
		A.Start = binaryLast(a, a[A.Start], A, less)
		if A.Length() == 0 {
			return
		}
	}
}
