// Package wikisort provides a stable, comparison-based, in-place sort.
//
// It is a bottom-up merge sort in which the merge step is replaced, once
// runs grow past the size of the available cache, by a block-rotation
// scheme that borrows two small regions of the array itself as working
// buffers. The result runs in O(n log n) time using O(1) auxiliary
// memory, plus an optional fixed-size scratch region whose size does not
// depend on the length of the input.
//
//	wikisort.Sort(values, func(a, b int) int { return a - b })
//
// Sort always behaves correctly; the cache only affects speed. Callers
// who want to hand in their own scratch region, or let the sort pick one
// dynamically, use SortWithBuffer or SortWithDynamicBuffer.
//
// This implementation was derived from the block-merge-sort described by
// Mike McFadden's WikiSort, itself based on the "merge in blocks" idea
// used by a number of low-memory stable sorts.
package wikisort
