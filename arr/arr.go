package arr

import "golang.org/x/exp/constraints"

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to,
// or greater than b. NaN sorts before every other value and equals itself,
// so floating point slices still get a total order.
func Compare[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}

// IsSorted reports whether every adjacent pair satisfies cmp(a, b) <= 0.
// Slices of length 0 or 1 are sorted.
func IsSorted[T any](items []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(items); i++ {
		if cmp(items[i-1], items[i]) > 0 {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Creation
// ─────────────────────────────────────────────────────────────────────────────

// Tabulate returns a slice of length n whose element i is fn(i).
// fn must depend only on its argument; callers must not rely on the order in
// which indices are visited.
func Tabulate[T any](n int, fn func(int) T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Fold folds items left to right starting from base.
func Fold[T, U any](items []T, base U, fn func(U, T) U) U {
	acc := base
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// Reduce folds items left to right seeded with the first element.
// base is returned only when items is empty; it is never combined with an
// element.
//
//	arr.Reduce([]int{5}, 100, add) // → 5
//	arr.Reduce([]int{}, 100, add)  // → 100
func Reduce[T any](items []T, base T, fn func(T, T) T) T {
	if len(items) == 0 {
		return base
	}
	return Fold(items[1:], items[0], fn)
}

// ScanExclusive replaces items[i] with the fold of fn over base and
// items[0:i], and returns the fold over the whole slice.
//
//	s := []int{1, 2, 3}
//	total := arr.ScanExclusive(s, 0, add) // s → [0 1 3], total → 6
func ScanExclusive[T any](items []T, base T, fn func(T, T) T) T {
	acc := base
	for i, item := range items {
		items[i] = acc
		acc = fn(acc, item)
	}
	return acc
}

// ScanInclusive replaces items[i] with the fold of fn over base and
// items[0:i+1].
//
//	s := []int{1, 2, 3}
//	arr.ScanInclusive(s, 0, add) // s → [1 3 6]
func ScanInclusive[T any](items []T, base T, fn func(T, T) T) {
	acc := base
	for i, item := range items {
		acc = fn(acc, item)
		items[i] = acc
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place transformation
// ─────────────────────────────────────────────────────────────────────────────

// Reverse reverses items in place.
func Reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

// Retain keeps, in order, the elements for which keep returns true and
// returns the shortened slice. The backing array is reused; the vacated tail
// is zeroed.
func Retain[T any](items []T, keep func(T) bool) []T {
	n := 0
	for _, item := range items {
		if keep(item) {
			items[n] = item
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}

// Extract removes items[lo:hi] and returns it as a freshly allocated slice
// together with the remaining elements, which reuse the original backing
// array. The two results never share storage.
// It panics like slice indexing if the range is invalid.
func Extract[T any](items []T, lo, hi int) (removed, rest []T) {
	removed = make([]T, hi-lo)
	copy(removed, items[lo:hi])
	n := copy(items[lo:], items[hi:])
	clear(items[lo+n:])
	return removed, items[:lo+n]
}

// ─────────────────────────────────────────────────────────────────────────────
// Merging
// ─────────────────────────────────────────────────────────────────────────────

// Merge merges two slices sorted under cmp into a new slice of combined
// length. The result never aliases left or right.
//
// An element of left is emitted only when it is strictly less than the next
// element of right; on ties the element of right goes first:
//
//	arr.Merge([]int{1, 3}, []int{2, 3}, arr.Compare[int]) // → [1 2 3 3], second 3 from right
//
// On unsorted input the result is some interleaving of the two slices.
func Merge[T any](left, right []T, cmp func(a, b T) int) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) < 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}
