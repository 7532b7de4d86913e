// Package arr provides the slice-level primitives behind
// [github.com/hasbyte1/go-sequence/sequence].
//
// Every helper operates on a plain []T; no wrapper type is required:
//
//	s := []int{1, 2, 3}
//	total := arr.ScanExclusive(s, 0, func(a, b int) int { return a + b })
//	// s → [0 1 3], total → 6
//
// # Ownership
//
// Helpers that transform in place (Reverse, Retain, ScanExclusive,
// ScanInclusive) write into the slice they are given. Helpers that produce a
// new run of elements (Tabulate, Merge, and the removed part returned by
// Extract) always allocate, so their result never shares a backing array with
// an input.
//
// # Ordering
//
// Ordering is expressed with three-way comparators, func(a, b T) int, in the
// style of the standard library's slices.SortFunc. [Compare] supplies one for
// any [constraints.Ordered] type.
//
// [constraints.Ordered]: https://pkg.go.dev/golang.org/x/exp/constraints#Ordered
package arr
