package sequence

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-sequence/arr"
)

// ArraySequence is a [Sequence] backed by one contiguous slice.
//
// The sequence owns its slice exclusively. Constructors copy their input,
// All returns a copy, and every operation that hands elements to another
// sequence (Append, Merge, Subseq, Take, Drop, SplitAt) transfers them so
// that no two live sequences share storage.
//
// Ordering operations (IsSorted, Merge, Equal, Compare) use the comparator
// the sequence was built with. Constructors for [constraints.Ordered] element
// types install one automatically; for other types use the *Func
// constructors or [ArraySequence.WithCompare]. Calling an ordering operation
// on a sequence without a comparator panics with [ErrNoOrder].
//
// An ArraySequence is not safe for concurrent use. Callers that share one
// across goroutines must serialize access themselves.
//
// # Creating a sequence
//
//	s := sequence.New(3, 1, 2)
//	s := sequence.From([]string{"a", "b"})
//	s := sequence.Tabulate(5, func(i int) int { return i * i })
//	s := sequence.FromFunc(points, func(a, b Point) int { return a.X - b.X })
type ArraySequence[T any] struct {
	items []T
	cmp   func(a, b T) int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a sequence from a variadic list of items (copied).
func New[T constraints.Ordered](items ...T) *ArraySequence[T] {
	return FromFunc(items, arr.Compare[T])
}

// From creates a sequence from a slice (the slice is copied).
func From[T constraints.Ordered](items []T) *ArraySequence[T] {
	return FromFunc(items, arr.Compare[T])
}

// FromFunc creates a sequence from a slice (copied) ordered by cmp.
// cmp may be nil for sequences that are never compared.
func FromFunc[T any](items []T, cmp func(a, b T) int) *ArraySequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &ArraySequence[T]{items: dst, cmp: cmp}
}

// Empty creates an empty sequence of type T.
func Empty[T constraints.Ordered]() *ArraySequence[T] {
	return &ArraySequence[T]{items: []T{}, cmp: arr.Compare[T]}
}

// Singleton creates a sequence holding exactly x.
func Singleton[T constraints.Ordered](x T) *ArraySequence[T] {
	return SingletonFunc(x, arr.Compare[T])
}

// SingletonFunc creates a sequence holding exactly x, ordered by cmp.
func SingletonFunc[T any](x T, cmp func(a, b T) int) *ArraySequence[T] {
	return &ArraySequence[T]{items: []T{x}, cmp: cmp}
}

// Tabulate creates a sequence of length n whose element i is fn(i).
// fn must be a pure function of the index; the order in which indices are
// visited is not part of the contract.
func Tabulate[T constraints.Ordered](n int, fn func(int) T) *ArraySequence[T] {
	return TabulateFunc(n, fn, arr.Compare[T])
}

// TabulateFunc is [Tabulate] with an explicit comparator.
// A negative n panics with [ErrInvalidRange].
func TabulateFunc[T any](n int, fn func(int) T, cmp func(a, b T) int) *ArraySequence[T] {
	checkRange(0, n, n)
	return &ArraySequence[T]{items: arr.Tabulate(n, fn), cmp: cmp}
}

// WithCompare installs cmp as the ordering of s and returns s.
func (s *ArraySequence[T]) WithCompare(cmp func(a, b T) int) *ArraySequence[T] {
	s.cmp = cmp
	return s
}

func (s *ArraySequence[T]) compare() func(a, b T) int {
	if s.cmp == nil {
		panic(ErrNoOrder)
	}
	return s.cmp
}

// derive returns a new sequence that takes ownership of items and shares the
// ordering of s.
func (s *ArraySequence[T]) derive(items []T) *ArraySequence[T] {
	return &ArraySequence[T]{items: items, cmp: s.cmp}
}

// release empties s and returns the slice it owned.
func (s *ArraySequence[T]) release() []T {
	items := s.items
	s.items = []T{}
	return items
}

// ─────────────────────────────────────────────────────────────────────────────
// Observers
// ─────────────────────────────────────────────────────────────────────────────

// Nth returns the element at index i. It panics with [ErrIndexOutOfRange]
// if i is not in [0, Length()-1].
func (s *ArraySequence[T]) Nth(i int) T {
	checkIndex(i, len(s.items))
	return s.items[i]
}

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (s *ArraySequence[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, false
	}
	return s.items[index], true
}

// Length returns the number of elements.
func (s *ArraySequence[T]) Length() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no elements.
func (s *ArraySequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// All returns a copy of the underlying slice.
func (s *ArraySequence[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// IsSorted reports whether every adjacent pair a, b satisfies a <= b.
func (s *ArraySequence[T]) IsSorted() bool {
	if len(s.items) < 2 {
		return true
	}
	return arr.IsSorted(s.items, s.compare())
}

// Reduce returns base for an empty sequence. Otherwise it folds fn left to
// right seeded with the first element, and base is not used:
//
//	sequence.New(5).Reduce(100, add) // → 5, not 105
func (s *ArraySequence[T]) Reduce(base T, fn func(T, T) T) T {
	return arr.Reduce(s.items, base, fn)
}

// Equal reports whether s and other have the same length and compare equal
// element by element under the comparator of s.
func (s *ArraySequence[T]) Equal(other *ArraySequence[T]) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	if len(s.items) == 0 {
		return true
	}
	cmp := s.compare()
	for i := range s.items {
		if cmp(s.items[i], other.items[i]) != 0 {
			return false
		}
	}
	return true
}

// Compare orders s and other lexicographically under the comparator of s.
// A proper prefix sorts first.
func (s *ArraySequence[T]) Compare(other *ArraySequence[T]) int {
	n := min(len(s.items), len(other.items))
	if n > 0 {
		cmp := s.compare()
		for i := 0; i < n; i++ {
			if c := cmp(s.items[i], other.items[i]); c != 0 {
				return c
			}
		}
	}
	switch {
	case len(s.items) < len(other.items):
		return -1
	case len(s.items) > len(other.items):
		return 1
	}
	return 0
}

// Clone returns an independent copy of s with the same ordering.
func (s *ArraySequence[T]) Clone() *ArraySequence[T] {
	return s.derive(s.All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Modifiers
// ─────────────────────────────────────────────────────────────────────────────

// Swap exchanges the elements at i and j.
func (s *ArraySequence[T]) Swap(i, j int) {
	checkIndex(i, len(s.items))
	checkIndex(j, len(s.items))
	s.items[i], s.items[j] = s.items[j], s.items[i]
}

// Reverse reverses the order of the elements in place.
func (s *ArraySequence[T]) Reverse() {
	arr.Reverse(s.items)
}

// Append moves every element of other to the end of s, in order.
// other is left empty.
func (s *ArraySequence[T]) Append(other *ArraySequence[T]) {
	if other == s {
		panic(ErrSameOperand)
	}
	s.items = append(s.items, other.release()...)
}

// Merge merges other into s. Both must be sorted ascending; afterwards s
// holds every element of both, sorted, and other is left empty.
//
// An element of s is placed first only when it is strictly less than the
// next element of other. At equal keys the elements of other come first:
//
//	s := sequence.New(1, 3) // 3 from s
//	s.Merge(sequence.New(2, 3))
//	// s → [1 2 3 3]; the first 3 came from other
//
// The sortedness of both operands, and of the result, is checked only in
// builds tagged seqdebug, where a violation panics with [ErrNotSorted].
// Otherwise merging unsorted operands yields an unspecified interleaving.
func (s *ArraySequence[T]) Merge(other *ArraySequence[T]) {
	if other == s {
		panic(ErrSameOperand)
	}
	cmp := s.compare()
	if debugChecks {
		assertSorted(s.items, cmp, "receiver")
		assertSorted(other.items, cmp, "operand")
	}
	s.items = arr.Merge(s.items, other.release(), cmp)
	if debugChecks {
		assertSorted(s.items, cmp, "result")
	}
}

func assertSorted[T any](items []T, cmp func(a, b T) int, what string) {
	if !arr.IsSorted(items, cmp) {
		panic(fmt.Errorf("%w: %s", ErrNotSorted, what))
	}
}

// Filter keeps, in order, only the elements for which keep returns true.
func (s *ArraySequence[T]) Filter(keep func(T) bool) {
	s.items = arr.Retain(s.items, keep)
}

// Map replaces every element e with fn(e), in place.
func (s *ArraySequence[T]) Map(fn func(T) T) {
	for i, item := range s.items {
		s.items[i] = fn(item)
	}
}

// Update overwrites the element at index i with v.
func (s *ArraySequence[T]) Update(i int, v T) {
	checkIndex(i, len(s.items))
	s.items[i] = v
}

// Inject applies the overwrites in the order given, so for a repeated
// index the last one wins. Every index is checked before any write; on an
// out-of-range index s is left unchanged.
func (s *ArraySequence[T]) Inject(updates ...Indexed[T]) {
	for _, u := range updates {
		checkIndex(u.Index, len(s.items))
	}
	for _, u := range updates {
		s.items[u.Index] = u.Value
	}
}

// Subseq removes the elements in [lo, hi) from s and returns them, in
// order, as a new sequence. s keeps everything outside the range in its
// original relative order.
func (s *ArraySequence[T]) Subseq(lo, hi int) *ArraySequence[T] {
	checkRange(lo, hi, len(s.items))
	removed, rest := arr.Extract(s.items, lo, hi)
	s.items = rest
	return s.derive(removed)
}

// Take removes and returns the first n elements; s keeps the rest.
// Equivalent to Subseq(0, n).
func (s *ArraySequence[T]) Take(n int) *ArraySequence[T] {
	return s.Subseq(0, n)
}

// Drop removes and returns the elements from index n onwards; s keeps the
// first n. Equivalent to Subseq(n, Length()).
func (s *ArraySequence[T]) Drop(n int) *ArraySequence[T] {
	return s.Subseq(n, len(s.items))
}

// Scan replaces element i with the fold of fn over base and elements
// [0, i), and returns the fold over the whole sequence.
//
//	s := sequence.New(1, 2, 3)
//	total := s.Scan(0, add) // s → [0 1 3], total → 6
func (s *ArraySequence[T]) Scan(base T, fn func(T, T) T) T {
	return arr.ScanExclusive(s.items, base, fn)
}

// ScanIncl replaces element i with the fold of fn over base and elements
// [0, i].
//
//	s := sequence.New(1, 2, 3)
//	s.ScanIncl(0, add) // s → [1 3 6]
func (s *ArraySequence[T]) ScanIncl(base T, fn func(T, T) T) {
	arr.ScanInclusive(s.items, base, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Consumers
// ─────────────────────────────────────────────────────────────────────────────

// SplitAt returns the elements [0, mid) and [mid, Length()) as two new
// sequences and leaves s empty.
func (s *ArraySequence[T]) SplitAt(mid int) (*ArraySequence[T], *ArraySequence[T]) {
	checkRange(0, mid, len(s.items))
	items := s.release()
	right := make([]T, len(items)-mid)
	copy(right, items[mid:])
	clear(items[mid:])
	return s.derive(items[:mid:mid]), s.derive(right)
}
