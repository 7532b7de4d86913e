package sequence

// The Sequence contract is split by operation kind so that functions can ask
// for no more than they use. S is the implementing type itself: operations
// that consume or produce a sequence of the same representation are typed in
// terms of S, e.g. S = *ArraySequence[T].
//
// Creators (Singleton, Tabulate) and operations that change the element type
// (Enumerate, Iterate, MapInto, Zip, Flatten, IteratePrefixes) are
// package-level functions, because Go methods cannot take type parameters.

// Observer is the read-only part of a sequence.
type Observer[T any] interface {
	// Nth returns the element at index i. It panics if i is out of range.
	Nth(i int) T

	// Length returns the number of elements.
	Length() int

	// IsSorted reports whether every adjacent pair is in ascending order.
	// Sequences of length 0 or 1 are sorted.
	IsSorted() bool

	// Reduce folds the elements left to right seeded with the first one.
	// base is returned for an empty sequence and is otherwise unused.
	Reduce(base T, fn func(T, T) T) T

	// All returns a copy of the elements as a plain slice.
	All() []T
}

// Modifier is the mutating part of a sequence. Operations that accept an S
// consume it: the operand is left empty.
type Modifier[T, S any] interface {
	Swap(i, j int)
	Reverse()
	Append(other S)
	Merge(other S)
	Filter(keep func(T) bool)
	Map(fn func(T) T)
	Update(i int, v T)
	Inject(updates ...Indexed[T])

	// Subseq removes elements [lo, hi) and returns them as a new sequence.
	Subseq(lo, hi int) S

	// Take removes and returns the first n elements.
	Take(n int) S

	// Drop removes and returns the elements from index n onwards.
	Drop(n int) S

	// Scan is an exclusive prefix scan; it returns the fold over every
	// element.
	Scan(base T, fn func(T, T) T) T

	// ScanIncl is an inclusive prefix scan.
	ScanIncl(base T, fn func(T, T) T)
}

// Consumer splits a sequence into new, independently owned sequences.
type Consumer[S any] interface {
	// SplitAt returns elements [0, mid) and [mid, Length()). The receiver is
	// left empty.
	SplitAt(mid int) (S, S)
}

// Sequence is the full contract: every creator-independent operation over
// a finite, indexable, ordered collection of T.
type Sequence[T, S any] interface {
	Observer[T]
	Modifier[T, S]
	Consumer[S]
}

var _ Sequence[int, *ArraySequence[int]] = (*ArraySequence[int])(nil)
