// Package sequence provides a generic Sequence abstract data type and
// ArraySequence, its realization over one contiguous slice.
//
// # Overview
//
// A sequence is a finite, indexable, ordered collection whose operations fall
// into four groups:
//
//   - creators build a sequence: [New], [From], [Singleton], [Tabulate]
//   - observers inspect it: Nth, Length, IsSorted, Reduce, [Iterate], [Enumerate]
//   - modifiers change it in place or consume an operand: Swap, Reverse,
//     Append, Merge, Filter, Map, Update, Inject, Subseq, Take, Drop, Scan,
//     ScanIncl
//   - consumers split it into new sequences: SplitAt
//
// The contract is expressed by the [Sequence] interface (and its parts
// [Observer], [Modifier] and [Consumer]) so that other representations can
// satisfy it later.
//
//	s := sequence.Tabulate(5, func(i int) int { return i + 1 }) // [1 2 3 4 5]
//	total := s.Scan(0, func(a, b int) int { return a + b })    // [0 1 3 6 10], 15
//	tail := s.Drop(3)                                          // s → [0 1 3], tail → [6 10]
//
// # Ownership
//
// Every sequence owns its storage. Modifiers act on the receiver; operations
// named after removing elements (Subseq, Take, Drop) return the removed run
// and leave the rest in the receiver. Note that Take(n) returns the first n
// elements and the receiver keeps the suffix; it does not keep the taken part.
// Operands of Append and Merge, and the receiver of SplitAt, are left empty.
//
// # Errors
//
// Out-of-range indices and invalid ranges are caller errors and panic with an
// error wrapping [ErrIndexOutOfRange] or [ErrInvalidRange], like indexing a
// slice would. Use Get for a non-panicking lookup.
//
// Merge requires both operands to be sorted. The requirement is checked only
// when building with -tags seqdebug.
//
// # Type-changing operations
//
// Go methods cannot introduce type parameters, so operations whose result
// holds a different element type are package-level functions: [Enumerate],
// [Iterate], [MapInto], [Zip], [Flatten], [IteratePrefixes] and
// [IteratePrefixesIncl].
//
// # Concurrency
//
// Operations run synchronously on the calling goroutine and perform no
// locking. Several of them (Tabulate, Map, Iterate with an associative fn)
// could be parallelized by another realization; this one is sequential.
package sequence
