package sequence

import (
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-sequence/arr"
)

// This file contains package-level generic functions for operations whose
// result has a different element type than their input.
//
// Go methods cannot introduce type parameters, so these take the input
// sequence as an argument and always build a new ArraySequence of the target
// type. Only Flatten consumes its input.

// Iterate folds fn over the elements of s from left to right:
// fn(...fn(fn(base, e0), e1)..., eN-1).
//
//	n := sequence.Iterate(words, 0, func(acc int, w string) int { return acc + len(w) })
func Iterate[T, U any](s Observer[T], base U, fn func(U, T) U) U {
	acc := base
	for i, n := 0, s.Length(); i < n; i++ {
		acc = fn(acc, s.Nth(i))
	}
	return acc
}

// Enumerate pairs every element of s with its index, preserving order.
// The result is ordered by index, then by the comparator of s.
//
//	sequence.Enumerate(sequence.New("a", "b")) // → [0: a, 1: b]
func Enumerate[T any](s *ArraySequence[T]) *ArraySequence[Indexed[T]] {
	out := make([]Indexed[T], len(s.items))
	for i, item := range s.items {
		out[i] = Indexed[T]{Index: i, Value: item}
	}
	return wrap(out, indexedCompare(s.cmp))
}

func indexedCompare[T any](cmp func(a, b T) int) func(a, b Indexed[T]) int {
	return func(a, b Indexed[T]) int {
		if c := arr.Compare(a.Index, b.Index); c != 0 || cmp == nil {
			return c
		}
		return cmp(a.Value, b.Value)
	}
}

// wrap takes ownership of items without copying.
func wrap[T any](items []T, cmp func(a, b T) int) *ArraySequence[T] {
	return &ArraySequence[T]{items: items, cmp: cmp}
}

// MapInto applies fn to every element of s and returns the results as a new
// sequence of U.
//
//	lengths := sequence.MapInto(words, func(w string) int { return len(w) })
func MapInto[T any, U constraints.Ordered](s Observer[T], fn func(T) U) *ArraySequence[U] {
	return MapIntoFunc(s, fn, arr.Compare[U])
}

// MapIntoFunc is [MapInto] for any result type; the result is ordered by
// cmp, which may be nil.
//
//	pts := sequence.MapIntoFunc(xs, func(x int) Point { return Point{X: x} },
//		func(a, b Point) int { return a.X - b.X })
func MapIntoFunc[T, U any](s Observer[T], fn func(T) U, cmp func(a, b U) int) *ArraySequence[U] {
	n := s.Length()
	out := make([]U, n)
	for i := 0; i < n; i++ {
		out[i] = fn(s.Nth(i))
	}
	return wrap(out, cmp)
}

// Zip combines two sequences element by element into Pairs, stopping at the
// shorter one. The result is ordered by First, then Second, when both inputs
// have comparators; otherwise it has none.
func Zip[A, B any](a *ArraySequence[A], b *ArraySequence[B]) *ArraySequence[Pair[A, B]] {
	n := min(len(a.items), len(b.items))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a.items[i], Second: b.items[i]}
	}
	var cmp func(x, y Pair[A, B]) int
	if a.cmp != nil && b.cmp != nil {
		cmpA, cmpB := a.cmp, b.cmp
		cmp = func(x, y Pair[A, B]) int {
			if c := cmpA(x.First, y.First); c != 0 {
				return c
			}
			return cmpB(x.Second, y.Second)
		}
	}
	return wrap(out, cmp)
}

// Flatten concatenates the inner sequences of s, in order, into one new
// sequence. Each inner sequence is consumed and left empty; nil inner
// sequences are skipped. The result takes the comparator of the first inner
// sequence that has one.
func Flatten[T any](s *ArraySequence[*ArraySequence[T]]) *ArraySequence[T] {
	total := 0
	var cmp func(a, b T) int
	for _, inner := range s.items {
		if inner == nil {
			continue
		}
		total += inner.Length()
		if cmp == nil {
			cmp = inner.cmp
		}
	}
	out := make([]T, 0, total)
	for _, inner := range s.items {
		if inner != nil {
			out = append(out, inner.release()...)
		}
	}
	return wrap(out, cmp)
}

// IteratePrefixes returns, for every index i, the fold of fn over base and
// elements [0, i), together with the fold over all of s. It is the
// non-destructive, type-changing form of [ArraySequence.Scan].
// The result has no comparator; install one with WithCompare if needed.
func IteratePrefixes[T, U any](s Observer[T], base U, fn func(U, T) U) (*ArraySequence[U], U) {
	n := s.Length()
	out := make([]U, n)
	acc := base
	for i := 0; i < n; i++ {
		out[i] = acc
		acc = fn(acc, s.Nth(i))
	}
	return wrap[U](out, nil), acc
}

// IteratePrefixesIncl returns, for every index i, the fold of fn over base
// and elements [0, i]. It is the non-destructive, type-changing form of
// [ArraySequence.ScanIncl].
func IteratePrefixesIncl[T, U any](s Observer[T], base U, fn func(U, T) U) *ArraySequence[U] {
	n := s.Length()
	out := make([]U, n)
	acc := base
	for i := 0; i < n; i++ {
		acc = fn(acc, s.Nth(i))
		out[i] = acc
	}
	return wrap[U](out, nil)
}
