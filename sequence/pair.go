package sequence

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Indexed is a value tagged with a position. [Enumerate] produces it and
// [ArraySequence.Inject] consumes it as an (index, value) overwrite.
type Indexed[T any] struct {
	Index int
	Value T
}

// At is shorthand for Indexed[T]{Index: i, Value: v}.
func At[T any](i int, v T) Indexed[T] {
	return Indexed[T]{Index: i, Value: v}
}

// String returns "i: value".
func (x Indexed[T]) String() string {
	return fmt.Sprintf("%d: %v", x.Index, x.Value)
}
