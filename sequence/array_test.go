package sequence_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-sequence/sequence"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *sequence.ArraySequence[int] { return sequence.New(ns...) }

func add(a, b int) int { return a + b }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// assertPanics runs fn and fails unless it panics with an error matching target.
func assertPanics(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic value = %v; want error wrapping %v", r, target)
		}
	}()
	fn()
}

type record struct {
	key    int
	origin string
}

func byKey(a, b record) int { return a.key - b.key }

// ─────────────────────────────────────────────────────────────────────────────
// Creators
// ─────────────────────────────────────────────────────────────────────────────

func TestSingleton(t *testing.T) {
	s := sequence.Singleton(3)
	if s.Length() != 1 || s.Nth(0) != 3 {
		t.Fatalf("Singleton(3) = %v", s.All())
	}
}

func TestTabulate(t *testing.T) {
	assertSlice(t, sequence.Tabulate(5, func(i int) int { return i }).All(), []int{0, 1, 2, 3, 4})
	assertSlice(t, sequence.Tabulate(5, func(i int) int { return 2*i + 1 }).All(), []int{1, 3, 5, 7, 9})
	assertSlice(t, sequence.Tabulate(3, func(int) string { return "Hello" }).All(), []string{"Hello", "Hello", "Hello"})
}

func TestTabulateProperty(t *testing.T) {
	f := func(i int) int { return i*i - 7 }
	for n := 0; n < 20; n++ {
		s := sequence.Tabulate(n, f)
		if s.Length() != n {
			t.Fatalf("Tabulate(%d).Length() = %d", n, s.Length())
		}
		for i := 0; i < n; i++ {
			if s.Nth(i) != f(i) {
				t.Fatalf("Tabulate(%d).Nth(%d) = %d; want %d", n, i, s.Nth(i), f(i))
			}
		}
	}
}

func TestTabulateStruct(t *testing.T) {
	s := sequence.TabulateFunc(3, func(i int) record { return record{key: i} }, byKey)
	assertSlice(t, s.All(), []record{{0, ""}, {1, ""}, {2, ""}})
	if !s.IsSorted() {
		t.Fatal("tabulated records should be sorted by key")
	}
}

func TestTabulateNegativeLength(t *testing.T) {
	assertPanics(t, sequence.ErrInvalidRange, func() { sequence.Tabulate(-1, func(i int) int { return i }) })
	assertPanics(t, sequence.ErrInvalidRange, func() { sequence.TabulateFunc(-3, func(i int) record { return record{key: i} }, byKey) })
	if s := sequence.Tabulate(0, func(i int) int { return i }); !s.IsEmpty() {
		t.Fatalf("Tabulate(0) = %v; want empty", s.All())
	}
}

func TestFromCopies(t *testing.T) {
	src := []int{1, 2, 3}
	s := sequence.From(src)
	src[0] = 99
	if s.Nth(0) != 1 {
		t.Fatal("From did not copy the slice")
	}
	out := s.All()
	out[1] = 99
	if s.Nth(1) != 2 {
		t.Fatal("All did not copy the slice")
	}
}

func TestEmpty(t *testing.T) {
	s := sequence.Empty[int]()
	if s.Length() != 0 || !s.IsEmpty() {
		t.Fatal("empty sequence should have Length 0")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Observers
// ─────────────────────────────────────────────────────────────────────────────

func TestNthOutOfRange(t *testing.T) {
	s := ints(1, 2, 3)
	assertPanics(t, sequence.ErrIndexOutOfRange, func() { s.Nth(3) })
	assertPanics(t, sequence.ErrIndexOutOfRange, func() { s.Nth(-1) })
}

func TestGet(t *testing.T) {
	s := ints(10, 20, 30)
	v, ok := s.Get(1)
	if !ok || v != 20 {
		t.Fatalf("Get(1) = %v, %v; want 20, true", v, ok)
	}
	if _, ok := s.Get(3); ok {
		t.Fatal("Get out of range should return false")
	}
}

func TestIsSorted(t *testing.T) {
	if !ints(1, 2, 3, 4, 5).IsSorted() {
		t.Fatal("expected sorted")
	}
	if ints(1, 2, 4, 3, 5).IsSorted() {
		t.Fatal("expected unsorted")
	}
	if !ints().IsSorted() || !ints(9).IsSorted() {
		t.Fatal("length 0 and 1 are sorted")
	}
}

func TestIsSortedStruct(t *testing.T) {
	s := sequence.FromFunc([]record{{-1, "a"}, {0, "b"}, {0, "a"}, {10, "c"}}, byKey)
	if !s.IsSorted() {
		t.Fatal("records with equal keys are still sorted")
	}
	bad := sequence.FromFunc([]record{{0, "a"}, {-1, "b"}}, byKey)
	if bad.IsSorted() {
		t.Fatal("expected unsorted records")
	}
}

func TestIsSortedWithoutComparator(t *testing.T) {
	s := sequence.FromFunc([]record{{2, ""}, {1, ""}}, nil)
	assertPanics(t, sequence.ErrNoOrder, func() { s.IsSorted() })

	var zero sequence.ArraySequence[int]
	if !zero.IsSorted() {
		t.Fatal("zero value is empty and therefore sorted")
	}
}

func TestReduce(t *testing.T) {
	if got := ints(5).Reduce(100, add); got != 5 {
		t.Fatalf("Reduce on [5] = %d; want 5", got)
	}
	if got := ints().Reduce(100, add); got != 100 {
		t.Fatalf("Reduce on [] = %d; want 100", got)
	}
	if got := ints(1, 2, 3, 4).Reduce(0, add); got != 10 {
		t.Fatalf("Reduce on [1 2 3 4] = %d; want 10", got)
	}
	sub := func(a, b int) int { return a - b }
	if got := ints(10, 3, 2).Reduce(0, sub); got != 5 {
		t.Fatalf("Reduce should fold left to right: got %d want 5", got)
	}
}

func TestEqualAndCompare(t *testing.T) {
	if !ints(1, 2, 3).Equal(ints(1, 2, 3)) {
		t.Fatal("expected equal")
	}
	if ints(1, 2, 3).Equal(ints(1, 2)) {
		t.Fatal("different lengths are not equal")
	}
	cases := []struct {
		a, b *sequence.ArraySequence[int]
		want int
	}{
		{ints(1, 2), ints(1, 3), -1},
		{ints(1, 2), ints(1, 2, 0), -1},
		{ints(2), ints(1, 9), 1},
		{ints(), ints(), 0},
	}
	for _, tc := range cases {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Fatalf("%v.Compare(%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestClone(t *testing.T) {
	s := ints(1, 2, 3)
	c := s.Clone()
	c.Update(0, 99)
	if s.Nth(0) != 1 {
		t.Fatal("Clone must not share storage")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Modifiers
// ─────────────────────────────────────────────────────────────────────────────

func TestSwap(t *testing.T) {
	s := ints(1, 2, 3)
	s.Swap(0, 2)
	assertSlice(t, s.All(), []int{3, 2, 1})
	s.Swap(1, 1)
	assertSlice(t, s.All(), []int{3, 2, 1})
	assertPanics(t, sequence.ErrIndexOutOfRange, func() { s.Swap(0, 3) })
}

func TestReverse(t *testing.T) {
	s := ints(1, 2, 3, 4, 5)
	s.Reverse()
	assertSlice(t, s.All(), []int{5, 4, 3, 2, 1})
	e := ints()
	e.Reverse()
	if e.Length() != 0 {
		t.Fatal("reversing empty sequence should stay empty")
	}
}

func TestAppend(t *testing.T) {
	s := ints(3, 1)
	other := ints(2, 0)
	s.Append(other)
	assertSlice(t, s.All(), []int{3, 1, 2, 0})
	if other.Length() != 0 {
		t.Fatal("Append should leave the operand empty")
	}
}

func TestAppendSelf(t *testing.T) {
	s := ints(1)
	assertPanics(t, sequence.ErrSameOperand, func() { s.Append(s) })
}

func TestMerge(t *testing.T) {
	s := ints(1, 3)
	other := ints(2, 3)
	s.Merge(other)
	assertSlice(t, s.All(), []int{1, 2, 3, 3})
	if other.Length() != 0 {
		t.Fatal("Merge should leave the operand empty")
	}
}

func TestMergeTieBreak(t *testing.T) {
	s := sequence.FromFunc([]record{{1, "first"}, {3, "first"}}, byKey)
	s.Merge(sequence.FromFunc([]record{{2, "second"}, {3, "second"}}, byKey))
	assertSlice(t, s.All(), []record{{1, "first"}, {2, "second"}, {3, "second"}, {3, "first"}})
}

func TestMergeEdges(t *testing.T) {
	s := ints()
	s.Merge(ints(1, 2))
	assertSlice(t, s.All(), []int{1, 2})

	s = ints(1, 2)
	s.Merge(ints())
	assertSlice(t, s.All(), []int{1, 2})

	s = ints(5, 6, 7)
	s.Merge(ints(1, 2))
	assertSlice(t, s.All(), []int{1, 2, 5, 6, 7})
}

func TestMergeLarge(t *testing.T) {
	evens := sequence.Tabulate(500, func(i int) int { return 2 * i })
	odds := sequence.Tabulate(500, func(i int) int { return 2*i + 1 })
	evens.Merge(odds)
	if evens.Length() != 1000 {
		t.Fatalf("Length = %d; want 1000", evens.Length())
	}
	for i := 0; i < 1000; i++ {
		if evens.Nth(i) != i {
			t.Fatalf("Nth(%d) = %d", i, evens.Nth(i))
		}
	}
}

func TestFilter(t *testing.T) {
	s := ints(1, 2, 3, 4, 5, 6)
	even := func(n int) bool { return n%2 == 0 }
	s.Filter(even)
	assertSlice(t, s.All(), []int{2, 4, 6})
	for i := 0; i < s.Length(); i++ {
		if !even(s.Nth(i)) {
			t.Fatalf("Filter kept %d", s.Nth(i))
		}
	}
	s.Filter(func(int) bool { return false })
	if s.Length() != 0 {
		t.Fatal("Filter rejecting everything should empty the sequence")
	}
}

func TestMap(t *testing.T) {
	before := []int{1, 2, 3}
	s := sequence.From(before)
	double := func(n int) int { return n * 2 }
	s.Map(double)
	for i, v := range before {
		if s.Nth(i) != double(v) {
			t.Fatalf("Map at %d: got %d want %d", i, s.Nth(i), double(v))
		}
	}
}

func TestUpdate(t *testing.T) {
	s := ints(1, 2, 3)
	s.Update(1, 20)
	assertSlice(t, s.All(), []int{1, 20, 3})
	assertPanics(t, sequence.ErrIndexOutOfRange, func() { s.Update(3, 0) })
}

func TestInject(t *testing.T) {
	s := ints(0, 0, 0, 0)
	s.Inject(sequence.At(1, 10), sequence.At(3, 30), sequence.At(1, 11))
	assertSlice(t, s.All(), []int{0, 11, 0, 30})
}

func TestInjectOutOfRangeLeavesSequenceUnchanged(t *testing.T) {
	s := ints(1, 2, 3)
	assertPanics(t, sequence.ErrIndexOutOfRange, func() {
		s.Inject(sequence.At(0, 9), sequence.At(5, 9))
	})
	assertSlice(t, s.All(), []int{1, 2, 3})
}

func TestSubseq(t *testing.T) {
	s := ints(0, 1, 2, 3, 4, 5)
	mid := s.Subseq(2, 4)
	assertSlice(t, mid.All(), []int{2, 3})
	assertSlice(t, s.All(), []int{0, 1, 4, 5})

	empty := s.Subseq(1, 1)
	if empty.Length() != 0 {
		t.Fatal("empty range should return empty sequence")
	}
	assertSlice(t, s.All(), []int{0, 1, 4, 5})
}

func TestSubseqNoAliasing(t *testing.T) {
	s := ints(0, 1, 2, 3)
	head := s.Subseq(0, 2)
	head.Append(ints(7, 7, 7))
	head.Map(func(int) int { return -1 })
	assertSlice(t, s.All(), []int{2, 3})
}

func TestSubseqInvalid(t *testing.T) {
	s := ints(1, 2, 3)
	assertPanics(t, sequence.ErrInvalidRange, func() { s.Subseq(2, 1) })
	assertPanics(t, sequence.ErrInvalidRange, func() { s.Subseq(0, 4) })
	assertPanics(t, sequence.ErrInvalidRange, func() { s.Subseq(-1, 2) })
	assertPanics(t, sequence.ErrInvalidRange, func() { s.Take(4) })
	assertPanics(t, sequence.ErrInvalidRange, func() { s.Drop(4) })
	assertSlice(t, s.All(), []int{1, 2, 3})
}

func TestTake(t *testing.T) {
	s := ints(1, 2, 3, 4, 5)
	head := s.Take(2)
	assertSlice(t, head.All(), []int{1, 2})
	assertSlice(t, s.All(), []int{3, 4, 5})
}

func TestDrop(t *testing.T) {
	s := ints(1, 2, 3, 4, 5)
	tail := s.Drop(2)
	assertSlice(t, tail.All(), []int{3, 4, 5})
	assertSlice(t, s.All(), []int{1, 2})
}

func TestTakeDropPartition(t *testing.T) {
	orig := []int{4, 8, 15, 16, 23, 42}
	for n := 0; n <= len(orig); n++ {
		s := sequence.From(orig)
		head := s.Take(n)
		head.Append(s)
		assertSlice(t, head.All(), orig)

		s = sequence.From(orig)
		tail := s.Drop(n)
		s.Append(tail)
		assertSlice(t, s.All(), orig)
	}
}

func TestScan(t *testing.T) {
	s := ints(1, 2, 3)
	total := s.Scan(0, add)
	assertSlice(t, s.All(), []int{0, 1, 3})
	if total != 6 {
		t.Fatalf("Scan total = %d; want 6", total)
	}
	if got := ints().Scan(7, add); got != 7 {
		t.Fatalf("Scan on empty = %d; want base", got)
	}
}

func TestScanIncl(t *testing.T) {
	s := ints(1, 2, 3)
	s.ScanIncl(0, add)
	assertSlice(t, s.All(), []int{1, 3, 6})
}

// ─────────────────────────────────────────────────────────────────────────────
// Consumers
// ─────────────────────────────────────────────────────────────────────────────

func TestSplitAt(t *testing.T) {
	orig := []int{1, 2, 3, 4, 5}
	for mid := 0; mid <= len(orig); mid++ {
		s := sequence.From(orig)
		left, right := s.SplitAt(mid)
		if left.Length() != mid || right.Length() != len(orig)-mid {
			t.Fatalf("SplitAt(%d) lengths = %d, %d", mid, left.Length(), right.Length())
		}
		if s.Length() != 0 {
			t.Fatal("SplitAt should leave the receiver empty")
		}
		left.Append(right)
		assertSlice(t, left.All(), orig)
	}
}

func TestSplitAtNoAliasing(t *testing.T) {
	left, right := ints(1, 2, 3, 4).SplitAt(2)
	left.Append(ints(9, 9))
	assertSlice(t, right.All(), []int{3, 4})
	right.Update(0, 0)
	assertSlice(t, left.All(), []int{1, 2, 9, 9})
}

func TestSplitAtInvalid(t *testing.T) {
	s := ints(1, 2)
	assertPanics(t, sequence.ErrInvalidRange, func() { s.SplitAt(3) })
	assertSlice(t, s.All(), []int{1, 2})
}

// ─────────────────────────────────────────────────────────────────────────────
// Interface
// ─────────────────────────────────────────────────────────────────────────────

// sumAll only relies on the Observer contract.
func sumAll(s sequence.Observer[int]) int {
	return sequence.Iterate(s, 0, add)
}

func reverseAndTake[S any](s sequence.Sequence[int, S], n int) S {
	s.Reverse()
	return s.Take(n)
}

func TestInterfaceUse(t *testing.T) {
	s := ints(1, 2, 3, 4)
	if sumAll(s) != 10 {
		t.Fatal("Iterate through Observer failed")
	}
	head := reverseAndTake[*sequence.ArraySequence[int]](s, 2)
	assertSlice(t, head.All(), []int{4, 3})
	assertSlice(t, s.All(), []int{2, 1})
}
