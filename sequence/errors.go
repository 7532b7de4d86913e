package sequence

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by the panics of ArraySequence operations.
//
// Invalid indices are caller errors, so the operations panic instead of
// returning an error. The panic value always wraps one of these sentinels and
// can be matched after a recover:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, sequence.ErrIndexOutOfRange) {
//	        // ...
//	    }
//	}()
var (
	// ErrIndexOutOfRange is raised when an index is outside [0, Length()-1].
	ErrIndexOutOfRange = errors.New("sequence: index out of range")

	// ErrInvalidRange is raised by Subseq, Take, Drop and SplitAt when the
	// requested bounds are not 0 <= lo <= hi <= Length().
	ErrInvalidRange = errors.New("sequence: invalid range")

	// ErrNotSorted is raised by Merge, in builds tagged seqdebug, when either
	// operand is not sorted ascending.
	ErrNotSorted = errors.New("sequence: merge operand is not sorted")

	// ErrNoOrder is raised by ordering operations on a sequence that was
	// built without a comparator.
	ErrNoOrder = errors.New("sequence: sequence has no comparator")

	// ErrSameOperand is raised when a sequence is passed as the consumed
	// operand of its own Append or Merge.
	ErrSameOperand = errors.New("sequence: operand must be a different sequence")
)

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, n))
	}
}

func checkRange(lo, hi, n int) {
	if lo < 0 || hi < lo || hi > n {
		panic(fmt.Errorf("%w: [%d:%d] with length %d", ErrInvalidRange, lo, hi, n))
	}
}
