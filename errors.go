package polyspan

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("polyspan: index out of range")
	ErrBadProjection   = errors.New("polyspan: projection does not address a sub-object of the element")
	ErrBadRange        = errors.New("polyspan: pointer range is not a whole number of elements")
)

// RangeError reports a checked access outside the span. It matches
// ErrIndexOutOfRange under errors.Is.
type RangeError struct {
	Op    string // At, Subspan, First or Last
	Index int    // offending index, offset or count
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("polyspan: %s(%d) out of range for length %d", e.Op, e.Index, e.Len)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// checkIndex validates an element index: 0 <= i < n.
func checkIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &RangeError{Op: op, Index: i, Len: n}
	}
	return nil
}

// checkBound validates an offset or count: 0 <= i <= n.
func checkBound(op string, i, n int) error {
	if i < 0 || i > n {
		return &RangeError{Op: op, Index: i, Len: n}
	}
	return nil
}
