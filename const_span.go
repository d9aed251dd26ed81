package polyspan

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/rawbytedev/polyspan/internal/common"
)

// ConstSpan is a read-only view. Elements are handed out by value; there
// is no way to obtain a *T or a Span from it.
type ConstSpan[T any] struct {
	r common.Region
}

func (s ConstSpan[T]) Len() int { return s.r.Len() }

func (s ConstSpan[T]) Empty() bool { return s.r.Len() == 0 }

// ElementSize returns the stride in bytes.
func (s ConstSpan[T]) ElementSize() uintptr { return s.r.Stride }

// Index returns element i, panicking when i is out of range.
func (s ConstSpan[T]) Index(i int) T { return *(*T)(s.r.Elem(i)) }

func (s ConstSpan[T]) Get(i int) T { return s.Index(i) }

// At returns element i, or an error matching ErrIndexOutOfRange.
func (s ConstSpan[T]) At(i int) (T, error) {
	if err := checkIndex("At", i, s.r.Len()); err != nil {
		var z T
		return z, err
	}
	return *(*T)(s.r.Addr(i)), nil
}

func (s ConstSpan[T]) Front() T { return s.Index(0) }

func (s ConstSpan[T]) Back() T { return s.Index(s.r.Len() - 1) }

func (s ConstSpan[T]) Begin() ConstIter[T] { return ConstIter[T]{c: s.r.At(0)} }

func (s ConstSpan[T]) End() ConstIter[T] { return ConstIter[T]{c: s.r.At(s.r.Len())} }

func (s ConstSpan[T]) RBegin() ConstReverseIter[T] { return ConstReverseIter[T]{it: s.End()} }

func (s ConstSpan[T]) REnd() ConstReverseIter[T] { return ConstReverseIter[T]{it: s.Begin()} }

func (s ConstSpan[T]) CBegin() ConstIter[T] { return s.Begin() }

func (s ConstSpan[T]) CEnd() ConstIter[T] { return s.End() }

func (s ConstSpan[T]) CRBegin() ConstReverseIter[T] { return s.RBegin() }

func (s ConstSpan[T]) CREnd() ConstReverseIter[T] { return s.REnd() }

// Subspan behaves like Span.Subspan.
func (s ConstSpan[T]) Subspan(offset, count int) (ConstSpan[T], error) {
	r, err := subspan(s.r, offset, count)
	return ConstSpan[T]{r: r}, err
}

func (s ConstSpan[T]) First(n int) (ConstSpan[T], error) {
	if err := checkBound("First", n, s.r.Len()); err != nil {
		return ConstSpan[T]{}, err
	}
	return ConstSpan[T]{r: s.r.Slice(0, n)}, nil
}

func (s ConstSpan[T]) Last(n int) (ConstSpan[T], error) {
	if err := checkBound("Last", n, s.r.Len()); err != nil {
		return ConstSpan[T]{}, err
	}
	return ConstSpan[T]{r: s.r.Slice(s.r.Len()-n, n)}, nil
}

func (s ConstSpan[T]) EqualView(o ConstSpan[T], eq func(a, b T) bool) bool {
	return EqualFunc(s, o, eq)
}

func (s ConstSpan[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.r.Len(); i++ {
			if !yield(i, *(*T)(s.r.Addr(i))) {
				return
			}
		}
	}
}

func (s ConstSpan[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.r.Len(); i++ {
			if !yield(*(*T)(s.r.Addr(i))) {
				return
			}
		}
	}
}

// Backward yields the elements from last to first with their indices.
func (s ConstSpan[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := s.r.Len() - 1; i >= 0; i-- {
			if !yield(i, *(*T)(s.r.Addr(i))) {
				return
			}
		}
	}
}

func (s ConstSpan[T]) Layout() Layout { return layoutOf[T](s.r) }

func (s ConstSpan[T]) String() string {
	return fmt.Sprintf("polyspan.ConstSpan[%v](len=%d, stride=%d)", reflect.TypeFor[T](), s.r.Len(), s.r.Stride)
}

// Equal reports whether a and b have the same length and equal elements.
// Addresses are not compared: two views over different storage holding the
// same values are equal.
func Equal[T comparable](a, b ConstSpan[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller supplied element comparison. The two
// views may have different element types.
func EqualFunc[T, U any](a ConstSpan[T], b ConstSpan[U], eq func(T, U) bool) bool {
	if a.r.Len() != b.r.Len() {
		return false
	}
	for i := 0; i < a.r.Len(); i++ {
		if !eq(*(*T)(a.r.Addr(i)), *(*U)(b.r.Addr(i))) {
			return false
		}
	}
	return true
}
