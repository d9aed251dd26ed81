package polyspan

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/rawbytedev/polyspan/internal/common"
)

// Rest passed as the count to Subspan selects every element from the
// offset to the end.
const Rest = -1

// Span is a mutable view of Len() values of T spaced ElementSize() bytes
// apart. The zero value is an empty span.
type Span[T any] struct {
	r common.Region
}

func (s Span[T]) Len() int { return s.r.Len() }

func (s Span[T]) Empty() bool { return s.r.Len() == 0 }

// ElementSize returns the stride in bytes: the size of the stored element,
// which is larger than the size of T when T is embedded in it.
func (s Span[T]) ElementSize() uintptr { return s.r.Stride }

// Const returns a read-only view of the same elements.
func (s Span[T]) Const() ConstSpan[T] { return ConstSpan[T]{r: s.r} }

// Index returns a pointer to element i. Like a slice index expression it
// panics when i is out of range; use At for an error instead.
func (s Span[T]) Index(i int) *T { return (*T)(s.r.Elem(i)) }

func (s Span[T]) Get(i int) T { return *s.Index(i) }

func (s Span[T]) Set(i int, v T) { *s.Index(i) = v }

// At returns a pointer to element i, or an error matching
// ErrIndexOutOfRange when i is not in [0, Len()).
func (s Span[T]) At(i int) (*T, error) {
	if err := checkIndex("At", i, s.r.Len()); err != nil {
		return nil, err
	}
	return (*T)(s.r.Addr(i)), nil
}

func (s Span[T]) Front() *T { return s.Index(0) }

func (s Span[T]) Back() *T { return s.Index(s.r.Len() - 1) }

// Swap exchanges the T values of elements i and j. Bytes of the stored
// element outside T are left alone.
func (s Span[T]) Swap(i, j int) {
	a, b := s.Index(i), s.Index(j)
	*a, *b = *b, *a
}

func (s Span[T]) Begin() Iter[T] { return Iter[T]{c: s.r.At(0)} }

func (s Span[T]) End() Iter[T] { return Iter[T]{c: s.r.At(s.r.Len())} }

func (s Span[T]) RBegin() ReverseIter[T] { return ReverseIter[T]{it: s.End()} }

func (s Span[T]) REnd() ReverseIter[T] { return ReverseIter[T]{it: s.Begin()} }

func (s Span[T]) CBegin() ConstIter[T] { return s.Begin().Const() }

func (s Span[T]) CEnd() ConstIter[T] { return s.End().Const() }

func (s Span[T]) CRBegin() ConstReverseIter[T] { return s.RBegin().Const() }

func (s Span[T]) CREnd() ConstReverseIter[T] { return s.REnd().Const() }

// Subspan returns count elements starting at offset. A count of Rest, or
// one running past the end, is clamped to the remaining elements. It fails
// only when offset is not in [0, Len()].
func (s Span[T]) Subspan(offset, count int) (Span[T], error) {
	r, err := subspan(s.r, offset, count)
	return Span[T]{r: r}, err
}

// First returns the leading n elements.
func (s Span[T]) First(n int) (Span[T], error) {
	if err := checkBound("First", n, s.r.Len()); err != nil {
		return Span[T]{}, err
	}
	return Span[T]{r: s.r.Slice(0, n)}, nil
}

// Last returns the trailing n elements.
func (s Span[T]) Last(n int) (Span[T], error) {
	if err := checkBound("Last", n, s.r.Len()); err != nil {
		return Span[T]{}, err
	}
	return Span[T]{r: s.r.Slice(s.r.Len()-n, n)}, nil
}

// EqualView reports whether s and o hold equal elements in the same order.
func (s Span[T]) EqualView(o ConstSpan[T], eq func(a, b T) bool) bool {
	return EqualFunc(s.Const(), o, eq)
}

// All yields each index with a pointer to its element.
func (s Span[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < s.r.Len(); i++ {
			if !yield(i, (*T)(s.r.Addr(i))) {
				return
			}
		}
	}
}

func (s Span[T]) Values() iter.Seq[T] { return s.Const().Values() }

func (s Span[T]) Backward() iter.Seq2[int, T] { return s.Const().Backward() }

func (s Span[T]) Layout() Layout { return layoutOf[T](s.r) }

func (s Span[T]) String() string {
	return fmt.Sprintf("polyspan.Span[%v](len=%d, stride=%d)", reflect.TypeFor[T](), s.r.Len(), s.r.Stride)
}

func subspan(r common.Region, offset, count int) (common.Region, error) {
	if err := checkBound("Subspan", offset, r.Len()); err != nil {
		return common.Region{Stride: r.Stride}, err
	}
	rest := r.Len() - offset
	if count < 0 || count > rest {
		count = rest
	}
	return r.Slice(offset, count), nil
}
