package polyspan

import "github.com/rawbytedev/polyspan/internal/common"

// Iter is a random access cursor into a Span. It is a plain value: copy it
// freely, compare it with Equal or Compare. Moving an iterator never
// checks bounds; dereferencing one outside its span is a caller error.
//
// Comparisons and Distance are meaningful only between iterators of the
// same span or of spans sub-viewed from it.
type Iter[T any] struct {
	c common.Cursor
}

// Const converts it to a read-only iterator at the same position.
func (it Iter[T]) Const() ConstIter[T] { return ConstIter[T]{c: it.c} }

func (it Iter[T]) Next() Iter[T] { return Iter[T]{c: it.c.Move(1)} }

func (it Iter[T]) Prev() Iter[T] { return Iter[T]{c: it.c.Move(-1)} }

// Add moves it by n elements, that is n*stride bytes.
func (it Iter[T]) Add(n int) Iter[T] { return Iter[T]{c: it.c.Move(n)} }

// Distance returns it - o in elements.
func (it Iter[T]) Distance(o Iter[T]) int { return it.c.Distance(o.c) }

func (it Iter[T]) Compare(o Iter[T]) int { return it.c.Compare(o.c) }

func (it Iter[T]) Equal(o Iter[T]) bool { return it.c.Compare(o.c) == 0 }

func (it Iter[T]) Less(o Iter[T]) bool { return it.c.Compare(o.c) < 0 }

func (it Iter[T]) LessEqual(o Iter[T]) bool { return it.c.Compare(o.c) <= 0 }

func (it Iter[T]) Greater(o Iter[T]) bool { return it.c.Compare(o.c) > 0 }

func (it Iter[T]) GreaterEqual(o Iter[T]) bool { return it.c.Compare(o.c) >= 0 }

// Ptr returns the address of the current element.
func (it Iter[T]) Ptr() *T { return (*T)(it.c.Pointer(0)) }

func (it Iter[T]) Get() T { return *it.Ptr() }

func (it Iter[T]) Set(v T) { *it.Ptr() = v }

// At returns the element n positions away, it.Add(n).Get().
func (it Iter[T]) At(n int) T { return *(*T)(it.c.Pointer(n)) }

// ConstIter is the read-only counterpart of Iter. An Iter converts to a
// ConstIter; there is no conversion back.
type ConstIter[T any] struct {
	c common.Cursor
}

func (it ConstIter[T]) Next() ConstIter[T] { return ConstIter[T]{c: it.c.Move(1)} }

func (it ConstIter[T]) Prev() ConstIter[T] { return ConstIter[T]{c: it.c.Move(-1)} }

func (it ConstIter[T]) Add(n int) ConstIter[T] { return ConstIter[T]{c: it.c.Move(n)} }

func (it ConstIter[T]) Distance(o ConstIter[T]) int { return it.c.Distance(o.c) }

func (it ConstIter[T]) Compare(o ConstIter[T]) int { return it.c.Compare(o.c) }

func (it ConstIter[T]) Equal(o ConstIter[T]) bool { return it.c.Compare(o.c) == 0 }

func (it ConstIter[T]) Less(o ConstIter[T]) bool { return it.c.Compare(o.c) < 0 }

func (it ConstIter[T]) LessEqual(o ConstIter[T]) bool { return it.c.Compare(o.c) <= 0 }

func (it ConstIter[T]) Greater(o ConstIter[T]) bool { return it.c.Compare(o.c) > 0 }

func (it ConstIter[T]) GreaterEqual(o ConstIter[T]) bool { return it.c.Compare(o.c) >= 0 }

func (it ConstIter[T]) Get() T { return *(*T)(it.c.Pointer(0)) }

func (it ConstIter[T]) At(n int) T { return *(*T)(it.c.Pointer(n)) }

// ReverseIter walks a Span from back to front. It wraps a forward iterator
// one past the element it yields, so RBegin wraps End and REnd wraps Begin.
type ReverseIter[T any] struct {
	it Iter[T]
}

// Base returns the wrapped forward iterator.
func (r ReverseIter[T]) Base() Iter[T] { return r.it }

func (r ReverseIter[T]) Const() ConstReverseIter[T] { return ConstReverseIter[T]{it: r.it.Const()} }

func (r ReverseIter[T]) Next() ReverseIter[T] { return ReverseIter[T]{it: r.it.Prev()} }

func (r ReverseIter[T]) Prev() ReverseIter[T] { return ReverseIter[T]{it: r.it.Next()} }

func (r ReverseIter[T]) Add(n int) ReverseIter[T] { return ReverseIter[T]{it: r.it.Add(-n)} }

func (r ReverseIter[T]) Distance(o ReverseIter[T]) int { return o.it.Distance(r.it) }

func (r ReverseIter[T]) Compare(o ReverseIter[T]) int { return o.it.Compare(r.it) }

func (r ReverseIter[T]) Equal(o ReverseIter[T]) bool { return r.it.Equal(o.it) }

func (r ReverseIter[T]) Less(o ReverseIter[T]) bool { return r.Compare(o) < 0 }

func (r ReverseIter[T]) LessEqual(o ReverseIter[T]) bool { return r.Compare(o) <= 0 }

func (r ReverseIter[T]) Greater(o ReverseIter[T]) bool { return r.Compare(o) > 0 }

func (r ReverseIter[T]) GreaterEqual(o ReverseIter[T]) bool { return r.Compare(o) >= 0 }

func (r ReverseIter[T]) Ptr() *T { return (*T)(r.it.c.Pointer(-1)) }

func (r ReverseIter[T]) Get() T { return *r.Ptr() }

func (r ReverseIter[T]) Set(v T) { *r.Ptr() = v }

func (r ReverseIter[T]) At(n int) T { return *(*T)(r.it.c.Pointer(-1 - n)) }

// ConstReverseIter is the read-only counterpart of ReverseIter.
type ConstReverseIter[T any] struct {
	it ConstIter[T]
}

func (r ConstReverseIter[T]) Base() ConstIter[T] { return r.it }

func (r ConstReverseIter[T]) Next() ConstReverseIter[T] { return ConstReverseIter[T]{it: r.it.Prev()} }

func (r ConstReverseIter[T]) Prev() ConstReverseIter[T] { return ConstReverseIter[T]{it: r.it.Next()} }

func (r ConstReverseIter[T]) Add(n int) ConstReverseIter[T] {
	return ConstReverseIter[T]{it: r.it.Add(-n)}
}

func (r ConstReverseIter[T]) Distance(o ConstReverseIter[T]) int { return o.it.Distance(r.it) }

func (r ConstReverseIter[T]) Compare(o ConstReverseIter[T]) int { return o.it.Compare(r.it) }

func (r ConstReverseIter[T]) Equal(o ConstReverseIter[T]) bool { return r.it.Equal(o.it) }

func (r ConstReverseIter[T]) Less(o ConstReverseIter[T]) bool { return r.Compare(o) < 0 }

func (r ConstReverseIter[T]) LessEqual(o ConstReverseIter[T]) bool { return r.Compare(o) <= 0 }

func (r ConstReverseIter[T]) Greater(o ConstReverseIter[T]) bool { return r.Compare(o) > 0 }

func (r ConstReverseIter[T]) GreaterEqual(o ConstReverseIter[T]) bool { return r.Compare(o) >= 0 }

func (r ConstReverseIter[T]) Get() T { return *(*T)(r.it.c.Pointer(-1)) }

func (r ConstReverseIter[T]) At(n int) T { return *(*T)(r.it.c.Pointer(-1 - n)) }

// Range returns the span [first, last) addressed by two iterators of the
// same span or of spans sub-viewed from it. It fails with ErrBadRange when
// last precedes first, the strides differ, or the two positions cannot be
// related at all.
func Range[T any](first, last Iter[T]) (Span[T], error) {
	r, ok := common.Join(first.c, last.c)
	if !ok {
		return Span[T]{}, ErrBadRange
	}
	return Span[T]{r: r}, nil
}
