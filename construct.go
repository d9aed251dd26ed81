package polyspan

import (
	"fmt"

	"github.com/rawbytedev/polyspan/internal/common"
)

// Of views the elements of s. Fixed size arrays are viewed with Of(arr[:]).
func Of[T any](s []T) Span[T] {
	return Span[T]{r: common.SliceRegion(s)}
}

// OfConst views the elements of s read-only.
func OfConst[T any](s []T) ConstSpan[T] {
	return ConstSpan[T]{r: common.SliceRegion(s)}
}

// OfString views the bytes of s. Strings are immutable, so only a
// ConstSpan can be built from one.
func OfString(s string) ConstSpan[byte] {
	return ConstSpan[byte]{r: common.StringRegion(s)}
}

// Values views its arguments read-only. Called with a literal list the
// view aliases the variadic argument array; called as Values(s...) it
// aliases s itself.
func Values[T any](v ...T) ConstSpan[T] {
	return OfConst(v)
}

// Embedded views a T embedded in every element of s. The stride is the size
// of U, so the view steps from one embedded T to the next.
//
// base must return a pointer into the U it is given, typically the address
// of an embedded field. It is only ever called on a zero U in scratch
// memory, never on the elements of s. Embedded panics with ErrBadProjection
// if the returned pointer does not lie within that U.
func Embedded[T, U any](s []U, base func(*U) *T) Span[T] {
	return Span[T]{r: common.SliceRegion(s).Shift(projection(base))}
}

// EmbeddedConst is Embedded for a read-only view.
func EmbeddedConst[T, U any](s []U, base func(*U) *T) ConstSpan[T] {
	return ConstSpan[T]{r: common.SliceRegion(s).Shift(projection(base))}
}

// Project re-views s through an embedded T. The result keeps the stride of
// s, which may already be larger than U when s was itself projected.
func Project[T, U any](s Span[U], base func(*U) *T) Span[T] {
	return Span[T]{r: s.r.Shift(projection(base))}
}

// ProjectConst is Project for read-only views.
func ProjectConst[T, U any](s ConstSpan[U], base func(*U) *T) ConstSpan[T] {
	return ConstSpan[T]{r: s.r.Shift(projection(base))}
}

// FromPointer views n values of T starting at p. The stored type is assumed
// to be T; the stride is the size of T.
func FromPointer[T any](p *T, n int) Span[T] {
	return Span[T]{r: common.PointerRegion(p, n)}
}

// FromPointerConst is FromPointer for a read-only view.
func FromPointerConst[T any](p *T, n int) ConstSpan[T] {
	return ConstSpan[T]{r: common.PointerRegion(p, n)}
}

// FromRange views [first, last). Both pointers must address the same
// array of T.
func FromRange[T any](first, last *T) (Span[T], error) {
	n, ok := common.Between(first, last)
	if !ok {
		return Span[T]{}, ErrBadRange
	}
	return FromPointer(first, n), nil
}

// FromRangeConst is FromRange for a read-only view.
func FromRangeConst[T any](first, last *T) (ConstSpan[T], error) {
	n, ok := common.Between(first, last)
	if !ok {
		return ConstSpan[T]{}, ErrBadRange
	}
	return FromPointerConst(first, n), nil
}

func projection[T, U any](base func(*U) *T) uintptr {
	off, err := common.FieldOffset(base)
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrBadProjection, err))
	}
	return off
}
