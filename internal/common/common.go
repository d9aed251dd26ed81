// Package common holds the pointer arithmetic behind polyspan. Nothing
// outside this package converts between unsafe.Pointer and uintptr or
// advances an address by hand.
package common

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"
)

// Region describes Len elements laid out Stride bytes apart, the first one
// starting at Base.
//
// Base is kept as an unsafe.Pointer so the garbage collector keeps the
// backing storage reachable. Only addresses of elements inside the region
// are ever materialised as pointers.
//
// An empty region cut from the end of a non-empty one cannot point at its
// own start, which may lie past the allocation. It keeps Base at the last
// element of its parent instead and marks itself with n == past; its
// cursors then start at position 1.
type Region struct {
	Base   unsafe.Pointer
	n      int
	Stride uintptr
}

const past = -1

// Len returns the number of elements in r.
func (r Region) Len() int { return max(r.n, 0) }

// start is the cursor position of element 0.
func (r Region) start() int {
	if r.n == past {
		return 1
	}
	return 0
}

// SliceRegion aliases the backing array of s. The stride is the size of U.
func SliceRegion[U any](s []U) Region {
	var z U
	if len(s) == 0 {
		return Region{Stride: unsafe.Sizeof(z)}
	}
	return Region{
		Base:   unsafe.Pointer(unsafe.SliceData(s)),
		n:      len(s),
		Stride: unsafe.Sizeof(z),
	}
}

// PointerRegion aliases n consecutive values of T starting at p.
func PointerRegion[T any](p *T, n int) Region {
	var z T
	if p == nil || n <= 0 {
		return Region{Stride: unsafe.Sizeof(z)}
	}
	return Region{Base: unsafe.Pointer(p), n: n, Stride: unsafe.Sizeof(z)}
}

// StringRegion aliases the bytes of s. The result must never be written
// through.
func StringRegion(s string) Region {
	if len(s) == 0 {
		return Region{Stride: 1}
	}
	return Region{Base: unsafe.Pointer(unsafe.StringData(s)), n: len(s), Stride: 1}
}

// Between returns the number of T values between first and last, and
// whether that distance is a non-negative whole number of elements.
func Between[T any](first, last *T) (int, bool) {
	var z T
	size := unsafe.Sizeof(z)
	lo, hi := uintptr(unsafe.Pointer(first)), uintptr(unsafe.Pointer(last))
	if hi < lo {
		return 0, false
	}
	if size == 0 {
		return 0, hi == lo
	}
	d := hi - lo
	if d%size != 0 {
		return 0, false
	}
	return int(d / size), true
}

// FieldOffset runs f against a zero U in scratch memory and reports the
// byte offset of the *T it returns. It fails when the result does not lie
// entirely inside the U value.
func FieldOffset[T, U any](f func(*U) *T) (uintptr, error) {
	u := new(U)
	p := f(u)
	var zt T
	size, tsize := unsafe.Sizeof(*u), unsafe.Sizeof(zt)
	start, addr := uintptr(unsafe.Pointer(u)), uintptr(unsafe.Pointer(p))
	runtime.KeepAlive(u)
	if p == nil {
		return 0, errors.New("projection returned nil")
	}
	if addr < start || addr-start > size || addr-start+tsize > size {
		return 0, fmt.Errorf("projection result lies outside the %d byte element", size)
	}
	return addr - start, nil
}

// Shift moves Base forward by off bytes without touching Len or Stride.
// off must address a sub-object of the element at Base.
func (r Region) Shift(off uintptr) Region {
	if r.Base == nil {
		return r
	}
	r.Base = unsafe.Add(r.Base, off)
	return r
}

// Addr returns the address of element i. i must lie in [0, Len).
func (r Region) Addr(i int) unsafe.Pointer {
	return unsafe.Add(r.Base, uintptr(i)*r.Stride)
}

// Elem is Addr with the bounds check a Go slice index would do.
func (r Region) Elem(i int) unsafe.Pointer {
	if uint(i) >= uint(r.Len()) {
		panic(fmt.Sprintf("polyspan: index out of range [%d] with length %d", i, r.Len()))
	}
	return r.Addr(i)
}

// Slice returns the n elements starting at off. Stride is kept, and so is
// the address of off even when n is zero.
// The caller has validated 0 <= off, 0 <= n and off+n <= Len.
func (r Region) Slice(off, n int) Region {
	switch {
	case n > 0:
		return Region{Base: r.Addr(off), n: n, Stride: r.Stride}
	case r.n <= 0:
		return r
	case off < r.n:
		return Region{Base: r.Addr(off), Stride: r.Stride}
	}
	return Region{Base: r.Addr(off - 1), n: past, Stride: r.Stride}
}

// Cursor is a position inside a region. The element it names sits at
// Base + Pos*Stride. Pos may name a slot just outside the region; such
// cursors are never turned into pointers.
type Cursor struct {
	Base   unsafe.Pointer
	Pos    int
	Stride uintptr
}

// At returns a cursor naming element pos of r.
func (r Region) At(pos int) Cursor {
	return Cursor{Base: r.Base, Pos: r.start() + pos, Stride: r.Stride}
}

// Join returns the region [first, last). It fails when the cursors cannot
// be related: their strides differ, only one of them has a base, last
// precedes first, first lies before its own base, or the gap is not a
// whole number of elements.
func Join(first, last Cursor) (Region, bool) {
	if first.Stride != last.Stride || first.Pos < 0 {
		return Region{}, false
	}
	var n int
	switch {
	case first.Base == last.Base:
		n = last.Pos - first.Pos
	case first.Base == nil || last.Base == nil:
		return Region{}, false
	case first.Stride == 0:
		if first.addr() != last.addr() {
			return Region{}, false
		}
	default:
		d := last.addr() - first.addr()
		if d%int(first.Stride) != 0 {
			return Region{}, false
		}
		n = d / int(first.Stride)
	}
	switch {
	case n < 0, first.Base == nil && n != 0:
		return Region{}, false
	case first.Base == nil:
		return Region{Stride: first.Stride}, true
	case n > 0:
		return Region{Base: first.Pointer(0), n: n, Stride: first.Stride}, true
	case first.Pos == 0:
		return Region{Base: first.Base, Stride: first.Stride}, true
	}
	return Region{Base: first.Pointer(-1), n: past, Stride: first.Stride}, true
}

// Move returns c advanced by n elements.
func (c Cursor) Move(n int) Cursor {
	c.Pos += n
	return c
}

// Pointer returns the address of the element c names, offset by n.
func (c Cursor) Pointer(n int) unsafe.Pointer {
	return unsafe.Add(c.Base, (c.Pos+n)*int(c.Stride))
}

// addr is the numeric address c names. It is only compared, never turned
// back into a pointer.
func (c Cursor) addr() int {
	return int(uintptr(c.Base)) + c.Pos*int(c.Stride)
}

// Distance returns c - o in elements.
func (c Cursor) Distance(o Cursor) int {
	if c.Base == o.Base {
		return c.Pos - o.Pos
	}
	if c.Stride == 0 {
		return 0
	}
	return (c.addr() - o.addr()) / int(c.Stride)
}

// Compare orders cursors by the address they name.
func (c Cursor) Compare(o Cursor) int {
	if c.Base == o.Base {
		return cmpInt(c.Pos, o.Pos)
	}
	return cmpInt(c.addr(), o.addr())
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
