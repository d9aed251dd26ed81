package common

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type inner struct{ A, B int32 }

type outer struct {
	X  int64
	In inner
	Y  byte
}

func TestSliceRegion(t *testing.T) {
	s := []outer{{X: 1}, {X: 2}}
	r := SliceRegion(s)
	require.Equal(t, 2, r.Len())
	require.Equal(t, unsafe.Sizeof(outer{}), r.Stride)
	require.Equal(t, unsafe.Pointer(&s[1]), r.Addr(1))

	empty := SliceRegion([]outer{})
	require.Nil(t, empty.Base)
	require.Equal(t, unsafe.Sizeof(outer{}), empty.Stride)
}

func TestFieldOffset(t *testing.T) {
	off, err := FieldOffset(func(o *outer) *inner { return &o.In })
	require.NoError(t, err)
	require.Equal(t, unsafe.Offsetof(outer{}.In), off)

	off, err = FieldOffset(func(o *outer) *int32 { return &o.In.B })
	require.NoError(t, err)
	require.Equal(t, unsafe.Offsetof(outer{}.In)+unsafe.Offsetof(inner{}.B), off)

	_, err = FieldOffset(func(o *outer) *outer { return o })
	require.NoError(t, err)

	_, err = FieldOffset(func(*outer) *inner { return nil })
	require.Error(t, err)

	// Sixteen bytes starting at Y run past the end of outer.
	_, err = FieldOffset(func(o *outer) *[2]int64 { return (*[2]int64)(unsafe.Pointer(&o.Y)) })
	require.Error(t, err)
}

func TestShiftAndSlice(t *testing.T) {
	s := []outer{{In: inner{A: 1}}, {In: inner{A: 2}}, {In: inner{A: 3}}}
	r := SliceRegion(s).Shift(unsafe.Offsetof(outer{}.In))
	require.Equal(t, unsafe.Pointer(&s[2].In), r.Addr(2))

	sub := r.Slice(1, 2)
	require.Equal(t, r.Stride, sub.Stride)
	require.Equal(t, int32(2), (*inner)(sub.Addr(0)).A)

	tail := r.Slice(3, 0)
	require.Equal(t, unsafe.Pointer(&s[2].In), tail.Base)
	require.Equal(t, 0, tail.Len())
	require.Zero(t, tail.At(0).Compare(r.At(3)))
	require.Equal(t, tail, tail.Slice(0, 0))

	mid := r.Slice(1, 0)
	require.Equal(t, unsafe.Pointer(&s[1].In), mid.Base)
	require.Zero(t, mid.At(0).Compare(r.At(1)))

	require.Nil(t, Region{Stride: 8}.Shift(4).Base)
}

func TestElemBounds(t *testing.T) {
	r := SliceRegion([]int{1, 2})
	require.NotPanics(t, func() { r.Elem(1) })
	require.PanicsWithValue(t, "polyspan: index out of range [2] with length 2", func() { r.Elem(2) })
	require.Panics(t, func() { r.Elem(-1) })
}

func TestBetween(t *testing.T) {
	v := []int16{1, 2, 3, 4}
	n, ok := Between(&v[0], &v[3])
	require.True(t, ok)
	require.Equal(t, 3, n)

	_, ok = Between(&v[3], &v[0])
	require.False(t, ok)

	n, ok = Between(&v[2], &v[2])
	require.True(t, ok)
	require.Zero(t, n)
}

func TestCursor(t *testing.T) {
	r := SliceRegion([]outer{{X: 1}, {X: 2}, {X: 3}})
	begin, end := r.At(0), r.At(r.Len())
	require.Equal(t, 3, end.Distance(begin))
	require.Equal(t, -1, begin.Compare(end))
	require.Equal(t, 0, begin.Move(3).Compare(end))
	require.Equal(t, int64(2), (*outer)(begin.Pointer(1)).X)
	require.Equal(t, int64(3), (*outer)(end.Pointer(-1)).X)

	sub := r.Slice(1, 2)
	require.Equal(t, 1, sub.At(0).Distance(begin))
	require.Equal(t, 0, sub.At(2).Compare(end))
}

func TestJoin(t *testing.T) {
	v := []int32{1, 2, 3, 4}
	r := SliceRegion(v)

	j, ok := Join(r.At(1), r.At(3))
	require.True(t, ok)
	require.Equal(t, 2, j.Len())
	require.Equal(t, unsafe.Pointer(&v[1]), j.Addr(0))

	tail := r.Slice(4, 0)
	j, ok = Join(tail.At(0), r.At(4))
	require.True(t, ok)
	require.Zero(t, j.Len())
	require.Zero(t, j.At(0).Compare(r.At(4)))

	j, ok = Join(r.At(2), tail.At(0))
	require.True(t, ok)
	require.Equal(t, 2, j.Len())

	_, ok = Join(r.At(3), r.At(1))
	require.False(t, ok)
	_, ok = Join(r.At(-1), r.At(1))
	require.False(t, ok)
	_, ok = Join(Region{Stride: 4}.At(0), r.At(1))
	require.False(t, ok)
	_, ok = Join(r.At(0), SliceRegion([]int64{1}).At(1))
	require.False(t, ok)

	bytes := SliceRegion([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	_, ok = Join(Cursor{Base: bytes.Base, Stride: 4}, Cursor{Base: bytes.Addr(2), Stride: 4})
	require.False(t, ok)
}
