package polyspan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterStridesOverEmbedded(t *testing.T) {
	v := []labelled{{shape: shape{ID: 10}}, {shape: shape{ID: 20}}, {shape: shape{ID: 30}}}
	s := Embedded(v, labelledShape)

	it := s.Begin()
	require.Equal(t, int32(10), it.Get().ID)
	require.Equal(t, int32(30), it.At(2).ID)
	it = it.Add(2)
	require.Equal(t, int32(30), it.Get().ID)
	it = it.Prev()
	it.Set(shape{ID: 21})
	require.Equal(t, int32(21), v[1].ID)
	require.Equal(t, 1, it.Distance(s.Begin()))
	require.Equal(t, -2, s.Begin().Distance(s.End().Prev()))
	require.Equal(t, 0, it.Compare(s.Begin().Next()))
}

func TestConstIter(t *testing.T) {
	s := Values(4, 5, 6)
	it := s.Begin()
	require.Equal(t, 4, it.Get())
	require.Equal(t, 6, it.At(2))
	require.True(t, it.Next().Next().Next().Equal(s.End()))
	require.True(t, s.End().Prev().Greater(it))
	require.True(t, s.End().GreaterEqual(s.End()))
	require.True(t, it.Less(s.End()))
	require.Equal(t, 3, s.End().Distance(it))
	require.Equal(t, -1, it.Compare(s.End()))
}

func TestReverseIter(t *testing.T) {
	v := []int{1, 2, 3, 4}
	s := Of(v)

	r := s.RBegin()
	require.Equal(t, 4, r.Get())
	require.Equal(t, 3, r.Next().Get())
	require.Equal(t, 1, r.At(3))
	require.Equal(t, 2, r.Add(2).Get())
	require.True(t, r.Add(4).Equal(s.REnd()))
	require.True(t, r.Less(s.REnd()))
	require.Equal(t, 4, s.REnd().Distance(r))
	require.True(t, r.Next().Prev().Equal(r))
	require.True(t, r.LessEqual(r))
	require.True(t, r.LessEqual(r.Next()))
	require.False(t, r.Next().LessEqual(r))
	require.True(t, s.REnd().Greater(r))
	require.False(t, r.Greater(r))
	require.True(t, s.REnd().GreaterEqual(s.REnd()))
	require.False(t, r.GreaterEqual(r.Add(2)))

	*r.Add(1).Ptr() = 30
	require.Equal(t, 30, v[2])

	cr := r.Const()
	require.Equal(t, 4, cr.Get())
	require.Equal(t, 30, cr.At(1))
	require.True(t, cr.Add(4).Equal(s.CREnd()))
	require.True(t, cr.Next().Prev().Equal(s.CRBegin()))
	require.True(t, cr.Less(s.CREnd()))
	require.Equal(t, 4, s.CREnd().Distance(cr))
	require.Equal(t, 1, s.CREnd().Compare(cr))
	require.True(t, cr.LessEqual(cr.Add(1)))
	require.False(t, s.CREnd().LessEqual(cr))
	require.True(t, s.CREnd().Greater(cr.Add(3)))
	require.False(t, cr.Greater(s.CRBegin()))
	require.True(t, cr.GreaterEqual(s.CRBegin()))
	require.False(t, cr.GreaterEqual(cr.Next()))
	require.True(t, cr.Base().Equal(s.CEnd()))
}

func TestReverseIterEmpty(t *testing.T) {
	s := OfConst([]int(nil))
	require.True(t, s.RBegin().Equal(s.REnd()))
	require.Zero(t, s.REnd().Distance(s.RBegin()))
}
