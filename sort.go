package polyspan

import (
	"cmp"
	"sort"
)

type sorter[T any] struct {
	s   Span[T]
	cmp func(a, b T) int
}

func (x sorter[T]) Len() int           { return x.s.Len() }
func (x sorter[T]) Less(i, j int) bool { return x.cmp(*x.s.Index(i), *x.s.Index(j)) < 0 }
func (x sorter[T]) Swap(i, j int)      { x.s.Swap(i, j) }

// Sort sorts the elements of s in ascending order, in place in the
// underlying storage.
func Sort[T cmp.Ordered](s Span[T]) {
	sort.Sort(sorter[T]{s: s, cmp: cmp.Compare[T]})
}

// SortFunc sorts s by cmp. For a span built with Embedded only the embedded
// T values move; the rest of each stored element stays where it was.
func SortFunc[T any](s Span[T], cmp func(a, b T) int) {
	sort.Sort(sorter[T]{s: s, cmp: cmp})
}

// SortStableFunc is SortFunc keeping equal elements in their original order.
func SortStableFunc[T any](s Span[T], cmp func(a, b T) int) {
	sort.Stable(sorter[T]{s: s, cmp: cmp})
}

func IsSorted[T cmp.Ordered](s ConstSpan[T]) bool {
	return IsSortedFunc(s, cmp.Compare[T])
}

func IsSortedFunc[T any](s ConstSpan[T], cmp func(a, b T) int) bool {
	for i := s.Len() - 1; i > 0; i-- {
		if cmp(s.Index(i), s.Index(i-1)) < 0 {
			return false
		}
	}
	return true
}
