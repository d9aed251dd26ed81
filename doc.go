// Package polyspan provides non-owning views over contiguous storage that
// may be read through a different type than the one actually stored.
//
// Iterating a []Circle through a *Shape pointer that is bumped by
// unsafe.Sizeof(Shape{}) lands in the middle of the second Circle. A Span
// records the stride of the stored type when it is built and uses it for
// every access, so the same loop visits each embedded Shape:
//
//	type Shape struct{ ID int32 }
//	type Circle struct {
//		Shape
//		Radius float64
//	}
//
//	circles := []Circle{{Shape{1}, 2}, {Shape{2}, 4}}
//	shapes := polyspan.Embedded(circles, func(c *Circle) *Shape { return &c.Shape })
//	for _, s := range shapes.All() {
//		fmt.Println(s.ID) // 1, 2
//	}
//
// Span[T] allows writes through the view; ConstSpan[T] does not, and a
// ConstSpan can never be turned back into a Span. Views derived from other
// views (Subspan, First, Last, Project) inherit the stride of their source.
//
// A view does not own its storage. It keeps the backing array reachable for
// the garbage collector, but it does not stop the owner from reslicing,
// appending or overwriting it; a view over a slice that was later grown
// by append keeps seeing the old array. Views carry no synchronization:
// concurrent readers are fine, concurrent writes to the storage are the
// caller's to coordinate.
package polyspan
