package polyspan

import (
	"reflect"
	"slices"
	"sync"

	"github.com/rawbytedev/polyspan/internal/common"
)

// Layout describes how a view addresses its storage. The yaml tags let
// tools print it as is.
type Layout struct {
	Type        string        `yaml:"type"`
	Kind        string        `yaml:"kind"`
	ElemSize    uintptr       `yaml:"elem_size"`
	Align       int           `yaml:"align"`
	Stride      uintptr       `yaml:"stride"`
	Len         int           `yaml:"len"`
	Polymorphic bool          `yaml:"polymorphic"`
	Fields      []FieldLayout `yaml:"fields,omitempty"`
}

// FieldLayout describes one field of a struct element type.
type FieldLayout struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Offset uintptr `yaml:"offset"`
	Size   uintptr `yaml:"size"`
	Fixed  bool    `yaml:"fixed"`
}

// Padding returns the bytes each step skips past the viewed type.
func (l Layout) Padding() uintptr {
	if l.Stride < l.ElemSize {
		return 0
	}
	return l.Stride - l.ElemSize
}

type typePlan struct {
	name   string
	kind   reflect.Kind
	size   uintptr
	align  int
	fields []FieldLayout
}

var (
	plansMu sync.RWMutex
	plans   = make(map[reflect.Type]*typePlan)
)

func planFor(t reflect.Type) *typePlan {
	plansMu.RLock()
	if p, ok := plans[t]; ok {
		plansMu.RUnlock()
		return p
	}
	plansMu.RUnlock()

	plansMu.Lock()
	defer plansMu.Unlock()

	// Double-check
	if p, ok := plans[t]; ok {
		return p
	}
	p := &typePlan{name: t.String(), kind: t.Kind(), size: t.Size(), align: t.Align()}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			k := sf.Type.Kind()
			f := FieldLayout{Name: sf.Name, Kind: k.String(), Offset: sf.Offset, Size: sf.Type.Size()}
			if w := fixedWidth(k); w > 0 {
				f.Size, f.Fixed = uintptr(w), true
			}
			p.fields = append(p.fields, f)
		}
	}
	plans[t] = p
	return p
}

func layoutOf[T any](r common.Region) Layout {
	p := planFor(reflect.TypeFor[T]())
	return Layout{
		Type:        p.name,
		Kind:        p.kind.String(),
		ElemSize:    p.size,
		Align:       p.align,
		Stride:      r.Stride,
		Len:         r.Len(),
		Polymorphic: r.Stride != 0 && r.Stride != p.size,
		Fields:      slices.Clone(p.fields),
	}
}
