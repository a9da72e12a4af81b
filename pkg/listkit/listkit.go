// Package listkit extends a plain slice with chunking, splitting, merging,
// filtering, flattening, statistics and file serialization.
//
// List is a named slice type, so everything that works on a slice works on a List:
//
//	l := listkit.Of(3, 1, 2)
//	l = append(l, 4)
//	l[0] = 5
//	chunks, err := l.Chunk(2)
package listkit

import (
	"iter"
	"math/rand/v2"
	"reflect"
	"slices"

	"go.llib.dev/asuna"
	"go.llib.dev/asuna/pkg/chunkkit"
	"go.llib.dev/asuna/pkg/statkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

type List[T any] []T

func Of[T any](vs ...T) List[T] {
	return List[T](vs)
}

func (l List[T]) Len() int { return len(l) }

func (l List[T]) ToSlice() []T { return []T(l) }

func (l List[T]) Iter() iter.Seq[T] { return slices.Values(l) }

func (l *List[T]) Append(vs ...T) { *l = append(*l, vs...) }

// Chunk partitions the list into consecutive sublists of length size,
// the last one may be shorter.
func (l List[T]) Chunk(size int) ([]List[T], error) {
	chunks, err := chunkkit.Chunk([]T(l), size)
	if err != nil {
		return nil, err
	}
	return toLists(chunks), nil
}

// Split partitions the list into n sublists whose lengths differ by at most one.
// See chunkkit.Split for the details.
func (l List[T]) Split(n int) ([]List[T], error) {
	parts, err := chunkkit.Split([]T(l), n)
	if err != nil {
		return nil, err
	}
	return toLists(parts), nil
}

func toLists[T any](vss [][]T) []List[T] {
	out := make([]List[T], len(vss))
	for i, vs := range vss {
		out[i] = vs
	}
	return out
}

// Unique returns the values of the list without duplicates.
// Values are compared with reflect.DeepEqual semantics.
//
// With keepOrder the first occurrence of each value is kept in its original relative order.
// Without keepOrder the order of the result is unspecified.
func (l List[T]) Unique(keepOrder bool) List[T] {
	if keepOrder {
		return l.uniqueByScan()
	}
	return l.uniqueByHash()
}

func (l List[T]) uniqueByScan() List[T] {
	out := List[T]{}
	for _, v := range l {
		if !slices.ContainsFunc(out, func(seen T) bool { return equal(seen, v) }) {
			out = append(out, v)
		}
	}
	return out
}

// uniqueByHash collects values through a set when == agrees with reflect.DeepEqual for them,
// the rest falls back to a linear scan.
func (l List[T]) uniqueByHash() List[T] {
	var (
		set      = make(map[any]T)
		unhashed List[T]
	)
	for _, v := range l {
		if key := any(v); key != nil && hashable(reflect.TypeOf(key)) {
			set[key] = v
			continue
		}
		unhashed = append(unhashed, v)
	}
	out := make(List[T], 0, len(set)+len(unhashed))
	for _, v := range set {
		out = append(out, v)
	}
	return append(out, unhashed.uniqueByScan()...)
}

// hashable tells if == on values of typ means the same as reflect.DeepEqual.
// Pointers and interfaces compare by identity with ==, so they don't qualify.
func hashable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return hashable(typ.Elem())
	case reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			if !hashable(typ.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// UniqueOf is Unique with keepOrder for statically comparable types.
func UniqueOf[T comparable](l List[T]) List[T] {
	var (
		seen = make(map[T]struct{}, len(l))
		out  = List[T]{}
	)
	for _, v := range l {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Shuffle permutes the list in place.
func (l List[T]) Shuffle() {
	rand.Shuffle(len(l), func(i, j int) { l[i], l[j] = l[j], l[i] })
}

// ShuffleWith permutes the list in place using the given random source.
func (l List[T]) ShuffleWith(rnd *rand.Rand) {
	rnd.Shuffle(len(l), func(i, j int) { l[i], l[j] = l[j], l[i] })
}

// Flatten expands nested slices recursively into a single level list.
// Any slice type counts as nested, except []byte which is treated as a value.
func (l List[T]) Flatten() List[any] {
	out := List[any]{}
	for _, v := range l {
		out = flatten(out, any(v))
	}
	return out
}

var byteSliceType = reflect.TypeOf([]byte(nil))

func flatten(out List[any], v any) List[any] {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().ConvertibleTo(byteSliceType) {
		return append(out, v)
	}
	for i := 0; i < rv.Len(); i++ {
		out = flatten(out, rv.Index(i).Interface())
	}
	return out
}

func (l List[T]) Map(fn func(T) T) List[T] {
	return Map(l, fn)
}

func (l List[T]) Filter(fn func(T) bool) List[T] {
	return slicekit.Filter([]T(l), fn)
}

// Reduce folds the list from left to right with fn.
//
// When an initial value is given, folding starts from it.
// Otherwise the first element is the starting value,
// and reducing an empty list is an asuna.ErrEmptyInput error.
func (l List[T]) Reduce(fn func(acc T, v T) T, initial ...T) (T, error) {
	vs := l
	var acc T
	switch {
	case 0 < len(initial):
		acc = initial[0]
	case 0 < len(vs):
		acc, vs = vs[0], vs[1:]
	default:
		return acc, asuna.ErrEmptyInput.F("reduce of empty list with no initial value")
	}
	return Reduce(vs, acc, fn), nil
}

// Map transforms every element of the list into an output type.
func Map[O, T any](l List[T], fn func(T) O) List[O] {
	return slicekit.Map([]T(l), fn)
}

// Reduce folds the list from left to right, starting from initial.
func Reduce[O, T any](l List[T], initial O, fn func(O, T) O) O {
	return iterkit.Reduce1(l.Iter(), initial, fn)
}

// SearchAndReplace overwrites every element equal to search with replace.
func (l List[T]) SearchAndReplace(search, replace T) {
	for i, v := range l {
		if equal(v, search) {
			l[i] = replace
		}
	}
}

// Merge returns a new list with the elements of the list followed by the elements of others.
// Neither the list nor the arguments are modified.
func (l List[T]) Merge(others ...[]T) List[T] {
	return slicekit.Merge(append([][]T{[]T(l)}, others...)...)
}

// Statistics describes the values of a numeric list.
// See statkit.Describe for the failure cases.
func Statistics[T statkit.Number](l List[T]) (statkit.Summary, error) {
	return statkit.Describe([]T(l))
}

func equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
