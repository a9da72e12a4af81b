// Package dictkit provides Dict, an insertion ordered key/value mapping
// with merging, filtering, flattening, inverting, grouping, statistics and file serialization.
//
// The zero value of Dict is an empty dict ready to use.
// Operations that return a *Dict always return a new dict,
// operations without a result modify the receiver in place.
package dictkit

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
	"strings"

	"go.llib.dev/asuna"
	"go.llib.dev/asuna/pkg/statkit"
)

// Entry is a single key/value pair of a Dict.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type Dict[K comparable, V any] struct {
	keys []K
	vals map[K]V
	def  *V
}

func New[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{}
}

// FromMap makes a Dict out of a native map.
// The key order of the result follows the map iteration, so it is unspecified.
func FromMap[K comparable, V any](m map[K]V) *Dict[K, V] {
	d := New[K, V]()
	for k, v := range m {
		d.Set(k, v)
	}
	return d
}

// FromEntries makes a Dict out of the entries, in their order.
// When a key repeats, its later value wins but it keeps its first position.
func FromEntries[K comparable, V any](es ...Entry[K, V]) *Dict[K, V] {
	d := New[K, V]()
	for _, e := range es {
		d.Set(e.Key, e.Value)
	}
	return d
}

func (d *Dict[K, V]) Len() int { return len(d.keys) }

func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.vals[key]
	return ok
}

// Lookup returns the stored value of the key.
// The default value is not taken into account.
func (d *Dict[K, V]) Lookup(key K) (V, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// Get returns the value of the key.
// An absent key yields the default value when one is set with SetDefault,
// otherwise it is an asuna.ErrKeyNotFound error.
func (d *Dict[K, V]) Get(key K) (V, error) {
	if v, ok := d.vals[key]; ok {
		return v, nil
	}
	if d.def != nil {
		return *d.def, nil
	}
	var zero V
	return zero, asuna.ErrKeyNotFound.F("%v", key)
}

// Set stores the value under the key.
// A new key goes to the end of the key order, an existing key keeps its position.
func (d *Dict[K, V]) Set(key K, value V) {
	if d.vals == nil {
		d.vals = make(map[K]V)
	}
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = value
}

// Delete removes the listed keys. Absent keys are ignored.
func (d *Dict[K, V]) Delete(keys ...K) {
	for _, key := range keys {
		if _, ok := d.vals[key]; !ok {
			continue
		}
		delete(d.vals, key)
		if i := slices.Index(d.keys, key); 0 <= i {
			d.keys = slices.Delete(d.keys, i, i+1)
		}
	}
}

// SetDefault configures the fallback value that Get returns for absent keys.
// The stored entries are not affected.
func (d *Dict[K, V]) SetDefault(value V) { d.def = &value }

func (d *Dict[K, V]) ClearDefault() { d.def = nil }

func (d *Dict[K, V]) Keys() []K { return slices.Clone(d.keys) }

func (d *Dict[K, V]) Values() []V {
	vs := make([]V, 0, len(d.keys))
	for _, k := range d.keys {
		vs = append(vs, d.vals[k])
	}
	return vs
}

func (d *Dict[K, V]) Entries() []Entry[K, V] {
	es := make([]Entry[K, V], 0, len(d.keys))
	for _, k := range d.keys {
		es = append(es, Entry[K, V]{Key: k, Value: d.vals[k]})
	}
	return es
}

// ToMap returns the entries as a native map.
// The map is a copy, changing it won't affect the dict.
func (d *Dict[K, V]) ToMap() map[K]V {
	if d.vals == nil {
		return map[K]V{}
	}
	return maps.Clone(d.vals)
}

// Iter iterates over the entries in key order.
func (d *Dict[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range d.keys {
			if !yield(k, d.vals[k]) {
				return
			}
		}
	}
}

// Clone makes a copy of the dict, including its default value.
func (d *Dict[K, V]) Clone() *Dict[K, V] {
	out := d.derive()
	if d.def != nil {
		out.SetDefault(*d.def)
	}
	return out
}

func (d *Dict[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range d.keys {
		if 0 < i {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v:%v", k, d.vals[k])
	}
	sb.WriteString("}")
	return sb.String()
}

// derive copies the entries into a new dict, without the default value.
func (d *Dict[K, V]) derive() *Dict[K, V] {
	return d.filter(func(K, V) bool { return true })
}

func (d *Dict[K, V]) filter(pred func(K, V) bool) *Dict[K, V] {
	out := New[K, V]()
	for _, k := range d.keys {
		if v := d.vals[k]; pred(k, v) {
			out.Set(k, v)
		}
	}
	return out
}

// Merge returns a new dict with the entries of the receiver,
// overwritten by the entries of others in argument order.
// Nil arguments are skipped.
func (d *Dict[K, V]) Merge(others ...*Dict[K, V]) *Dict[K, V] {
	out := d.derive()
	for _, o := range others {
		if o == nil {
			continue
		}
		for k, v := range o.Iter() {
			out.Set(k, v)
		}
	}
	return out
}

// MergeMaps is Merge for native maps.
func (d *Dict[K, V]) MergeMaps(others ...map[K]V) *Dict[K, V] {
	out := d.derive()
	for _, o := range others {
		for k, v := range o {
			out.Set(k, v)
		}
	}
	return out
}

// Filter returns a new dict with the entries that satisfy pred.
func (d *Dict[K, V]) Filter(pred func(K, V) bool) *Dict[K, V] {
	return d.filter(pred)
}

// KeyValidation returns a new dict with the entries whose key satisfies pred.
func (d *Dict[K, V]) KeyValidation(pred func(K) bool) *Dict[K, V] {
	return d.filter(func(k K, _ V) bool { return pred(k) })
}

// MapValues returns a new dict with the same keys and the values transformed by fn.
func (d *Dict[K, V]) MapValues(fn func(V) V) *Dict[K, V] {
	return MapValues(d, fn)
}

// MapValues returns a new dict with the same keys and the values transformed into the output type.
func MapValues[K comparable, V, O any](d *Dict[K, V], fn func(V) O) *Dict[K, O] {
	out := New[K, O]()
	for k, v := range d.Iter() {
		out.Set(k, fn(v))
	}
	return out
}

// UpdateWithCondition replaces every value in place with fn(key, value).
func (d *Dict[K, V]) UpdateWithCondition(fn func(K, V) V) {
	for _, k := range d.keys {
		d.vals[k] = fn(k, d.vals[k])
	}
}

// SearchAndReplace replaces in place every value equal to search.
// Values are compared with reflect.DeepEqual semantics.
func (d *Dict[K, V]) SearchAndReplace(search, replace V) {
	for _, k := range d.keys {
		if reflect.DeepEqual(d.vals[k], search) {
			d.vals[k] = replace
		}
	}
}

// SortKeysFunc returns a new dict with the entries stably ordered by key using compare.
func (d *Dict[K, V]) SortKeysFunc(compare func(a, b K) int) *Dict[K, V] {
	es := d.Entries()
	slices.SortStableFunc(es, func(a, b Entry[K, V]) int { return compare(a.Key, b.Key) })
	return FromEntries(es...)
}

// SortValuesFunc returns a new dict with the entries stably ordered by value using compare.
func (d *Dict[K, V]) SortValuesFunc(compare func(a, b V) int) *Dict[K, V] {
	es := d.Entries()
	slices.SortStableFunc(es, func(a, b Entry[K, V]) int { return compare(a.Value, b.Value) })
	return FromEntries(es...)
}

// SortKeys returns a new dict with the entries in ascending key order.
func SortKeys[K cmp.Ordered, V any](d *Dict[K, V]) *Dict[K, V] {
	return d.SortKeysFunc(cmp.Compare[K])
}

// SortValues returns a new dict with the entries in ascending value order.
// Entries with equal values keep their relative order.
func SortValues[K comparable, V cmp.Ordered](d *Dict[K, V]) *Dict[K, V] {
	return d.SortValuesFunc(cmp.Compare[V])
}

// Invert swaps the keys and values of the dict.
// When several keys share a value, the key that comes last in key order wins.
func Invert[K, V comparable](d *Dict[K, V]) *Dict[V, K] {
	out := New[V, K]()
	for k, v := range d.Iter() {
		out.Set(v, k)
	}
	return out
}

// Reverse is an alias of Invert.
func Reverse[K, V comparable](d *Dict[K, V]) *Dict[V, K] {
	return Invert(d)
}

// GroupBy groups the entries by the result of fn.
// Groups appear in the order their first member was seen, members keep the key order.
// The result has an empty group as its default value, so Get on an unseen group yields no entries.
func GroupBy[G, K comparable, V any](d *Dict[K, V], fn func(K, V) G) *Dict[G, []Entry[K, V]] {
	out := New[G, []Entry[K, V]]()
	out.SetDefault([]Entry[K, V]{})
	for k, v := range d.Iter() {
		g := fn(k, v)
		group, _ := out.Lookup(g)
		out.Set(g, append(group, Entry[K, V]{Key: k, Value: v}))
	}
	return out
}

// Statistics describes the values of the dict.
// See statkit.Describe for the failure cases.
func Statistics[K comparable, V statkit.Number](d *Dict[K, V]) (statkit.Summary, error) {
	return statkit.Describe(d.Values())
}
