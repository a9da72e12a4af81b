package dictkit

import (
	"reflect"
	"slices"
	"strings"
)

const DefaultSeparator = "_"

// Flatten inlines nested string keyed dicts and maps into a single level dict,
// joining the nested keys with DefaultSeparator.
func Flatten[V any](d *Dict[string, V]) *Dict[string, any] {
	return FlattenSep(d, DefaultSeparator)
}

// FlattenSep inlines nested string keyed dicts and maps into a single level dict,
// joining the nested keys with sep.
//
// A value is nested when it is a Dict[string, X], a *Dict[string, X] or a map[string]X.
// Nested dicts are walked in key order, native maps in sorted key order.
// When two paths produce the same key, the one visited last wins.
// An empty nested container produces no entries.
func FlattenSep[V any](d *Dict[string, V], sep string) *Dict[string, any] {
	out := New[string, any]()
	for k, v := range d.Iter() {
		flattenInto(out, k, v, sep)
	}
	return out
}

type stringKeyedWalker interface {
	walkStringKeyed(yield func(key string, value any))
}

// walkStringKeyed has a value receiver so both Dict and *Dict values are recognised as nested.
func (d Dict[K, V]) walkStringKeyed(yield func(string, any)) {
	for _, k := range d.keys {
		yield(reflect.ValueOf(k).String(), d.vals[k])
	}
}

func flattenInto(out *Dict[string, any], prefix string, v any, sep string) {
	each, ok := nested(v)
	if !ok {
		out.Set(prefix, v)
		return
	}
	each(func(k string, v any) {
		if prefix != "" {
			k = prefix + sep + k
		}
		flattenInto(out, k, v, sep)
	})
}

func nested(v any) (func(yield func(string, any)), bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	if w, ok := v.(stringKeyedWalker); ok && isStringKeyedDict(rv) {
		return w.walkStringKeyed, true
	}
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return func(yield func(string, any)) {
			keys := rv.MapKeys()
			slices.SortFunc(keys, func(a, b reflect.Value) int {
				return strings.Compare(a.String(), b.String())
			})
			for _, k := range keys {
				yield(k.String(), rv.MapIndex(k).Interface())
			}
		}, true
	}
	return nil, false
}

// isStringKeyedDict tells if a Dict or *Dict value has string kind keys.
// The keys field is a []K, so its element kind is the key kind.
func isStringKeyedDict(rv reflect.Value) bool {
	t := rv.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	f, ok := t.FieldByName("keys")
	return ok && f.Type.Kind() == reflect.Slice && f.Type.Elem().Kind() == reflect.String
}
