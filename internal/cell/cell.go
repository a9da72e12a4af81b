// Package cell converts between CSV cells and Go values.
package cell

import (
	"encoding/json"
	"fmt"
	"reflect"

	"go.llib.dev/asuna"
	"go.llib.dev/frameless/pkg/convkit"
)

// Format renders v as a single CSV cell.
// Scalars and slices are formatted with convkit, maps, structs and arrays are written as JSON.
func Format(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", nil
	}
	if isComposite(reflect.TypeOf(v)) {
		bs, err := json.Marshal(v)
		if err != nil {
			return "", asuna.ErrInvalidFormat.Wrap(err)
		}
		return string(bs), nil
	}
	out, err := convkit.Format(v)
	if err != nil {
		return "", asuna.ErrInvalidFormat.Wrap(err)
	}
	return out, nil
}

// Parse decodes a CSV cell into T.
//
// string and any targets receive the cell text as is,
// everything else is parsed with convkit, where maps, structs and arrays are read as JSON.
func Parse[T any](raw string) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = raw
		return out, nil
	case *any:
		*p = raw
		return out, nil
	}
	var opts []convkit.Option
	if isComposite(reflect.TypeOf(&out).Elem()) {
		opts = append(opts, convkit.Options{ParseFunc: json.Unmarshal})
	}
	out, err := convkit.Parse[T](raw, opts...)
	if err != nil {
		return out, asuna.ErrInvalidFormat.F("cell %q can't be decoded into %T: %w", raw, out, err)
	}
	return out, nil
}

func isComposite(typ reflect.Type) bool {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.Map, reflect.Struct, reflect.Array:
		return true
	default:
		return false
	}
}
