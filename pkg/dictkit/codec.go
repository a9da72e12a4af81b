package dictkit

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"strconv"

	"go.llib.dev/asuna"
	"go.llib.dev/asuna/internal/cell"
	"go.llib.dev/asuna/pkg/filekit"
	"gopkg.in/yaml.v3"
)

// SerializeToJSON writes the dict as a JSON object to path, overwriting the file.
// The object members follow the key order of the dict.
func (d *Dict[K, V]) SerializeToJSON(ctx context.Context, path string, opts ...filekit.Option) error {
	return filekit.WriteJSON(ctx, path, d, opts...)
}

// DeserializeFromJSON reads a JSON object from path and merges its members into the dict.
// On failure the dict is left untouched.
func (d *Dict[K, V]) DeserializeFromJSON(ctx context.Context, path string) error {
	var tmp Dict[K, V]
	if err := filekit.ReadJSON(ctx, path, &tmp); err != nil {
		return err
	}
	d.update(&tmp)
	return nil
}

func (d *Dict[K, V]) SerializeToYAML(ctx context.Context, path string, opts ...filekit.Option) error {
	return filekit.WriteYAML(ctx, path, d, opts...)
}

func (d *Dict[K, V]) DeserializeFromYAML(ctx context.Context, path string) error {
	var tmp Dict[K, V]
	if err := filekit.ReadYAML(ctx, path, &tmp); err != nil {
		return err
	}
	d.update(&tmp)
	return nil
}

// SerializeToCSV writes the dict as a single CSV row of alternating keys and values:
//
//	k1,v1,k2,v2
func (d *Dict[K, V]) SerializeToCSV(ctx context.Context, path string, opts ...filekit.Option) error {
	row := make([]string, 0, 2*d.Len())
	for k, v := range d.Iter() {
		kc, err := cell.Format(k)
		if err != nil {
			return err
		}
		vc, err := cell.Format(v)
		if err != nil {
			return err
		}
		row = append(row, kc, vc)
	}
	return filekit.WriteCSVRow(ctx, path, row, opts...)
}

// DeserializeFromCSV reads every row of the CSV file as alternating keys and values,
// and merges them into the dict.
// A row with an odd number of cells is an asuna.ErrInvalidFormat error.
// On failure the dict is left untouched.
func (d *Dict[K, V]) DeserializeFromCSV(ctx context.Context, path string, opts ...filekit.Option) error {
	rows, err := filekit.ReadCSVRows(ctx, path, opts...)
	if err != nil {
		return err
	}
	var tmp Dict[K, V]
	for i, row := range rows {
		if len(row)%2 != 0 {
			return asuna.ErrInvalidFormat.F("row %d of %s has an odd number of cells (%d)", i+1, path, len(row))
		}
		for j := 0; j < len(row); j += 2 {
			k, err := cell.Parse[K](row[j])
			if err != nil {
				return err
			}
			v, err := cell.Parse[V](row[j+1])
			if err != nil {
				return err
			}
			tmp.Set(k, v)
		}
	}
	d.update(&tmp)
	return nil
}

func (d *Dict[K, V]) update(o *Dict[K, V]) {
	for k, v := range o.Iter() {
		d.Set(k, v)
	}
}

// MarshalJSON encodes the dict as a JSON object in key order.
// Keys must be of a string or integer kind.
func (d *Dict[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if 0 < i {
			buf.WriteByte(',')
		}
		name, err := keyName(k)
		if err != nil {
			return nil, err
		}
		kb, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(d.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON merges the members of a JSON object into the dict, in document order.
func (d *Dict[K, V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return asuna.ErrInvalidFormat.F("expected a JSON object, got %v", tok)
	}
	var tmp Dict[K, V]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		k, err := cell.Parse[K](name)
		if err != nil {
			return err
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return err
		}
		tmp.Set(k, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	d.update(&tmp)
	return nil
}

func keyName[K comparable](k K) (string, error) {
	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	default:
		return "", asuna.ErrInvalidFormat.F("%T can't be a JSON object key", k)
	}
}

// MarshalYAML encodes the dict as a YAML mapping in key order.
func (d *Dict[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range d.Iter() {
		var kn, vn yaml.Node
		if err := kn.Encode(k); err != nil {
			return nil, err
		}
		if err := vn.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}

// UnmarshalYAML merges the pairs of a YAML mapping into the dict, in document order.
func (d *Dict[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return asuna.ErrInvalidFormat.F("expected a YAML mapping at line %d", node.Line)
	}
	var tmp Dict[K, V]
	for i := 0; i+1 < len(node.Content); i += 2 {
		var (
			k K
			v V
		)
		if err := node.Content[i].Decode(&k); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&v); err != nil {
			return err
		}
		tmp.Set(k, v)
	}
	d.update(&tmp)
	return nil
}
