package listkit

import (
	"context"

	"go.llib.dev/asuna/internal/cell"
	"go.llib.dev/asuna/pkg/filekit"
)

// SerializeToJSON writes the list as a JSON array to path, overwriting the file.
func (l List[T]) SerializeToJSON(ctx context.Context, path string, opts ...filekit.Option) error {
	return filekit.WriteJSON(ctx, path, l.nonNil(), opts...)
}

// DeserializeFromJSON reads a JSON array from path and appends its items to the list.
// On failure the list is left untouched.
func (l *List[T]) DeserializeFromJSON(ctx context.Context, path string) error {
	var vs []T
	if err := filekit.ReadJSON(ctx, path, &vs); err != nil {
		return err
	}
	l.Append(vs...)
	return nil
}

func (l List[T]) SerializeToYAML(ctx context.Context, path string, opts ...filekit.Option) error {
	return filekit.WriteYAML(ctx, path, l.nonNil(), opts...)
}

func (l *List[T]) DeserializeFromYAML(ctx context.Context, path string) error {
	var vs []T
	if err := filekit.ReadYAML(ctx, path, &vs); err != nil {
		return err
	}
	l.Append(vs...)
	return nil
}

// SerializeToCSV writes the list as a single CSV row, one column per element.
func (l List[T]) SerializeToCSV(ctx context.Context, path string, opts ...filekit.Option) error {
	row := make([]string, len(l))
	for i, v := range l {
		c, err := cell.Format(v)
		if err != nil {
			return err
		}
		row[i] = c
	}
	return filekit.WriteCSVRow(ctx, path, row, opts...)
}

// DeserializeFromCSV appends the cells of every row in the CSV file to the list,
// row after row, so a multi row file ends up flattened.
//
// A List[string] or List[any] receives the cell text as is,
// other element types are decoded from the cell text.
func (l *List[T]) DeserializeFromCSV(ctx context.Context, path string, opts ...filekit.Option) error {
	rows, err := filekit.ReadCSVRows(ctx, path, opts...)
	if err != nil {
		return err
	}
	var vs []T
	for _, row := range rows {
		for _, raw := range row {
			v, err := cell.Parse[T](raw)
			if err != nil {
				return err
			}
			vs = append(vs, v)
		}
	}
	l.Append(vs...)
	return nil
}

// nonNil makes sure an empty list is encoded as an empty array rather than null.
func (l List[T]) nonNil() []T {
	if l == nil {
		return []T{}
	}
	return l
}
