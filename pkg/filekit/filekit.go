// Package filekit reads and writes whole files in JSON, CSV and YAML.
//
// Every call opens the file, does its job, and closes the file before returning,
// on the happy path and on failure alike.
// Writes encode the whole document first and only then truncate the target file,
// so a value that fails to encode leaves the existing file untouched.
package filekit

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"io/fs"
	"os"

	"go.llib.dev/asuna"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatJSON format = "json"
	formatCSV  format = "csv"
	formatYAML format = "yaml"
)

func WriteJSON(ctx context.Context, path string, v any, opts ...Option) error {
	return write(ctx, path, formatJSON, opts, func(w io.Writer, c Config) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", c.Indent)
		if err := enc.Encode(v); err != nil {
			return asuna.ErrInvalidFormat.Wrap(err)
		}
		return nil
	})
}

// ReadJSON decodes the JSON document at path into ptr.
func ReadJSON(ctx context.Context, path string, ptr any) error {
	return read(ctx, path, formatJSON, func(r io.Reader) error {
		if err := json.NewDecoder(r).Decode(ptr); err != nil {
			return asuna.ErrInvalidFormat.Wrap(err)
		}
		return nil
	})
}

// WriteCSVRow writes a file that consists of a single CSV record.
func WriteCSVRow(ctx context.Context, path string, row []string, opts ...Option) error {
	return write(ctx, path, formatCSV, opts, func(w io.Writer, c Config) error {
		cw := csv.NewWriter(w)
		cw.Comma = zerokit.Coalesce(c.Comma, ',')
		if err := cw.Write(row); err != nil {
			return asuna.ErrIO.Wrap(err)
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return asuna.ErrIO.Wrap(err)
		}
		return nil
	})
}

// ReadCSVRows reads every record of the CSV file at path.
// Records may have a different number of fields.
func ReadCSVRows(ctx context.Context, path string, opts ...Option) ([][]string, error) {
	c := option.ToConfig[Config](opts)
	var rows [][]string
	err := read(ctx, path, formatCSV, func(r io.Reader) error {
		cr := csv.NewReader(r)
		cr.Comma = zerokit.Coalesce(c.Comma, ',')
		cr.FieldsPerRecord = -1
		records, err := cr.ReadAll()
		if err != nil {
			return asuna.ErrInvalidFormat.Wrap(err)
		}
		rows = records
		return nil
	})
	return rows, err
}

func WriteYAML(ctx context.Context, path string, v any, opts ...Option) error {
	return write(ctx, path, formatYAML, opts, func(w io.Writer, c Config) (returnErr error) {
		enc := yaml.NewEncoder(w)
		defer errorkit.Finish(&returnErr, enc.Close)
		if err := enc.Encode(v); err != nil {
			return asuna.ErrInvalidFormat.Wrap(err)
		}
		return nil
	})
}

// ReadYAML decodes the YAML document at path into ptr.
func ReadYAML(ctx context.Context, path string, ptr any) error {
	return read(ctx, path, formatYAML, func(r io.Reader) error {
		if err := yaml.NewDecoder(r).Decode(ptr); err != nil {
			return asuna.ErrInvalidFormat.Wrap(err)
		}
		return nil
	})
}

func write(ctx context.Context, path string, kind format, opts []Option, encode func(io.Writer, Config) error) (returnErr error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	c := option.ToConfig[Config](opts)
	logger.Debug(ctx, "writing file",
		logging.Field("path", path),
		logging.Field("format", string(kind)))

	defer func() {
		if returnErr != nil {
			logger.Debug(ctx, "writing file failed",
				logging.Field("path", path),
				logging.ErrField(returnErr))
		}
	}()

	var buf bytes.Buffer
	if err := encode(&buf, c); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, c.Perm)
	if err != nil {
		return asuna.ErrIO.Wrap(err)
	}
	defer errorkit.Finish(&returnErr, f.Close)
	if _, err := buf.WriteTo(f); err != nil {
		return asuna.ErrIO.Wrap(err)
	}
	return nil
}

func read(ctx context.Context, path string, kind format, decode func(io.Reader) error) (returnErr error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Debug(ctx, "reading file",
		logging.Field("path", path),
		logging.Field("format", string(kind)))

	defer func() {
		if returnErr != nil {
			logger.Debug(ctx, "reading file failed",
				logging.Field("path", path),
				logging.ErrField(returnErr))
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return asuna.ErrIO.Wrap(err)
	}
	defer errorkit.Finish(&returnErr, f.Close)
	return decode(f)
}

// Config holds the per call settings of the file codecs.
type Config struct {
	// Indent is the JSON indentation of nested values.
	// The default is a compact, single line document.
	Indent string
	// Comma is the CSV field delimiter, a comma when left empty.
	Comma rune
	// Perm is the permission of newly created files.
	Perm fs.FileMode
}

func (c *Config) Init() {
	c.Perm = 0o644
}

type Option = option.Option[Config]

func Indent(indent string) Option {
	return option.Func[Config](func(c *Config) { c.Indent = indent })
}

func Comma(r rune) Option {
	return option.Func[Config](func(c *Config) { c.Comma = r })
}

func Perm(perm fs.FileMode) Option {
	return option.Func[Config](func(c *Config) { c.Perm = perm })
}
