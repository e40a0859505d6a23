package askeys

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// Source supplies rows to an Extractor. Implementations resolve the effective
// key column for a request and project grouping and key columns into rows.
//
// Two shapes ship with the package:
//   - [Frame]: a multi-column table; the caller names the key column
//   - [Series]: a single named column; its own name is the key
//
// The extractor never mutates a source and never holds one across calls, so
// the same source can back any number of extractions.
type Source interface {
	// KeyName resolves the effective key column for an explicit key request.
	// explicit is empty when the caller supplied no key.
	KeyName(explicit string) (string, error)

	// Project returns the group and key columns as rows in source order.
	// Each row carries its source position, its key value, and one label per
	// group column in order. Unknown names fail with ErrMissingColumn.
	Project(groups []string, key string) ([]Row, error)
}

// Frame is an in-memory ordered table with named columns of heterogeneous
// scalar values. Construct with NewFrame or FromCSV; the zero value is an
// empty table with no columns.
type Frame struct {
	columns []string
	data    map[string][]Value
	length  int
}

// NewFrame builds a Frame from column names and row-major records. Every
// record must have exactly one value per column, and column names must be
// unique.
func NewFrame(columns []string, records [][]Value) (*Frame, error) {
	data := make(map[string][]Value, len(columns))
	for _, name := range columns {
		if _, ok := data[name]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidParameter, name)
		}
		data[name] = make([]Value, 0, len(records))
	}
	for i, rec := range records {
		if len(rec) != len(columns) {
			return nil, fmt.Errorf("%w: record %d has %d values, want %d", ErrInvalidParameter, i, len(rec), len(columns))
		}
		for j, name := range columns {
			data[name] = append(data[name], rec[j])
		}
	}
	return &Frame{
		columns: slices.Clone(columns),
		data:    data,
		length:  len(records),
	}, nil
}

// FromCSV reads a CSV document with a header row into a Frame. Cells that
// parse as integers or floats become int64/float64, empty cells become nil,
// everything else stays a string.
func FromCSV(r io.Reader) (*Frame, error) {
	recs, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("askeys: read csv: %w", err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: csv input has no header row", ErrInvalidParameter)
	}
	records := make([][]Value, len(recs)-1)
	for i, rec := range recs[1:] {
		vals := make([]Value, len(rec))
		for j, cell := range rec {
			vals[j] = parseCell(cell)
		}
		records[i] = vals
	}
	return NewFrame(recs[0], records)
}

func parseCell(s string) Value {
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// Columns returns the column names in source order.
func (f *Frame) Columns() []string { return slices.Clone(f.columns) }

// Len returns the number of rows.
func (f *Frame) Len() int { return f.length }

// KeyName requires an explicit key; a Frame has no intrinsic key column.
func (f *Frame) KeyName(explicit string) (string, error) {
	if explicit == "" {
		return "", fmt.Errorf("%w: a frame needs an explicit key column", ErrInvalidParameter)
	}
	return explicit, nil
}

// Project implements [Source].
func (f *Frame) Project(groups []string, key string) ([]Row, error) {
	keyCol, err := f.column(key)
	if err != nil {
		return nil, err
	}
	groupCols := make([][]Value, len(groups))
	for i, name := range groups {
		if groupCols[i], err = f.column(name); err != nil {
			return nil, err
		}
	}
	rows := make([]Row, f.length)
	for i := range rows {
		var labels []Label
		if len(groups) > 0 {
			labels = make([]Label, len(groups))
			for j, name := range groups {
				labels[j] = Label{Name: name, Value: groupCols[j][i]}
			}
		}
		rows[i] = Row{Index: i, Key: keyCol[i], Labels: labels}
	}
	return rows, nil
}

func (f *Frame) column(name string) ([]Value, error) {
	col, ok := f.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return col, nil
}

// Series is a single named column. Its name is the intrinsic key: an explicit
// key passed to the extractor is ignored in its favor.
type Series struct {
	name   string
	values []Value
}

// NewSeries builds a Series from a name and its values.
func NewSeries(name string, values []Value) *Series {
	return &Series{name: name, values: slices.Clone(values)}
}

// Name returns the series name, which doubles as its key name.
func (s *Series) Name() string { return s.name }

// Len returns the number of values.
func (s *Series) Len() int { return len(s.values) }

// KeyName always resolves to the series' own name; the intrinsic name wins
// over any explicit key.
func (s *Series) KeyName(string) (string, error) { return s.name, nil }

// Project implements [Source]. A series has no columns beyond itself, so any
// grouping request fails with ErrMissingColumn.
func (s *Series) Project(groups []string, key string) ([]Row, error) {
	if len(groups) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, groups[0])
	}
	if key != s.name {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, key)
	}
	rows := make([]Row, len(s.values))
	for i, v := range s.values {
		rows[i] = Row{Index: i, Key: v}
	}
	return rows, nil
}
