// Package tsv implements a tabulator store that writes the table as a tab separated file.
package tsv

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/uhppoted/uhppoted-app-tabulator/tabulator"
)

type cell struct {
	row int
	col int
}

// Store keeps the cells in memory until Close writes them out. Styles and column widths
// have no TSV representation and are ignored.
type Store struct {
	file  string
	cells map[cell]any
}

// NewStore returns a Store that writes to file on Close. A file of "-" writes to stdout.
func NewStore(file string) *Store {
	return &Store{
		file:  file,
		cells: map[cell]any{},
	}
}

// Open returns a Store for file preloaded with the cells of the existing file, if any, so
// that a failed run only replaces the top-left cell of the previous table.
func Open(file string) (*Store, error) {
	store := NewStore(file)
	if file == "-" {
		return store, nil
	}

	b, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return store, nil
	} else if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(b))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid TSV file %v (%w)", file, err)
	}

	for i, record := range records {
		for j, v := range record {
			if v != "" {
				store.cells[cell{i + 1, j + 1}] = v
			}
		}
	}

	return store, nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.cells = map[cell]any{}

	return nil
}

func (s *Store) WriteRange(ctx context.Context, row, col int, grid tabulator.Grid) error {
	for i, r := range grid {
		for j, v := range r {
			s.cells[cell{row + i, col + j}] = v
		}
	}

	return nil
}

func (s *Store) SetStyle(ctx context.Context, row, col, height, width int, style tabulator.Style) error {
	return nil
}

func (s *Store) AutoResizeColumns(ctx context.Context, col, count int) error {
	return nil
}

func (s *Store) SetCell(ctx context.Context, row, col int, value any) error {
	s.cells[cell{row, col}] = value

	return nil
}

// Close writes the cells to the file, replacing it atomically.
func (s *Store) Close() error {
	if s.file == "-" {
		return s.Write(os.Stdout)
	}

	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tsv-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := s.Write(tmp); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.file)
}

// Write writes the bounding block of all set cells as TSV, starting at A1.
func (s *Store) Write(f io.Writer) error {
	rows, cols := 0, 0
	for c := range s.cells {
		rows = max(rows, c.row)
		cols = max(cols, c.col)
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for r := 1; r <= rows; r++ {
		record := make([]string, cols)
		for c := 1; c <= cols; c++ {
			if v, ok := s.cells[cell{r, c}]; ok && v != nil {
				record[c-1] = format(v)
			}
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// format renders a cell value. Numbers are written in plain decimal notation, never as
// exponents.
func format(v any) string {
	switch value := v.(type) {
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)

	default:
		return fmt.Sprintf("%v", v)
	}
}
