// Package xlsx implements a tabulator store over a worksheet in a local Excel workbook.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/uhppoted/uhppoted-app-tabulator/tabulator"
)

const DefaultSheet = "Sheet1"

const (
	minWidth = 8.43
	maxWidth = 255.0
)

// Store holds an open workbook. Changes are only written to disk by Close.
type Store struct {
	file  string
	sheet string
	book  *excelize.File
}

// Open opens the workbook at path, creating a new workbook if the file does not exist,
// and selects the named worksheet (DefaultSheet if empty), creating it if necessary.
func Open(path, sheet string) (*Store, error) {
	if strings.TrimSpace(sheet) == "" {
		sheet = DefaultSheet
	}

	var book *excelize.File

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		book = excelize.NewFile()
	} else if book, err = excelize.OpenFile(path); err != nil {
		return nil, err
	}

	index, err := book.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	} else if index == -1 {
		if index, err = book.NewSheet(sheet); err != nil {
			return nil, err
		}
	}

	book.SetActiveSheet(index)

	return &Store{
		file:  path,
		sheet: sheet,
		book:  book,
	}, nil
}

// Close saves the workbook and releases it.
func (s *Store) Close() error {
	defer s.book.Close()

	if err := s.book.SaveAs(s.file); err != nil {
		return fmt.Errorf("error saving workbook %v (%w)", s.file, err)
	}

	return nil
}

// Clear removes every row of the worksheet, with its values and styles, and resets the width
// of the columns that held values. The worksheet keeps its name and position in the workbook.
func (s *Store) Clear(ctx context.Context) error {
	values, err := s.book.GetRows(s.sheet)
	if err != nil {
		return err
	}

	columns := 0
	for _, row := range values {
		columns = max(columns, len(row))
	}

	rows, err := s.book.Rows(s.sheet)
	if err != nil {
		return err
	}

	count := 0
	for rows.Next() {
		count++
	}

	if err := rows.Close(); err != nil {
		return err
	}

	for r := count; r > 0; r-- {
		if err := s.book.RemoveRow(s.sheet, r); err != nil {
			return err
		}
	}

	if columns > 0 {
		last, err := excelize.ColumnNumberToName(columns)
		if err != nil {
			return err
		}

		if err := s.book.SetColWidth(s.sheet, "A", last, minWidth); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) WriteRange(ctx context.Context, row, col int, grid tabulator.Grid) error {
	for i, r := range grid {
		cell, err := excelize.CoordinatesToCellName(col, row+i)
		if err != nil {
			return err
		}

		values := make([]any, len(r))
		copy(values, r)

		if err := s.book.SetSheetRow(s.sheet, cell, &values); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) SetStyle(ctx context.Context, row, col, height, width int, style tabulator.Style) error {
	if height < 1 || width < 1 {
		return nil
	}

	xs := excelize.Style{
		Font: &excelize.Font{
			Bold: style.Bold,
		},
	}

	if style.Background != "" {
		xs.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{strings.TrimPrefix(style.Background, "#")},
		}
	}

	id, err := s.book.NewStyle(&xs)
	if err != nil {
		return err
	}

	from, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	to, err := excelize.CoordinatesToCellName(col+width-1, row+height-1)
	if err != nil {
		return err
	}

	return s.book.SetCellStyle(s.sheet, from, to, id)
}

// AutoResizeColumns sets each column width to fit the longest value in the column.
func (s *Store) AutoResizeColumns(ctx context.Context, col, count int) error {
	rows, err := s.book.GetRows(s.sheet)
	if err != nil {
		return err
	}

	for c := col; c < col+count; c++ {
		width := minWidth
		for _, row := range rows {
			if c-1 < len(row) {
				if w := float64(utf8.RuneCountInString(row[c-1])) + 2; w > width {
					width = w
				}
			}
		}

		if width > maxWidth {
			width = maxWidth
		}

		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return err
		}

		if err := s.book.SetColWidth(s.sheet, name, name, width); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) SetCell(ctx context.Context, row, col int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	return s.book.SetCellValue(s.sheet, cell, value)
}
