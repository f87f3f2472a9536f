// Package gsheets implements a tabulator store over a Google Sheets worksheet.
package gsheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-tabulator/tabulator"
)

type Store struct {
	google        *sheets.Service
	spreadsheetID string
	sheetID       int64
	title         string
}

// Open returns a Store for the named worksheet in a spreadsheet. An empty worksheet name
// selects the first worksheet.
func Open(ctx context.Context, google *sheets.Service, spreadsheetID, worksheet string) (*Store, error) {
	spreadsheet, err := google.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	sheet, err := getSheet(spreadsheet, worksheet)
	if err != nil {
		return nil, err
	}

	return &Store{
		google:        google,
		spreadsheetID: spreadsheet.SpreadsheetId,
		sheetID:       sheet.Properties.SheetId,
		title:         sheet.Properties.Title,
	}, nil
}

func (s *Store) Title() string {
	return s.title
}

// Clear removes all values and formatting from the worksheet.
func (s *Store) Clear(ctx context.Context) error {
	return s.batch(ctx, &sheets.Request{
		UpdateCells: &sheets.UpdateCellsRequest{
			Range:  s.gridRange(0, 0, 0, 0),
			Fields: "*",
		},
	})
}

func (s *Store) WriteRange(ctx context.Context, row, col int, grid tabulator.Grid) error {
	if grid.Height() == 0 || grid.Width() == 0 {
		return nil
	}

	values := make([][]any, 0, len(grid))
	for _, r := range grid {
		values = append(values, cells(r))
	}

	area := a1(s.title, row, col, grid.Height(), grid.Width())
	rq := sheets.ValueRange{
		Range:  area,
		Values: values,
	}

	if _, err := s.google.Spreadsheets.Values.Update(s.spreadsheetID, area, &rq).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("error writing %v (%w)", area, err)
	}

	return nil
}

func (s *Store) SetStyle(ctx context.Context, row, col, height, width int, style tabulator.Style) error {
	if height < 1 || width < 1 {
		return nil
	}

	format := sheets.CellFormat{
		TextFormat: &sheets.TextFormat{
			Bold:            style.Bold,
			ForceSendFields: []string{"Bold"},
		},
	}

	fields := []string{"userEnteredFormat.textFormat.bold"}

	if style.Background != "" {
		color, err := parseColor(style.Background)
		if err != nil {
			return err
		}

		format.BackgroundColor = color
		fields = append(fields, "userEnteredFormat.backgroundColor")
	}

	return s.batch(ctx, &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: s.gridRange(row-1, row-1+height, col-1, col-1+width),
			Cell: &sheets.CellData{
				UserEnteredFormat: &format,
			},
			Fields: strings.Join(fields, ","),
		},
	})
}

func (s *Store) AutoResizeColumns(ctx context.Context, col, count int) error {
	if count < 1 {
		return nil
	}

	return s.batch(ctx, &sheets.Request{
		AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
			Dimensions: &sheets.DimensionRange{
				SheetId:         s.sheetID,
				Dimension:       "COLUMNS",
				StartIndex:      int64(col - 1),
				EndIndex:        int64(col - 1 + count),
				ForceSendFields: []string{"SheetId", "StartIndex"},
			},
		},
	})
}

func (s *Store) SetCell(ctx context.Context, row, col int, value any) error {
	area := a1(s.title, row, col, 1, 1)
	rq := sheets.ValueRange{
		Range:  area,
		Values: [][]any{{value}},
	}

	if _, err := s.google.Spreadsheets.Values.Update(s.spreadsheetID, area, &rq).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("error writing %v (%w)", area, err)
	}

	return nil
}

func (s *Store) batch(ctx context.Context, requests ...*sheets.Request) error {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}

	if _, err := s.google.Spreadsheets.BatchUpdate(s.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

// gridRange returns a 0-based, end-exclusive range on the worksheet. Zero end indices
// leave the range unbounded.
func (s *Store) gridRange(startRow, endRow, startCol, endCol int) *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          s.sheetID,
		StartRowIndex:    int64(startRow),
		EndRowIndex:      int64(endRow),
		StartColumnIndex: int64(startCol),
		EndColumnIndex:   int64(endCol),
		ForceSendFields:  []string{"SheetId"},
	}
}

func getSheet(spreadsheet *sheets.Spreadsheet, name string) (*sheets.Sheet, error) {
	if len(spreadsheet.Sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %v has no worksheets", spreadsheet.SpreadsheetId)
	}

	if strings.TrimSpace(name) == "" {
		if sheet := spreadsheet.Sheets[0]; sheet.Properties != nil {
			return sheet, nil
		}

		return nil, fmt.Errorf("missing properties for first worksheet of %v", spreadsheet.SpreadsheetId)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && normalise(sheet.Properties.Title) == normalise(name) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("unable to identify worksheet '%s'", name)
}

// cells converts a grid row to sheet values. Missing values are written as empty strings
// because the Sheets API skips null cells.
func cells(row []any) []any {
	values := make([]any, len(row))
	for i, v := range row {
		if v == nil {
			values[i] = ""
		} else {
			values[i] = v
		}
	}

	return values
}

func normalise(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
