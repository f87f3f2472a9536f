package xlsx

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/uhppoted/uhppoted-app-tabulator/tabulator"
)

func write(t *testing.T, path, sheet string, grid tabulator.Grid) {
	ctx := context.Background()

	store, err := Open(path, sheet)
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.WriteRange(ctx, 1, 1, grid))
	require.NoError(t, store.SetStyle(ctx, 1, 1, 1, grid.Width(), tabulator.HeaderStyle))
	require.NoError(t, store.AutoResizeColumns(ctx, 1, grid.Width()))
	require.NoError(t, store.Close())
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.xlsx")
	grid := tabulator.Grid{
		{"id", "name", "email"},
		{1.0, "Ann", "ann.example@example.com"},
		{2.0, "Bo", nil},
	}

	write(t, path, "Users", grid)

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Users")
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"id", "name", "email"},
		{"1", "Ann", "ann.example@example.com"},
		{"2", "Bo"},
	}, rows)

	id, err := book.GetCellStyle("Users", "B1")
	require.NoError(t, err)

	style, err := book.GetStyle(id)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	width, err := book.GetColWidth("Users", "C")
	require.NoError(t, err)
	assert.Equal(t, 25.0, width)

	width, err = book.GetColWidth("Users", "A")
	require.NoError(t, err)
	assert.Equal(t, minWidth, width)
}

func TestRewriteReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.xlsx")

	write(t, path, "", tabulator.Grid{
		{"id", "name"},
		{1.0, "Ann"},
		{2.0, "Bo"},
		{3.0, "Cy"},
	})

	write(t, path, "", tabulator.Grid{
		{"id"},
		{7.0},
	})

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(DefaultSheet)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"id"}, {"7"}}, rows)
	assert.Equal(t, []string{DefaultSheet}, book.GetSheetList())
}

func TestSetCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.xlsx")

	write(t, path, "Users", tabulator.Grid{{"id"}, {1.0}})

	store, err := Open(path, "Users")
	require.NoError(t, err)
	require.NoError(t, store.SetCell(context.Background(), 1, 1, tabulator.ErrorPrefix+"shape error"))
	require.NoError(t, store.Close())

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	value, err := book.GetCellValue("Users", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Error retrieving data: shape error", value)
}

func TestWriteWorkbookWithLongSheetName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.xlsx")
	sheet := strings.Repeat("a", 31)

	write(t, path, sheet, tabulator.Grid{{"id", "name"}, {1.0, "Ann"}, {2.0, "Bo"}})
	write(t, path, sheet, tabulator.Grid{{"id"}, {7.0}})

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(sheet)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"id"}, {"7"}}, rows)
}

func TestRewriteKeepsOtherSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.xlsx")

	book := excelize.NewFile()
	_, err := book.NewSheet("Users")
	require.NoError(t, err)
	_, err = book.NewSheet("Users~")
	require.NoError(t, err)
	_, err = book.NewSheet("Notes")
	require.NoError(t, err)

	require.NoError(t, book.SetCellValue("Users", "A1", "old"))
	require.NoError(t, book.SetCellValue("Users", "Z9", "stale"))
	require.NoError(t, book.SetCellValue("Users~", "A1", "keep"))
	require.NoError(t, book.SaveAs(path))
	require.NoError(t, book.Close())

	write(t, path, "Users", tabulator.Grid{{"id", "name"}, {1.0, "Ann"}})

	book, err = excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Users")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"id", "name"}, {"1", "Ann"}}, rows)

	value, err := book.GetCellValue("Users~", "A1")
	require.NoError(t, err)
	assert.Equal(t, "keep", value)

	assert.Equal(t, []string{DefaultSheet, "Users", "Users~", "Notes"}, book.GetSheetList())
}
