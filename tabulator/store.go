package tabulator

import (
	"context"
)

// Store is the destination for a tabulated grid. Rows and columns are 1-based, the same
// as spreadsheet A1 notation.
type Store interface {
	// Clear removes all values and formatting.
	Clear(ctx context.Context) error

	// WriteRange writes the grid with its top-left cell at (row, col).
	WriteRange(ctx context.Context, row, col int, grid Grid) error

	// SetStyle applies a style to a height x width block starting at (row, col).
	SetStyle(ctx context.Context, row, col, height, width int, style Style) error

	// AutoResizeColumns sizes count columns starting at col to fit their content.
	AutoResizeColumns(ctx context.Context, col, count int) error

	// SetCell writes a single value.
	SetCell(ctx context.Context, row, col int, value any) error
}

// Style is the cell formatting applied to a range. Background is a '#rrggbb' colour, or
// empty for no fill.
type Style struct {
	Bold       bool
	Background string
}

// HeaderStyle is applied to the header row of every written grid.
var HeaderStyle = Style{
	Bold:       true,
	Background: "#f3f3f3",
}
