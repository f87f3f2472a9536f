package tabulator

// Grid is a table of cell values. Row 0 holds the column headers.
type Grid [][]any

// Tabulate builds a grid from a list of records. The headers are the fields of the first
// record and every record is projected onto them, with nil for fields a record lacks.
func Tabulate(records []Record) (Grid, error) {
	if len(records) == 0 {
		return nil, shapeError("no records")
	}

	headers := records[0].Fields()
	if len(headers) == 0 {
		return nil, shapeError("first record has no fields")
	}

	grid := make(Grid, 0, len(records)+1)

	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}

	grid = append(grid, row)

	for _, record := range records {
		row := make([]any, len(headers))
		for i, h := range headers {
			row[i], _ = record.Get(h)
		}

		grid = append(grid, row)
	}

	return grid, nil
}

// Headers returns the header row as strings.
func (g Grid) Headers() []string {
	headers := []string{}
	if len(g) > 0 {
		for _, v := range g[0] {
			if s, ok := v.(string); ok {
				headers = append(headers, s)
			} else {
				headers = append(headers, "")
			}
		}
	}

	return headers
}

// Height is the number of rows, including the header row.
func (g Grid) Height() int {
	return len(g)
}

// Width is the number of columns in the header row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}
