package gsheets

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// a1 formats a block of cells as an A1 range on a worksheet, e.g. 'Users'!A1:C10.
func a1(title string, row, col, height, width int) string {
	sheet := fmt.Sprintf("'%s'", strings.ReplaceAll(title, "'", "''"))
	from := fmt.Sprintf("%s%d", column(col), row)

	if height == 1 && width == 1 {
		return fmt.Sprintf("%s!%s", sheet, from)
	}

	to := fmt.Sprintf("%s%d", column(col+width-1), row+height-1)

	return fmt.Sprintf("%s!%s:%s", sheet, from, to)
}

// column returns the letters for a 1-based column number (1 => A, 27 => AA).
func column(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}

	return letters
}

func parseColor(hex string) (*sheets.Color, error) {
	match := regexp.MustCompile(`^#([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`).FindStringSubmatch(strings.TrimSpace(hex))
	if len(match) < 4 {
		return nil, fmt.Errorf("invalid colour '%s' - expected something like '#f3f3f3'", hex)
	}

	rgb := [3]float64{}
	for i := range rgb {
		v, err := strconv.ParseUint(match[i+1], 16, 8)
		if err != nil {
			return nil, err
		}

		rgb[i] = float64(v) / 255.0
	}

	return &sheets.Color{
		Red:   rgb[0],
		Green: rgb[1],
		Blue:  rgb[2],
	}, nil
}
