package gsheets

import (
	"testing"
)

func TestA1(t *testing.T) {
	tests := []struct {
		title  string
		row    int
		col    int
		height int
		width  int
		a1     string
	}{
		{"Users", 1, 1, 1, 1, "'Users'!A1"},
		{"Users", 1, 1, 3, 2, "'Users'!A1:B3"},
		{"Bob's Data", 2, 3, 10, 26, "'Bob''s Data'!C2:AB11"},
	}

	for _, test := range tests {
		if a1 := a1(test.title, test.row, test.col, test.height, test.width); a1 != test.a1 {
			t.Errorf("Incorrect A1 range - expected:%v, got:%v", test.a1, a1)
		}
	}
}

func TestColumn(t *testing.T) {
	tests := map[int]string{
		1:   "A",
		26:  "Z",
		27:  "AA",
		52:  "AZ",
		53:  "BA",
		702: "ZZ",
		703: "AAA",
	}

	for n, expected := range tests {
		if column := column(n); column != expected {
			t.Errorf("Incorrect column for %v - expected:%v, got:%v", n, expected, column)
		}
	}
}

func TestParseColor(t *testing.T) {
	color, err := parseColor("#f3F3f3")
	if err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if color.Red != 243.0/255.0 || color.Green != 243.0/255.0 || color.Blue != 243.0/255.0 {
		t.Errorf("Incorrect colour - got %+v", color)
	}

	for _, invalid := range []string{"", "f3f3f3", "#f3f3", "#gggggg"} {
		if _, err := parseColor(invalid); err == nil {
			t.Errorf("Expected error for invalid colour '%v'", invalid)
		}
	}
}
