package tabulator

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	body := []byte(`[
	  {"name":"Ann","id":1,"active":true,"manager":null},
	  {"name":"Bo","id":2,"active":false,"manager":"Ann"}
	]`)

	records, err := Parse(body)
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	if len(records) != 2 {
		t.Fatalf("Incorrect number of records - expected:%v, got:%v", 2, len(records))
	}

	expected := []string{"name", "id", "active", "manager"}
	if !reflect.DeepEqual(records[0].Fields(), expected) {
		t.Errorf("Incorrect field order\n   expected: %v\n   got:      %v\n", expected, records[0].Fields())
	}

	if v, ok := records[1].Get("active"); !ok || v != false {
		t.Errorf("Incorrect 'active' value - expected:%v, got:%v", false, v)
	}

	if v, ok := records[0].Get("manager"); !ok || v != nil {
		t.Errorf("Incorrect 'manager' value - expected:%v, got:%v", nil, v)
	}
}

func TestParseWithDuplicateKeys(t *testing.T) {
	records, err := Parse([]byte(`[{"id":1,"name":"Ann","id":7}]`))
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	if !reflect.DeepEqual(records[0].Fields(), []string{"id", "name"}) {
		t.Errorf("Incorrect fields - expected:%v, got:%v", []string{"id", "name"}, records[0].Fields())
	}

	if v, _ := records[0].Get("id"); v != 7.0 {
		t.Errorf("Incorrect 'id' value - expected:%v, got:%v", 7.0, v)
	}
}

func TestParseWithNestedValues(t *testing.T) {
	records, err := Parse([]byte(`[{"id":1,"tags":["a","b"],"address":{"city":"Paris"}}]`))
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	if v, _ := records[0].Get("tags"); v != `["a","b"]` {
		t.Errorf("Incorrect 'tags' value - expected:%v, got:%v", `["a","b"]`, v)
	}

	if v, _ := records[0].Get("address"); v != `{"city":"Paris"}` {
		t.Errorf("Incorrect 'address' value - expected:%v, got:%v", `{"city":"Paris"}`, v)
	}
}

func TestTabulate(t *testing.T) {
	expected := Grid{
		{"id", "name"},
		{1.0, "Ann"},
		{2.0, "Bo"},
	}

	records, err := Parse([]byte(`[{"id":1,"name":"Ann"},{"id":2,"name":"Bo"}]`))
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	grid, err := Tabulate(records)
	if err != nil {
		t.Fatalf("Unexpected error returned from Tabulate (%v)", err)
	}

	if diff := cmp.Diff(expected, grid); diff != "" {
		t.Errorf("Incorrect grid (-expected +got):\n%s", diff)
	}

	if !reflect.DeepEqual(grid.Headers(), []string{"id", "name"}) {
		t.Errorf("Incorrect headers - expected:%v, got:%v", []string{"id", "name"}, grid.Headers())
	}
}

func TestTabulateDimensions(t *testing.T) {
	bodies := []string{
		`[{"a":1}]`,
		`[{"a":1,"b":2,"c":3},{"a":4,"b":5,"c":6}]`,
		`[{"z":"1","y":"2"},{"z":"3","y":"4"},{"z":"5","y":"6"},{"z":"7","y":"8"}]`,
	}

	for _, body := range bodies {
		records, err := Parse([]byte(body))
		if err != nil {
			t.Fatalf("Unexpected error returned from Parse (%v)", err)
		}

		grid, err := Tabulate(records)
		if err != nil {
			t.Fatalf("Unexpected error returned from Tabulate (%v)", err)
		}

		if grid.Height() != len(records)+1 {
			t.Errorf("%s: incorrect height - expected:%v, got:%v", body, len(records)+1, grid.Height())
		}

		for i, row := range grid {
			if len(row) != len(records[0].Fields()) {
				t.Errorf("%s: incorrect width for row %v - expected:%v, got:%v", body, i, len(records[0].Fields()), len(row))
			}
		}

		if !reflect.DeepEqual(grid.Headers(), records[0].Fields()) {
			t.Errorf("%s: incorrect headers - expected:%v, got:%v", body, records[0].Fields(), grid.Headers())
		}
	}
}

func TestTabulateWithHeterogeneousRecords(t *testing.T) {
	expected := Grid{
		{"id", "name"},
		{1.0, "Ann"},
		{2.0, nil},
		{nil, "Cy"},
		{nil, nil},
	}

	records, err := Parse([]byte(`[{"id":1,"name":"Ann"},{"id":2,"email":"bo@example.com"},{"name":"Cy"},"Di"]`))
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	grid, err := Tabulate(records)
	if err != nil {
		t.Fatalf("Unexpected error returned from Tabulate (%v)", err)
	}

	if diff := cmp.Diff(expected, grid); diff != "" {
		t.Errorf("Incorrect grid (-expected +got):\n%s", diff)
	}
}

func TestTabulateWithoutRecords(t *testing.T) {
	_, err := Tabulate(nil)
	if KindOf(err) != ShapeError {
		t.Errorf("Expected shape error for empty record list, got %v", err)
	}
}
