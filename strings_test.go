package datatable

import (
	"bytes"
	"context"
	"reflect"
	"testing"
)

func TestViewStrings(t *testing.T) {
	p := Presenter{
		Headings: Headings{"project_name", "vintage_year"},
		Button:   &Button{Label: "Details"},
	}
	tests := []struct {
		name         string
		data         []Record
		addHeaderRow bool
		wantRows     [][]string
	}{
		{
			name:     "empty without header",
			data:     nil,
			wantRows: nil,
		},
		{
			name:         "empty with header",
			data:         nil,
			addHeaderRow: true,
			wantRows:     [][]string{{"Project Name", "Vintage Year", "Actions"}},
		},
		{
			name:         "rows with header",
			data:         []Record{{"project_name": "P1", "vintage_year": 2020}, {"project_name": ""}},
			addHeaderRow: true,
			wantRows: [][]string{
				{"Project Name", "Vintage Year", "Actions"},
				{"P1", "2020", "Details"},
				{"--", "--", "Details"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := TableView{Table: p.Present(tt.data, Pagination{}, 0)}
			gotRows, err := ViewStrings(context.Background(), view, tt.addHeaderRow)
			if err != nil {
				t.Fatalf("ViewStrings() error = %v", err)
			}
			if !reflect.DeepEqual(gotRows, tt.wantRows) {
				t.Errorf("ViewStrings() = %v, want %v", gotRows, tt.wantRows)
			}
		})
	}
}

func TestStringColumnWidths(t *testing.T) {
	rows := [][]string{{"a", "äöü"}, {"abcd"}}
	if got := StringColumnWidths(rows, -1); !reflect.DeepEqual(got, []int{4, 3}) {
		t.Errorf("StringColumnWidths() = %v", got)
	}
	if got := StringColumnWidths(nil, -1); got != nil {
		t.Errorf("StringColumnWidths(nil) = %v", got)
	}
}

func TestWriteText(t *testing.T) {
	p := Presenter{Headings: Headings{"name", "amount"}}
	table := p.Present([]Record{{"name": "Alpha", "amount": 5}, {"name": "B"}}, Pagination{}, 0)

	var buf bytes.Buffer
	err := WriteText(context.Background(), &buf, TableView{Table: table}, true)
	if err != nil {
		t.Fatal(err)
	}
	want := "" +
		"Name   Amount\n" +
		"Alpha  5\n" +
		"B      --\n"
	if buf.String() != want {
		t.Errorf("WriteText() =\n%s\nwant\n%s", buf.String(), want)
	}
}
