package models

import (
	"errors"
	"math"
	"testing"
)

func TestSheetDataPair(t *testing.T) {
	sheet := SheetData{
		Name:    "Genes",
		Headers: []string{"Control", "Treated", "Notes"},
		Columns: []Column{StringColumn("a", "b"), StringColumn("b"), StringColumn("x")},
	}

	pair, err := sheet.Pair()
	if err != nil {
		t.Fatalf("Pair failed: %v", err)
	}
	if pair.HeaderA != "Control" || pair.HeaderB != "Treated" {
		t.Errorf("unexpected headers %q, %q", pair.HeaderA, pair.HeaderB)
	}
	if len(pair.A) != 2 || len(pair.B) != 1 {
		t.Errorf("unexpected column lengths %d, %d", len(pair.A), len(pair.B))
	}

	single := SheetData{Name: "One", Headers: []string{"Only"}, Columns: []Column{StringColumn("a")}}
	if _, err := single.Pair(); !errors.Is(err, ErrTooFewColumns) {
		t.Errorf("expected ErrTooFewColumns, got %v", err)
	}
}

func TestStringColumn(t *testing.T) {
	col := StringColumn("a", "", "c")
	if col[0] != "a" || col[1] != nil || col[2] != "c" {
		t.Errorf("unexpected column %#v", col)
	}
}

func TestNewEntry(t *testing.T) {
	e := NewEntry("S", ColumnPair{HeaderA: "A", HeaderB: "B"})
	if e.Labels != e.Headers || e.Labels != [2]string{"A", "B"} {
		t.Errorf("labels %v should start as headers %v", e.Labels, e.Headers)
	}
}

func TestStyleValidate(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Style)
		valid bool
	}{
		{"default", func(*Style) {}, true},
		{"alpha zero", func(s *Style) { s.Alpha = 0 }, true},
		{"alpha one", func(s *Style) { s.Alpha = 1 }, true},
		{"alpha above", func(s *Style) { s.Alpha = 1.5 }, false},
		{"alpha below", func(s *Style) { s.Alpha = -0.1 }, false},
		{"alpha nan", func(s *Style) { s.Alpha = math.NaN() }, false},
		{"height low bound", func(s *Style) { s.LabelHeight = 0.9 }, true},
		{"height high bound", func(s *Style) { s.LabelHeight = 1.6 }, true},
		{"height too low", func(s *Style) { s.LabelHeight = 0.5 }, false},
		{"height too high", func(s *Style) { s.LabelHeight = 1.7 }, false},
		{"short color", func(s *Style) { s.ColorA = "#abc" }, true},
		{"no hash", func(s *Style) { s.ColorB = "a6d49f" }, true},
		{"named color", func(s *Style) { s.ColorA = "red" }, false},
	}

	for _, tt := range tests {
		s := DefaultStyle()
		tt.mut(&s)
		err := s.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidStyle) {
			t.Errorf("%s: expected ErrInvalidStyle, got %v", tt.name, err)
		}
	}
}

func TestResultTableRecords(t *testing.T) {
	tbl := ResultTable{Columns: []string{"x", "y"}, Rows: [][]string{{"1", "2"}}}
	records := tbl.Records()
	if len(records) != 2 || records[0][0] != "x" || records[1][1] != "2" {
		t.Errorf("unexpected records %v", records)
	}
}
