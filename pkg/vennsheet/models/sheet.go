package models

import "errors"

// ErrTooFewColumns indicates a worksheet has fewer than two columns.
var ErrTooFewColumns = errors.New("worksheet has fewer than two columns")

// SheetData represents one worksheet as read from a workbook.
type SheetData struct {
	// Name is the worksheet name, unique within its workbook.
	Name string `json:"name"`
	// Headers holds the header text of each column, left to right.
	Headers []string `json:"headers"`
	// Columns holds the values below the header row, column-major.
	Columns []Column `json:"columns"`
}

// ColumnCount returns the number of columns in the worksheet.
func (s SheetData) ColumnCount() int {
	if len(s.Headers) > len(s.Columns) {
		return len(s.Headers)
	}
	return len(s.Columns)
}

// Pair returns the two leftmost columns as a typed pair.
func (s SheetData) Pair() (ColumnPair, error) {
	if s.ColumnCount() < 2 {
		return ColumnPair{}, ErrTooFewColumns
	}
	p := ColumnPair{
		HeaderA: s.header(0),
		HeaderB: s.header(1),
	}
	if len(s.Columns) > 0 {
		p.A = s.Columns[0]
	}
	if len(s.Columns) > 1 {
		p.B = s.Columns[1]
	}
	return p, nil
}

func (s SheetData) header(i int) string {
	if i < len(s.Headers) {
		return s.Headers[i]
	}
	return ""
}

// ColumnPair is the pair of columns compared for one worksheet.
type ColumnPair struct {
	HeaderA string `json:"header_a"`
	HeaderB string `json:"header_b"`
	A       Column `json:"a"`
	B       Column `json:"b"`
}

// Entry is a loaded worksheet together with its display labels.
type Entry struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Pair holds the compared columns.
	Pair ColumnPair `json:"pair"`
	// Labels are the editable display labels for column A and B.
	Labels [2]string `json:"labels"`
	// Headers are the column headers as read, used to reset Labels.
	Headers [2]string `json:"headers"`
}

// NewEntry creates an Entry whose labels start as the column headers.
func NewEntry(name string, pair ColumnPair) Entry {
	headers := [2]string{pair.HeaderA, pair.HeaderB}
	return Entry{
		Name:    name,
		Pair:    pair,
		Labels:  headers,
		Headers: headers,
	}
}
