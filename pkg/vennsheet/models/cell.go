package models

// Column holds the raw values of one worksheet column below its header.
// A nil element is a missing cell.
type Column []interface{}

// StringColumn builds a Column from strings, treating "" as missing.
func StringColumn(values ...string) Column {
	col := make(Column, len(values))
	for i, v := range values {
		if v != "" {
			col[i] = v
		}
	}
	return col
}
