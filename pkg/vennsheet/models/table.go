package models

// ResultTable is a rectangular, column-aligned view of a Partition.
type ResultTable struct {
	// Columns holds the column names in output order.
	Columns []string `json:"columns"`
	// Rows holds the cells; every row has len(Columns) cells.
	Rows [][]string `json:"rows"`
}

// Records returns the header row followed by the data rows.
func (t ResultTable) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Columns)
	return append(records, t.Rows...)
}
