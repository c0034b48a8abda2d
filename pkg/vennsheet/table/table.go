// Package table shapes a partition into a rectangular result table.
package table

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
)

// SharedColumn is the name of the third result column.
const SharedColumn = "Shared"

// UniqueColumn returns the result column name for a label.
func UniqueColumn(label string) string {
	return "Unique to " + label
}

// Build creates the result table for a partition.
func Build(labelA, labelB string, p models.Partition) models.ResultTable {
	return BuildLists(labelA, labelB, p.UniqueA, p.UniqueB, p.Shared)
}

// BuildLists creates a table with the columns "Unique to <labelA>",
// "Unique to <labelB>" and "Shared". Shorter lists are padded with empty
// cells so every column has the length of the longest list. Equal labels
// produce two identically named columns.
func BuildLists(labelA, labelB string, uniqueA, uniqueB, shared []string) models.ResultTable {
	lists := [][]string{uniqueA, uniqueB, shared}

	rowCount := 0
	for _, l := range lists {
		if len(l) > rowCount {
			rowCount = len(l)
		}
	}

	rows := make([][]string, rowCount)
	for r := range rows {
		row := make([]string, len(lists))
		for c, l := range lists {
			if r < len(l) {
				row[c] = l[r]
			}
		}
		rows[r] = row
	}

	return models.ResultTable{
		Columns: []string{UniqueColumn(labelA), UniqueColumn(labelB), SharedColumn},
		Rows:    rows,
	}
}

// WriteCSV writes the header and rows of t as comma-separated values
// without an index column.
func WriteCSV(w io.Writer, t models.ResultTable) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.Records()); err != nil {
		return err
	}
	return cw.Error()
}

// Cells converts a row to the cell values expected by spreadsheet writers.
func Cells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
