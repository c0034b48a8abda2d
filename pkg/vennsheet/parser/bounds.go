package parser

// dataWidth returns the number of columns up to and including the rightmost
// non-empty cell in any row. Leading empty columns still count, so column
// positions match the sheet.
func dataWidth(rows [][]string) int {
	return findLastColumn(rows) + 1
}

// findLastColumn finds the rightmost non-empty column, or -1 when every
// cell is empty.
func findLastColumn(rows [][]string) int {
	maxCol := -1
	for _, row := range rows {
		for colIdx := len(row) - 1; colIdx > maxCol; colIdx-- {
			if row[colIdx] != "" {
				maxCol = colIdx
				break
			}
		}
	}
	return maxCol
}
