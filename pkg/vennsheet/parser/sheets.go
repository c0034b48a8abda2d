// Package parser reads worksheets from Excel workbooks.
package parser

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractWorkbook reads every worksheet of f in workbook order.
func ExtractWorkbook(f *excelize.File, path string) (*models.Workbook, error) {
	wb := &models.Workbook{Path: path}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := ExtractSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

// ExtractSheet reads one worksheet. The first row is the header row and
// every following row contributes one value per column; empty cells are
// stored as nil. Values are read as stored, ignoring number formats:
// numbers become int64 or float64, booleans bool, everything else string.
func ExtractSheet(f *excelize.File, sheetName string) (models.SheetData, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.SheetData{}, err
	}

	var cellErr error
	sheet := sheetFromRows(sheetName, rows, func(colIdx, rowIdx int, raw string) interface{} {
		if cellErr != nil {
			return raw
		}
		v, err := cellValue(f, sheetName, colIdx, rowIdx, raw)
		if err != nil {
			cellErr = err
			return raw
		}
		return v
	})
	if cellErr != nil {
		return models.SheetData{}, cellErr
	}
	return sheet, nil
}

// cellValue types the raw text of the cell at zero-based colIdx, rowIdx.
func cellValue(f *excelize.File, sheetName string, colIdx, rowIdx int, raw string) (interface{}, error) {
	cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return nil, err
	}
	cellType, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return nil, err
	}

	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return parseValue(raw), nil
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE", nil
	default:
		return raw, nil
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// sheetFromRows converts row-major cell text into column-major sheet data.
// convert types each non-empty data cell; nil keeps the text.
func sheetFromRows(sheetName string, rows [][]string, convert func(colIdx, rowIdx int, raw string) interface{}) models.SheetData {
	sheet := models.SheetData{Name: sheetName}

	width := dataWidth(rows)
	if width == 0 {
		return sheet
	}

	sheet.Headers = make([]string, width)
	for colIdx := range sheet.Headers {
		sheet.Headers[colIdx] = headerName(rows[0], colIdx)
	}

	sheet.Columns = make([]models.Column, width)
	for colIdx := range sheet.Columns {
		col := make(models.Column, 0, len(rows)-1)
		for rowIdx, row := range rows {
			if rowIdx == 0 {
				continue
			}
			switch {
			case colIdx >= len(row) || row[colIdx] == "":
				col = append(col, nil)
			case convert != nil:
				col = append(col, convert(colIdx, rowIdx, row[colIdx]))
			default:
				col = append(col, row[colIdx])
			}
		}
		sheet.Columns[colIdx] = col
	}

	return sheet
}

// headerName returns the header text for a column, naming blank headers
// after their zero-based position.
func headerName(headerRow []string, colIdx int) string {
	if colIdx < len(headerRow) && headerRow[colIdx] != "" {
		return headerRow[colIdx]
	}
	return fmt.Sprintf("Unnamed: %d", colIdx)
}
