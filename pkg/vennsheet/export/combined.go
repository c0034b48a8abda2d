package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/table"
)

var (
	// ErrCombinedUnavailable indicates the combined workbook cannot be written.
	ErrCombinedUnavailable = errors.New("combined workbook writer unavailable")

	// ErrDuplicateSection indicates a section name is already in the workbook.
	ErrDuplicateSection = errors.New("duplicate section name")

	// ErrWriterClosed indicates an append after Close.
	ErrWriterClosed = errors.New("combined workbook already closed")
)

// CombinedWriter aggregates result tables into one workbook, one section
// per worksheet.
type CombinedWriter interface {
	Append(section string, t models.ResultTable) error
	Close() error
}

// CombinedOpener opens a CombinedWriter that saves to path on Close.
type CombinedOpener func(path string) (CombinedWriter, error)

// excelWriter is the excelize-backed CombinedWriter.
type excelWriter struct {
	path        string
	file        *excelize.File
	sections    map[string]bool // lower-cased; sheet names are case-insensitive
	headerStyle int
}

// OpenExcel creates an in-memory workbook that is saved to path on Close.
func OpenExcel(path string) (CombinedWriter, error) {
	f := excelize.NewFile()
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	return &excelWriter{
		path:        path,
		file:        f,
		sections:    make(map[string]bool),
		headerStyle: style,
	}, nil
}

// Append writes t as a new sheet named section. The first section takes
// over the workbook's default sheet.
func (w *excelWriter) Append(section string, t models.ResultTable) error {
	if w.file == nil {
		return ErrWriterClosed
	}
	key := strings.ToLower(section)
	if w.sections[key] {
		return fmt.Errorf("%w: %q", ErrDuplicateSection, section)
	}

	if len(w.sections) == 0 {
		if err := w.file.SetSheetName(w.file.GetSheetName(0), section); err != nil {
			return err
		}
	} else if _, err := w.file.NewSheet(section); err != nil {
		return err
	}
	w.sections[key] = true

	sw, err := w.file.NewStreamWriter(section)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(t.Columns))
	for i, name := range t.Columns {
		header[i] = excelize.Cell{Value: name, StyleID: w.headerStyle}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, table.Cells(row)); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// Close saves the workbook and releases it. Later calls are no-ops.
func (w *excelWriter) Close() error {
	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	saveErr := f.SaveAs(w.path)
	return errors.Join(saveErr, f.Close())
}
