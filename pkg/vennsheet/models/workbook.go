// Package models defines data structures for worksheet comparison.
package models

// Workbook represents a loaded workbook with its worksheets in workbook order.
type Workbook struct {
	// Path is the workbook file path as given by the caller.
	Path string `json:"path"`
	// Sheets holds every worksheet, qualifying or not.
	Sheets []SheetData `json:"sheets"`
}

// SheetNames returns the worksheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
