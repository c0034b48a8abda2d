package export

// CombinedStatus tags what happened to a worksheet in the combined workbook.
type CombinedStatus string

const (
	// CombinedSkipped means no combined workbook was being written.
	CombinedSkipped CombinedStatus = "skipped"
	// CombinedWritten means the worksheet's table was appended.
	CombinedWritten CombinedStatus = "written"
	// CombinedFailed means the append failed; the PNG and CSV are unaffected.
	CombinedFailed CombinedStatus = "failed"
)

// SheetOutcome describes the artifacts written for one worksheet.
type SheetOutcome struct {
	Sheet    string         `json:"sheet"`
	Stem     string         `json:"stem"`
	PNGPath  string         `json:"png_path"`
	CSVPath  string         `json:"csv_path"`
	Section  string         `json:"section,omitempty"`
	Combined CombinedStatus `json:"combined"`
	// Err holds the append error when Combined is CombinedFailed.
	Err error `json:"-"`
}

// Report summarizes one export call.
type Report struct {
	// Dir is the output directory.
	Dir string `json:"dir"`
	// Timestamp is shared by every file of the call.
	Timestamp string `json:"timestamp"`
	// Sheets lists successfully exported worksheets in processing order.
	Sheets []SheetOutcome `json:"sheets"`
	// Done is the number of worksheets exported.
	Done int `json:"done"`
	// CombinedPath is the combined workbook, empty when none was finalized.
	CombinedPath string `json:"combined_path,omitempty"`
	// Warnings collects non-fatal problems for the user.
	Warnings []string `json:"warnings,omitempty"`
}

// Paths returns every file written, in order.
func (r *Report) Paths() []string {
	var paths []string
	for _, s := range r.Sheets {
		paths = append(paths, s.PNGPath, s.CSVPath)
	}
	if r.CombinedPath != "" {
		paths = append(paths, r.CombinedPath)
	}
	return paths
}

func (r *Report) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
