// Package export writes comparison results to image, CSV and workbook files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultDirName is the output directory created next to the workbook.
	DefaultDirName = "Venn_Outputs"
	// TimestampLayout formats the batch timestamp embedded in file names.
	TimestampLayout = "20060102-150405"
	// MaxNamePart is the rune limit of one sanitized name component.
	MaxNamePart = 60
	// MaxSectionName is the spreadsheet sheet-name limit.
	MaxSectionName = 31
)

// ErrInvalidDirName indicates an output directory name that is not a
// single subdirectory element.
var ErrInvalidDirName = errors.New("invalid output directory name")

var unsafeRun = regexp.MustCompile(`[^\p{L}\p{N}_\-. ]+`)

// Sanitize makes s safe for use in a file name: surrounding whitespace is
// trimmed, every run of characters other than letters, digits, '_', '-',
// '.' and space becomes a single '_', and the result is cut to 60 runes.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = unsafeRun.ReplaceAllString(s, "_")
	return truncate(s, MaxNamePart)
}

// Stem builds the shared file name stem of a worksheet's artifacts.
func Stem(sheet, labelA, labelB, ts string) string {
	return fmt.Sprintf("%s__%s_vs_%s_%s", Sanitize(sheet), Sanitize(labelA), Sanitize(labelB), ts)
}

// Timestamp formats t with second precision.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// SectionName returns the combined-workbook sheet name for a worksheet,
// falling back to "Sheet<position>" when nothing survives sanitizing.
func SectionName(sheet string, position int) string {
	name := truncate(Sanitize(sheet), MaxSectionName)
	if name == "" {
		return fmt.Sprintf("Sheet%d", position)
	}
	return name
}

// CombinedFileName names the combined workbook of a batch.
func CombinedFileName(ts string) string {
	return "venn_batch_results_" + ts + ".xlsx"
}

// ValidDirName reports whether name is a single path element naming a
// subdirectory.
func ValidDirName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return name == filepath.Base(name)
}

// OutputDir returns dirName next to the workbook, creating it if absent.
func OutputDir(workbookPath, dirName string) (string, error) {
	if dirName == "" {
		dirName = DefaultDirName
	}
	if !ValidDirName(dirName) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirName, dirName)
	}
	dir := filepath.Join(filepath.Dir(workbookPath), dirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return dir, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
