package vennsheet

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/parser"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/session"
)

var supportedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// Open reads every worksheet of the workbook at path.
func Open(path string) (*models.Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, NewLoadError(path, "open", ErrFileNotFound)
	}
	if !supportedExtensions[strings.ToLower(filepath.Ext(path))] {
		return nil, NewLoadError(path, "open", ErrUnsupportedFormat)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, "open", err)
	}
	defer f.Close()

	wb, err := parser.ExtractWorkbook(f, path)
	if err != nil {
		return nil, NewLoadError(path, "read", err)
	}
	return wb, nil
}

// Load opens the workbook at path and loads it into sess. On any error
// sess keeps its previous worksheets.
func Load(sess *session.Session, path string) error {
	wb, err := Open(path)
	if err != nil {
		return err
	}
	if err := sess.Load(wb); err != nil {
		return NewLoadError(path, "load", err)
	}
	return nil
}
