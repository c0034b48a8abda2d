package vennsheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file is not an OOXML workbook.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// LoadError represents a failure to load a workbook.
type LoadError struct {
	Path string
	Op   string // "open", "read", "load"
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load workbook %q (%s): %v", e.Path, e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, op string, err error) *LoadError {
	return &LoadError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
