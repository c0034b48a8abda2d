// Package session holds the worksheets of one loaded workbook, their
// editable labels, the active-sheet cursor and the current visual style.
//
// A Session is owned by its caller and is not safe for concurrent use.
package session

import (
	"errors"
	"strings"

	"github.com/ukaji3/vennsheet/pkg/vennsheet/compare"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
)

// ErrNoUsableSheets indicates no worksheet has at least two columns.
var ErrNoUsableSheets = errors.New("no sheets with at least two columns found")

// Session is the state of one interactive comparison session.
type Session struct {
	path    string
	entries []models.Entry
	idx     int
	style   models.Style
}

// New creates an empty session using style, or the default style when
// style is invalid.
func New(style models.Style) *Session {
	if style.Validate() != nil {
		style = models.DefaultStyle()
	}
	return &Session{style: style}
}

// Load replaces the session's worksheets with the qualifying worksheets of
// wb and activates the first one. On error the session is unchanged.
func (s *Session) Load(wb *models.Workbook) error {
	var entries []models.Entry
	for _, sheet := range wb.Sheets {
		pair, err := sheet.Pair()
		if err != nil {
			continue
		}
		entries = append(entries, models.NewEntry(sheet.Name, pair))
	}
	if len(entries) == 0 {
		return ErrNoUsableSheets
	}

	s.path = wb.Path
	s.entries = entries
	s.idx = 0
	return nil
}

// HasData reports whether any worksheet is loaded.
func (s *Session) HasData() bool {
	return len(s.entries) > 0
}

// Len returns the number of loaded worksheets.
func (s *Session) Len() int {
	return len(s.entries)
}

// Index returns the position of the active worksheet.
func (s *Session) Index() int {
	return s.idx
}

// WorkbookPath returns the path of the loaded workbook.
func (s *Session) WorkbookPath() string {
	return s.path
}

// Entries returns a copy of the loaded worksheets in workbook order.
func (s *Session) Entries() []models.Entry {
	return append([]models.Entry(nil), s.entries...)
}

// Active returns the active worksheet.
func (s *Session) Active() (models.Entry, bool) {
	if !s.HasData() {
		return models.Entry{}, false
	}
	return s.entries[s.idx], true
}

// Select activates the worksheet at position i.
func (s *Session) Select(i int) bool {
	if i < 0 || i >= len(s.entries) {
		return false
	}
	s.idx = i
	return true
}

// SelectName activates the worksheet called name.
func (s *Session) SelectName(name string) bool {
	for i, e := range s.entries {
		if e.Name == name {
			s.idx = i
			return true
		}
	}
	return false
}

// Next activates the following worksheet, wrapping to the first.
func (s *Session) Next() {
	if !s.HasData() {
		return
	}
	s.idx = (s.idx + 1) % len(s.entries)
}

// Previous activates the preceding worksheet, wrapping to the last.
func (s *Session) Previous() {
	if !s.HasData() {
		return
	}
	s.idx = (s.idx - 1 + len(s.entries)) % len(s.entries)
}

// SetLabels sets the active worksheet's display labels. A label that is
// blank after trimming falls back to the column header.
func (s *Session) SetLabels(labelA, labelB string) {
	if !s.HasData() {
		return
	}
	e := &s.entries[s.idx]
	e.Labels = [2]string{
		labelOrHeader(labelA, e.Headers[0]),
		labelOrHeader(labelB, e.Headers[1]),
	}
}

// ResetLabels restores the active worksheet's labels to its headers.
func (s *Session) ResetLabels() {
	if !s.HasData() {
		return
	}
	e := &s.entries[s.idx]
	e.Labels = e.Headers
}

func labelOrHeader(label, header string) string {
	if l := strings.TrimSpace(label); l != "" {
		return l
	}
	return header
}

// Compare returns the partition of the active worksheet.
func (s *Session) Compare() (models.Partition, bool) {
	e, ok := s.Active()
	if !ok {
		return models.Partition{}, false
	}
	return compare.ComparePair(e.Pair), true
}
