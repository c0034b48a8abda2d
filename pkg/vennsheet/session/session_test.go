package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
)

func workbook(path string, sheets ...models.SheetData) *models.Workbook {
	return &models.Workbook{Path: path, Sheets: sheets}
}

func sheet(name string, headers ...string) models.SheetData {
	cols := make([]models.Column, len(headers))
	for i := range cols {
		cols[i] = models.StringColumn("v", "w")
	}
	return models.SheetData{Name: name, Headers: headers, Columns: cols}
}

func loaded(t *testing.T) *Session {
	t.Helper()
	s := New(models.DefaultStyle())
	require.NoError(t, s.Load(workbook("book.xlsx",
		sheet("One", "A1", "B1"),
		sheet("Narrow", "Only"),
		sheet("Two", "A2", "B2", "C2"),
		sheet("Three", "A3", "B3"),
	)))
	return s
}

func TestLoadKeepsQualifyingSheets(t *testing.T) {
	s := loaded(t)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, "book.xlsx", s.WorkbookPath())
	assert.Equal(t, 0, s.Index())

	var names []string
	for _, e := range s.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"One", "Two", "Three"}, names)

	e, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, [2]string{"A1", "B1"}, e.Labels)
	assert.Equal(t, [2]string{"A1", "B1"}, e.Headers)
}

func TestLoadWithoutUsableSheetsKeepsState(t *testing.T) {
	s := loaded(t)
	s.Next()
	s.SetLabels("Custom", "")

	err := s.Load(workbook("other.xlsx", sheet("Narrow", "Only"), sheet("Empty")))
	assert.ErrorIs(t, err, ErrNoUsableSheets)

	assert.Equal(t, "book.xlsx", s.WorkbookPath())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.Index())
	e, _ := s.Active()
	assert.Equal(t, [2]string{"Custom", "B2"}, e.Labels)
}

func TestLoadReplacesWholesale(t *testing.T) {
	s := loaded(t)
	s.Next()
	s.SetLabels("x", "y")

	require.NoError(t, s.Load(workbook("new.xlsx", sheet("Two", "P", "Q"))))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.Index())
	e, _ := s.Active()
	assert.Equal(t, [2]string{"P", "Q"}, e.Labels)
}

func TestNavigationWraps(t *testing.T) {
	s := loaded(t)

	s.Previous()
	assert.Equal(t, 2, s.Index())
	s.Next()
	assert.Equal(t, 0, s.Index())
	s.Next()
	s.Next()
	s.Next()
	assert.Equal(t, 0, s.Index())

	assert.True(t, s.SelectName("Three"))
	assert.Equal(t, 2, s.Index())
	assert.False(t, s.SelectName("Missing"))
	assert.True(t, s.Select(1))
	assert.False(t, s.Select(3))
	assert.Equal(t, 1, s.Index())
}

func TestEmptySessionIsNoOp(t *testing.T) {
	s := New(models.DefaultStyle())

	s.Next()
	s.Previous()
	s.SetLabels("a", "b")
	s.ResetLabels()

	assert.False(t, s.HasData())
	assert.Equal(t, 0, s.Index())
	_, ok := s.Active()
	assert.False(t, ok)
	_, ok = s.Compare()
	assert.False(t, ok)
}

func TestSetLabels(t *testing.T) {
	s := loaded(t)

	s.SetLabels("  Control ", "Treated")
	e, _ := s.Active()
	assert.Equal(t, [2]string{"Control", "Treated"}, e.Labels)

	s.SetLabels("   ", "")
	e, _ = s.Active()
	assert.Equal(t, [2]string{"A1", "B1"}, e.Labels)

	// Labels are per worksheet.
	s.SetLabels("L", "R")
	s.Next()
	e, _ = s.Active()
	assert.Equal(t, [2]string{"A2", "B2"}, e.Labels)
	s.Previous()
	e, _ = s.Active()
	assert.Equal(t, [2]string{"L", "R"}, e.Labels)

	s.ResetLabels()
	e, _ = s.Active()
	assert.Equal(t, [2]string{"A1", "B1"}, e.Labels)
}

func TestEntriesIsACopy(t *testing.T) {
	s := loaded(t)
	entries := s.Entries()
	entries[0].Labels = [2]string{"mutated", "mutated"}

	e, _ := s.Active()
	assert.Equal(t, [2]string{"A1", "B1"}, e.Labels)
}

func TestCompareActive(t *testing.T) {
	s := New(models.DefaultStyle())
	require.NoError(t, s.Load(workbook("b.xlsx", models.SheetData{
		Name:    "S",
		Headers: []string{"C1", "C2"},
		Columns: []models.Column{
			{"a", "b", "b", "c", nil},
			{"b", "c", "d"},
		},
	})))

	p, ok := s.Compare()
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, p.UniqueA)
	assert.Equal(t, []string{"d"}, p.UniqueB)
	assert.Equal(t, []string{"b", "c"}, p.Shared)
}

func TestSetStyleRejectsInvalid(t *testing.T) {
	s := New(models.DefaultStyle())

	err := s.SetAlphaLabelHeight(1.5, 1.2)
	assert.ErrorIs(t, err, models.ErrInvalidStyle)
	assert.Equal(t, 0.45, s.Style().Alpha)
	assert.Equal(t, 1.12, s.Style().LabelHeight)

	err = s.SetAlphaLabelHeight(0.3, 2.0)
	assert.ErrorIs(t, err, models.ErrInvalidStyle)
	assert.Equal(t, 0.45, s.Style().Alpha)

	require.NoError(t, s.SetAlphaLabelHeight(0.3, 1.5))
	assert.Equal(t, 0.3, s.Style().Alpha)
	assert.Equal(t, 1.5, s.Style().LabelHeight)

	assert.Error(t, s.SetColors("#123456", "not-a-color"))
	assert.Equal(t, "#f4c27a", s.Style().ColorA)
	require.NoError(t, s.SetColors("#123456", "#abc"))
	assert.Equal(t, "#abc", s.Style().ColorB)
}

func TestNewFallsBackToDefaultStyle(t *testing.T) {
	bad := models.DefaultStyle()
	bad.Alpha = -1
	assert.Equal(t, models.DefaultStyle(), New(bad).Style())
}
