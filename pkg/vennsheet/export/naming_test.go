package export

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Sheet1", "Sheet1"},
		{"  padded  ", "padded"},
		{"a/b\\c", "a_b_c"},
		{"Q1: results?", "Q1_ results_"},
		{"x*?<>|y", "x_y"},
		{"gene-list v2.1", "gene-list v2.1"},
		{"Ärzte_ß", "Ärzte_ß"},
		{"", ""},
		{strings.Repeat("a", 70), strings.Repeat("a", 60)},
		{strings.Repeat("é", 61), strings.Repeat("é", 60)},
	}

	for _, tt := range tests {
		result := Sanitize(tt.input)
		if result != tt.expected {
			t.Errorf("Sanitize(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestSanitizeOutputAlphabet(t *testing.T) {
	allowed := regexp.MustCompile(`^[\p{L}\p{N}_\-. ]*$`)
	inputs := []string{
		"plain", "tab\there", "new\nline", "emoji 😀 face", "quote\"d", "semi;colon",
		"#hash%percent&amp", strings.Repeat("/", 100), "中文 表格", "\x00\x01ctrl",
	}

	for _, in := range inputs {
		out := Sanitize(in)
		assert.True(t, allowed.MatchString(out), "Sanitize(%q) = %q has unsafe characters", in, out)
		assert.LessOrEqual(t, utf8.RuneCountInString(out), MaxNamePart)
	}
}

func TestStem(t *testing.T) {
	assert.Equal(t, "Genes__Control_vs_Treated_20251002-183401",
		Stem("Genes", "Control", "Treated", "20251002-183401"))
	assert.Equal(t, "a_b__x_y_vs_z_ts", Stem("a/b", "x:y", "z", "ts"))
}

func TestTimestamp(t *testing.T) {
	ts := Timestamp(time.Date(2025, 10, 2, 18, 34, 1, 999, time.UTC))
	assert.Equal(t, "20251002-183401", ts)
}

func TestSectionName(t *testing.T) {
	assert.Equal(t, "Genes", SectionName("Genes", 1))
	assert.Equal(t, strings.Repeat("x", 31), SectionName(strings.Repeat("x", 40), 1))
	assert.Equal(t, "Sheet3", SectionName("   ", 3))
	assert.Equal(t, "_", SectionName("///", 2))
}

func TestCombinedFileName(t *testing.T) {
	assert.Equal(t, "venn_batch_results_20251002-183401.xlsx", CombinedFileName("20251002-183401"))
}

func TestOutputDir(t *testing.T) {
	root := t.TempDir()
	wb := filepath.Join(root, "book.xlsx")

	dir, err := OutputDir(wb, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, DefaultDirName), dir)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Existing directory is reused.
	_, err = OutputDir(wb, "")
	require.NoError(t, err)

	blocker := filepath.Join(root, "taken")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	_, err = OutputDir(wb, "taken")
	assert.Error(t, err)

	for _, name := range []string{".", "..", "a/b"} {
		_, err = OutputDir(wb, name)
		assert.ErrorIs(t, err, ErrInvalidDirName, name)
	}
}

func TestValidDirName(t *testing.T) {
	assert.True(t, ValidDirName("Venn_Outputs"))
	assert.True(t, ValidDirName("..hidden"))
	assert.False(t, ValidDirName(""))
	assert.False(t, ValidDirName("."))
	assert.False(t, ValidDirName(".."))
	assert.False(t, ValidDirName("out/sub"))
}
