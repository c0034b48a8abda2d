package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ukaji3/vennsheet/pkg/vennsheet/compare"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/export"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/session"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/table"
)

// previewLimit is the number of items listed per group.
const previewLimit = 50

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#d7875f"))
	columnStyle  = lipgloss.NewStyle().PaddingRight(4)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// renderPreview shows the active worksheet's counts and item lists.
func renderPreview(sess *session.Session) string {
	entry, _ := sess.Active()
	p, _ := sess.Compare()
	style := sess.Style()
	c := p.Counts()

	colorA := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(style.ColorA))
	colorB := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(style.ColorB))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Sheet [%d/%d]: %s", sess.Index()+1, sess.Len(), entry.Name)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d   %s %d   %s %d\n\n",
		colorA.Render(entry.Labels[0]+":"), c.UniqueA,
		titleStyle.Render("Shared:"), c.Shared,
		colorB.Render(entry.Labels[1]+":"), c.UniqueB)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		listColumn(table.UniqueColumn(entry.Labels[0]), p.UniqueA),
		listColumn(table.SharedColumn, p.Shared),
		listColumn(table.UniqueColumn(entry.Labels[1]), p.UniqueB),
	))
	b.WriteString("\n")
	return b.String()
}

func listColumn(heading string, items []string) string {
	head, more := compare.Preview(items, previewLimit)
	lines := []string{headingStyle.Render(heading)}
	if len(head) == 0 {
		lines = append(lines, mutedStyle.Render("(none)"))
	}
	lines = append(lines, head...)
	if more > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("(+%d more)", more)))
	}
	return columnStyle.Render(strings.Join(lines, "\n"))
}

// renderSheets lists every worksheet of wb.
func renderSheets(wb *models.Workbook) string {
	var b strings.Builder
	for i, sheet := range wb.Sheets {
		pair, err := sheet.Pair()
		if err != nil {
			fmt.Fprintf(&b, "%3d  %s  %s\n", i+1, sheet.Name, mutedStyle.Render("(skipped: fewer than two columns)"))
			continue
		}
		fmt.Fprintf(&b, "%3d  %s  %s | %s\n", i+1, titleStyle.Render(sheet.Name), pair.HeaderA, pair.HeaderB)
	}
	return b.String()
}

// renderReport prints written files and warnings.
func renderReport(r *export.Report) string {
	var b strings.Builder
	for _, path := range r.Paths() {
		b.WriteString(path)
		b.WriteString("\n")
	}
	for _, s := range r.Sheets {
		if s.Combined == export.CombinedFailed {
			b.WriteString(warnStyle.Render(fmt.Sprintf("warning: %s not added to combined workbook: %v", s.Sheet, s.Err)))
			b.WriteString("\n")
		}
	}
	for _, w := range r.Warnings {
		b.WriteString(warnStyle.Render("warning: " + w))
		b.WriteString("\n")
	}
	b.WriteString(titleStyle.Render("Exported " + strconv.Itoa(r.Done) + " sheet(s) to " + r.Dir))
	b.WriteString("\n")
	return b.String()
}
