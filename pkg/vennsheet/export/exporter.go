package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/vennsheet/internal/clock"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/compare"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/diagram"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/table"
)

// ErrNothingToExport indicates the source holds no worksheets.
var ErrNothingToExport = errors.New("no worksheets to export")

// ActiveSource supplies the active worksheet for single exports.
type ActiveSource interface {
	WorkbookPath() string
	Active() (models.Entry, bool)
	Style() models.Style
}

// BatchSource supplies every worksheet for batch exports.
type BatchSource interface {
	WorkbookPath() string
	Entries() []models.Entry
	Style() models.Style
}

// Exporter writes per-worksheet artifacts and the optional combined workbook.
type Exporter struct {
	Clock  clock.Clock
	Logger *zap.Logger
	// DirName is the output directory name next to the workbook.
	DirName string
	// Render controls PNG rasterization.
	Render diagram.RenderOptions
	// OpenCombined opens the combined workbook writer. Nil means the
	// capability is unavailable.
	OpenCombined CombinedOpener
}

// New returns an Exporter with the system clock, the default output
// directory, 150 DPI tight PNGs and the excelize combined writer.
func New(logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		Clock:        clock.System{},
		Logger:       logger,
		DirName:      DefaultDirName,
		Render:       diagram.DefaultRenderOptions(),
		OpenCombined: OpenExcel,
	}
}

func (e *Exporter) log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// ExportEntry writes "<stem>.png" and "<stem>.csv" for one worksheet into
// dir and returns the written paths together with the result table.
func (e *Exporter) ExportEntry(dir, ts string, entry models.Entry, style models.Style) (SheetOutcome, models.ResultTable, error) {
	return e.exportAs(dir, Stem(entry.Name, entry.Labels[0], entry.Labels[1], ts), entry, style)
}

func (e *Exporter) exportAs(dir, stem string, entry models.Entry, style models.Style) (SheetOutcome, models.ResultTable, error) {
	labelA, labelB := entry.Labels[0], entry.Labels[1]
	p := compare.ComparePair(entry.Pair)
	tbl := table.Build(labelA, labelB, p)

	scene, err := diagram.Layout(p.Counts(), labelA, labelB, style)
	if err != nil {
		return SheetOutcome{}, tbl, err
	}

	out := SheetOutcome{
		Sheet:    entry.Name,
		Stem:     stem,
		PNGPath:  filepath.Join(dir, stem+".png"),
		CSVPath:  filepath.Join(dir, stem+".csv"),
		Combined: CombinedSkipped,
	}

	if err := writeFile(out.PNGPath, func(f *os.File) error {
		return diagram.RenderPNG(f, scene, e.Render)
	}); err != nil {
		return SheetOutcome{}, tbl, fmt.Errorf("write image: %w", err)
	}
	if err := writeFile(out.CSVPath, func(f *os.File) error {
		return table.WriteCSV(f, tbl)
	}); err != nil {
		return SheetOutcome{}, tbl, fmt.Errorf("write table: %w", err)
	}

	e.log().Debug("Exported worksheet",
		zap.String("sheet", entry.Name),
		zap.Int("unique_a", len(p.UniqueA)),
		zap.Int("unique_b", len(p.UniqueB)),
		zap.Int("shared", len(p.Shared)))
	return out, tbl, nil
}

// ExportCurrent exports the active worksheet with a fresh timestamp.
func (e *Exporter) ExportCurrent(src ActiveSource) (*Report, error) {
	entry, ok := src.Active()
	if !ok {
		return nil, ErrNothingToExport
	}

	ts := Timestamp(e.now())
	dir, err := OutputDir(src.WorkbookPath(), e.DirName)
	if err != nil {
		return nil, err
	}

	report := &Report{Dir: dir, Timestamp: ts}
	out, _, err := e.ExportEntry(dir, ts, entry, src.Style())
	if err != nil {
		return report, fmt.Errorf("export sheet %q: %w", entry.Name, err)
	}
	report.Sheets = append(report.Sheets, out)
	report.Done = 1

	e.log().Info("Saved worksheet",
		zap.String("png", out.PNGPath),
		zap.String("csv", out.CSVPath))
	return report, nil
}

// ExportAll exports every worksheet under one shared timestamp. When
// combined is set, each result table is also appended to a combined
// workbook. An unavailable combined writer or a failed append never stops
// the batch; a filesystem error does, after the combined writer is closed.
// Worksheets whose names sanitize to an already used file name get a
// positional suffix and a warning.
func (e *Exporter) ExportAll(src BatchSource, combined bool) (*Report, error) {
	entries := src.Entries()
	if len(entries) == 0 {
		return nil, ErrNothingToExport
	}

	ts := Timestamp(e.now())
	dir, err := OutputDir(src.WorkbookPath(), e.DirName)
	if err != nil {
		return nil, err
	}
	report := &Report{Dir: dir, Timestamp: ts}

	var writer CombinedWriter
	if combined {
		path := filepath.Join(dir, CombinedFileName(ts))
		writer, err = e.openCombined(path)
		if err != nil {
			writer = nil
			report.warn(fmt.Sprintf("skipping combined workbook: %v", err))
			e.log().Warn("Combined workbook skipped", zap.Error(err))
		} else {
			report.CombinedPath = path
			defer e.finalize(writer, report)
		}
	}

	style := src.Style()
	stems := make(map[string]bool, len(entries))
	for i, entry := range entries {
		stem := Stem(entry.Name, entry.Labels[0], entry.Labels[1], ts)
		if stems[strings.ToLower(stem)] {
			unique := fmt.Sprintf("%s_%d", stem, i+1)
			report.warn(fmt.Sprintf("sheet %q: file name %q already used, saved as %q", entry.Name, stem, unique))
			e.log().Warn("Repeated file name",
				zap.String("sheet", entry.Name),
				zap.String("stem", stem),
				zap.String("saved_as", unique))
			stem = unique
		}
		stems[strings.ToLower(stem)] = true

		out, tbl, err := e.exportAs(dir, stem, entry, style)
		if err != nil {
			return report, fmt.Errorf("export sheet %q: %w", entry.Name, err)
		}

		if writer != nil {
			out.Section = SectionName(entry.Name, report.Done+1)
			if err := writer.Append(out.Section, tbl); err != nil {
				out.Combined = CombinedFailed
				out.Err = err
				e.log().Warn("Worksheet left out of combined workbook",
					zap.String("sheet", entry.Name),
					zap.String("section", out.Section),
					zap.Error(err))
			} else {
				out.Combined = CombinedWritten
			}
		}

		report.Sheets = append(report.Sheets, out)
		report.Done++
	}

	e.log().Info("Saved worksheets",
		zap.Int("done", report.Done),
		zap.String("dir", dir))
	return report, nil
}

func (e *Exporter) openCombined(path string) (CombinedWriter, error) {
	if e.OpenCombined == nil {
		return nil, ErrCombinedUnavailable
	}
	w, err := e.OpenCombined(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCombinedUnavailable, err)
	}
	return w, nil
}

// finalize closes the combined writer. A failure is reported but leaves
// the per-worksheet files in place.
func (e *Exporter) finalize(w CombinedWriter, report *Report) {
	if err := w.Close(); err != nil {
		report.CombinedPath = ""
		report.warn(fmt.Sprintf("failed to finalize combined workbook: %v", err))
		e.log().Warn("Combined workbook not finalized", zap.Error(err))
		return
	}
	if report.CombinedPath != "" {
		e.log().Info("Saved combined workbook", zap.String("path", report.CombinedPath))
	}
}

func (e *Exporter) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

// writeFile creates path, lets fill write to it, and closes it, reporting
// the first error.
func writeFile(path string, fill func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
