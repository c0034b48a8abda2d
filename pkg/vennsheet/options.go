// Package vennsheet compares the first two columns of every worksheet in a
// workbook and exports the results as diagrams and tables.
package vennsheet

import (
	"go.uber.org/zap"

	"github.com/ukaji3/vennsheet/pkg/vennsheet/diagram"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/export"
)

// Options configures exports.
type Options struct {
	// OutputDirName is the directory created next to the workbook.
	OutputDirName string
	// DPI is the image resolution.
	DPI float64
	// WriteCombined specifies whether batch exports also write a combined
	// workbook. If nil, defaults to true.
	WriteCombined *bool
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{
		OutputDirName: export.DefaultDirName,
		DPI:           diagram.DefaultRenderOptions().DPI,
	}
}

// ShouldWriteCombined returns whether batch exports write a combined workbook.
func (o Options) ShouldWriteCombined() bool {
	if o.WriteCombined != nil {
		return *o.WriteCombined
	}
	return true
}

// NewExporter builds an exporter configured by o.
func (o Options) NewExporter(logger *zap.Logger) *export.Exporter {
	e := export.New(logger)
	if o.OutputDirName != "" {
		e.DirName = o.OutputDirName
	}
	if o.DPI > 0 {
		e.Render.DPI = o.DPI
	}
	return e
}
