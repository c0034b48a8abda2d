// Package diagram lays out and renders the symmetric two-circle diagram.
//
// The layout is symbolic: circle sizes and overlap are fixed and do not
// scale with the counts they display.
package diagram

import (
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
)

// Fixed geometry in data units.
const (
	Radius      = 1.5
	CenterX     = 0.9
	CountOffset = 0.4

	XMin, XMax = -3.0, 3.0
	YMin, YMax = -2.5, 2.5

	Title = "Symmetric Venn Diagram (Counts)"

	LabelFontSize = 13.0
	CountFontSize = 16.0
	TitleFontSize = 12.0

	// TitlePad is the gap between the plot window and the title, in points.
	TitlePad = 6.0
	// EdgeWidth is the circle outline width, in points.
	EdgeWidth = 1.0
)

// VAlign is vertical text alignment relative to the anchor. Text is
// always centred horizontally on its anchor.
type VAlign int

// Vertical alignments.
const (
	AlignMiddle VAlign = iota
	AlignBottom
)

// Point is a position in data units.
type Point struct {
	X, Y float64
}

// Circle is a filled, outlined circle.
type Circle struct {
	Center Point
	Radius float64
	Fill   drawing.Color
	Stroke drawing.Color
}

// Text is a text item anchored at a data position.
type Text struct {
	At     Point
	Body   string
	Size   float64 // points
	Bold   bool
	VAlign VAlign
	// OffsetY moves the text up by this many points after anchoring.
	OffsetY float64
}

// Scene is a complete, resolution-independent description of a diagram.
type Scene struct {
	Window  [2]Point // lower-left, upper-right
	Circles []Circle
	Texts   []Text
}

// Layout computes the scene for the given counts, labels and style.
// It is a pure function of its inputs.
func Layout(c models.Counts, labelA, labelB string, s models.Style) (Scene, error) {
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}

	left := Point{X: -CenterX, Y: 0}
	right := Point{X: CenterX, Y: 0}
	alpha := uint8(s.Alpha*255 + 0.5)
	labelY := Radius * s.LabelHeight

	scene := Scene{
		Window: [2]Point{{X: XMin, Y: YMin}, {X: XMax, Y: YMax}},
		Circles: []Circle{
			{Center: left, Radius: Radius, Fill: ParseColor(s.ColorA).WithAlpha(alpha), Stroke: drawing.ColorBlack},
			{Center: right, Radius: Radius, Fill: ParseColor(s.ColorB).WithAlpha(alpha), Stroke: drawing.ColorBlack},
		},
		Texts: []Text{
			{At: Point{X: left.X, Y: labelY}, Body: labelA, Size: LabelFontSize, VAlign: AlignBottom},
			{At: Point{X: right.X, Y: labelY}, Body: labelB, Size: LabelFontSize, VAlign: AlignBottom},
			{At: Point{X: left.X - CountOffset, Y: 0}, Body: strconv.Itoa(c.UniqueA), Size: CountFontSize},
			{At: Point{X: right.X + CountOffset, Y: 0}, Body: strconv.Itoa(c.UniqueB), Size: CountFontSize},
			{At: Point{X: 0, Y: 0}, Body: strconv.Itoa(c.Shared), Size: CountFontSize, Bold: true},
			{At: Point{X: 0, Y: YMax}, Body: Title, Size: TitleFontSize, VAlign: AlignBottom, OffsetY: TitlePad},
		},
	}
	return scene, nil
}

// ParseColor parses "#rgb" or "#rrggbb" (the leading '#' is optional).
func ParseColor(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return drawing.ColorFromHex(hex)
}
