package models

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidStyle indicates a style value outside its valid range.
var ErrInvalidStyle = errors.New("invalid style")

// Label height bounds, as a factor of the circle radius.
const (
	MinLabelHeight = 0.9
	MaxLabelHeight = 1.6
)

var hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Style configures how diagrams are drawn. It applies to every worksheet.
type Style struct {
	// ColorA is the fill color of the left circle (hex, e.g. "#f4c27a").
	ColorA string `json:"color_a" yaml:"color_a"`
	// ColorB is the fill color of the right circle.
	ColorB string `json:"color_b" yaml:"color_b"`
	// Alpha is the fill transparency in [0, 1].
	Alpha float64 `json:"alpha" yaml:"alpha"`
	// LabelHeight places labels at radius*LabelHeight above the axis.
	LabelHeight float64 `json:"label_height" yaml:"label_height"`
}

// DefaultStyle returns the initial style.
func DefaultStyle() Style {
	return Style{
		ColorA:      "#f4c27a",
		ColorB:      "#a6d49f",
		Alpha:       0.45,
		LabelHeight: 1.12,
	}
}

// Validate reports whether every style value is within range.
func (s Style) Validate() error {
	if !(s.Alpha >= 0 && s.Alpha <= 1) {
		return fmt.Errorf("%w: alpha %v must be within [0, 1]", ErrInvalidStyle, s.Alpha)
	}
	if !(s.LabelHeight >= MinLabelHeight && s.LabelHeight <= MaxLabelHeight) {
		return fmt.Errorf("%w: label height %v must be within [%v, %v]",
			ErrInvalidStyle, s.LabelHeight, MinLabelHeight, MaxLabelHeight)
	}
	if !hexColorPattern.MatchString(s.ColorA) {
		return fmt.Errorf("%w: color A %q is not a hex color", ErrInvalidStyle, s.ColorA)
	}
	if !hexColorPattern.MatchString(s.ColorB) {
		return fmt.Errorf("%w: color B %q is not a hex color", ErrInvalidStyle, s.ColorB)
	}
	return nil
}
