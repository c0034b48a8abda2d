package session

import "github.com/ukaji3/vennsheet/pkg/vennsheet/models"

// Style returns the current visual style.
func (s *Session) Style() models.Style {
	return s.style
}

// SetStyle replaces the visual style. An invalid style is rejected and the
// previous style stays active.
func (s *Session) SetStyle(style models.Style) error {
	if err := style.Validate(); err != nil {
		return err
	}
	s.style = style
	return nil
}

// SetColors changes both fill colors.
func (s *Session) SetColors(colorA, colorB string) error {
	next := s.style
	next.ColorA, next.ColorB = colorA, colorB
	return s.SetStyle(next)
}

// SetAlphaLabelHeight changes the fill transparency and label height
// together; both must be valid for either to apply.
func (s *Session) SetAlphaLabelHeight(alpha, labelHeight float64) error {
	next := s.style
	next.Alpha, next.LabelHeight = alpha, labelHeight
	return s.SetStyle(next)
}
