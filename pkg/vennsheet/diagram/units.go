package diagram

// PointsPerInch is the typographic point density used for font sizes.
const PointsPerInch = 72.0

// InchesToPixels converts a length in inches to pixels at the given DPI.
func InchesToPixels(in, dpi float64) int {
	return int(in*dpi + 0.5)
}

// PointsToPixels converts a length in points to pixels at the given DPI.
// 1 point = 1/72 inch, so at 150 DPI one point is 150/72 pixels.
func PointsToPixels(pt, dpi float64) float64 {
	return pt * dpi / PointsPerInch
}
