package diagram

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderOptions controls rasterization.
type RenderOptions struct {
	// DPI is the output resolution.
	DPI float64
	// Width and Height are the figure size in inches.
	Width, Height float64
	// Tight crops the image to the drawn content plus Pad inches.
	Tight bool
	Pad   float64
}

// DefaultRenderOptions returns a 6x6 inch figure at 150 DPI, tightly cropped.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		DPI:    150,
		Width:  6,
		Height: 6,
		Tight:  true,
		Pad:    0.1,
	}
}

// Plot area of the figure, as fractions of its size.
const (
	plotLeft   = 0.125
	plotRight  = 0.9
	plotBottom = 0.11
	plotTop    = 0.88
)

// Canvas maps data units onto a pixel surface with equal aspect.
type Canvas struct {
	Width, Height int
	DPI           float64
	// Scale is pixels per data unit.
	Scale float64
	// OriginX, OriginY is the pixel position of data point (0, 0).
	OriginX, OriginY float64
}

// NewCanvas fits the scene window into the plot area of a figure, keeping
// the aspect ratio and centring the window.
func NewCanvas(window [2]Point, opts RenderOptions) Canvas {
	w := InchesToPixels(opts.Width, opts.DPI)
	h := InchesToPixels(opts.Height, opts.DPI)

	areaW := float64(w) * (plotRight - plotLeft)
	areaH := float64(h) * (plotTop - plotBottom)
	spanX := window[1].X - window[0].X
	spanY := window[1].Y - window[0].Y
	scale := math.Min(areaW/spanX, areaH/spanY)

	centerX := float64(w) * (plotLeft + plotRight) / 2
	// Pixel rows grow downward, so the plot centre is measured from the top.
	centerY := float64(h) * (1 - (plotBottom+plotTop)/2)
	midX := (window[0].X + window[1].X) / 2
	midY := (window[0].Y + window[1].Y) / 2

	return Canvas{
		Width:   w,
		Height:  h,
		DPI:     opts.DPI,
		Scale:   scale,
		OriginX: centerX - midX*scale,
		OriginY: centerY + midY*scale,
	}
}

// Pixel converts a data point into pixel coordinates.
func (c Canvas) Pixel(p Point) (x, y float64) {
	return c.OriginX + p.X*c.Scale, c.OriginY - p.Y*c.Scale
}

// Draw paints the scene onto r. The surface is fully repainted, starting
// with a white background.
func Draw(r chart.Renderer, scene Scene, c Canvas) error {
	regular, bold, err := loadFonts()
	if err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	r.SetDPI(c.DPI)

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(c.Width, 0)
	r.LineTo(c.Width, c.Height)
	r.LineTo(0, c.Height)
	r.Close()
	r.Fill()

	for _, circle := range scene.Circles {
		x, y := c.Pixel(circle.Center)
		radius := circle.Radius * c.Scale
		r.SetFillColor(circle.Fill)
		r.SetStrokeColor(circle.Stroke)
		r.SetStrokeWidth(PointsToPixels(EdgeWidth, c.DPI))
		r.MoveTo(round(x+radius), round(y))
		r.ArcTo(round(x), round(y), radius, radius, 0, 2*math.Pi)
		r.Close()
		r.FillStroke()
	}

	for _, text := range scene.Texts {
		if text.Bold {
			r.SetFont(bold)
		} else {
			r.SetFont(regular)
		}
		r.SetFontSize(text.Size)
		r.SetFontColor(drawing.ColorBlack)

		box := r.MeasureText(text.Body)
		x, y := c.Pixel(text.At)
		x -= float64(box.Width()) / 2
		y -= PointsToPixels(text.OffsetY, c.DPI)
		if text.VAlign == AlignMiddle {
			y += float64(box.Height()) / 2
		}
		r.Text(text.Body, round(x), round(y))
	}

	return nil
}

// RenderPNG rasterizes the scene on a fresh surface and writes it as PNG.
func RenderPNG(w io.Writer, scene Scene, opts RenderOptions) error {
	c := NewCanvas(scene.Window, opts)

	r, err := chart.PNG(c.Width, c.Height)
	if err != nil {
		return fmt.Errorf("create surface: %w", err)
	}
	if err := Draw(r, scene, c); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}
	if !opts.Tight {
		_, err := w.Write(buf.Bytes())
		return err
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode raster: %w", err)
	}
	pad := InchesToPixels(opts.Pad, opts.DPI)
	return png.Encode(w, cropToContent(img, pad))
}

// cropToContent trims uniform white margins, leaving pad pixels around the
// non-white content. A fully white image is returned unchanged.
func cropToContent(img image.Image, pad int) image.Image {
	b := img.Bounds()
	content := image.Rectangle{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isWhite(img.At(x, y)) {
				continue
			}
			content = content.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	if content.Empty() {
		return img
	}

	crop := image.Rect(content.Min.X-pad, content.Min.Y-pad, content.Max.X+pad, content.Max.Y+pad).Intersect(b)
	out := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Draw(out, out.Bounds(), img, crop.Min, draw.Src)
	return out
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func round(f float64) int {
	return int(math.Round(f))
}
