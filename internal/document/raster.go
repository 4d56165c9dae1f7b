package document

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	pageMargin   = 48
	indentStep   = 18
	glyphWidth   = 7
	glyphHeight  = 13
	glyphAscent  = 11
	lineSpacing  = 6
	headingSpace = 10
)

// Rasterizer renders layout pages to RGBA bitmaps. Everything is drawn
// at scale times the nominal page size, so the PDF placement downscales
// it back to page width and the extra pixels become resolution.
type Rasterizer struct {
	pageWidth  int
	pageHeight int
	scale      int
}

// NewRasterizer creates a rasterizer for the given nominal page size in
// pixels. Scale below one is clamped to one.
func NewRasterizer(pageWidth, pageHeight, scale int) *Rasterizer {
	if scale < 1 {
		scale = 1
	}
	return &Rasterizer{pageWidth: pageWidth, pageHeight: pageHeight, scale: scale}
}

// SliceHeight is the bitmap height corresponding to one output page.
func (r *Rasterizer) SliceHeight() int {
	return r.pageHeight * r.scale
}

// Render draws a page. The bitmap is at least one page tall and grows
// when the content overflows, so the exporter can slice it.
func (r *Rasterizer) Render(page Page) *image.RGBA {
	width := r.pageWidth * r.scale
	contentHeight := r.measure(page)
	height := r.pageHeight * r.scale
	if contentHeight > height {
		height = contentHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	y := pageMargin * r.scale
	for _, line := range page.Lines {
		y = r.drawLine(img, line, y)
	}
	return img
}

// measure runs the same layout pass as Render without drawing.
func (r *Rasterizer) measure(page Page) int {
	y := pageMargin * r.scale
	for _, line := range page.Lines {
		y = r.advance(line, y)
	}
	return y + pageMargin*r.scale
}

func (r *Rasterizer) styleScale(style LineStyle) int {
	switch style {
	case StyleTitle:
		return 3
	case StyleHeading, StyleSubheading:
		return 2
	default:
		return 1
	}
}

func (r *Rasterizer) lineColor(style LineStyle) color.Color {
	switch style {
	case StyleMuted, StyleFooter:
		return color.RGBA{R: 100, G: 116, B: 139, A: 255}
	default:
		return color.RGBA{R: 30, G: 41, B: 59, A: 255}
	}
}

func (r *Rasterizer) wrap(line Line) []string {
	glyph := r.styleScale(line.Style)
	usable := r.pageWidth - 2*pageMargin - line.Indent*indentStep
	maxChars := usable / (glyphWidth * glyph)
	if maxChars < 1 {
		maxChars = 1
	}
	return wrapText(line.Text, maxChars)
}

func (r *Rasterizer) advance(line Line, y int) int {
	glyph := r.styleScale(line.Style) * r.scale
	if line.Style == StyleHeading {
		y += headingSpace * r.scale
	}
	rows := len(r.wrap(line))
	return y + rows*(glyphHeight*glyph+lineSpacing*r.scale)
}

func (r *Rasterizer) drawLine(img *image.RGBA, line Line, y int) int {
	glyph := r.styleScale(line.Style) * r.scale
	if line.Style == StyleHeading {
		y += headingSpace * r.scale
	}
	x := (pageMargin + line.Indent*indentStep) * r.scale
	src := r.lineColor(line.Style)
	for _, row := range r.wrap(line) {
		drawScaled(img, row, x, y+glyphAscent*glyph, glyph, src)
		y += glyphHeight*glyph + lineSpacing*r.scale
	}
	return y
}

// drawScaled renders text with the fixed 7x13 face at an integer
// magnification by drawing at native size and blitting each source
// pixel as a scale-by-scale block.
func drawScaled(dst *image.RGBA, text string, x, y, scale int, src color.Color) {
	if text == "" {
		return
	}
	if scale == 1 {
		drawer := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(src),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(x, y),
		}
		drawer.DrawString(text)
		return
	}

	textWidth := font.MeasureString(basicfont.Face7x13, text).Ceil()
	temp := image.NewRGBA(image.Rect(0, 0, textWidth, glyphHeight))
	drawer := &font.Drawer{
		Dst:  temp,
		Src:  image.NewUniform(src),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, glyphAscent),
	}
	drawer.DrawString(text)

	top := y - glyphAscent*scale
	for ty := 0; ty < glyphHeight; ty++ {
		for tx := 0; tx < textWidth; tx++ {
			c := temp.RGBAAt(tx, ty)
			if c.A == 0 {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					dst.SetRGBA(x+tx*scale+dx, top+ty*scale+dy, c)
				}
			}
		}
	}
}

// wrapText breaks text into rows of at most maxChars, splitting on
// spaces where possible and hard-breaking oversized words.
func wrapText(text string, maxChars int) []string {
	if len(text) <= maxChars {
		return []string{text}
	}
	var rows []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		for len(word) > maxChars {
			if current.Len() > 0 {
				rows = append(rows, current.String())
				current.Reset()
			}
			rows = append(rows, word[:maxChars])
			word = word[maxChars:]
		}
		switch {
		case current.Len() == 0:
			current.WriteString(word)
		case current.Len()+1+len(word) <= maxChars:
			current.WriteByte(' ')
			current.WriteString(word)
		default:
			rows = append(rows, current.String())
			current.Reset()
			current.WriteString(word)
		}
	}
	if current.Len() > 0 {
		rows = append(rows, current.String())
	}
	if len(rows) == 0 {
		rows = []string{""}
	}
	return rows
}
