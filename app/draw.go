package app

import (
	"image"
	"image/color"

	"tally/hal"
	"tally/ui"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

// Black theme palette.
var (
	colBg      = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colPanel   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colText    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colSidebar = color.RGBA{R: 15, G: 15, B: 15, A: 255}
	colTitle   = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colEntry   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colResult  = color.RGBA{R: 100, G: 200, B: 100, A: 255}
	colFlash   = color.RGBA{R: 100, G: 150, B: 255, A: 255}
)

var (
	displayFont   = &freesans.Regular18pt7b
	displayFontSm = &freesans.Regular12pt7b
	labelFont     = &freesans.Regular9pt7b
)

// labelAscent approximates the cap height of labelFont, used to center
// button labels vertically.
const labelAscent = 13

func (c *Calculator) draw(f *ui.Frame) {
	fb := c.h.Display().Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	fb.ClearRGB(colBg.R, colBg.G, colBg.B)

	d := &fbDisplayer{fb: fb}
	c.drawDisplay(d, fb, f)
	c.drawButtons(d, fb, f)
	c.drawHistory(d, fb, f)
}

func (c *Calculator) drawDisplay(d *fbDisplayer, fb hal.Framebuffer, f *ui.Frame) {
	panel := image.Rect(ui.Pad, ui.Pad, ui.GridW-ui.Pad, ui.DisplayH-ui.Pad/2)
	fillRect(fb, panel, colPanel)

	if f.Memory {
		tinyfont.WriteLine(d, labelFont, int16(ui.Pad+8), int16(ui.Pad+24), "M", colTitle)
	}

	font := displayFont
	_, w := tinyfont.LineWidth(font, f.Display)
	if int(w) > panel.Dx()-44 {
		font = displayFontSm
		_, w = tinyfont.LineWidth(font, f.Display)
	}
	x := panel.Max.X - 10 - int(w)
	if x < panel.Min.X+4 {
		x = panel.Min.X + 4
	}
	tinyfont.WriteLine(d, font, int16(x), int16(panel.Max.Y-14), f.Display, colText)
}

func (c *Calculator) drawButtons(d *fbDisplayer, fb hal.Framebuffer, f *ui.Frame) {
	alpha := f.FlashAlpha(c.h.Time().Now())
	for i, b := range f.Buttons {
		fill := colPanel
		if i == f.Pressed && alpha > 0 {
			fill = blend(colPanel, colFlash, alpha)
		}
		fillRect(fb, b.Rect, fill)

		_, w := tinyfont.LineWidth(labelFont, b.Label)
		x := b.Rect.Min.X + (b.Rect.Dx()-int(w))/2
		y := b.Rect.Min.Y + (b.Rect.Dy()+labelAscent)/2
		tinyfont.WriteLine(d, labelFont, int16(x), int16(y), b.Label, colText)
	}
}

func (c *Calculator) drawHistory(d *fbDisplayer, fb hal.Framebuffer, f *ui.Frame) {
	x0 := ui.GridW
	fillRect(fb, image.Rect(x0, 0, fb.Width(), fb.Height()), colSidebar)
	if len(f.History) == 0 {
		return
	}

	tinyfont.WriteLine(d, labelFont, int16(x0+10), 24, "History", colTitle)

	y := 56
	for _, e := range f.History {
		if y > fb.Height()-50 {
			break
		}
		tinyfont.WriteLine(d, labelFont, int16(x0+10), int16(y), e.Expression, colEntry)
		y += 22
		tinyfont.WriteLine(d, labelFont, int16(x0+10), int16(y), "= "+e.Result, colResult)
		y += 30
	}
}

// blend mixes b into a by t in [0,1].
func blend(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

func fillRect(fb hal.Framebuffer, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(image.Rect(0, 0, fb.Width(), fb.Height()))
	if r.Empty() {
		return
	}
	buf := fb.Buffer()
	stride := fb.StrideBytes()
	pixel := hal.RGB565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := y*stride + r.Min.X*2
		for x := r.Min.X; x < r.Max.X; x++ {
			if off+1 >= len(buf) {
				break
			}
			buf[off] = lo
			buf[off+1] = hi
			off += 2
		}
	}
}

// fbDisplayer adapts the HAL framebuffer to the tinyfont draw target.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	buf := d.fb.Buffer()
	pixel := hal.RGB565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }
