package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/plotstream/plotstream/src/colorscale"
)

// DrawBadge draws a small status string onto the provided image near the
// bottom-left, over a semi-opaque backdrop for readability.
func DrawBadge(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	// shadow first so the text stays legible on busy backgrounds
	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

// drawColorBar paints a vertical gradient strip along the right edge with
// the feature range's min/max labels. Interpolation errors leave the image
// untouched; the scale was validated at construction.
func drawColorBar(img image.Image, scale colorscale.Scale, featRange [2]float64) image.Image {
	if img == nil {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	stripW := 12
	stripH := (b.Dy() * 3) / 5
	x0 := b.Max.X - stripW - 10
	y0 := b.Min.Y + (b.Dy()-stripH)/2
	for dy := 0; dy < stripH; dy++ {
		// top of the strip is the high end of the range
		t := 1 - float64(dy)/float64(stripH-1)
		col, err := scale.Interpolate(t)
		if err != nil {
			return img
		}
		for dx := 0; dx < stripW; dx++ {
			rgba.SetRGBA(x0+dx, y0+dy, color.RGBA{R: col.R, G: col.G, B: col.B, A: col.A})
		}
	}

	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 64, G: 64, B: 64, A: 255})
	drawLabel := func(s string, y int) {
		dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
		tw := dr.MeasureString(s).Ceil()
		dr.Dot = fixed.Point26_6{X: fixed.I(x0 + stripW/2 - tw/2), Y: fixed.I(y)}
		dr.DrawString(s)
	}
	drawLabel(FormatTick(featRange[1]), y0-4)
	drawLabel(FormatTick(featRange[0]), y0+stripH+face.Metrics().Ascent.Ceil()+2)
	return rgba
}
