package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	placeholderBackground = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	placeholderText       = color.RGBA{R: 117, G: 117, B: 117, A: 255}
)

// Placeholder draws a blank panel with a centred message.
func Placeholder(w io.Writer, size Size, message string) error {
	size = size.normalize()
	img := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderBackground}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(placeholderText),
		Face: face,
	}
	textWidth := drawer.MeasureString(message).Ceil()
	x := (size.Width - textWidth) / 2
	y := (size.Height + face.Metrics().Ascent.Ceil()) / 2
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(message)

	return png.Encode(w, img)
}
