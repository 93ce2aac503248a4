package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/lucasb-eyer/go-colorful"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row shows two framebuffer rows: ▀ with fg = top
// pixel and bg = bottom pixel.
func (r *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < r.Width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(r.GetPixel(col, topY)),
					Bg: rgbaToColor(r.GetPixel(col, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// TerminalRows returns the number of terminal rows needed to show the
// framebuffer.
func (r *Framebuffer) TerminalRows() int {
	return (r.Height + 1) / 2
}

// String renders the framebuffer as styled half-block text, ready to be
// written to a terminal.
func (r *Framebuffer) String() string {
	buf := uv.NewScreenBuffer(r.Width, r.TerminalRows())
	r.Draw(buf, buf.Bounds())
	return buf.Render()
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 0, 0, 255}
	ColorGray  = color.RGBA{128, 128, 128, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Hue returns a fully saturated opaque color for a hue angle in degrees.
func Hue(deg float64) color.RGBA {
	r, g, b := colorful.Hsv(deg, 1, 1).Clamped().RGB255()
	return RGB(r, g, b)
}
