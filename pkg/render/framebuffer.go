// Package render provides the pixel canvas the rtcore demos draw into.
// It consumes core types only; nothing in the core imports it.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/taigrr/rtcore/pkg/math3d"
)

// Framebuffer is a 2D array of pixels that can be rendered to the terminal
// or encoded as PNG. Terminal output uses half-block characters (▀), so
// each terminal row shows two framebuffer rows.
type Framebuffer struct {
	Width  int          // Width in pixels (same as terminal columns)
	Height int          // Height in pixels (2x terminal rows)
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Writes outside the framebuffer are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// Plot sets the pixel under p. Coordinates are truncated toward zero and z
// is ignored.
func (fb *Framebuffer) Plot(p math3d.Point, c color.RGBA) {
	fb.SetPixel(int(p.X()), int(p.Y()), c)
}

// PlotFlipped plots p with y measured up from the bottom row.
func (fb *Framebuffer) PlotFlipped(p math3d.Point, c color.RGBA) {
	fb.SetPixel(int(p.X()), fb.Height-int(p.Y())-1, c)
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect draws a filled w x h rectangle centred on p.
func (fb *Framebuffer) DrawRect(p math3d.Point, w, h int, c color.RGBA) {
	x0 := int(p.X()) - w/2
	y0 := int(p.Y()) - h/2
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			fb.SetPixel(x, y, c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, fb.ToImage()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
