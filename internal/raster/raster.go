// Package raster projects a particle snapshot onto a grid of Braille
// terminal cells.
//
// Grounded on viz.Canvas, which bit-packs a 2x4 sub-pixel grid into the
// Braille block U+2800..U+28FF the same way; Render replaces Canvas's
// integer Set(x, y) API with the continuous-coordinate, dithered mapping
// the fluid needs, since particle positions are float64 world coordinates
// rather than pre-rasterized pixels.
package raster

import (
	"math"
	"strings"

	"github.com/san-kum/fluidterm/internal/particles"
)

// DefaultDitherRadius is the half-unit jitter radius used in interactive
// rendering. Tests that need a bit-exact sub-cell mapping pass 0 instead.
const DefaultDitherRadius = 0.5

// Frame is a rows x cols grid of 8-bit Braille dot accumulators.
type Frame struct {
	Rows, Cols int
	cells      []byte
}

func newFrame(rows, cols int) Frame {
	return Frame{Rows: rows, Cols: cols, cells: make([]byte, rows*cols)}
}

// At returns the accumulator byte for a given cell.
func (f Frame) At(row, col int) byte { return f.cells[row*f.Cols+col] }

func (f Frame) set(row, col int, bit uint) {
	f.cells[row*f.Cols+col] |= 1 << bit
}

// String renders the frame as rows*cols Braille code points, one row per
// line.
func (f Frame) String() string {
	var b strings.Builder
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			b.WriteRune(rune(0x2800 | uint16(f.At(row, col))))
		}
		if row < f.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Render rasterizes view into a rows x cols Braille frame. ditherRadius
// controls the per-particle jitter that breaks sampling-grid moiré; pass 0
// to disable dithering for bit-exact tests.
func Render(view particles.View, rows, cols int, ditherRadius float64) Frame {
	frame := newFrame(rows, cols)

	view.Each(func(i int, p particles.Particle) {
		dx, dy := ditherOffset(i, ditherRadius)

		px, py := p.X+dx, p.Y+dy
		row := int(math.Floor(py / 2))
		col := int(math.Floor(px))
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return
		}

		xHalf := uint(0)
		if fract(px) >= 0.5 {
			xHalf = 1
		}
		q := fract(py/2) * 4

		var bit uint
		if q < 3 {
			bit = uint(math.Floor(q)) + 3*xHalf
		} else {
			bit = 6 + xHalf
		}
		frame.set(row, col, bit)
	})

	return frame
}

// ditherOffset computes the deterministic per-particle jitter: the same
// particle dithers to the same sub-cell every frame (no flicker), while the
// hash decorrelates the offset across neighboring indices (no moiré).
func ditherOffset(i int, radius float64) (float64, float64) {
	ih := uint32(i)
	h := (ih * 0x9E3779B1) ^ (ih >> 16)
	dx := (float64(h&0xFF)/255 - 0.5) * radius
	dy := (float64((h>>8)&0xFF)/255 - 0.5) * radius
	return dx, dy
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}
