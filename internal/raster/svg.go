package raster

import (
	"fmt"
	"strings"
)

// dotPosition maps a Braille accumulator bit (0..7) to its (row, col)
// position in the 4-tall x 2-wide sub-pixel grid, per the standard Braille
// dot numbering: dots 1-2-3-7 form the left column, 4-5-6-8 the right.
var dotPosition = [8][2]int{
	{0, 0}, {1, 0}, {2, 0}, {0, 1},
	{1, 1}, {2, 1}, {3, 0}, {3, 1},
}

// ToSVG renders a frame as an SVG document, one filled circle per set
// sub-pixel dot, scaled so each terminal cell occupies scale*2 x scale*4
// pixels. Adapted from export.CanvasToSVG for Frame's accumulator bytes in
// place of viz.Canvas's rune grid.
func ToSVG(f Frame, scale float64) string {
	width := float64(f.Cols) * scale * 2
	height := float64(f.Rows) * scale * 4
	dotRadius := scale * 0.4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#4fb8ff">
`, width, height, width, height)

	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			b := f.At(row, col)
			if b == 0 {
				continue
			}
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for bit := 0; bit < 8; bit++ {
				if b&(1<<uint(bit)) == 0 {
					continue
				}
				pos := dotPosition[bit]
				cx := baseX + float64(pos[1])*scale + scale/2
				cy := baseY + float64(pos[0])*scale + scale/2
				fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius)
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
