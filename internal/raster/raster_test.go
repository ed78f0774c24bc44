package raster

import (
	"strings"
	"testing"

	"github.com/san-kum/fluidterm/internal/particles"
)

func viewOf(pts ...particles.Particle) particles.View {
	s := particles.New()
	for _, p := range pts {
		s.Append(p.X, p.Y)
	}
	return particles.NewView(s)
}

func TestRenderTwoParticlesNoDither(t *testing.T) {
	view := viewOf(
		particles.Particle{X: 0.1, Y: 0.1},
		particles.Particle{X: 1.7, Y: 3.7},
	)
	frame := Render(view, 2, 2, 0)

	if got := frame.At(0, 0); got != 0x01 {
		t.Fatalf("cell[0][0] = %#x, want 0x01", got)
	}
	if got := frame.At(1, 1); got != 0x80 {
		t.Fatalf("cell[1][1] = %#x, want 0x80", got)
	}

	s := frame.String()
	lines := strings.Split(s, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if []rune(lines[0])[0] != 0x2801 {
		t.Fatalf("top-left glyph = %U, want U+2801", []rune(lines[0])[0])
	}
	if []rune(lines[1])[1] != 0x2880 {
		t.Fatalf("bottom-right glyph = %U, want U+2880", []rune(lines[1])[1])
	}
}

func TestBitMappingCoversAllEightSubCells(t *testing.T) {
	wantBit := func(xHalf int, q int) uint {
		if q < 3 {
			return uint(q) + 3*uint(xHalf)
		}
		return 6 + uint(xHalf)
	}

	for xHalf := 0; xHalf < 2; xHalf++ {
		for q := 0; q < 4; q++ {
			x := 0.25 + float64(xHalf)*0.5 // sub-cell center within the column half
			y := (float64(q) + 0.5) / 4 * 2

			view := viewOf(particles.Particle{X: x, Y: y})
			frame := Render(view, 1, 1, 0)
			got := frame.At(0, 0)

			want := byte(1) << wantBit(xHalf, q)
			if got != want {
				t.Fatalf("xHalf=%d q=%d: bit pattern = %#x, want %#x", xHalf, q, got, want)
			}
		}
	}
}

func TestGlyphIsBaseCodePointPlusAccumulator(t *testing.T) {
	view := viewOf(
		particles.Particle{X: 0.25, Y: 0.125},
		particles.Particle{X: 0.75, Y: 0.125},
	)
	frame := Render(view, 1, 1, 0)
	want := byte(0x01 | 0x08)
	if frame.At(0, 0) != want {
		t.Fatalf("accumulator = %#x, want %#x", frame.At(0, 0), want)
	}

	s := frame.String()
	r := []rune(s)[0]
	if r != rune(0x2800|int(want)) {
		t.Fatalf("glyph = %U, want %U", r, 0x2800|int(want))
	}
}

func TestRenderSkipsOutOfBoundsPositions(t *testing.T) {
	view := viewOf(particles.Particle{X: 100, Y: 100})
	frame := Render(view, 2, 2, 0)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if frame.At(row, col) != 0 {
				t.Fatalf("cell[%d][%d] set for an out-of-bounds particle", row, col)
			}
		}
	}
}

func TestDitherIsDeterministicAcrossFrames(t *testing.T) {
	view := viewOf(particles.Particle{X: 10.3, Y: 8.6})
	a := Render(view, 20, 20, DefaultDitherRadius)
	b := Render(view, 20, 20, DefaultDitherRadius)
	if a.String() != b.String() {
		t.Fatal("same particle positions produced different frames across renders")
	}
}

func TestToSVGEmitsACircleForEachSetDot(t *testing.T) {
	view := viewOf(particles.Particle{X: 0.25, Y: 0.125})
	frame := Render(view, 1, 1, 0)
	svg := ToSVG(frame, 10)
	if strings.Count(svg, "<circle") != 1 {
		t.Fatalf("expected exactly 1 circle, got svg: %s", svg)
	}
}
