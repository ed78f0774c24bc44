package particles

import (
	"math/rand"
	"testing"
)

func TestAppendZeroVelocity(t *testing.T) {
	s := New()
	s.Append(3, 4)
	if s.Len() != 1 {
		t.Fatalf("expected 1 particle, got %d", s.Len())
	}
	p := s.At(0)
	if p.X != 3 || p.Y != 4 || p.VX != 0 || p.VY != 0 {
		t.Errorf("Append(3,4) = %+v, want X=3 Y=4 VX=0 VY=0", p)
	}
}

func TestTruncateNoReorder(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.Append(float64(i), 0)
	}
	s.Truncate(3)
	if s.Len() != 3 {
		t.Fatalf("expected len 3, got %d", s.Len())
	}
	for i := 0; i < 3; i++ {
		if s.At(i).X != float64(i) {
			t.Errorf("index %d reordered: got X=%v", i, s.At(i).X)
		}
	}
}

func TestResizeGrowKeepsOriginalUntouched(t *testing.T) {
	s := New()
	s.Append(1, 2)
	s.Set(0, Particle{X: 1, Y: 2, VX: 5, VY: -5})

	rng := rand.New(rand.NewSource(1))
	bounds := Bounds{Width: 80, Height: 40}
	s.Resize(500, bounds, rng)

	if s.Len() != 500 {
		t.Fatalf("expected 500 particles, got %d", s.Len())
	}
	orig := s.At(0)
	if orig.X != 1 || orig.Y != 2 || orig.VX != 5 || orig.VY != -5 {
		t.Errorf("original particle mutated by growth: %+v", orig)
	}
	for i := 1; i < 500; i++ {
		p := s.At(i)
		if p.VX != 0 || p.VY != 0 {
			t.Errorf("new particle %d has nonzero velocity: %+v", i, p)
		}
		if p.X < 0 || p.X > bounds.Width || p.Y < 0 || p.Y > bounds.Height {
			t.Errorf("new particle %d out of bounds: %+v", i, p)
		}
	}
}

func TestResizeShrinkDropsTail(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		s.Append(float64(i), float64(i))
	}
	rng := rand.New(rand.NewSource(1))
	s.Resize(4, Bounds{Width: 10, Height: 10}, rng)
	if s.Len() != 4 {
		t.Fatalf("expected len 4, got %d", s.Len())
	}
	for i := 0; i < 4; i++ {
		if s.At(i).X != float64(i) {
			t.Errorf("shrink reordered index %d: %+v", i, s.At(i))
		}
	}
}

func TestEachVisitsInOrder(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.Append(float64(i), 0)
	}
	var seen []int
	s.Each(func(i int, p Particle) { seen = append(seen, i) })
	for i, idx := range seen {
		if idx != i {
			t.Errorf("Each visited out of order: %v", seen)
			break
		}
	}
}
