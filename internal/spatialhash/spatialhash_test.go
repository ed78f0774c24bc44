package spatialhash

import (
	"sort"
	"testing"

	"github.com/san-kum/fluidterm/internal/particles"
)

func TestBuildKeysScenarioS4(t *testing.T) {
	store := particles.New()
	store.Append(0.1, 0.1)
	store.Append(0.2, 0.1)
	store.Append(3.9, 0.1)

	h := New(2)
	h.Build(store)

	wantKeys := []Key{{0, 0}, {0, 0}, {1, 0}}
	for i, want := range wantKeys {
		if got := h.KeyAt(i); got != want {
			t.Errorf("KeyAt(%d) = %v, want %v", i, got, want)
		}
	}

	if h.Len() != 2 {
		t.Fatalf("expected 2 occupied cells, got %d", h.Len())
	}

	got01 := append([]int32(nil), h.Cell(Key{0, 0})...)
	sort.Slice(got01, func(i, j int) bool { return got01[i] < got01[j] })
	if len(got01) != 2 || got01[0] != 0 || got01[1] != 1 {
		t.Errorf("cell (0,0) = %v, want [0 1]", got01)
	}

	got10 := h.Cell(Key{1, 0})
	if len(got10) != 1 || got10[0] != 2 {
		t.Errorf("cell (1,0) = %v, want [2]", got10)
	}
}

func TestBuildEveryParticleAppearsOnce(t *testing.T) {
	store := particles.New()
	for i := 0; i < 200; i++ {
		store.Append(float64(i%17)*0.7, float64(i%13)*0.9)
	}
	h := New(1.5)
	h.Build(store)

	count := 0
	seen := make(map[int32]bool)
	for _, cell := range h.cells {
		for _, idx := range cell {
			if seen[idx] {
				t.Fatalf("index %d appears in more than one cell", idx)
			}
			seen[idx] = true
			count++
		}
	}
	if count != store.Len() {
		t.Errorf("hash holds %d indices, store has %d particles", count, store.Len())
	}
}

func TestKeyMatchesBuildTimePosition(t *testing.T) {
	store := particles.New()
	store.Append(5.5, -3.2)
	h := New(1.0)
	h.Build(store)

	p := store.At(0)
	want := h.KeyOf(p.X, p.Y)
	if got := h.KeyAt(0); got != want {
		t.Errorf("KeyAt(0) = %v, want KeyOf(position) = %v", got, want)
	}
}

func TestNegativeCoordinatesFloorCorrectly(t *testing.T) {
	h := New(2)
	if got := h.KeyOf(-0.1, -0.1); got != (Key{-1, -1}) {
		t.Errorf("KeyOf(-0.1,-0.1) = %v, want {-1 -1}", got)
	}
	if got := h.KeyOf(-2.0, 0); got != (Key{-1, 0}) {
		t.Errorf("KeyOf(-2.0,0) = %v, want {-1 0}", got)
	}
	if got := h.KeyOf(0, 0); got != (Key{0, 0}) {
		t.Errorf("KeyOf(0,0) = %v, want {0 0}", got)
	}
}

func TestEachNeighborCoversThreeByThree(t *testing.T) {
	store := particles.New()
	// one particle per cell in a 3x3 block centered at (1,1)
	for cx := int32(0); cx <= 2; cx++ {
		for cy := int32(0); cy <= 2; cy++ {
			store.Append(float64(cx)*2+0.5, float64(cy)*2+0.5)
		}
	}
	// a far-away particle that must never show up as a candidate
	store.Append(1000, 1000)

	h := New(2)
	h.Build(store)

	var candidates []int32
	h.EachNeighbor(Key{1, 1}, func(idx int32) { candidates = append(candidates, idx) })

	if len(candidates) != 9 {
		t.Fatalf("expected 9 candidates in 3x3 neighborhood, got %d: %v", len(candidates), candidates)
	}
	for _, idx := range candidates {
		if idx == 9 {
			t.Error("far-away particle leaked into 3x3 neighborhood")
		}
	}
}

func TestBuildIsDeterministicPerKey(t *testing.T) {
	store := particles.New()
	store.Append(0, 0)
	store.Append(0.5, 0.5)
	store.Append(10, 10)

	h1 := New(2)
	h1.Build(store)
	h2 := New(2)
	h2.Build(store)

	for k := range h1.cells {
		s1 := append([]int32(nil), h1.Cell(k)...)
		s2 := append([]int32(nil), h2.Cell(k)...)
		sort.Slice(s1, func(i, j int) bool { return s1[i] < s1[j] })
		sort.Slice(s2, func(i, j int) bool { return s2[i] < s2[j] })
		if len(s1) != len(s2) {
			t.Fatalf("bucket %v differs in size across builds: %v vs %v", k, s1, s2)
		}
		for i := range s1 {
			if s1[i] != s2[i] {
				t.Errorf("bucket %v differs across builds: %v vs %v", k, s1, s2)
			}
		}
	}
}
