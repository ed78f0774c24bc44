// Package particles holds the flat, index-addressable particle array that
// the simulation step and rasterizer both operate on.
//
// A particle has no identity beyond its slice index, and that index is
// stable for exactly one tick: the store may grow or shrink between ticks
// (see [Store.Resize]) but never reorders live particles.
package particles

import "math/rand"

// Particle is a single SPH particle: a 2D position and a 2D velocity.
// Mass is not a per-particle field — it is a global simulation constant.
type Particle struct {
	X, Y   float64
	VX, VY float64
}

// Bounds describes the rectangular world a particle may be seeded into.
type Bounds struct {
	Width, Height float64
}

// Store is the ordered, index-addressable particle array.
type Store struct {
	particles []Particle
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Len returns the current particle count.
func (s *Store) Len() int { return len(s.particles) }

// At returns a copy of the particle at index i.
func (s *Store) At(i int) Particle { return s.particles[i] }

// Set overwrites the particle at index i.
func (s *Store) Set(i int, p Particle) { s.particles[i] = p }

// Each calls fn once per particle in index order. fn must not mutate the
// store it is iterating — use Set for in-place updates from an integration
// pass instead.
func (s *Store) Each(fn func(i int, p Particle)) {
	for i, p := range s.particles {
		fn(i, p)
	}
}

// Slice exposes the backing array directly for hot loops (density/force
// passes) that need index access without the per-call copy At incurs. The
// returned slice aliases the store's storage; callers must not change its
// length.
func (s *Store) Slice() []Particle { return s.particles }

// Append adds a new particle at (x, y) with zero velocity.
func (s *Store) Append(x, y float64) {
	s.particles = append(s.particles, Particle{X: x, Y: y})
}

// Truncate drops every particle at index n and beyond, keeping the prefix
// untouched. No reordering occurs.
func (s *Store) Truncate(n int) {
	if n < len(s.particles) {
		s.particles = s.particles[:n]
	}
}

// View is a read-only handle onto a store's particles, for consumers (the
// rasterizer, the info panel) that must never mutate simulation state.
type View struct {
	store *Store
}

// NewView wraps a store for read-only access.
func NewView(s *Store) View { return View{store: s} }

// Len returns the current particle count.
func (v View) Len() int { return v.store.Len() }

// At returns a copy of the particle at index i.
func (v View) At(i int) Particle { return v.store.At(i) }

// Each calls fn once per particle in index order.
func (v View) Each(fn func(i int, p Particle)) { v.store.Each(fn) }

// Resize grows or shrinks the store toward target: growth appends
// uniformly-random, zero-velocity particles inside bounds; shrink drops
// the tail. The original prefix (up to min(len, target)) is left
// completely untouched — same positions, same velocities.
func (s *Store) Resize(target int, bounds Bounds, rng *rand.Rand) {
	n := len(s.particles)
	if target <= n {
		s.Truncate(target)
		return
	}
	for i := n; i < target; i++ {
		x := rng.Float64() * bounds.Width
		y := rng.Float64() * bounds.Height
		s.Append(x, y)
	}
}
