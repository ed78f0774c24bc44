// Package fluidsim implements the SPH update: build hash, compute
// densities, compute pressures, compute forces (gravity, pressure,
// viscosity, mouse), integrate, enforce boundaries.
//
// Grounded on internal/physics/sph.go's Derive method, which folds the
// same six passes into one O(n^2) function; fluidsim splits them into
// named phases, swaps the O(n^2) neighbor scan for spatialhash.Hash, and
// fans phases 2 and 4 out across workers.ForEachParticle. There is no
// dynamo.System/Integrator indirection here — that layer exists to plug
// interchangeable physics models into one generic simulation loop; this
// simulator only ever runs one model.
package fluidsim

import (
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/fluidterm/internal/kernel"
	"github.com/san-kum/fluidterm/internal/particles"
	"github.com/san-kum/fluidterm/internal/settings"
	"github.com/san-kum/fluidterm/internal/spatialhash"
	"github.com/san-kum/fluidterm/internal/workers"
)

// ParticleMass is the global per-particle mass constant; particles carry
// no individual mass field.
const ParticleMass = 1.0

// minChunk is the smallest particle range worth handing to a goroutine
// rather than running inline.
const minChunk = 256

// Sim owns the particle store, the spatial hash, and the per-tick scratch
// buffers for density/pressure/force.
type Sim struct {
	store  *particles.Store
	hash   *spatialhash.Hash
	bounds particles.Bounds

	density  []float64
	pressure []float64
	forceX   []float64
	forceY   []float64

	lastStep time.Duration
}

// New returns a simulation over an empty store with the given world
// extents.
func New(width, height float64) *Sim {
	return &Sim{
		store:  particles.New(),
		hash:   spatialhash.New(2.0),
		bounds: particles.Bounds{Width: width, Height: height},
	}
}

// Seed fills the store with n particles arranged in a dam-break block: a
// square grid of particles near the origin, spaced at half the smoothing
// radius, with small positional jitter and zero velocity.
func (s *Sim) Seed(n int, h float64, rng *rand.Rand) {
	s.store = particles.New()
	cols := int(math.Sqrt(float64(n)))
	if cols < 1 {
		cols = 1
	}
	for i := 0; i < n; i++ {
		row, col := i/cols, i%cols
		x := float64(col)*h*0.5 + 1.0 + rng.Float64()*0.1
		y := float64(row)*h*0.5 + 1.0 + rng.Float64()*0.1
		s.store.Append(x, y)
	}
}

// Particles returns a read-only view of the particle array.
func (s *Sim) Particles() particles.View { return particles.NewView(s.store) }

// LastFrameMS returns the wall-time of the most recent Step, in
// milliseconds.
func (s *Sim) LastFrameMS() float64 {
	return float64(s.lastStep) / float64(time.Millisecond)
}

// Resize sets the world extents. Must only be called at a tick boundary.
func (s *Sim) Resize(width, height float64) {
	s.bounds = particles.Bounds{Width: width, Height: height}
}

// SyncParticleCount grows or shrinks the particle array toward target, per
// particles.Store.Resize. Must only be called at a tick boundary.
func (s *Sim) SyncParticleCount(target int, rng *rand.Rand) {
	s.store.Resize(target, s.bounds, rng)
}

// Step advances the simulation by dt seconds using snap (a settings
// snapshot held immutable for the whole step) and mf (the mouse force,
// read once). It returns the wall-time the step took.
func (s *Sim) Step(dt float64, snap settings.Values, mf settings.MouseForce) time.Duration {
	start := time.Now()

	n := s.store.Len()
	s.ensureScratch(n)

	coeffs := kernel.NewCoeffs(snap.SmoothingRadius)
	s.hash.CellSize = snap.SmoothingRadius
	s.hash.Build(s.store)

	slice := s.store.Slice()

	// Phase 2: densities.
	workers.ForEachParticle(n, minChunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			pi := slice[i]
			key := s.hash.KeyAt(i)
			rho := 0.0
			s.hash.EachNeighbor(key, func(j int32) {
				pj := slice[j]
				dx, dy := pi.X-pj.X, pi.Y-pj.Y
				r2 := dx*dx + dy*dy
				if r2 <= coeffs.H2 {
					rho += ParticleMass * coeffs.Poly6(r2)
				}
			})
			s.density[i] = rho
		}
	})

	// Phase 3: pressures.
	workers.ForEachParticle(n, minChunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			p := snap.Stiffness * (s.density[i] - snap.TargetDensity)
			if p < 0 {
				p = 0
			}
			s.pressure[i] = p
		}
	})

	// Phase 4: forces.
	workers.ForEachParticle(n, minChunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			pi := slice[i]
			rhoI := s.density[i]
			fx, fy := 0.0, -snap.Gravity

			key := s.hash.KeyAt(i)
			s.hash.EachNeighbor(key, func(j int32) {
				if int(j) == i {
					return
				}
				pj := slice[j]
				dx, dy := pi.X-pj.X, pi.Y-pj.Y
				d := math.Sqrt(dx*dx + dy*dy)
				if d <= 0 || d > coeffs.H {
					return
				}
				rhoJ := s.density[j]

				fp := ParticleMass * (s.pressure[i] + s.pressure[j]) * coeffs.SpikyGrad(d) / (2 * rhoJ * d)
				fx += fp * dx
				fy += fp * dy

				fv := snap.Viscosity * ParticleMass * coeffs.ViscLaplacian(d) / rhoJ
				fx += fv * (pj.VX - pi.VX)
				fy += fv * (pj.VY - pi.VY)
			})

			if mf.Active() {
				dx, dy := mouseDisp(mf, pi.X, pi.Y)
				d := math.Hypot(dx, dy)
				reach := snap.MouseForceRadius - d
				if reach > 0 {
					c := snap.MouseForceStrength * reach / rhoI
					sign := mf.Sign()
					fx += sign * c * dx
					fy += sign * c * dy
					if mf.Repelling() {
						fx -= (c / 30) * pi.VX
						fy -= (c / 30) * pi.VY
					}
				}
			}

			s.forceX[i] = fx
			s.forceY[i] = fy
		}
	})

	// Phase 5: integrate.
	for i := 0; i < n; i++ {
		p := slice[i]
		rho := s.density[i]
		ax, ay := s.forceX[i]/rho, s.forceY[i]/rho
		p.VX += ax * dt
		p.VY += ay * dt
		p.X -= p.VX * dt
		p.Y -= p.VY * dt
		slice[i] = p
	}

	// Phase 6: boundaries.
	for i := 0; i < n; i++ {
		p := slice[i]
		p.X, p.VX = reflect(p.X, p.VX, s.bounds.Width, snap.Dampening)
		p.Y, p.VY = reflect(p.Y, p.VY, s.bounds.Height, snap.Dampening)
		slice[i] = p
	}

	s.lastStep = time.Since(start)
	return s.lastStep
}

// mouseDisp returns (mx - x, my - y) for the mouse force's center.
func mouseDisp(mf settings.MouseForce, x, y float64) (float64, float64) {
	mx, my := mf.Center()
	return mx - x, my - y
}

// reflect applies the per-axis boundary bounce: reflecting coord across 0
// or extent and scaling velocity by -dampening.
func reflect(coord, vel, extent, dampening float64) (float64, float64) {
	if coord < 0 {
		return -coord, -dampening * vel
	}
	if coord > extent {
		return extent - (coord - extent), -dampening * vel
	}
	return coord, vel
}

func (s *Sim) ensureScratch(n int) {
	if cap(s.density) < n {
		s.density = make([]float64, n)
		s.pressure = make([]float64, n)
		s.forceX = make([]float64, n)
		s.forceY = make([]float64, n)
		return
	}
	s.density = s.density[:n]
	s.pressure = s.pressure[:n]
	s.forceX = s.forceX[:n]
	s.forceY = s.forceY[:n]
}
