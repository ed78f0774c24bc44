// Package kernel provides the SPH smoothing kernels used to turn a
// particle's neighborhood into density, pressure, and viscosity
// contributions.
//
// The three kernels — poly6 for density, the spiky gradient for pressure,
// and the viscosity Laplacian — are the standard Müller/Charypar/Gross
// weakly-compressible SPH kernel set. Each is a pure function of a distance
// (or squared distance) and the smoothing radius h; none hold state, so
// they can be called freely from parallel workers.
package kernel

import "math"

// Coeffs caches the h-dependent kernel coefficients for one settings
// snapshot. h is live-adjustable, so these are recomputed whenever h
// changes rather than baked in as constants.
type Coeffs struct {
	H, H2    float64
	poly6    float64
	spiky    float64
	viscLap  float64
}

// NewCoeffs precomputes the kernel coefficients for smoothing radius h.
func NewCoeffs(h float64) Coeffs {
	h2 := h * h
	return Coeffs{
		H:       h,
		H2:      h2,
		poly6:   315.0 / (64.0 * math.Pi * math.Pow(h2, 4.5)),
		spiky:   -45.0 / (math.Pi * math.Pow(h, 6)),
		viscLap: 45.0 / (math.Pi * math.Pow(h, 6)),
	}
}

// Poly6 returns the poly6 kernel value for squared distance r2. Domain:
// r2 <= h2. The caller must pre-check the domain; Poly6 does not guard it
// so the density hot loop can skip a redundant branch.
func (c Coeffs) Poly6(r2 float64) float64 {
	d := c.H2 - r2
	return c.poly6 * d * d * d
}

// SpikyGrad returns the spiky kernel's radial gradient for distance r,
// which is negative inside the domain and zero at r = h.
// Domain: 0 < r <= h.
func (c Coeffs) SpikyGrad(r float64) float64 {
	d := c.H - r
	return c.spiky * d * d
}

// ViscLaplacian returns the viscosity kernel's Laplacian for distance r.
// Domain: 0 < r <= h.
func (c Coeffs) ViscLaplacian(r float64) float64 {
	return c.viscLap * (c.H - r)
}
