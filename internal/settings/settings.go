// Package settings holds the bounded, live-adjustable physics parameters,
// the mouse-force slot, and the world extents — the external inputs the
// core simulation step treats as read-only per tick.
//
// Grounded on internal/config.Config's Load/Save/DefaultConfig shape and
// internal/control.ManualController's mouse-vector plumbing, reworked
// around a bounded Param type carrying (min, max, step, base) per named
// scalar rather than a flat struct of floats.
package settings

import "sync"

// Param is one bounded, steppable scalar setting.
type Param struct {
	Value, Min, Max, Step, Base float64
}

// clamp returns v constrained to [p.Min, p.Max].
func (p Param) clamp(v float64) float64 {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}

// Name identifies one of the bounded settings. Order here is also the
// keyboard-cycling order in the on-screen panel.
type Name int

const (
	ParticleCount Name = iota
	Gravity
	TargetDensity
	Viscosity
	Stiffness
	SmoothingRadius
	// Dampening multiplies reflected velocity at a wall bounce: 1.0 keeps
	// all speed, 0.0 stops the particle dead at the wall.
	Dampening
	MouseForceStrength
	MouseForceRadius

	numNames
)

var names = [numNames]string{
	ParticleCount:      "particle_count",
	Gravity:            "gravity",
	TargetDensity:      "target_density",
	Viscosity:          "viscosity",
	Stiffness:          "stiffness",
	SmoothingRadius:    "smoothing_radius",
	Dampening:          "dampening",
	MouseForceStrength: "mouse_force_strength",
	MouseForceRadius:   "mouse_force_radius",
}

func (n Name) String() string {
	if n < 0 || n >= numNames {
		return "unknown"
	}
	return names[n]
}

// Values is an immutable snapshot of every setting's current value, safe to
// hold for the duration of one simulation step without the settings lock.
type Values struct {
	ParticleCount                                                int
	Gravity, TargetDensity, Viscosity, Stiffness, SmoothingRadius float64
	Dampening, MouseForceStrength, MouseForceRadius               float64
}

// Settings is the mutex-guarded set of bounded parameters plus the
// keyboard-cycling selection index. The simulation thread only ever reads
// it through Snapshot; the input thread is the only writer.
type Settings struct {
	mu       sync.RWMutex
	params   [numNames]Param
	selected Name
}

// Default returns settings initialized to the values the dam-break preset
// assumes.
func Default() *Settings {
	s := &Settings{}
	s.params = [numNames]Param{
		ParticleCount:      {Value: 4000, Min: 100, Max: 20000, Step: 500, Base: 4000},
		Gravity:            {Value: 20.0, Min: 0, Max: 60, Step: 1, Base: 20.0},
		TargetDensity:      {Value: 1.0, Min: 0.1, Max: 10, Step: 0.1, Base: 1.0},
		Viscosity:          {Value: 0.1, Min: 0, Max: 5, Step: 0.05, Base: 0.1},
		Stiffness:          {Value: 2000.0, Min: 10, Max: 20000, Step: 100, Base: 2000.0},
		SmoothingRadius:    {Value: 2.0, Min: 0.5, Max: 6, Step: 0.1, Base: 2.0},
		Dampening:          {Value: 0.5, Min: 0, Max: 1, Step: 0.05, Base: 0.5},
		MouseForceStrength: {Value: 5.0, Min: 0, Max: 40, Step: 1, Base: 5.0},
		MouseForceRadius:   {Value: 15.0, Min: 1, Max: 60, Step: 1, Base: 15.0},
	}
	return s
}

// Snapshot copies out every current value, holding the lock only for the
// copy, so the settings lock is held only briefly.
func (s *Settings) Snapshot() Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Values{
		ParticleCount:      int(s.params[ParticleCount].Value),
		Gravity:            s.params[Gravity].Value,
		TargetDensity:      s.params[TargetDensity].Value,
		Viscosity:          s.params[Viscosity].Value,
		Stiffness:          s.params[Stiffness].Value,
		SmoothingRadius:    s.params[SmoothingRadius].Value,
		Dampening:          s.params[Dampening].Value,
		MouseForceStrength: s.params[MouseForceStrength].Value,
		MouseForceRadius:   s.params[MouseForceRadius].Value,
	}
}

// Selected returns the setting currently targeted by keyboard adjustment.
func (s *Settings) Selected() Name {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// CycleSelected advances the selection by delta (wrapping), for Tab/Shift-Tab.
func (s *Settings) CycleSelected(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int(numNames)
	s.selected = Name(((int(s.selected)+delta)%n + n) % n)
}

// Adjust nudges the selected setting by factor steps (positive or negative)
// and clamps it into range.
func (s *Settings) Adjust(steps float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &s.params[s.selected]
	p.Value = p.clamp(p.Value + steps*p.Step)
}

// Get returns a copy of one named param, for the panel's display.
func (s *Settings) Get(n Name) Param {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params[n]
}

// Set overwrites a named param's current value, clamped to its bounds.
func (s *Settings) Set(n Name, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &s.params[n]
	p.Value = p.clamp(value)
}

// ResetToBase restores every param to its Base value.
func (s *Settings) ResetToBase() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.params {
		s.params[i].Value = s.params[i].Base
	}
}

// All returns every param in cycling order, for rendering the full panel.
func (s *Settings) All() [numNames]Param {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}
