package settings

// Preset is a named starting configuration for a scenario, grounded on
// config.Presets' map-of-named-configs shape.
type Preset struct {
	Name          string
	Width, Height float64
	ParticleCount int
	Gravity       float64
	TargetDensity float64
	Viscosity     float64
	Stiffness     float64
	SmoothingRad  float64
	Dampening     float64
}

// Presets holds every built-in scenario, keyed by name.
var Presets = map[string]Preset{
	"dam-break": {
		Name: "dam-break", Width: 80, Height: 40, ParticleCount: 4000,
		Gravity: 20.0, TargetDensity: 1.0, Viscosity: 0.1,
		Stiffness: 2000.0, SmoothingRad: 2.0, Dampening: 0.5,
	},
	"droplet": {
		Name: "droplet", Width: 80, Height: 40, ParticleCount: 1200,
		Gravity: 30.0, TargetDensity: 1.2, Viscosity: 0.3,
		Stiffness: 2500.0, SmoothingRad: 1.6, Dampening: 0.3,
	},
	"pool": {
		Name: "pool", Width: 100, Height: 30, ParticleCount: 6000,
		Gravity: 15.0, TargetDensity: 1.0, Viscosity: 0.05,
		Stiffness: 1800.0, SmoothingRad: 2.2, Dampening: 0.7,
	},
}

// PresetNames returns every built-in preset name, in map iteration order
// (not sorted, and not stable across calls). The panel's 1/2/3 preset keys
// index into it.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	return names
}

// Apply copies a preset's values onto a Settings instance and returns its
// world bounds, since those live outside Settings' bounded-param set.
func (p Preset) Apply(s *Settings) (width, height float64) {
	s.Set(ParticleCount, float64(p.ParticleCount))
	s.Set(Gravity, p.Gravity)
	s.Set(TargetDensity, p.TargetDensity)
	s.Set(Viscosity, p.Viscosity)
	s.Set(Stiffness, p.Stiffness)
	s.Set(SmoothingRadius, p.SmoothingRad)
	s.Set(Dampening, p.Dampening)
	return p.Width, p.Height
}
