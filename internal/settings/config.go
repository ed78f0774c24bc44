package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk scenario configuration: everything needed to
// reproduce a particular starting point for the simulator, grounded on
// internal/config.Config's Load/Save shape.
type FileConfig struct {
	Preset        string  `yaml:"preset"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Gravity       float64 `yaml:"gravity"`
	TargetDensity float64 `yaml:"target_density"`
	Viscosity     float64 `yaml:"viscosity"`
	Stiffness     float64 `yaml:"stiffness"`
	SmoothingRad  float64 `yaml:"smoothing_radius"`
	Dampening     float64 `yaml:"dampening"`
	ParticleCount int     `yaml:"particle_count"`
}

// DefaultFileConfig returns the dam-break scenario's configuration.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Preset:        "dam-break",
		Width:         80,
		Height:        40,
		Gravity:       20.0,
		TargetDensity: 1.0,
		Viscosity:     0.1,
		Stiffness:     2000.0,
		SmoothingRad:  2.0,
		Dampening:     0.5,
		ParticleCount: 4000,
	}
}

// LoadFile reads a YAML scenario file, falling back to DefaultFileConfig's
// fields for anything the file omits.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	cfg := DefaultFileConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	return cfg, nil
}

// SaveFile writes cfg to path as YAML.
func SaveFile(path string, cfg *FileConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("settings: marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}

// Apply copies a FileConfig's values onto a Settings instance.
func (cfg *FileConfig) Apply(s *Settings) {
	s.Set(ParticleCount, float64(cfg.ParticleCount))
	s.Set(Gravity, cfg.Gravity)
	s.Set(TargetDensity, cfg.TargetDensity)
	s.Set(Viscosity, cfg.Viscosity)
	s.Set(Stiffness, cfg.Stiffness)
	s.Set(SmoothingRadius, cfg.SmoothingRad)
	s.Set(Dampening, cfg.Dampening)
}
