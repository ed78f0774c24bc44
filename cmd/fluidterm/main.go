// Command fluidterm runs the interactive SPH fluid simulator.
//
// Grounded on cmd/dynsim's cobra root command with run/bench/list-style
// subcommands, trimmed to the two this simulator needs: an interactive
// run and a headless bench that reports step timings without a terminal.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/fluidterm/internal/fluidsim"
	"github.com/san-kum/fluidterm/internal/settings"
	"github.com/san-kum/fluidterm/internal/tui"
)

var (
	presetName    string
	configFile    string
	particleCount int
	benchSteps    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fluidterm",
		Short: "interactive terminal SPH fluid simulator",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the interactive simulator",
		RunE:  runInteractive,
	}
	runCmd.Flags().StringVar(&presetName, "preset", "dam-break", "scenario preset (dam-break, droplet, pool)")
	runCmd.Flags().StringVar(&configFile, "config", "", "YAML scenario file (overrides --preset)")
	runCmd.Flags().IntVar(&particleCount, "particles", 0, "override the preset's particle count (0 = use preset)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run the simulation headless and report step timings",
		RunE:  runBench,
	}
	benchCmd.Flags().StringVar(&presetName, "preset", "dam-break", "scenario preset")
	benchCmd.Flags().IntVar(&benchSteps, "steps", 500, "number of simulation steps to run")

	rootCmd.AddCommand(runCmd, benchCmd)
	rootCmd.RunE = runInteractive

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolvePreset() (settings.Preset, error) {
	if configFile != "" {
		cfg, err := settings.LoadFile(configFile)
		if err != nil {
			return settings.Preset{}, fmt.Errorf("fluidterm: %w", err)
		}
		return settings.Preset{
			Name: cfg.Preset, Width: cfg.Width, Height: cfg.Height,
			ParticleCount: cfg.ParticleCount, Gravity: cfg.Gravity,
			TargetDensity: cfg.TargetDensity, Viscosity: cfg.Viscosity,
			Stiffness: cfg.Stiffness, SmoothingRad: cfg.SmoothingRad,
			Dampening: cfg.Dampening,
		}, nil
	}

	preset, ok := settings.Presets[presetName]
	if !ok {
		return settings.Preset{}, fmt.Errorf("fluidterm: unknown preset %q", presetName)
	}
	if particleCount > 0 {
		preset.ParticleCount = particleCount
	}
	return preset, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	preset, err := resolvePreset()
	if err != nil {
		return err
	}

	model := tui.New(preset, 40, 80)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	if err != nil {
		return fmt.Errorf("fluidterm: %w", err)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	preset, err := resolvePreset()
	if err != nil {
		return err
	}

	sim := fluidsim.New(preset.Width, preset.Height)
	rng := rand.New(rand.NewSource(1))
	sim.Seed(preset.ParticleCount, preset.SmoothingRad, rng)

	s := settings.Default()
	preset.Apply(s)
	snap := s.Snapshot()

	var total time.Duration
	var worst time.Duration
	for i := 0; i < benchSteps; i++ {
		elapsed := sim.Step(0.005, snap, settings.NoForce())
		total += elapsed
		if elapsed > worst {
			worst = elapsed
		}
	}

	avg := total / time.Duration(benchSteps)
	fmt.Printf("particles=%d steps=%d avg=%.3fms worst=%.3fms\n",
		preset.ParticleCount, benchSteps,
		float64(avg)/float64(time.Millisecond), float64(worst)/float64(time.Millisecond))
	return nil
}
