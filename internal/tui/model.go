// Package tui is the terminal front end: it owns the bubbletea event loop,
// decodes keyboard and mouse input, lays out the live parameter panel, and
// drives the simulation and render cadences described by the concurrency
// model. None of this package is part of the physics core — it is the
// external collaborator the core treats as a black box behind
// fluidsim.Sim's Step/Particles/LastFrameMS interface.
//
// Grounded on viz.Model (tea.Model, Init/Update/View, the 1/60s tea.Tick
// loop, Tab/Up/Down param cycling, T for theme cycling) and
// control.ManualController's mouse-to-force plumbing, reworked around two
// independent loops — a simulation goroutine on its own ticker plus
// bubbletea's own render loop — since here the physics step runs far
// faster than the frame rate and must not be bound to it.
package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fluidterm/internal/fluidsim"
	"github.com/san-kum/fluidterm/internal/raster"
	"github.com/san-kum/fluidterm/internal/settings"
)

const (
	simPeriod    = 5 * time.Millisecond
	renderPeriod = time.Second / 60
	panelWidth   = 34
	historyCap   = 120
)

type tickMsg time.Time

// liveState holds the fields the simulation goroutine writes and the view
// reads. It is held behind a pointer specifically so that bubbletea's
// copy-on-every-Update Model semantics never fork it into two diverging
// copies — every Model value sharing one liveState sees the same state.
type liveState struct {
	mu      sync.RWMutex
	paused  bool
	frameMS float64
	history []float64
}

// Model is the bubbletea program: it owns the simulation (run on its own
// goroutine), the settings, and the mouse-force slot. Update only ever
// touches the render-side fields directly; the simulation goroutine talks
// to Sim and the settings/mouse slot exclusively through their own locks.
//
// simMu guards every access to sim: the simulation goroutine holds it for
// the whole of Step, and the render path (View, and applyPresetByIndex's
// Resize/SyncParticleCount) takes it so a render never observes a
// partially-updated particle array and a preset swap never races a
// mid-flight step. It is a pointer for the same reason live is — bubbletea
// copies Model on every Update/View call, and every copy must share one
// lock.
type Model struct {
	sim      *fluidsim.Sim
	simMu    *sync.RWMutex
	settings *settings.Settings
	mouse    *settings.MouseSlot
	rng      *rand.Rand
	live     *liveState

	rows, cols int
	themeIdx   int
	ditherOn   bool

	cancel context.CancelFunc
}

// New builds a Model over a fresh simulation seeded from preset and starts
// its simulation goroutine immediately — the goroutine must outlive any
// single Update call, so it is launched here rather than from Init, whose
// returned Model would otherwise be discarded by the bubbletea runtime.
func New(preset settings.Preset, rows, cols int) Model {
	s := settings.Default()
	width, height := preset.Apply(s)

	sim := fluidsim.New(width, height)
	rng := rand.New(rand.NewSource(1))
	sim.Seed(preset.ParticleCount, preset.SmoothingRad, rng)

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		sim:      sim,
		simMu:    &sync.RWMutex{},
		settings: s,
		mouse:    &settings.MouseSlot{},
		rng:      rng,
		live:     &liveState{history: make([]float64, 0, historyCap)},
		rows:     rows,
		cols:     cols,
		ditherOn: true,
		cancel:   cancel,
	}
	go m.runSimLoop(ctx)
	return m
}

// Init kicks off the render tick; the simulation goroutine is already
// running by the time the bubbletea runtime calls this.
func (m Model) Init() tea.Cmd {
	return tea.Tick(renderPeriod, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// runSimLoop is the simulation thread: fixed ~5ms cadence, no catch-up if
// late, cancellable only at the top of an iteration.
func (m Model) runSimLoop(ctx context.Context) {
	ticker := time.NewTicker(simPeriod)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt <= 0 {
				continue
			}
			if dt > 0.05 {
				dt = 0.05 // guard against a paused/stalled process producing a huge dt
			}

			snap := m.settings.Snapshot()
			mf := m.mouse.Get()

			m.live.mu.RLock()
			paused := m.live.paused
			m.live.mu.RUnlock()
			if paused {
				continue
			}

			m.simMu.Lock()
			elapsed := m.sim.Step(dt, snap, mf)
			m.simMu.Unlock()

			m.live.mu.Lock()
			m.live.frameMS = float64(elapsed) / float64(time.Millisecond)
			m.live.history = append(m.live.history, m.live.frameMS)
			if len(m.live.history) > historyCap {
				m.live.history = m.live.history[1:]
			}
			m.live.mu.Unlock()
		}
	}
}

// Update handles keyboard, mouse, and render-tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case " ", "p":
			m.live.mu.Lock()
			m.live.paused = !m.live.paused
			m.live.mu.Unlock()
		case "tab":
			m.settings.CycleSelected(1)
		case "shift+tab":
			m.settings.CycleSelected(-1)
		case "up", "k":
			m.settings.Adjust(1)
		case "down", "j":
			m.settings.Adjust(-1)
		case "r":
			m.settings.ResetToBase()
		case "t":
			m.themeIdx++
		case "d":
			m.ditherOn = !m.ditherOn
		case "1", "2", "3":
			m.applyPresetByIndex(int(msg.String()[0] - '1'))
		}
	case tea.MouseMsg:
		wx, wy := m.screenToWorld(msg.X, msg.Y)
		switch msg.Button {
		case tea.MouseButtonLeft:
			if msg.Action != tea.MouseActionRelease {
				m.mouse.Set(settings.Attract(wx, wy))
			} else {
				m.mouse.Set(settings.NoForce())
			}
		case tea.MouseButtonRight:
			if msg.Action != tea.MouseActionRelease {
				m.mouse.Set(settings.Repel(wx, wy))
			} else {
				m.mouse.Set(settings.NoForce())
			}
		default:
			if msg.Action == tea.MouseActionRelease {
				m.mouse.Set(settings.NoForce())
			}
		}
	case tickMsg:
		return m, tea.Tick(renderPeriod, func(t time.Time) tea.Msg { return tickMsg(t) })
	}
	return m, nil
}

func (m Model) applyPresetByIndex(i int) {
	names := settings.PresetNames()
	if i < 0 || i >= len(names) {
		return
	}
	preset := settings.Presets[names[i]]
	width, height := preset.Apply(m.settings)

	m.simMu.Lock()
	m.sim.Resize(width, height)
	m.sim.SyncParticleCount(preset.ParticleCount, m.rng)
	m.simMu.Unlock()
}

// screenToWorld converts a terminal cell position to world coordinates,
// matching the raster's row/col-to-world inverse (column = x, two y-units
// per terminal row).
func (m Model) screenToWorld(col, row int) (float64, float64) {
	return float64(col), float64(row) * 2
}

// View renders the current particle snapshot plus the settings panel. It
// holds simMu for a read for as long as it looks at the particle store, so
// it never observes an array the simulation goroutine is mid-Step on.
func (m Model) View() string {
	dither := 0.0
	if m.ditherOn {
		dither = raster.DefaultDitherRadius
	}

	m.simMu.RLock()
	frame := raster.Render(m.sim.Particles(), m.rows, m.cols, dither)
	particleCount := m.sim.Particles().Len()
	m.simMu.RUnlock()

	theme := themeByIndex(m.themeIdx)

	fluidStyle := lipgloss.NewStyle().Foreground(theme.Fluid)
	canvas := fluidStyle.Render(frame.String())

	panel := m.renderPanel(theme, particleCount)

	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, panel)
}

func (m Model) renderPanel(theme Theme, particleCount int) string {
	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.Muted).Width(18)
	value := lipgloss.NewStyle().Foreground(theme.Text)
	active := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var b strings.Builder
	b.WriteString(header.Render("FLUIDTERM") + "\n\n")

	m.live.mu.RLock()
	frameMS, hist := m.live.frameMS, append([]float64(nil), m.live.history...)
	paused := m.live.paused
	m.live.mu.RUnlock()

	status := "running"
	if paused {
		status = "paused"
	}
	b.WriteString(label.Render("status") + value.Render(status) + "\n")
	b.WriteString(label.Render("particles") + value.Render(fmt.Sprintf("%d", particleCount)) + "\n")
	b.WriteString(label.Render("step time") + value.Render(fmt.Sprintf("%.3f ms", frameMS)) + "\n\n")

	if len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(panelWidth-4), asciigraph.Caption("step ms"))
		b.WriteString(chart + "\n\n")
	}

	b.WriteString(header.Render("SETTINGS") + "\n")
	selected := m.settings.Selected()
	for i, p := range m.settings.All() {
		n := settings.Name(i)
		line := fmt.Sprintf("%-20s %.3f", n.String(), p.Value)
		if n == selected {
			b.WriteString(active.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + value.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + label.Render("tab/shift+tab") + value.Render("select") + "\n")
	b.WriteString(label.Render("up/down") + value.Render("adjust") + "\n")
	b.WriteString(label.Render("1/2/3") + value.Render("presets") + "\n")
	b.WriteString(label.Render("left/right drag") + value.Render("attract/repel") + "\n")
	b.WriteString(label.Render("r t d p q") + value.Render("reset/theme/dither/pause/quit") + "\n")

	return lipgloss.NewStyle().Padding(1, 2).Width(panelWidth).Render(b.String())
}
