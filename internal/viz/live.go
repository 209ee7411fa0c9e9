package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/programORdie2/verletlab/internal/metrics"
	"github.com/programORdie2/verletlab/internal/verlet"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the live terminal view: the particle field on a braille
// canvas next to a stats panel with live parameter tuning.
type Model struct {
	sim           *verlet.Simulation
	dt            float64
	fps           int
	frame         int
	label         string
	canvas        *Canvas
	energy        *metrics.KineticEnergy
	energyHistory []float64
	running       bool
	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	showHelp      bool
}

// NewModel wraps a simulation for interactive viewing. dt is the frame
// step in seconds, fps the terminal refresh rate.
func NewModel(sim *verlet.Simulation, dt float64, fps int, label string) Model {
	params := sim.GetParams()
	keys := make([]string, 0, len(params))
	initialParams := make(map[string]float64, len(params))
	for k, v := range params {
		keys = append(keys, k)
		if v == 0 {
			v = 1e-6
		}
		initialParams[k] = v
	}
	sort.Strings(keys)

	if fps < 1 {
		fps = 60
	}

	return Model{
		sim:           sim,
		dt:            dt,
		fps:           fps,
		label:         label,
		canvas:        NewCanvas(width, height),
		energy:        metrics.NewKineticEnergy(dt / float64(sim.Config().SubSteps)),
		energyHistory: make([]float64, 0, historyCapacity),
		running:       true,
		params:        params,
		initialParams: initialParams,
		paramKeys:     keys,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "s":
			cfg := m.sim.Config()
			m.sim.Stir(cfg.Center, cfg.ContainerRadius*0.8, 2500)
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.sim.Advance(m.dt, m.frame)
			m.frame++
			m.energy.Observe(m.sim.Particles(), m.frame, float64(m.frame)*m.dt)
			m.energyHistory = append(m.energyHistory, m.energy.Value())
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
		}
		m.draw()
		return m, tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	newVal := m.params[key] * factor
	if err := m.sim.SetParam(key, newVal); err == nil {
		m.params[key] = newVal
	}
}

// reset restores the initial pile and parameters.
func (m *Model) reset() {
	m.sim.Reset()
	m.frame = 0
	m.energy.Reset()
	m.energyHistory = m.energyHistory[:0]
	for k, v := range m.initialParams {
		if err := m.sim.SetParam(k, v); err == nil {
			m.params[k] = v
		}
	}
}

// draw projects the container and particles onto the braille canvas.
func (m *Model) draw() {
	m.canvas.Clear()

	cfg := m.sim.Config()
	pad := cfg.ParticleRadius * 2
	side := 2 * (cfg.ContainerRadius + pad)

	cw, ch := width*2, height*4
	fit := cw
	if ch < fit {
		fit = ch
	}
	scale := float64(fit) / side
	offX := (float64(cw) - side*scale) / 2
	offY := (float64(ch) - side*scale) / 2

	toX := func(wx float64) int {
		return int(offX + (wx-(cfg.Center.X-cfg.ContainerRadius-pad))*scale)
	}
	toY := func(wy float64) int {
		return int(offY + (wy-(cfg.Center.Y-cfg.ContainerRadius-pad))*scale)
	}

	m.canvas.DrawCircle(toX(cfg.Center.X), toY(cfg.Center.Y), cfg.ContainerRadius*scale)

	ps := m.sim.Particles()
	for i := range ps {
		m.canvas.FillCircle(toX(ps[i].Pos.X), toY(ps[i].Pos.Y), cfg.ParticleRadius*scale)
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.label)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Kinetic energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	stats := m.sim.Stats()
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", float64(m.frame)*m.dt)) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d / %d", m.sim.Count(), m.sim.Config().MaxParticles)) + "\n")
	energy := 0.0
	if len(m.energyHistory) > 0 {
		energy = m.energyHistory[len(m.energyHistory)-1]
	}
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.1f", energy)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%.2fms", float64(stats.Total().Microseconds())/1000)) + "\n")

	s.WriteString("\nPARAMETERS\n")
	if len(m.params) > 0 {
		for i, k := range m.paramKeys {
			val, initial := m.params[k], m.initialParams[k]
			barWidth, ratio := 10, val/(2.0*initial)
			if ratio > 1 {
				ratio = 1
			} else if ratio < 0 {
				ratio = 0
			}
			filled := int(ratio * float64(barWidth))
			bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
			line := fmt.Sprintf("%-18s %s %.3f", k, bar, val)
			if i == m.selected {
				s.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + labelStyle.Render(line) + "\n")
			}
		}
	} else {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nS:Stir ?:Help\nTab:Select ↑↓:Tune"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset to an empty pile   ║
║  S        - Stir the container       ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
