package viz

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/selfassembly/internal/assembly"
	"github.com/san-kum/selfassembly/internal/export"
)

const (
	canvasWidth     = 72
	canvasHeight    = 16
	historyCapacity = 600
	defaultFPS      = 30
)

type TickMsg time.Time

// LiveConfig controls the pacing and recording of the live view.
type LiveConfig struct {
	MaxSteps int // 0 runs until quit
	FPS      int
	GIFPath  string
}

// Model is the bubbletea model of a running simulation.
type Model struct {
	params assembly.Params
	opts   []assembly.Option
	sim    *assembly.Model
	snap   assembly.Snapshot

	frame, free, bound *Canvas

	running  bool
	cfg      LiveConfig
	fraction []float64
	ticks    int
	showHelp bool
	recorder *Recorder
	status   string
}

// NewModel builds the simulation from p and opts and draws its initial state.
func NewModel(p assembly.Params, cfg LiveConfig, opts ...assembly.Option) (Model, error) {
	if cfg.FPS <= 0 {
		cfg.FPS = defaultFPS
	}
	if cfg.GIFPath == "" {
		cfg.GIFPath = "assembly.gif"
	}
	m := Model{
		params:   p,
		opts:     opts,
		frame:    NewCanvas(canvasWidth, canvasHeight),
		free:     NewCanvas(canvasWidth, canvasHeight),
		bound:    NewCanvas(canvasWidth, canvasHeight),
		running:  true,
		cfg:      cfg,
		fraction: make([]float64, 0, historyCapacity),
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	m.drawFrame()
	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running && !m.done() {
				m.step()
			}
		case "r":
			if err := m.reset(); err != nil {
				m.status = err.Error()
			}
		case "g":
			m.toggleRecording()
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			NextTheme()
		}
	case TickMsg:
		m.ticks++
		if m.running && !m.done() {
			m.step()
		}
		if m.recorder != nil {
			m.recorder.Capture(m.layers()...)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) done() bool {
	return m.cfg.MaxSteps > 0 && m.sim.Time() >= m.cfg.MaxSteps
}

func (m *Model) step() {
	m.sim.Step()
	m.observe()
}

func (m *Model) observe() {
	m.snap = m.sim.Snapshot()
	m.fraction = append(m.fraction, m.snap.AssembledFraction())
	if len(m.fraction) > historyCapacity {
		m.fraction = m.fraction[1:]
	}
	m.draw()
}

// reset rebuilds the simulation with its starting parameters and options,
// so a seeded run replays identically.
func (m *Model) reset() error {
	sim, err := assembly.New(m.params, m.opts...)
	if err != nil {
		return err
	}
	m.sim = sim
	m.fraction = m.fraction[:0]
	m.status = ""
	m.observe()
	return nil
}

func (m *Model) toggleRecording() {
	if m.recorder == nil {
		m.recorder = NewRecorder(m.cfg.FPS, color.Palette{
			color.Black,
			color.Gray{Y: 0x66},
			hexRGBA(export.UnassembledColor),
			hexRGBA(export.AssembledColor),
		})
		m.recorder.Capture(m.layers()...)
		m.status = "recording"
		return
	}
	n := m.recorder.Len()
	if err := m.recorder.Save(m.cfg.GIFPath); err != nil {
		m.status = "gif: " + err.Error()
	} else {
		m.status = fmt.Sprintf("saved %d frames to %s", n, m.cfg.GIFPath)
	}
	m.recorder = nil
}

// project maps channel coordinates to canvas dots inside the frame.
// The y axis points up.
func (m *Model) project(x, y float64) (int, int) {
	cw, ch := m.free.Dots()
	b := m.sim.Bounds()
	px := 1 + int(x/b.Length*float64(cw-3))
	py := ch - 2 - int(y/b.Width*float64(ch-3))
	return px, py
}

// drawFrame outlines the channel and marks the hotspot column when the
// correction bump is active.
func (m *Model) drawFrame() {
	m.frame.Clear()
	cw, ch := m.frame.Dots()
	m.frame.DrawRect(0, 0, cw-1, ch-1)
	if m.params.Alpha == 0 || m.params.XP < 0 || m.params.XP > m.params.Length {
		return
	}
	px, _ := m.project(m.params.XP, 0)
	for y := 2; y < ch-2; y += 3 {
		m.frame.Set(px, y)
	}
}

func (m *Model) draw() {
	m.free.Clear()
	m.bound.Clear()
	for _, p := range m.snap.Particles {
		x, y := m.project(p.X, p.Y)
		if p.State == assembly.Assembled {
			m.bound.Set(x, y)
		} else {
			m.free.Set(x, y)
		}
	}
}

func (m Model) layers() []Layer {
	return []Layer{
		{Canvas: m.frame, Style: lipgloss.NewStyle().Foreground(CurrentTheme.Frame)},
		{Canvas: m.free, Style: lipgloss.NewStyle().Foreground(CurrentTheme.Unassembled)},
		{Canvas: m.bound, Style: lipgloss.NewStyle().Foreground(CurrentTheme.Assembled)},
	}
}

// View renders the channel and the statistics panel.
func (m Model) View() string {
	canvasView := canvasStyle.Render(Compose(m.layers()...))

	var s strings.Builder
	s.WriteString(GradientText("SELF-ASSEMBLY", CurrentTheme.Primary, CurrentTheme.Secondary) + "\n\n")
	switch {
	case m.done():
		s.WriteString(StatusPaused.Render("DONE"))
	case m.running:
		s.WriteString(StatusRunning.Render(AnimatedSpinner(m.ticks) + " RUNNING"))
	default:
		s.WriteString(StatusPaused.Render("PAUSED"))
	}
	if m.recorder != nil {
		s.WriteString("  " + StatusRecording.Render("● REC"))
	}
	s.WriteString("\n\n")

	unassembled, assembled := m.snap.Counts()
	frac := m.snap.AssembledFraction()
	steps := fmt.Sprintf("%d", m.snap.Time)
	if m.cfg.MaxSteps > 0 {
		steps = fmt.Sprintf("%d / %d", m.snap.Time, m.cfg.MaxSteps)
	}
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Step", steps)
	row("Unassembled", lipgloss.NewStyle().Foreground(CurrentTheme.Unassembled).Render(fmt.Sprintf("%d", unassembled)))
	row("Assembled", lipgloss.NewStyle().Foreground(CurrentTheme.Assembled).Render(fmt.Sprintf("%d", assembled)))
	row("Fraction", fmt.Sprintf("%.3f", frac))
	s.WriteString(ProgressBar(frac, 30) + "\n")
	s.WriteString(SparklineChart(m.fraction, 30) + "\n")
	if len(m.fraction) > 1 {
		s.WriteString(graphStyle.Render(PlotFraction(m.fraction, 28, 5, "assembled fraction")) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	row("k0", fmt.Sprintf("%g", m.params.K0))
	row("alpha", fmt.Sprintf("%g", m.params.Alpha))
	row("x_p / sigma", fmt.Sprintf("%g / %g", m.params.XP, m.params.Sigma))
	row("streams", m.sim.Streams().String())
	row("seed", fmt.Sprintf("%d", m.sim.Seed()))
	if m.status != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(CurrentTheme.Warning).Render(m.status) + "\n")
	}
	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause N:Step R:Reset Q:Quit\nT:Theme  G:Record ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  N        - Single step while paused ║
║  R        - Reset simulation         ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Time is the current simulation step.
func (m Model) Time() int { return m.sim.Time() }

// Fraction returns the recorded assembled-fraction history.
func (m Model) Fraction() []float64 { return m.fraction }
