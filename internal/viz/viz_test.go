package viz

import (
	"bytes"
	"image/color"
	"image/gif"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/selfassembly/internal/assembly"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel(t *testing.T, maxSteps int) Model {
	t.Helper()
	p := assembly.DefaultParams()
	p.N = 20
	m, err := NewModel(p, LiveConfig{MaxSteps: maxSteps, FPS: 60, GIFPath: t.TempDir() + "/out.gif"}, assembly.WithSeed(7))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestCanvasSetAndLit(t *testing.T) {
	c := NewCanvas(4, 2)
	w, h := c.Dots()
	if w != 8 || h != 8 {
		t.Fatalf("Dots() = %d,%d, want 8,8", w, h)
	}
	c.Set(3, 5)
	if !c.Lit(3, 5) {
		t.Error("dot (3,5) not lit")
	}
	if c.Lit(2, 5) {
		t.Error("dot (2,5) unexpectedly lit")
	}
	c.Set(-1, 0)
	c.Set(100, 100)
	if c.Lit(-1, 0) || c.Lit(100, 100) {
		t.Error("out of range dots should never be lit")
	}
	c.Clear()
	if c.Lit(3, 5) {
		t.Error("Clear left dot lit")
	}
}

func TestCanvasDrawRect(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawRect(0, 0, 5, 7)
	for _, p := range [][2]int{{0, 0}, {5, 0}, {0, 7}, {5, 7}, {2, 0}, {0, 4}} {
		if !c.Lit(p[0], p[1]) {
			t.Errorf("edge dot %v not lit", p)
		}
	}
	if c.Lit(2, 3) {
		t.Error("interior dot lit")
	}
}

func TestComposeMergesLayers(t *testing.T) {
	a, b := NewCanvas(2, 1), NewCanvas(2, 1)
	a.Set(0, 0)
	b.Set(1, 0)
	plain := lipgloss.NewStyle()
	out := Compose(Layer{Canvas: a, Style: plain}, Layer{Canvas: b, Style: plain})
	want := string([]rune{blank | 0x1 | 0x8, blank}) + "\n"
	if out != want {
		t.Errorf("Compose = %q, want %q", out, want)
	}
	if Compose() != "" {
		t.Error("Compose with no layers should be empty")
	}
}

func TestModelStepsUntilMax(t *testing.T) {
	m := testModel(t, 3)
	if m.Time() != 0 {
		t.Fatalf("initial time = %d", m.Time())
	}
	for i := 0; i < 5; i++ {
		m = send(m, TickMsg(time.Now()))
	}
	if m.Time() != 3 {
		t.Errorf("time = %d, want 3", m.Time())
	}
	if got := len(m.Fraction()); got != 4 {
		t.Errorf("fraction history = %d, want 4", got)
	}
	if !strings.Contains(m.View(), "DONE") {
		t.Error("view should report DONE")
	}
}

func TestModelPauseStepReset(t *testing.T) {
	m := testModel(t, 0)
	m = send(m, key(" "))
	m = send(m, TickMsg(time.Now()))
	if m.Time() != 0 {
		t.Fatalf("paused model advanced to %d", m.Time())
	}
	m = send(m, key("n"))
	m = send(m, key("n"))
	if m.Time() != 2 {
		t.Fatalf("time after two single steps = %d, want 2", m.Time())
	}
	first := append([]float64(nil), m.Fraction()...)

	m = send(m, key("r"))
	if m.Time() != 0 {
		t.Fatalf("time after reset = %d", m.Time())
	}
	m = send(m, key("n"))
	m = send(m, key("n"))
	for i, f := range m.Fraction() {
		if f != first[i] {
			t.Errorf("fraction[%d] = %v after reset, want %v", i, f, first[i])
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(t, 0)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModelRecordsGIF(t *testing.T) {
	m := testModel(t, 0)
	m = send(m, key("g"))
	m = send(m, TickMsg(time.Now()))
	m = send(m, TickMsg(time.Now()))
	m = send(m, key("g"))
	if !strings.Contains(m.View(), "saved 3 frames") {
		t.Errorf("status missing from view:\n%s", m.View())
	}
}

func TestModelThemeCycle(t *testing.T) {
	defer SetTheme(CurrentTheme.Name)
	SetTheme(Themes[len(Themes)-1].Name)
	m := testModel(t, 0)
	send(m, key("t"))
	if CurrentTheme.Name != Themes[0].Name {
		t.Errorf("theme = %s, want wrap to %s", CurrentTheme.Name, Themes[0].Name)
	}
}

func TestGetThemeFallback(t *testing.T) {
	if GetTheme("nope").Name != ThemeClassic.Name {
		t.Error("unknown theme should fall back to classic")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}

func TestRecorderEncode(t *testing.T) {
	r := NewRecorder(25, color.Palette{color.Black, color.White})
	var buf bytes.Buffer
	if err := r.Encode(&buf); err == nil {
		t.Error("encoding zero frames should fail")
	}
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	r.Capture(Layer{Canvas: c})
	r.Capture(Layer{Canvas: c})
	if err := r.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(g.Image) != 2 || g.Delay[0] != 4 {
		t.Errorf("frames=%d delay=%d, want 2 frames delay 4", len(g.Image), g.Delay[0])
	}
	b := g.Image[0].Bounds()
	if b.Dx() != 4*dotW || b.Dy() != 4*dotH {
		t.Errorf("frame size %v", b)
	}
	if g.Image[0].ColorIndexAt(0, 0) != 1 || g.Image[0].ColorIndexAt(dotW, 0) != 0 {
		t.Error("lit dot not painted with layer colour")
	}
}

func TestPlotFraction(t *testing.T) {
	if PlotFraction(nil, 20, 4, "x") != "" {
		t.Error("empty series should render nothing")
	}
	out := PlotFraction([]float64{0, 0.25, 0.5, 1}, 20, 4, "assembled fraction")
	if !strings.Contains(out, "assembled fraction") {
		t.Errorf("caption missing:\n%s", out)
	}
	if PlotFraction([]float64{0.5}, 10, 3, "") == "" {
		t.Error("single sample should still plot")
	}
}

func TestProgressBarClamps(t *testing.T) {
	for _, f := range []float64{-1, 0, 0.5, 2} {
		bar := ProgressBar(f, 10)
		if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 10 {
			t.Errorf("ProgressBar(%v) has %d cells", f, n)
		}
	}
}

func TestSparklineKeepsRecent(t *testing.T) {
	vals := make([]float64, 50)
	for i := range vals {
		vals[i] = float64(i)
	}
	line := SparklineChart(vals, 10)
	n := 0
	for _, r := range line {
		if r >= '▁' && r <= '█' {
			n++
		}
	}
	if n != 10 {
		t.Errorf("sparkline has %d bars, want 10", n)
	}
}

func TestParseHex(t *testing.T) {
	r, g, b := parseHex("#4488ff")
	if r != 0x44 || g != 0x88 || b != 0xff {
		t.Errorf("parseHex = %d,%d,%d", r, g, b)
	}
	if r, _, _ := parseHex("bad"); r != 255 {
		t.Error("invalid hex should fall back to white")
	}
}
