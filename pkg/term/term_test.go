package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/tweak/pkg/color"
	"github.com/go-drift/tweak/pkg/colormodel"
	"github.com/go-drift/tweak/pkg/rendering"
	"github.com/go-drift/tweak/pkg/value"
)

func TestCellCanvasFill(t *testing.T) {
	c := NewCellCanvas(4, 3)
	c.DrawRect(rendering.RectFromLTWH(1, 1, 2, 2), rendering.FillPaint(rendering.ColorRed))

	tests := []struct {
		x, y int
		want rendering.Color
	}{
		{0, 0, rendering.ColorTransparent},
		{1, 1, rendering.ColorRed},
		{2, 2, rendering.ColorRed},
		{3, 2, rendering.ColorTransparent},
		{9, 9, rendering.ColorTransparent},
	}
	for _, tt := range tests {
		if got := c.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %#x, want %#x", tt.x, tt.y, uint32(got), uint32(tt.want))
		}
	}
}

func TestCellCanvasTranslateAndStroke(t *testing.T) {
	c := NewCellCanvas(6, 6)
	c.Save()
	c.Translate(1, 1)
	c.DrawRect(rendering.RectFromLTWH(0, 0, 4, 4), rendering.StrokePaint(rendering.ColorBlue, 1))
	c.Restore()
	c.DrawRect(rendering.RectFromLTWH(0, 0, 1, 1), rendering.FillPaint(rendering.ColorGreen))

	if got := c.At(1, 1); got != rendering.ColorBlue {
		t.Errorf("corner = %#x, want blue", uint32(got))
	}
	if got := c.At(2, 2); got != rendering.ColorTransparent {
		t.Errorf("interior = %#x, want transparent", uint32(got))
	}
	if got := c.At(0, 0); got != rendering.ColorGreen {
		t.Errorf("origin after Restore = %#x, want green", uint32(got))
	}
}

func TestCellCanvasRender(t *testing.T) {
	c := NewCellCanvas(3, 3)
	c.Clear(rendering.ColorWhite)
	if got := c.Lines(); got != 2 {
		t.Fatalf("Lines() = %d, want 2", got)
	}

	out := c.Render(nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	if n := strings.Count(out, upperHalf); n != 6 {
		t.Errorf("half blocks = %d, want 6", n)
	}

	out = c.Render(&[2]int{2, 3})
	if n := strings.Count(out, markGlyph); n != 1 {
		t.Errorf("markers = %d, want 1", n)
	}
	if !strings.Contains(strings.Split(out, "\n")[1], markGlyph) {
		t.Error("marker should be on the second line")
	}

	c.DrawText("ab", rendering.Offset{X: 0, Y: 0}, rendering.ColorBlack)
	out = c.Render(nil)
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Errorf("text glyphs missing from %q", out)
	}
}

func newTestModel() (Model, *value.Value[float64], *value.Value[color.Color]) {
	n := value.New(5.0)
	c := value.New(color.HSV(120, 50, 50))
	m := NewModel(Options{
		Title:  "demo",
		Number: n,
		Min:    0,
		Max:    10,
		Step:   1,
		Digits: 1,
		Color:  c,
	})
	return m, n, c
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestModelInitialView(t *testing.T) {
	m, _, _ := newTestModel()
	defer m.Close()

	out := m.View()
	for _, want := range []string{"demo", "5.0", "#408040", markGlyph} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if m.Focused() != FocusSlider {
		t.Errorf("Focused() = %v, want slider", m.Focused())
	}
}

func TestModelArrowKeysDriveFocusedControl(t *testing.T) {
	m, n, c := newTestModel()
	defer m.Close()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	if n.RawValue() != 7 {
		t.Errorf("number = %v, want 7", n.RawValue())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focused() != FocusPalette {
		t.Fatalf("Focused() = %v, want palette", m.Focused())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := c.RawValue().Components(colormodel.ModeHSV); got != (colormodel.Components{120, 50, 51}) {
		t.Errorf("hsv = %v, want [120 50 51]", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focused() != FocusColor {
		t.Errorf("Focused() after wrapping back = %v, want color text", m.Focused())
	}
}

func TestModelEditsText(t *testing.T) {
	m, n, _ := newTestModel()
	defer m.Close()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Editing() {
		t.Fatal("Enter on the text field should start editing")
	}
	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.Editing() {
		t.Error("Enter should commit and stop editing")
	}
	if n.RawValue() != 10 {
		t.Errorf("number = %v, want 10 (clamped)", n.RawValue())
	}

	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")},
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	if n.RawValue() != 10 {
		t.Errorf("Esc should discard the edit, number = %v", n.RawValue())
	}
}

func TestModelExternalWrites(t *testing.T) {
	m, n, c := newTestModel()
	defer m.Close()

	m = send(t, m, NumberMsg{Value: 2}, ColorMsg{Color: color.RGB(255, 0, 0)})
	if n.RawValue() != 2 {
		t.Errorf("number = %v, want 2", n.RawValue())
	}
	if !c.RawValue().Equal(color.RGB(255, 0, 0)) {
		t.Errorf("color = %v, want red", c.RawValue())
	}
	if out := m.View(); !strings.Contains(out, "#ff0000") || !strings.Contains(out, "2.0") {
		t.Errorf("View() should show the written values")
	}
}

func TestModelQuit(t *testing.T) {
	m, n, _ := newTestModel()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
	}
	if updated.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}

	m.Close()
	if n.ListenerCount() != 0 {
		t.Errorf("ListenerCount() after Close = %d, want 0", n.ListenerCount())
	}
}
