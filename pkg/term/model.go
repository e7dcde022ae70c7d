package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/tweak/pkg/color"
	"github.com/go-drift/tweak/pkg/controller"
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/format"
	"github.com/go-drift/tweak/pkg/value"
	"github.com/go-drift/tweak/pkg/view"
)

// NumberMsg writes a number into the hosted slider's value from outside the
// terminal, e.g. a watched config file.
type NumberMsg struct {
	Value float64
}

// ColorMsg writes a color into the hosted picker's value.
type ColorMsg struct {
	Color color.Color
}

// Focus identifies the control receiving keys.
type Focus int

const (
	FocusSlider Focus = iota
	FocusNumber
	FocusPalette
	FocusHue
	FocusColor
	focusCount
)

var focusClasses = [focusCount]string{
	FocusSlider:  "tw-sldv_t",
	FocusNumber:  "tw-txtv_i",
	FocusPalette: "tw-svpv_c",
	FocusHue:     "tw-hplv_c",
	FocusColor:   "tw-coltxtv_i",
}

func (f Focus) editable() bool {
	return f == FocusNumber || f == FocusColor
}

// Options configures a Model.
type Options struct {
	Title string

	Number        *value.Value[float64]
	Min, Max      float64
	Step          float64
	Digits        int
	Color         *value.Value[color.Color]
	PaletteSize   int
	SliderColumns int
}

// Model hosts a number slider and a color picker in bubbletea.
type Model struct {
	title   string
	screens *Screens
	number  *controller.SliderText
	picker  *controller.ColorPicker
	targets [focusCount]*dom.Element
	columns int

	focus    Focus
	input    textinput.Model
	editing  bool
	quitting bool
}

// NewModel builds both controls on a document whose canvases render to cells.
func NewModel(opts Options) Model {
	if opts.PaletteSize <= 0 {
		opts.PaletteSize = 32
	}
	if opts.SliderColumns <= 0 {
		opts.SliderColumns = opts.PaletteSize
	}
	if opts.Number == nil {
		opts.Number = value.New(opts.Min)
	}
	if opts.Color == nil {
		opts.Color = value.New(color.HSV(0, 100, 100))
	}

	screens := NewScreens()
	doc := dom.NewDocument(screens.Provide)

	m := Model{
		title:   opts.Title,
		screens: screens,
		columns: opts.SliderColumns,
		input:   textinput.New(),
	}
	m.number = controller.NewSliderText(doc, controller.SliderTextConfig{
		Formatter: format.NumberFormatter{Digits: opts.Digits},
		Parser:    format.NumberParser{},
		Value:     opts.Number,
		Min:       opts.Min,
		Max:       opts.Max,
		Step:      opts.Step,
	})
	m.picker = controller.NewColorPicker(doc, controller.ColorPickerConfig{
		Value:       opts.Color,
		PaletteSize: opts.PaletteSize,
		StripHeight: 2,
	})
	for f := range focusCount {
		root := m.number.Element()
		if f >= FocusPalette {
			root = m.picker.Element()
		}
		m.targets[f] = root.Find(focusClasses[f])
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focused returns the control receiving keys.
func (m Model) Focused() Focus {
	return m.focus
}

// Editing reports whether a text field is being edited.
func (m Model) Editing() bool {
	return m.editing
}

// Close disposes both controls. The values are left untouched.
func (m Model) Close() {
	m.number.Dispose()
	m.picker.Dispose()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case NumberMsg:
		m.number.Value().Set(msg.Value)
		return m, nil
	case ColorMsg:
		m.picker.Value().Set(msg.Color)
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyTab:
		m.focus = (m.focus + 1) % focusCount
	case tea.KeyShiftTab:
		m.focus = (m.focus + focusCount - 1) % focusCount
	case tea.KeyEnter:
		if m.focus.editable() {
			m.editing = true
			m.input.SetValue("")
			m.input.Placeholder = m.target().Text()
			return m, m.input.Focus()
		}
	case tea.KeyUp:
		m.dispatchKey(dom.KeyArrowUp)
	case tea.KeyDown:
		m.dispatchKey(dom.KeyArrowDown)
	case tea.KeyLeft:
		m.dispatchKey(dom.KeyArrowLeft)
	case tea.KeyRight:
		m.dispatchKey(dom.KeyArrowRight)
	case tea.KeyRunes:
		if string(msg.Runes) == "q" {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.target().Dispatch(dom.Event{Type: dom.EventChange, Text: m.input.Value()})
		m.stopEditing()
		return m, nil
	case tea.KeyEsc:
		m.stopEditing()
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) target() *dom.Element {
	return m.targets[m.focus]
}

func (m Model) dispatchKey(key string) {
	if el := m.target(); el != nil {
		el.Dispatch(dom.Event{Type: dom.EventKeyDown, Key: key})
	}
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Width(8).Foreground(lipgloss.Color("244"))
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	fieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	sectionStyle = lipgloss.NewStyle().MarginTop(1)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	if m.title != "" {
		sb.WriteString(titleStyle.Render(m.title))
		sb.WriteByte('\n')
	}

	sb.WriteString(m.row(FocusSlider, "value", m.sliderBar()))
	sb.WriteByte('\n')
	sb.WriteString(m.row(FocusNumber, "text", m.field(FocusNumber)))
	sb.WriteByte('\n')

	sb.WriteString(sectionStyle.Render(m.row(FocusPalette, "color", "")))
	sb.WriteByte('\n')
	sb.WriteString(m.palette())
	sb.WriteByte('\n')
	sb.WriteString(m.row(FocusHue, "hue", ""))
	sb.WriteByte('\n')
	sb.WriteString(m.hueStrip())
	sb.WriteByte('\n')
	sb.WriteString(m.row(FocusColor, "hex", m.field(FocusColor)+" "+m.swatch()))
	sb.WriteByte('\n')

	sb.WriteString(helpStyle.Render("tab focus • arrows adjust • enter edit • q quit"))
	return sb.String()
}

func (m Model) row(f Focus, label, content string) string {
	cursor := "  "
	if m.focus == f {
		cursor = focusStyle.Render("› ")
	}
	return cursor + labelStyle.Render(label) + content
}

func (m Model) field(f Focus) string {
	if m.editing && m.focus == f {
		return m.input.View()
	}
	if el := m.targets[f]; el != nil {
		return fieldStyle.Render(el.Text())
	}
	return ""
}

func (m Model) sliderBar() string {
	knob := m.number.Element().Find("tw-sldv_k")
	if knob == nil {
		return ""
	}
	p, _ := view.ParsePercent(knob.Style("width"))
	filled := int(math.Round(p / 100 * float64(m.columns)))
	filled = max(0, min(filled, m.columns))
	return strings.Repeat("█", filled) + strings.Repeat("░", m.columns-filled)
}

func (m Model) palette() string {
	canvas := m.screens.For(m.targets[FocusPalette])
	if canvas == nil {
		return ""
	}
	marker := m.picker.Element().Find("tw-svpv_m")
	left, _ := view.ParsePercent(marker.Style("left"))
	top, _ := view.ParsePercent(marker.Style("top"))
	return canvas.Render(markAt(canvas, left, top))
}

func (m Model) hueStrip() string {
	canvas := m.screens.For(m.targets[FocusHue])
	if canvas == nil {
		return ""
	}
	marker := m.picker.Element().Find("tw-hplv_m")
	left, _ := view.ParsePercent(marker.Style("left"))
	return canvas.Render(markAt(canvas, left, 0))
}

func (m Model) swatch() string {
	c := m.picker.Value().RawValue().ToRendering().WithAlpha(0xFF)
	return lipgloss.NewStyle().Background(hex(c)).Render("    ")
}

// markAt converts percentage offsets into the pixel a marker covers.
func markAt(c *CellCanvas, left, top float64) *[2]int {
	size := c.Size()
	x := int(math.Round(left / 100 * (size.Width - 1)))
	y := int(math.Round(top / 100 * (size.Height - 1)))
	return &[2]int{x, y}
}
