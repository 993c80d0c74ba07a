// Package tui collects an experiment from the keyboard: material,
// loading mode, beam dimensions and one scale position per load.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/banitsriram/young-modulus/internal/config"
	"github.com/banitsriram/young-modulus/internal/material"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var bendings = []string{"uniform", "non-uniform"}

var bendingInfo = map[string]string{
	"uniform":     "load spread along the span",
	"non-uniform": "load hung at mid-span",
}

type step int

const (
	stepMaterial step = iota
	stepBending
	stepSetup
	stepPositions
	stepConfirm
)

type model struct {
	step   step
	cursor int

	materials []material.Material
	matIdx    int
	bendIdx   int

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	positions []float64
	posCursor int

	done bool

	width  int
	height int
}

func newModel() model {
	return model{
		step:      stepMaterial,
		materials: material.List(),
		params: map[string]float64{
			"length":    config.DefaultLength,
			"breadth":   config.DefaultBreadth,
			"width":     config.DefaultWidth,
			"initial":   0.0,
			"readings":  3,
			"load step": config.DefaultLoadStep,
		},
		paramNames: []string{"length", "breadth", "width", "initial", "readings", "load step"},
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.step {
	case stepMaterial:
		return m.materialKey(msg)
	case stepBending:
		return m.bendingKey(msg)
	case stepSetup:
		return m.setupKey(msg)
	case stepPositions:
		return m.positionsKey(msg)
	case stepConfirm:
		return m.confirmKey(msg)
	}
	return m, nil
}

func (m model) materialKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.materials)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.matIdx = m.cursor
		m.step = stepBending
		m.cursor = m.bendIdx
	}
	return m, nil
}

func (m model) bendingKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "escape":
		m.step = stepMaterial
		m.cursor = m.matIdx
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(bendings)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.bendIdx = m.cursor
		m.step = stepSetup
		m.paramCursor = 0
	}
	return m, nil
}

func (m model) setupKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg, func(val float64) {
			m.params[m.paramNames[m.paramCursor]] = val
		})
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "escape":
		m.step = stepBending
		m.cursor = m.bendIdx
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.2f", m.params[m.paramNames[m.paramCursor]])
	case "left", "h":
		m.params[m.paramNames[m.paramCursor]] -= 0.1
	case "right", "l":
		m.params[m.paramNames[m.paramCursor]] += 0.1
	case "s":
		m.preparePositions()
		m.step = stepPositions
		m.posCursor = 0
	}
	return m, nil
}

func (m model) positionsKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg, func(val float64) {
			m.positions[m.posCursor] = val
		})
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "escape":
		m.step = stepSetup
	case "up", "k":
		if m.posCursor > 0 {
			m.posCursor--
		}
	case "down", "j":
		if m.posCursor < len(m.positions)-1 {
			m.posCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.3f", m.positions[m.posCursor])
	case "s":
		m.step = stepConfirm
	}
	return m, nil
}

func (m model) confirmKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "escape":
		m.step = stepPositions
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// editKey funnels keystrokes into editBuf until enter commits the value
// through set.
func (m model) editKey(msg tea.KeyMsg, set func(float64)) (model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var val float64
		fmt.Sscanf(m.editBuf, "%f", &val)
		set(val)
		m.editing = false
		m.editBuf = ""
	case "escape":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

// preparePositions resizes the position list to the configured reading
// count, seeding new entries with the initial scale position.
func (m *model) preparePositions() {
	n := int(m.params["readings"])
	if n < 1 {
		n = 1
	}
	positions := make([]float64, n)
	for i := range positions {
		if i < len(m.positions) {
			positions[i] = m.positions[i]
		} else {
			positions[i] = m.params["initial"]
		}
	}
	m.positions = positions
}

func (m model) loadFor(i int) float64 {
	return m.params["load step"] * float64(i+1)
}

func (m model) View() string {
	switch m.step {
	case stepMaterial:
		return m.viewMaterial()
	case stepBending:
		return m.viewBending()
	case stepSetup:
		return m.viewSetup()
	case stepPositions:
		return m.viewPositions()
	case stepConfirm:
		return m.viewConfirm()
	}
	return ""
}

func banner() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + cyan.Render("y o u n g m o d") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")
	return b.String()
}

func (m model) viewMaterial() string {
	var b strings.Builder
	b.WriteString(banner())

	for i, mat := range m.materials {
		desc := fmt.Sprintf("%g GPa", mat.Modulus)
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-18s", mat.Name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-18s", mat.Name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter choose   q quit") + "\n")
	return b.String()
}

func (m model) viewBending() string {
	var b strings.Builder
	b.WriteString(banner())
	b.WriteString("      " + cyan.Render(m.materials[m.matIdx].Name) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, name := range bendings {
		desc := bendingInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-14s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter choose   esc back") + "\n")
	return b.String()
}

func (m model) viewSetup() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.materials[m.matIdx].Name) + "  " + dim.Render(bendings[m.bendIdx]+" bending") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%8.3f", m.params[name])
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      lengths in cm, loads in g") + "\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s continue  esc back") + "\n")
	return b.String()
}

func (m model) viewPositions() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("      " + cyan.Render("scale positions") + "  " + dim.Render(fmt.Sprintf("initial %.3f cm", m.params["initial"])) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	for i, pos := range m.positions {
		name := fmt.Sprintf("reading %d (%g g)", i+1, m.loadFor(i))
		val := fmt.Sprintf("%8.3f", pos)
		if m.editing && i == m.posCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.posCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-20s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-20s", name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  enter edit  s continue  esc back") + "\n")
	return b.String()
}

func (m model) viewConfirm() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("      " + cyan.Render("ready to run") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	b.WriteString("      " + dim.Render(fmt.Sprintf("%-10s", "material")) + white.Render(m.materials[m.matIdx].Name) + "\n")
	b.WriteString("      " + dim.Render(fmt.Sprintf("%-10s", "bending")) + white.Render(bendings[m.bendIdx]) + "\n")
	b.WriteString("      " + dim.Render(fmt.Sprintf("%-10s", "beam")) +
		white.Render(fmt.Sprintf("%g × %g × %g cm", m.params["length"], m.params["breadth"], m.params["width"])) + "\n")
	b.WriteString("      " + dim.Render(fmt.Sprintf("%-10s", "readings")) + white.Render(fmt.Sprintf("%d", len(m.positions))) + "\n\n")

	for i, pos := range m.positions {
		b.WriteString("        " + dim.Render(fmt.Sprintf("%g g", m.loadFor(i))) +
			dimmer.Render("  →  ") + dim.Render(fmt.Sprintf("%.3f cm", pos)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      enter run   esc back   q quit") + "\n")
	return b.String()
}

// config packs the collected answers into a file-shaped configuration.
func (m model) config() *config.Config {
	readings := make([]config.ReadingConfig, len(m.positions))
	for i, pos := range m.positions {
		readings[i] = config.ReadingConfig{Position: pos}
	}
	return &config.Config{
		Material: m.materials[m.matIdx].Key,
		Bending:  bendings[m.bendIdx],
		Dimensions: config.DimensionsConfig{
			Length:  m.params["length"],
			Breadth: m.params["breadth"],
			Width:   m.params["width"],
		},
		Initial:  m.params["initial"],
		LoadStep: m.params["load step"],
		Readings: readings,
	}
}

// Run walks through the collection steps and returns the configured
// experiment. A nil config without error means the user backed out.
func Run() (*config.Config, error) {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return nil, err
	}
	final, ok := out.(model)
	if !ok || !final.done {
		return nil, nil
	}
	return final.config(), nil
}
