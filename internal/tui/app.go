package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/rreflab/internal/config"
	"github.com/san-kum/rreflab/internal/engine"
	"github.com/san-kum/rreflab/internal/matrix"
	"github.com/san-kum/rreflab/internal/parse"
)

type state int

const (
	stateMenu state = iota
	stateInput
	stateStep
)

const historyLimit = 8

type menuEntry struct {
	name string
	desc string
	grid string // empty for manual entry
}

type model struct {
	cfg *config.Config
	pal palette

	state   state
	cursor  int
	entries []menuEntry

	// manual matrix entry
	lines      []string
	lineCursor int
	parseErr   string

	// stepping
	eng       *engine.Engine
	original  *matrix.Matrix
	lastKind  engine.Kind
	lastStep  string
	history   []string
	stepCount int
	autoplay  bool

	width  int
	height int
}

func NewApp(cfg *config.Config) *model {
	entries := make([]menuEntry, 0, len(config.Presets)+1)
	for _, p := range config.Presets {
		entries = append(entries, menuEntry{name: p.Name, desc: p.Description, grid: p.Grid})
	}
	entries = append(entries, menuEntry{name: "manual", desc: "type a matrix yourself"})

	return &model{
		cfg:     cfg,
		pal:     paletteFor(cfg.Theme),
		state:   stateMenu,
		entries: entries,
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	d := time.Duration(m.cfg.AutoplayMs) * time.Millisecond
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateStep || !m.autoplay || m.eng == nil {
			return m, nil
		}
		m.advance()
		if m.eng.Finished() {
			m.autoplay = false
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateInput:
		return m.inputKey(msg)
	case stateStep:
		return m.stepKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		entry := m.entries[m.cursor]
		if entry.grid == "" {
			m.lines = []string{""}
			m.lineCursor = 0
			m.parseErr = ""
			m.state = stateInput
			return m, nil
		}
		mat, err := parse.Grid(entry.grid)
		if err != nil {
			m.parseErr = err.Error()
			return m, nil
		}
		m.startRun(mat)
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		return m, tea.ClearScreen
	case "enter":
		m.lines = append(m.lines, "")
		copy(m.lines[m.lineCursor+2:], m.lines[m.lineCursor+1:])
		m.lines[m.lineCursor+1] = ""
		m.lineCursor++
	case "up":
		if m.lineCursor > 0 {
			m.lineCursor--
		}
	case "down":
		if m.lineCursor < len(m.lines)-1 {
			m.lineCursor++
		}
	case "backspace":
		line := m.lines[m.lineCursor]
		if len(line) > 0 {
			m.lines[m.lineCursor] = line[:len(line)-1]
		} else if m.lineCursor > 0 {
			m.lines = append(m.lines[:m.lineCursor], m.lines[m.lineCursor+1:]...)
			m.lineCursor--
		}
	case "ctrl+s":
		mat, err := parse.Grid(strings.Join(m.lines, "\n"))
		if err != nil {
			m.parseErr = err.Error()
			return m, nil
		}
		m.parseErr = ""
		m.startRun(mat)
		return m, tea.ClearScreen
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' ||
				c == 'e' || c == 'E' || c == ' ' {
				m.lines[m.lineCursor] += string(c)
			}
		}
	}
	return m, nil
}

func (m model) stepKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "m":
		m.state = stateMenu
		m.autoplay = false
		return m, tea.ClearScreen
	case " ", "enter", "n":
		m.advance()
	case "a":
		if m.eng != nil && !m.eng.Finished() {
			m.autoplay = !m.autoplay
			if m.autoplay {
				return m, m.tick()
			}
		}
	case "r":
		if m.original != nil {
			m.startRun(m.original.Clone())
			return m, tea.ClearScreen
		}
	}
	return m, nil
}

func (m *model) startRun(mat *matrix.Matrix) {
	m.original = mat.Clone()
	m.eng = engine.New(mat)
	m.state = stateStep
	m.lastStep = ""
	m.history = nil
	m.stepCount = 0
	m.autoplay = false
}

func (m *model) advance() {
	if m.eng == nil {
		return
	}
	step, ok := m.eng.Advance()
	if !ok {
		return
	}
	m.stepCount++
	m.lastKind = step.Kind
	m.lastStep = step.Description
	m.history = append(m.history, fmt.Sprintf("%3d  %s", m.stepCount, step.Description))
	if len(m.history) > historyLimit {
		m.history = m.history[1:]
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateInput:
		return m.viewInput()
	case stateStep:
		return m.viewStep()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.pal.dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + m.pal.title.Render("r r e f l a b") + "\n")
	b.WriteString(m.pal.dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, entry := range m.entries {
		if i == m.cursor {
			b.WriteString("      " + m.pal.title.Render("▸ ") +
				m.pal.text.Render(fmt.Sprintf("%-14s", entry.name)) +
				m.pal.dim.Render(entry.desc) + "\n")
		} else {
			b.WriteString("        " + m.pal.dim.Render(fmt.Sprintf("%-14s", entry.name)) +
				m.pal.dimmer.Render(entry.desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.pal.dim.Render("      ↑↓ select   enter start   q quit") + "\n")

	return b.String()
}

func (m model) viewInput() string {
	var b strings.Builder

	b.WriteString("\n      " + m.pal.title.Render("matrix entry") + "  " +
		m.pal.dim.Render("one row per line, values separated by spaces") + "\n")
	b.WriteString(m.pal.dimmer.Render("      "+strings.Repeat("─", 48)) + "\n\n")

	for i, line := range m.lines {
		if i == m.lineCursor {
			b.WriteString("      " + m.pal.title.Render("▸ ") + m.pal.text.Render(line+"▋") + "\n")
		} else {
			b.WriteString("        " + m.pal.dim.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	if m.parseErr != "" {
		b.WriteString("      " + m.pal.bad.Render(m.parseErr) + "\n\n")
	}
	b.WriteString(m.pal.dim.Render("      enter new row   ↑↓ move   ctrl+s solve   esc back") + "\n")

	return b.String()
}

func (m model) viewStep() string {
	var b strings.Builder

	statusIcon := m.pal.good.Render("●")
	statusText := m.pal.good.Render("stepping")
	if m.eng.Finished() {
		statusIcon = m.pal.accent.Render("◆")
		statusText = m.pal.accent.Render("finished")
	} else if m.autoplay {
		statusText = m.pal.warn.Render("autoplay")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n\n",
		statusIcon, m.pal.title.Render("gauss-jordan"), statusText,
		m.pal.dim.Render(fmt.Sprintf("step %d", m.stepCount))))

	row, col := m.eng.Cursor()
	g := gridView{
		snapshot:  m.eng.Snapshot(),
		cursorRow: row,
		cursorCol: col,
		active:    m.eng.Active(),
		finished:  m.eng.Finished(),
		precision: m.cfg.Precision,
		cellWidth: m.cfg.CellWidth,
		pal:       m.pal,
	}
	b.WriteString(g.render())
	b.WriteString("\n")

	if m.lastStep != "" {
		b.WriteString("   " + m.stepStyle(m.lastKind).Render(m.lastStep) + "\n\n")
	} else {
		b.WriteString("   " + m.pal.dim.Render("press space to take the first step") + "\n\n")
	}

	if len(m.history) > 1 {
		for _, h := range m.history[:len(m.history)-1] {
			b.WriteString("   " + m.pal.dimmer.Render(h) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.pal.dim.Render("   space step   a autoplay   r restart   m menu   q quit") + "\n")

	return b.String()
}

func (m model) stepStyle(k engine.Kind) lipgloss.Style {
	switch k {
	case engine.ContradictionFound, engine.NoSolution:
		return m.pal.bad
	case engine.UniqueSolution, engine.InfiniteSolutions, engine.Complete, engine.AnalysisComplete:
		return m.pal.good
	case engine.SwapPerformed, engine.ScalePerformed, engine.EliminationRowDone:
		return m.pal.accent
	default:
		return m.pal.text
	}
}

func RunInteractive(cfg *config.Config) error {
	p := tea.NewProgram(NewApp(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
