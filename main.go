package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type tickMsg time.Time

const tickInterval = time.Second / 10

func main() {
	config := loadConfig()
	logger, err := setupLogger(config.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	p := tea.NewProgram(
		initialModel(config, logger),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		logger.Fatal("program exited", zap.Error(err))
	}
}

func initialModel(config *Config, logger *zap.Logger) model {
	registry := DefaultRegistry()
	m := model{
		registry:      registry,
		config:        config,
		logger:        logger,
		startTime:     time.Now(),
		mode:          ModeStartup,
		selectedLayer: 0,
	}
	if !config.StartMenu {
		m.startSession(config.gridStyle())
	}
	return m
}

// startSession builds a fresh grid and trackers for the chosen style.
func (m *model) startSession(style DrawStyle) {
	m.grid = NewGrid(style, m.config.GridWidth, m.config.GridHeight, m.registry)
	m.undoTracker = NewUndoTracker()
	m.replayTracker = NewReplayTracker()
	m.cursorX = m.config.GridWidth / 2
	m.cursorY = m.config.GridHeight / 2
	m.mode = ModeNormal
	m.logger.Info("session started",
		zap.Stringer("style", style),
		zap.Int("width", m.config.GridWidth),
		zap.Int("height", m.config.GridHeight))
}

// timestamp is the session clock fed to every layer transform.
func (m *model) timestamp() float64 {
	return time.Since(m.startTime).Seconds()
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.mode == ModeReplay {
			m.stepReplay()
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeStartup:
		return m.handleStartupKey(msg)
	case ModeNormal:
		return m.handleNormalKey(msg)
	case ModeReplay:
		if msg.String() == "esc" {
			m.mode = ModeNormal
			m.successMessage = fmt.Sprintf("replay paused, %d actions left", m.replayTracker.Pending())
		}
		return m, nil
	case ModeFileInput:
		return m.handleFileInputKey(msg)
	case ModeConfirmQuit:
		switch msg.String() {
		case "y", "Y", "enter":
			return m, tea.Quit
		default:
			m.mode = ModeNormal
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleStartupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1":
		m.startSession(StyleSingle)
	case "2":
		m.startSession(StyleAdditive)
	case "3":
		m.startSession(StyleSequential)
	case "enter":
		m.startSession(m.config.gridStyle())
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		switch msg.String() {
		case "?", "esc", "q":
			m.help = false
		}
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""

	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		m.mode = ModeConfirmQuit
	case "?":
		m.help = true

	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, 1)
	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)

	case " ", "enter":
		m.paint(false)
	case "x":
		m.paint(true)
	case "s":
		m.triggerSpecial()

	case "u":
		if action := m.undoTracker.Undo(m.grid); action != nil {
			m.replayTracker.AddAction(action, true)
		} else {
			m.errorMessage = "nothing to undo"
		}
	case "r":
		if action := m.undoTracker.Redo(m.grid); action != nil {
			m.replayTracker.AddAction(action, false)
		} else {
			m.errorMessage = "nothing to redo"
		}

	case "+", "=":
		m.grid.IncreaseBrushSize()
	case "-", "_":
		m.grid.DecreaseBrushSize()

	case "tab":
		m.selectedLayer = (m.selectedLayer + 1) % m.registry.Count()

	case "p":
		m.beginReplay()

	case "e":
		m.fileOp = FileOpSavePNG
		m.fileInput = "canvas.png"
		m.mode = ModeFileInput
	case "t":
		m.fileOp = FileOpSaveTXT
		m.fileInput = "canvas.txt"
		m.mode = ModeFileInput
	case "c":
		if err := copyToClipboard(m.grid, m.timestamp()); err != nil {
			m.errorMessage = "clipboard copy failed"
			m.logger.Error("clipboard copy", zap.Error(err))
		} else {
			m.successMessage = "copied to clipboard"
		}

	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < m.registry.Count() {
				m.selectedLayer = idx
			}
		}
	}
	return m, nil
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
	case "enter":
		m.mode = ModeNormal
		if m.fileInput != "" {
			m.saveFile(m.fileInput)
		}
	case "backspace":
		if len(m.fileInput) > 0 {
			m.fileInput = m.fileInput[:len(m.fileInput)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.fileInput += string(msg.Runes)
		}
	}
	return m, nil
}

func (m *model) saveFile(filename string) {
	path := m.config.GetSavePath(filename)
	var err error
	switch m.fileOp {
	case FileOpSavePNG:
		err = exportPNG(m.grid, path, m.timestamp())
	case FileOpSaveTXT:
		err = exportTXT(m.grid, path, m.timestamp())
	}
	if err != nil {
		m.errorMessage = fmt.Sprintf("save failed: %v", err)
		m.logger.Error("save", zap.String("path", path), zap.Error(err))
		return
	}
	m.successMessage = "saved " + path
	m.logger.Info("saved", zap.String("path", path))
}

func (m *model) moveCursor(dx, dy int) {
	m.cursorX += dx
	m.cursorY += dy
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorX >= m.grid.Width() {
		m.cursorX = m.grid.Width() - 1
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.cursorY >= m.grid.Height() {
		m.cursorY = m.grid.Height() - 1
	}
}

// paint builds one PaintAction covering the brush footprint around
// the cursor, applies it, and records it with both trackers.
func (m *model) paint(erase bool) {
	layer, ok := m.registry.ByIndex(m.selectedLayer)
	if !ok {
		return
	}

	size := m.grid.BrushSize()
	var steps []PaintStep
	for dx := -size; dx <= size; dx++ {
		for dy := -size; dy <= size; dy++ {
			if abs(dx)+abs(dy) > size {
				continue
			}
			x, y := m.cursorX+dx, m.cursorY+dy
			if m.grid.StoreAt(x, y) == nil {
				continue
			}
			steps = append(steps, PaintStep{X: x, Y: y, Layer: layer, Erase: erase})
		}
	}
	if len(steps) == 0 {
		return
	}

	action := NewPaintAction(steps, false)
	action.Apply(m.grid)
	m.record(action)
}

// triggerSpecial records the grid-wide special effect as an action so
// it participates in undo and replay.
func (m *model) triggerSpecial() {
	action := NewPaintAction(nil, true)
	action.Apply(m.grid)
	m.record(action)
	m.successMessage = "special!"
}

func (m *model) record(action *PaintAction) {
	if !m.undoTracker.AddAction(action) {
		m.errorMessage = "undo history full"
	}
	if !m.replayTracker.AddAction(action, false) {
		m.logger.Warn("replay log full, action not recorded")
	}
}

// beginReplay swaps in a blank grid and starts feeding the recorded
// session back into it, one action per tick.
func (m *model) beginReplay() {
	if m.replayTracker.Pending() == 0 {
		m.errorMessage = "nothing to replay"
		return
	}
	m.grid = NewGrid(m.grid.DrawStyle(), m.grid.Width(), m.grid.Height(), m.registry)
	m.undoTracker = NewUndoTracker()
	m.replayTracker.StartReplay()
	m.replayedCount = 0
	m.mode = ModeReplay
	m.logger.Info("replay started", zap.Int("pending", m.replayTracker.Pending()))
}

func (m *model) stepReplay() {
	if m.replayTracker.PlayNextAction(m.grid) {
		m.replayedCount++
		return
	}
	m.mode = ModeNormal
	m.replayTracker = NewReplayTracker()
	m.successMessage = fmt.Sprintf("replay finished, %d actions", m.replayedCount)
	m.logger.Info("replay finished", zap.Int("played", m.replayedCount))
}

var (
	statusStyle  = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")).Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	swatchSel    = lipgloss.NewStyle().Bold(true).Underline(true)
)

func (m model) View() string {
	if m.mode == ModeStartup {
		return m.startupView()
	}
	if m.help {
		return m.helpView()
	}

	cursorX, cursorY := m.cursorX, m.cursorY
	if m.mode == ModeReplay {
		cursorX, cursorY = -1, -1
	}

	var b strings.Builder
	for _, line := range renderGrid(m.grid, m.timestamp(), cursorX, cursorY) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.paletteView())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	return b.String()
}

func (m model) startupView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pigment"))
	b.WriteString("\n\n")
	b.WriteString("choose a draw style:\n\n")
	b.WriteString("  1  single      last layer wins, special inverts\n")
	b.WriteString("  2  additive    layers stack oldest first, special reverses\n")
	b.WriteString("  3  sequential  one slot per layer, special drops the median\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("enter for config default (%s), q quits", m.config.DrawStyle)))
	return b.String()
}

func (m model) paletteView() string {
	var b strings.Builder
	for i, layer := range m.registry.Layers() {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(layer.Background.Hex())).
			Foreground(lipgloss.Color(layer.Background.contrastHex())).
			Padding(0, 1)
		label := fmt.Sprintf("%d %s", i+1, layer.Name)
		if i == m.selectedLayer {
			b.WriteString(swatchSel.Inherit(style).Render(label))
		} else {
			b.WriteString(style.Render(label))
		}
		b.WriteString(" ")
	}
	return b.String()
}

func (m model) statusView() string {
	left := statusStyle.Render(fmt.Sprintf("%s | %s | brush %d | undo %d | redo %d | log %d",
		m.modeString(), m.grid.DrawStyle(), m.grid.BrushSize(),
		m.undoTracker.UndoDepth(), m.undoTracker.RedoDepth(), m.replayTracker.Pending()))

	msg := ""
	switch {
	case m.errorMessage != "":
		msg = " " + errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		msg = " " + successStyle.Render(m.successMessage)
	case m.mode == ModeFileInput:
		msg = " save as: " + m.fileInput + "█"
	case m.mode == ModeConfirmQuit:
		msg = " " + errorStyle.Render("quit? (y/n)")
	default:
		msg = " " + dimStyle.Render("? for help")
	}
	return left + msg
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "PAINT"
	case ModeReplay:
		return "REPLAY"
	case ModeFileInput:
		return "SAVE"
	case ModeConfirmQuit:
		return "QUIT?"
	}
	return ""
}

func (m model) helpView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pigment keys"))
	b.WriteString("\n\n")
	rows := [][2]string{
		{"arrows / hjkl", "move cursor"},
		{"space / enter", "paint with selected layer"},
		{"x", "erase at cursor"},
		{"1-8 / tab", "select layer"},
		{"+ / -", "brush size"},
		{"s", "special effect (all cells)"},
		{"u / r", "undo / redo"},
		{"p", "replay the session"},
		{"e / t", "export png / text"},
		{"c", "copy to clipboard"},
		{"q", "quit"},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-16s %s\n", row[0], dimStyle.Render(row[1])))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("? closes help"))
	return b.String()
}
