package watch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/mstep/engine"
	"github.com/npillmayer/mstep/grammar"
)

// Playback speed limits.
const (
	MinInterval = 50 * time.Millisecond
	MaxInterval = 5 * time.Second
)

// Config holds the settings of a watch session.
type Config struct {
	Expression string        // expression loaded at start
	Interval   time.Duration // pause between steps during playback
	MaxSteps   int           // step limit of the engine
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Expression: "[10,20]+[30,40]",
		Interval:   400 * time.Millisecond,
		MaxSteps:   engine.DefaultMaxSteps,
	}
}

// tickMsg triggers a playback step. Ticks of an earlier playback are
// recognized by their generation and dropped.
type tickMsg struct {
	generation int
}

// Model is the bubbletea model of the watch view.
type Model struct {
	engine     *engine.Engine
	input      textinput.Model
	trace      viewport.Model
	width      int
	height     int
	ready      bool
	playing    bool
	generation int
	interval   time.Duration
}

// New creates a watch model and loads cfg.Expression.
func New(cfg Config) Model {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	in := textinput.New()
	in.Prompt = "Expression: "
	in.Placeholder = "[[1,2],[3,4]] * [[5,6],[7,8]]"
	in.CharLimit = 256
	in.SetValue(cfg.Expression)
	return Model{
		engine:   engine.New(cfg.Expression, engine.WithMaxSteps(cfg.MaxSteps)),
		input:    in,
		interval: clampInterval(cfg.Interval),
	}
}

// Run shows the watch view until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Snapshot returns the state of the engine shown.
func (m Model) Snapshot() engine.Snapshot {
	return m.engine.Inspect()
}

// Playing is true during playback.
func (m Model) Playing() bool {
	return m.playing
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.handleEditKey(msg)
		}
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		traceHeight := msg.Height - 18
		if traceHeight < 3 {
			traceHeight = 3
		}
		if !m.ready {
			m.trace = viewport.New(msg.Width-4, traceHeight)
			m.ready = true
		} else {
			m.trace.Width, m.trace.Height = msg.Width-4, traceHeight
		}
		m.input.Width = msg.Width - 20
		m.updateTrace()
		return m, nil
	case tickMsg:
		if !m.playing || msg.generation != m.generation {
			return m, nil
		}
		m.step()
		if m.engine.Done() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}
	var cmd tea.Cmd
	m.trace, cmd = m.trace.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input while the expression is not edited.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case " ", "n", "right":
		m.playing = false
		m.step()
	case "p":
		return m.togglePlayback()
	case "r":
		m.load(m.input.Value())
	case "+":
		m.interval = clampInterval(m.interval / 2)
	case "-":
		m.interval = clampInterval(m.interval * 2)
	case "e", "/":
		m.playing = false
		cmd := m.input.Focus()
		return m, cmd
	default:
		var cmd tea.Cmd
		m.trace, cmd = m.trace.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleEditKey handles keyboard input for the expression field. Enter
// loads the expression.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.input.Blur()
		m.load(m.input.Value())
		return m, nil
	case "esc":
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) togglePlayback() (tea.Model, tea.Cmd) {
	if m.playing || m.engine.Done() {
		m.playing = false
		return *m, nil
	}
	m.playing = true
	m.generation++
	return *m, m.tick()
}

func (m Model) tick() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

func (m *Model) step() {
	if m.engine.Done() {
		return
	}
	m.engine.Advance()
	m.updateTrace()
}

func (m *Model) load(expr string) {
	tracer().Infof("watch: loading %q", expr)
	m.playing = false
	m.engine.Submit(expr)
	m.updateTrace()
}

func (m *Model) updateTrace() {
	if !m.ready {
		return
	}
	history := m.engine.Inspect().History
	lines := make([]string, len(history))
	for i, h := range history {
		line := fmt.Sprintf("%4d  %-8s %-28s %s", i, h.Input, h.Action, h.Stack)
		if strings.HasPrefix(h.Action, "ERROR") {
			line = errorStyle.Render(line)
		}
		lines[i] = line
	}
	m.trace.SetContent(strings.Join(lines, "\n"))
	m.trace.GotoBottom()
}

func clampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}

// --- Rendering -------------------------------------------------------------

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}
	snap := m.engine.Inspect()
	half := (m.width - 4) / 2
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(half).Render(m.renderLexer(snap)),
		panelStyle.Width(half).Render(m.renderParser(snap)),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(snap),
		panels,
		panelStyle.Width(m.width-2).Render(m.trace.View()),
		m.renderHelp(),
	)
}

func (m Model) renderHeader(snap engine.Snapshot) string {
	status := snap.Status
	switch snap.Phase {
	case engine.Accepted:
		status = acceptedStyle.Render("RESULT: " + status)
	case engine.Failed:
		status = errorStyle.Render("RESULT: " + status)
	}
	play := ""
	if m.playing {
		play = highlightStyle.Render(fmt.Sprintf("  ▶ playing (%v)", m.interval))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("mstep: matrix expression analysis")+play,
		m.input.View(),
		fmt.Sprintf("%s   steps: %d", status, snap.Steps),
	)
}

func (m Model) renderLexer(snap engine.Snapshot) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Lexer"))
	b.WriteString("\n")
	row(&b, "mode", snap.Lexer.Mode)
	if snap.Lexer.Microstate != "" {
		row(&b, "micro-state", snap.Lexer.Microstate)
	}
	if snap.Lexer.Partial != "" {
		row(&b, "partial", snap.Lexer.Partial)
	}
	if !snap.Lexer.Ready.IsNone() {
		row(&b, "ready", highlightStyle.Render(snap.Lexer.Ready.String()))
	}
	row(&b, "tokens", renderTokens(snap))
	return b.String()
}

func (m Model) renderParser(snap engine.Snapshot) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Parser"))
	b.WriteString("\n")
	row(&b, "stack", renderStack(snap.Stack, len(snap.JustPushed)))
	row(&b, "action", snap.LastAction)
	if snap.LastOperation != "" {
		row(&b, "operation", snap.LastOperation)
	}
	row(&b, "row length", dimension(snap.Shape.ExpectedRowLength))
	row(&b, "matrix 1", dimension(snap.Shape.Matrix1Cols))
	return b.String()
}

func (m Model) renderHelp() string {
	if m.input.Focused() {
		return helpStyle.Render("enter: load • esc: cancel • ctrl+c: quit")
	}
	return helpStyle.Render("space/n: step • p: play/pause • +/-: speed • r: restart • e: edit • q: quit")
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

// renderTokens highlights the lookahead once parsing has started.
func renderTokens(snap engine.Snapshot) string {
	if len(snap.Tokens) == 0 {
		return "–"
	}
	values := make([]string, len(snap.Tokens))
	for i, tok := range snap.Tokens {
		values[i] = tok.Value
		if snap.Phase != engine.Lexing && i == snap.Cursor {
			values[i] = highlightStyle.Render(tok.Value)
		}
	}
	return strings.Join(values, " ")
}

// renderStack lists the stack top first, highlighting the symbols pushed by
// the last expansion.
func renderStack(stack []grammar.Symbol, pushed int) string {
	if len(stack) == 0 {
		return "empty"
	}
	names := make([]string, len(stack))
	for i, sym := range stack {
		names[i] = sym.String()
		if i < pushed {
			names[i] = highlightStyle.Render(names[i])
		}
	}
	return strings.Join(names, " ")
}

func dimension(n int) string {
	if n < 0 {
		return "–"
	}
	return fmt.Sprintf("%d", n)
}
