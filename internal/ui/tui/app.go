package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/usecase"
)

type model struct {
	theme Theme
	keys  keyMap
	help  help.Model
	deps  Deps
	log   *slog.Logger

	mode    domain.MoveMode
	trace   usecase.Trace
	loaded  bool
	loading bool

	step    int
	playing bool
	tickID  int

	toast string
	width int
}

// Run opens the stepper for deps.PuzzlePath and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, deps Deps) error {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	p := tea.NewProgram(wrapSafe(newModel(deps), log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	mode := deps.Mode
	if !mode.Valid() {
		mode = domain.ModeSingle
	}

	return model{
		theme:   DefaultTheme(),
		keys:    defaultKeys(),
		help:    help.New(),
		deps:    deps,
		log:     log,
		mode:    mode,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return cmdLoadTrace(m.deps, m.mode)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case traceLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.log.Error("watch.load_failed", "path", m.deps.PuzzlePath, "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}

		m.trace = msg.trace
		m.loaded = true
		m.step = min(m.step, m.lastStep())
		m.toast = ""
		if msg.trace.Err != nil {
			m.log.Warn("watch.trace_failed", "path", m.deps.PuzzlePath, "mode", string(m.mode), "err", msg.trace.Err)
			m.toast = userMessage(msg.trace.Err)
		}
		m.log.Info("watch.loaded", "path", m.deps.PuzzlePath, "mode", string(m.mode), "states", len(msg.trace.States))
		return m, nil

	case tickMsg:
		if !m.playing || msg.id != m.tickID {
			return m, nil
		}
		if m.step >= m.lastStep() {
			m.playing = false
			return m, nil
		}
		m.step++
		return m, cmdTick(m.tickID, m.deps.Interval)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Mode):
		if m.mode == domain.ModeSingle {
			m.mode = domain.ModeBatch
		} else {
			m.mode = domain.ModeSingle
		}
		m.playing = false
		m.loading = true
		return m, cmdLoadTrace(m.deps, m.mode)

	case key.Matches(msg, m.keys.Reload):
		m.playing = false
		m.loading = true
		return m, cmdLoadTrace(m.deps, m.mode)
	}

	if !m.loaded {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.playing = false
		m.step = min(m.step+1, m.lastStep())
	case key.Matches(msg, m.keys.Prev):
		m.playing = false
		m.step = max(m.step-1, 0)
	case key.Matches(msg, m.keys.First):
		m.playing = false
		m.step = 0
	case key.Matches(msg, m.keys.Last):
		m.playing = false
		m.step = m.lastStep()
	case key.Matches(msg, m.keys.Play):
		if m.playing {
			m.playing = false
			return m, nil
		}
		if m.step >= m.lastStep() {
			m.step = 0
		}
		m.playing = true
		m.tickID++
		return m, cmdTick(m.tickID, m.deps.Interval)
	}
	return m, nil
}

func (m model) lastStep() int {
	return max(len(m.trace.States)-1, 0)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	name := m.trace.Puzzle.Name
	if name == "" {
		name = m.deps.PuzzlePath
	}
	sub := fmt.Sprintf("%s · %s mode", name, m.mode)
	if m.deps.Debug {
		sub += " · debug"
	}
	header := m.theme.Title.Render("Dockyard") + "\n" + m.theme.Subtitle.Render(sub) + "\n"

	var body string
	switch {
	case m.loading && !m.loaded:
		body = "Loading…"
	case !m.loaded:
		body = m.theme.Error.Render(m.toast)
	default:
		body = m.stepView()
	}

	return wrap.Render(header + "\n" + m.theme.Card.Render(body) + "\n" + m.help.View(m.keys))
}

func (m model) stepView() string {
	var b strings.Builder

	total := len(m.trace.Puzzle.Instructions)
	fmt.Fprintf(&b, "Step %d/%d", m.step, total)
	if m.playing {
		b.WriteString("  ▶")
	}
	b.WriteString("\n")

	src, dst := -1, -1
	if m.step == 0 {
		b.WriteString(m.theme.Subtitle.Render("initial state"))
	} else {
		ins := m.trace.Puzzle.Instructions[m.step-1]
		src, dst = ins.Source, ins.Destination
		b.WriteString(ins.String())
	}
	b.WriteString("\n\n")

	if len(m.trace.States) > 0 {
		state := m.trace.States[m.step]
		b.WriteString(m.highlight(drawStacks(state), src, dst))
		b.WriteString("\n\n")

		if tops, err := state.Tops(); err == nil {
			b.WriteString("Tops: " + m.theme.Tops.Render(tops))
		} else {
			b.WriteString(m.theme.Subtitle.Render("Tops: (some stacks are empty)"))
		}
	}

	if m.trace.Err != nil && m.step == m.lastStep() {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Error.Render(clampString(m.toast, 80)))
	}
	return b.String()
}

// highlight colours the source and destination numbers in the last row of
// a drawing.
func (m model) highlight(drawing string, src, dst int) string {
	rows := strings.Split(drawing, "\n")
	last := len(rows) - 1
	if last < 0 || (src < 0 && dst < 0) {
		return drawing
	}

	labels := headerLabels(rows[last])
	for i := range labels {
		switch i {
		case src:
			labels[i] = m.theme.Source.Render(labels[i])
		case dst:
			labels[i] = m.theme.Dest.Render(labels[i])
		}
	}
	rows[last] = strings.Join(labels, " ")
	return strings.Join(rows, "\n")
}
