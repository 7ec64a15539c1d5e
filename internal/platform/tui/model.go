package tui

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-runner/internal/core"
	"github.com/vovakirdan/sprite-runner/internal/games/runner"
)

// DefaultFPS is the tick rate used when none is configured.
const DefaultFPS = 60

// footerRows is the space kept below the playfield for status and help.
const footerRows = 2

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures the terminal host.
type Options struct {
	FPS    int
	Width  int // Initial terminal size; replaced by the first WindowSizeMsg
	Height int
	Logger *log.Logger
}

// Model is the Bubble Tea model running one runner game.
type Model struct {
	game    *runner.Game
	keys    KeyMap
	help    help.Model
	frame   *core.DrawList
	surface *CellSurface
	holds   *holdTracker
	logger  *log.Logger

	fps      int
	start    time.Time
	clock    func() time.Time
	over     bool
	quitting bool
}

// NewModel creates a Bubble Tea model for game.
func NewModel(game *runner.Game, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cfg := game.Config()
	screen := core.NewScreen(max(opts.Width, 0), max(opts.Height-footerRows, 0))

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	return Model{
		game:    game,
		keys:    DefaultKeyMap(),
		help:    h,
		frame:   core.NewDrawList(),
		surface: NewCellSurface(screen, cfg.Surface.Width, cfg.Surface.Height),
		holds:   newHoldTracker(cfg.Terminal.KeyHoldMs),
		logger:  opts.Logger,
		fps:     opts.FPS,
		start:   time.Now(),
		clock:   time.Now,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("run started", "fps", m.fps)
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.surface.Resize(msg.Width, msg.Height-footerRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey delivers key-down for newly pressed directions and refreshes the
// hold timer of keys already down.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	dir, ok := m.keys.Direction(msg)
	if !ok || m.over {
		return m, nil
	}
	if m.holds.Press(dir, m.elapsed(m.clock())) {
		m.game.Input().OnKeyDown(dir)
	}
	return m, nil
}

// handleTick runs one frame. The tick is re-armed only while the game asks
// for more frames.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.over {
		return m, nil
	}

	now := m.elapsed(t)
	for _, dir := range m.holds.Expire(now) {
		m.game.Input().OnKeyUp(dir)
	}

	if m.game.Frame(now, m.frame) {
		return m, tickCmd(m.fps)
	}

	m.over = true
	st := m.game.State()
	m.logger.Info("game over", "score", st.Score, "frames", st.Frames, "spawned", st.Spawned)
	return m, nil
}

// elapsed converts a wall-clock time to the host timestamp in milliseconds.
func (m Model) elapsed(t time.Time) float64 {
	return float64(t.Sub(m.start)) / float64(time.Millisecond)
}

// Over reports whether the run has ended.
func (m Model) Over() bool {
	return m.over
}

// View renders the last recorded frame with a status line and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.frame.Replay(m.surface)

	var b strings.Builder
	b.WriteString(RenderScreen(m.surface.Screen()))
	b.WriteString("\n")

	st := m.game.State()
	status := runner.ScorePrefix + strconv.Itoa(st.Score)
	if st.GameOver {
		status += "  " + runner.GameOverText
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game *runner.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
