package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rogue-shot/internal/config"
	"github.com/vovakirdan/rogue-shot/internal/core"
	"github.com/vovakirdan/rogue-shot/internal/game"
	"github.com/vovakirdan/rogue-shot/internal/storage"
)

// Options configures a play session.
type Options struct {
	Runtime    core.RuntimeConfig
	Config     config.Config
	Difficulty string
	Store      *storage.Store // Optional; the run is saved on quit when set
	Logger     *log.Logger
	Reloads    <-chan config.Reload // Optional hot-reload feed
	HoldTicks  int
}

// ReloadMsg carries a config reload into the update loop.
type ReloadMsg config.Reload

// Model is the Bubble Tea model for one play session.
type Model struct {
	game     *game.Game
	opts     Options
	log      *log.Logger
	screen   *core.Screen
	keys     KeyMap
	held     *Held
	help     help.Model
	aim      core.Vec2
	quitting bool
	saved    bool
}

// NewModel creates a play session. A zero seed is replaced by the clock.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := game.New(opts.Config, opts.Runtime.Seed, game.WithLogger(logger))
	return Model{
		game:   g,
		opts:   opts,
		log:    logger,
		screen: core.NewScreen(opts.Runtime.ScreenW, max(1, opts.Runtime.ScreenH-1)),
		keys:   DefaultKeyMap(),
		held:   NewHeld(opts.HoldTicks),
		help:   help.New(),
		aim:    g.Enemy().Rect.Center(),
	}
}

// Init starts the tick loop and, when configured, the reload listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.opts.Runtime.TickRate)}
	if m.opts.Reloads != nil {
		cmds = append(cmds, waitReload(m.opts.Reloads))
	}
	return tea.Batch(cmds...)
}

func waitReload(ch <-chan config.Reload) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return ReloadMsg(r)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ReloadMsg:
		return m.handleReload(config.Reload(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}
	m.held.Press(action)
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	v := m.viewport()
	m.aim = v.ToWorld(msg.X, msg.Y)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.held.Press(core.ActionFire)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.game.Step(m.held.Frame(m.aim))
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// handleReload rebuilds the game with the new config and the same seed.
func (m Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	next := waitReload(m.opts.Reloads)
	if r.Err != nil {
		m.log.Warn("config reload rejected", "error", r.Err)
		return m, next
	}
	preset, err := config.ParsePreset(m.opts.Difficulty)
	if err == nil {
		config.ApplyPreset(&r.Config, preset)
	}
	m.saveRun()
	m.opts.Config = r.Config
	m.game = game.New(r.Config, m.opts.Runtime.Seed, game.WithLogger(m.log), game.WithDebug(m.game.Debug()))
	m.held.Release()
	m.saved = false
	m.log.Info("config reloaded", "seed", m.opts.Runtime.Seed)
	return m, next
}

func (m Model) viewport() Viewport {
	w := m.game.Config().World
	return NewViewport(m.screen.Width(), m.screen.Height(), core.Vec2{X: w.Width, Y: w.Height})
}

// saveRun stores the run once. Runs that never started are skipped.
func (m *Model) saveRun() {
	if m.saved || m.opts.Store == nil || m.game.Tick() == 0 {
		return
	}
	m.saved = true
	id, err := m.opts.Store.SaveRun(m.game.Record(m.opts.Difficulty))
	if err != nil {
		m.log.Warn("could not save run", "error", err)
		return
	}
	m.log.Info("run saved", "id", id, "score", m.game.Stats().Score())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	RenderSnapshot(m.game.Snapshot(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".rogueshot", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("rogueshot_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	RenderSnapshot(m.game.Snapshot(), m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the running simulation.
func (m Model) Game() *game.Game {
	return m.game
}

// Run starts the Bubble Tea program with a new play session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
