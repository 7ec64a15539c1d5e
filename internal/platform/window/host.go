// Package window provides the desktop host for the runner, built on Ebiten.
package window

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/sprite-runner/internal/core"
	"github.com/vovakirdan/sprite-runner/internal/games/runner"
)

// DefaultTPS is the update rate used when none is configured.
const DefaultTPS = 60

// keyDirections maps the polled keys to runner directions.
var keyDirections = []struct {
	key ebiten.Key
	dir core.Direction
}{
	{ebiten.KeyArrowUp, core.DirUp},
	{ebiten.KeyArrowDown, core.DirDown},
	{ebiten.KeyArrowLeft, core.DirLeft},
	{ebiten.KeyArrowRight, core.DirRight},
}

// Options configures the window host.
type Options struct {
	TPS    int
	Scale  float64 // Window size relative to the logical surface
	Logger *log.Logger
}

// Host adapts a runner.Game to ebiten.Game. Update runs the simulation into
// a draw list; Draw replays the latest list, so the final frame stays on
// screen after the run ends.
type Host struct {
	game    *runner.Game
	frame   *core.DrawList
	surface *Surface
	logger  *log.Logger
	start   time.Time
	over    bool
}

// NewHost creates an ebiten game for game drawing with assets.
func NewHost(game *runner.Game, assets *Assets, logger *log.Logger) (*Host, error) {
	surface, err := NewSurface(assets)
	if err != nil {
		return nil, err
	}
	return &Host{
		game:    game,
		frame:   core.NewDrawList(),
		surface: surface,
		logger:  logger,
		start:   time.Now(),
	}, nil
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if h.over {
		return nil
	}

	in := h.game.Input()
	for _, k := range keyDirections {
		if inpututil.IsKeyJustPressed(k.key) {
			in.OnKeyDown(k.dir)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			in.OnKeyUp(k.dir)
		}
	}

	now := float64(time.Since(h.start)) / float64(time.Millisecond)
	if !h.game.Frame(now, h.frame) {
		h.over = true
		st := h.game.State()
		h.logger.Info("game over", "score", st.Score, "frames", st.Frames, "spawned", st.Spawned)
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.SetTarget(screen)
	h.frame.Replay(h.surface)
}

// Layout implements ebiten.Game. The logical surface size is fixed and
// ebiten scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	cfg := h.game.Config()
	return cfg.Surface.Width, cfg.Surface.Height
}

// Run opens a window for game and blocks until it is closed.
func Run(game *runner.Game, opts Options) error {
	if opts.TPS <= 0 {
		opts.TPS = DefaultTPS
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	cfg := game.Config()
	host, err := NewHost(game, LoadAssets(cfg, opts.Logger), opts.Logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(float64(cfg.Surface.Width)*opts.Scale), int(float64(cfg.Surface.Height)*opts.Scale))
	ebiten.SetWindowTitle(runner.Title)
	ebiten.SetTPS(opts.TPS)

	opts.Logger.Info("window opened", "tps", opts.TPS, "scale", opts.Scale)
	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
