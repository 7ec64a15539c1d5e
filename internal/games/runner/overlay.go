package runner

import (
	"strconv"

	"github.com/vovakirdan/sprite-runner/internal/config"
	"github.com/vovakirdan/sprite-runner/internal/core"
)

// Overlay texts.
const (
	ScorePrefix  = "Score: "
	GameOverText = "GAME OVER, try again!"
)

// Overlay draws the score and the game-over banner.
// Every string is drawn twice, black then white offset by a few pixels, for
// a drop shadow.
type Overlay struct {
	cfg   config.OverlayConfig
	gameW float64
}

// NewOverlay creates the status overlay for a surface of width gameW.
func NewOverlay(cfg config.OverlayConfig, gameW float64) *Overlay {
	return &Overlay{cfg: cfg, gameW: gameW}
}

// Draw renders the overlay for st.
func (o *Overlay) Draw(dst core.Surface, st *State) {
	score := ScorePrefix + strconv.Itoa(st.Score)
	o.shadowed(dst, score, o.cfg.ScoreX, o.cfg.ScoreY, core.AlignLeft)

	if st.GameOver {
		o.shadowed(dst, GameOverText, o.gameW/2, o.cfg.BannerY, core.AlignCenter)
	}
}

func (o *Overlay) shadowed(dst core.Surface, text string, x, y float64, align core.Align) {
	style := core.TextStyle{
		Font:  o.cfg.Font,
		Size:  o.cfg.FontSize,
		Color: core.ColorBlack,
		Align: align,
	}
	dst.FillText(text, x, y, style)

	style.Color = core.ColorWhite
	dst.FillText(text, x+o.cfg.ShadowOffset, y+o.cfg.ShadowOffset, style)
}
