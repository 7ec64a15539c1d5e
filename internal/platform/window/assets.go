package window

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/sprite-runner/internal/config"
	"github.com/vovakirdan/sprite-runner/internal/core"
	"github.com/vovakirdan/sprite-runner/internal/platform/window/placeholder"
)

// Assets holds the pre-loaded sprite sheets, keyed by the handles the
// simulation draws with.
type Assets struct {
	images map[core.ImageID]*ebiten.Image
}

// Image returns the sheet for id, or nil if none is loaded.
func (a *Assets) Image(id core.ImageID) *ebiten.Image {
	return a.images[id]
}

// LoadAssets loads the three sprite sheets named in cfg. A sheet that cannot
// be read is replaced by a generated placeholder of the same geometry, so a
// missing asset directory never stops the game.
func LoadAssets(cfg config.RunnerConfig, logger *log.Logger) *Assets {
	p, e, bg := cfg.Player, cfg.Enemy, cfg.Background

	sheets := []struct {
		id       core.ImageID
		file     string
		fallback func() image.Image
	}{
		{core.ImagePlayer, cfg.Assets.Player, func() image.Image {
			return placeholder.PlayerSheet(int(p.Width), int(p.Height), p.RunFrames, p.JumpFrames)
		}},
		{core.ImageBackground, cfg.Assets.Background, func() image.Image {
			return placeholder.Background(int(bg.Width), int(bg.Height))
		}},
		{core.ImageEnemy, cfg.Assets.Enemy, func() image.Image {
			return placeholder.EnemySheet(int(e.Width), int(e.Height), e.MaxFrame)
		}},
	}

	a := &Assets{images: make(map[core.ImageID]*ebiten.Image, len(sheets))}
	for _, s := range sheets {
		path := cfg.AssetPath(s.file)
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			logger.Warn("using placeholder sprite sheet", "image", s.id, "path", path, "err", err)
			img = ebiten.NewImageFromImage(s.fallback())
		} else {
			logger.Debug("loaded sprite sheet", "image", s.id, "path", path)
		}
		a.images[s.id] = img
	}
	return a
}
