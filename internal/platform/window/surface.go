package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/sprite-runner/internal/core"
)

// palette maps core colours to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorBlack:  {0, 0, 0, 255},
	core.ColorWhite:  {255, 255, 255, 255},
	core.ColorRed:    {255, 50, 50, 255},
	core.ColorGreen:  {0, 255, 100, 255},
	core.ColorYellow: {255, 215, 0, 255},
	core.ColorBlue:   {50, 120, 180, 255},
	core.ColorCyan:   {0, 150, 200, 255},
	core.ColorGray:   {140, 140, 150, 255},
	core.ColorOrange: {255, 140, 0, 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorWhite]
}

// Surface draws simulation frames onto an ebiten image.
type Surface struct {
	target *ebiten.Image
	assets *Assets
	font   *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewSurface creates a surface drawing sprites from assets. Text uses the Go
// regular face; the font family in a TextStyle is ignored and only its size
// is honoured.
func NewSurface(assets *Assets) (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	return &Surface{
		assets: assets,
		font:   src,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// SetTarget selects the image the following calls draw onto.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.target = dst
}

// Clear implements core.Surface.
func (s *Surface) Clear() {
	s.target.Clear()
}

// DrawImage implements core.Surface. The src cell is cut from the sheet and
// scaled to fill dst.
func (s *Surface) DrawImage(id core.ImageID, src, dst core.RectF) {
	sheet := s.assets.Image(id)
	if sheet == nil || src.W <= 0 || src.H <= 0 {
		return
	}

	r := image.Rect(
		int(math.Round(src.X)), int(math.Round(src.Y)),
		int(math.Round(src.Right())), int(math.Round(src.Bottom())),
	)
	cell, ok := sheet.SubImage(r).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	s.target.DrawImage(cell, op)
}

// FillText implements core.Surface.
func (s *Surface) FillText(str string, x, y float64, style core.TextStyle) {
	face := s.face(style.Size)

	op := &text.DrawOptions{}
	// text.Draw positions the top of the line box; lift it by the ascent so
	// y is the baseline.
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(rgba(style.Color))
	if style.Align == core.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(s.target, str, face, op)
}

func (s *Surface) face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = 16
	}
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.font, Size: size}
	s.faces[size] = f
	return f
}
