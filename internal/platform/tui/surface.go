package tui

import (
	"math"

	"github.com/vovakirdan/sprite-runner/internal/core"
)

// Glyphs used to stand in for sprite sheets.
const (
	glyphPlayerRun  = '█'
	glyphPlayerJump = '▓'
	glyphEnemy      = '▒'
	glyphGround     = '▀'
	glyphStar       = '.'
)

// CellSurface rasterises logical-pixel drawing calls onto a character Screen.
// The logical surface is stretched over the whole screen, so one cell covers
// logicalW/cols by logicalH/rows pixels.
type CellSurface struct {
	screen   *core.Screen
	logicalW float64
	logicalH float64
}

// NewCellSurface creates a surface for a logical size of logicalW x logicalH
// pixels drawn onto screen.
func NewCellSurface(screen *core.Screen, logicalW, logicalH int) *CellSurface {
	return &CellSurface{
		screen:   screen,
		logicalW: float64(logicalW),
		logicalH: float64(logicalH),
	}
}

// Screen returns the underlying character buffer.
func (s *CellSurface) Screen() *core.Screen {
	return s.screen
}

func (s *CellSurface) cellW() float64 { return s.logicalW / float64(s.screen.Width()) }
func (s *CellSurface) cellH() float64 { return s.logicalH / float64(s.screen.Height()) }

// cellRect converts a logical rectangle to the cells it touches.
func (s *CellSurface) cellRect(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X / s.cellW()))
	y0 := int(math.Floor(r.Y / s.cellH()))
	x1 := int(math.Ceil(r.Right() / s.cellW()))
	y1 := int(math.Ceil(r.Bottom() / s.cellH()))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Clear implements core.Surface.
func (s *CellSurface) Clear() {
	s.screen.Clear()
}

// DrawImage implements core.Surface. Sprites become solid glyph blocks; the
// background becomes a scrolling starfield above a ground line.
func (s *CellSurface) DrawImage(img core.ImageID, src, dst core.RectF) {
	if s.screen.Width() == 0 || s.screen.Height() == 0 {
		return
	}

	switch img {
	case core.ImageBackground:
		s.drawBackground(dst)
	case core.ImagePlayer:
		glyph := glyphPlayerRun
		if src.Y > 0 {
			glyph = glyphPlayerJump
		}
		s.screen.FillRect(s.cellRect(dst), glyph, core.ColorGreen)
	case core.ImageEnemy:
		s.screen.FillRect(s.cellRect(dst), glyphEnemy, core.ColorRed)
	}
}

// drawBackground draws one background tile. Stars are placed by tile-relative
// position so they scroll with the tile and line up across the seam.
func (s *CellSurface) drawBackground(dst core.RectF) {
	r := s.cellRect(dst)
	cw := s.cellW()
	bottom := s.screen.Height() - 1

	for x := max(r.X, 0); x < min(r.Right(), s.screen.Width()); x++ {
		u := int(math.Floor((float64(x)*cw - dst.X) / cw))
		for y := max(r.Y, 0); y < min(r.Bottom(), bottom); y++ {
			if starAt(u, y) {
				s.screen.Set(x, y, glyphStar, core.ColorGray)
			}
		}
		if r.Bottom() > bottom {
			s.screen.Set(x, bottom, glyphGround, core.ColorOrange)
		}
	}
}

// starAt is a fixed hash pattern, sparse enough to read as a night sky.
func starAt(u, y int) bool {
	h := uint32(u)*73856093 ^ uint32(y)*19349663
	return h%53 == 0
}

// FillText implements core.Surface. The baseline y selects the row the text
// sits on; centered text is centered on x.
func (s *CellSurface) FillText(text string, x, y float64, style core.TextStyle) {
	if s.screen.Width() == 0 || s.screen.Height() == 0 {
		return
	}
	// Drop shadows collapse into the glyph at cell resolution.
	if style.Color == core.ColorBlack {
		return
	}

	col := int(math.Floor(x / s.cellW()))
	row := int(math.Ceil(y/s.cellH())) - 1
	if style.Align == core.AlignCenter {
		col -= len([]rune(text)) / 2
	}
	s.screen.DrawText(col, max(row, 0), text, style.Color)
}

// Resize changes the grid the logical surface is stretched over.
func (s *CellSurface) Resize(cols, rows int) {
	s.screen.Resize(max(cols, 0), max(rows, 0))
}
