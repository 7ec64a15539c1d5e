// Package placeholder generates stand-in sprite sheets with the same geometry
// as the real art, so the window host runs without an asset directory.
package placeholder

import (
	"image"
	"image/color"
	"image/draw"
)

// Palette for generated sheets.
var (
	SkyTop    = color.RGBA{20, 24, 48, 255}
	SkyBottom = color.RGBA{70, 60, 110, 255}
	Ground    = color.RGBA{90, 70, 50, 255}
	Star      = color.RGBA{230, 230, 200, 255}
	Player    = color.RGBA{0, 255, 100, 255}
	PlayerAlt = color.RGBA{0, 180, 70, 255}
	Enemy     = color.RGBA{255, 50, 50, 255}
	EnemyEye  = color.RGBA{255, 230, 0, 255}
)

// GroundRatio is the share of the background height covered by ground.
const GroundRatio = 0.1

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{c}, image.Point{}, draw.Src)
}

// PlayerSheet draws a sheet of cellW x cellH cells with one row per entry of
// rows, each holding frames+1 cells. Legs swing with the frame index so the
// animation is visible.
func PlayerSheet(cellW, cellH int, rows ...int) *image.RGBA {
	cols := 0
	for _, frames := range rows {
		cols = max(cols, frames+1)
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*cellW, len(rows)*cellH))

	for row, frames := range rows {
		for frame := 0; frame <= frames; frame++ {
			cell := image.Rect(frame*cellW, row*cellH, (frame+1)*cellW, (row+1)*cellH)
			drawRunner(img, cell, frame, row > 0)
		}
	}
	return img
}

func drawRunner(img *image.RGBA, cell image.Rectangle, frame int, airborne bool) {
	w, h := cell.Dx(), cell.Dy()
	x0, y0 := cell.Min.X, cell.Min.Y

	// Head and torso
	fill(img, image.Rect(x0+w*2/5, y0+h/10, x0+w*3/5, y0+h/4), Player)
	fill(img, image.Rect(x0+w/3, y0+h/4, x0+w*2/3, y0+h*3/5), Player)

	// Legs
	swing := (frame % 4) * w / 16
	if airborne {
		swing = w / 8
	}
	legTop := y0 + h*3/5
	fill(img, image.Rect(x0+w/3-swing, legTop, x0+w/2-swing, y0+h), PlayerAlt)
	fill(img, image.Rect(x0+w/2+swing, legTop, x0+w*2/3+swing, y0+h), PlayerAlt)
}

// EnemySheet draws a single row of frames+1 cells.
func EnemySheet(cellW, cellH, frames int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, (frames+1)*cellW, cellH))

	for frame := 0; frame <= frames; frame++ {
		x0 := frame * cellW
		bob := (frame % 3) * cellH / 20
		fill(img, image.Rect(x0+cellW/8, cellH/4+bob, x0+cellW*7/8, cellH), Enemy)
		fill(img, image.Rect(x0+cellW/5, cellH/3+bob, x0+cellW/5+cellW/8, cellH/3+bob+cellH/8), EnemyEye)
	}
	return img
}

// Background draws one tile of a night sky over a ground strip.
func Background(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	groundTop := h - int(float64(h)*GroundRatio)

	for y := 0; y < groundTop; y++ {
		t := float64(y) / float64(max(groundTop-1, 1))
		fill(img, image.Rect(0, y, w, y+1), lerp(SkyTop, SkyBottom, t))
	}
	fill(img, image.Rect(0, groundTop, w, h), Ground)

	for x := 0; x < w; x += 7 {
		for y := 0; y < groundTop; y += 5 {
			if (uint32(x)*73856093^uint32(y)*19349663)%97 == 0 {
				fill(img, image.Rect(x, y, x+2, y+2), Star)
			}
		}
	}
	return img
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
