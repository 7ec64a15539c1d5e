package placeholder

import (
	"image"
	"image/color"
	"testing"
)

func opaqueIn(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestPlayerSheetGeometry(t *testing.T) {
	img := PlayerSheet(200, 200, 8, 5)

	if got := img.Bounds(); got != image.Rect(0, 0, 9*200, 2*200) {
		t.Fatalf("Bounds() = %v, expected 1800x400", got)
	}

	tests := []struct {
		name     string
		cell     image.Rectangle
		expected bool
	}{
		{"run frame 0", image.Rect(0, 0, 200, 200), true},
		{"run frame 8", image.Rect(1600, 0, 1800, 200), true},
		{"jump frame 5", image.Rect(1000, 200, 1200, 400), true},
		{"jump frame 6 unused", image.Rect(1200, 200, 1400, 400), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := opaqueIn(img, tc.cell) > 0; got != tc.expected {
				t.Errorf("cell %v drawn = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestPlayerSheetFramesDiffer(t *testing.T) {
	img := PlayerSheet(200, 200, 8)

	same := true
	for y := 0; y < 200 && same; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) != img.RGBAAt(x+200, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("frames 0 and 1 are identical, expected visible animation")
	}
}

func TestEnemySheet(t *testing.T) {
	img := EnemySheet(160, 119, 5)

	if got := img.Bounds(); got != image.Rect(0, 0, 960, 119) {
		t.Fatalf("Bounds() = %v, expected 960x119", got)
	}
	for frame := 0; frame <= 5; frame++ {
		cell := image.Rect(frame*160, 0, (frame+1)*160, 119)
		if opaqueIn(img, cell) == 0 {
			t.Errorf("frame %d is empty", frame)
		}
	}
	if got := img.RGBAAt(80, 118); got != Enemy {
		t.Errorf("body pixel = %v, expected %v", got, Enemy)
	}
}

func TestBackground(t *testing.T) {
	img := Background(2400, 720)

	if got := img.Bounds(); got != image.Rect(0, 0, 2400, 720) {
		t.Fatalf("Bounds() = %v", got)
	}
	if got := img.RGBAAt(10, 719); got != Ground {
		t.Errorf("bottom pixel = %v, expected ground", got)
	}
	if opaqueIn(img, img.Bounds()) != 2400*720 {
		t.Error("background should be fully opaque")
	}

	stars := 0
	for y := 0; y < 648; y++ {
		for x := 0; x < 2400; x++ {
			if img.RGBAAt(x, y) == Star {
				stars++
			}
		}
	}
	if stars == 0 {
		t.Error("expected some stars in the sky")
	}
}

func TestLerp(t *testing.T) {
	a := color.RGBA{0, 100, 200, 255}
	b := color.RGBA{100, 200, 0, 255}

	if got := lerp(a, b, 0); got != a {
		t.Errorf("lerp(0) = %v, expected %v", got, a)
	}
	if got := lerp(a, b, 1); got != b {
		t.Errorf("lerp(1) = %v, expected %v", got, b)
	}
	if got := lerp(a, b, 0.5); got != (color.RGBA{50, 150, 100, 255}) {
		t.Errorf("lerp(0.5) = %v", got)
	}
}
