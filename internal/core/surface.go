package core

// ImageID is a stable handle to a pre-loaded image.
// Hosts resolve handles to real pixels; the simulation never loads assets.
type ImageID int

const (
	ImagePlayer ImageID = iota
	ImageBackground
	ImageEnemy
)

// String returns the asset name for the handle.
func (id ImageID) String() string {
	switch id {
	case ImagePlayer:
		return "player"
	case ImageBackground:
		return "background"
	case ImageEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Align controls horizontal text placement relative to the draw position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how a FillText call is rendered.
// The y coordinate passed alongside it is the text baseline.
type TextStyle struct {
	Font  string // CSS-like font string, e.g. "40px Helvetica"
	Size  float64
	Color Color
	Align Align
}

// Surface is the drawing context the simulation renders into.
// Coordinates are logical pixels on a fixed-size surface.
type Surface interface {
	// Clear erases the entire surface.
	Clear()

	// DrawImage blits the src region of img into the dst rectangle.
	DrawImage(img ImageID, src, dst RectF)

	// FillText draws text with its baseline at (x, y).
	FillText(text string, x, y float64, style TextStyle)
}
