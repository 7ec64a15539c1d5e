package core

// OpKind identifies the type of a recorded draw operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpImage
	OpText
)

// DrawOp is a single recorded Surface call.
type DrawOp struct {
	Kind  OpKind
	Image ImageID
	Src   RectF
	Dst   RectF
	Text  string
	X, Y  float64
	Style TextStyle
}

// DrawList is a Surface that records calls in order instead of drawing them.
// Hosts whose present step is separate from their update step (Ebiten, Bubble
// Tea) run a frame into a DrawList and replay it when the screen is drawn.
type DrawList struct {
	ops []DrawOp
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{ops: make([]DrawOp, 0, 32)}
}

// Clear records a clear. Anything recorded before it can never be visible,
// so the list is truncated first.
func (l *DrawList) Clear() {
	l.ops = append(l.ops[:0], DrawOp{Kind: OpClear})
}

// DrawImage records an image blit.
func (l *DrawList) DrawImage(img ImageID, src, dst RectF) {
	l.ops = append(l.ops, DrawOp{Kind: OpImage, Image: img, Src: src, Dst: dst})
}

// FillText records a text draw.
func (l *DrawList) FillText(text string, x, y float64, style TextStyle) {
	l.ops = append(l.ops, DrawOp{Kind: OpText, Text: text, X: x, Y: y, Style: style})
}

// Ops returns the recorded operations. The slice is reused by later frames.
func (l *DrawList) Ops() []DrawOp {
	return l.ops
}

// Len returns the number of recorded operations.
func (l *DrawList) Len() int {
	return len(l.ops)
}

// Reset discards all recorded operations.
func (l *DrawList) Reset() {
	l.ops = l.ops[:0]
}

// Replay issues every recorded operation against dst in recording order.
func (l *DrawList) Replay(dst Surface) {
	for _, op := range l.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpImage:
			dst.DrawImage(op.Image, op.Src, op.Dst)
		case OpText:
			dst.FillText(op.Text, op.X, op.Y, op.Style)
		}
	}
}
