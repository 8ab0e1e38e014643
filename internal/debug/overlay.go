package debug

import (
	"nova2d/internal/engine2D"
	"nova2d/internal/input"
	"nova2d/internal/metrics"
)

// TextDrawer renders text directly to the screen, outside the quad batch.
type TextDrawer interface {
	DrawText(text string, x, y, size int, c engine2D.Color)
}

var (
	panelColor = engine2D.NewColor(0, 0, 0, 160)
	textColor  = engine2D.RayWhite
)

// Overlay shows frame metrics in a panel. F8 toggles it and F9 toggles
// entity bounding boxes.
type Overlay struct {
	Visible           bool
	ShowBoundingBoxes bool
	FontSize          int
	Padding           int

	text  TextDrawer
	lines []string
}

func NewOverlay(text TextDrawer) *Overlay {
	return &Overlay{
		FontSize: 16,
		Padding:  8,
		text:     text,
	}
}

func (o *Overlay) Update(src input.Source, frame *metrics.Frame) {
	if src != nil {
		if src.IsKeyPressed(input.KeyF8) {
			o.Visible = !o.Visible
		}
		if src.IsKeyPressed(input.KeyF9) {
			o.ShowBoundingBoxes = !o.ShowBoundingBoxes
		}
	}
	if o.Visible && frame != nil {
		o.lines = frame.Lines()
	}
}

// Lines returns the text shown by the last Update.
func (o *Overlay) Lines() []string {
	return o.lines
}

func (o *Overlay) lineHeight() int {
	return o.FontSize + o.FontSize/2
}

// Draw submits the panel through r, flushes it so the text lands on top,
// then draws the text.
func (o *Overlay) Draw(r *engine2D.Renderer) {
	if !o.Visible || len(o.lines) == 0 {
		return
	}

	width := 0
	for _, l := range o.lines {
		width = max(width, len(l)*o.FontSize*6/10)
	}
	width += 2 * o.Padding
	height := len(o.lines)*o.lineHeight() + 2*o.Padding

	size := engine2D.NewVec2(float32(width), float32(height))
	r.DrawQuad(size.Scale(0.5), size, panelColor)
	r.Flush()

	if o.text == nil {
		return
	}
	y := o.Padding
	for _, l := range o.lines {
		o.text.DrawText(l, o.Padding, y, o.FontSize, textColor)
		y += o.lineHeight()
	}
}
